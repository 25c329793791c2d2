// Package ecs provides ECS adapters for nodegraph panel notifications.
//
// The primary adapter is [NewDonburiSink], which forwards selection and link
// notifications from a panel into a [Donburi] world as typed events.
// Subscribe to [GraphEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	panel.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
