// Package nodegraph is the interaction core of an embeddable node-graph
// editor for [Ebitengine].
//
// A [Graph] holds [Node] values, each owning a fixed list of input and output
// [Connector] values, and the [Link] values joining them. A [Panel] owns one
// graph and one [View] (pan, zoom and style) and turns raw pointer and key
// events into selection, dragging, linking, panning and zooming.
//
// # Quick start
//
//	panel := nodegraph.NewPanel(nodegraph.PanelConfig{Width: 800, Height: 600})
//
//	add := panel.NewNode("add", 40, 40, 128, 64)
//	add.AddInput("a", "Scalars")
//	add.AddInput("b", "Scalars")
//	add.AddOutput("sum", "Scalars")
//	panel.AddNode(add)
//
//	panel.OnLinkCreated(func(l *nodegraph.Link) { log.Println("linked", l) })
//
// Feed input from any host with [Panel.PointerDown], [Panel.PointerMove],
// [Panel.PointerUp], [Panel.Wheel], [Panel.KeyDown] and [Panel.KeyUp], and
// call [Panel.Tick] once per frame. For Ebitengine, [NewHost] wraps a panel
// in an [ebiten.Game] that polls input and draws the graph:
//
//	ebiten.RunGame(nodegraph.NewHost(panel))
//
// # Coordinates
//
// Events arrive in screen (control) space: pixels, origin at the top-left,
// Y down. Nodes live in world space, also Y down. The view stores its Y pan in
// the GL convention, so screen = ((wx - View.X) * Zoom, (wy + View.Y) * Zoom).
//
// # Threading
//
// A Panel is single-threaded. Every mutation happens inside the event method
// that caused it; a host that renders on another goroutine must serialize
// access to the panel itself.
//
// [Ebitengine]: https://ebitengine.org
package nodegraph
