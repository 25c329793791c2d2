package nodegraph

// EventType identifies a panel notification.
type EventType uint8

const (
	EventSelectionChanged EventType = iota // one or more nodes are selected after a selection pass
	EventSelectionCleared                  // a selection pass left nothing selected
	EventLinkCreated                       // a link was added by the panel
	EventLinkDestroyed                     // a link was removed by the panel
	EventRedraw                            // the panel wants to be drawn again
)

var eventTypeNames = [...]string{
	EventSelectionChanged: "selection-changed",
	EventSelectionCleared: "selection-cleared",
	EventLinkCreated:      "link-created",
	EventLinkDestroyed:    "link-destroyed",
	EventRedraw:           "redraw",
}

func (t EventType) String() string {
	if int(t) < len(eventTypeNames) {
		return eventTypeNames[t]
	}
	return "unknown"
}

// EventSink receives every selection and link notification. Set one with
// Panel.SetEventSink to forward notifications to another system, such as an
// ECS world.
type EventSink interface {
	EmitEvent(event GraphEvent)
}

// GraphEvent carries a notification for an EventSink.
type GraphEvent struct {
	Type EventType
	// Count is the selected node count for EventSelectionChanged and the
	// previously selected count for EventSelectionCleared.
	Count int
	// Link is set for EventLinkCreated and EventLinkDestroyed.
	Link *Link
}

// --- Handler registry ---

type countHandler struct {
	id uint32
	fn func(int)
}

type linkHandler struct {
	id uint32
	fn func(*Link)
}

type redrawHandler struct {
	id uint32
	fn func()
}

type handlerRegistry struct {
	selectionChanged []countHandler
	selectionCleared []countHandler
	linkCreated      []linkHandler
	linkDestroyed    []linkHandler
	redraw           []redrawHandler
	nextID           uint32
}

// CallbackHandle allows removing a registered panel callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case EventSelectionChanged:
		h.reg.selectionChanged = removeHandler(h.reg.selectionChanged, h.id, func(c countHandler) uint32 { return c.id })
	case EventSelectionCleared:
		h.reg.selectionCleared = removeHandler(h.reg.selectionCleared, h.id, func(c countHandler) uint32 { return c.id })
	case EventLinkCreated:
		h.reg.linkCreated = removeHandler(h.reg.linkCreated, h.id, func(l linkHandler) uint32 { return l.id })
	case EventLinkDestroyed:
		h.reg.linkDestroyed = removeHandler(h.reg.linkDestroyed, h.id, func(l linkHandler) uint32 { return l.id })
	case EventRedraw:
		h.reg.redraw = removeHandler(h.reg.redraw, h.id, func(r redrawHandler) uint32 { return r.id })
	}
}

func removeHandler[T any](s []T, id uint32, idOf func(T) uint32) []T {
	for i := range s {
		if idOf(s[i]) == id {
			var zero T
			copy(s[i:], s[i+1:])
			s[len(s)-1] = zero
			return s[:len(s)-1]
		}
	}
	return s
}

// --- Registration ---

// OnSelectionChanged registers a callback fired with the selected node count
// after a selection pass leaves at least one node selected.
func (p *Panel) OnSelectionChanged(fn func(count int)) CallbackHandle {
	p.handlers.nextID++
	id := p.handlers.nextID
	p.handlers.selectionChanged = append(p.handlers.selectionChanged, countHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &p.handlers, event: EventSelectionChanged}
}

// OnSelectionCleared registers a callback fired when a selection pass leaves
// nothing selected. count is how many nodes were selected before the pass.
func (p *Panel) OnSelectionCleared(fn func(count int)) CallbackHandle {
	p.handlers.nextID++
	id := p.handlers.nextID
	p.handlers.selectionCleared = append(p.handlers.selectionCleared, countHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &p.handlers, event: EventSelectionCleared}
}

// OnLinkCreated registers a callback fired after the panel adds a link.
func (p *Panel) OnLinkCreated(fn func(*Link)) CallbackHandle {
	p.handlers.nextID++
	id := p.handlers.nextID
	p.handlers.linkCreated = append(p.handlers.linkCreated, linkHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &p.handlers, event: EventLinkCreated}
}

// OnLinkDestroyed registers a callback fired once per link the panel removes.
func (p *Panel) OnLinkDestroyed(fn func(*Link)) CallbackHandle {
	p.handlers.nextID++
	id := p.handlers.nextID
	p.handlers.linkDestroyed = append(p.handlers.linkDestroyed, linkHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &p.handlers, event: EventLinkDestroyed}
}

// OnRedraw registers a callback fired whenever the panel's picture may have
// changed.
func (p *Panel) OnRedraw(fn func()) CallbackHandle {
	p.handlers.nextID++
	id := p.handlers.nextID
	p.handlers.redraw = append(p.handlers.redraw, redrawHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &p.handlers, event: EventRedraw}
}

// SetEventSink sets an optional receiver for selection and link
// notifications. Redraw requests are not forwarded.
func (p *Panel) SetEventSink(sink EventSink) {
	p.sink = sink
}

// --- Dispatch ---

func (p *Panel) fireSelectionChanged(count int) {
	for _, h := range p.handlers.selectionChanged {
		h.fn(count)
	}
	p.emit(GraphEvent{Type: EventSelectionChanged, Count: count})
}

func (p *Panel) fireSelectionCleared(count int) {
	for _, h := range p.handlers.selectionCleared {
		h.fn(count)
	}
	p.emit(GraphEvent{Type: EventSelectionCleared, Count: count})
}

func (p *Panel) fireLinkCreated(l *Link) {
	Logger().Debug("nodegraph: link created", "link", l.String())
	for _, h := range p.handlers.linkCreated {
		h.fn(l)
	}
	p.emit(GraphEvent{Type: EventLinkCreated, Link: l})
}

func (p *Panel) fireLinkDestroyed(l *Link) {
	Logger().Debug("nodegraph: link destroyed", "link", l.String())
	for _, h := range p.handlers.linkDestroyed {
		h.fn(l)
	}
	p.emit(GraphEvent{Type: EventLinkDestroyed, Link: l})
}

func (p *Panel) requestRedraw() {
	for _, h := range p.handlers.redraw {
		h.fn()
	}
}

func (p *Panel) emit(e GraphEvent) {
	if p.sink != nil {
		p.sink.EmitEvent(e)
	}
}
