package nodegraph

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// PanelConfig configures a new Panel.
type PanelConfig struct {
	// Width and Height are the control size in pixels, used for edge scrolling
	// and framing.
	Width, Height float64
	// Style defaults to DefaultStyle when nil.
	Style *Style
	// Debug validates the graph after every event and logs violations.
	Debug bool
}

// scrollAnim holds active scroll-to tweens for the view pan.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Panel is the interaction controller of a node-graph editor. It owns one
// Graph and one View and turns pointer, wheel and key events into selection,
// dragging, linking, panning and zooming.
//
// A Panel is not safe for concurrent use.
type Panel struct {
	graph *Graph
	view  View
	mode  EditMode

	width, height float64

	// Latched modifier state, updated only by KeyDown and KeyUp.
	altHeld  bool
	ctrlHeld bool

	cursor       Vec2 // last pointer position, screen space
	scrollAnchor Vec2 // screen space
	zoomAnchor   Vec2 // screen space
	lastDrag     Vec2 // world space

	boxOrigin       Vec2 // world space
	boxCurrent      Vec2 // world space
	selectionBefore int

	linkFrom *Connector
	linkTo   *Connector

	preview *Node
	scroll  *scrollAnim

	handlers handlerRegistry
	sink     EventSink
	debug    bool
}

// NewPanel creates a panel with an empty graph.
func NewPanel(cfg PanelConfig) *Panel {
	style := DefaultStyle()
	if cfg.Style != nil {
		style = *cfg.Style
	}
	return &Panel{
		graph:  NewGraph(),
		view:   NewView(style),
		width:  cfg.Width,
		height: cfg.Height,
		debug:  cfg.Debug,
	}
}

// --- Queries ---

// Graph returns the panel's graph. Mutate it through panel commands so that
// notifications fire.
func (p *Panel) Graph() *Graph { return p.graph }

// View returns a copy of the current view.
func (p *Panel) View() View { return p.view }

// SetView replaces the view, cancelling any scroll animation.
func (p *Panel) SetView(v View) {
	p.view = v
	p.scroll = nil
	p.requestRedraw()
}

// Mode returns the active edit mode.
func (p *Panel) Mode() EditMode { return p.mode }

// Size returns the control size in pixels.
func (p *Panel) Size() (width, height float64) { return p.width, p.height }

// SetSize updates the control size in pixels.
func (p *Panel) SetSize(width, height float64) {
	if width == p.width && height == p.height {
		return
	}
	p.width, p.height = width, height
	p.requestRedraw()
}

// PendingLink returns the endpoints of the link being drawn. from is set
// while in ModeLinking; to is only set during link validation.
func (p *Panel) PendingLink() (from, to *Connector) { return p.linkFrom, p.linkTo }

// SelectionBox returns the normalized rubber band in world space and whether
// one is active.
func (p *Panel) SelectionBox() (Rect, bool) {
	if p.mode != ModeSelecting && p.mode != ModeSelectingBox {
		return Rect{}, false
	}
	return RectFromCorners(p.boxOrigin, p.boxCurrent), true
}

// Cursor returns the last pointer position in world space.
func (p *Panel) Cursor() Vec2 { return p.view.ScreenToWorld(p.cursor) }

// Modifiers returns the latched alt and ctrl state.
func (p *Panel) Modifiers() (alt, ctrl bool) { return p.altHeld, p.ctrlHeld }

// ScreenToWorld converts screen pixels to world space with the current view.
func (p *Panel) ScreenToWorld(x, y float64) Vec2 { return p.view.ScreenToWorld(Vec2{x, y}) }

// WorldToScreen converts a world point to screen pixels with the current view.
func (p *Panel) WorldToScreen(w Vec2) Vec2 { return p.view.WorldToScreen(w) }

// SetDebugMode enables or disables graph validation after every event.
func (p *Panel) SetDebugMode(enabled bool) { p.debug = enabled }

// --- Commands ---

// NewNode creates a node using the view's connector metrics. The node is not
// added to the graph.
func (p *Panel) NewNode(name string, x, y, width, height float64) *Node {
	n := NewNode(name, x, y, width, height)
	n.Metrics = p.view.Style.Metrics
	return n
}

// AddNode appends n to the graph.
func (p *Panel) AddNode(n *Node) {
	p.graph.AddNode(n)
	p.requestRedraw()
}

// AddLink appends l to the graph without validation and fires link-created.
func (p *Panel) AddLink(l *Link) {
	p.graph.AddLink(l)
	p.fireLinkCreated(l)
	p.requestRedraw()
}

// CreateLink links a and b if they are distinct, have opposite roles and
// equal data kinds. Links already on either endpoint are deleted first, so
// every connector carries at most one link. The new link is stored as
// (output, input) whichever order a and b come in. Invalid pairs are ignored.
func (p *Panel) CreateLink(a, b *Connector) (*Link, bool) {
	if a == nil || b == nil || a == b || a.Role == b.Role || a.Kind != b.Kind {
		return nil, false
	}
	out, in := a, b
	if a.Role == RoleInput {
		out, in = b, a
	}
	p.DeleteLinksOn(out)
	p.DeleteLinksOn(in)

	l := &Link{Output: out, Input: in}
	p.graph.AddLink(l)
	p.fireLinkCreated(l)
	p.requestRedraw()
	return l, true
}

// DeleteLinksOn removes every link touching c, firing link-destroyed once per
// removed link, and returns how many were removed.
func (p *Panel) DeleteLinksOn(c *Connector) int {
	removed := 0
	for _, l := range p.graph.LinksOn(c) {
		if p.graph.RemoveLink(l) {
			removed++
			p.fireLinkDestroyed(l)
		}
	}
	if removed > 0 {
		p.requestRedraw()
	}
	return removed
}

// Other returns the connector linked to c, or nil.
func (p *Panel) Other(c *Connector) *Connector {
	return p.graph.Other(c)
}

// RemoveNode detaches every link on n's connectors, then removes n.
func (p *Panel) RemoveNode(n *Node) bool {
	for _, c := range n.Connectors() {
		p.DeleteLinksOn(c)
	}
	if !p.graph.RemoveNode(n) {
		return false
	}
	p.requestRedraw()
	return true
}

// DeleteSelectedNodes removes every selected node with its links and returns
// how many were removed. Fires selection-cleared when any were.
func (p *Panel) DeleteSelectedNodes() int {
	selected := p.graph.SelectedNodes()
	removed := 0
	for _, n := range selected {
		if p.RemoveNode(n) {
			removed++
		}
	}
	if removed > 0 {
		p.fireSelectionCleared(removed)
	}
	return removed
}

// --- Preview node ---

// SetPreview tracks n as a transient node drawn by the host but not part of
// the graph, such as a node being dragged in from a palette.
func (p *Panel) SetPreview(n *Node) {
	p.preview = n
	p.requestRedraw()
}

// Preview returns the transient node, or nil.
func (p *Panel) Preview() *Node { return p.preview }

// MovePreview places the preview node's top-left corner under screen point
// (x, y).
func (p *Panel) MovePreview(x, y float64) {
	if p.preview == nil {
		return
	}
	w := p.ScreenToWorld(x, y)
	p.preview.X, p.preview.Y = w.X, w.Y
	p.requestRedraw()
}

// CommitPreview adds the preview node to the graph and returns it.
func (p *Panel) CommitPreview() *Node {
	n := p.preview
	if n == nil {
		return nil
	}
	p.preview = nil
	p.AddNode(n)
	return n
}

// CancelPreview drops the preview node.
func (p *Panel) CancelPreview() {
	if p.preview == nil {
		return
	}
	p.preview = nil
	p.requestRedraw()
}

// --- Animation ---

// Tick advances zoom smoothing and scroll animation by dt seconds and
// requests a redraw. Call it once per frame.
func (p *Panel) Tick(dt float32) {
	if v, changed := p.view.Smoothed(p.zoomAnchor); changed {
		p.view = v
	}

	if p.scroll != nil {
		if !p.scroll.doneX {
			val, done := p.scroll.tweenX.Update(dt)
			p.view.X = float64(val)
			p.scroll.doneX = done
		}
		if !p.scroll.doneY {
			val, done := p.scroll.tweenY.Update(dt)
			p.view.Y = float64(val)
			p.scroll.doneY = done
		}
		if p.scroll.doneX && p.scroll.doneY {
			p.scroll = nil
		}
	}

	p.requestRedraw()
	p.afterEvent()
}

// ScrollTo animates the view pan to (x, y) over duration seconds.
func (p *Panel) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	if easeFn == nil {
		easeFn = ease.Linear
	}
	p.scroll = &scrollAnim{
		tweenX: gween.New(float32(p.view.X), float32(x), duration, easeFn),
		tweenY: gween.New(float32(p.view.Y), float32(y), duration, easeFn),
	}
}

// Scrolling reports whether a ScrollTo animation is running.
func (p *Panel) Scrolling() bool { return p.scroll != nil }

// FrameSelection animates the view to center the selected nodes. It reports
// false when nothing is selected.
func (p *Panel) FrameSelection(duration float32, easeFn ease.TweenFunc) bool {
	selected := p.graph.SelectedNodes()
	if len(selected) == 0 {
		return false
	}
	bounds := selected[0].HitRect()
	for _, n := range selected[1:] {
		bounds = bounds.Union(n.HitRect())
	}
	x, y := p.view.CenteredOn(bounds.Center(), p.width, p.height)
	p.ScrollTo(x, y, duration, easeFn)
	return true
}

// --- Event intake ---

func (p *Panel) setMode(m EditMode) {
	if m == p.mode {
		return
	}
	Logger().Debug("nodegraph: edit mode", "from", p.mode.String(), "to", m.String())
	p.mode = m
}

// PointerDown handles a button press at screen point (x, y). Presses are only
// acted on in ModeIdle.
func (p *Panel) PointerDown(button MouseButton, x, y float64) {
	p.cursor = Vec2{x, y}
	if p.mode != ModeIdle {
		return
	}
	world := p.view.ScreenToWorld(p.cursor)

	switch button {
	case MouseButtonMiddle:
		p.scrollAnchor = p.cursor
		p.setMode(ModeScrolling)
	case MouseButtonLeft:
		p.pressLeft(world)
	}
	p.requestRedraw()
	p.afterEvent()
}

func (p *Panel) pressLeft(world Vec2) {
	if c := p.connectorAt(world); c != nil {
		if p.altHeld {
			p.DeleteLinksOn(c)
			return
		}
		p.linkFrom = c
		p.linkTo = nil
		p.setMode(ModeLinking)
		return
	}

	if p.graph.NodeCount(true) == 0 {
		if h := p.graph.HitTest(world); h.Kind == HitNode {
			p.selectAt(world)
			p.lastDrag = world
			p.setMode(ModeMovingSelection)
			return
		}
	} else {
		for _, n := range p.graph.Nodes() {
			if n.Selected && n.HitTest(world).Kind == HitNode {
				p.lastDrag = world
				p.setMode(ModeMovingSelection)
				return
			}
		}
	}

	p.selectionBefore = p.graph.NodeCount(true)
	p.boxOrigin = world
	p.boxCurrent = world
	p.setMode(ModeSelecting)
	p.updateHighlight()
}

// connectorAt returns the first connector hit at world point w, testing nodes
// in insertion order.
func (p *Panel) connectorAt(w Vec2) *Connector {
	for _, n := range p.graph.Nodes() {
		if h := n.HitTest(w); h.Kind == HitConnector {
			return h.Connector
		}
	}
	return nil
}

// PointerMove handles the pointer moving to screen point (x, y).
func (p *Panel) PointerMove(x, y float64) {
	p.cursor = Vec2{x, y}

	switch p.mode {
	case ModeIdle:
		p.updateHover(p.view.ScreenToWorld(p.cursor))

	case ModeScrolling:
		z := p.view.Zoom
		if z == 0 {
			z = 1
		}
		dx := x - p.scrollAnchor.X
		dy := y - p.scrollAnchor.Y
		p.view = p.view.Panned(-dx/z, dy/z)
		p.scrollAnchor = p.cursor

	case ModeSelecting, ModeSelectingBox:
		p.setMode(ModeSelectingBox)
		p.edgeScroll()
		p.boxCurrent = p.view.ScreenToWorld(p.cursor)
		p.updateHighlight()

	case ModeMovingSelection:
		p.edgeScroll()
		world := p.view.ScreenToWorld(p.cursor)
		dx := world.X - p.lastDrag.X
		dy := world.Y - p.lastDrag.Y
		for _, n := range p.graph.Nodes() {
			if n.Selected || n.Hovered {
				n.MoveBy(dx, dy)
			}
		}
		p.lastDrag = world

	case ModeLinking:
		p.edgeScroll()
	}

	p.requestRedraw()
	p.afterEvent()
}

// updateHover sets every node's Hovered flag from a hit test at w.
func (p *Panel) updateHover(w Vec2) {
	for _, n := range p.graph.Nodes() {
		n.Hovered = n.HitTest(w).Kind != HitNone
	}
}

// edgeScroll pans the view by one step when the cursor is within the edge
// margin. Edges are checked left, right, top, bottom; only the first match
// scrolls.
func (p *Panel) edgeScroll() {
	if p.width <= 0 || p.height <= 0 {
		return
	}
	s := p.view.Style
	z := p.view.Zoom
	if z == 0 {
		z = 1
	}
	step := s.EdgeScrollStep / z
	m := s.EdgeScrollMargin
	c := p.cursor

	switch {
	case c.X < m:
		p.view = p.view.Panned(-step, 0)
	case c.X > p.width-m:
		p.view = p.view.Panned(step, 0)
	case c.Y < m:
		p.view = p.view.Panned(0, step)
	case c.Y > p.height-m:
		p.view = p.view.Panned(0, -step)
	}
}

// PointerUp handles a button release at screen point (x, y).
func (p *Panel) PointerUp(button MouseButton, x, y float64) {
	p.cursor = Vec2{x, y}

	switch button {
	case MouseButtonMiddle:
		if p.mode == ModeScrolling {
			p.setMode(ModeIdle)
		}
	case MouseButtonLeft:
		switch p.mode {
		case ModeSelecting, ModeSelectingBox:
			p.notifySelection(p.selectionBefore)
			p.setMode(ModeIdle)
		case ModeMovingSelection:
			p.setMode(ModeIdle)
		case ModeLinking:
			p.linkTo = p.connectorAt(p.view.ScreenToWorld(p.cursor))
			p.CreateLink(p.linkFrom, p.linkTo)
			p.linkFrom, p.linkTo = nil, nil
			p.setMode(ModeIdle)
		}
	}
	p.requestRedraw()
	p.afterEvent()
}

// Wheel zooms by ZoomStep per notch of delta (positive zooms in) around
// screen point (x, y). The applied zoom follows on later ticks.
func (p *Panel) Wheel(delta, x, y float64) {
	if delta == 0 {
		return
	}
	p.cursor = Vec2{x, y}
	p.zoomAnchor = p.cursor
	factor := math.Pow(p.view.Style.ZoomStep, delta)
	p.view = p.view.WithTargetZoom(p.view.TargetZoom * factor)
	p.requestRedraw()
}

// KeyDown handles a key press. Alt and ctrl are latched until KeyUp; Delete
// removes the selected nodes; Escape cancels the active gesture.
func (p *Panel) KeyDown(k Key) {
	switch k {
	case KeyAlt:
		p.altHeld = true
	case KeyControl:
		p.ctrlHeld = true
	case KeyDelete:
		p.Cancel()
		p.DeleteSelectedNodes()
	case KeyEscape:
		p.Cancel()
	}
	p.requestRedraw()
	p.afterEvent()
}

// KeyUp handles a key release.
func (p *Panel) KeyUp(k Key) {
	switch k {
	case KeyAlt:
		p.altHeld = false
	case KeyControl:
		p.ctrlHeld = false
	}
}

// Cancel ends any gesture and returns to ModeIdle. A pending link is dropped;
// a rubber-band selection keeps what it selected so far.
func (p *Panel) Cancel() {
	switch p.mode {
	case ModeIdle:
		return
	case ModeSelecting, ModeSelectingBox:
		p.notifySelection(p.selectionBefore)
	}
	p.linkFrom, p.linkTo = nil, nil
	p.setMode(ModeIdle)
	p.requestRedraw()
}

func (p *Panel) afterEvent() {
	if p.debug {
		p.debugValidate()
	}
}
