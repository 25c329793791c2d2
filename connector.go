package nodegraph

import "fmt"

// Metrics holds the layout constants that place connectors on their node.
// Every node carries a copy taken from its panel's style at construction.
type Metrics struct {
	// HeaderHeight is the height of the node's title bar.
	HeaderHeight float64 `toml:"header_height"`
	// ConnectorOffset is the gap between the header and the first connector.
	ConnectorOffset float64 `toml:"connector_offset"`
	// ConnectorPitch is the vertical distance between consecutive connectors.
	ConnectorPitch float64 `toml:"connector_pitch"`
	// ConnectorWidth and ConnectorHeight size a connector's visible square.
	ConnectorWidth  float64 `toml:"connector_width"`
	ConnectorHeight float64 `toml:"connector_height"`
	// HitBleed enlarges a connector's click area on all four sides.
	HitBleed float64 `toml:"hit_bleed"`
}

// DefaultMetrics returns the stock connector layout: 16 units per connector,
// starting 6 units under a 20 unit header.
func DefaultMetrics() Metrics {
	return Metrics{
		HeaderHeight:    20,
		ConnectorOffset: 6,
		ConnectorPitch:  16,
		ConnectorWidth:  10,
		ConnectorHeight: 10,
		HitBleed:        3,
	}
}

// Connector is an input or output slot on a node. It refers to its parent by
// ID; the parent owns it.
type Connector struct {
	// Node is the ID of the owning node.
	Node NodeID
	// Index is unique among the parent's connectors of the same Role.
	Index int
	Role  Role
	Kind  DataKind
	Name  string

	linked bool
}

// Linked reports whether any link in the graph references this connector.
func (c *Connector) Linked() bool {
	return c.linked
}

// CanProcess reports whether the connector is ready for evaluation: outputs
// always are, inputs only once something is linked to them.
func (c *Connector) CanProcess() bool {
	if c.Role == RoleOutput {
		return true
	}
	return c.linked
}

// VisibleArea returns the world-space square drawn for the connector.
// Inputs sit on parent's left edge, outputs on its right edge. The zero Rect
// is returned if parent does not own c.
func (c *Connector) VisibleArea(parent *Node) Rect {
	if parent == nil || parent.ID != c.Node {
		return Rect{}
	}
	m := parent.Metrics
	hit := parent.HitRect()
	x := hit.X
	if c.Role == RoleOutput {
		x = hit.X + hit.Width - m.ConnectorWidth
	}
	y := hit.Y + m.HeaderHeight + m.ConnectorOffset + float64(c.Index)*m.ConnectorPitch
	return Rect{X: x, Y: y, Width: m.ConnectorWidth, Height: m.ConnectorHeight}
}

// HitArea returns VisibleArea grown by the parent's HitBleed on every side.
func (c *Connector) HitArea(parent *Node) Rect {
	if parent == nil || parent.ID != c.Node {
		return Rect{}
	}
	return c.VisibleArea(parent).Inflate(parent.Metrics.HitBleed)
}

// Anchor returns the point links attach to: the middle of the connector's
// outer edge.
func (c *Connector) Anchor(parent *Node) Vec2 {
	r := c.VisibleArea(parent)
	if c.Role == RoleOutput {
		return Vec2{r.X + r.Width, r.Y + r.Height/2}
	}
	return Vec2{r.X, r.Y + r.Height/2}
}

func (c *Connector) String() string {
	return fmt.Sprintf("%d.%s%d(%s)", c.Node, c.Role, c.Index, c.Kind)
}
