package nodegraph

// NodeID identifies a node for the lifetime of the process. IDs come from a
// monotonically increasing counter and are never reused, so they are not
// dense and must not be used as slice indices.
type NodeID uint32

// nodeIDCounter is a plain counter (no atomic; nodegraph is single-threaded).
var nodeIDCounter uint32

func nextNodeID() NodeID {
	nodeIDCounter++
	return NodeID(nodeIDCounter)
}

// Hit is the result of a hit test against a node.
type Hit struct {
	Kind      HitKind
	Node      *Node
	Connector *Connector // set when Kind == HitConnector
}

// Node is a positioned box owning a fixed list of connectors. A node can
// exist, be drawn and be moved before it is added to a Graph.
type Node struct {
	ID      NodeID
	Name    string
	Comment string

	// Position and size in world space.
	X, Y          float64
	Width, Height float64

	Selected   bool
	Selectable bool
	Hovered    bool

	// Metrics lays out the connectors. Copied from the view's style when the
	// node is created through a Panel.
	Metrics Metrics

	UserData any

	// DisplayName overrides Name in Title when set.
	DisplayName func(*Node) string
	// OnProcess is called by Graph.Process for each valid node in evaluation
	// order.
	OnProcess func(*Node)

	connectors []*Connector
	inputs     int
	outputs    int
}

// NewNode creates a selectable node at (x, y) with the given size and the
// default connector metrics.
func NewNode(name string, x, y, width, height float64) *Node {
	return &Node{
		ID:         nextNodeID(),
		Name:       name,
		X:          x,
		Y:          y,
		Width:      width,
		Height:     height,
		Selectable: true,
		Metrics:    DefaultMetrics(),
	}
}

// HitRect returns the node's world-space bounds. It is derived from X, Y,
// Width and Height on every call.
func (n *Node) HitRect() Rect {
	return Rect{X: n.X, Y: n.Y, Width: n.Width, Height: n.Height}
}

// MoveBy translates the node by (dx, dy).
func (n *Node) MoveBy(dx, dy float64) {
	n.X += dx
	n.Y += dy
}

// Title returns DisplayName(n) when set, otherwise Name.
func (n *Node) Title() string {
	if n.DisplayName != nil {
		return n.DisplayName(n)
	}
	return n.Name
}

// AddInput appends an input connector. kind is looked up with ParseDataKind;
// unknown names fall back to KindNone with a logged warning.
func (n *Node) AddInput(name, kind string) *Connector {
	return n.AddConnector(RoleInput, name, dataKindOrNone(kind, name))
}

// AddOutput appends an output connector. See AddInput for kind parsing.
func (n *Node) AddOutput(name, kind string) *Connector {
	return n.AddConnector(RoleOutput, name, dataKindOrNone(kind, name))
}

// AddConnector appends a connector with the next free index for role.
func (n *Node) AddConnector(role Role, name string, kind DataKind) *Connector {
	c := &Connector{Node: n.ID, Role: role, Kind: kind, Name: name}
	if role == RoleOutput {
		c.Index = n.outputs
		n.outputs++
	} else {
		c.Index = n.inputs
		n.inputs++
	}
	n.connectors = append(n.connectors, c)
	return c
}

// Connectors returns the node's connectors in insertion order.
// The returned slice MUST NOT be mutated.
func (n *Node) Connectors() []*Connector {
	return n.connectors
}

// Connector returns the connector with the given role and index, or nil.
func (n *Node) Connector(role Role, index int) *Connector {
	for _, c := range n.connectors {
		if c.Role == role && c.Index == index {
			return c
		}
	}
	return nil
}

// Input is shorthand for Connector(RoleInput, index).
func (n *Node) Input(index int) *Connector { return n.Connector(RoleInput, index) }

// Output is shorthand for Connector(RoleOutput, index).
func (n *Node) Output(index int) *Connector { return n.Connector(RoleOutput, index) }

// ConnectorIndex returns c's position in the node's connector list, or -1 if
// the node does not own c.
func (n *Node) ConnectorIndex(c *Connector) int {
	for i, own := range n.connectors {
		if own == c {
			return i
		}
	}
	return -1
}

// ConnectorCount returns the number of connectors with the given role.
func (n *Node) ConnectorCount(role Role) int {
	if role == RoleOutput {
		return n.outputs
	}
	return n.inputs
}

// LinkedConnectorCount returns the number of linked connectors with the given role.
func (n *Node) LinkedConnectorCount(role Role) int {
	count := 0
	for _, c := range n.connectors {
		if c.Role == role && c.linked {
			count++
		}
	}
	return count
}

// MaxConnectorCount returns the larger of the input and output counts.
func (n *Node) MaxConnectorCount() int {
	return max(n.inputs, n.outputs)
}

// MinConnectorCount returns the smaller of the input and output counts.
func (n *Node) MinConnectorCount() int {
	return min(n.inputs, n.outputs)
}

// IsValid reports whether the node can be evaluated: nodes without inputs
// always can, others need at least one linked input.
func (n *Node) IsValid() bool {
	if n.inputs == 0 {
		return true
	}
	for _, c := range n.connectors {
		if c.Role == RoleInput && c.CanProcess() {
			return true
		}
	}
	return false
}

// HitTest tests the world point p against the node. A point inside the node
// is then tested against each connector's hit area in insertion order; the
// first connector hit wins over the node body.
func (n *Node) HitTest(p Vec2) Hit {
	point := Rect{X: p.X, Y: p.Y}
	if !point.Intersects(n.HitRect()) {
		return Hit{}
	}
	for _, c := range n.connectors {
		if point.Intersects(c.HitArea(n)) {
			return Hit{Kind: HitConnector, Node: n, Connector: c}
		}
	}
	return Hit{Kind: HitNode, Node: n}
}
