package nodegraph

import (
	"fmt"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// Graph owns the insertion-ordered nodes and links of an editor.
//
// Graph performs no orchestration: removing a node leaves its links in place.
// Use Panel.RemoveNode or Panel.DeleteSelectedNodes, which detach links first.
type Graph struct {
	nodes []*Node
	byID  map[NodeID]*Node
	links []*Link
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{byID: make(map[NodeID]*Node)}
}

// AddNode appends n. Duplicates are not checked.
func (g *Graph) AddNode(n *Node) {
	g.nodes = append(g.nodes, n)
	g.byID[n.ID] = n
}

// RemoveNode removes n and reports whether it was present.
func (g *Graph) RemoveNode(n *Node) bool {
	for i, own := range g.nodes {
		if own == n {
			copy(g.nodes[i:], g.nodes[i+1:])
			g.nodes[len(g.nodes)-1] = nil
			g.nodes = g.nodes[:len(g.nodes)-1]
			delete(g.byID, n.ID)
			return true
		}
	}
	return false
}

// AddLink appends l and marks both endpoints linked. Duplicates are not checked.
func (g *Graph) AddLink(l *Link) {
	g.links = append(g.links, l)
	l.Output.linked = true
	l.Input.linked = true
}

// RemoveLink removes l and reports whether it was present. Each endpoint stays
// marked linked only if another link still references it.
func (g *Graph) RemoveLink(l *Link) bool {
	for i, own := range g.links {
		if own == l {
			copy(g.links[i:], g.links[i+1:])
			g.links[len(g.links)-1] = nil
			g.links = g.links[:len(g.links)-1]
			l.Output.linked = g.references(l.Output)
			l.Input.linked = g.references(l.Input)
			return true
		}
	}
	return false
}

func (g *Graph) references(c *Connector) bool {
	for _, l := range g.links {
		if l.Touches(c) {
			return true
		}
	}
	return false
}

// Nodes returns the nodes in insertion order. The returned slice MUST NOT be mutated.
func (g *Graph) Nodes() []*Node {
	return g.nodes
}

// Links returns the links in insertion order. The returned slice MUST NOT be mutated.
func (g *Graph) Links() []*Link {
	return g.links
}

// LinkCount returns the number of links.
func (g *Graph) LinkCount() int {
	return len(g.links)
}

// Node returns the node with the given ID, or nil.
func (g *Graph) Node(id NodeID) *Node {
	return g.byID[id]
}

// Contains reports whether n is in the graph.
func (g *Graph) Contains(n *Node) bool {
	return n != nil && g.byID[n.ID] == n
}

// Parent returns the graph node owning c, or nil.
func (g *Graph) Parent(c *Connector) *Node {
	if c == nil {
		return nil
	}
	return g.byID[c.Node]
}

// NodeCount returns the number of nodes, or only the selected ones.
func (g *Graph) NodeCount(selectedOnly bool) int {
	if !selectedOnly {
		return len(g.nodes)
	}
	count := 0
	for _, n := range g.nodes {
		if n.Selected {
			count++
		}
	}
	return count
}

// NodeIndex returns n's position among all nodes, or among selected nodes
// when selectedOnly is set. Returns -1 if n is absent (or unselected).
func (g *Graph) NodeIndex(n *Node, selectedOnly bool) int {
	i := 0
	for _, own := range g.nodes {
		if selectedOnly && !own.Selected {
			continue
		}
		if own == n {
			return i
		}
		i++
	}
	return -1
}

// SelectedNodes returns a new slice of the selected nodes in insertion order.
func (g *Graph) SelectedNodes() []*Node {
	var out []*Node
	for _, n := range g.nodes {
		if n.Selected {
			out = append(out, n)
		}
	}
	return out
}

// LinksOn returns a new slice of every link with c as an endpoint.
func (g *Graph) LinksOn(c *Connector) []*Link {
	var out []*Link
	for _, l := range g.links {
		if l.Touches(c) {
			out = append(out, l)
		}
	}
	return out
}

// Other returns the connector at the far end of the first link touching c,
// or nil if c is unlinked.
func (g *Graph) Other(c *Connector) *Connector {
	for _, l := range g.links {
		if other := l.Other(c); other != nil {
			return other
		}
	}
	return nil
}

// HitTest tests p against every node in insertion order and returns the first
// hit.
func (g *Graph) HitTest(p Vec2) Hit {
	for _, n := range g.nodes {
		if h := n.HitTest(p); h.Kind != HitNone {
			return h
		}
	}
	return Hit{}
}

// EvaluationOrder returns the nodes sorted so that every link's output node
// comes before its input node. Nodes of equal rank keep ID order. A cycle,
// including a node linked to itself, is an error.
func (g *Graph) EvaluationOrder() ([]*Node, error) {
	dg := simple.NewDirectedGraph()
	for _, n := range g.nodes {
		if dg.Node(int64(n.ID)) == nil {
			dg.AddNode(simple.Node(n.ID))
		}
	}
	for _, l := range g.links {
		from, to := l.Output.Node, l.Input.Node
		if from == to {
			return nil, fmt.Errorf("nodegraph: evaluation order: node %d is linked to itself", from)
		}
		if g.byID[from] == nil || g.byID[to] == nil {
			continue
		}
		dg.SetEdge(dg.NewEdge(simple.Node(from), simple.Node(to)))
	}

	sorted, err := topo.SortStabilized(dg, nil)
	if err != nil {
		return nil, fmt.Errorf("nodegraph: evaluation order: %w", err)
	}
	out := make([]*Node, 0, len(sorted))
	for _, gn := range sorted {
		out = append(out, g.byID[NodeID(gn.ID())])
	}
	return out, nil
}

// Process calls OnProcess on every valid node in evaluation order.
func (g *Graph) Process() error {
	order, err := g.EvaluationOrder()
	if err != nil {
		return err
	}
	for _, n := range order {
		if n.OnProcess != nil && n.IsValid() {
			n.OnProcess(n)
		}
	}
	return nil
}
