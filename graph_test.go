package nodegraph

import (
	"strings"
	"testing"
)

// chain builds a -> b -> c, added to the graph in the order given.
func chain(t *testing.T) (*Graph, *Node, *Node, *Node) {
	t.Helper()
	g := NewGraph()
	a := NewNode("a", 0, 0, 100, 60)
	b := NewNode("b", 200, 0, 100, 60)
	c := NewNode("c", 400, 0, 100, 60)
	a.AddOutput("out", "scalars")
	b.AddInput("in", "scalars")
	b.AddOutput("out", "scalars")
	c.AddInput("in", "scalars")
	return g, a, b, c
}

func TestGraphAddRemoveNode(t *testing.T) {
	g, a, b, c := chain(t)
	g.AddNode(a)
	g.AddNode(b)
	g.AddNode(c)

	if g.NodeCount(false) != 3 || g.Node(b.ID) != b || !g.Contains(c) {
		t.Fatal("nodes not added")
	}
	if !g.RemoveNode(b) {
		t.Fatal("RemoveNode(b) = false")
	}
	if g.RemoveNode(b) {
		t.Error("second RemoveNode(b) = true")
	}
	if g.Contains(b) || g.Node(b.ID) != nil {
		t.Error("b still present")
	}
	if nodes := g.Nodes(); len(nodes) != 2 || nodes[0] != a || nodes[1] != c {
		t.Errorf("order after removal = %v", nodes)
	}
}

func TestGraphLinks(t *testing.T) {
	g, a, b, _ := chain(t)
	g.AddNode(a)
	g.AddNode(b)
	l1 := &Link{Output: a.Output(0), Input: b.Input(0)}
	g.AddLink(l1)

	if !a.Output(0).Linked() || !b.Input(0).Linked() {
		t.Fatal("endpoints not marked linked")
	}
	if g.Other(a.Output(0)) != b.Input(0) || g.Other(b.Output(0)) != nil {
		t.Error("Other mismatch")
	}
	if g.Parent(b.Input(0)) != b || g.Parent(nil) != nil {
		t.Error("Parent mismatch")
	}

	// A second link on the same output keeps the output linked after the
	// first one is removed.
	extra := NewNode("extra", 0, 200, 100, 60)
	extra.AddInput("in", "scalars")
	g.AddNode(extra)
	l2 := &Link{Output: a.Output(0), Input: extra.Input(0)}
	g.AddLink(l2)

	if !g.RemoveLink(l1) {
		t.Fatal("RemoveLink(l1) = false")
	}
	if !a.Output(0).Linked() {
		t.Error("output unlinked while still referenced")
	}
	if b.Input(0).Linked() {
		t.Error("input still linked after its only link was removed")
	}
	if g.RemoveLink(l1) {
		t.Error("second RemoveLink(l1) = true")
	}
	if got := g.LinksOn(a.Output(0)); len(got) != 1 || got[0] != l2 {
		t.Errorf("LinksOn = %v, want [l2]", got)
	}
}

func TestGraphRemoveNodeKeepsLinks(t *testing.T) {
	g, a, b, _ := chain(t)
	g.AddNode(a)
	g.AddNode(b)
	g.AddLink(&Link{Output: a.Output(0), Input: b.Input(0)})
	g.RemoveNode(b)
	if g.LinkCount() != 1 {
		t.Errorf("LinkCount = %d, want 1", g.LinkCount())
	}
}

func TestGraphSelectionQueries(t *testing.T) {
	g, a, b, c := chain(t)
	g.AddNode(a)
	g.AddNode(b)
	g.AddNode(c)
	b.Selected = true
	c.Selected = true

	if g.NodeCount(true) != 2 {
		t.Errorf("NodeCount(true) = %d, want 2", g.NodeCount(true))
	}
	if got := g.SelectedNodes(); len(got) != 2 || got[0] != b || got[1] != c {
		t.Errorf("SelectedNodes = %v", got)
	}
	tests := []struct {
		n            *Node
		selectedOnly bool
		want         int
	}{
		{a, false, 0},
		{c, false, 2},
		{a, true, -1},
		{c, true, 1},
		{NewNode("stray", 0, 0, 1, 1), false, -1},
	}
	for _, tt := range tests {
		if got := g.NodeIndex(tt.n, tt.selectedOnly); got != tt.want {
			t.Errorf("NodeIndex(%s, %v) = %d, want %d", tt.n.Name, tt.selectedOnly, got, tt.want)
		}
	}
}

func TestGraphHitTestFirstWins(t *testing.T) {
	g := NewGraph()
	under := NewNode("under", 0, 0, 100, 100)
	over := NewNode("over", 50, 50, 100, 100)
	g.AddNode(under)
	g.AddNode(over)
	if h := g.HitTest(Vec2{75, 75}); h.Node != under {
		t.Errorf("HitTest overlap = %v, want first inserted node", h.Node.Name)
	}
	if h := g.HitTest(Vec2{500, 500}); h.Kind != HitNone {
		t.Errorf("HitTest empty = %v", h.Kind)
	}
}

func TestEvaluationOrder(t *testing.T) {
	g, a, b, c := chain(t)
	// Insert against the data flow.
	g.AddNode(c)
	g.AddNode(b)
	g.AddNode(a)
	g.AddLink(&Link{Output: b.Output(0), Input: c.Input(0)})
	g.AddLink(&Link{Output: a.Output(0), Input: b.Input(0)})

	order, err := g.EvaluationOrder()
	if err != nil {
		t.Fatalf("EvaluationOrder: %v", err)
	}
	if len(order) != 3 || order[0] != a || order[1] != b || order[2] != c {
		names := make([]string, len(order))
		for i, n := range order {
			names[i] = n.Name
		}
		t.Errorf("order = %v, want [a b c]", names)
	}
}

func TestEvaluationOrderUnlinkedByID(t *testing.T) {
	g := NewGraph()
	first := NewNode("first", 0, 0, 10, 10)
	second := NewNode("second", 0, 0, 10, 10)
	g.AddNode(second)
	g.AddNode(first)
	order, err := g.EvaluationOrder()
	if err != nil {
		t.Fatalf("EvaluationOrder: %v", err)
	}
	if order[0] != first || order[1] != second {
		t.Errorf("unlinked nodes not in ID order: %s, %s", order[0].Name, order[1].Name)
	}
}

func TestEvaluationOrderCycle(t *testing.T) {
	g, a, b, _ := chain(t)
	a.AddInput("back", "scalars")
	g.AddNode(a)
	g.AddNode(b)
	g.AddLink(&Link{Output: a.Output(0), Input: b.Input(0)})
	g.AddLink(&Link{Output: b.Output(0), Input: a.Input(0)})

	if _, err := g.EvaluationOrder(); err == nil {
		t.Fatal("EvaluationOrder on a cycle returned nil error")
	} else if !strings.Contains(err.Error(), "evaluation order") {
		t.Errorf("err = %v", err)
	}
}

func TestEvaluationOrderSelfLink(t *testing.T) {
	g, _, b, _ := chain(t)
	g.AddNode(b)
	g.AddLink(&Link{Output: b.Output(0), Input: b.Input(0)})
	if _, err := g.EvaluationOrder(); err == nil {
		t.Fatal("self link returned nil error")
	}
}

func TestProcessSkipsInvalidNodes(t *testing.T) {
	g, a, b, c := chain(t)
	g.AddNode(a)
	g.AddNode(b)
	g.AddNode(c)
	g.AddLink(&Link{Output: a.Output(0), Input: b.Input(0)})

	var ran []string
	for _, n := range []*Node{a, b, c} {
		n.OnProcess = func(n *Node) { ran = append(ran, n.Name) }
	}
	if err := g.Process(); err != nil {
		t.Fatalf("Process: %v", err)
	}
	if len(ran) != 2 || ran[0] != "a" || ran[1] != "b" {
		t.Errorf("ran = %v, want [a b]", ran)
	}
}
