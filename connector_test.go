package nodegraph

import "testing"

func TestConnectorLayout(t *testing.T) {
	n := NewNode("n", 0, 0, 128, 64)
	in0 := n.AddInput("in0", "scalars")
	in1 := n.AddInput("in1", "scalars")
	out0 := n.AddOutput("out0", "scalars")

	tests := []struct {
		name string
		c    *Connector
		want Rect
	}{
		{"input 0", in0, Rect{X: 0, Y: 26, Width: 10, Height: 10}},
		{"input 1", in1, Rect{X: 0, Y: 42, Width: 10, Height: 10}},
		{"output 0", out0, Rect{X: 118, Y: 26, Width: 10, Height: 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.VisibleArea(n); got != tt.want {
				t.Errorf("VisibleArea = %v, want %v", got, tt.want)
			}
			if got := tt.c.HitArea(n); got != tt.want.Inflate(3) {
				t.Errorf("HitArea = %v, want %v", got, tt.want.Inflate(3))
			}
		})
	}
}

func TestConnectorFollowsNode(t *testing.T) {
	n := NewNode("n", 0, 0, 128, 64)
	out := n.AddOutput("out", "scalars")
	n.MoveBy(10, 20)
	if got := out.VisibleArea(n); got != (Rect{X: 128, Y: 46, Width: 10, Height: 10}) {
		t.Errorf("VisibleArea after move = %v", got)
	}
}

func TestConnectorWrongParent(t *testing.T) {
	a := NewNode("a", 0, 0, 100, 60)
	b := NewNode("b", 200, 0, 100, 60)
	c := a.AddInput("in", "scalars")
	if got := c.VisibleArea(b); got != (Rect{}) {
		t.Errorf("VisibleArea with foreign parent = %v, want zero", got)
	}
	if got := c.HitArea(nil); got != (Rect{}) {
		t.Errorf("HitArea with nil parent = %v, want zero", got)
	}
}

func TestConnectorAnchor(t *testing.T) {
	n := NewNode("n", 0, 0, 128, 64)
	in := n.AddInput("in", "scalars")
	out := n.AddOutput("out", "scalars")
	if got := in.Anchor(n); got != (Vec2{0, 31}) {
		t.Errorf("input Anchor = %v, want (0,31)", got)
	}
	if got := out.Anchor(n); got != (Vec2{128, 31}) {
		t.Errorf("output Anchor = %v, want (128,31)", got)
	}
}

func TestConnectorCanProcess(t *testing.T) {
	n := NewNode("n", 0, 0, 100, 60)
	in := n.AddInput("in", "scalars")
	out := n.AddOutput("out", "scalars")
	if !out.CanProcess() {
		t.Error("unlinked output CanProcess = false")
	}
	if in.CanProcess() {
		t.Error("unlinked input CanProcess = true")
	}
	in.linked = true
	if !in.CanProcess() {
		t.Error("linked input CanProcess = false")
	}
}

func TestConnectorCustomMetrics(t *testing.T) {
	n := NewNode("n", 0, 0, 100, 100)
	n.Metrics.HeaderHeight = 30
	n.Metrics.ConnectorPitch = 20
	c1 := n.AddInput("a", "scalars")
	c2 := n.AddInput("b", "scalars")
	if got := c1.VisibleArea(n).Y; got != 36 {
		t.Errorf("first input Y = %v, want 36", got)
	}
	if got := c2.VisibleArea(n).Y; got != 56 {
		t.Errorf("second input Y = %v, want 56", got)
	}
}
