package nodegraph

import "testing"

func TestViewDefaults(t *testing.T) {
	v := NewView(DefaultStyle())
	if v.Zoom != 1 || v.TargetZoom != 1 || v.X != 0 || v.Y != 0 {
		t.Errorf("NewView = %+v", v)
	}
	if got := v.WorldToScreen(Vec2{12, 34}); !approxVec(got, Vec2{12, 34}, epsilon) {
		t.Errorf("identity WorldToScreen = %v", got)
	}
}

func TestViewConvention(t *testing.T) {
	v := NewView(DefaultStyle())
	v.X, v.Y, v.Zoom = 10, -5, 2

	// screen = ((wx - X) * zoom, (wy + Y) * zoom)
	if got := v.WorldToScreen(Vec2{20, 15}); !approxVec(got, Vec2{20, 20}, epsilon) {
		t.Errorf("WorldToScreen(20,15) = %v, want (20,20)", got)
	}
	for _, w := range []Vec2{{0, 0}, {20, 15}, {-33.5, 81}} {
		s := v.WorldToScreen(w)
		if got := v.ScreenToWorld(s); !approxVec(got, w, 1e-9) {
			t.Errorf("ScreenToWorld(WorldToScreen(%v)) = %v", w, got)
		}
	}
}

func TestViewProjectionEntries(t *testing.T) {
	v := NewView(DefaultStyle())
	v.X, v.Y, v.Zoom = 3, 4, 2
	m := v.ViewProjection()
	if m.At(0, 0) != 2 || m.At(1, 1) != 2 || m.At(0, 3) != -6 || m.At(1, 3) != 8 || m.At(3, 3) != 1 {
		t.Errorf("ViewProjection = %v", m.RawMatrix().Data)
	}
}

func TestViewZeroZoomScreenToWorld(t *testing.T) {
	v := NewView(DefaultStyle())
	v.Zoom = 0
	p := Vec2{17, 23}
	if got := v.ScreenToWorld(p); got != p {
		t.Errorf("ScreenToWorld at zoom 0 = %v, want %v", got, p)
	}
}

func TestViewWorldRectToScreen(t *testing.T) {
	v := NewView(DefaultStyle())
	v.X, v.Y, v.Zoom = -100, 100, 2
	got := v.WorldRectToScreen(Rect{X: 0, Y: 0, Width: 10, Height: 5})
	want := Rect{X: 200, Y: 200, Width: 20, Height: 10}
	if !approxEqual(got.X, want.X, epsilon) || !approxEqual(got.Y, want.Y, epsilon) ||
		!approxEqual(got.Width, want.Width, epsilon) || !approxEqual(got.Height, want.Height, epsilon) {
		t.Errorf("WorldRectToScreen = %v, want %v", got, want)
	}
}

func TestViewCenteredOn(t *testing.T) {
	v := NewView(DefaultStyle())
	v.Zoom = 2
	v.X, v.Y = v.CenteredOn(Vec2{50, 25}, 800, 600)
	if got := v.WorldToScreen(Vec2{50, 25}); !approxVec(got, Vec2{400, 300}, 1e-9) {
		t.Errorf("centered point on screen = %v, want (400,300)", got)
	}
}

func TestViewZoomedToKeepsAnchor(t *testing.T) {
	v := NewView(DefaultStyle())
	v.X, v.Y = -40, 25
	anchor := Vec2{300, 200}
	before := v.ScreenToWorld(anchor)
	for _, z := range []float64{0.5, 1.7, 3} {
		zoomed := v.ZoomedTo(z, anchor)
		if zoomed.Zoom != z {
			t.Errorf("Zoom = %v, want %v", zoomed.Zoom, z)
		}
		if got := zoomed.ScreenToWorld(anchor); !approxVec(got, before, 1e-9) {
			t.Errorf("zoom %v: world under anchor = %v, want %v", z, got, before)
		}
	}
	if got := v.ZoomedTo(0, anchor); got != v {
		t.Error("ZoomedTo(0) changed the view")
	}
}

func TestViewWithTargetZoomClamps(t *testing.T) {
	v := NewView(DefaultStyle())
	tests := []struct{ in, want float64 }{
		{2, 2},
		{0.01, 0.1},
		{100, 4},
	}
	for _, tt := range tests {
		if got := v.WithTargetZoom(tt.in).TargetZoom; got != tt.want {
			t.Errorf("WithTargetZoom(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestViewSmoothed(t *testing.T) {
	v := NewView(DefaultStyle()).WithTargetZoom(2)
	next, changed := v.Smoothed(Vec2{})
	if !changed || !approxEqual(next.Zoom, 1.25, epsilon) {
		t.Errorf("first step = (%v, %v), want (1.25, true)", next.Zoom, changed)
	}

	for range 200 {
		next, _ = next.Smoothed(Vec2{})
	}
	if next.Zoom != 2 {
		t.Errorf("Zoom after convergence = %v, want exactly 2", next.Zoom)
	}
	if _, changed := next.Smoothed(Vec2{}); changed {
		t.Error("Smoothed at target reported a change")
	}
}

func TestViewShowText(t *testing.T) {
	v := NewView(DefaultStyle())
	if !v.ShowText() {
		t.Error("ShowText at zoom 1 = false")
	}
	v.Zoom = 0.3
	if v.ShowText() {
		t.Error("ShowText at zoom 0.3 = true")
	}
}
