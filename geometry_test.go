package nodegraph

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

const epsilon = 1e-9

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func approxVec(a, b Vec2, eps float64) bool {
	return approxEqual(a.X, b.X, eps) && approxEqual(a.Y, b.Y, eps)
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float64
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{0, 0, 10, 0},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
	if Clamp01(1.5) != 1 || Clamp01(-0.5) != 0 {
		t.Error("Clamp01 out of range")
	}
}

func TestColorConversions(t *testing.T) {
	c := Color{R: 255, G: 0, B: 51, A: 102}
	v4 := ColorToVec4(c)
	if !approxEqual(v4.X, 1, epsilon) || !approxEqual(v4.Z, 0.2, epsilon) || !approxEqual(v4.W, 0.4, epsilon) {
		t.Errorf("ColorToVec4 = %v", v4)
	}
	if got := Vec4ToColor(v4); got != c {
		t.Errorf("Vec4ToColor(ColorToVec4(c)) = %v, want %v", got, c)
	}
	v3 := ColorToVec3(c)
	if got := Vec3ToColor(v3); got != (Color{255, 0, 51, 255}) {
		t.Errorf("Vec3ToColor = %v, want opaque", got)
	}
}

func TestVecToColorClampsAndTruncates(t *testing.T) {
	got := Vec4ToColor(Vec4{X: 1.5, Y: -1, Z: 0.999, W: 0.5})
	want := Color{R: 255, G: 0, B: 254, A: 127}
	if got != want {
		t.Errorf("Vec4ToColor = %v, want %v", got, want)
	}
}

func TestProjectUnprojectRoundtrip(t *testing.T) {
	m := mat.NewDense(4, 4, []float64{
		2, 0, 0, 30,
		0, 2, 0, -10,
		0, 0, 1, 0,
		0, 0, 0, 1,
	})
	tests := []Vec2{{0, 0}, {12.5, -7}, {-100, 250}}
	for _, p := range tests {
		s := Project(p, m, 0)
		if got := Unproject(s, m, 0); !approxVec(got, p, 1e-9) {
			t.Errorf("Unproject(Project(%v)) = %v", p, got)
		}
	}
	if s := Project(Vec2{1, 1}, m, 0); !approxVec(s, Vec2{32, -8}, epsilon) {
		t.Errorf("Project(1,1) = %v, want (32,-8)", s)
	}
}

func TestUnprojectSingularFallsBack(t *testing.T) {
	singular := mat.NewDense(4, 4, nil)
	p := Vec2{42, -3}
	if got := Unproject(p, singular, 0); got != p {
		t.Errorf("Unproject with singular matrix = %v, want %v", got, p)
	}
	var dst mat.Dense
	if invertTransform(&dst, singular) {
		t.Error("invertTransform(zero) = true, want false")
	}
}
