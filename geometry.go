package nodegraph

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// singularEpsilon is the determinant magnitude below which a transform is
// treated as non-invertible.
const singularEpsilon = 1e-12

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 restricts v to [0, 1].
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// ColorToVec3 converts the RGB channels of c to [0, 1].
func ColorToVec3(c Color) Vec3 {
	return Vec3{float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255}
}

// ColorToVec4 converts c to [0, 1], keeping alpha.
func ColorToVec4(c Color) Vec4 {
	return Vec4{float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255, float64(c.A) / 255}
}

// channelToByte clamps v to [0, 1] and scales it to [0, 255], truncating
// toward zero.
func channelToByte(v float64) uint8 {
	return uint8(Clamp01(v) * 255)
}

// Vec3ToColor is the inverse of ColorToVec3. Alpha is opaque.
func Vec3ToColor(v Vec3) Color {
	return Color{channelToByte(v.X), channelToByte(v.Y), channelToByte(v.Z), 255}
}

// Vec4ToColor is the inverse of ColorToVec4.
func Vec4ToColor(v Vec4) Color {
	return Color{channelToByte(v.X), channelToByte(v.Y), channelToByte(v.Z), channelToByte(v.W)}
}

// Unproject maps a screen point through the inverse of the 4x4 view-projection
// matrix viewProj, at the given depth plane, and returns the world point.
//
// If viewProj cannot be inverted the point is returned unchanged.
func Unproject(p Vec2, viewProj mat.Matrix, depth float64) Vec2 {
	var inv mat.Dense
	if !invertTransform(&inv, viewProj) {
		Logger().Warn("nodegraph: singular view transform, unproject falls back to identity")
		return p
	}
	in := mat.NewVecDense(4, []float64{p.X, p.Y, depth, 1})
	var out mat.VecDense
	out.MulVec(&inv, in)
	x, y, w := out.AtVec(0), out.AtVec(1), out.AtVec(3)
	if w != 0 && w != 1 {
		x /= w
		y /= w
	}
	return Vec2{x, y}
}

// Project maps a world point through viewProj and returns the screen point.
func Project(p Vec2, viewProj mat.Matrix, depth float64) Vec2 {
	in := mat.NewVecDense(4, []float64{p.X, p.Y, depth, 1})
	var out mat.VecDense
	out.MulVec(viewProj, in)
	x, y, w := out.AtVec(0), out.AtVec(1), out.AtVec(3)
	if w != 0 && w != 1 {
		x /= w
		y /= w
	}
	return Vec2{x, y}
}

// invertTransform stores the inverse of m in dst. It reports false, leaving
// dst untouched, when m is singular or too ill-conditioned to invert.
func invertTransform(dst *mat.Dense, m mat.Matrix) bool {
	if math.Abs(mat.Det(m)) < singularEpsilon {
		return false
	}
	var inv mat.Dense
	if err := inv.Inverse(m); err != nil {
		return false
	}
	dst.CloneFrom(&inv)
	return true
}
