package nodegraph

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// View is the camera and style state of a Panel. It is a value: the panel
// replaces it wholesale on every pan or zoom, and View() hands out copies.
type View struct {
	// X and Y are the pan offset. Y is stored in the GL convention, so a
	// world point maps to screen ((wx-X)*Zoom, (wy+Y)*Zoom).
	X, Y float64
	// Zoom is the applied magnification (1 = one pixel per world unit). It
	// trails TargetZoom while zoom smoothing runs.
	Zoom float64
	// TargetZoom is where Zoom is heading.
	TargetZoom float64

	Style Style
}

// NewView returns an unpanned, unzoomed view using style.
func NewView(style Style) View {
	return View{Zoom: 1, TargetZoom: 1, Style: style}
}

// ViewProjection returns the 4x4 transform from world space to screen space.
func (v View) ViewProjection() *mat.Dense {
	z := v.Zoom
	return mat.NewDense(4, 4, []float64{
		z, 0, 0, -z * v.X,
		0, z, 0, z * v.Y,
		0, 0, 1, 0,
		0, 0, 0, 1,
	})
}

// WorldToScreen converts a world point to screen pixels.
func (v View) WorldToScreen(p Vec2) Vec2 {
	return Project(p, v.ViewProjection(), 0)
}

// ScreenToWorld converts screen pixels to a world point. A view with zero
// zoom cannot be inverted and maps points to themselves.
func (v View) ScreenToWorld(p Vec2) Vec2 {
	return Unproject(p, v.ViewProjection(), 0)
}

// WorldRectToScreen converts a world rectangle to screen pixels.
func (v View) WorldRectToScreen(r Rect) Rect {
	a := v.WorldToScreen(Vec2{r.X, r.Y})
	b := v.WorldToScreen(Vec2{r.X + r.Width, r.Y + r.Height})
	return RectFromCorners(a, b)
}

// Panned returns the view with its pan offset moved by (dx, dy).
func (v View) Panned(dx, dy float64) View {
	v.X += dx
	v.Y += dy
	return v
}

// CenteredOn returns the pan offset that puts world point p at the middle of
// a screen of the given size.
func (v View) CenteredOn(p Vec2, width, height float64) (x, y float64) {
	z := v.Zoom
	if z == 0 {
		z = 1
	}
	return p.X - width/(2*z), height/(2*z) - p.Y
}

// ZoomedTo returns the view with Zoom set to zoom while the world point under
// screen point anchor stays where it is.
func (v View) ZoomedTo(zoom float64, anchor Vec2) View {
	if zoom <= 0 {
		return v
	}
	w := v.ScreenToWorld(anchor)
	v.Zoom = zoom
	v.X = w.X - anchor.X/zoom
	v.Y = anchor.Y/zoom - w.Y
	return v
}

// WithTargetZoom returns the view with TargetZoom clamped to the style's
// zoom range.
func (v View) WithTargetZoom(zoom float64) View {
	v.TargetZoom = Clamp(zoom, v.Style.MinZoom, v.Style.MaxZoom)
	return v
}

// Smoothed advances Zoom one step toward TargetZoom around anchor. Once
// within the style's ZoomEpsilon it snaps. The second result reports whether
// Zoom changed.
func (v View) Smoothed(anchor Vec2) (View, bool) {
	if v.Zoom == v.TargetZoom {
		return v, false
	}
	next := v.TargetZoom
	if math.Abs(v.TargetZoom-v.Zoom) >= v.Style.ZoomEpsilon {
		next = v.Zoom + (v.TargetZoom-v.Zoom)*v.Style.ZoomSmoothing
		if math.Abs(v.TargetZoom-next) < v.Style.ZoomEpsilon {
			next = v.TargetZoom
		}
	}
	return v.ZoomedTo(next, anchor), true
}

// ShowText reports whether titles and connector labels are legible at the
// current zoom.
func (v View) ShowText() bool {
	return v.Zoom >= v.Style.MinTextZoom
}
