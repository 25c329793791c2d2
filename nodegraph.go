package nodegraph

import "math"

// Color is an 8-bit-per-channel RGBA color. Not premultiplied.
type Color struct {
	R, G, B, A uint8
}

// Vec2 is a 2D vector used for positions, offsets, and sizes throughout the API.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Len returns the euclidean length of v.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Vec3 is a three-component vector, used for RGB colors in [0, 1].
type Vec3 struct {
	X, Y, Z float64
}

// Vec4 is a four-component vector, used for RGBA colors in [0, 1].
type Vec4 struct {
	X, Y, Z, W float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting, so a
// zero-size rectangle intersects any rectangle containing its point.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Inflate grows the rectangle by d on all four sides.
func (r Rect) Inflate(d float64) Rect {
	return Rect{X: r.X - d, Y: r.Y - d, Width: r.Width + 2*d, Height: r.Height + 2*d}
}

// Translate returns the rectangle moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	minX := math.Min(r.X, other.X)
	minY := math.Min(r.Y, other.Y)
	maxX := math.Max(r.X+r.Width, other.X+other.Width)
	maxY := math.Max(r.Y+r.Height, other.Y+other.Height)
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// RectFromCorners builds a rectangle with non-negative size from two corners
// given in any order.
func RectFromCorners(a, b Vec2) Rect {
	minX, maxX := a.X, b.X
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	minY, maxY := a.Y, b.Y
	if minY > maxY {
		minY, maxY = maxY, minY
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// Key identifies a keyboard key the panel reacts to.
type Key uint8

const (
	KeyUnknown Key = iota
	KeyAlt
	KeyControl
	KeyDelete
	KeyEscape
)

// String returns the key's lowercase name as used in scripts.
func (k Key) String() string {
	switch k {
	case KeyAlt:
		return "alt"
	case KeyControl:
		return "ctrl"
	case KeyDelete:
		return "delete"
	case KeyEscape:
		return "escape"
	default:
		return "unknown"
	}
}

// parseKey maps a script key name to a Key. Unknown names yield KeyUnknown.
func parseKey(name string) Key {
	switch name {
	case "alt":
		return KeyAlt
	case "ctrl", "control":
		return KeyControl
	case "delete", "del":
		return KeyDelete
	case "escape", "esc":
		return KeyEscape
	default:
		return KeyUnknown
	}
}

// EditMode is the interaction state of a Panel. Exactly one is active.
type EditMode uint8

const (
	ModeIdle            EditMode = iota // hover tracking, waiting for a press
	ModeScrolling                       // middle-button pan
	ModeZooming                         // reserved; no transition enters it
	ModeSelecting                       // rubber band started, no move yet
	ModeSelectingBox                    // rubber band being dragged
	ModeMovingSelection                 // dragging selected nodes
	ModeLinking                         // dragging a new link from a connector
)

var editModeNames = [...]string{
	ModeIdle:            "idle",
	ModeScrolling:       "scrolling",
	ModeZooming:         "zooming",
	ModeSelecting:       "selecting",
	ModeSelectingBox:    "selecting-box",
	ModeMovingSelection: "moving-selection",
	ModeLinking:         "linking",
}

func (m EditMode) String() string {
	if int(m) < len(editModeNames) {
		return editModeNames[m]
	}
	return "unknown"
}

// Role tells whether a connector receives or produces data.
type Role uint8

const (
	RoleInput  Role = iota // drawn on the left edge of its node
	RoleOutput             // drawn on the right edge of its node
)

func (r Role) String() string {
	if r == RoleOutput {
		return "output"
	}
	return "input"
}

// HitKind classifies the result of a hit test.
type HitKind uint8

const (
	HitNone      HitKind = iota // nothing under the point
	HitNode                     // the node body
	HitConnector                // one of the node's connectors
)
