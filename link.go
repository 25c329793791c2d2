package nodegraph

import (
	"fmt"
	"math"
)

// Link joins one output connector to one input connector. It does not own
// either endpoint.
type Link struct {
	Output *Connector
	Input  *Connector
}

// Touches reports whether c is one of the link's endpoints.
func (l *Link) Touches(c *Connector) bool {
	return c != nil && (l.Output == c || l.Input == c)
}

// Other returns the endpoint opposite c, or nil if c is not an endpoint.
func (l *Link) Other(c *Connector) *Connector {
	switch c {
	case nil:
		return nil
	case l.Output:
		return l.Input
	case l.Input:
		return l.Output
	}
	return nil
}

func (l *Link) String() string {
	return fmt.Sprintf("link(%v -> %v)", l.Output, l.Input)
}

// LinkStyle selects how links are routed between their anchors.
type LinkStyle uint8

const (
	LinkDirect    LinkStyle = iota // straight segment
	LinkRectangle                  // orthogonal elbow through the horizontal midpoint
	LinkCurve                      // cubic bezier with horizontal tangents
	LinkDummy                      // two short stubs, no connecting segment
)

var linkStyleNames = [...]string{
	LinkDirect:    "direct",
	LinkRectangle: "rectangle",
	LinkCurve:     "curve",
	LinkDummy:     "dummy",
}

func (s LinkStyle) String() string {
	if int(s) < len(linkStyleNames) {
		return linkStyleNames[s]
	}
	return "unknown"
}

// ParseLinkStyle maps a style name to a LinkStyle.
func ParseLinkStyle(name string) (LinkStyle, bool) {
	for i, n := range linkStyleNames {
		if n == name {
			return LinkStyle(i), true
		}
	}
	return LinkDirect, false
}

const (
	defaultCurveSegments = 16
	minCurveTangent      = 30.0
)

// Route returns the polylines to draw for a link from output anchor a to
// input anchor b under style s. Every style but LinkDummy yields a single
// polyline. When s.DummyThreshold is positive, links longer than it are
// drawn as dummies regardless of s.LinkStyle.
func Route(a, b Vec2, s Style) [][]Vec2 {
	style := s.LinkStyle
	if s.DummyThreshold > 0 && b.Sub(a).Len() > s.DummyThreshold {
		style = LinkDummy
	}

	switch style {
	case LinkRectangle:
		midX := (a.X + b.X) / 2
		return [][]Vec2{{a, {midX, a.Y}, {midX, b.Y}, b}}
	case LinkCurve:
		return [][]Vec2{curve(a, b, s.CurveSegments)}
	case LinkDummy:
		stub := s.StubLength
		return [][]Vec2{
			{a, {a.X + stub, a.Y}},
			{{b.X - stub, b.Y}, b},
		}
	default:
		return [][]Vec2{{a, b}}
	}
}

// curve samples a cubic bezier leaving a and entering b horizontally.
func curve(a, b Vec2, segments int) []Vec2 {
	if segments <= 0 {
		segments = defaultCurveSegments
	}
	d := math.Max(math.Abs(b.X-a.X)/2, minCurveTangent)
	c1 := Vec2{a.X + d, a.Y}
	c2 := Vec2{b.X - d, b.Y}

	pts := make([]Vec2, 0, segments+1)
	for i := 0; i <= segments; i++ {
		t := float64(i) / float64(segments)
		u := 1 - t
		w0 := u * u * u
		w1 := 3 * u * u * t
		w2 := 3 * u * t * t
		w3 := t * t * t
		pts = append(pts, Vec2{
			X: w0*a.X + w1*c1.X + w2*c2.X + w3*b.X,
			Y: w0*a.Y + w1*c1.Y + w2*c2.Y + w3*b.Y,
		})
	}
	return pts
}
