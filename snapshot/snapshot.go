// Package snapshot renders a nodegraph panel to an image without a window,
// for golden tests and documentation.
package snapshot

import (
	"fmt"
	"image"

	"github.com/gogpu/gg"

	"github.com/phanxgames/nodegraph"
)

const (
	linkWidth   = 2
	borderWidth = 1
)

// Render draws p's graph, pending link, preview node and rubber band with the
// panel's current view into a new width x height image.
func Render(p *nodegraph.Panel, width, height int) image.Image {
	dc := gg.NewContext(width, height)
	defer dc.Close()
	draw(dc, p)
	return dc.Image()
}

// SavePNG renders p like Render and writes the result to path.
func SavePNG(p *nodegraph.Panel, width, height int, path string) error {
	dc := gg.NewContext(width, height)
	defer dc.Close()
	draw(dc, p)
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("snapshot: save %s: %w", path, err)
	}
	return nil
}

func draw(dc *gg.Context, p *nodegraph.Panel) {
	v := p.View()
	pal := v.Style.Colors
	g := p.Graph()

	dc.ClearWithColor(gg.FromColor(pal.Background.NRGBA()))

	for _, l := range g.Links() {
		a := l.Output.Anchor(g.Parent(l.Output))
		b := l.Input.Anchor(g.Parent(l.Input))
		strokeRoute(dc, v, nodegraph.Route(a, b, v.Style), pal.Link)
	}

	for _, n := range g.Nodes() {
		drawNode(dc, v, n)
	}
	if pre := p.Preview(); pre != nil {
		drawNode(dc, v, pre)
	}

	if from, _ := p.PendingLink(); from != nil {
		a := from.Anchor(g.Parent(from))
		b := p.Cursor()
		if from.Role == nodegraph.RoleInput {
			a, b = b, a
		}
		strokeRoute(dc, v, nodegraph.Route(a, b, v.Style), pal.PendingLink)
	}

	if box, ok := p.SelectionBox(); ok {
		r := v.WorldRectToScreen(box)
		fillRect(dc, r, pal.SelectionFill)
		strokeRect(dc, r, pal.SelectionBorder)
	}
}

func strokeRoute(dc *gg.Context, v nodegraph.View, paths [][]nodegraph.Vec2, c nodegraph.Color) {
	dc.SetColor(c.NRGBA())
	dc.SetLineWidth(linkWidth)
	for _, path := range paths {
		if len(path) < 2 {
			continue
		}
		s := v.WorldToScreen(path[0])
		dc.MoveTo(s.X, s.Y)
		for _, pt := range path[1:] {
			s = v.WorldToScreen(pt)
			dc.LineTo(s.X, s.Y)
		}
		_ = dc.Stroke()
	}
}

func drawNode(dc *gg.Context, v nodegraph.View, n *nodegraph.Node) {
	pal := v.Style.Colors
	r := v.WorldRectToScreen(n.HitRect())

	fillRect(dc, r, pal.NodeBody)
	header := r
	header.Height = n.Metrics.HeaderHeight * v.Zoom
	fillRect(dc, header, pal.NodeHeader)

	border := pal.NodeBorder
	switch {
	case n.Selected:
		border = pal.NodeSelected
	case n.Hovered:
		border = pal.NodeHovered
	case !n.IsValid():
		border = pal.NodeInvalid
	}
	strokeRect(dc, r, border)

	for _, c := range n.Connectors() {
		fill := pal.Connector
		if c.Linked() {
			fill = pal.ConnectorLinked
		}
		fillRect(dc, v.WorldRectToScreen(c.VisibleArea(n)), fill)
	}
}

func fillRect(dc *gg.Context, r nodegraph.Rect, c nodegraph.Color) {
	dc.SetColor(c.NRGBA())
	dc.DrawRectangle(r.X, r.Y, r.Width, r.Height)
	_ = dc.Fill()
}

func strokeRect(dc *gg.Context, r nodegraph.Rect, c nodegraph.Color) {
	dc.SetColor(c.NRGBA())
	dc.SetLineWidth(borderWidth)
	dc.DrawRectangle(r.X, r.Y, r.Width, r.Height)
	_ = dc.Stroke()
}
