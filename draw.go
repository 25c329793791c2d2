package nodegraph

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const (
	linkWidth   = 2
	borderWidth = 1
	titlePadX   = 4
	titlePadY   = 3
)

var titleFace = text.NewGoXFace(basicfont.Face7x13)

// NRGBA converts c to a color.NRGBA for drawing APIs.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// DrawPanel renders p's graph, pending link, preview node and rubber band
// into dst with the panel's current view.
func DrawPanel(dst *ebiten.Image, p *Panel) {
	v := p.View()
	pal := v.Style.Colors
	g := p.Graph()

	dst.Fill(pal.Background.NRGBA())

	for _, l := range g.Links() {
		a := l.Output.Anchor(g.Parent(l.Output))
		b := l.Input.Anchor(g.Parent(l.Input))
		drawRoute(dst, v, Route(a, b, v.Style), pal.Link)
	}

	for _, n := range g.Nodes() {
		drawNode(dst, v, g, n)
	}
	if pre := p.Preview(); pre != nil {
		drawNode(dst, v, g, pre)
	}

	if from, _ := p.PendingLink(); from != nil {
		a := from.Anchor(g.Parent(from))
		b := p.Cursor()
		if from.Role == RoleInput {
			a, b = b, a
		}
		drawRoute(dst, v, Route(a, b, v.Style), pal.PendingLink)
	}

	if box, ok := p.SelectionBox(); ok {
		r := v.WorldRectToScreen(box)
		vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height),
			pal.SelectionFill.NRGBA(), false)
		vector.StrokeRect(dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height),
			borderWidth, pal.SelectionBorder.NRGBA(), false)
	}
}

func drawRoute(dst *ebiten.Image, v View, paths [][]Vec2, c Color) {
	clr := c.NRGBA()
	for _, path := range paths {
		for i := 1; i < len(path); i++ {
			a := v.WorldToScreen(path[i-1])
			b := v.WorldToScreen(path[i])
			vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), linkWidth, clr, true)
		}
	}
}

func drawNode(dst *ebiten.Image, v View, g *Graph, n *Node) {
	pal := v.Style.Colors
	r := v.WorldRectToScreen(n.HitRect())
	header := n.Metrics.HeaderHeight * v.Zoom

	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height),
		pal.NodeBody.NRGBA(), false)
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.Width), float32(header),
		pal.NodeHeader.NRGBA(), false)

	border := pal.NodeBorder
	switch {
	case n.Selected:
		border = pal.NodeSelected
	case n.Hovered:
		border = pal.NodeHovered
	case g.Contains(n) && !n.IsValid():
		border = pal.NodeInvalid
	}
	vector.StrokeRect(dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height),
		borderWidth, border.NRGBA(), false)

	for _, c := range n.Connectors() {
		cr := v.WorldRectToScreen(c.VisibleArea(n))
		fill := pal.Connector
		if c.Linked() {
			fill = pal.ConnectorLinked
		}
		vector.DrawFilledRect(dst, float32(cr.X), float32(cr.Y), float32(cr.Width), float32(cr.Height),
			fill.NRGBA(), false)
	}

	if !v.ShowText() {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(r.X+titlePadX, r.Y+titlePadY)
	op.ColorScale.ScaleWithColor(pal.Text.NRGBA())
	text.Draw(dst, n.Title(), titleFace, op)
}
