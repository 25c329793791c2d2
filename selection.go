package nodegraph

// updateHighlight applies the rubber band to every selectable node.
//
// With no modifier the band replaces the selection, and a band of 1 unit or
// less in either direction selects nothing. Ctrl adds intersecting nodes;
// alt removes them. Ctrl is checked before alt.
func (p *Panel) updateHighlight() {
	band := RectFromCorners(p.boxOrigin, p.boxCurrent)
	usable := band.Width > 1 && band.Height > 1

	for _, n := range p.graph.Nodes() {
		if !n.Selectable {
			continue
		}
		hit := n.HitRect().Intersects(band)
		switch {
		case p.ctrlHeld:
			if hit {
				n.Selected = true
			}
		case p.altHeld:
			if hit {
				n.Selected = false
			}
		default:
			n.Selected = hit && usable
		}
	}
}

// selectAt runs a point selection at world point w with the same modifier
// rules as the rubber band, then notifies.
func (p *Panel) selectAt(w Vec2) {
	before := p.graph.NodeCount(true)
	for _, n := range p.graph.Nodes() {
		if !n.Selectable {
			continue
		}
		hit := n.HitRect().Contains(w.X, w.Y)
		switch {
		case p.ctrlHeld:
			if hit {
				n.Selected = true
			}
		case p.altHeld:
			if hit {
				n.Selected = false
			}
		default:
			n.Selected = hit
		}
	}
	p.notifySelection(before)
}

// notifySelection fires selection-changed with the selected count, or
// selection-cleared with before when nothing is selected.
func (p *Panel) notifySelection(before int) {
	if count := p.graph.NodeCount(true); count > 0 {
		p.fireSelectionChanged(count)
		return
	}
	p.fireSelectionCleared(before)
}

// SelectAll selects every selectable node.
func (p *Panel) SelectAll() {
	for _, n := range p.graph.Nodes() {
		if n.Selectable {
			n.Selected = true
		}
	}
	p.notifySelection(0)
	p.requestRedraw()
}

// ClearSelection deselects every node.
func (p *Panel) ClearSelection() {
	before := p.graph.NodeCount(true)
	for _, n := range p.graph.Nodes() {
		n.Selected = false
	}
	p.notifySelection(before)
	p.requestRedraw()
}
