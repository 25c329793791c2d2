package nodegraph

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Host runs a Panel as an ebiten.Game: it polls mouse, wheel and keyboard
// state every tick, feeds it to the panel and draws the panel with DrawPanel.
type Host struct {
	panel  *Panel
	script *Script

	lastX, lastY int
	havePointer  bool
	keyBuf       []ebiten.Key
}

// NewHost wraps p for ebiten.RunGame.
func NewHost(p *Panel) *Host {
	return &Host{panel: p}
}

// Panel returns the hosted panel.
func (h *Host) Panel() *Panel { return h.panel }

// SetScript replays s, one step per tick, in place of real input until it is
// done.
func (h *Host) SetScript(s *Script) {
	h.script = s
}

var hostButtons = [...]struct {
	ebiten ebiten.MouseButton
	button MouseButton
}{
	{ebiten.MouseButtonLeft, MouseButtonLeft},
	{ebiten.MouseButtonMiddle, MouseButtonMiddle},
	{ebiten.MouseButtonRight, MouseButtonRight},
}

// Update implements ebiten.Game.
func (h *Host) Update() error {
	p := h.panel
	dt := float32(1.0 / float64(ebiten.TPS()))

	if h.script != nil && !h.script.Done() {
		h.script.Step(p)
		p.Tick(dt)
		return nil
	}

	h.keyBuf = inpututil.AppendJustPressedKeys(h.keyBuf[:0])
	for _, k := range h.keyBuf {
		if key := keyFromEbiten(k); key != KeyUnknown {
			p.KeyDown(key)
		}
	}
	h.keyBuf = inpututil.AppendJustReleasedKeys(h.keyBuf[:0])
	for _, k := range h.keyBuf {
		if key := keyFromEbiten(k); key != KeyUnknown {
			p.KeyUp(key)
		}
	}

	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)
	if !h.havePointer || mx != h.lastX || my != h.lastY {
		h.havePointer = true
		h.lastX, h.lastY = mx, my
		p.PointerMove(x, y)
	}

	for _, b := range hostButtons {
		if inpututil.IsMouseButtonJustPressed(b.ebiten) {
			p.PointerDown(b.button, x, y)
		}
		if inpututil.IsMouseButtonJustReleased(b.ebiten) {
			p.PointerUp(b.button, x, y)
		}
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		p.Wheel(wy, x, y)
	}

	p.Tick(dt)
	return nil
}

// Draw implements ebiten.Game.
func (h *Host) Draw(screen *ebiten.Image) {
	DrawPanel(screen, h.panel)
}

// Layout implements ebiten.Game. The panel fills the window.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	h.panel.SetSize(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}

// keyFromEbiten maps the ebiten keys the panel reacts to.
func keyFromEbiten(k ebiten.Key) Key {
	switch k {
	case ebiten.KeyAlt, ebiten.KeyAltLeft, ebiten.KeyAltRight:
		return KeyAlt
	case ebiten.KeyControl, ebiten.KeyControlLeft, ebiten.KeyControlRight:
		return KeyControl
	case ebiten.KeyDelete, ebiten.KeyBackspace:
		return KeyDelete
	case ebiten.KeyEscape:
		return KeyEscape
	default:
		return KeyUnknown
	}
}
