package nodegraph

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// Style holds the visual and interaction knobs of a View.
type Style struct {
	// LinkStyle selects link routing.
	LinkStyle LinkStyle `toml:"link_style"`
	// DummyThreshold, when positive, draws links longer than it as stubs.
	DummyThreshold float64 `toml:"dummy_threshold"`
	// StubLength is the length of each LinkDummy stub.
	StubLength float64 `toml:"stub_length"`
	// CurveSegments is the number of segments sampled for LinkCurve.
	CurveSegments int `toml:"curve_segments"`

	// MinTextZoom is the zoom below which titles and labels are not drawn.
	MinTextZoom float64 `toml:"min_text_zoom"`

	// EdgeScrollMargin is the distance in pixels from the panel edge at which
	// dragging starts scrolling the view.
	EdgeScrollMargin float64 `toml:"edge_scroll_margin"`
	// EdgeScrollStep is the pan per move, in pixels at zoom 1.
	EdgeScrollStep float64 `toml:"edge_scroll_step"`

	MinZoom float64 `toml:"min_zoom"`
	MaxZoom float64 `toml:"max_zoom"`
	// ZoomStep is the TargetZoom factor applied per wheel notch.
	ZoomStep float64 `toml:"zoom_step"`
	// ZoomSmoothing is the fraction of the remaining distance to TargetZoom
	// covered per tick.
	ZoomSmoothing float64 `toml:"zoom_smoothing"`
	// ZoomEpsilon is the distance below which Zoom snaps to TargetZoom.
	ZoomEpsilon float64 `toml:"zoom_epsilon"`

	Metrics Metrics `toml:"metrics"`
	Colors  Palette `toml:"colors"`
}

// Palette is the set of colors a renderer draws with.
type Palette struct {
	Background      Color `toml:"background"`
	NodeBody        Color `toml:"node_body"`
	NodeHeader      Color `toml:"node_header"`
	NodeBorder      Color `toml:"node_border"`
	NodeSelected    Color `toml:"node_selected"`
	NodeHovered     Color `toml:"node_hovered"`
	NodeInvalid     Color `toml:"node_invalid"`
	Text            Color `toml:"text"`
	Connector       Color `toml:"connector"`
	ConnectorLinked Color `toml:"connector_linked"`
	Link            Color `toml:"link"`
	PendingLink     Color `toml:"pending_link"`
	SelectionFill   Color `toml:"selection_fill"`
	SelectionBorder Color `toml:"selection_border"`
}

// DefaultStyle returns the stock style.
func DefaultStyle() Style {
	return Style{
		LinkStyle:        LinkCurve,
		StubLength:       24,
		CurveSegments:    defaultCurveSegments,
		MinTextZoom:      0.5,
		EdgeScrollMargin: 32,
		EdgeScrollStep:   10,
		MinZoom:          0.1,
		MaxZoom:          4,
		ZoomStep:         1.1,
		ZoomSmoothing:    0.25,
		ZoomEpsilon:      0.001,
		Metrics:          DefaultMetrics(),
		Colors: Palette{
			Background:      Color{35, 30, 45, 255},
			NodeBody:        Color{60, 60, 72, 255},
			NodeHeader:      Color{85, 85, 110, 255},
			NodeBorder:      Color{20, 20, 24, 255},
			NodeSelected:    Color{255, 180, 50, 255},
			NodeHovered:     Color{140, 200, 255, 255},
			NodeInvalid:     Color{200, 70, 70, 255},
			Text:            Color{235, 235, 235, 255},
			Connector:       Color{150, 150, 150, 255},
			ConnectorLinked: Color{90, 220, 120, 255},
			Link:            Color{200, 200, 200, 255},
			PendingLink:     Color{255, 235, 90, 255},
			SelectionFill:   Color{80, 140, 255, 48},
			SelectionBorder: Color{80, 140, 255, 200},
		},
	}
}

// LoadStyle decodes a TOML document over DefaultStyle. Keys absent from data
// keep their defaults; unknown keys and out-of-range values are errors.
//
// Example document:
//
//	link_style = "rectangle"
//	min_zoom = 0.25
//
//	[metrics]
//	connector_pitch = 18
//
//	[colors]
//	background = "#101018"
func LoadStyle(data []byte) (Style, error) {
	s := DefaultStyle()
	md, err := toml.Decode(string(data), &s)
	if err != nil {
		return Style{}, fmt.Errorf("parse style: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Style{}, fmt.Errorf("parse style: unknown keys %s", strings.Join(keys, ", "))
	}
	if err := s.Validate(); err != nil {
		return Style{}, fmt.Errorf("parse style: %w", err)
	}
	return s, nil
}

// Validate checks the zoom range and smoothing factor.
func (s Style) Validate() error {
	var errs []error
	if s.MinZoom <= 0 {
		errs = append(errs, fmt.Errorf("min_zoom must be positive, got %v", s.MinZoom))
	}
	if s.MaxZoom < s.MinZoom {
		errs = append(errs, fmt.Errorf("max_zoom %v is below min_zoom %v", s.MaxZoom, s.MinZoom))
	}
	if s.ZoomStep <= 1 {
		errs = append(errs, fmt.Errorf("zoom_step must be greater than 1, got %v", s.ZoomStep))
	}
	if s.ZoomSmoothing <= 0 || s.ZoomSmoothing > 1 {
		errs = append(errs, fmt.Errorf("zoom_smoothing must be in (0, 1], got %v", s.ZoomSmoothing))
	}
	return errors.Join(errs...)
}

// UnmarshalText implements encoding.TextUnmarshaler for style files.
func (s *LinkStyle) UnmarshalText(text []byte) error {
	parsed, ok := ParseLinkStyle(string(text))
	if !ok {
		return fmt.Errorf("unknown link style %q", text)
	}
	*s = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (s LinkStyle) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText parses "#rrggbb" or "#rrggbbaa".
func (c *Color) UnmarshalText(text []byte) error {
	s := strings.TrimPrefix(string(text), "#")
	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("color %q: want #rrggbb or #rrggbbaa", text)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fmt.Errorf("color %q: %w", text, err)
	}
	if len(s) == 6 {
		v = v<<8 | 0xff
	}
	*c = Color{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}
	return nil
}

// MarshalText formats the color as "#rrggbbaa".
func (c Color) MarshalText() ([]byte, error) {
	return []byte(fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)), nil
}
