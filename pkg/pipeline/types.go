package pipeline

import (
	"image"
	"image/color"
)

// =============================================================================
// Document Types
// =============================================================================

// Span is a highlighted byte range [Start, End) of its owning line's text.
// End may run past the end of the text; renderers clamp it.
type Span struct {
	Start     int    `json:"start"`
	End       int    `json:"end"`
	Fg        string `json:"fg,omitempty"` // Hex foreground color, empty = default
	Bg        string `json:"bg,omitempty"` // Hex background color, empty = none
	Bold      bool   `json:"bold,omitempty"`
	Italic    bool   `json:"italic,omitempty"`
	Underline bool   `json:"underline,omitempty"`
	Undercurl bool   `json:"undercurl,omitempty"`
}

// Line is one row of source text with its ordered, non-overlapping spans.
type Line struct {
	Text  string `json:"text"`
	Spans []Span `json:"spans"`
}

// Document is the ordered list of lines to render, top to bottom.
type Document struct {
	Lines []Line `json:"lines"`
}

// DefaultRenderScale is used whenever a non-positive scale is configured.
const DefaultRenderScale = 2.0

// RenderScale returns scale if it is positive and DefaultRenderScale otherwise.
func RenderScale(scale float64) float64 {
	if scale > 0 {
		return scale
	}
	return DefaultRenderScale
}

// ScalePx converts a nominal value to render pixels.
// The result is truncated toward zero; all dimension math goes through here
// so that computed sizes are exact and reproducible.
func ScalePx(value, scale float64) int {
	return int(value * scale)
}

// =============================================================================
// Layout Stage Types
// =============================================================================

// LayoutInput contains the document and the nominal metrics to lay out.
type LayoutInput struct {
	Document    Document
	FontSize    float64 // Nominal font size in px (default: 20)
	LineHeight  float64 // Nominal line height in px (default: 28)
	Padding     float64 // Nominal padding in px (default: 80)
	Scale       float64 // Render scale (default: 2.0)
	LineNumbers bool
	StartLine   int // First line number (default: 1)
}

// DefaultLayoutInput returns LayoutInput with default values.
func DefaultLayoutInput() LayoutInput {
	return LayoutInput{
		FontSize:   20,
		LineHeight: 28,
		Padding:    80,
		Scale:      DefaultRenderScale,
		StartLine:  1,
	}
}

// LayoutResult contains the card dimensions at render resolution.
type LayoutResult struct {
	Width        int
	Height       int
	ContentWidth int
	GutterWidth  int

	Scale      float64 // Effective render scale
	FontSize   float64 // Scaled font size
	LineHeight float64 // Scaled line height
	Padding    int     // Scaled padding
}

// LineTop returns the y coordinate of the top of the line box for index.
func (l LayoutResult) LineTop(index int) int {
	return l.Padding + ScalePx(float64(index), l.LineHeight)
}

// =============================================================================
// Card Stage Types
// =============================================================================

// CardInput contains parameters for rendering the text card.
type CardInput struct {
	Document    Document
	Layout      LayoutResult
	Theme       CardTheme
	LineNumbers bool
	StartLine   int
	Decorations bool // Render span bg/underline/undercurl/bold
}

// CardTheme defines the card colors.
type CardTheme struct {
	Background color.Color
	Foreground color.Color
	LineNumber color.Color
}

// DefaultCardTheme returns the One Dark inspired default theme.
func DefaultCardTheme() CardTheme {
	return CardTheme{
		Background: color.NRGBA{R: 0x28, G: 0x2c, B: 0x34, A: 0xff},
		Foreground: color.NRGBA{R: 0xab, G: 0xb2, B: 0xbf, A: 0xff},
		LineNumber: color.NRGBA{R: 0x5c, G: 0x63, B: 0x70, A: 0xff},
	}
}

// OrDefault fills unset colors from DefaultCardTheme.
func (t CardTheme) OrDefault() CardTheme {
	d := DefaultCardTheme()
	if t.Background == nil {
		t.Background = d.Background
	}
	if t.Foreground == nil {
		t.Foreground = d.Foreground
	}
	if t.LineNumber == nil {
		t.LineNumber = d.LineNumber
	}
	return t
}

// CardResult contains the rendered card.
type CardResult struct {
	Image *image.NRGBA
}

// =============================================================================
// Corner Stage Types
// =============================================================================

// CornerInput contains an image whose corners get rounded in place.
type CornerInput struct {
	Image  *image.NRGBA
	Radius int // Radius in render pixels, 0 = no-op
}

// CornerResult returns the same image after masking.
type CornerResult struct {
	Image *image.NRGBA
}

// =============================================================================
// Frame Stage Types
// =============================================================================

// FrameInput contains parameters for placing the card on the outer canvas.
type FrameInput struct {
	Card            *image.NRGBA
	Shadow          bool
	ShadowSpec      ShadowSpec
	OuterBackground color.NRGBA
	OuterPadding    int // Extra room around the blur margin (shadow path)
	Margin          int // Fixed margin (no-shadow path)
}

// ShadowSpec describes the drop shadow in render pixels.
type ShadowSpec struct {
	Sigma   float64
	Opacity float64
	OffsetX int
	OffsetY int
}

// NewShadowSpec converts nominal shadow settings to render pixels.
func NewShadowSpec(blur, opacity, offsetX, offsetY, scale float64) ShadowSpec {
	return ShadowSpec{
		Sigma:   blur * scale,
		Opacity: opacity,
		OffsetX: ScalePx(offsetX, scale),
		OffsetY: ScalePx(offsetY, scale),
	}
}

// FrameResult contains the framed image.
type FrameResult struct {
	Image *image.NRGBA
}
