package ports

import (
	"image"
	"image/color"
)

// TextMeasurer reports the advance width of text in the monospace face.
type TextMeasurer interface {
	// MeasureText returns the summed per-rune advance of text at fontSize,
	// rounded up to a whole pixel.
	MeasureText(text string, fontSize float64) int
}

// Renderer abstracts the drawing backend.
type Renderer interface {
	TextMeasurer

	// CreateCanvas creates a canvas filled with bg.
	CreateCanvas(width, height int, bg color.Color) Canvas

	// EncodePNG encodes an image as PNG.
	EncodePNG(img image.Image) ([]byte, error)
}

// Canvas provides the drawing operations used to render a code card.
type Canvas interface {
	TextMeasurer

	// DrawText draws text with the top of its line box at y.
	// It returns the advance width in pixels.
	DrawText(text string, x, y int, style TextStyle) int

	// DrawRect draws a filled rectangle.
	DrawRect(x, y, w, h int, c color.Color)

	// DrawLine draws a straight stroke between two points.
	DrawLine(x1, y1, x2, y2 int, c color.Color, width float64)

	// DrawWave draws a wavy stroke along y from x1 to x2.
	DrawWave(x1, x2, y int, c color.Color, width float64)

	// ToImage returns the canvas contents as straight-alpha NRGBA.
	ToImage() *image.NRGBA
}

// TextStyle defines text rendering properties.
type TextStyle struct {
	FontSize   float64
	LineHeight float64 // Height of the line box the glyphs are centred in
	Color      color.Color
	Bold       bool
}
