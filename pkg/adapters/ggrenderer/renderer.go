// Package ggrenderer provides a renderer implementation using the gg library
// and a single monospace OpenType face.
package ggrenderer

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"sync"

	"github.com/fogleman/gg"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/user/codesnap/pkg/ports"
)

var (
	defaultFontOnce sync.Once
	defaultFont     *opentype.Font
	defaultFontErr  error
)

// Renderer implements ports.Renderer using the gg library.
type Renderer struct {
	font *opentype.Font

	mu    sync.Mutex
	faces map[float64]font.Face
}

// New creates a Renderer using the embedded Go Mono face.
func New() *Renderer {
	defaultFontOnce.Do(func() {
		defaultFont, defaultFontErr = opentype.Parse(gomono.TTF)
	})
	if defaultFontErr != nil {
		// The embedded font is part of the binary; failing to parse it is a build defect.
		panic(fmt.Sprintf("parse embedded font: %v", defaultFontErr))
	}
	return newRenderer(defaultFont)
}

// NewWithFont creates a Renderer from TTF or OTF font data.
func NewWithFont(data []byte) (*Renderer, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return newRenderer(f), nil
}

func newRenderer(f *opentype.Font) *Renderer {
	return &Renderer{
		font:  f,
		faces: make(map[float64]font.Face),
	}
}

// face returns the cached face for size, creating it on first use.
// It returns nil for sizes the font cannot be scaled to.
func (r *Renderer) face(size float64) font.Face {
	r.mu.Lock()
	defer r.mu.Unlock()

	if f, ok := r.faces[size]; ok {
		return f
	}
	f, err := opentype.NewFace(r.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil
	}
	r.faces[size] = f
	return f
}

// MeasureText returns the summed per-rune advance of text, rounded up.
func (r *Renderer) MeasureText(text string, fontSize float64) int {
	if text == "" || fontSize <= 0 {
		return 0
	}
	face := r.face(fontSize)
	if face == nil {
		return 0
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var width fixed.Int26_6
	for _, ch := range text {
		adv, _ := face.GlyphAdvance(ch)
		width += adv
	}
	return width.Ceil()
}

// CreateCanvas creates a new drawing canvas.
func (r *Renderer) CreateCanvas(width, height int, bg color.Color) ports.Canvas {
	dc := gg.NewContext(width, height)
	dc.SetColor(bg)
	dc.Clear()
	return &Canvas{dc: dc, r: r}
}

// EncodePNG encodes an image as PNG.
func (r *Renderer) EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}

var _ ports.Renderer = (*Renderer)(nil)

// Canvas implements ports.Canvas using gg.Context.
type Canvas struct {
	dc *gg.Context
	r  *Renderer
}

// MeasureText measures with the canvas's renderer.
func (c *Canvas) MeasureText(text string, fontSize float64) int {
	return c.r.MeasureText(text, fontSize)
}

// DrawText draws text with the top of its line box at y. Glyphs are centred
// vertically in style.LineHeight (or the font size when unset).
func (c *Canvas) DrawText(text string, x, y int, style ports.TextStyle) int {
	if text == "" || style.FontSize <= 0 {
		return 0
	}
	face := c.r.face(style.FontSize)
	if face == nil {
		return 0
	}

	c.r.mu.Lock()
	metrics := face.Metrics()
	c.r.mu.Unlock()

	lineHeight := style.LineHeight
	if lineHeight <= 0 {
		lineHeight = style.FontSize
	}
	ascent := float64(metrics.Ascent.Ceil())
	descent := float64(metrics.Descent.Ceil())
	baseline := float64(y) + math.Round((lineHeight+ascent-descent)/2)

	c.r.mu.Lock()
	c.dc.SetFontFace(face)
	c.dc.SetColor(style.Color)
	c.dc.DrawString(text, float64(x), baseline)
	if style.Bold {
		c.dc.DrawString(text, float64(x)+1, baseline)
	}
	c.r.mu.Unlock()

	return c.r.MeasureText(text, style.FontSize)
}

// DrawRect draws a filled rectangle.
func (c *Canvas) DrawRect(x, y, w, h int, col color.Color) {
	c.dc.SetColor(col)
	c.dc.DrawRectangle(float64(x), float64(y), float64(w), float64(h))
	c.dc.Fill()
}

// DrawLine draws a line between two points.
func (c *Canvas) DrawLine(x1, y1, x2, y2 int, col color.Color, width float64) {
	c.dc.SetColor(col)
	c.dc.SetLineWidth(width)
	c.dc.DrawLine(float64(x1), float64(y1), float64(x2), float64(y2))
	c.dc.Stroke()
}

// DrawWave draws an undercurl from x1 to x2 centred on y.
func (c *Canvas) DrawWave(x1, x2, y int, col color.Color, width float64) {
	if x2 <= x1 {
		return
	}
	amp := math.Max(width, 1)
	step := amp * 2

	c.dc.SetColor(col)
	c.dc.SetLineWidth(width)
	c.dc.MoveTo(float64(x1), float64(y))
	up := true
	for x := float64(x1); x < float64(x2); x += step {
		end := math.Min(x+step, float64(x2))
		cy := float64(y) + amp
		if up {
			cy = float64(y) - amp
		}
		c.dc.QuadraticTo((x+end)/2, cy, end, float64(y))
		up = !up
	}
	c.dc.Stroke()
}

// ToImage returns the canvas as straight-alpha NRGBA.
func (c *Canvas) ToImage() *image.NRGBA {
	src := c.dc.Image()
	bounds := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(dst, dst.Bounds(), src, bounds.Min, draw.Src)
	return dst
}

var _ ports.Canvas = (*Canvas)(nil)
