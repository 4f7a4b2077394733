package mocks

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"sync"
	"unicode/utf8"

	"github.com/user/codesnap/pkg/ports"
)

// MonoWidth is the default mock measurement: every rune advances
// ceil(0.6 * fontSize) pixels.
func MonoWidth(text string, fontSize float64) int {
	return utf8.RuneCountInString(text) * int(math.Ceil(fontSize*0.6))
}

// Renderer is a mock implementation of ports.Renderer.
// Canvases it creates are real NRGBA images so stages can inspect pixels.
type Renderer struct {
	MeasureTextFunc  func(text string, fontSize float64) int
	CreateCanvasFunc func(width, height int, bg color.Color) ports.Canvas
	EncodePNGFunc    func(img image.Image) ([]byte, error)

	mu       sync.Mutex
	canvases []*Canvas
}

func (m *Renderer) MeasureText(text string, fontSize float64) int {
	if m.MeasureTextFunc != nil {
		return m.MeasureTextFunc(text, fontSize)
	}
	return MonoWidth(text, fontSize)
}

func (m *Renderer) CreateCanvas(width, height int, bg color.Color) ports.Canvas {
	if m.CreateCanvasFunc != nil {
		return m.CreateCanvasFunc(width, height, bg)
	}
	c := NewCanvas(width, height, bg, m)
	m.mu.Lock()
	m.canvases = append(m.canvases, c)
	m.mu.Unlock()
	return c
}

func (m *Renderer) EncodePNG(img image.Image) ([]byte, error) {
	if m.EncodePNGFunc != nil {
		return m.EncodePNGFunc(img)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Canvases returns the canvases created so far.
func (m *Renderer) Canvases() []*Canvas {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*Canvas(nil), m.canvases...)
}

var _ ports.Renderer = (*Renderer)(nil)

// TextCall records a DrawText call.
type TextCall struct {
	Text  string
	X, Y  int
	Style ports.TextStyle
}

// RectCall records a DrawRect call.
type RectCall struct {
	X, Y, W, H int
	Color      color.Color
}

// LineCall records a DrawLine or DrawWave call.
type LineCall struct {
	X1, Y1, X2, Y2 int
	Color          color.Color
	Wave           bool
}

// Canvas records drawing calls. Rectangles are painted into the backing
// image; text and lines are recorded only.
type Canvas struct {
	mu       sync.Mutex
	img      *image.NRGBA
	measurer ports.TextMeasurer

	Texts []TextCall
	Rects []RectCall
	Lines []LineCall
}

// NewCanvas creates a canvas filled with bg. A nil measurer uses MonoWidth.
func NewCanvas(width, height int, bg color.Color, measurer ports.TextMeasurer) *Canvas {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	return &Canvas{img: img, measurer: measurer}
}

func (m *Canvas) MeasureText(text string, fontSize float64) int {
	if m.measurer == nil {
		return MonoWidth(text, fontSize)
	}
	return m.measurer.MeasureText(text, fontSize)
}

func (m *Canvas) DrawText(text string, x, y int, style ports.TextStyle) int {
	m.mu.Lock()
	m.Texts = append(m.Texts, TextCall{Text: text, X: x, Y: y, Style: style})
	m.mu.Unlock()
	return m.MeasureText(text, style.FontSize)
}

func (m *Canvas) DrawRect(x, y, w, h int, c color.Color) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Rects = append(m.Rects, RectCall{X: x, Y: y, W: w, H: h, Color: c})
	draw.Draw(m.img, image.Rect(x, y, x+w, y+h), image.NewUniform(c), image.Point{}, draw.Src)
}

func (m *Canvas) DrawLine(x1, y1, x2, y2 int, c color.Color, width float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Lines = append(m.Lines, LineCall{X1: x1, Y1: y1, X2: x2, Y2: y2, Color: c})
}

func (m *Canvas) DrawWave(x1, x2, y int, c color.Color, width float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Lines = append(m.Lines, LineCall{X1: x1, Y1: y, X2: x2, Y2: y, Color: c, Wave: true})
}

func (m *Canvas) ToImage() *image.NRGBA {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := image.NewNRGBA(m.img.Bounds())
	copy(out.Pix, m.img.Pix)
	return out
}

var _ ports.Canvas = (*Canvas)(nil)
