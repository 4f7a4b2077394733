// Package card implements the text card rendering stage.
package card

import (
	"context"
	"encoding/json"
	"image"

	"github.com/user/codesnap/pkg/pipeline"
	"github.com/user/codesnap/pkg/ports"
	"github.com/user/codesnap/pkg/stages/layout"
)

// Options control what RenderLine draws besides the text itself.
type Options struct {
	LineNumbers bool
	StartLine   int
	Decorations bool
}

// Stage draws every line of the document onto a background-filled canvas.
type Stage struct {
	renderer ports.Renderer
	sink     ports.DebugSink
	logger   ports.Logger
}

// NewStage creates a new card stage.
func NewStage(renderer ports.Renderer, sink ports.DebugSink, logger ports.Logger) *Stage {
	return &Stage{
		renderer: renderer,
		sink:     sink,
		logger:   logger.WithComponent("card"),
	}
}

// Execute renders the card.
func (s *Stage) Execute(ctx context.Context, input pipeline.CardInput) (pipeline.CardResult, error) {
	if err := ctx.Err(); err != nil {
		return pipeline.CardResult{}, err
	}
	l := input.Layout
	theme := input.Theme.OrDefault()
	s.logger.Debug("Rendering %d lines on %dx%d canvas", len(input.Document.Lines), l.Width, l.Height)

	canvas := s.renderer.CreateCanvas(l.Width, l.Height, theme.Background)
	opts := Options{
		LineNumbers: input.LineNumbers,
		StartLine:   input.StartLine,
		Decorations: input.Decorations,
	}
	for i, line := range input.Document.Lines {
		if err := ctx.Err(); err != nil {
			return pipeline.CardResult{}, err
		}
		RenderLine(canvas, line, i, l, theme, opts)
	}

	img := canvas.ToImage()
	if s.sink.Enabled() {
		s.saveDebug(l, img)
	}

	s.logger.Debug("Card rendered")
	return pipeline.CardResult{Image: img}, nil
}

// RenderLine draws one line at row index. The cursor starts at the left
// padding and advances by the width of every run it draws.
func RenderLine(canvas ports.Canvas, line pipeline.Line, index int, l pipeline.LayoutResult, theme pipeline.CardTheme, opts Options) {
	x := l.Padding
	y := l.LineTop(index)
	base := ports.TextStyle{
		FontSize:   l.FontSize,
		LineHeight: l.LineHeight,
		Color:      theme.Foreground,
	}

	if opts.LineNumbers {
		gutter := base
		gutter.Color = theme.LineNumber
		canvas.DrawText(layout.GutterLabel(opts.StartLine+index), x, y, gutter)
		x += l.GutterWidth
	}

	for _, run := range Runs(line) {
		x += drawRun(canvas, run, x, y, l, base, opts.Decorations)
	}
}

func drawRun(canvas ports.Canvas, run Run, x, y int, l pipeline.LayoutResult, base ports.TextStyle, decorate bool) int {
	style := base
	if run.Span != nil && run.Span.Fg != "" {
		style.Color = pipeline.ParseHexColor(run.Span.Fg)
	}
	if run.Span == nil || !decorate {
		return canvas.DrawText(run.Text, x, y, style)
	}

	span := run.Span
	if span.Bg != "" {
		w := canvas.MeasureText(run.Text, style.FontSize)
		canvas.DrawRect(x, y, w, int(l.LineHeight), pipeline.ParseHexColor(span.Bg))
	}
	style.Bold = span.Bold
	w := canvas.DrawText(run.Text, x, y, style)

	stroke := l.Scale
	underlineY := y + int(l.LineHeight) - pipeline.ScalePx(4, l.Scale)
	if span.Underline {
		canvas.DrawLine(x, underlineY, x+w, underlineY, style.Color, stroke)
	}
	if span.Undercurl {
		canvas.DrawWave(x, x+w, underlineY, style.Color, stroke)
	}
	return w
}

func (s *Stage) saveDebug(l pipeline.LayoutResult, img *image.NRGBA) {
	data, err := json.MarshalIndent(l, "", "  ")
	if err == nil {
		err = s.sink.SaveLayoutJSON(data)
	}
	if err == nil {
		err = s.sink.SaveCard(img)
	}
	if err != nil {
		s.logger.Warn("Failed to save debug output: %s", err)
	}
}
