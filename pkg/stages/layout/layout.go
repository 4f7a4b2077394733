// Package layout implements the card dimension stage.
package layout

import (
	"context"
	"fmt"

	"github.com/user/codesnap/pkg/pipeline"
	"github.com/user/codesnap/pkg/ports"
)

// emptyContentWidth is the nominal content width used for a document without lines.
const emptyContentWidth = 800

// Stage computes card dimensions from the document and metrics.
type Stage struct {
	measurer ports.TextMeasurer
	logger   ports.Logger
}

// NewStage creates a new layout stage.
func NewStage(measurer ports.TextMeasurer, logger ports.Logger) *Stage {
	return &Stage{
		measurer: measurer,
		logger:   logger.WithComponent("layout"),
	}
}

// Execute computes the layout.
func (s *Stage) Execute(ctx context.Context, input pipeline.LayoutInput) (pipeline.LayoutResult, error) {
	s.logger.Debug("Computing layout for %d lines", len(input.Document.Lines))
	result := ComputeLayout(input, s.measurer)
	s.logger.Debug("Layout computed: %dx%d card, gutter %d", result.Width, result.Height, result.GutterWidth)
	return result, nil
}

// GutterLabel formats a line number the way it is drawn in the gutter.
func GutterLabel(n int) string {
	return fmt.Sprintf("%4d  ", n)
}

// ComputeLayout derives the card size at render resolution.
//
//	width  = max line width + gutter + 2*padding
//	height = lines * line height + 2*padding
//
// The gutter is sized for the label of start_line+len(lines), one past the
// last number drawn, so it never shrinks below what the last label needs.
func ComputeLayout(input pipeline.LayoutInput, measurer ports.TextMeasurer) pipeline.LayoutResult {
	scale := pipeline.RenderScale(input.Scale)
	fontSize := input.FontSize * scale
	lineHeight := input.LineHeight * scale
	padding := pipeline.ScalePx(input.Padding, scale)
	lines := input.Document.Lines

	gutter := 0
	if input.LineNumbers {
		gutter = measurer.MeasureText(GutterLabel(input.StartLine+len(lines)), fontSize)
	}

	content := 0
	for _, line := range lines {
		if w := measurer.MeasureText(line.Text, fontSize); w > content {
			content = w
		}
	}
	if len(lines) == 0 {
		content = pipeline.ScalePx(emptyContentWidth, scale)
	}

	return pipeline.LayoutResult{
		Width:        content + gutter + 2*padding,
		Height:       pipeline.ScalePx(float64(len(lines)), lineHeight) + 2*padding,
		ContentWidth: content,
		GutterWidth:  gutter,
		Scale:        scale,
		FontSize:     fontSize,
		LineHeight:   lineHeight,
		Padding:      padding,
	}
}
