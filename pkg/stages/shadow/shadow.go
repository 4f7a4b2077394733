// Package shadow implements the framing stage: a blurred drop shadow or a
// plain margin around the card on an outer background.
package shadow

import (
	"context"
	"image"
	"image/color"
	"math"
	"runtime"

	"golang.org/x/image/draw"

	"github.com/user/codesnap/pkg/pipeline"
	"github.com/user/codesnap/pkg/ports"
	"github.com/user/codesnap/pkg/raster"
)

// Stage frames the card.
type Stage struct {
	sink       ports.DebugSink
	logger     ports.Logger
	numWorkers int
}

// NewStage creates a new shadow stage. numWorkers <= 0 uses one worker per CPU.
func NewStage(sink ports.DebugSink, logger ports.Logger, numWorkers int) *Stage {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &Stage{
		sink:       sink,
		logger:     logger.WithComponent("shadow"),
		numWorkers: numWorkers,
	}
}

// Execute places the card on a new canvas, with or without a shadow.
func (s *Stage) Execute(ctx context.Context, input pipeline.FrameInput) (pipeline.FrameResult, error) {
	if err := ctx.Err(); err != nil {
		return pipeline.FrameResult{}, err
	}

	if !input.Shadow {
		s.logger.Debug("Framing card with %d px margin", input.Margin)
		return pipeline.FrameResult{Image: WithMargin(input.Card, input.OuterBackground, input.Margin)}, nil
	}

	spec := input.ShadowSpec
	s.logger.Debug("Compositing shadow: sigma %.1f, margin %d, %d workers",
		spec.Sigma, ShadowMargin(spec.Sigma, input.OuterPadding), s.numWorkers)

	img, silhouette := WithShadow(input.Card, spec, input.OuterBackground, input.OuterPadding, s.numWorkers)
	if s.sink.Enabled() {
		if err := s.sink.SaveShadow(silhouette.Image()); err != nil {
			s.logger.Warn("Failed to save debug output: %s", err)
		}
	}
	return pipeline.FrameResult{Image: img}, nil
}

// ShadowMargin is the room left on every side so the blur is not clipped.
func ShadowMargin(sigma float64, outerPadding int) int {
	if sigma < 0 {
		sigma = 0
	}
	return int(math.Ceil(sigma*3)) + outerPadding
}

// WithShadow returns a new image containing card over a blurred, offset
// black silhouette of itself on an outerBg canvas. The blurred silhouette
// is returned as well.
func WithShadow(card *image.NRGBA, spec pipeline.ShadowSpec, outerBg color.NRGBA, outerPadding, workers int) (*image.NRGBA, raster.AlphaBuffer) {
	margin := ShadowMargin(spec.Sigma, outerPadding)
	cb := card.Bounds()
	canvas := filled(cb.Dx()+2*margin, cb.Dy()+2*margin, outerBg)

	silhouette := raster.NewAlphaBuffer(canvas.Rect.Dx(), canvas.Rect.Dy())
	silhouette.StampAlpha(card, margin+spec.OffsetX, margin+spec.OffsetY)
	raster.BlurAlpha(silhouette, spec.Sigma, workers)

	opacity := math.Max(0, math.Min(1, spec.Opacity))
	for y := 0; y < silhouette.Height; y++ {
		for x := 0; x < silhouette.Width; x++ {
			a := silhouette.Pix[y*silhouette.Width+x]
			if a == 0 {
				continue
			}
			raster.SourceOverAlpha(canvas, x, y, color.NRGBA{}, float64(a)/255*opacity)
		}
	}

	raster.DrawOver(canvas, card, margin, margin)
	return canvas, silhouette
}

// WithMargin returns a new image with card centred on an outerBg canvas
// margin pixels larger on every side.
func WithMargin(card *image.NRGBA, outerBg color.NRGBA, margin int) *image.NRGBA {
	if margin < 0 {
		margin = 0
	}
	cb := card.Bounds()
	canvas := filled(cb.Dx()+2*margin, cb.Dy()+2*margin, outerBg)
	raster.DrawOver(canvas, card, margin, margin)
	return canvas
}

func filled(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return img
}
