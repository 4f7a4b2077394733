// Package corners implements the anti-aliased rounded corner mask.
package corners

import (
	"context"
	"image"
	"math"

	"github.com/user/codesnap/pkg/pipeline"
	"github.com/user/codesnap/pkg/ports"
)

// falloff is the width in pixels of the anti-aliased band inside the edge.
const falloff = 1.5

// Stage rounds the corners of an image in place.
type Stage struct {
	logger ports.Logger
}

// NewStage creates a new corners stage.
func NewStage(logger ports.Logger) *Stage {
	return &Stage{logger: logger.WithComponent("corners")}
}

// Execute masks the corners of input.Image and returns it.
func (s *Stage) Execute(ctx context.Context, input pipeline.CornerInput) (pipeline.CornerResult, error) {
	if input.Radius > 0 {
		s.logger.Debug("Rounding corners with radius %d", input.Radius)
	}
	RoundCorners(input.Image, input.Radius)
	return pipeline.CornerResult{Image: input.Image}, nil
}

// RoundCorners clears the alpha of pixels outside a circle of the given
// radius in each corner square. Pixels within falloff of the circle keep
// at most coverage*255 alpha. Applying the mask twice with the same radius
// is the same as applying it once.
func RoundCorners(img *image.NRGBA, radius int) {
	if radius <= 0 || img == nil {
		return
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	r := float64(radius)
	near := r - 0.5
	farX := float64(w) - near
	farY := float64(h) - near

	for y := 0; y < h; y++ {
		inTop := y < radius
		inBottom := y >= h-radius
		if !inTop && !inBottom {
			continue
		}
		cy := near
		if !inTop {
			cy = farY
		}

		for x := 0; x < w; x++ {
			var cx float64
			switch {
			case x < radius:
				cx = near
			case x >= w-radius:
				cx = farX
			default:
				continue
			}

			dist := math.Hypot(float64(x)+0.5-cx, float64(y)+0.5-cy)
			if dist <= r-falloff {
				continue
			}

			i := img.PixOffset(b.Min.X+x, b.Min.Y+y) + 3
			if dist > r {
				img.Pix[i] = 0
				continue
			}
			coverage := (r - dist) / falloff
			if coverage < 0 {
				coverage = 0
			} else if coverage > 1 {
				coverage = 1
			}
			if ceiling := uint8(255 * coverage); img.Pix[i] > ceiling {
				img.Pix[i] = ceiling
			}
		}
	}
}
