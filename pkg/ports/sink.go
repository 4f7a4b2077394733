package ports

import (
	"image"
)

// DebugSink receives intermediate results when debugging is enabled.
type DebugSink interface {
	Enabled() bool

	// SaveLayoutJSON saves the computed layout as JSON.
	SaveLayoutJSON(data []byte) error

	// SaveCard saves the rendered card before shadowing.
	SaveCard(img image.Image) error

	// SaveShadow saves the blurred shadow silhouette.
	SaveShadow(img image.Image) error

	// SaveFrame saves the final framed image.
	SaveFrame(img image.Image) error
}
