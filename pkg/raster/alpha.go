// Package raster holds the pixel-level primitives used by the image stages:
// a single-channel alpha buffer, a box blur approximating a Gaussian and
// Porter-Duff source-over blending.
package raster

import "image"

// AlphaBuffer is a row-major single-channel 8-bit buffer.
type AlphaBuffer struct {
	Pix    []uint8
	Width  int
	Height int
}

// NewAlphaBuffer allocates a zeroed buffer.
func NewAlphaBuffer(width, height int) AlphaBuffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return AlphaBuffer{
		Pix:    make([]uint8, width*height),
		Width:  width,
		Height: height,
	}
}

// At returns the value at (x, y), or 0 when out of range.
func (b AlphaBuffer) At(x, y int) uint8 {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return 0
	}
	return b.Pix[y*b.Width+x]
}

// Set stores v at (x, y); out-of-range writes are dropped.
func (b AlphaBuffer) Set(x, y int, v uint8) {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return
	}
	b.Pix[y*b.Width+x] = v
}

// Sum returns the total of all samples.
func (b AlphaBuffer) Sum() int {
	total := 0
	for _, v := range b.Pix {
		total += int(v)
	}
	return total
}

// StampAlpha copies the alpha channel of img into b with its top-left
// corner at (dx, dy). Pixels that land outside b are skipped.
func (b AlphaBuffer) StampAlpha(img *image.NRGBA, dx, dy int) {
	bounds := img.Bounds()
	for y := 0; y < bounds.Dy(); y++ {
		ty := y + dy
		if ty < 0 || ty >= b.Height {
			continue
		}
		row := img.Pix[y*img.Stride:]
		for x := 0; x < bounds.Dx(); x++ {
			tx := x + dx
			if tx < 0 || tx >= b.Width {
				continue
			}
			b.Pix[ty*b.Width+tx] = row[x*4+3]
		}
	}
}

// Image returns a view of b as an *image.Alpha sharing the same pixels.
func (b AlphaBuffer) Image() *image.Alpha {
	return &image.Alpha{
		Pix:    b.Pix,
		Stride: b.Width,
		Rect:   image.Rect(0, 0, b.Width, b.Height),
	}
}
