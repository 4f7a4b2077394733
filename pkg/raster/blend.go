package raster

import (
	"image"
	"image/color"
)

// SourceOver composites src over the pixel at (x, y) of dst using straight
// alpha Porter-Duff source-over. A fully transparent source leaves the pixel
// untouched; out-of-range coordinates are ignored.
func SourceOver(dst *image.NRGBA, x, y int, src color.NRGBA) {
	SourceOverAlpha(dst, x, y, src, float64(src.A)/255)
}

// SourceOverAlpha is SourceOver with the source alpha given as a fraction in
// [0, 1] instead of src.A, so callers can blend without quantizing alpha.
func SourceOverAlpha(dst *image.NRGBA, x, y int, src color.NRGBA, sa float64) {
	if sa <= 0 {
		return
	}
	if !(image.Point{X: x, Y: y}.In(dst.Rect)) {
		return
	}
	i := dst.PixOffset(x, y)
	p := dst.Pix[i : i+4 : i+4]

	if sa >= 1 {
		p[0], p[1], p[2], p[3] = src.R, src.G, src.B, 255
		return
	}

	da := float64(p[3]) / 255
	outA := sa + da*(1-sa)
	if outA == 0 {
		return
	}

	blend := func(s, d uint8) uint8 {
		return toByte((float64(s)*sa + float64(d)*da*(1-sa)) / outA)
	}
	p[0] = blend(src.R, p[0])
	p[1] = blend(src.G, p[1])
	p[2] = blend(src.B, p[2])
	p[3] = toByte(outA*255 + 0.5)
}

// DrawOver composites every pixel of src over dst with src's top-left corner
// at (ox, oy).
func DrawOver(dst, src *image.NRGBA, ox, oy int) {
	b := src.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			SourceOver(dst, ox+x-b.Min.X, oy+y-b.Min.Y, src.NRGBAAt(x, y))
		}
	}
}

// toByte truncates v into [0, 255]. The small bias absorbs float error on
// values that are exact integers in real arithmetic.
func toByte(v float64) uint8 {
	v += 1e-9
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
