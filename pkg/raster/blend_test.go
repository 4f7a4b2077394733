package raster

import (
	"image"
	"image/color"
	"testing"
)

func TestSourceOver_TransparentSourceIsNoop(t *testing.T) {
	dst := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	dst.SetNRGBA(0, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 40})

	SourceOver(dst, 0, 0, color.NRGBA{R: 255, G: 255, B: 255, A: 0})

	if got := dst.NRGBAAt(0, 0); got != (color.NRGBA{R: 10, G: 20, B: 30, A: 40}) {
		t.Errorf("expected pixel unchanged, got %v", got)
	}
}

func TestSourceOver_OpaqueSourceReplaces(t *testing.T) {
	dst := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	dst.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})

	SourceOver(dst, 0, 0, color.NRGBA{B: 200, A: 255})

	if got := dst.NRGBAAt(0, 0); got != (color.NRGBA{B: 200, A: 255}) {
		t.Errorf("expected source color, got %v", got)
	}
}

func TestSourceOver_HalfBlackOverWhite(t *testing.T) {
	dst := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	dst.SetNRGBA(0, 0, color.NRGBA{R: 255, G: 255, B: 255, A: 255})

	SourceOver(dst, 0, 0, color.NRGBA{A: 128})

	got := dst.NRGBAAt(0, 0)
	if got.A != 255 {
		t.Errorf("expected opaque result, got alpha %d", got.A)
	}
	// 255 * (1 - 128/255) = 127
	if got.R != 127 || got.G != 127 || got.B != 127 {
		t.Errorf("expected 127 grey, got %v", got)
	}
}

func TestSourceOver_OverTransparent(t *testing.T) {
	dst := image.NewNRGBA(image.Rect(0, 0, 1, 1))

	SourceOver(dst, 0, 0, color.NRGBA{R: 100, G: 50, B: 25, A: 64})

	got := dst.NRGBAAt(0, 0)
	if got != (color.NRGBA{R: 100, G: 50, B: 25, A: 64}) {
		t.Errorf("expected source copied through, got %v", got)
	}
}

func TestSourceOver_OutOfRange(t *testing.T) {
	dst := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	SourceOver(dst, -1, 0, color.NRGBA{A: 255})
	SourceOver(dst, 2, 2, color.NRGBA{A: 255})
	for _, v := range dst.Pix {
		if v != 0 {
			t.Fatal("expected out-of-range writes to be ignored")
		}
	}
}

func TestDrawOver_Offset(t *testing.T) {
	dst := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for i := 0; i < len(src.Pix); i += 4 {
		src.Pix[i], src.Pix[i+3] = 255, 255
	}

	DrawOver(dst, src, 1, 2)

	if got := dst.NRGBAAt(1, 2); got != (color.NRGBA{R: 255, A: 255}) {
		t.Errorf("expected red at (1,2), got %v", got)
	}
	if got := dst.NRGBAAt(0, 0); got.A != 0 {
		t.Errorf("expected (0,0) untouched, got %v", got)
	}
	if got := dst.NRGBAAt(3, 1); got.A != 0 {
		t.Errorf("expected (3,1) untouched, got %v", got)
	}
}

func TestAlphaBuffer_StampAlpha(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 200
	}
	buf := NewAlphaBuffer(4, 4)

	buf.StampAlpha(img, 2, 3)

	if buf.At(2, 3) != 200 || buf.At(3, 3) != 200 {
		t.Error("expected in-range pixels stamped")
	}
	if buf.Sum() != 400 {
		t.Errorf("expected only 2 pixels stamped, sum = %d", buf.Sum())
	}
}

func TestSourceOverAlpha_KeepsFractionalAlpha(t *testing.T) {
	dst := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	dst.SetNRGBA(0, 0, white)
	dst.SetNRGBA(1, 0, white)

	// 255 * (1 - 0.5) = 127.5, truncated
	SourceOverAlpha(dst, 0, 0, color.NRGBA{}, 0.5)
	// 255 * (1 - 1/510) = 254.5, truncated; an 8-bit alpha would round to 0
	SourceOverAlpha(dst, 1, 0, color.NRGBA{}, 1.0/510)

	if got := dst.NRGBAAt(0, 0); got.R != 127 || got.A != 255 {
		t.Errorf("half black over white: expected 127, got %v", got)
	}
	if got := dst.NRGBAAt(1, 0); got.R != 254 || got.A != 255 {
		t.Errorf("faint black over white: expected 254, got %v", got)
	}
}

func TestSourceOverAlpha_ZeroIsNoop(t *testing.T) {
	dst := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	dst.SetNRGBA(0, 0, color.NRGBA{R: 9, A: 9})

	SourceOverAlpha(dst, 0, 0, color.NRGBA{R: 255}, 0)

	if got := dst.NRGBAAt(0, 0); got != (color.NRGBA{R: 9, A: 9}) {
		t.Errorf("expected pixel unchanged, got %v", got)
	}
}
