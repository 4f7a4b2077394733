package raster

import (
	"math"
	"runtime"
	"sync"
)

// DefaultBoxPasses is the number of box passes used to approximate a Gaussian.
const DefaultBoxPasses = 3

// BoxesForGauss returns n odd box widths whose successive application
// approximates a Gaussian of standard deviation sigma.
func BoxesForGauss(sigma float64, n int) []int {
	if n <= 0 {
		return nil
	}
	nf := float64(n)
	wIdeal := math.Sqrt(12*sigma*sigma/nf + 1)
	wl := int(math.Floor(wIdeal))
	if wl%2 == 0 {
		wl--
	}
	wu := wl + 2

	wlf := float64(wl)
	mIdeal := (12*sigma*sigma - nf*wlf*wlf - 4*nf*wlf - 3*nf) / (-4*wlf - 4)
	m := int(math.Round(mIdeal))

	sizes := make([]int, n)
	for i := range sizes {
		if i < m {
			sizes[i] = wl
		} else {
			sizes[i] = wu
		}
	}
	return sizes
}

// BlurAlpha blurs buf in place with DefaultBoxPasses box blurs sized for
// sigma. Rows and columns are split across workers goroutines; the result
// does not depend on the worker count.
func BlurAlpha(buf AlphaBuffer, sigma float64, workers int) {
	if buf.Width == 0 || buf.Height == 0 {
		return
	}
	for _, size := range BoxesForGauss(sigma, DefaultBoxPasses) {
		BoxBlur(buf, (size-1)/2, workers)
	}
}

// BoxBlur applies one horizontal then one vertical moving-average pass of the
// given radius to buf in place. Edges repeat the boundary sample.
// A radius of 0 or less leaves buf untouched.
func BoxBlur(buf AlphaBuffer, radius, workers int) {
	if radius <= 0 || buf.Width == 0 || buf.Height == 0 {
		return
	}
	tmp := make([]uint8, len(buf.Pix))

	forBands(buf.Height, workers, func(from, to int) {
		for y := from; y < to; y++ {
			off := y * buf.Width
			boxLine(buf.Pix[off:off+buf.Width], tmp[off:off+buf.Width], 1, buf.Width, radius)
		}
	})
	forBands(buf.Width, workers, func(from, to int) {
		for x := from; x < to; x++ {
			boxLine(tmp[x:], buf.Pix[x:], buf.Width, buf.Height, radius)
		}
	})
}

// boxLine averages n samples spaced stride apart from src into dst using a
// running sum over a window of 2*radius+1 samples. Each output is the window
// mean rounded to the nearest integer rather than truncated, so repeated
// passes keep the buffer's total alpha approximately constant instead of
// losing up to one level per pixel per pass.
func boxLine(src, dst []uint8, stride, n, radius int) {
	diam := 2*radius + 1
	last := n - 1
	at := func(i int) int {
		if i < 0 {
			i = 0
		} else if i > last {
			i = last
		}
		return int(src[i*stride])
	}

	sum := (radius + 1) * at(0)
	for i := 1; i <= radius; i++ {
		sum += at(i)
	}

	for i := 0; i < n; i++ {
		v := (sum + diam/2) / diam
		if v > 255 {
			v = 255
		}
		dst[i*stride] = uint8(v)
		sum += at(i+radius+1) - at(i-radius)
	}
}

// forBands runs fn over [0, total) split into contiguous bands, one goroutine
// per band, and waits for all of them.
func forBands(total, workers int, fn func(from, to int)) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > total {
		workers = total
	}
	if workers <= 1 {
		fn(0, total)
		return
	}

	chunk := (total + workers - 1) / workers
	var wg sync.WaitGroup
	for from := 0; from < total; from += chunk {
		to := from + chunk
		if to > total {
			to = total
		}
		wg.Add(1)
		go func(from, to int) {
			defer wg.Done()
			fn(from, to)
		}(from, to)
	}
	wg.Wait()
}
