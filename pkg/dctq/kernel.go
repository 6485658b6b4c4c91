// Package dctq implements the circuit's block transform: an integer forward
// DCT over 8×8 tiles followed by per-channel quantization.
package dctq

import (
	"errors"
	"fmt"

	"github.com/ajroetker/go-highway/hwy/contrib/workerpool"

	"github.com/Hanbunko/dctqvec/pkg/raster"
)

// Tile geometry.
const (
	BlockSize    = 8
	BlockSamples = BlockSize * BlockSize
)

// ErrInvalidGrid reports a raster whose dimensions do not tile into 8×8
// blocks.
var ErrInvalidGrid = errors.New("raster dimensions must be positive multiples of 8")

// Kernel transforms rasters tile by tile: each channel of every 8×8 tile is
// level-shifted, passed through the integer DCT, and quantized with that
// channel's table.
type Kernel struct {
	Tables  [raster.Channels]Table
	Workers int // parallel workers; <= 0 uses GOMAXPROCS
}

// New returns a Kernel using the standard per-channel tables.
func New() *Kernel {
	return &Kernel{Tables: DefaultTables()}
}

// Transform computes quantized DCT coefficients for every 8×8 tile of src.
// Tiles are independent and are distributed across a worker pool by block
// row; the result does not depend on the worker count.
func (k *Kernel) Transform(src *raster.Image) (*raster.Coeffs, error) {
	if src.Width <= 0 || src.Height <= 0 || src.Width%BlockSize != 0 || src.Height%BlockSize != 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidGrid, src.Width, src.Height)
	}

	dst := raster.NewCoeffs(src.Width, src.Height)
	pool := workerpool.New(k.Workers)
	defer pool.Close()
	pool.ParallelFor(src.Height/BlockSize, func(start, end int) {
		for row := start; row < end; row++ {
			k.transformStrip(src, dst, row)
		}
	})
	return dst, nil
}

// transformStrip processes one horizontal strip of tiles. Strips write to
// disjoint regions of dst, so they are safe to run concurrently.
func (k *Kernel) transformStrip(src *raster.Image, dst *raster.Coeffs, blockRow int) {
	var block [BlockSamples]uint8
	var coef [BlockSamples]int32

	top := blockRow * BlockSize
	for left := 0; left < src.Width; left += BlockSize {
		for ch := 0; ch < raster.Channels; ch++ {
			gather(src, top, left, ch, &block)
			fdct(&block, &coef)
			quantize(&coef, &k.Tables[ch])
			scatter(dst, top, left, ch, &coef)
		}
	}
}

// quantize divides each coefficient by its table entry, rounding half away
// from zero so positive and negative coefficients are treated symmetrically.
func quantize(coef *[BlockSamples]int32, q *Table) {
	for i, v := range coef {
		d := q[i]
		if v >= 0 {
			coef[i] = (v + d/2) / d
		} else {
			coef[i] = -((-v + d/2) / d)
		}
	}
}

// gather copies one channel of an 8×8 tile out of the interleaved raster.
func gather(src *raster.Image, top, left, ch int, block *[BlockSamples]uint8) {
	for y := 0; y < BlockSize; y++ {
		base := ((top+y)*src.Width+left)*raster.Channels + ch
		for x := 0; x < BlockSize; x++ {
			block[y*BlockSize+x] = src.Pix[base+x*raster.Channels]
		}
	}
}

// scatter writes one channel's coefficients back into the interleaved grid.
func scatter(dst *raster.Coeffs, top, left, ch int, coef *[BlockSamples]int32) {
	for y := 0; y < BlockSize; y++ {
		base := ((top+y)*dst.Width+left)*raster.Channels + ch
		for x := 0; x < BlockSize; x++ {
			dst.Coef[base+x*raster.Channels] = coef[y*BlockSize+x]
		}
	}
}
