package vector

import (
	"errors"
	"fmt"

	"github.com/ajroetker/go-highway/hwy/contrib/workerpool"

	"github.com/Hanbunko/dctqvec/pkg/circuit"
	"github.com/Hanbunko/dctqvec/pkg/dctq"
	"github.com/Hanbunko/dctqvec/pkg/raster"
)

// ErrShapeMismatch reports a transformer that returned a grid with
// different dimensions than its input.
var ErrShapeMismatch = errors.New("transformer changed the raster dimensions")

// Transformer computes the coefficient grid for a reshaped raster.
// Implementations must be deterministic and preserve dimensions.
type Transformer interface {
	Transform(src *raster.Image) (*raster.Coeffs, error)
}

// Builder derives a vector set from a canonical 1280×720 source image:
// reshape, transform, clamp, pack.
type Builder struct {
	Transformer Transformer
	Workers     int // parallel workers for packing; <= 0 uses GOMAXPROCS
}

// New returns a Builder backed by the standard transform kernel.
func New(workers int) *Builder {
	k := dctq.New()
	k.Workers = workers
	return &Builder{Transformer: k, Workers: workers}
}

// Build produces the vector set for src along with coefficient statistics
// gathered before clamping. The source must be 1280×720.
func (b *Builder) Build(src *raster.Image) (*Set, Stats, error) {
	reshaped, err := raster.Reshape(src)
	if err != nil {
		return nil, Stats{}, err
	}

	coeffs, err := b.Transformer.Transform(reshaped)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("transform: %w", err)
	}
	if coeffs.Width != reshaped.Width || coeffs.Height != reshaped.Height {
		return nil, Stats{}, fmt.Errorf("%w: got %dx%d, want %dx%d",
			ErrShapeMismatch, coeffs.Width, coeffs.Height, reshaped.Width, reshaped.Height)
	}
	stats := CoeffStats(coeffs)

	pool := workerpool.New(b.Workers)
	defer pool.Close()

	original, err := packGrid(pool, reshaped)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("pack original: %w", err)
	}
	transformed, err := packGrid(pool, raster.ClampShift(coeffs))
	if err != nil {
		return nil, Stats{}, fmt.Errorf("pack transformed: %w", err)
	}

	return &Set{Original: original, Transformed: transformed}, stats, nil
}

// packGrid renders every pixel row of img as word literals. Rows are
// independent, so they are spread across the pool; each row writes only its
// own slot.
func packGrid(pool *workerpool.Pool, img *raster.Image) ([][]string, error) {
	rows := make([][]string, img.Height)
	errs := make([]error, img.Height)
	pool.ParallelFor(img.Height, func(start, end int) {
		for y := start; y < end; y++ {
			words, err := circuit.PackRow(img.Row(y))
			if err != nil {
				errs[y] = fmt.Errorf("row %d: %w", y, err)
				continue
			}
			lits := make([]string, len(words))
			for i, w := range words {
				lits[i] = w.Hex()
			}
			rows[y] = lits
		}
	})
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return rows, nil
}
