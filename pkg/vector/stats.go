package vector

import "github.com/Hanbunko/dctqvec/pkg/raster"

// Stats summarizes a coefficient grid.
type Stats struct {
	Min     int32
	Max     int32
	Zero    int
	NonZero int
}

// Sparsity returns the percentage of zero coefficients.
func (s Stats) Sparsity() float64 {
	total := s.Zero + s.NonZero
	if total == 0 {
		return 0
	}
	return float64(s.Zero) / float64(total) * 100
}

// CoeffStats scans a coefficient grid.
func CoeffStats(c *raster.Coeffs) Stats {
	if len(c.Coef) == 0 {
		return Stats{}
	}
	s := Stats{Min: c.Coef[0], Max: c.Coef[0]}
	for _, v := range c.Coef {
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
		if v == 0 {
			s.Zero++
		} else {
			s.NonZero++
		}
	}
	return s
}
