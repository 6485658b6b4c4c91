package raster

// ClampShift maps a coefficient grid into the unsigned packing domain: each
// value is clipped to [-127, 127] and shifted by +128, so every output
// sample lies in [1, 255]. Coefficients outside the clip range saturate;
// that loss is part of the circuit contract, not an error.
func ClampShift(src *Coeffs) *Image {
	dst := NewImage(src.Width, src.Height)
	for i, v := range src.Coef {
		if v > 127 {
			v = 127
		} else if v < -127 {
			v = -127
		}
		dst.Pix[i] = uint8(v + 128)
	}
	return dst
}
