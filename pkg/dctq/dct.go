package dctq

// Fixed-point constants for the integer DCT, scaled by 2048.
const (
	w1 = 2841 // 2048*sqrt(2)*cos(pi/16)
	w2 = 2676 // 2048*sqrt(2)*cos(2*pi/16)
	w3 = 2408 // 2048*sqrt(2)*cos(3*pi/16)
	w5 = 1609 // 2048*sqrt(2)*cos(5*pi/16)
	w6 = 1108 // 2048*sqrt(2)*cos(6*pi/16)
	w7 = 565  // 2048*sqrt(2)*cos(7*pi/16)

	r2 = 181 // 256/sqrt(2)
)

// fdct computes the forward DCT of one 8×8 tile. Samples are level-shifted
// by -128 on load; coefficients come out at eight times the mathematical
// DCT-II scale, so a uniform tile of value v yields a DC of 8*(v-128).
func fdct(src *[BlockSamples]uint8, dst *[BlockSamples]int32) {
	var tmp [BlockSamples]int32

	for i := 0; i < BlockSamples; i += BlockSize {
		x0 := int32(src[i+0]) - 128
		x1 := int32(src[i+1]) - 128
		x2 := int32(src[i+2]) - 128
		x3 := int32(src[i+3]) - 128
		x4 := int32(src[i+4]) - 128
		x5 := int32(src[i+5]) - 128
		x6 := int32(src[i+6]) - 128
		x7 := int32(src[i+7]) - 128

		x8 := x0 + x7
		x0 -= x7
		x7 = x1 + x6
		x1 -= x6
		x6 = x2 + x5
		x2 -= x5
		x5 = x3 + x4
		x3 -= x4

		x4 = x8 + x5
		x8 -= x5
		x5 = x7 + x6
		x7 -= x6
		x6 = ((x0 + x3) * r2) >> 8
		x0 = ((x0 - x3) * r2) >> 8
		x3 = x1 + x2
		x1 -= x2

		x2 = x4 + x5
		x4 -= x5
		x5 = ((x7 + x8) * r2) >> 8
		x7 = ((x7 - x8) * r2) >> 8
		x8 = x1 + x6
		x1 -= x6
		x6 = x0 + x3
		x0 -= x3

		tmp[i+0] = x2
		tmp[i+1] = (w1*x8 - w7*x6) >> 11
		tmp[i+2] = x5
		tmp[i+3] = (w3*x1 - w5*x0) >> 11
		tmp[i+4] = x4
		tmp[i+5] = (w5*x1 + w3*x0) >> 11
		tmp[i+6] = x7
		tmp[i+7] = (w7*x8 + w1*x6) >> 11
	}

	for c := 0; c < BlockSize; c++ {
		x0 := tmp[c]
		x1 := tmp[c+8]
		x2 := tmp[c+16]
		x3 := tmp[c+24]
		x4 := tmp[c+32]
		x5 := tmp[c+40]
		x6 := tmp[c+48]
		x7 := tmp[c+56]

		x8 := x0 + x7
		x0 -= x7
		x7 = x1 + x6
		x1 -= x6
		x6 = x2 + x5
		x2 -= x5
		x5 = x3 + x4
		x3 -= x4

		x4 = x8 + x5
		x8 -= x5
		x5 = x7 + x6
		x7 -= x6
		x6 = ((x0 + x3) * r2) >> 8
		x0 = ((x0 - x3) * r2) >> 8
		x3 = x1 + x2
		x1 -= x2

		x2 = x4 + x5
		x4 -= x5
		x5 = ((x7 + x8) * r2) >> 8
		x7 = ((x7 - x8) * r2) >> 8
		x8 = x1 + x6
		x1 -= x6
		x6 = x0 + x3
		x0 -= x3

		dst[c] = (x2 + 4) >> 3
		dst[c+8] = (w1*x8 - w7*x6) >> 14
		dst[c+16] = (x5 + 2) >> 2
		dst[c+24] = (w3*x1 - w5*x0) >> 14
		dst[c+32] = (x4 + 2) >> 2
		dst[c+40] = (w5*x1 + w3*x0) >> 14
		dst[c+48] = (x7 + 2) >> 2
		dst[c+56] = (w7*x8 + w1*x6) >> 14
	}
}
