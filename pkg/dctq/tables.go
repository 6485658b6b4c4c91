package dctq

// Table is an 8×8 quantization table in row-major order. Entries must be
// positive.
type Table [BlockSamples]int32

// Standard quantization tables from ITU-T T.81 Annex K.
var (
	Luminance = Table{
		16, 11, 10, 16, 24, 40, 51, 61,
		12, 12, 14, 19, 26, 58, 60, 55,
		14, 13, 16, 24, 40, 57, 69, 56,
		14, 17, 22, 29, 51, 87, 80, 62,
		18, 22, 37, 56, 68, 109, 103, 77,
		24, 35, 55, 64, 81, 104, 113, 92,
		49, 64, 78, 87, 103, 121, 120, 101,
		72, 92, 95, 98, 112, 100, 103, 99,
	}

	Chrominance = Table{
		17, 18, 24, 47, 99, 99, 99, 99,
		18, 21, 26, 66, 99, 99, 99, 99,
		24, 26, 56, 99, 99, 99, 99, 99,
		47, 66, 99, 99, 99, 99, 99, 99,
		99, 99, 99, 99, 99, 99, 99, 99,
		99, 99, 99, 99, 99, 99, 99, 99,
		99, 99, 99, 99, 99, 99, 99, 99,
		99, 99, 99, 99, 99, 99, 99, 99,
	}
)

// DefaultTables returns the per-channel table assignment the circuit uses:
// red is quantized as luminance, green and blue as chrominance.
func DefaultTables() [3]Table {
	return [3]Table{Luminance, Chrominance, Chrominance}
}
