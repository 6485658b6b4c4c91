package circuit

import "fmt"

// PackGroup packs one group of interleaved RGB samples into a word. pix
// must hold at least WordBytes samples; the interleaved r,g,b order is
// already the word's low-to-high byte order, so the copy is the whole job.
func PackGroup(pix []uint8) Word {
	_ = pix[WordBytes-1]
	var w Word
	copy(w[:], pix)
	return w
}

// UnpackGroup expands a word back into its interleaved RGB samples.
func UnpackGroup(w Word) []uint8 {
	out := make([]uint8, WordBytes)
	copy(out, w[:])
	return out
}

// PackRow splits one row of interleaved samples into words, GroupSize
// pixels per word, left to right. The row must hold a positive multiple of
// GroupSize pixels.
func PackRow(row []uint8) ([]Word, error) {
	if len(row) == 0 || len(row)%WordBytes != 0 {
		return nil, fmt.Errorf("%w: got %d samples", ErrInvalidRowWidth, len(row))
	}
	words := make([]Word, len(row)/WordBytes)
	for i := range words {
		words[i] = PackGroup(row[i*WordBytes:])
	}
	return words, nil
}

// UnpackRow concatenates the samples of a word sequence back into one
// interleaved row.
func UnpackRow(words []Word) []uint8 {
	row := make([]uint8, len(words)*WordBytes)
	for i, w := range words {
		copy(row[i*WordBytes:], w[:])
	}
	return row
}
