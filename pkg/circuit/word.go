// Package circuit models the transform circuit's native data word: a
// 240-bit integer carrying ten RGB pixels, rendered as a hex literal on the
// wire. Rows enter and leave the circuit as sequences of these words.
package circuit

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// Word geometry. A word carries GroupSize pixels at PixelBytes bytes each.
const (
	GroupSize  = 10
	PixelBytes = 3
	WordBytes  = GroupSize * PixelBytes
	WordBits   = WordBytes * 8
)

var (
	ErrInvalidRowWidth = errors.New("row width must be a positive multiple of the group size")
	ErrInvalidWord     = errors.New("malformed word literal")
)

// Word is a 240-bit little-endian integer: index 0 is the least significant
// byte. Pixel p of the group occupies bits [24p, 24p+24), red in the low
// byte, then green, then blue.
type Word [WordBytes]byte

// Hex renders the word as the harness expects it: lowercase hexadecimal
// with an 0x prefix and no leading zero digits. The zero word renders as
// "0x0".
func (w Word) Hex() string {
	var buf [WordBytes]byte
	for i, b := range w {
		buf[WordBytes-1-i] = b
	}
	s := strings.TrimLeft(hex.EncodeToString(buf[:]), "0")
	if s == "" {
		s = "0"
	}
	return "0x" + s
}

// ParseWord decodes a literal produced by Hex. Shorter literals are
// zero-extended; anything that does not fit in 240 bits is rejected.
func ParseWord(s string) (Word, error) {
	var w Word
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return w, fmt.Errorf("%w: missing 0x prefix in %q", ErrInvalidWord, s)
	}
	digits := s[2:]
	if digits == "" || len(digits) > 2*WordBytes {
		return w, fmt.Errorf("%w: %q", ErrInvalidWord, s)
	}
	if len(digits)%2 == 1 {
		digits = "0" + digits
	}
	raw, err := hex.DecodeString(digits)
	if err != nil {
		return w, fmt.Errorf("%w: %q", ErrInvalidWord, s)
	}
	for i, b := range raw {
		w[len(raw)-1-i] = b
	}
	return w, nil
}
