package circuit

import (
	"errors"
	"strings"
	"testing"
)

// sequence returns n interleaved samples valued 1+offset, 2+offset, ...
func sequence(n, offset int) []uint8 {
	pix := make([]uint8, n)
	for i := range pix {
		pix[i] = uint8(i + 1 + offset)
	}
	return pix
}

func TestWordHex(t *testing.T) {
	tests := []struct {
		name string
		fill func(w *Word)
		want string
	}{
		{
			name: "zero word",
			fill: func(w *Word) {},
			want: "0x0",
		},
		{
			name: "first pixel red one",
			fill: func(w *Word) { w[0] = 1 },
			want: "0x1",
		},
		{
			name: "leading zero digit dropped",
			fill: func(w *Word) { w[0] = 0x0f },
			want: "0xf",
		},
		{
			name: "fourth pixel red only",
			fill: func(w *Word) { w[9] = 0xaa },
			want: "0xaa" + strings.Repeat("0", 18),
		},
		{
			name: "fourth pixel green only",
			fill: func(w *Word) { w[10] = 0xbb },
			want: "0xbb" + strings.Repeat("0", 20),
		},
		{
			name: "last pixel blue max",
			fill: func(w *Word) { w[29] = 0xff },
			want: "0xff" + strings.Repeat("0", 58),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var w Word
			tc.fill(&w)
			if got := w.Hex(); got != tc.want {
				t.Errorf("Hex() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestWordHexSequence(t *testing.T) {
	w := PackGroup(sequence(WordBytes, 0))
	const want = "0x1e1d1c1b1a191817161514131211100f0e0d0c0b0a090807060504030201"
	if got := w.Hex(); got != want {
		t.Errorf("Hex() = %q, want %q", got, want)
	}
}

func TestParseWord(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"zero", "0x0", "0x0"},
		{"single digit", "0x1", "0x1"},
		{"odd digit count", "0x123", "0x123"},
		{"uppercase prefix", "0X2A", "0x2a"},
		{"full width", "0x1e1d1c1b1a191817161514131211100f0e0d0c0b0a090807060504030201",
			"0x1e1d1c1b1a191817161514131211100f0e0d0c0b0a090807060504030201"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, err := ParseWord(tc.in)
			if err != nil {
				t.Fatalf("ParseWord(%q) error = %v", tc.in, err)
			}
			if got := w.Hex(); got != tc.want {
				t.Errorf("ParseWord(%q).Hex() = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseWordInvalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"no prefix", "1e1d"},
		{"prefix only", "0x"},
		{"bad digit", "0xzz"},
		{"too wide", "0x1" + strings.Repeat("0", 60)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseWord(tc.in); !errors.Is(err, ErrInvalidWord) {
				t.Errorf("ParseWord(%q) error = %v, want ErrInvalidWord", tc.in, err)
			}
		})
	}
}
