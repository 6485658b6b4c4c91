// Package vector assembles and serializes the circuit's test vectors: the
// "original" and "transformed" word grids derived from one source image.
package vector

import (
	"errors"
	"fmt"
	"os"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/klauspost/compress/zstd"

	"github.com/Hanbunko/dctqvec/pkg/circuit"
	"github.com/Hanbunko/dctqvec/pkg/raster"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Artifact geometry: one row of word literals per reshaped pixel row.
const (
	Rows        = raster.ReshapedHeight
	WordsPerRow = raster.ReshapedWidth / circuit.GroupSize
)

var (
	ErrInvalidShape     = errors.New("vector grid has wrong dimensions")
	ErrNonCanonicalWord = errors.New("word literal is not in canonical form")
	ErrSampleOutOfRange = errors.New("transformed sample outside the clamp domain")
)

// Set is the artifact the circuit harness consumes. Original holds the
// reshaped source pixels, Transformed the clamped quantized coefficients,
// both packed ten pixels per hex word literal.
type Set struct {
	Original    [][]string `json:"original"`
	Transformed [][]string `json:"transformed"`
}

// Encode renders the set as indented JSON, original grid first.
func (s *Set) Encode() ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// Decode parses an encoded set. No validation is performed; call Validate
// on untrusted data.
func Decode(data []byte) (*Set, error) {
	var s Set
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode vector set: %w", err)
	}
	return &s, nil
}

// WriteFile writes the encoded set to path, compressing with zstd when the
// path ends in .zst.
func (s *Set) WriteFile(path string) error {
	data, err := s.Encode()
	if err != nil {
		return err
	}
	if strings.HasSuffix(path, ".zst") {
		enc, err := zstd.NewWriter(nil)
		if err != nil {
			return err
		}
		data = enc.EncodeAll(data, make([]byte, 0, len(data)/4))
		if err := enc.Close(); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadFile loads a set written by WriteFile, decompressing .zst files.
func ReadFile(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(path, ".zst") {
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		if data, err = dec.DecodeAll(data, nil); err != nil {
			return nil, fmt.Errorf("decompress %s: %w", path, err)
		}
	}
	return Decode(data)
}

// Validate checks shape and sample domains: both grids must hold 5760 rows
// of 16 words in the exact rendering Hex produces, and every transformed
// sample must lie in [1, 255].
func (s *Set) Validate() error {
	if err := validateGrid(s.Original, false); err != nil {
		return fmt.Errorf("original: %w", err)
	}
	if err := validateGrid(s.Transformed, true); err != nil {
		return fmt.Errorf("transformed: %w", err)
	}
	return nil
}

func validateGrid(rows [][]string, shifted bool) error {
	if len(rows) != Rows {
		return fmt.Errorf("%w: %d rows, want %d", ErrInvalidShape, len(rows), Rows)
	}
	for y, row := range rows {
		if len(row) != WordsPerRow {
			return fmt.Errorf("%w: row %d has %d words, want %d", ErrInvalidShape, y, len(row), WordsPerRow)
		}
		for i, lit := range row {
			w, err := circuit.ParseWord(lit)
			if err != nil {
				return fmt.Errorf("row %d word %d: %w", y, i, err)
			}
			// ParseWord is liberal about case and leading zeros; the
			// artifact itself must carry the one rendering Hex emits.
			if lit != w.Hex() {
				return fmt.Errorf("%w: row %d word %d: %q", ErrNonCanonicalWord, y, i, lit)
			}
			if !shifted {
				continue
			}
			for p, sample := range w {
				if sample == 0 {
					return fmt.Errorf("%w: row %d word %d byte %d is zero", ErrSampleOutOfRange, y, i, p)
				}
			}
		}
	}
	return nil
}

// gridImage reassembles a word grid into its 160×5760 raster.
func gridImage(rows [][]string) (*raster.Image, error) {
	if len(rows) != Rows {
		return nil, fmt.Errorf("%w: %d rows, want %d", ErrInvalidShape, len(rows), Rows)
	}
	img := raster.NewImage(raster.ReshapedWidth, raster.ReshapedHeight)
	words := make([]circuit.Word, WordsPerRow)
	for y, row := range rows {
		if len(row) != WordsPerRow {
			return nil, fmt.Errorf("%w: row %d has %d words, want %d", ErrInvalidShape, y, len(row), WordsPerRow)
		}
		for i, lit := range row {
			w, err := circuit.ParseWord(lit)
			if err != nil {
				return nil, fmt.Errorf("row %d word %d: %w", y, i, err)
			}
			words[i] = w
		}
		copy(img.Row(y), circuit.UnpackRow(words))
	}
	return img, nil
}

// OriginalImage rebuilds the 1280×720 source raster from the original grid.
func (s *Set) OriginalImage() (*raster.Image, error) {
	reshaped, err := gridImage(s.Original)
	if err != nil {
		return nil, fmt.Errorf("original: %w", err)
	}
	return raster.Unreshape(reshaped)
}

// TransformedImage rebuilds the clamped coefficient raster in its reshaped
// 160×5760 layout.
func (s *Set) TransformedImage() (*raster.Image, error) {
	img, err := gridImage(s.Transformed)
	if err != nil {
		return nil, fmt.Errorf("transformed: %w", err)
	}
	return img, nil
}

// TransformedCoeffs undoes the +128 shift on the transformed grid, yielding
// the clamped coefficients in [-127, 127].
func (s *Set) TransformedCoeffs() (*raster.Coeffs, error) {
	img, err := s.TransformedImage()
	if err != nil {
		return nil, err
	}
	c := raster.NewCoeffs(img.Width, img.Height)
	for i, sample := range img.Pix {
		c.Coef[i] = int32(sample) - 128
	}
	return c, nil
}
