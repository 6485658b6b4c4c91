package raster

import "fmt"

// Canonical geometry of the circuit layout. The hardware consumes rows of
// 160 pixels, so every 1280-pixel source row is sliced into eight 160-pixel
// chunks stacked vertically, turning the 1280×720 source into 160×5760.
const (
	SourceWidth    = 1280
	SourceHeight   = 720
	ReshapedWidth  = 160
	ReshapedHeight = 5760

	chunksPerRow = SourceWidth / ReshapedWidth
)

// SourceCoord maps a reshaped coordinate back to the source pixel it was
// copied from: reshaped row r holds chunk r mod 8 of source row r / 8, so
// column x of that row came from source column (r mod 8)*160 + x.
func SourceCoord(row, col int) (srcRow, srcCol int) {
	return row / chunksPerRow, (row%chunksPerRow)*ReshapedWidth + col
}

// Reshape converts a canonical 1280×720 image into the 160×5760 layout the
// circuit ingests. Pixel values are copied verbatim; only their positions
// change, and every source pixel appears exactly once in the result.
func Reshape(src *Image) (*Image, error) {
	if src.Width != SourceWidth || src.Height != SourceHeight {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidSourceSize, src.Width, src.Height)
	}
	dst := NewImage(ReshapedWidth, ReshapedHeight)
	span := ReshapedWidth * Channels
	for row := 0; row < ReshapedHeight; row++ {
		srcRow, srcCol := SourceCoord(row, 0)
		off := (srcRow*SourceWidth + srcCol) * Channels
		copy(dst.Pix[row*span:(row+1)*span], src.Pix[off:off+span])
	}
	return dst, nil
}

// Unreshape inverts Reshape, reassembling the 1280×720 source layout from a
// 160×5760 circuit raster.
func Unreshape(src *Image) (*Image, error) {
	if src.Width != ReshapedWidth || src.Height != ReshapedHeight {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidReshapedSize, src.Width, src.Height)
	}
	dst := NewImage(SourceWidth, SourceHeight)
	span := ReshapedWidth * Channels
	for row := 0; row < ReshapedHeight; row++ {
		srcRow, srcCol := SourceCoord(row, 0)
		off := (srcRow*SourceWidth + srcCol) * Channels
		copy(dst.Pix[off:off+span], src.Pix[row*span:(row+1)*span])
	}
	return dst, nil
}
