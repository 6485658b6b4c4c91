// Package raster provides the in-memory pixel grids the vector pipeline
// operates on: 8-bit RGB images and the signed coefficient grids produced
// by the block transform.
package raster

import "errors"

// Channels is the number of samples per pixel. The pipeline is RGB-only.
const Channels = 3

// Raster shape errors.
var (
	ErrInvalidSourceSize   = errors.New("source raster must be 1280x720")
	ErrInvalidReshapedSize = errors.New("reshaped raster must be 160x5760")
)

// Image is a rectangular grid of 8-bit RGB pixels. Pix holds interleaved
// samples: the pixel at (x, y) starts at Pix[(y*Width+x)*Channels], in
// red, green, blue order.
type Image struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewImage allocates a zeroed width×height RGB image.
func NewImage(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*Channels),
	}
}

// At returns the pixel at (x, y).
func (m *Image) At(x, y int) (r, g, b uint8) {
	i := (y*m.Width + x) * Channels
	return m.Pix[i], m.Pix[i+1], m.Pix[i+2]
}

// Set writes the pixel at (x, y).
func (m *Image) Set(x, y int, r, g, b uint8) {
	i := (y*m.Width + x) * Channels
	m.Pix[i] = r
	m.Pix[i+1] = g
	m.Pix[i+2] = b
}

// Row returns the y-th pixel row as a slice aliasing the image's storage.
func (m *Image) Row(y int) []uint8 {
	span := m.Width * Channels
	return m.Pix[y*span : (y+1)*span]
}

// Coeffs is a rectangular grid of signed per-channel transform coefficients,
// shaped like the Image it was derived from. Coef uses the same interleaved
// layout as Image.Pix.
type Coeffs struct {
	Width  int
	Height int
	Coef   []int32
}

// NewCoeffs allocates a zeroed width×height coefficient grid.
func NewCoeffs(width, height int) *Coeffs {
	return &Coeffs{
		Width:  width,
		Height: height,
		Coef:   make([]int32, width*height*Channels),
	}
}

// At returns the coefficient triple at (x, y).
func (c *Coeffs) At(x, y int) (r, g, b int32) {
	i := (y*c.Width + x) * Channels
	return c.Coef[i], c.Coef[i+1], c.Coef[i+2]
}

// Set writes the coefficient triple at (x, y).
func (c *Coeffs) Set(x, y int, r, g, b int32) {
	i := (y*c.Width + x) * Channels
	c.Coef[i] = r
	c.Coef[i+1] = g
	c.Coef[i+2] = b
}
