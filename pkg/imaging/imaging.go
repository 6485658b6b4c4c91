// Package imaging loads source pictures and converts them to and from the
// pipeline's raster form.
package imaging

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"

	"golang.org/x/image/draw"

	"github.com/Hanbunko/dctqvec/pkg/raster"
)

// Load reads a PNG, JPEG or GIF file and scales it to the canonical
// 1280×720 raster.
func Load(path string) (*raster.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return FromImage(src), nil
}

// FromImage flattens a decoded picture into the interleaved RGB raster,
// resampling to 1280×720 first unless the picture already has the canonical
// size. Alpha is dropped.
func FromImage(src image.Image) *raster.Image {
	bounds := src.Bounds()
	if bounds.Dx() != raster.SourceWidth || bounds.Dy() != raster.SourceHeight {
		scaled := image.NewRGBA(image.Rect(0, 0, raster.SourceWidth, raster.SourceHeight))
		draw.CatmullRom.Scale(scaled, scaled.Rect, src, bounds, draw.Src, nil)
		src = scaled
		bounds = scaled.Rect
	}

	m := raster.NewImage(raster.SourceWidth, raster.SourceHeight)
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := src.At(x, y).RGBA()
			m.Pix[i] = uint8(r >> 8)
			m.Pix[i+1] = uint8(g >> 8)
			m.Pix[i+2] = uint8(b >> 8)
			i += raster.Channels
		}
	}
	return m
}

// ToImage converts a raster back into an opaque RGBA picture.
func ToImage(m *raster.Image) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, m.Width, m.Height))
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			r, g, b := m.At(x, y)
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}

// WritePNG writes the raster to path as a PNG.
func WritePNG(path string, m *raster.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, ToImage(m)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
