package imageio

import (
	"fmt"
	goimage "image"
	"image/color"
	"image/png"
	"io"

	"github.com/etca-codec/etca/raster"
)

// WritePNG writes img to w as a PNG, via the standard library codec.
// PNG is an external collaborator format, not part of the tree/entropy
// core, so it is the one place this module leans on image/png rather
// than a pack dependency.
func WritePNG(w io.Writer, img *raster.Image) error {
	dst := goimage.NewRGBA(goimage.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			c := img.At(x, y)
			dst.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF})
		}
	}
	if err := png.Encode(w, dst); err != nil {
		return fmt.Errorf("imageio: png encode: %w", err)
	}
	return nil
}

// ReadPNG reads a PNG from r and converts it to an RGB raster.Image,
// discarding any alpha channel.
func ReadPNG(r io.Reader) (*raster.Image, error) {
	src, _, err := goimage.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("imageio: png decode: %w", err)
	}
	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	out := raster.New(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r16, g16, b16, _ := src.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			out.Set(x, y, raster.Color{R: uint8(r16 >> 8), G: uint8(g16 >> 8), B: uint8(b16 >> 8)})
		}
	}
	return out, nil
}
