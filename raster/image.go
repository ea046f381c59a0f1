// Package raster provides an in-memory RGB8 pixel buffer with region
// extraction and average-color reduction.
package raster

import "fmt"

// Color is an RGB8 triplet.
type Color struct {
	R, G, B uint8
}

// Image is a row-major RGB8 pixel buffer.
type Image struct {
	Width  int
	Height int
	Pixels []Color
}

// New allocates a zeroed image of the given dimensions.
func New(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pixels: make([]Color, width*height),
	}
}

// NewFromRGB builds an image from a flat row-major RGB8 byte slice
// (3 bytes per pixel), as produced by an external pixel-array loader.
func NewFromRGB(width, height int, rgb []byte) (*Image, error) {
	if len(rgb) != width*height*3 {
		return nil, fmt.Errorf("raster: expected %d bytes, got %d", width*height*3, len(rgb))
	}
	img := New(width, height)
	for i := range img.Pixels {
		img.Pixels[i] = Color{rgb[i*3], rgb[i*3+1], rgb[i*3+2]}
	}
	return img, nil
}

// ToRGB flattens the image into a row-major RGB8 byte slice.
func (img *Image) ToRGB() []byte {
	out := make([]byte, img.Width*img.Height*3)
	for i, c := range img.Pixels {
		out[i*3] = c.R
		out[i*3+1] = c.G
		out[i*3+2] = c.B
	}
	return out
}

// At reads the pixel at (x, y). Out-of-range reads yield black, per
// the out-of-bounds contract for pixel access.
func (img *Image) At(x, y int) Color {
	if x < 0 || y < 0 || x >= img.Width || y >= img.Height {
		return Color{}
	}
	return img.Pixels[y*img.Width+x]
}

// Set writes the pixel at (x, y). Out-of-range writes are silently
// ignored.
func (img *Image) Set(x, y int, c Color) {
	if x < 0 || y < 0 || x >= img.Width || y >= img.Height {
		return
	}
	img.Pixels[y*img.Width+x] = c
}

// Region describes a rectangular sub-area of an image, in the
// image's own coordinate space.
type Region struct {
	X, Y, W, H int
}

// Extract copies the pixels inside r into a freshly allocated image.
// Coordinates outside the source are filled with black, matching
// Image.At's out-of-range behavior.
func (img *Image) Extract(r Region) *Image {
	sub := New(r.W, r.H)
	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			sub.Set(x, y, img.At(r.X+x, r.Y+y))
		}
	}
	return sub
}

// Fill sets every pixel inside r to c. Used by the decoder to paint
// a leaf tile's rectangle.
func (img *Image) Fill(r Region, c Color) {
	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			img.Set(r.X+x, r.Y+y, c)
		}
	}
}

// AverageColor returns the arithmetic mean of all pixels, rounded
// toward zero, per the per-tile color invariant. An empty image
// yields black.
func (img *Image) AverageColor() Color {
	if len(img.Pixels) == 0 {
		return Color{}
	}
	var sumR, sumG, sumB uint64
	for _, p := range img.Pixels {
		sumR += uint64(p.R)
		sumG += uint64(p.G)
		sumB += uint64(p.B)
	}
	n := uint64(len(img.Pixels))
	return Color{
		R: uint8(sumR / n),
		G: uint8(sumG / n),
		B: uint8(sumB / n),
	}
}
