package container

import "github.com/etca-codec/etca/raster"

const (
	smoothCenterWeight   = 0.5
	smoothNeighborWeight = 0.5 / 8
)

var neighborOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// smooth applies a 3x3 neighborhood blend to every pixel of img,
// including pixels inside a uniformly-colored tile, matching the
// reference decoder's whole-image (not tile-boundary-only)
// interpolation. Missing neighbors at borders are omitted from both
// the weighted sum and its normalizing weight.
func smooth(img *raster.Image) *raster.Image {
	out := raster.New(img.Width, img.Height)
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			out.Set(x, y, blendPixel(img, x, y))
		}
	}
	return out
}

func blendPixel(img *raster.Image, x, y int) raster.Color {
	center := img.At(x, y)
	sumR := float64(center.R) * smoothCenterWeight
	sumG := float64(center.G) * smoothCenterWeight
	sumB := float64(center.B) * smoothCenterWeight
	weight := smoothCenterWeight

	for _, off := range neighborOffsets {
		nx, ny := x+off[0], y+off[1]
		if nx < 0 || ny < 0 || nx >= img.Width || ny >= img.Height {
			continue
		}
		n := img.At(nx, ny)
		sumR += float64(n.R) * smoothNeighborWeight
		sumG += float64(n.G) * smoothNeighborWeight
		sumB += float64(n.B) * smoothNeighborWeight
		weight += smoothNeighborWeight
	}

	return raster.Color{
		R: uint8(sumR / weight),
		G: uint8(sumG / weight),
		B: uint8(sumB / weight),
	}
}
