package raster_test

import (
	"testing"

	"github.com/etca-codec/etca/raster"
	"github.com/stretchr/testify/require"
)

func TestVarianceUniformIsZero(t *testing.T) {
	pixels := make([]raster.Color, 64)
	for i := range pixels {
		pixels[i] = raster.Color{R: 200, G: 50, B: 10}
	}
	require.Equal(t, 0.0, raster.Variance(pixels))
}

func TestVarianceEmptyIsZero(t *testing.T) {
	require.Equal(t, 0.0, raster.Variance(nil))
}

func TestVarianceCheckerboardIsPositive(t *testing.T) {
	pixels := []raster.Color{
		{R: 255}, {R: 0}, {R: 0}, {R: 255},
	}
	require.Greater(t, raster.Variance(pixels), 0.0)
}

func TestVarianceParallelMatchesSequential(t *testing.T) {
	pixels := make([]raster.Color, 10000)
	for i := range pixels {
		pixels[i] = raster.Color{R: uint8(i % 256), G: uint8((i * 3) % 256), B: uint8((i * 7) % 256)}
	}
	sequential := raster.Variance(pixels)
	parallel := raster.VarianceParallel(pixels, 8)
	require.InDelta(t, sequential, parallel, 1e-9)
}
