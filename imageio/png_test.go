package imageio_test

import (
	"bytes"
	"testing"

	"github.com/etca-codec/etca/imageio"
	"github.com/etca-codec/etca/raster"
	"github.com/stretchr/testify/require"
)

func TestPNGRoundTrip(t *testing.T) {
	img, err := raster.NewFromRGB(3, 2, []byte{
		255, 0, 0, 0, 255, 0, 0, 0, 255,
		10, 20, 30, 40, 50, 60, 70, 80, 90,
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, imageio.WritePNG(&buf, img))

	got, err := imageio.ReadPNG(&buf)
	require.NoError(t, err)
	require.Equal(t, img.Pixels, got.Pixels)
}
