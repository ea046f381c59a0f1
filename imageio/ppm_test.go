package imageio_test

import (
	"bytes"
	"testing"

	"github.com/etca-codec/etca/imageio"
	"github.com/etca-codec/etca/raster"
	"github.com/stretchr/testify/require"
)

func TestPPMRoundTrip(t *testing.T) {
	img, err := raster.NewFromRGB(2, 2, []byte{
		255, 0, 0, 0, 255, 0,
		0, 0, 255, 255, 255, 0,
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, imageio.WritePPM(&buf, img))

	got, err := imageio.ReadPPM(&buf)
	require.NoError(t, err)
	require.Equal(t, img.Pixels, got.Pixels)
}

func TestPPMRejectsWrongMagic(t *testing.T) {
	_, err := imageio.ReadPPM(bytes.NewReader([]byte("P5\n1 1\n255\n\x00")))
	require.Error(t, err)
}

func TestPPMSkipsComments(t *testing.T) {
	data := []byte("P6\n# a comment\n2 1\n255\n\xFF\x00\x00\x00\xFF\x00")
	img, err := imageio.ReadPPM(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, 2, img.Width)
	require.Equal(t, 1, img.Height)
	require.Equal(t, raster.Color{R: 255}, img.At(0, 0))
	require.Equal(t, raster.Color{G: 255}, img.At(1, 0))
}
