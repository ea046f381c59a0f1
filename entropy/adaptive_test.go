package entropy_test

import (
	"bytes"
	"testing"

	"github.com/etca-codec/etca/entropy"
	"github.com/stretchr/testify/require"
)

func TestAdaptiveEmptyIsOneByteNone(t *testing.T) {
	require.Equal(t, []byte{byte(entropy.TagNone)}, entropy.EncodeAdaptive(nil, entropy.AdaptiveOptions{}))
}

// TestAdaptiveNoWorseThanRLE is property P5.
func TestAdaptiveNoWorseThanRLE(t *testing.T) {
	cases := [][]byte{
		bytes.Repeat([]byte{1}, 50),
		[]byte("ABCABCABCABCABC"),
		{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
		bytes.Repeat([]byte{0xFF}, 20),
	}
	for _, data := range cases {
		rle := entropy.EncodeRLE(data)
		adaptive := entropy.EncodeAdaptive(data, entropy.AdaptiveOptions{})
		require.LessOrEqual(t, len(adaptive), len(rle))
	}
}

func TestAdaptivePreferSpeedOnlyTriesRLE(t *testing.T) {
	data := []byte("ABCABCABCABCABC")
	adaptive := entropy.EncodeAdaptive(data, entropy.AdaptiveOptions{PreferSpeed: true})
	require.Equal(t, byte(entropy.TagRLE), adaptive[0])
}

func TestAdaptiveRoundTripsForAllCodecs(t *testing.T) {
	data := []byte("the quick brown fox the quick brown fox the quick brown fox")
	adaptive := entropy.EncodeAdaptive(data, entropy.AdaptiveOptions{})
	decoded, err := entropy.Decode(adaptive)
	require.NoError(t, err)
	require.Equal(t, data, decoded)
}

// TestCodecRoundTripProperty is property P4, across many byte
// vectors and all three codecs.
func TestCodecRoundTripProperty(t *testing.T) {
	vectors := [][]byte{
		nil,
		{0},
		{0xFF},
		bytes.Repeat([]byte{3}, 1000),
		[]byte("mississippi river runs through mississippi"),
	}
	for _, v := range vectors {
		rle := entropy.EncodeRLE(v)
		gotRLE, err := entropy.Decode(rle)
		require.NoError(t, err)
		require.Equal(t, v, gotRLE)

		deflate := entropy.EncodeDeflate(v, entropy.DeflateParams{})
		gotDeflate, err := entropy.Decode(deflate)
		require.NoError(t, err)
		require.Equal(t, v, gotDeflate)

		advanced := entropy.EncodeAdvanced(v, entropy.DeflateParams{})
		gotAdvanced, err := entropy.Decode(advanced)
		require.NoError(t, err)
		require.Equal(t, v, gotAdvanced)
	}
}
