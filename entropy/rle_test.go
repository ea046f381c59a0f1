package entropy_test

import (
	"bytes"
	"testing"

	"github.com/etca-codec/etca/entropy"
	"github.com/stretchr/testify/require"
)

func TestRLEScenario(t *testing.T) {
	input := append(bytes.Repeat([]byte{0xAA}, 10), 0xFF)
	input = append(input, 0xBB, 0xBB, 0xBB)

	encoded := entropy.EncodeRLE(input)
	require.Equal(t, byte(entropy.TagRLE), encoded[0])

	want := []byte{0xFF, 0xAA, 0x0A, 0xFF, 0xFF, 0xBB, 0xBB, 0xBB}
	require.Equal(t, want, encoded[1:])

	decoded, err := entropy.Decode(encoded)
	require.NoError(t, err)
	require.Equal(t, input, decoded)
}

func TestRLEShortRunsStayLiteral(t *testing.T) {
	input := []byte{1, 2, 2, 2, 3}
	encoded := entropy.EncodeRLE(input)
	decoded, err := entropy.Decode(encoded)
	require.NoError(t, err)
	require.Equal(t, input, decoded)
}

func TestRLERunLongerThanCapSplits(t *testing.T) {
	input := bytes.Repeat([]byte{7}, 300)
	encoded := entropy.EncodeRLE(input)
	decoded, err := entropy.Decode(encoded)
	require.NoError(t, err)
	require.Equal(t, input, decoded)
}

func TestRLEEmpty(t *testing.T) {
	encoded := entropy.EncodeRLE(nil)
	decoded, err := entropy.Decode(encoded)
	require.NoError(t, err)
	require.Empty(t, decoded)
}
