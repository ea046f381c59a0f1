package tree_test

import (
	"testing"

	"github.com/etca-codec/etca/tree"
	"github.com/stretchr/testify/require"
)

func TestRootAddressStringIsDot(t *testing.T) {
	require.Equal(t, ".", tree.Address{}.String())
}

func TestAddressStringJoinsWithDots(t *testing.T) {
	addr := tree.Address{}.Child(1).Child(0).Child(3)
	require.Equal(t, "1.0.3", addr.String())
}

func TestAddressDepthMatchesLength(t *testing.T) {
	addr := tree.Address{}.Child(2).Child(2)
	require.Equal(t, 2, addr.Depth())
}

func TestAddressChildDoesNotMutateParent(t *testing.T) {
	parent := tree.Address{1, 2}
	child := parent.Child(3)
	require.Equal(t, tree.Address{1, 2}, parent)
	require.Equal(t, tree.Address{1, 2, 3}, child)
}
