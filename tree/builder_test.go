package tree_test

import (
	"testing"

	"github.com/etca-codec/etca/raster"
	"github.com/etca-codec/etca/tree"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func uniformImage(w, h int, c raster.Color) *raster.Image {
	img := raster.New(w, h)
	for i := range img.Pixels {
		img.Pixels[i] = c
	}
	return img
}

func TestBuildUniformImageIsSingleLeaf(t *testing.T) {
	img := uniformImage(8, 8, raster.Color{R: 128, G: 128, B: 128})
	tr := tree.Build(img, tree.BuildOptions{VarianceThreshold: 0.05, MaxDepth: 4})

	require.Equal(t, 1, tr.Count())
	root := tr.Root()
	require.True(t, root.IsLeaf())
	require.Equal(t, raster.Color{R: 128, G: 128, B: 128}, root.Color)
}

func TestBuildCheckerboardSubdividesOnce(t *testing.T) {
	img, err := raster.NewFromRGB(2, 2, []byte{
		255, 0, 0, 0, 0, 0,
		0, 0, 0, 255, 0, 0,
	})
	require.NoError(t, err)

	tr := tree.Build(img, tree.BuildOptions{VarianceThreshold: 0.01, MaxDepth: 1})

	require.Equal(t, 5, tr.Count())
	root := tr.Root()
	require.False(t, root.IsLeaf())
	require.Len(t, root.Children, 4)

	wantColors := []raster.Color{
		{R: 255}, {}, {}, {R: 255},
	}
	for k, childID := range root.Children {
		child, ok := tr.Tile(childID)
		require.True(t, ok)
		require.True(t, child.IsLeaf())
		require.Equal(t, wantColors[k], child.Color)
	}
}

// TestBuildCoverage is property P1: leaf rectangles, computed from
// hierarchical addresses, tile the image exactly once each.
func TestBuildCoverage(t *testing.T) {
	img, err := raster.NewFromRGB(7, 5, make([]byte, 7*5*3))
	require.NoError(t, err)
	for i := range img.Pixels {
		img.Pixels[i] = raster.Color{R: uint8(i), G: uint8(i * 7), B: uint8(i * 13)}
	}

	tr := tree.Build(img, tree.BuildOptions{VarianceThreshold: 0.001, MaxDepth: 6})

	covered := make(map[[2]int]int)
	for _, leaf := range tr.Leaves() {
		addr, ok := tr.Address(leaf.ID)
		require.True(t, ok)
		r := addr.Region(img.Width, img.Height)
		for y := r.Y; y < r.Y+r.H; y++ {
			for x := r.X; x < r.X+r.W; x++ {
				covered[[2]int{x, y}]++
			}
		}
	}
	require.Len(t, covered, img.Width*img.Height)
	for _, count := range covered {
		require.Equal(t, 1, count)
	}
}

// TestBuildAddressDepthInvariant is property P2.
func TestBuildAddressDepthInvariant(t *testing.T) {
	img, err := raster.NewFromRGB(9, 9, make([]byte, 9*9*3))
	require.NoError(t, err)
	for i := range img.Pixels {
		img.Pixels[i] = raster.Color{R: uint8(i * 3), G: uint8(i), B: uint8(255 - i)}
	}

	tr := tree.Build(img, tree.BuildOptions{VarianceThreshold: 0.001, MaxDepth: 5})

	for _, tile := range tr.AllTiles() {
		addr, ok := tr.Address(tile.ID)
		require.True(t, ok)
		if diff := cmp.Diff(tile.Depth, addr.Depth()); diff != "" {
			t.Errorf("tile %d depth/address mismatch (-want+got):\n%v", tile.ID, diff)
		}
	}
}

// TestBuildVarianceRespecting is property P3.
func TestBuildVarianceRespecting(t *testing.T) {
	img, err := raster.NewFromRGB(9, 9, make([]byte, 9*9*3))
	require.NoError(t, err)
	for i := range img.Pixels {
		img.Pixels[i] = raster.Color{R: uint8(i * 5), G: uint8(i * 11), B: uint8(i * 17)}
	}

	const threshold = 0.02
	const maxDepth = 5
	tr := tree.Build(img, tree.BuildOptions{VarianceThreshold: threshold, MaxDepth: maxDepth})

	for _, tile := range tr.AllTiles() {
		addr, ok := tr.Address(tile.ID)
		require.True(t, ok)
		region := addr.Region(img.Width, img.Height)
		v := raster.Variance(img.Extract(region).Pixels)

		if !tile.IsLeaf() {
			require.Greater(t, v, threshold)
			continue
		}
		require.True(t, tile.Depth == maxDepth || v <= threshold)
	}
}

func TestBuildParentChildRelationships(t *testing.T) {
	img, err := raster.NewFromRGB(4, 4, make([]byte, 4*4*3))
	require.NoError(t, err)
	for i := range img.Pixels {
		img.Pixels[i] = raster.Color{R: uint8(i * 19)}
	}

	tr := tree.Build(img, tree.BuildOptions{VarianceThreshold: 0.0, MaxDepth: 3})

	for _, tile := range tr.AllTiles() {
		if tile.ID == tr.RootID {
			require.Equal(t, uint64(0), tile.ParentID)
			continue
		}
		parent, ok := tr.Tile(tile.ParentID)
		require.True(t, ok)
		require.Equal(t, parent.Depth+1, tile.Depth)
		require.Contains(t, parent.Children, tile.ID)
	}
}
