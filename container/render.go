package container

import (
	"sync"

	"github.com/etca-codec/etca/raster"
	"github.com/etca-codec/etca/tree"
)

// render paints every leaf tile's rectangle, computed from its
// hierarchical address, into a freshly allocated image. Leaf
// rectangles are disjoint by construction, so the fill can be fanned
// out across workers without synchronization on img.
func render(t *tree.Tree, width, height int, workers int) *raster.Image {
	img := raster.New(width, height)
	leaves := t.Leaves()

	if workers < 2 || len(leaves) < workers*4 {
		for _, leaf := range leaves {
			fillLeaf(img, t, leaf, width, height)
		}
		return img
	}

	chunk := (len(leaves) + workers - 1) / workers
	var wg sync.WaitGroup
	for start := 0; start < len(leaves); start += chunk {
		end := min(start+chunk, len(leaves))
		wg.Add(1)
		go func(leaves []*tree.Tile) {
			defer wg.Done()
			for _, leaf := range leaves {
				fillLeaf(img, t, leaf, width, height)
			}
		}(leaves[start:end])
	}
	wg.Wait()

	return img
}

func fillLeaf(img *raster.Image, t *tree.Tree, leaf *tree.Tile, width, height int) {
	addr, ok := t.Address(leaf.ID)
	if !ok {
		return
	}
	region := addr.Region(width, height)
	img.Fill(region, leaf.Color)
}
