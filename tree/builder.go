package tree

import (
	"io"
	"log/slog"

	"github.com/etca-codec/etca/raster"
)

// BuildOptions configures the recursive tree builder.
type BuildOptions struct {
	// VarianceThreshold is the [0,1] cutoff below which a region is
	// accepted as a leaf.
	VarianceThreshold float64
	// MaxDepth caps recursion; the root is depth 0.
	MaxDepth int
	// VarianceWorkers, when > 1, fans the per-region variance
	// reduction out across that many goroutines.
	VarianceWorkers int
	// Logger receives debug-level build milestones. Defaults to a
	// discard handler.
	Logger *slog.Logger
}

func (o BuildOptions) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (o BuildOptions) variance(pixels []raster.Color) float64 {
	if o.VarianceWorkers > 1 {
		return raster.VarianceParallel(pixels, o.VarianceWorkers)
	}
	return raster.Variance(pixels)
}

// Build recursively subdivides img into a tree of tiles, splitting a
// region whenever its variance exceeds VarianceThreshold and the
// current depth is below MaxDepth.
func Build(img *raster.Image, opts BuildOptions) *Tree {
	t := NewTree()
	logger := opts.logger()

	logger.Debug("tree: build start", "width", img.Width, "height", img.Height, "threshold", opts.VarianceThreshold, "max_depth", opts.MaxDepth)

	var recurse func(region raster.Region, parentID uint64, depth int, addr Address) uint64
	recurse = func(region raster.Region, parentID uint64, depth int, addr Address) uint64 {
		sub := img.Extract(region)
		color := sub.AverageColor()

		id := t.allocID()
		tile := &Tile{ID: id, Depth: depth, ParentID: parentID, Color: color}

		if depth > t.MaxDepth {
			t.MaxDepth = depth
		}

		leaf := depth >= opts.MaxDepth || opts.variance(sub.Pixels) <= opts.VarianceThreshold
		if leaf || region.W <= 1 && region.H <= 1 {
			t.put(tile, addr)
			return id
		}

		children := make([]uint64, ChildrenPerTile)
		t.put(tile, addr) // register before recursing; Children is set once all four are built
		for k := 0; k < ChildrenPerTile; k++ {
			childRegion := ChildRegion(region, k)
			children[k] = recurse(childRegion, id, depth+1, addr.Child(uint32(k)))
		}
		tile.Children = children

		return id
	}

	t.RootID = recurse(raster.Region{X: 0, Y: 0, W: img.Width, H: img.Height}, 0, 0, Address{})

	logger.Debug("tree: build done", "tiles", t.Count(), "max_depth", t.MaxDepth)

	return t
}
