// Package tree implements the variance-driven quad-split tree: its
// subdivision geometry, the node table that owns tiles by id, and
// the recursive builder.
package tree

import "github.com/etca-codec/etca/raster"

// ChildrenPerTile is the fan-out of one subdivision step. Despite
// the "Spectre tile" marketing name, this is an ordinary 2x2 quad
// split, not an aperiodic tiling; the constant is 4, not a
// Spectre-specific number.
const ChildrenPerTile = 4

// ChildRegion computes the rectangle of child index k (0-3) within
// parent, using left/top-heavy rounding so the four children
// partition parent exactly with no gaps and no overlap.
//
// Index layout:
//
//	0 top-left     1 top-right
//	2 bottom-left  3 bottom-right
func ChildRegion(parent raster.Region, k int) raster.Region {
	leftW := (parent.W + 1) / 2
	rightW := parent.W - leftW
	topH := (parent.H + 1) / 2
	bottomH := parent.H - topH

	switch k {
	case 0:
		return raster.Region{X: parent.X, Y: parent.Y, W: leftW, H: topH}
	case 1:
		return raster.Region{X: parent.X + leftW, Y: parent.Y, W: rightW, H: topH}
	case 2:
		return raster.Region{X: parent.X, Y: parent.Y + topH, W: leftW, H: bottomH}
	case 3:
		return raster.Region{X: parent.X + leftW, Y: parent.Y + topH, W: rightW, H: bottomH}
	default:
		panic("tree: child index out of range")
	}
}
