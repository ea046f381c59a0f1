package tree

import (
	"strconv"
	"strings"

	"github.com/etca-codec/etca/raster"
)

// Address is the hierarchical path from the root to a tile: an
// ordered sequence of child indices in [0,3]. The root's address is
// the empty sequence.
type Address []uint32

// Child returns the address of child k of addr.
func (addr Address) Child(k uint32) Address {
	child := make(Address, len(addr)+1)
	copy(child, addr)
	child[len(addr)] = k
	return child
}

// Depth is len(addr); kept as a named accessor since it doubles as
// the address-depth invariant check (P2 in the testable properties).
func (addr Address) Depth() int {
	return len(addr)
}

// String joins segments with ".". The empty address serializes as
// ".".
func (addr Address) String() string {
	if len(addr) == 0 {
		return "."
	}
	parts := make([]string, len(addr))
	for i, seg := range addr {
		parts[i] = strconv.FormatUint(uint64(seg), 10)
	}
	return strings.Join(parts, ".")
}

// Region resolves addr to its pixel rectangle by repeatedly applying
// ChildRegion starting from the full image rectangle.
func (addr Address) Region(width, height int) raster.Region {
	r := raster.Region{X: 0, Y: 0, W: width, H: height}
	for _, seg := range addr {
		r = ChildRegion(r, int(seg))
	}
	return r
}
