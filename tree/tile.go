package tree

import "github.com/etca-codec/etca/raster"

// Tile is a node of the encoding tree: either a leaf holding one
// average color, or an internal node naming four children by id.
type Tile struct {
	ID       uint64
	Depth    int
	ParentID uint64 // 0 for the root
	Color    raster.Color
	Children []uint64 // empty for leaves, else exactly 4, in index order
}

// IsLeaf reports whether t has no children.
func (t *Tile) IsLeaf() bool {
	return len(t.Children) == 0
}

// Tree owns every Tile of a build session by id. The root id is
// always 1. Tile id allocation is per-tree: the reference
// implementation uses a single process-global counter, which is
// unsafe across concurrent builds; this allocator lives on the Tree
// instead (see the design note on the global tile-id counter).
type Tree struct {
	RootID   uint64
	MaxDepth int

	tiles     map[uint64]*Tile
	addresses map[uint64]Address
	nextID    uint64
}

// NewTree creates an empty tree whose next allocated id is 1.
func NewTree() *Tree {
	return &Tree{
		tiles:     make(map[uint64]*Tile),
		addresses: make(map[uint64]Address),
		nextID:    1,
	}
}

// allocID returns a fresh, tree-local monotonic id starting at 1.
func (t *Tree) allocID() uint64 {
	id := t.nextID
	t.nextID++
	return id
}

// Tile looks up a tile by id.
func (t *Tree) Tile(id uint64) (*Tile, bool) {
	tile, ok := t.tiles[id]
	return tile, ok
}

// Root returns the root tile. Build always produces one.
func (t *Tree) Root() *Tile {
	return t.tiles[t.RootID]
}

// Address returns the hierarchical address of the tile with the
// given id.
func (t *Tree) Address(id uint64) (Address, bool) {
	addr, ok := t.addresses[id]
	return addr, ok
}

// put registers a freshly built tile and its address.
func (t *Tree) put(tile *Tile, addr Address) {
	t.tiles[tile.ID] = tile
	t.addresses[tile.ID] = addr
}

// InstallTile registers a tile produced outside the recursive
// builder (the wire decoder) directly into t, along with its
// hierarchical address. It also advances t's id allocator so a tree
// built this way can still have further tiles allocated onto it.
func InstallTile(t *Tree, tile *Tile, addr Address) {
	t.put(tile, addr)
	if tile.ID >= t.nextID {
		t.nextID = tile.ID + 1
	}
}

// Count returns the number of tiles in the tree.
func (t *Tree) Count() int {
	return len(t.tiles)
}

// AllTiles returns every tile in the deterministic pre-order
// enumeration used by the serializer: the order tiles were inserted
// during the recursive build, root first. Callers (the serializer)
// MUST use this order; decoders must not assume any other.
func (t *Tree) AllTiles() []*Tile {
	ordered := make([]*Tile, 0, len(t.tiles))
	visited := make(map[uint64]bool, len(t.tiles))
	var walk func(id uint64)
	walk = func(id uint64) {
		tile, ok := t.tiles[id]
		if !ok || visited[id] {
			return // dangling or duplicate child reference: skip rather than crash
		}
		visited[id] = true
		ordered = append(ordered, tile)
		for _, childID := range tile.Children {
			walk(childID)
		}
	}
	walk(t.RootID)
	return ordered
}

// Leaves returns every leaf tile, in pre-order.
func (t *Tree) Leaves() []*Tile {
	var leaves []*Tile
	for _, tile := range t.AllTiles() {
		if tile.IsLeaf() {
			leaves = append(leaves, tile)
		}
	}
	return leaves
}
