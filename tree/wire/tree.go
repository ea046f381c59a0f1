package wire

import (
	"fmt"

	"github.com/etca-codec/etca/tree"
)

// EncodeTree serializes t into the 14-byte header followed by its
// record stream, enumerating tiles in t.AllTiles order (the order
// the builder inserted them in — a pre-order traversal rooted at
// id=1). Encoders MUST use this order so round-trip hashes are
// stable across implementations.
func EncodeTree(t *tree.Tree, imageWidth, imageHeight int) []byte {
	tiles := t.AllTiles()

	// index(tile id) = position in the enumeration. Our builder
	// allocates ids in the same pre-order it inserts tiles, so id-1
	// already equals the enumeration position; indexOf is built
	// explicitly anyway so the format does not depend on that
	// coincidence.
	indexOf := make(map[uint64]uint16, len(tiles))
	for i, tile := range tiles {
		indexOf[tile.ID] = uint16(i)
	}

	records := make([]Record, len(tiles))
	for i, tile := range tiles {
		parentIndex := uint16(noParent)
		if tile.ParentID != 0 {
			parentIndex = indexOf[tile.ParentID]
		}
		children := make([]uint16, len(tile.Children))
		for k, childID := range tile.Children {
			children[k] = indexOf[childID]
		}
		records[i] = Record{
			TileIndex:   uint16(i),
			Depth:       uint8(tile.Depth),
			ParentIndex: parentIndex,
			Color:       tile.Color,
			Children:    children,
		}
	}

	header := SerializeHeader(Header{
		ImageWidth:  uint32(imageWidth),
		ImageHeight: uint32(imageHeight),
		TileCount:   uint32(len(tiles)),
		MaxDepth:    uint16(t.MaxDepth),
	})

	return append(header, SerializeRecords(records)...)
}

// DecodeTree parses a header-prefixed record stream back into a
// Tree, reconstructing each tile's hierarchical address by walking
// parent/child positions rather than trusting ParentIndex alone, per
// the decoder's address-reconstruction step.
func DecodeTree(data []byte) (*tree.Tree, Header, error) {
	header, err := DeserializeHeader(data)
	if err != nil {
		return nil, Header{}, err
	}

	records, _, err := DeserializeRecords(data[HeaderLength:], int(header.TileCount))
	if err != nil {
		return nil, Header{}, err
	}

	t := tree.NewTree()
	t.MaxDepth = int(header.MaxDepth)

	// position -> (parentPosition, slot within parent's children),
	// built by scanning every record's children list. A child
	// appearing under two parents resolves to whichever record was
	// parsed last, per the duplicate-parent hardening note.
	slots := make(map[uint16]slot, len(records))

	tiles := make(map[uint16]*tree.Tile, len(records))
	for _, rec := range records {
		id := uint64(rec.TileIndex) + 1
		parentID := uint64(0)
		if rec.ParentIndex != noParent {
			parentID = uint64(rec.ParentIndex) + 1
		}
		var children []uint64
		if len(rec.Children) > 0 {
			children = make([]uint64, len(rec.Children))
		}
		for pos, childIdx := range rec.Children {
			children[pos] = uint64(childIdx) + 1
			slots[childIdx] = slot{parent: rec.TileIndex, pos: pos}
		}
		tiles[rec.TileIndex] = &tree.Tile{
			ID:       id,
			Depth:    int(rec.Depth),
			ParentID: parentID,
			Color:    rec.Color,
			Children: children,
		}
	}

	if len(tiles) == 0 {
		return t, header, nil
	}

	rootIndex := uint16(0)
	for idx, tile := range tiles {
		if tile.ParentID == 0 {
			rootIndex = idx
		}
		addr := addressOf(idx, slots)
		tree.InstallTile(t, tile, addr)
	}
	t.RootID = uint64(rootIndex) + 1

	if int(header.TileCount) != t.Count() {
		return nil, Header{}, fmt.Errorf("tree/wire: decode: %w", ErrTruncated)
	}

	return t, header, nil
}

// slot records where one tile sits within its parent's children
// array: which parent, and at which quadrant position.
type slot struct {
	parent uint16
	pos    int
}

// addressOf walks from a tile's own position up to the root via the
// parent/slot map, collecting quadrant positions, then reverses them
// to get the address from the root down.
func addressOf(idx uint16, slots map[uint16]slot) tree.Address {
	var reversed []uint32
	cur := idx
	for {
		s, ok := slots[cur]
		if !ok {
			break // reached the root, which has no incoming slot
		}
		reversed = append(reversed, uint32(s.pos))
		cur = s.parent
	}
	addr := make(tree.Address, len(reversed))
	for i, seg := range reversed {
		addr[len(reversed)-1-i] = seg
	}
	return addr
}
