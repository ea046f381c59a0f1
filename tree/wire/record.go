package wire

import (
	"encoding/binary"
	"fmt"

	"github.com/etca-codec/etca/raster"
)

// noParent is the sentinel parent_index value denoting the root.
const noParent = 0xFFFF

// Record is one entry of the tree-serializer's record stream. Index
// fields (TileIndex, ParentIndex, Children) refer to positions in
// the enumeration the stream was written in, not to tile ids.
type Record struct {
	TileIndex   uint16
	Depth       uint8
	ParentIndex uint16 // noParent for the root
	Color       raster.Color
	Children    []uint16 // 0 or 4 entries, in quadrant order
}

// SerializeRecords writes records in the fixed per-record layout:
// tile_index(2) depth(1) parent_index(2) r(1) g(1) b(1) child_count(1)
// child_index(2)*child_count.
func SerializeRecords(records []Record) []byte {
	buf := make([]byte, 0, len(records)*9)
	for _, rec := range records {
		buf = binary.BigEndian.AppendUint16(buf, rec.TileIndex)
		buf = append(buf, rec.Depth)
		buf = binary.BigEndian.AppendUint16(buf, rec.ParentIndex)
		buf = append(buf, rec.Color.R, rec.Color.G, rec.Color.B)
		buf = append(buf, uint8(len(rec.Children)))
		for _, c := range rec.Children {
			buf = binary.BigEndian.AppendUint16(buf, c)
		}
	}
	return buf
}

// DeserializeRecords reads exactly n records starting at the front
// of data, returning the byte offset just past the last record.
func DeserializeRecords(data []byte, n int) ([]Record, int, error) {
	records := make([]Record, n)
	offset := 0
	for i := 0; i < n; i++ {
		if offset+9 > len(data) {
			return nil, 0, fmt.Errorf("tree/wire: record %d: %w", i, ErrTruncated)
		}
		rec := Record{
			TileIndex:   binary.BigEndian.Uint16(data[offset:]),
			Depth:       data[offset+2],
			ParentIndex: binary.BigEndian.Uint16(data[offset+3:]),
			Color:       raster.Color{R: data[offset+5], G: data[offset+6], B: data[offset+7]},
		}
		childCount := int(data[offset+8])
		offset += 9

		if childCount != 0 && childCount != 4 {
			// Malformed stream: clamp to what we can actually read
			// rather than fail outright (internal anomalies must
			// not crash the decoder).
			childCount = min(childCount, 4)
		}
		if offset+childCount*2 > len(data) {
			return nil, 0, fmt.Errorf("tree/wire: record %d children: %w", i, ErrTruncated)
		}
		if childCount > 0 {
			rec.Children = make([]uint16, childCount)
		}
		for c := 0; c < childCount; c++ {
			rec.Children[c] = binary.BigEndian.Uint16(data[offset:])
			offset += 2
		}

		records[i] = rec
	}
	return records, offset, nil
}
