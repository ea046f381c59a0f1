// Package wire implements the tree (de)serializer: the 14-byte
// header and the index-based record stream that follows it.
package wire

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// HeaderLength is the fixed size, in bytes, of the tree-serializer
// header.
const HeaderLength = 14

// Header precedes the record stream. All fields are big-endian.
type Header struct {
	ImageWidth  uint32
	ImageHeight uint32
	TileCount   uint32
	MaxDepth    uint16
}

// SerializeHeader writes h in the fixed 14-byte big-endian layout.
func SerializeHeader(h Header) []byte {
	var buf bytes.Buffer
	binary.Write(&buf, binary.BigEndian, h)
	return buf.Bytes()
}

// DeserializeHeader reads a Header from the front of buf.
func DeserializeHeader(buf []byte) (Header, error) {
	if len(buf) < HeaderLength {
		return Header{}, fmt.Errorf("tree/wire: header: %w", ErrTruncated)
	}
	var h Header
	err := binary.Read(bytes.NewReader(buf[:HeaderLength]), binary.BigEndian, &h)
	if err != nil {
		return Header{}, fmt.Errorf("tree/wire: header: %w", err)
	}
	return h, nil
}
