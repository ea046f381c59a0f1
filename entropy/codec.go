// Package entropy implements the tag-dispatched entropy codec suite:
// RLE, a sliding-window LZ77 match codec ("DEFLATE"), a delta
// preprocessor composed with it ("ADVANCED"), and an adaptive
// selector that tries every allowed codec and keeps the smallest
// result.
package entropy

import "fmt"

// Tag is the one-byte codec identifier prefixed to every encoded
// stream.
type Tag byte

const (
	TagNone     Tag = 0x00
	TagRLE      Tag = 0x01
	TagDeflate  Tag = 0x02
	TagAdvanced Tag = 0x03
)

func (t Tag) String() string {
	switch t {
	case TagNone:
		return "none"
	case TagRLE:
		return "rle"
	case TagDeflate:
		return "deflate"
	case TagAdvanced:
		return "advanced"
	default:
		return fmt.Sprintf("tag(0x%02x)", byte(t))
	}
}

// Decode dispatches on the first byte of data and returns the
// decoded payload. Unknown tags are treated as a literal stream with
// a one-byte prefix removed, matching the legacy-fallback contract.
func Decode(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	switch Tag(data[0]) {
	case TagNone:
		return data[1:], nil
	case TagRLE:
		return decodeRLE(data[1:])
	case TagDeflate:
		return decodeDeflate(data[1:])
	case TagAdvanced:
		return decodeAdvanced(data[1:])
	default:
		return data[1:], nil
	}
}
