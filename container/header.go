package container

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Mode selects lossy vs. lossless encoding presets.
type Mode uint8

const (
	ModeLossy    Mode = 0x00
	ModeLossless Mode = 0x01
)

func (m Mode) String() string {
	switch m {
	case ModeLossy:
		return "lossy"
	case ModeLossless:
		return "lossless"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(m))
	}
}

const (
	magic           uint32 = 0x45544341 // "ETCA"
	currentVersion  uint8  = 0x01
	colorDepthRGB24 uint8  = 0x18

	// HeaderLength is the fixed size, in bytes, of the container
	// header.
	HeaderLength = 20
)

// Header is the fixed 20-byte ".etca" file header. All multi-byte
// fields are big-endian.
type Header struct {
	Magic          uint32
	Version        uint8
	Mode           Mode
	Width          uint32
	Height         uint32
	ColorDepth     uint8
	MetadataLength uint32
	Reserved       uint8
}

// SerializeHeader writes h in the fixed 20-byte big-endian layout.
func SerializeHeader(h Header) []byte {
	var buf bytes.Buffer
	binary.Write(&buf, binary.BigEndian, h)
	return buf.Bytes()
}

// DeserializeHeader reads a Header from the front of buf, validating
// the magic bytes and version.
func DeserializeHeader(buf []byte) (Header, error) {
	if len(buf) < HeaderLength {
		return Header{}, fmt.Errorf("%w: need %d bytes, have %d", ErrTruncated, HeaderLength, len(buf))
	}
	var h Header
	if err := binary.Read(bytes.NewReader(buf[:HeaderLength]), binary.BigEndian, &h); err != nil {
		return Header{}, fmt.Errorf("container: header: %w", err)
	}
	if h.Magic != magic {
		return Header{}, ErrBadMagic
	}
	if h.Version != currentVersion {
		return Header{}, ErrUnsupportedVersion
	}
	return h, nil
}
