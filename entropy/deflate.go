package entropy

import (
	"encoding/binary"
	"fmt"
)

const (
	deflateSentinel   = 0xFF
	deflateMinMatch   = 3
	DefaultWindowSize = 32768
	DefaultMaxMatch   = 258
)

// DeflateParams tunes the LZ77-flavored sliding-window matcher.
type DeflateParams struct {
	WindowSize int
	MaxMatch   int
}

func (p DeflateParams) withDefaults() DeflateParams {
	if p.WindowSize <= 0 {
		p.WindowSize = DefaultWindowSize
	}
	if p.MaxMatch <= 0 {
		p.MaxMatch = DefaultMaxMatch
	}
	return p
}

// EncodeDeflate compresses data with a sliding-window LZ77 matcher,
// tag-prefixed with TagDeflate. At every position it looks for the
// longest match of at least deflateMinMatch bytes within the last
// WindowSize bytes; matches are encoded as a 5-byte token, literals
// are copied through (with the sentinel byte escaped).
func EncodeDeflate(data []byte, params DeflateParams) []byte {
	out := []byte{byte(TagDeflate)}
	out = append(out, deflateBody(data, params.withDefaults())...)
	return out
}

func deflateBody(data []byte, params DeflateParams) []byte {
	var out []byte
	i := 0
	for i < len(data) {
		bestLen, bestDist := longestMatch(data, i, params)
		if bestLen >= deflateMinMatch {
			out = append(out, deflateSentinel)
			out = binary.BigEndian.AppendUint16(out, uint16(bestLen))
			out = binary.BigEndian.AppendUint16(out, uint16(bestDist))
			i += bestLen
			continue
		}
		if data[i] == deflateSentinel {
			out = append(out, deflateSentinel, deflateSentinel)
		} else {
			out = append(out, data[i])
		}
		i++
	}
	return out
}

func longestMatch(data []byte, pos int, params DeflateParams) (length, dist int) {
	windowStart := max(0, pos-params.WindowSize)
	maxLen := min(params.MaxMatch, len(data)-pos)

	bestLen, bestDist := 0, 0
	for cand := windowStart; cand < pos; cand++ {
		l := 0
		for l < maxLen && data[cand+l] == data[pos+l] {
			l++
		}
		if l > bestLen {
			bestLen = l
			bestDist = pos - cand
		}
	}
	return bestLen, bestDist
}

func decodeDeflate(body []byte) ([]byte, error) {
	var out []byte
	i := 0
	for i < len(body) {
		if body[i] != deflateSentinel {
			out = append(out, body[i])
			i++
			continue
		}
		if i+1 >= len(body) {
			return nil, fmt.Errorf("entropy: deflate: %w", ErrTruncated)
		}
		if body[i+1] == deflateSentinel {
			out = append(out, deflateSentinel)
			i += 2
			continue
		}
		if i+5 > len(body) {
			return nil, fmt.Errorf("entropy: deflate: %w", ErrTruncated)
		}
		length := int(binary.BigEndian.Uint16(body[i+1 : i+3]))
		dist := int(binary.BigEndian.Uint16(body[i+3 : i+5]))
		if dist == 0 || dist > len(out) {
			return nil, fmt.Errorf("entropy: deflate: invalid distance %d: %w", dist, ErrTruncated)
		}
		// Copy byte-by-byte: the source region can overlap the
		// destination when dist < length, since out grows on every
		// iteration and each read re-resolves against the new
		// length.
		for k := 0; k < length; k++ {
			out = append(out, out[len(out)-dist])
		}
		i += 5
	}
	return out, nil
}
