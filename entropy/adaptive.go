package entropy

// AdaptiveOptions controls which codecs the adaptive selector tries.
type AdaptiveOptions struct {
	// PreferSpeed restricts the selector to RLE only, skipping the
	// more expensive DEFLATE and ADVANCED passes.
	PreferSpeed bool
	Deflate     DeflateParams
}

// EncodeAdaptive tries every allowed codec and returns the smallest
// result, tagged with that codec's own tag byte. RLE is always
// tried; DEFLATE and ADVANCED are added unless PreferSpeed is set.
// Ties are broken in favor of the earlier-tried codec. Empty input
// encodes as a single TagNone byte.
func EncodeAdaptive(data []byte, opts AdaptiveOptions) []byte {
	if len(data) == 0 {
		return []byte{byte(TagNone)}
	}

	best := EncodeRLE(data)
	if !opts.PreferSpeed {
		for _, candidate := range [][]byte{
			EncodeDeflate(data, opts.Deflate),
			EncodeAdvanced(data, opts.Deflate),
		} {
			if len(candidate) < len(best) {
				best = candidate
			}
		}
	}
	return best
}
