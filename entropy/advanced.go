package entropy

// EncodeAdvanced applies a byte-wise delta filter and then the
// DEFLATE matcher, tag-prefixed with TagAdvanced. The DEFLATE
// envelope's own tag byte is stripped before re-tagging, since
// ADVANCED owns the outer tag.
func EncodeAdvanced(data []byte, params DeflateParams) []byte {
	delta := deltaEncode(data)
	deflated := EncodeDeflate(delta, params)

	out := make([]byte, 0, len(deflated))
	out = append(out, byte(TagAdvanced))
	out = append(out, deflated[1:]...) // drop DEFLATE's own tag byte
	return out
}

func decodeAdvanced(body []byte) ([]byte, error) {
	delta, err := decodeDeflate(body)
	if err != nil {
		return nil, err
	}
	return deltaDecode(delta), nil
}

// deltaEncode keeps byte 0 as-is and replaces every later byte with
// its unsigned-wraparound difference from the previous input byte.
func deltaEncode(data []byte) []byte {
	if len(data) == 0 {
		return nil
	}
	out := make([]byte, len(data))
	out[0] = data[0]
	for i := 1; i < len(data); i++ {
		out[i] = data[i] - data[i-1]
	}
	return out
}

// deltaDecode reverses deltaEncode.
func deltaDecode(data []byte) []byte {
	if len(data) == 0 {
		return nil
	}
	out := make([]byte, len(data))
	out[0] = data[0]
	for i := 1; i < len(data); i++ {
		out[i] = data[i] + out[i-1]
	}
	return out
}
