package entropy

import "errors"

// ErrTruncated is returned when an entropy-coded stream ends in the
// middle of a token (a RLE run marker, or a DEFLATE match token).
var ErrTruncated = errors.New("entropy: truncated stream")
