package wire

import "errors"

// ErrTruncated is returned when fewer bytes than required are
// available at any parse step: the header, or a record within the
// stream.
var ErrTruncated = errors.New("tree/wire: truncated stream")
