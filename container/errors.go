// Package container implements the ".etca" file format: a fixed
// 20-byte header, an optional metadata blob, and an entropy-coded
// tree payload.
package container

import "errors"

var (
	// ErrBadMagic is returned when the container does not start
	// with the ETCA magic bytes.
	ErrBadMagic = errors.New("container: bad magic")
	// ErrUnsupportedVersion is returned when the header version is
	// not one this package understands.
	ErrUnsupportedVersion = errors.New("container: unsupported version")
	// ErrTruncated is returned when fewer bytes than required are
	// present at any parse step.
	ErrTruncated = errors.New("container: truncated")
	// ErrDimensionMismatch is returned when the tree-serializer
	// header's width/height disagree with the container header's.
	ErrDimensionMismatch = errors.New("container: dimension mismatch")
)
