package container

import (
	"errors"
	"fmt"

	"github.com/etca-codec/etca/entropy"
	"github.com/etca-codec/etca/raster"
	"github.com/etca-codec/etca/tree"
	"github.com/etca-codec/etca/tree/wire"
)

// Encode builds a tree over img, serializes it, entropy-codes the
// result with the adaptive selector, and wraps it in the fixed
// 20-byte ".etca" header plus an optional metadata blob.
func Encode(img *raster.Image, opts EncodeOptions) ([]byte, error) {
	logger := opts.logger()

	metadata := map[string]string{}
	for k, v := range opts.Metadata {
		metadata[k] = v
	}
	if opts.Author != "" {
		metadata["author"] = opts.Author
	}
	metaBytes, err := SerializeMetadata(metadata)
	if err != nil {
		return nil, err
	}

	logger.Debug("container: building tree", "width", img.Width, "height", img.Height)
	t := tree.Build(img, tree.BuildOptions{
		VarianceThreshold: opts.VarianceThreshold,
		MaxDepth:          opts.MaxTreeDepth,
		VarianceWorkers:   opts.VarianceWorkers,
		Logger:            logger,
	})

	treeBytes := wire.EncodeTree(t, img.Width, img.Height)
	payload := entropy.EncodeAdaptive(treeBytes, opts.adaptiveOptions())
	logger.Debug("container: entropy coded", "tiles", t.Count(), "tree_bytes", len(treeBytes), "payload_bytes", len(payload), "codec", entropy.Tag(payload[0]))

	header := Header{
		Magic:          magic,
		Version:        currentVersion,
		Mode:           opts.Mode,
		Width:          uint32(img.Width),
		Height:         uint32(img.Height),
		ColorDepth:     colorDepthRGB24,
		MetadataLength: uint32(len(metaBytes)),
	}

	out := SerializeHeader(header)
	out = append(out, metaBytes...)
	out = append(out, payload...)
	return out, nil
}

// Decode parses a ".etca" container, reconstructs the image, and
// returns its metadata.
func Decode(data []byte, opts DecodeOptions) (*raster.Image, map[string]string, error) {
	logger := opts.logger()

	header, err := DeserializeHeader(data)
	if err != nil {
		return nil, nil, err
	}

	rest := data[HeaderLength:]
	if uint32(len(rest)) < header.MetadataLength {
		return nil, nil, fmt.Errorf("container: metadata: %w", ErrTruncated)
	}
	metaBytes := rest[:header.MetadataLength]
	payload := rest[header.MetadataLength:]
	metadata := DeserializeMetadata(metaBytes)

	treeBytes, err := entropy.Decode(payload)
	if err != nil {
		if errors.Is(err, entropy.ErrTruncated) {
			return nil, nil, fmt.Errorf("container: payload: %w: %w", ErrTruncated, err)
		}
		return nil, nil, fmt.Errorf("container: payload: %w", err)
	}

	t, wireHeader, err := wire.DecodeTree(treeBytes)
	if err != nil {
		if errors.Is(err, wire.ErrTruncated) {
			return nil, nil, fmt.Errorf("container: tree: %w: %w", ErrTruncated, err)
		}
		return nil, nil, fmt.Errorf("container: tree: %w", err)
	}
	if wireHeader.ImageWidth != header.Width || wireHeader.ImageHeight != header.Height {
		return nil, nil, ErrDimensionMismatch
	}

	logger.Debug("container: rendering", "tiles", t.Count())
	img := render(t, int(header.Width), int(header.Height), opts.RenderWorkers)

	if opts.Smooth {
		img = smooth(img)
	}

	return img, metadata, nil
}

// Info parses only the header and metadata blob, without touching
// the entropy-coded payload.
func Info(data []byte) (Header, map[string]string, error) {
	header, err := DeserializeHeader(data)
	if err != nil {
		return Header{}, nil, err
	}
	rest := data[HeaderLength:]
	if uint32(len(rest)) < header.MetadataLength {
		return Header{}, nil, fmt.Errorf("container: metadata: %w", ErrTruncated)
	}
	return header, DeserializeMetadata(rest[:header.MetadataLength]), nil
}
