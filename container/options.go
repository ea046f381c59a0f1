package container

import (
	"io"
	"log/slog"

	"github.com/etca-codec/etca/entropy"
)

// EncodeOptions configures a single Encode call: the tree-builder
// parameters, entropy-selector behavior, and the metadata to embed.
type EncodeOptions struct {
	Mode              Mode
	VarianceThreshold float64
	MaxTreeDepth      int

	// PreferSpeed restricts the entropy selector to RLE only.
	PreferSpeed bool
	// VarianceWorkers, when > 1, fans the variance reduction out
	// across that many goroutines.
	VarianceWorkers int

	Author   string
	Metadata map[string]string

	Logger *slog.Logger
}

func (o EncodeOptions) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (o EncodeOptions) adaptiveOptions() entropy.AdaptiveOptions {
	return entropy.AdaptiveOptions{PreferSpeed: o.PreferSpeed}
}

// LossyPreset sets variance_threshold = quality/255 and a max tree
// depth of 12, per the lossy container preset. quality is 0-100.
func LossyPreset(quality int) EncodeOptions {
	return EncodeOptions{
		Mode:              ModeLossy,
		VarianceThreshold: float64(quality) / 255.0,
		MaxTreeDepth:      12,
	}
}

// LosslessPreset sets variance_threshold = 0.001 and a max tree
// depth of 24. This is near-lossless, not strictly lossless: smooth
// regions still collapse to one color, and only regions whose
// variance stays above 0.001 all the way to depth 24 survive as
// single pixels.
func LosslessPreset() EncodeOptions {
	return EncodeOptions{
		Mode:              ModeLossless,
		VarianceThreshold: 0.001,
		MaxTreeDepth:      24,
	}
}

// DecodeOptions configures a single Decode call.
type DecodeOptions struct {
	// Smooth applies the 3x3 neighborhood blend to the whole
	// rendered image after leaf fill, matching the reference
	// behavior's whole-image (not tile-boundary-only) interpolation.
	Smooth bool
	// RenderWorkers, when > 1, fans per-leaf rectangle fill out
	// across that many goroutines; leaf rectangles are disjoint by
	// construction so this never races.
	RenderWorkers int

	Logger *slog.Logger
}

func (o DecodeOptions) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
