package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/etca-codec/etca/container"
	"github.com/etca-codec/etca/imageio"
	"github.com/etca-codec/etca/raster"
	"github.com/google/subcommands"
	"github.com/schollz/progressbar/v3"
)

type compressCmd struct {
	inputPath  string
	outputPath string
	lossless   bool
	quality    int
	author     string
	preferFast bool
}

func (c *compressCmd) Name() string     { return "compress" }
func (c *compressCmd) Synopsis() string { return "compress an image into a .etca container" }
func (c *compressCmd) Usage() string {
	return "etcactl compress -i <path.ppm|path.png> -o <path.etca> [-lossless] [-quality N] [-author S]\n"
}
func (c *compressCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.inputPath, "i", "", "Input image path (.ppm or .png)")
	f.StringVar(&c.outputPath, "o", "", "Output .etca path")
	f.BoolVar(&c.lossless, "lossless", false, "Use the near-lossless preset")
	f.IntVar(&c.quality, "quality", 80, "Lossy quality, 0-100 (ignored with -lossless)")
	f.StringVar(&c.author, "author", "", "Author metadata value")
	f.BoolVar(&c.preferFast, "fast", false, "Prefer encode speed over entropy ratio")
}

func (c *compressCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	img, err := readImage(c.inputPath)
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}

	bar := progressbar.NewOptions(3, progressbar.OptionShowCount())

	var opts container.EncodeOptions
	if c.lossless {
		opts = container.LosslessPreset()
	} else {
		opts = container.LossyPreset(c.quality)
	}
	opts.Author = c.author
	opts.PreferSpeed = c.preferFast
	opts.Logger = defaultLogger()
	bar.Add(1)

	data, err := container.Encode(img, opts)
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}
	bar.Add(1)

	if err := os.WriteFile(c.outputPath, data, 0o644); err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}
	bar.Add(1)
	bar.Finish()
	fmt.Println()
	fmt.Printf("wrote %d bytes to %s\n", len(data), c.outputPath)

	return subcommands.ExitSuccess
}

func readImage(path string) (*raster.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("etcactl: open %s: %w", path, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".ppm":
		return imageio.ReadPPM(f)
	case ".png":
		return imageio.ReadPNG(f)
	default:
		return nil, fmt.Errorf("etcactl: unrecognized image extension %q", filepath.Ext(path))
	}
}
