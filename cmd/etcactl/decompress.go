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

type decompressCmd struct {
	inputPath     string
	outputPath    string
	smooth        bool
	renderWorkers int
}

func (c *decompressCmd) Name() string     { return "decompress" }
func (c *decompressCmd) Synopsis() string { return "decompress a .etca container into an image" }
func (c *decompressCmd) Usage() string {
	return "etcactl decompress -i <path.etca> -o <path.ppm|path.png> [-smooth] [-workers N]\n"
}
func (c *decompressCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.inputPath, "i", "", "Input .etca path")
	f.StringVar(&c.outputPath, "o", "", "Output image path (.ppm or .png)")
	f.BoolVar(&c.smooth, "smooth", false, "Apply 3x3 smoothing to the whole rendered image")
	f.IntVar(&c.renderWorkers, "workers", 1, "Parallel rendering workers")
}

func (c *decompressCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	data, err := os.ReadFile(c.inputPath)
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}

	bar := progressbar.NewOptions(2, progressbar.OptionShowCount())

	img, _, err := container.Decode(data, container.DecodeOptions{
		Smooth:        c.smooth,
		RenderWorkers: c.renderWorkers,
		Logger:        defaultLogger(),
	})
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}
	bar.Add(1)

	if err := writeImage(c.outputPath, img); err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}
	bar.Add(1)
	bar.Finish()
	fmt.Println()
	fmt.Printf("wrote %dx%d image to %s\n", img.Width, img.Height, c.outputPath)

	return subcommands.ExitSuccess
}

func writeImage(path string, img *raster.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("etcactl: create %s: %w", path, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".ppm":
		return imageio.WritePPM(f, img)
	case ".png":
		return imageio.WritePNG(f, img)
	default:
		return fmt.Errorf("etcactl: unrecognized image extension %q", filepath.Ext(path))
	}
}
