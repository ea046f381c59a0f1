package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/etca-codec/etca/container"
	"github.com/google/subcommands"
)

type infoCmd struct {
	inputPath string
}

func (c *infoCmd) Name() string     { return "info" }
func (c *infoCmd) Synopsis() string { return "print a .etca container's header and metadata" }
func (c *infoCmd) Usage() string {
	return "etcactl info -i <path.etca>\n"
}
func (c *infoCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.inputPath, "i", "", "Input .etca path")
}

func (c *infoCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	data, err := os.ReadFile(c.inputPath)
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}

	header, metadata, err := container.Info(data)
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}

	fmt.Printf("dimensions: %dx%d\n", header.Width, header.Height)
	fmt.Printf("mode:       %v\n", header.Mode)
	fmt.Printf("version:    %d\n", header.Version)

	keys := make([]string, 0, len(metadata))
	for k := range metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("%-12s%s\n", k+":", metadata[k])
	}

	return subcommands.ExitSuccess
}
