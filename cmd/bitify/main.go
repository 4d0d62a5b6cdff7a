package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/frgmt0/bitify"
)

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: bitify [options] <image>

Converts an image to colorful ASCII art, prints it to the terminal,
and saves it as a PNG with a black background.

Density presets:
  low     -  6 chars | Fast, chunky 8-bit look, good for pixel art
  medium  - 10 chars | Balanced detail and performance
  high    - 69 chars | Fine detail, slower processing
  ultra   - 70 chars | Maximum detail, complex textures
  extreme - 94 chars | Ultra-fine detail, very slow

Options:
`)
	flag.PrintDefaults()
}

func main() {
	width := flag.Int("width", 80,
		"Output width in characters (default comes from the density preset)")
	densityName := flag.String("density", "medium",
		"ASCII density preset: low, medium, high, ultra, extreme")
	fontPath := flag.String("font", "",
		"Path to a TTF font used to build the glyph table for the PNG output")
	outputPath := flag.String("output", "",
		"Path for the PNG output (default: ~/Bitify/<name>_<Density>_ascii.png)")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
		os.Exit(1)
	}
	imagePath := flag.Arg(0)

	density, err := bitify.ParseDensity(*densityName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The preset's default width applies only when the user did not
	// pass -width at all; an explicit "-width 80" stays 80 for every
	// preset.
	widthSet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "width" {
			widthSet = true
		}
	})
	effectiveWidth := *width
	if !widthSet {
		effectiveWidth = density.DefaultWidth()
	}

	grid, err := bitify.ProcessImage(imagePath, effectiveWidth, density)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The terminal rendering is the primary deliverable; everything
	// after this point only warns on failure.
	fmt.Print(bitify.RenderToANSI(grid))

	var opts []bitify.RasterizerOption
	if *fontPath != "" {
		table, err := bitify.LoadGlyphTableFromTTF(*fontPath)
		if err != nil {
			fmt.Fprintf(os.Stderr,
				"Warning: falling back to built-in glyphs: %v\n", err)
		} else {
			opts = append(opts, bitify.WithGlyphTable(table))
		}
	}

	savePath := *outputPath
	if savePath == "" {
		savePath, err = bitify.OutputPath(imagePath, density)
		if err != nil {
			fmt.Fprintf(os.Stderr,
				"Warning: failed to save ASCII art: %v\n", err)
			return
		}
	}

	if err := bitify.SaveGridToPNG(grid, savePath, opts...); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to save ASCII art: %v\n", err)
		return
	}

	fmt.Printf("\nASCII art saved to %s (density: %s)\n", savePath, density)
}
