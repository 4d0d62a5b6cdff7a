// Package bitify converts raster images into colorized ASCII art,
// rendered both as true-color terminal text and as a PNG where each
// character is painted from a fixed 8x12 glyph bitmap onto a black
// background.
package bitify

import (
	"math"

	"github.com/frgmt0/bitify/imageutil"
)

// Cell is one position in the character grid: the selected character
// and the sampled pixel's original color.
type Cell struct {
	Char  rune
	Color imageutil.RGB
}

// Grid is a row-major rectangular grid of cells, scanned top-to-bottom
// and left-to-right. It is produced once by Sample and read without
// mutation by both the terminal renderer and the rasterizer.
type Grid [][]Cell

// Height returns the number of rows in the grid.
func (g Grid) Height() int { return len(g) }

// Width returns the number of columns in the grid.
func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// DeriveHeight returns the character grid height for a source image of
// srcWidth x srcHeight sampled at targetWidth characters. The 0.5
// factor compensates for terminal cells being roughly twice as tall as
// they are wide, so the art keeps the source's apparent aspect ratio.
func DeriveHeight(srcWidth, srcHeight, targetWidth int) int {
	aspectRatio := float64(srcHeight) / float64(srcWidth)
	return int(math.Round(float64(targetWidth) * aspectRatio * 0.5))
}

// Sample downsamples an image to a targetWidth-character grid and
// quantizes every sampled pixel to a (character, color) cell using the
// density preset's ramp. Resampling is nearest-neighbor point sampling:
// it may alias on sharp detail, but it never blends colors across
// character cell boundaries.
//
// It returns a ValidationError when targetWidth is not positive or the
// derived height rounds to zero.
func Sample(img *imageutil.RGBAImage, targetWidth int, density Density) (Grid, error) {
	if targetWidth <= 0 {
		return nil, &ValidationError{Reason: "target width must be positive"}
	}
	if img.Width() < 1 || img.Height() < 1 {
		return nil, &ValidationError{Reason: "source image is empty"}
	}

	targetHeight := DeriveHeight(img.Width(), img.Height(), targetWidth)
	if targetHeight < 1 {
		return nil, &ValidationError{
			Reason: "derived height is zero, try a larger width"}
	}

	resized := imageutil.Resize(
		img, targetWidth, targetHeight, imageutil.InterpolationNearest)
	ramp := density.Ramp()

	grid := make(Grid, targetHeight)
	for y := 0; y < targetHeight; y++ {
		row := make([]Cell, targetWidth)
		for x := 0; x < targetWidth; x++ {
			color := resized.GetRGB(x, y)
			row[x] = Cell{
				Char:  rampChar(ramp, color.Luminance()),
				Color: color,
			}
		}
		grid[y] = row
	}

	return grid, nil
}

// rampChar quantizes a brightness value in [0, 1] into the ramp by
// linear binning. The index is clamped so that out-of-range brightness
// can never index outside the ramp.
func rampChar(ramp []rune, brightness float64) rune {
	index := int(math.Floor(brightness * float64(len(ramp)-1)))
	if index < 0 {
		index = 0
	}
	if index > len(ramp)-1 {
		index = len(ramp) - 1
	}
	return ramp[index]
}

// ProcessImage loads the image at path and samples it into a grid.
// Open and decode failures are reported as a DecodeError.
func ProcessImage(path string, targetWidth int, density Density) (Grid, error) {
	img, err := imageutil.LoadImage(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	return Sample(img, targetWidth, density)
}
