package imageutil

import (
	"testing"
)

func TestResizeExactDimensions(t *testing.T) {
	img := CreateGradientImage(100, 50)

	for _, interp := range []Interpolation{
		InterpolationNearest, InterpolationLinear, InterpolationLanczos,
	} {
		resized := Resize(img, 37, 13, interp)
		if resized.Width() != 37 || resized.Height() != 13 {
			t.Errorf("interp %d: resized to %dx%d, want 37x13",
				interp, resized.Width(), resized.Height())
		}
	}
}

func TestResizeNearestPreservesSolidColor(t *testing.T) {
	c := RGB{R: 120, G: 30, B: 200}
	img := CreateSolidImage(64, 64, c)

	resized := Resize(img, 8, 4, InterpolationNearest)
	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			if resized.GetRGB(x, y) != c {
				t.Fatalf("pixel (%d,%d) = %v, want %v",
					x, y, resized.GetRGB(x, y), c)
			}
		}
	}
}

func TestResizeNearestDoesNotBlend(t *testing.T) {
	// Nearest-neighbor picks source pixels, so every output pixel of a
	// black/white checkerboard is exactly black or exactly white.
	img := CreateCheckerboardImage(64, 64, 8)

	resized := Resize(img, 16, 16, InterpolationNearest)
	black, white := RGB{}, RGB{R: 255, G: 255, B: 255}
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			got := resized.GetRGB(x, y)
			if got != black && got != white {
				t.Fatalf("pixel (%d,%d) = %v is a blend", x, y, got)
			}
		}
	}
}
