package imageutil

import (
	"github.com/nfnt/resize"
)

// Interpolation specifies the interpolation method for resizing.
type Interpolation int

const (
	// InterpolationNearest uses nearest-neighbor point sampling.
	// Fastest, and the sampler's default: no averaging means no
	// blending artifacts across character cell boundaries.
	InterpolationNearest Interpolation = iota

	// InterpolationLinear uses bilinear interpolation.
	InterpolationLinear

	// InterpolationLanczos uses Lanczos3 resampling for
	// high-quality downscaling.
	InterpolationLanczos
)

// Resize resizes an RGBA image to exactly the specified dimensions
// using the given interpolation method. Aspect ratio is not preserved;
// the caller decides both dimensions.
func Resize(img *RGBAImage, width, height int, interp Interpolation) *RGBAImage {
	var fn resize.InterpolationFunction
	switch interp {
	case InterpolationNearest:
		fn = resize.NearestNeighbor
	case InterpolationLinear:
		fn = resize.Bilinear
	case InterpolationLanczos:
		fn = resize.Lanczos3
	default:
		fn = resize.NearestNeighbor
	}

	resized := resize.Resize(uint(width), uint(height), img.RGBA, fn)
	return RGBAImageFromImage(resized)
}
