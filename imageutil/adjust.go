package imageutil

import (
	"image"

	"github.com/disintegration/imaging"
)

// Adjustments are tonal corrections applied before rendering. The zero
// value leaves the image untouched.
type Adjustments struct {
	// Gamma below 1 darkens and above 1 lightens. 0 and 1 mean unchanged.
	Gamma float64
	// Brightness and Contrast are percentages in [-100, 100].
	Brightness float64
	Contrast   float64
	// Sharpen is the sigma of the unsharp kernel; 0 disables it.
	Sharpen float64
	Invert  bool
}

// IsZero reports whether a leaves images unchanged.
func (a Adjustments) IsZero() bool {
	return (a.Gamma == 0 || a.Gamma == 1) &&
		a.Brightness == 0 && a.Contrast == 0 &&
		a.Sharpen <= 0 && !a.Invert
}

// Adjust applies a to img in a fixed order: gamma, brightness, contrast,
// sharpen, invert. The source image is never modified.
func Adjust(img *RGBAImage, a Adjustments) *RGBAImage {
	if a.IsZero() {
		return img
	}

	var out image.Image = img.RGBA
	if a.Gamma != 0 && a.Gamma != 1 {
		out = imaging.AdjustGamma(out, a.Gamma)
	}
	if a.Brightness != 0 {
		out = imaging.AdjustBrightness(out, a.Brightness)
	}
	if a.Contrast != 0 {
		out = imaging.AdjustContrast(out, a.Contrast)
	}
	if a.Sharpen > 0 {
		out = imaging.Sharpen(out, a.Sharpen)
	}
	if a.Invert {
		out = imaging.Invert(out)
	}
	return RGBAImageFromImage(out)
}
