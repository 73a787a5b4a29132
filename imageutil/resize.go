package imageutil

import (
	"image"

	"golang.org/x/image/draw"
)

// Interpolation specifies the interpolation method for resizing.
type Interpolation int

const (
	// InterpolationArea uses Catmull-Rom; it is the default for both
	// shrinking and enlarging.
	InterpolationArea Interpolation = iota

	// InterpolationLinear uses bilinear interpolation.
	InterpolationLinear

	// InterpolationNearest uses nearest-neighbor interpolation.
	// Fastest but lowest quality.
	InterpolationNearest
)

func (interp Interpolation) scaler() draw.Scaler {
	switch interp {
	case InterpolationLinear:
		return draw.BiLinear
	case InterpolationNearest:
		return draw.NearestNeighbor
	default:
		return draw.CatmullRom
	}
}

// Resize resizes an RGBA image to the specified dimensions using the
// given interpolation method.
func Resize(img *RGBAImage, width, height int, interp Interpolation) *RGBAImage {
	dst := NewRGBAImage(width, height)
	dstRect := image.Rect(0, 0, width, height)
	interp.scaler().Scale(dst.RGBA, dstRect, img.RGBA, img.Bounds(), draw.Src, nil)
	return dst
}

// FitWithin returns the largest size with the aspect ratio of width x
// height that fits inside maxWidth x maxHeight. Both dimensions use the
// same scale factor and are truncated toward zero.
func FitWithin(width, height, maxWidth, maxHeight int) (int, int) {
	if width <= 0 || height <= 0 {
		return 0, 0
	}
	scale := float64(maxWidth) / float64(width)
	if s := float64(maxHeight) / float64(height); s < scale {
		scale = s
	}
	return int(float64(width) * scale), int(float64(height) * scale)
}

// ShrinkToFit scales img down into maxWidth x maxHeight keeping its aspect
// ratio. Images that already fit are returned unchanged.
func ShrinkToFit(img *RGBAImage, maxWidth, maxHeight int, interp Interpolation) *RGBAImage {
	if img.Width() <= maxWidth && img.Height() <= maxHeight {
		return img
	}
	w, h := FitWithin(img.Width(), img.Height(), maxWidth, maxHeight)
	return Resize(img, w, h, interp)
}
