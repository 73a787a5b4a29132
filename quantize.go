package img2glyph

import (
	"fmt"
	"math"
)

// ColorMode selects the terminal color space escapes are written in.
type ColorMode int

const (
	// TrueColor writes exact 24-bit colors.
	TrueColor ColorMode = iota
	// Color256 maps colors onto the xterm 256-color palette.
	Color256
)

func (m ColorMode) String() string {
	switch m {
	case TrueColor:
		return "truecolor"
	case Color256:
		return "256"
	}
	return fmt.Sprintf("ColorMode(%d)", int(m))
}

var (
	// cubeSteps are the channel levels of the 6x6x6 color cube
	// (palette indices 16-231).
	cubeSteps = [6]int{0x00, 0x5f, 0x87, 0xaf, 0xd7, 0xff}

	// graySteps are the levels of the grayscale ramp (indices 232-255).
	graySteps = [24]int{
		0x08, 0x12, 0x1c, 0x26, 0x30, 0x3a, 0x44, 0x4e, 0x58, 0x62, 0x6c, 0x76,
		0x80, 0x8a, 0x94, 0x9e, 0xa8, 0xb2, 0xbc, 0xc6, 0xd0, 0xda, 0xe4, 0xee,
	}
)

const (
	cubeBase = 16
	grayBase = 232
)

// nearestStep returns the index of the step closest to value. Ties keep
// the lower index.
func nearestStep(value int, steps []int) int {
	best, bestDiff := 0, abs(steps[0]-value)
	for i := 1; i < len(steps); i++ {
		if d := abs(steps[i] - value); d < bestDiff {
			best, bestDiff = i, d
		}
	}
	return best
}

// luma is round(0.2989R + 0.5870G + 0.1140B) computed in single
// precision.
func luma(c RGB) int {
	y := float32(float32(c.R)*0.2989) +
		float32(float32(c.G)*0.5870) +
		float32(float32(c.B)*0.1140)
	return int(math.Round(float64(y)))
}

// weightedError is the perceptually weighted squared distance between a
// color and a candidate given per channel. Each weight multiplies the
// squared difference and every product is rounded before the sum, so
// colors where cube and ramp tie resolve the same way on every platform.
func weightedError(c RGB, r, g, b int) float64 {
	dr := float64(r - int(c.R))
	dg := float64(g - int(c.G))
	db := float64(b - int(c.B))
	return float64(0.3*(dr*dr)) + float64(0.59*(dg*dg)) + float64(0.11*(db*db))
}

// Palette256 returns the xterm palette index that best represents c: the
// color cube entry or the grayscale ramp entry, whichever has the lower
// weighted error. The cube needs a strictly lower error, so equal errors
// pick the ramp. The result is always in [16,255].
func Palette256(c RGB) uint8 {
	ri := nearestStep(int(c.R), cubeSteps[:])
	gi := nearestStep(int(c.G), cubeSteps[:])
	bi := nearestStep(int(c.B), cubeSteps[:])
	gray := nearestStep(luma(c), graySteps[:])

	cubeErr := weightedError(c, cubeSteps[ri], cubeSteps[gi], cubeSteps[bi])
	g := graySteps[gray]
	grayErr := weightedError(c, g, g, g)

	if cubeErr < grayErr {
		return uint8(cubeBase + 36*ri + 6*gi + bi)
	}
	return uint8(grayBase + gray)
}

// Palette256RGB returns the color a terminal shows for palette index i.
// Indices below 16 are the terminal's configurable base colors and map to
// the conventional VGA values.
func Palette256RGB(i uint8) RGB {
	switch {
	case i >= grayBase:
		v := uint8(graySteps[i-grayBase])
		return RGB{v, v, v}
	case i >= cubeBase:
		n := int(i) - cubeBase
		return RGB{
			R: uint8(cubeSteps[n/36]),
			G: uint8(cubeSteps[n/6%6]),
			B: uint8(cubeSteps[n%6]),
		}
	}
	return vgaColors[i]
}

var vgaColors = [16]RGB{
	{0x00, 0x00, 0x00}, {0xaa, 0x00, 0x00}, {0x00, 0xaa, 0x00}, {0xaa, 0x55, 0x00},
	{0x00, 0x00, 0xaa}, {0xaa, 0x00, 0xaa}, {0x00, 0xaa, 0xaa}, {0xaa, 0xaa, 0xaa},
	{0x55, 0x55, 0x55}, {0xff, 0x55, 0x55}, {0x55, 0xff, 0x55}, {0xff, 0xff, 0x55},
	{0x55, 0x55, 0xff}, {0xff, 0x55, 0xff}, {0x55, 0xff, 0xff}, {0xff, 0xff, 0xff},
}

// Quantize returns the color actually displayed for c in the given mode.
func Quantize(c RGB, mode ColorMode) RGB {
	if mode == Color256 {
		return Palette256RGB(Palette256(c))
	}
	return c
}

// ColorEscape returns the SGR sequence that sets c as the foreground, or
// the background when background is set.
func ColorEscape(c RGB, mode ColorMode, background bool) string {
	selector := sgrForeground
	if background {
		selector = sgrBackground
	}
	if mode == Color256 {
		return fmt.Sprintf("%s[%d;5;%dm", ESC, selector, Palette256(c))
	}
	return fmt.Sprintf("%s[%d;2;%d;%d;%dm", ESC, selector, c.R, c.G, c.B)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
