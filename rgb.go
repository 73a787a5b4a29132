package img2glyph

import (
	"fmt"
	"image/color"

	"github.com/wbrown/img2glyph/imageutil"
)

// RGB represents a color in the RGB color space with 8-bit channels,
// where each channel ranges from 0 to 255.
type RGB struct {
	R, G, B uint8
}

// toUint32 packs an RGB color into 0xRRGGBB.
func (c RGB) toUint32() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// rgbFromImageutil converts the imageutil pixel type to RGB.
func rgbFromImageutil(c imageutil.RGB) RGB {
	return RGB{R: c.R, G: c.G, B: c.B}
}

// rgba converts c to an opaque color.RGBA for drawing.
func (c RGB) rgba() color.RGBA {
	return imageutil.RGB{R: c.R, G: c.G, B: c.B}.ToColor()
}

// channel returns the value of channel i (0 red, 1 green, 2 blue).
func (c RGB) channel(i int) int {
	switch i {
	case 0:
		return int(c.R)
	case 1:
		return int(c.G)
	default:
		return int(c.B)
	}
}

// distanceSquared is the squared Euclidean distance between two colors
// in RGB space.
func (c RGB) distanceSquared(other RGB) int {
	dr := int(c.R) - int(other.R)
	dg := int(c.G) - int(other.G)
	db := int(c.B) - int(other.B)
	return dr*dr + dg*dg + db*db
}

func (c RGB) String() string {
	return fmt.Sprintf("#%06x", c.toUint32())
}

// clampByte clamps an integer channel value to [0,255].
func clampByte(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
