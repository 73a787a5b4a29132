package img2glyph

import (
	"math/bits"
	"strings"
)

const (
	// BlockWidth and BlockHeight define the pixel cell mapped to one
	// terminal character.
	BlockWidth  = 4
	BlockHeight = 8

	blockPixels = BlockWidth * BlockHeight
)

// CoverageMask assigns each of the 32 pixels of a block to the foreground
// (1) or background (0). Pixels are scanned row-major and pixel 0, the
// top-left one, is the most significant bit. Each hex digit of a mask is
// therefore one 4-pixel row.
type CoverageMask uint32

// maskBit returns the mask bit for pixel (x, y) of a block.
func maskBit(x, y int) CoverageMask {
	return 1 << (blockPixels - 1 - (y*BlockWidth + x))
}

// Has reports whether pixel (x, y) is in the foreground.
func (m CoverageMask) Has(x, y int) bool {
	if x < 0 || x >= BlockWidth || y < 0 || y >= BlockHeight {
		return false
	}
	return m&maskBit(x, y) != 0
}

// Count returns the number of foreground pixels.
func (m CoverageMask) Count() int {
	return bits.OnesCount32(uint32(m))
}

// Invert returns the bitwise complement of the mask.
func (m CoverageMask) Invert() CoverageMask {
	return ^m
}

// Distance is the Hamming distance between two masks.
func (m CoverageMask) Distance(other CoverageMask) int {
	return bits.OnesCount32(uint32(m ^ other))
}

// String draws the mask as eight rows of '#' and '.'.
func (m CoverageMask) String() string {
	var sb strings.Builder
	for y := 0; y < BlockHeight; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < BlockWidth; x++ {
			if m.Has(x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
