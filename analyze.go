package img2glyph

import (
	"github.com/wbrown/img2glyph/imageutil"
)

// Block holds the 32 pixels of one 4x8 cell in row-major order.
type Block [blockPixels]RGB

// BlockAt reads the 4x8 cell whose top-left pixel is (x0, y0), relative to
// the image bounds. The caller guarantees the cell lies inside the image.
func BlockAt(img *imageutil.RGBAImage, x0, y0 int) Block {
	var b Block
	origin := img.Bounds().Min
	for y := 0; y < BlockHeight; y++ {
		for x := 0; x < BlockWidth; x++ {
			b[y*BlockWidth+x] = rgbFromImageutil(
				img.GetRGB(origin.X+x0+x, origin.Y+y0+y))
		}
	}
	return b
}

// At returns pixel (x, y) of the block.
func (b *Block) At(x, y int) RGB {
	return b[y*BlockWidth+x]
}

// AnalysisMode tells how a block's colors were modelled.
type AnalysisMode int

const (
	// DirectMode models the block as its two most frequent colors.
	DirectMode AnalysisMode = iota
	// SplitMode thresholds the block on its widest channel.
	SplitMode
)

func (m AnalysisMode) String() string {
	if m == DirectMode {
		return "direct"
	}
	return "split"
}

// Analysis is the result of examining one block before glyph matching.
//
// In DirectMode ColorA is the most frequent color and ColorB the second
// most frequent (or ColorA again when the block is a single color); a mask
// bit is set when the pixel is strictly nearer to ColorB. In SplitMode the
// colors are left zero and are derived later from the matched glyph.
type Analysis struct {
	Mode   AnalysisMode
	Mask   CoverageMask
	ColorA RGB
	ColorB RGB
	// Count1 is the frequency of ColorA, Count2 the joint frequency of
	// ColorA and ColorB.
	Count1 int
	Count2 int
}

// AnalyzeBlock decides between direct and split modelling and derives the
// coverage mask. Direct mode is chosen when the two most frequent colors
// cover more than half of the block.
func AnalyzeBlock(b *Block) Analysis {
	var lo, hi [3]int
	lo = [3]int{255, 255, 255}
	counts := make(map[RGB]int, blockPixels)

	for _, c := range b {
		for i := 0; i < 3; i++ {
			v := c.channel(i)
			if v < lo[i] {
				lo[i] = v
			}
			if v > hi[i] {
				hi[i] = v
			}
		}
		counts[c]++
	}

	first, second, hasSecond := topTwoColors(counts)
	a := Analysis{
		ColorA: first,
		ColorB: first,
		Count1: counts[first],
		Count2: counts[first],
	}
	if hasSecond {
		a.ColorB = second
		a.Count2 += counts[second]
	}

	if a.Count2 > blockPixels/2 {
		a.Mode = DirectMode
		a.Mask = directMask(b, a.ColorA, a.ColorB)
		return a
	}

	a.Mode = SplitMode
	a.ColorA, a.ColorB = RGB{}, RGB{}
	a.Mask = splitMask(b, lo, hi)
	return a
}

// topTwoColors ranks colors by frequency, descending. Among equal
// frequencies the larger 0xRRGGBB value ranks first.
func topTwoColors(counts map[RGB]int) (first, second RGB, hasSecond bool) {
	better := func(c RGB, n int, than RGB, thanN int) bool {
		if n != thanN {
			return n > thanN
		}
		return c.toUint32() > than.toUint32()
	}

	firstN, secondN := -1, -1
	for c, n := range counts {
		switch {
		case firstN < 0 || better(c, n, first, firstN):
			second, secondN = first, firstN
			first, firstN = c, n
		case secondN < 0 || better(c, n, second, secondN):
			second, secondN = c, n
		}
	}
	return first, second, secondN >= 0
}

// directMask assigns each pixel to the nearer of the two dominant colors.
// Equidistant pixels stay with colorA.
func directMask(b *Block, colorA, colorB RGB) CoverageMask {
	var mask CoverageMask
	for _, c := range b {
		mask <<= 1
		if c.distanceSquared(colorA) > c.distanceSquared(colorB) {
			mask |= 1
		}
	}
	return mask
}

// splitMask thresholds every pixel at the middle of the channel with the
// widest range. The first channel wins ties.
func splitMask(b *Block, lo, hi [3]int) CoverageMask {
	splitIndex, bestRange := 0, 0
	for i := 0; i < 3; i++ {
		if hi[i]-lo[i] > bestRange {
			bestRange = hi[i] - lo[i]
			splitIndex = i
		}
	}
	threshold := lo[splitIndex] + bestRange/2

	var mask CoverageMask
	for _, c := range b {
		mask <<= 1
		if c.channel(splitIndex) > threshold {
			mask |= 1
		}
	}
	return mask
}
