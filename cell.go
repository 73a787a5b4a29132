package img2glyph

// CharCell is the rendering decision for one block: the glyph and the two
// colors it is drawn with. Pixels covered by the glyph's ink take FG, the
// rest take BG.
type CharCell struct {
	FG   RGB
	BG   RGB
	Rune rune
}

// CellOptions select how a block is turned into a CharCell.
type CellOptions struct {
	// Teletext enables the extended sextant glyphs.
	Teletext bool
	// NoOptimization skips shape matching and always draws the lower half
	// block.
	NoOptimization bool
}

// FindCell computes the CharCell for a block. It depends only on the
// block's pixels and the options, so blocks can be evaluated in any order.
func FindCell(b *Block, opts CellOptions) CharCell {
	if opts.NoOptimization {
		return averageCell(b, lowerHalfPattern, LowerHalfBlock)
	}

	a := AnalyzeBlock(b)
	m := SelectGlyph(a.Mask, opts.Teletext)

	if a.Mode == DirectMode {
		fg, bg := a.ColorB, a.ColorA
		if m.Inverted {
			fg, bg = bg, fg
		}
		return CharCell{FG: fg, BG: bg, Rune: m.Rune}
	}

	// The threshold mask only picked the glyph; colors come from the
	// glyph's own pixel assignment so they agree with what is drawn.
	return averageCell(b, m.Pattern, m.Rune)
}

// averageCell averages the block's pixels under the pattern's ink into FG
// and the rest into BG, truncating per channel. A bucket without pixels is
// left black; the pattern then has no pixels of that polarity, so the
// color is never visible.
func averageCell(b *Block, pattern CoverageMask, r rune) CharCell {
	var fgSum, bgSum [3]int
	var fgCount, bgCount int

	bit := CoverageMask(1) << (blockPixels - 1)
	for _, c := range b {
		sum := &bgSum
		if pattern&bit != 0 {
			sum = &fgSum
			fgCount++
		} else {
			bgCount++
		}
		for i := 0; i < 3; i++ {
			sum[i] += c.channel(i)
		}
		bit >>= 1
	}

	cell := CharCell{Rune: r}
	if fgCount != 0 {
		cell.FG = RGB{
			R: clampByte(fgSum[0] / fgCount),
			G: clampByte(fgSum[1] / fgCount),
			B: clampByte(fgSum[2] / fgCount),
		}
	}
	if bgCount != 0 {
		cell.BG = RGB{
			R: clampByte(bgSum[0] / bgCount),
			G: clampByte(bgSum[1] / bgCount),
			B: clampByte(bgSum[2] / bgCount),
		}
	}
	return cell
}
