package img2glyph

import "testing"

func TestFindCellFlat(t *testing.T) {
	c := RGB{10, 20, 30}
	b := blockOf(func(int) RGB { return c })
	cell := FindCell(&b, CellOptions{})
	if cell.FG != c || cell.BG != c {
		t.Errorf("Expected fg == bg == %v, got %v/%v", c, cell.FG, cell.BG)
	}
	if cell.Rune != '\u00a0' {
		t.Errorf("Expected no-break space, got %U", cell.Rune)
	}
}

func TestFindCellHalves(t *testing.T) {
	b := halvesBlock(black, white)
	cell := FindCell(&b, CellOptions{})
	want := CharCell{FG: black, BG: white, Rune: '▌'}
	if cell != want {
		t.Errorf("Expected %+v, got %+v", want, cell)
	}
}

func TestFindCellCheckerboard(t *testing.T) {
	// White upper-left and lower-right quadrants on black.
	b := quadrantBlock(white, black)
	cell := FindCell(&b, CellOptions{})
	want := CharCell{FG: white, BG: black, Rune: '▚'}
	if cell != want {
		t.Errorf("Expected %+v, got %+v", want, cell)
	}
	assertCellReproduces(t, &b, cell)
}

// assertCellReproduces checks that drawing cell gives back block b
// exactly.
func assertCellReproduces(t *testing.T, b *Block, cell CharCell) {
	t.Helper()
	g, ok := LookupGlyph(cell.Rune)
	if !ok {
		t.Fatalf("Rune %U is not in the dictionary", cell.Rune)
	}
	for y := 0; y < BlockHeight; y++ {
		for x := 0; x < BlockWidth; x++ {
			want := cell.BG
			if g.Pattern.Has(x, y) {
				want = cell.FG
			}
			if b.At(x, y) != want {
				t.Errorf("Pixel (%d,%d): block %v, cell draws %v", x, y, b.At(x, y), want)
			}
		}
	}
}

func TestFindCellNoOptimization(t *testing.T) {
	red, blue := RGB{255, 0, 0}, RGB{0, 0, 255}
	b := blockOf(func(i int) RGB {
		if i < 16 {
			return red
		}
		return blue
	})
	cell := FindCell(&b, CellOptions{NoOptimization: true})
	want := CharCell{FG: blue, BG: red, Rune: LowerHalfBlock}
	if cell != want {
		t.Errorf("Expected %+v, got %+v", want, cell)
	}

	// Shape matching is skipped even when another glyph would fit better.
	b = halvesBlock(black, white)
	cell = FindCell(&b, CellOptions{NoOptimization: true})
	gray := RGB{127, 127, 127}
	if cell.Rune != LowerHalfBlock || cell.FG != gray || cell.BG != gray {
		t.Errorf("Expected gray half blocks, got %+v", cell)
	}
}

func TestFindCellTeletext(t *testing.T) {
	// Upper-left sextant drawn in white on black.
	b := blockOf(func(i int) RGB {
		if CoverageMask(0xccc00000)&(1<<(31-i)) != 0 {
			return white
		}
		return black
	})

	std := FindCell(&b, CellOptions{})
	if IsTeletext(std.Rune) {
		t.Errorf("Standard set produced sextant %U", std.Rune)
	}

	ext := FindCell(&b, CellOptions{Teletext: true})
	want := CharCell{FG: white, BG: black, Rune: '\U0001fb00'}
	if ext != want {
		t.Errorf("Expected %+v, got %+v", want, ext)
	}
	assertCellReproduces(t, &b, ext)
}

// In split mode the colors are averaged under the matched glyph. When that
// glyph is the empty space its ink bucket has no pixels: FG stays black
// and is never drawn.
func TestFindCellSplitEmptyBucket(t *testing.T) {
	b := blockOf(func(i int) RGB {
		if i == 31 {
			return RGB{200, 0, 0}
		}
		return RGB{uint8(i), 0, 0}
	})
	a := AnalyzeBlock(&b)
	if a.Mode != SplitMode || a.Mask != 0x00000001 {
		t.Fatalf("Expected split mode with mask 00000001, got %v %08x", a.Mode, a.Mask)
	}

	cell := FindCell(&b, CellOptions{})
	if cell.Rune != '\u00a0' {
		t.Fatalf("Expected no-break space, got %U", cell.Rune)
	}
	if cell.FG != (RGB{}) {
		t.Errorf("Empty ink bucket should leave FG black, got %v", cell.FG)
	}
	// (0+1+...+30+200)/32 = 665/32, truncated. Averaging by the threshold
	// mask instead would give 465/31 = 15.
	if cell.BG != (RGB{20, 0, 0}) {
		t.Errorf("Expected BG #140000, got %v", cell.BG)
	}
}

func TestFindCellSplitAveragesMatchedGlyph(t *testing.T) {
	b := blockOf(func(i int) RGB { return RGB{uint8(i * 8), 0, 0} })
	cell := FindCell(&b, CellOptions{})
	if cell.Rune != LowerHalfBlock {
		t.Fatalf("Expected lower half block, got %U", cell.Rune)
	}
	// Upper pixels 0..15 average 60, lower 16..31 average 188.
	if cell.BG != (RGB{60, 0, 0}) || cell.FG != (RGB{188, 0, 0}) {
		t.Errorf("Expected BG #3c0000 FG #bc0000, got %v %v", cell.BG, cell.FG)
	}
}

func TestAverageCellTruncates(t *testing.T) {
	b := blockOf(func(i int) RGB {
		if i%2 == 0 {
			return RGB{1, 2, 3}
		}
		return RGB{2, 3, 4}
	})
	cell := averageCell(&b, 0, '\u00a0')
	if cell.BG != (RGB{1, 2, 3}) {
		t.Errorf("Expected truncated average #010203, got %v", cell.BG)
	}
	if cell.FG != (RGB{}) {
		t.Errorf("Expected black FG for empty bucket, got %v", cell.FG)
	}
}
