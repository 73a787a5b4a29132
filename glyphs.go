package img2glyph

// Glyph pairs a 4x8 shape with the character that draws it. Bits set in
// Pattern are the glyph's ink and are painted with the foreground color.
type Glyph struct {
	Pattern CoverageMask
	Rune    rune
}

const (
	// LowerHalfBlock is the glyph used when shape matching is disabled and
	// the starting point of every dictionary search.
	LowerHalfBlock = '▄'

	lowerHalfPattern CoverageMask = 0x0000ffff
)

var (
	// standardGlyphs covers block elements, a subset of the box drawing
	// characters and a few technical symbols. Shapes that are the exact
	// complement of an entry (upper half, full block, three-quadrant
	// blocks) are left out since inversion already reaches them.
	standardGlyphs = []Glyph{
		{0x00000000, '\u00a0'}, // no-break space

		// Block elements
		{0x0000000f, '▁'}, // lower 1/8
		{0x000000ff, '▂'}, // lower 1/4
		{0x00000fff, '▃'},
		{0x0000ffff, '▄'}, // lower 1/2
		{0x000fffff, '▅'},
		{0x00ffffff, '▆'}, // lower 3/4
		{0x0fffffff, '▇'},
		{0xeeeeeeee, '▊'}, // left 3/4
		{0xcccccccc, '▌'}, // left 1/2
		{0x88888888, '▎'}, // left 1/4
		{0x0000cccc, '▖'}, // quadrant lower left
		{0x00003333, '▗'}, // quadrant lower right
		{0xcccc0000, '▘'}, // quadrant upper left
		{0xcccc3333, '▚'}, // diagonal
		{0x33330000, '▝'}, // quadrant upper right

		// Box drawing, heavy and light singles only
		{0x000ff000, '━'},
		{0x66666666, '┃'},
		{0x00077666, '┏'},
		{0x000ee666, '┓'},
		{0x66677000, '┗'},
		{0x666ee000, '┛'},
		{0x66677666, '┣'},
		{0x666ee666, '┫'},
		{0x000ff666, '┳'},
		{0x666ff000, '┻'},
		{0x666ff666, '╋'},
		{0x000cc000, '╸'},
		{0x00066000, '╹'},
		{0x00033000, '╺'},
		{0x00066000, '╻'},
		{0x06600660, '╏'},
		{0x000f0000, '─'},
		{0x0000f000, '─'},
		{0x44444444, '│'},
		{0x22222222, '│'},
		{0x000e0000, '╴'},
		{0x0000e000, '╴'},
		{0x44440000, '╵'},
		{0x22220000, '╵'},
		{0x00030000, '╶'},
		{0x00003000, '╶'},
		{0x00004444, '╷'},
		{0x00002222, '╷'},

		// Misc technical
		{0x44444444, '⎢'}, // [ extension
		{0x22222222, '⎥'}, // ] extension
		{0x0f000000, '⎺'}, // scan line 1
		{0x00f00000, '⎻'}, // scan line 3
		{0x00000f00, '⎼'}, // scan line 7
		{0x000000f0, '⎽'}, // scan line 9

		// Geometric shapes
		{0x00066000, '▪'}, // black small square
	}

	// teletextGlyphs are the 2x3 sextants from Symbols for Legacy
	// Computing, drawn on the 4x8 cell with 3-2-3 row heights. Sextants
	// that equal a half block or its complement are absent from Unicode.
	teletextGlyphs = []Glyph{
		{0xccc00000, '\U0001fb00'},
		{0x33300000, '\U0001fb01'},
		{0xfff00000, '\U0001fb02'},
		{0x000cc000, '\U0001fb03'},
		{0xccccc000, '\U0001fb04'},
		{0x333cc000, '\U0001fb05'},
		{0xfffcc000, '\U0001fb06'},
		{0x00033000, '\U0001fb07'},
		{0xccc33000, '\U0001fb08'},
		{0x33333000, '\U0001fb09'},
		{0xfff33000, '\U0001fb0a'},
		{0x000ff000, '\U0001fb0b'},
		{0xcccff000, '\U0001fb0c'},
		{0x333ff000, '\U0001fb0d'},
		{0xfffff000, '\U0001fb0e'},
		{0x00000ccc, '\U0001fb0f'},
		{0xccc00ccc, '\U0001fb10'},
		{0x33300ccc, '\U0001fb11'},
		{0xfff00ccc, '\U0001fb12'},
		{0x000ccccc, '\U0001fb13'},
		{0x333ccccc, '\U0001fb14'},
		{0xfffccccc, '\U0001fb15'},
		{0x00033ccc, '\U0001fb16'},
		{0xccc33ccc, '\U0001fb17'},
		{0x33333ccc, '\U0001fb18'},
		{0xfff33ccc, '\U0001fb19'},
		{0x000ffccc, '\U0001fb1a'},
		{0xcccffccc, '\U0001fb1b'},
		{0x333ffccc, '\U0001fb1c'},
		{0xfffffccc, '\U0001fb1d'},
		{0x00000333, '\U0001fb1e'},
		{0xccc00333, '\U0001fb1f'},
		{0x33300333, '\U0001fb20'},
		{0xfff00333, '\U0001fb21'},
		{0x000cc333, '\U0001fb22'},
		{0xccccc333, '\U0001fb23'},
		{0x333cc333, '\U0001fb24'},
		{0xfffcc333, '\U0001fb25'},
		{0x00033333, '\U0001fb26'},
		{0xccc33333, '\U0001fb27'},
		{0xfff33333, '\U0001fb28'},
		{0x000ff333, '\U0001fb29'},
		{0xcccff333, '\U0001fb2a'},
		{0x333ff333, '\U0001fb2b'},
		{0xfffff333, '\U0001fb2c'},
		{0x00000fff, '\U0001fb2d'},
		{0xccc00fff, '\U0001fb2e'},
		{0x33300fff, '\U0001fb2f'},
		{0xfff00fff, '\U0001fb30'},
		{0x000ccfff, '\U0001fb31'},
		{0xcccccfff, '\U0001fb32'},
		{0x333ccfff, '\U0001fb33'},
		{0xfffccfff, '\U0001fb34'},
		{0x00033fff, '\U0001fb35'},
		{0xccc33fff, '\U0001fb36'},
		{0x33333fff, '\U0001fb37'},
		{0xfff33fff, '\U0001fb38'},
		{0x000fffff, '\U0001fb39'},
		{0xcccfffff, '\U0001fb3a'},
		{0x333fffff, '\U0001fb3b'},
	}

	extendedGlyphs = append(
		append(make([]Glyph, 0, len(standardGlyphs)+len(teletextGlyphs)),
			standardGlyphs...),
		teletextGlyphs...)
)

// Glyphs returns the active dictionary in search order. With extended
// set the teletext sextants follow the standard set. The returned slice
// is shared and must not be modified.
func Glyphs(extended bool) []Glyph {
	if extended {
		return extendedGlyphs
	}
	return standardGlyphs
}

// LookupGlyph returns the first dictionary entry drawn with r.
func LookupGlyph(r rune) (Glyph, bool) {
	for _, g := range extendedGlyphs {
		if g.Rune == r {
			return g, true
		}
	}
	return Glyph{}, false
}

// IsTeletext reports whether r belongs to the extended sextant set.
func IsTeletext(r rune) bool {
	return r >= '\U0001fb00' && r <= '\U0001fb3b'
}
