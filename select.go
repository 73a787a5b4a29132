package img2glyph

// Match is the result of a dictionary search.
type Match struct {
	Rune rune
	// Pattern is the dictionary pattern of the chosen glyph, never its
	// complement.
	Pattern CoverageMask
	// Inverted is set when the complement of Pattern matched the mask, so
	// the colors assigned to the mask bits must be swapped.
	Inverted bool
	// Distance is the number of bits where the mask and the matched
	// polarity disagree.
	Distance int
}

// SelectGlyph finds the glyph whose pattern, or its complement, has the
// smallest Hamming distance to mask. The standard set is searched unless
// extended is set. Ties keep the earliest entry, and for one entry the
// plain pattern is tried before the complement.
func SelectGlyph(mask CoverageMask, extended bool) Match {
	// Any dictionary entry beats the seed, which only survives an empty
	// dictionary.
	best := Match{
		Rune:     LowerHalfBlock,
		Pattern:  lowerHalfPattern,
		Distance: blockPixels + 1,
	}
	for _, g := range Glyphs(extended) {
		if d := g.Pattern.Distance(mask); d < best.Distance {
			best = Match{Rune: g.Rune, Pattern: g.Pattern, Distance: d}
		}
		if d := g.Pattern.Invert().Distance(mask); d < best.Distance {
			best = Match{Rune: g.Rune, Pattern: g.Pattern, Inverted: true, Distance: d}
		}
	}
	return best
}
