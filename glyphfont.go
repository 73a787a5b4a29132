package img2glyph

import (
	"fmt"
	"image"
	"os"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

// fontRasterSize is the point size glyphs are rasterized at before being
// reduced to a 4x8 mask. At 72 DPI one point is one pixel.
const fontRasterSize = 32

// FontMasks holds the 4x8 coverage of dictionary glyphs as drawn by a
// particular TrueType font.
type FontMasks struct {
	masks map[rune]CoverageMask
	name  string
}

// LoadFontMasks rasterizes every dictionary glyph the font defines.
// Glyphs missing from the font are left out.
func LoadFontMasks(path string) (*FontMasks, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font: %w", err)
	}
	ttf, err := freetype.ParseFont(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font %s: %w", path, err)
	}
	return NewFontMasks(ttf, path), nil
}

// NewFontMasks rasterizes the dictionary glyphs of an already parsed font.
func NewFontMasks(ttf *truetype.Font, name string) *FontMasks {
	face := truetype.NewFace(ttf, &truetype.Options{
		Size:    fontRasterSize,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	defer face.Close()

	fm := &FontMasks{
		masks: make(map[rune]CoverageMask),
		name:  name,
	}
	for _, g := range extendedGlyphs {
		if _, done := fm.masks[g.Rune]; done {
			continue
		}
		if m, ok := rasterizeMask(ttf, face, g.Rune); ok {
			fm.masks[g.Rune] = m
		}
	}
	return fm
}

// Name returns the path or name the masks were loaded from.
func (fm *FontMasks) Name() string {
	return fm.name
}

// Len returns the number of runes the font covers.
func (fm *FontMasks) Len() int {
	return len(fm.masks)
}

// Mask returns the font's coverage for r.
func (fm *FontMasks) Mask(r rune) (CoverageMask, bool) {
	m, ok := fm.masks[r]
	return m, ok
}

// rasterizeMask draws r into a cell one advance wide and one line
// (ascent plus descent) tall, then sets each mask bit whose sub-rectangle
// is at least half covered.
func rasterizeMask(ttf *truetype.Font, face font.Face, r rune) (CoverageMask, bool) {
	if ttf.Index(r) == 0 {
		return 0, false
	}
	advance, ok := face.GlyphAdvance(r)
	if !ok {
		return 0, false
	}
	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	width, height := advance.Ceil(), ascent+metrics.Descent.Ceil()
	if width < BlockWidth || height < BlockHeight {
		return 0, false
	}

	img := image.NewAlpha(image.Rect(0, 0, width, height))
	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(ttf)
	ctx.SetFontSize(fontRasterSize)
	ctx.SetClip(img.Bounds())
	ctx.SetDst(img)
	ctx.SetSrc(image.Opaque)
	ctx.SetHinting(font.HintingNone)
	if _, err := ctx.DrawString(string(r), freetype.Pt(0, ascent)); err != nil {
		return 0, false
	}

	var mask CoverageMask
	for y := 0; y < BlockHeight; y++ {
		y0, y1 := y*height/BlockHeight, (y+1)*height/BlockHeight
		for x := 0; x < BlockWidth; x++ {
			x0, x1 := x*width/BlockWidth, (x+1)*width/BlockWidth
			var sum, n int
			for py := y0; py < y1; py++ {
				for px := x0; px < x1; px++ {
					sum += int(img.AlphaAt(px, py).A)
					n++
				}
			}
			if n > 0 && sum >= n*128 {
				mask |= maskBit(x, y)
			}
		}
	}
	return mask, true
}
