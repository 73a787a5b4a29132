package img2glyph

import (
	"image"
	"image/draw"

	"github.com/wbrown/img2glyph/imageutil"
)

// PreviewOptions control how cells are painted into an image.
type PreviewOptions struct {
	// Scale multiplies the 4x8 pixel size of each cell.
	Scale int
	// ColorMode passes colors through the terminal palette so the preview
	// shows what the terminal shows.
	ColorMode ColorMode
	// Font, when set, paints glyphs with the shapes a real font gives them
	// instead of the dictionary patterns.
	Font *FontMasks
}

// RenderCellsToImage paints each cell as a 4x8 tile of its foreground and
// background colors.
func RenderCellsToImage(cells [][]CharCell, opts PreviewOptions) *image.RGBA {
	scale := opts.Scale
	if scale < 1 {
		scale = 1
	}
	rows := len(cells)
	if rows == 0 {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}
	cols := len(cells[0])
	cw, ch := BlockWidth*scale, BlockHeight*scale
	img := image.NewRGBA(image.Rect(0, 0, cols*cw, rows*ch))

	for y, row := range cells {
		for x, cell := range row {
			drawCell(img, x*cw, y*ch, scale, cell, opts)
		}
	}
	return img
}

// SaveCellsToPNG writes the preview of cells to a PNG file.
func SaveCellsToPNG(cells [][]CharCell, path string, opts PreviewOptions) error {
	return imageutil.SavePNG(RenderCellsToImage(cells, opts), path)
}

// cellPattern returns the ink of the cell's glyph. Runes the font or
// dictionary does not know are drawn as background only.
func cellPattern(r rune, fm *FontMasks) CoverageMask {
	if fm != nil {
		if m, ok := fm.Mask(r); ok {
			return m
		}
	}
	if g, ok := LookupGlyph(r); ok {
		return g.Pattern
	}
	return 0
}

func drawCell(img *image.RGBA, x0, y0, scale int, cell CharCell, opts PreviewOptions) {
	pattern := cellPattern(cell.Rune, opts.Font)
	fg := Quantize(cell.FG, opts.ColorMode).rgba()
	bg := Quantize(cell.BG, opts.ColorMode).rgba()

	for y := 0; y < BlockHeight; y++ {
		for x := 0; x < BlockWidth; x++ {
			c := bg
			if pattern.Has(x, y) {
				c = fg
			}
			rect := image.Rect(x0+x*scale, y0+y*scale, x0+(x+1)*scale, y0+(y+1)*scale)
			draw.Draw(img, rect, &image.Uniform{C: c}, image.Point{}, draw.Src)
		}
	}
}

