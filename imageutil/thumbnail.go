package imageutil

import (
	"image"
	"image/draw"

	"github.com/nfnt/resize"
)

// SheetGap is the horizontal gap in pixels between thumbnails on a sheet.
// It is two character cells wide.
const SheetGap = 8

// Thumbnail scales img down to fit maxWidth x maxHeight keeping its aspect
// ratio. Images that already fit are returned unchanged.
func Thumbnail(img *RGBAImage, maxWidth, maxHeight int) *RGBAImage {
	if maxWidth <= 0 || maxHeight <= 0 {
		return NewRGBAImage(0, 0)
	}
	if img.Width() <= maxWidth && img.Height() <= maxHeight {
		return img
	}
	thumb := resize.Thumbnail(uint(maxWidth), uint(maxHeight), img.RGBA, resize.Lanczos3)
	return RGBAImageFromImage(thumb)
}

// ThumbnailSheet lays out one row of thumbnails in square slots of size x
// size pixels separated by SheetGap. Each thumbnail is scaled, up or down,
// to fit its slot and centered in it; the rest of the canvas is black.
type ThumbnailSheet struct {
	Columns int
	Size    int

	canvas *RGBAImage
	count  int
}

// NewThumbnailSheet returns an empty sheet with room for columns
// thumbnails of size x size pixels.
func NewThumbnailSheet(columns, size int) *ThumbnailSheet {
	s := &ThumbnailSheet{Columns: columns, Size: size}
	s.Reset()
	return s
}

// Reset clears the sheet for the next row.
func (s *ThumbnailSheet) Reset() {
	width := s.Size*s.Columns + SheetGap*(s.Columns-1)
	if width < 0 {
		width = 0
	}
	s.canvas = NewRGBAImage(width, s.Size)
	draw.Draw(s.canvas.RGBA, s.canvas.Bounds(), image.Black, image.Point{}, draw.Src)
	s.count = 0
}

// Len returns the number of thumbnails placed since the last Reset.
func (s *ThumbnailSheet) Len() int {
	return s.count
}

// Full reports whether every slot is taken.
func (s *ThumbnailSheet) Full() bool {
	return s.count >= s.Columns
}

// Add scales img into the next free slot. It returns false when the sheet
// is full.
func (s *ThumbnailSheet) Add(img *RGBAImage) bool {
	if s.Full() {
		return false
	}
	var thumb *RGBAImage
	if img.Width() > s.Size || img.Height() > s.Size {
		thumb = Thumbnail(img, s.Size, s.Size)
	} else {
		w, h := FitWithin(img.Width(), img.Height(), s.Size, s.Size)
		thumb = Resize(img, w, h, InterpolationArea)
	}

	w, h := thumb.Width(), thumb.Height()
	x := s.count*(s.Size+SheetGap) + (s.Size-w)/2
	y := (s.Size - h) / 2
	r := image.Rect(x, y, x+w, y+h)
	draw.Draw(s.canvas.RGBA, r, thumb.RGBA, thumb.Bounds().Min, draw.Src)
	s.count++
	return true
}

// Image returns the sheet canvas. It is shared with the sheet until the
// next Reset.
func (s *ThumbnailSheet) Image() *RGBAImage {
	return s.canvas
}
