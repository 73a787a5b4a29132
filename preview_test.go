package img2glyph

import (
	"context"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/wbrown/img2glyph/imageutil"
)

func TestRenderCellsToImage(t *testing.T) {
	cells := [][]CharCell{{{FG: black, BG: white, Rune: '▌'}}}
	img := RenderCellsToImage(cells, PreviewOptions{Scale: 2})

	if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 16 {
		t.Fatalf("Expected 8x16, got %v", b)
	}
	tests := []struct {
		x, y int
		want RGB
	}{
		{0, 0, black},
		{3, 15, black},
		{4, 0, white},
		{7, 15, white},
	}
	for _, tt := range tests {
		if got := img.RGBAAt(tt.x, tt.y); got != tt.want.rgba() {
			t.Errorf("Pixel (%d,%d): expected %v, got %v", tt.x, tt.y, tt.want, got)
		}
	}
}

func TestRenderCellsToImage256(t *testing.T) {
	cells := [][]CharCell{{{FG: RGB{136, 136, 136}, BG: RGB{136, 136, 136}, Rune: '\u00a0'}}}
	img := RenderCellsToImage(cells, PreviewOptions{ColorMode: Color256})
	want := color.RGBA{R: 0x87, G: 0x87, B: 0x87, A: 255}
	if got := img.RGBAAt(0, 0); got != want {
		t.Errorf("Expected palette color %v, got %v", want, got)
	}
}

func TestRenderCellsToImageFontMasks(t *testing.T) {
	fm := &FontMasks{masks: map[rune]CoverageMask{'▌': 0x33333333}}
	cells := [][]CharCell{{
		{FG: black, BG: white, Rune: '▌'},
		{FG: black, BG: white, Rune: 'A'},
	}}
	img := RenderCellsToImage(cells, PreviewOptions{Font: fm})

	if got := img.RGBAAt(0, 0); got != white.rgba() {
		t.Errorf("Font shape should override the dictionary, got %v", got)
	}
	if got := img.RGBAAt(3, 0); got != black.rgba() {
		t.Errorf("Font ink should use FG, got %v", got)
	}
	for x := 4; x < 8; x++ {
		if got := img.RGBAAt(x, 4); got != white.rgba() {
			t.Errorf("Unknown rune should draw background only, got %v at x=%d", got, x)
		}
	}
}

func TestRenderCellsToImageEmpty(t *testing.T) {
	if img := RenderCellsToImage(nil, PreviewOptions{}); !img.Bounds().Empty() {
		t.Errorf("Expected empty image, got %v", img.Bounds())
	}
}

func TestSaveCellsToPNG(t *testing.T) {
	src := imageutil.CreateColorBarsImage(32, 16)
	r := NewRenderer()
	cells, err := r.Cells(context.Background(), src)
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "preview.png")
	if err := SaveCellsToPNG(cells, path, PreviewOptions{}); err != nil {
		t.Fatalf("SaveCellsToPNG: %v", err)
	}
	img, err := imageutil.LoadImage(path)
	if err != nil {
		t.Fatalf("LoadImage: %v", err)
	}
	if img.Width() != 32 || img.Height() != 16 {
		t.Errorf("Expected 32x16, got %dx%d", img.Width(), img.Height())
	}
	// Color bars are flat inside each cell, so the preview is exact.
	if mse := imageutil.CalculateMSE(src, img); mse != 0 {
		t.Errorf("Expected an exact preview, MSE=%f", mse)
	}
}
