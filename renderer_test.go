package img2glyph

import (
	"bytes"
	"context"
	"errors"
	"log"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/wbrown/img2glyph/imageutil"
)

func TestNewRendererDefaults(t *testing.T) {
	r := NewRenderer()
	if r.ColorMode != TrueColor || r.Teletext || r.NoOptimization {
		t.Errorf("Unexpected defaults %+v", r)
	}
	if r.Workers < 1 {
		t.Errorf("Expected at least one worker, got %d", r.Workers)
	}

	r = NewRenderer(
		WithColorMode(Color256),
		WithTeletext(true),
		WithNoOptimization(true),
		WithWorkers(0),
	)
	if r.ColorMode != Color256 || !r.Teletext || !r.NoOptimization || r.Workers != 1 {
		t.Errorf("Options not applied: %+v", r)
	}
}

func TestRendererCellsDropPartialBlocks(t *testing.T) {
	t.Parallel()

	img := imageutil.CreateGradientImage(10, 20)
	cells, err := NewRenderer().Cells(context.Background(), img)
	if err != nil {
		t.Fatalf("Cells: %v", err)
	}
	if len(cells) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(cells))
	}
	for y, row := range cells {
		if len(row) != 2 {
			t.Errorf("Row %d: expected 2 cells, got %d", y, len(row))
		}
	}
}

func TestRendererTinyImage(t *testing.T) {
	var logs bytes.Buffer
	r := NewRenderer(WithLogger(log.New(&logs, "", 0)))

	out, err := r.RenderToString(imageutil.NewRGBAImage(3, 40))
	if err != nil || out != "" {
		t.Errorf("Expected empty output, got %q, %v", out, err)
	}
	if !strings.Contains(logs.String(), "smaller than one") {
		t.Errorf("Expected a diagnostic, got %q", logs.String())
	}
}

func TestRendererFlatImage(t *testing.T) {
	t.Parallel()

	img := imageutil.CreateSolidImage(8, 8, imageutil.RGB{R: 10, G: 20, B: 30})
	out, err := NewRenderer().RenderToString(img)
	if err != nil {
		t.Fatalf("RenderToString: %v", err)
	}
	want := "\x1b[48;2;10;20;30m\x1b[38;2;10;20;30m\u00a0\u00a0\x1b[0m\n"
	if out != want {
		t.Errorf("Unexpected output:\n got %q\nwant %q", out, want)
	}
}

func TestRendererCheckerboard(t *testing.T) {
	t.Parallel()

	// Every block of a 2-pixel checkerboard is half black and half white,
	// so each cell keeps both colors.
	img := imageutil.CreateCheckerboardImage(16, 16, 2)
	cells, err := NewRenderer().Cells(context.Background(), img)
	if err != nil {
		t.Fatalf("Cells: %v", err)
	}
	for y, row := range cells {
		for x, cell := range row {
			if cell.FG == cell.BG {
				t.Errorf("Cell (%d,%d) lost its contrast: %+v", x, y, cell)
			}
			for _, c := range []RGB{cell.FG, cell.BG} {
				if c != black && c != white {
					t.Errorf("Cell (%d,%d) has mixed color %v", x, y, c)
				}
			}
		}
	}
}

func TestRendererWorkersAgree(t *testing.T) {
	t.Parallel()

	img := imageutil.CreateColorBarsImage(64, 48)
	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			c := img.GetRGB(x, y)
			img.SetRGB(x, y, imageutil.RGB{R: c.R ^ uint8(x*y), G: c.G, B: c.B ^ uint8(y)})
		}
	}

	serial, err := NewRenderer(WithWorkers(1), WithTeletext(true)).Cells(context.Background(), img)
	if err != nil {
		t.Fatal(err)
	}
	parallel, err := NewRenderer(WithWorkers(8), WithTeletext(true)).Cells(context.Background(), img)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(serial, parallel) {
		t.Error("Parallel rendering differs from serial rendering")
	}
}

func TestRendererNoOptimization(t *testing.T) {
	t.Parallel()

	img := imageutil.CreateCheckerboardImage(16, 16, 2)
	cells, err := NewRenderer(WithNoOptimization(true)).Cells(context.Background(), img)
	if err != nil {
		t.Fatal(err)
	}
	for _, row := range cells {
		for _, cell := range row {
			if cell.Rune != LowerHalfBlock {
				t.Fatalf("Expected only half blocks, got %U", cell.Rune)
			}
		}
	}
}

func TestRendererCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRenderer().Cells(ctx, imageutil.CreateGradientImage(64, 64))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestRendererZeroValue(t *testing.T) {
	t.Parallel()

	img := imageutil.CreateCheckerboardImage(16, 16, 4)
	tests := []struct {
		name string
		r    *Renderer
	}{
		{"literal", &Renderer{}},
		{"workers reset", func() *Renderer {
			r := NewRenderer()
			r.Workers = 0
			return r
		}()},
		{"negative workers", &Renderer{Workers: -3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			done := make(chan error, 1)
			go func() {
				cells, err := tt.r.Cells(context.Background(), img)
				if err == nil && (len(cells) != 2 || len(cells[0]) != 4) {
					err = errors.New("unexpected cell grid size")
				}
				done <- err
			}()
			select {
			case err := <-done:
				if err != nil {
					t.Errorf("Cells failed: %v", err)
				}
			case <-time.After(5 * time.Second):
				t.Fatal("Cells did not return")
			}
		})
	}
}

func TestRendererZeroValueTinyImage(t *testing.T) {
	r := &Renderer{Workers: 1}
	cells, err := r.Cells(context.Background(), imageutil.NewRGBAImage(2, 2))
	if err != nil || cells != nil {
		t.Errorf("Expected no cells and no error, got %v, %v", cells, err)
	}
}
