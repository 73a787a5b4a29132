// Package img2glyph renders images as terminal text. Every 4x8 pixel
// block becomes one character cell: a glyph chosen by shape, drawn with a
// foreground and a background color.
package img2glyph

import (
	"context"
	"io"
	"log"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/wbrown/img2glyph/imageutil"
)

// Renderer turns images into glyph cells and ANSI text. A Renderer holds
// only configuration and may be used from several goroutines.
type Renderer struct {
	ColorMode      ColorMode
	Teletext       bool
	NoOptimization bool
	// Workers bounds the number of block rows evaluated concurrently.
	// Values below 1 mean one.
	Workers int

	logger *log.Logger
}

// RendererOption is a functional option for configuring a Renderer.
type RendererOption func(*Renderer)

// NewRenderer creates a Renderer writing true-color escapes with the
// standard glyph set, one worker per CPU.
func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{
		ColorMode: TrueColor,
		Workers:   runtime.GOMAXPROCS(0),
		logger:    log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.Workers < 1 {
		r.Workers = 1
	}
	return r
}

// WithColorMode sets the color space of the emitted escapes.
func WithColorMode(mode ColorMode) RendererOption {
	return func(r *Renderer) {
		r.ColorMode = mode
	}
}

// WithTeletext enables the extended sextant glyphs.
func WithTeletext(enabled bool) RendererOption {
	return func(r *Renderer) {
		r.Teletext = enabled
	}
}

// WithNoOptimization draws every cell with the lower half block.
func WithNoOptimization(enabled bool) RendererOption {
	return func(r *Renderer) {
		r.NoOptimization = enabled
	}
}

// WithWorkers sets how many block rows are evaluated concurrently.
func WithWorkers(n int) RendererOption {
	return func(r *Renderer) {
		r.Workers = n
	}
}

// WithLogger sets the logger for diagnostics.
func WithLogger(l *log.Logger) RendererOption {
	return func(r *Renderer) {
		if l != nil {
			r.logger = l
		}
	}
}

// logf logs through the configured logger. A Renderer built without
// NewRenderer has none and stays silent.
func (r *Renderer) logf(format string, args ...any) {
	if r.logger != nil {
		r.logger.Printf(format, args...)
	}
}

func (r *Renderer) cellOptions() CellOptions {
	return CellOptions{
		Teletext:       r.Teletext,
		NoOptimization: r.NoOptimization,
	}
}

// Cells computes one CharCell per 4x8 block, rows top to bottom. Pixels
// right of the last whole block column or below the last whole block row
// are ignored. Rows are computed in parallel; the result does not depend
// on the number of workers.
func (r *Renderer) Cells(ctx context.Context, img *imageutil.RGBAImage) ([][]CharCell, error) {
	cols, rows := img.Width()/BlockWidth, img.Height()/BlockHeight
	if cols == 0 || rows == 0 {
		r.logf("image %dx%d is smaller than one %dx%d cell",
			img.Width(), img.Height(), BlockWidth, BlockHeight)
		return nil, nil
	}

	opts := r.cellOptions()
	result := make([][]CharCell, rows)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(r.Workers, 1))
	for row := 0; row < rows; row++ {
		row := row
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			cells := make([]CharCell, cols)
			for col := range cells {
				b := BlockAt(img, col*BlockWidth, row*BlockHeight)
				cells[col] = FindCell(&b, opts)
			}
			result[row] = cells
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

// Render writes img to w as glyphs and color escapes.
func (r *Renderer) Render(ctx context.Context, w io.Writer, img *imageutil.RGBAImage) error {
	cells, err := r.Cells(ctx, img)
	if err != nil {
		return err
	}
	return Encode(w, cells, r.ColorMode)
}

// RenderToString renders img into a string.
func (r *Renderer) RenderToString(img *imageutil.RGBAImage) (string, error) {
	var sb strings.Builder
	if err := r.Render(context.Background(), &sb, img); err != nil {
		return "", err
	}
	return sb.String(), nil
}
