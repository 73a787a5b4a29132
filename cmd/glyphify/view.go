package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"

	"github.com/codegangsta/cli"
	"github.com/mattn/go-runewidth"

	"github.com/wbrown/img2glyph"
	"github.com/wbrown/img2glyph/imageutil"
)

// run is the app action. Per-file failures are logged and processing
// continues; the exit code reflects the last failure.
func (a *app) run(c *cli.Context) error {
	if c.NArg() == 0 {
		cli.ShowAppHelp(c)
		return cli.NewExitError("no input files", exitUsage)
	}
	opts, err := a.resolveOptions(c)
	if err != nil {
		return cli.NewExitError(err.Error(), exitUsage)
	}

	preview, err := a.previewOptions(opts)
	if err != nil {
		return cli.NewExitError(err.Error(), exitCodeFor(err))
	}

	files, code := a.collectInputs(c.Args())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var cells [][]img2glyph.CharCell
	var viewCode int
	if opts.mode == modeFull || (opts.mode == modeAuto && len(files) == 1) {
		cells, viewCode, err = a.showFull(ctx, opts, files)
	} else {
		cw, layoutErr := sheetCells(opts)
		if layoutErr != nil {
			return cli.NewExitError(layoutErr.Error(), exitUsage)
		}
		cells, viewCode, err = a.showSheets(ctx, opts, cw, files)
	}
	if err != nil {
		return cli.NewExitError(err.Error(), renderExitCode(err))
	}
	if viewCode != 0 {
		code = viewCode
	}

	if opts.pngPath != "" && cells != nil {
		if err := img2glyph.SaveCellsToPNG(cells, opts.pngPath, preview); err != nil {
			a.logger.Printf("error: %v", err)
			code = exitData
		}
	}

	if code != 0 {
		return cli.NewExitError("", code)
	}
	return nil
}

// previewOptions configures the PNG preview, loading the font up front so
// a bad path fails before anything is rendered.
func (a *app) previewOptions(opts options) (img2glyph.PreviewOptions, error) {
	preview := img2glyph.PreviewOptions{
		Scale:     2,
		ColorMode: opts.colorMode,
	}
	if opts.fontPath == "" {
		return preview, nil
	}
	if opts.pngPath == "" {
		a.logger.Printf("warning: --font only affects the --png preview")
		return preview, nil
	}
	fm, err := img2glyph.LoadFontMasks(opts.fontPath)
	if err != nil {
		return preview, err
	}
	preview.Font = fm
	return preview, nil
}

// collectInputs expands directories to the regular files they contain and
// drops inputs that cannot be opened.
func (a *app) collectInputs(args []string) ([]string, int) {
	var files []string
	code := 0
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err == nil && info.IsDir() {
			entries, err := os.ReadDir(arg)
			if err != nil {
				a.logger.Printf("error: cannot read directory '%s': %v", arg, err)
				code = exitNoInput
				continue
			}
			sort.Slice(entries, func(i, j int) bool {
				return entries[i].Name() < entries[j].Name()
			})
			for _, e := range entries {
				if e.Type().IsRegular() {
					files = append(files, filepath.Join(arg, e.Name()))
				}
			}
			continue
		}

		f, err := os.Open(arg)
		if err != nil {
			a.logger.Printf("error: cannot open '%s': %v", arg, err)
			code = exitNoInput
			continue
		}
		f.Close()
		files = append(files, arg)
	}
	return files, code
}

// showFull renders each image at up to terminal size. It returns the cells
// of the last image rendered.
func (a *app) showFull(ctx context.Context, opts options, files []string) ([][]img2glyph.CharCell, int, error) {
	r := opts.renderer(a)
	var last [][]img2glyph.CharCell
	code := 0
	for _, name := range files {
		img, err := imageutil.LoadImage(name)
		if err != nil {
			a.logger.Printf("error: cannot load '%s': %v", name, err)
			code = exitCodeFor(err)
			continue
		}
		img = imageutil.ShrinkToFit(img, opts.maxWidth, opts.maxHeight, imageutil.InterpolationArea)
		img = imageutil.Adjust(img, opts.adjust)

		cells, err := a.display(ctx, r, img)
		if err != nil {
			return last, code, err
		}
		last = cells
	}
	return last, code, nil
}

// showSheets renders the images as rows of thumbnails cw cells wide, each
// row followed by a caption with the file names.
func (a *app) showSheets(ctx context.Context, opts options, cw int, files []string) ([][]img2glyph.CharCell, int, error) {
	r := opts.renderer(a)
	sheet := imageutil.NewThumbnailSheet(opts.columns, cw*img2glyph.BlockWidth)
	var last [][]img2glyph.CharCell
	code := 0
	for index := 0; index < len(files); {
		sheet.Reset()
		var names []string
		for index < len(files) && !sheet.Full() {
			name := files[index]
			index++
			img, err := imageutil.LoadImage(name)
			if err != nil {
				a.logger.Printf("warning: skipping '%s': %v", name, err)
				code = exitCodeFor(err)
				continue
			}
			sheet.Add(imageutil.Adjust(img, opts.adjust))
			names = append(names, filepath.Base(name))
		}
		if sheet.Len() > 0 {
			cells, err := a.display(ctx, r, sheet.Image())
			if err != nil {
				return last, code, err
			}
			last = cells
		}
		fmt.Fprintf(a.stdout, "%s\n\n", caption(names, cw))
	}
	return last, code, nil
}

func (a *app) display(ctx context.Context, r *img2glyph.Renderer, img *imageutil.RGBAImage) ([][]img2glyph.CharCell, error) {
	cells, err := r.Cells(ctx, img)
	if err != nil {
		return nil, err
	}
	if err := img2glyph.Encode(a.stdout, cells, r.ColorMode); err != nil {
		return nil, err
	}
	return cells, nil
}

// sheetCells validates the thumbnail layout and returns the width of one
// thumbnail in cells.
func sheetCells(opts options) (int, error) {
	if opts.columns < 1 {
		return 0, fmt.Errorf("invalid column count %d", opts.columns)
	}
	cw := thumbnailCells(opts.maxWidth, opts.columns)
	if cw < 1 {
		return 0, fmt.Errorf("%d columns do not fit in %d characters",
			opts.columns, opts.maxWidth/img2glyph.BlockWidth)
	}
	return cw, nil
}

// thumbnailCells returns the width in cells of one thumbnail when columns
// thumbnails separated by two-cell gaps share maxWidth pixels.
func thumbnailCells(maxWidth, columns int) int {
	return (maxWidth/img2glyph.BlockWidth - 2*(columns-1)) / columns
}

// caption lays out file names under their thumbnails: each name is
// truncated or padded to the thumbnail width and followed by two spaces.
func caption(names []string, width int) string {
	var sb strings.Builder
	for _, name := range names {
		name = runewidth.Truncate(name, width, "")
		sb.WriteString(runewidth.FillRight(name, width))
		sb.WriteString("  ")
	}
	return sb.String()
}

// renderExitCode maps a failure while rendering or writing output to an
// exit code. Interruption exits as if killed by SIGINT.
func renderExitCode(err error) int {
	switch {
	case errors.Is(err, context.Canceled):
		return exitInterrupted
	case errors.Is(err, img2glyph.ErrInvalidCodepoint):
		return exitSoftware
	}
	return exitIOErr
}

// exitCodeFor maps a load failure to an exit code.
func exitCodeFor(err error) int {
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		return exitNoInput
	}
	return exitData
}
