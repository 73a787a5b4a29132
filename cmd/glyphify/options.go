package main

import (
	"errors"
	"os"

	"github.com/codegangsta/cli"
	"golang.org/x/term"

	"github.com/wbrown/img2glyph"
	"github.com/wbrown/img2glyph/imageutil"
)

const (
	defaultCols    = 80
	defaultRows    = 24
	defaultColumns = 3
)

var errNoTerminal = errors.New("output is not a terminal")

// terminalSize reports the size of the terminal on stdout in cells.
var terminalSize = func() (cols, rows int, err error) {
	cols, rows, err = term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0, 0, err
	}
	if cols == 0 || rows == 0 {
		return 0, 0, errNoTerminal
	}
	return cols, rows, nil
}

type mode int

const (
	modeAuto mode = iota
	modeFull
	modeSheet
)

// options is the resolved configuration of one invocation.
type options struct {
	// maxWidth and maxHeight are in pixels: 4 per column, 8 per row.
	maxWidth, maxHeight int
	columns             int
	mode                mode
	colorMode           img2glyph.ColorMode
	teletext            bool
	noOpt               bool
	adjust              imageutil.Adjustments
	pngPath             string
	// fontPath names a TrueType font whose glyph shapes the PNG preview
	// draws.
	fontPath string
}

// resolveOptions merges the defaults file with the flags. Flags win.
func (a *app) resolveOptions(c *cli.Context) (options, error) {
	path := c.String("config")
	if path == "" {
		path = os.Getenv(configEnv)
	}
	cfg, err := loadConfig(path)
	if err != nil {
		return options{}, err
	}

	opts := options{
		columns:  defaultColumns,
		teletext: cfg.Teletext || c.Bool("x"),
		noOpt:    cfg.NoOpt || c.Bool("0"),
		pngPath:  c.String("png"),
		fontPath: cfg.Font,
		adjust: imageutil.Adjustments{
			Gamma:      cfg.Gamma,
			Brightness: cfg.Brightness,
			Contrast:   cfg.Contrast,
			Sharpen:    cfg.Sharpen,
			Invert:     cfg.Invert || c.Bool("invert"),
		},
	}
	if cfg.Color256 || c.Bool("256") {
		opts.colorMode = img2glyph.Color256
	}
	if cfg.Columns > 0 {
		opts.columns = cfg.Columns
	}
	if c.IsSet("font") {
		opts.fontPath = c.String("font")
	}
	if c.IsSet("c") {
		opts.columns = c.Int("c")
	}
	switch {
	case c.Bool("full"):
		opts.mode = modeFull
	case c.Bool("dir"):
		opts.mode = modeSheet
	}

	if c.IsSet("gamma") {
		opts.adjust.Gamma = c.Float64("gamma")
	}
	if c.IsSet("brightness") {
		opts.adjust.Brightness = c.Float64("brightness")
	}
	if c.IsSet("contrast") {
		opts.adjust.Contrast = c.Float64("contrast")
	}
	if c.IsSet("sharpen") {
		opts.adjust.Sharpen = c.Float64("sharpen")
	}

	cols, rows := cfg.Width, cfg.Height
	if c.IsSet("w") {
		cols = c.Int("w")
	}
	if c.IsSet("h") {
		rows = c.Int("h")
	}
	if cols <= 0 && rows <= 0 {
		var err error
		cols, rows, err = terminalSize()
		if err != nil {
			a.logger.Printf("warning: failed to determine terminal size: %v, defaulting to %dx%d",
				err, defaultCols, defaultRows)
			cols, rows = defaultCols, defaultRows
		}
	}
	if cols <= 0 {
		cols = defaultCols
	}
	if rows <= 0 {
		rows = defaultRows
	}
	opts.maxWidth = cols * img2glyph.BlockWidth
	opts.maxHeight = rows * img2glyph.BlockHeight
	return opts, nil
}

func (o options) renderer(a *app) *img2glyph.Renderer {
	return img2glyph.NewRenderer(
		img2glyph.WithColorMode(o.colorMode),
		img2glyph.WithTeletext(o.teletext),
		img2glyph.WithNoOptimization(o.noOpt),
		img2glyph.WithLogger(a.logger),
	)
}
