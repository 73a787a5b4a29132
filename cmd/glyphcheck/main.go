// Command glyphcheck compares the glyph dictionary against the shapes a
// TrueType font actually draws.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/codegangsta/cli"

	"github.com/wbrown/img2glyph"
)

// result is the comparison for one dictionary glyph.
type result struct {
	glyph    img2glyph.Glyph
	font     img2glyph.CoverageMask
	found    bool
	distance int
}

// compare rasterizes every dictionary glyph with fm and measures how far
// each is from its dictionary pattern.
func compare(fm *img2glyph.FontMasks, extended bool) []result {
	glyphs := img2glyph.Glyphs(extended)
	results := make([]result, 0, len(glyphs))
	for _, g := range glyphs {
		r := result{glyph: g}
		if m, ok := fm.Mask(g.Rune); ok {
			r.font, r.found = m, true
			r.distance = g.Pattern.Distance(m)
		}
		results = append(results, r)
	}
	return results
}

// report prints one line per glyph and returns the number of glyphs whose
// distance exceeds limit. Glyphs the font lacks are listed but not counted.
func report(w io.Writer, results []result, limit int, verbose bool) int {
	over := 0
	for _, r := range results {
		if !r.found {
			fmt.Fprintf(w, "U+%04X %c  %08x  missing\n", r.glyph.Rune, r.glyph.Rune, uint32(r.glyph.Pattern))
			continue
		}
		flag := ""
		if r.distance > limit {
			flag = "  !"
			over++
		}
		fmt.Fprintf(w, "U+%04X %c  %08x  %08x  %2d%s\n",
			r.glyph.Rune, r.glyph.Rune, uint32(r.glyph.Pattern), uint32(r.font), r.distance, flag)
		if verbose && r.distance > limit {
			fmt.Fprintf(w, "%s\n\n%s\n\n", r.glyph.Pattern, r.font)
		}
	}
	return over
}

func newCLI(stdout io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "glyphcheck"
	app.Usage = "Compare the glyph dictionary with a font's rendering."
	app.UsageText = "glyphcheck [options] FONT.ttf"
	app.Writer = stdout
	app.Flags = []cli.Flag{
		cli.IntFlag{
			Name:  "max, m",
			Usage: "Fail when a glyph differs from its pattern in more than `BITS` pixels.",
			Value: 32,
		},
		cli.BoolFlag{
			Name:  "x",
			Usage: "Include the sextant characters.",
		},
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: "Draw both shapes for every failing glyph.",
		},
	}
	app.HideVersion = true
	app.Action = func(c *cli.Context) error {
		if c.NArg() != 1 {
			return cli.NewExitError("expected exactly one font file", 64)
		}
		fm, err := img2glyph.LoadFontMasks(c.Args().First())
		if err != nil {
			return cli.NewExitError(err.Error(), 66)
		}
		results := compare(fm, c.Bool("x"))
		over := report(stdout, results, c.Int("max"), c.Bool("verbose"))
		fmt.Fprintf(stdout, "%s: %d of %d glyphs present, %d over %d bits\n",
			fm.Name(), fm.Len(), len(results), over, c.Int("max"))
		if over > 0 {
			return cli.NewExitError("", 1)
		}
		return nil
	}
	return app
}

func main() {
	if err := newCLI(os.Stdout).Run(os.Args); err != nil {
		if _, ok := err.(cli.ExitCoder); !ok {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(64)
		}
	}
}
