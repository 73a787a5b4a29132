// Command glyphify displays images in the terminal using colored block,
// box drawing and sextant characters.
package main

import (
	"io"
	"log"
	"os"

	"github.com/codegangsta/cli"
)

// Exit codes follow sysexits.h.
const (
	exitUsage    = 64
	exitData     = 65
	exitNoInput  = 66
	exitSoftware = 70
	exitIOErr    = 74

	exitInterrupted = 130
)

// app carries the output streams shared by every invocation.
type app struct {
	stdout io.Writer
	logger *log.Logger
}

func newCLI(stdout io.Writer, logger *log.Logger) *cli.App {
	a := &app{stdout: stdout, logger: logger}

	// -h sets the height, so help is long-form only.
	cli.HelpFlag = cli.BoolFlag{
		Name:  "help",
		Usage: "show help",
	}

	c := cli.NewApp()
	c.Name = "glyphify"
	c.Usage = "Display images in the terminal with colored glyphs."
	c.UsageText = "glyphify [options] FILE|DIR [FILE|DIR...]"
	c.Version = "1.0.0"
	c.Writer = stdout
	c.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "0",
			Usage: "No block character adjustment, always use top half block char.",
		},
		cli.BoolFlag{
			Name:  "256, 2",
			Usage: "Use 256 color mode instead of 24 bit true color.",
		},
		cli.IntFlag{
			Name:  "c",
			Usage: "`NUM` of thumbnail columns in dir mode.",
			Value: defaultColumns,
		},
		cli.BoolFlag{
			Name:  "dir, d",
			Usage: "Force dir mode: show thumbnails side by side with file names.",
		},
		cli.BoolFlag{
			Name:  "full, f",
			Usage: "Force full mode: show every image at terminal size.",
		},
		cli.IntFlag{
			Name:  "w",
			Usage: "Set the maximum output width to `NUM` characters.",
		},
		cli.IntFlag{
			Name:  "h",
			Usage: "Set the maximum output height to `NUM` lines.",
		},
		cli.BoolFlag{
			Name:  "x",
			Usage: "Use the sextant characters from Symbols for Legacy Computing.",
		},
		cli.StringFlag{
			Name:  "png",
			Usage: "Also write a PNG preview of the last image to `PATH`.",
		},
		cli.StringFlag{
			Name:  "font",
			Usage: "Draw the --png preview with the glyph shapes of the TrueType font at `PATH`.",
		},
		cli.StringFlag{
			Name:  "config",
			Usage: "Read defaults from the YAML file at `PATH` (or $" + configEnv + ").",
		},
		cli.Float64Flag{
			Name:  "gamma",
			Usage: "`GAMMA` = 1.0 gives the original image. Less darkens, greater lightens.",
			Value: 1.0,
		},
		cli.Float64Flag{
			Name:  "brightness",
			Usage: "`BRIGHTNESS` in -100..100; 0 gives the original image.",
		},
		cli.Float64Flag{
			Name:  "contrast",
			Usage: "`CONTRAST` in -100..100; 0 gives the original image.",
		},
		cli.Float64Flag{
			Name:  "sharpen",
			Usage: "`SIGMA` greater than 0 sharpens the image.",
		},
		cli.BoolFlag{
			Name:  "invert",
			Usage: "Inverts the image.",
		},
	}
	c.OnUsageError = func(_ *cli.Context, err error, _ bool) error {
		return cli.NewExitError(err.Error(), exitUsage)
	}
	c.Action = a.run
	return c
}

func main() {
	logger := log.New(os.Stderr, "glyphify: ", 0)
	if err := newCLI(os.Stdout, logger).Run(os.Args); err != nil {
		if _, ok := err.(cli.ExitCoder); !ok {
			logger.Println(err)
			os.Exit(exitUsage)
		}
	}
}
