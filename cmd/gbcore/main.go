// Command gbcore runs a ROM against the LR35902 execution core, either
// at real-time pace with a terminal/PNG renderer attached or, with
// --debug, under the interactive single-step TUI.
//
// Grounded on _examples/master-g-childhood/go/chr2png/main.go's cli.App
// shape: one App, a flat Flags slice, a single Action closure that reads
// flags and does the work, cli.Exit for a non-zero status on failure.
package main

import (
	"os"
	"sort"

	"gopkg.in/urfave/cli.v2"

	"gbcore"
	"gbcore/internal/dbg"
	"gbcore/internal/debugtui"
	"gbcore/internal/driveloop"
	"gbcore/internal/memory"
	"gbcore/internal/render"
)

func main() {
	app := &cli.App{
		Name:    "gbcore",
		Usage:   "LR35902 execution core",
		Version: "v0.1.0",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "rom",
				Usage: "path to the cartridge ROM image",
			},
			&cli.StringFlag{
				Name:  "boot",
				Usage: "path to a 256-byte boot ROM image (skipped if omitted)",
			},
			&cli.IntFlag{
				Name:  "scale",
				Usage: "PNG dump upscale factor",
				Value: 4,
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "launch the interactive single-step debugger instead of running at real-time pace",
			},
		},
		Action: run,
	}

	sort.Sort(cli.FlagsByName(app.Flags))
	if err := app.Run(os.Args); err != nil {
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	romPath := c.String("rom")
	if romPath == "" {
		cli.ShowAppHelp(c)
		return cli.Exit("a --rom path is required", 86)
	}

	romData, err := os.ReadFile(romPath)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	bootImg, err := loadBootImage(c.String("boot"))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	console, err := gbcore.New(romData, bootImg)
	if err != nil {
		dbg.Printf("init failed: %v", err)
		return cli.Exit(err.Error(), 1)
	}

	if c.Bool("debug") {
		if err := debugtui.Run(console); err != nil {
			return cli.Exit(err.Error(), 1)
		}
		return nil
	}

	loop := driveloop.New(console, defaultRenderer(c))
	if err := loop.Run(); err != nil {
		dbg.Printf("run loop exited: %v", err)
		return cli.Exit(err.Error(), 1)
	}
	return nil
}

// loadBootImage reads a boot ROM image from path, or synthesizes a
// 256-byte all-NOP image that falls through to the cartridge's own entry
// point at 0x0100 without ever needing to disable itself, when path is
// empty.
func loadBootImage(path string) ([]byte, error) {
	if path == "" {
		return make([]byte, memory.BootROMSize), nil
	}
	return os.ReadFile(path)
}

// defaultRenderer builds the out-of-the-box renderer: the ASCII terminal
// view plus a periodic upscaled PNG snapshot (every 60th frame, roughly
// once a second at 59.7 fps) written to the working directory, sized by
// --scale.
func defaultRenderer(c *cli.Context) driveloop.Renderer {
	return render.Multi{
		render.NewASCIIRenderer(os.Stdout),
		render.NewPNGRenderer(".", "frame", 60, c.Int("scale")),
	}
}
