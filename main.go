// main.go - VideoCore entry point and command line handling

/*
 ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████
▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀
▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███
░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄
░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒
░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░
 ▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
 ▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░   ░   ░ ░    ░
 ░           ░             ░      ░            ░      ░ ░           ░       ░  ░         ░       ░  ░           ░    ░  ░

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/VideoCore
License: GPLv3 or later
*/

package main

import (
	"flag"
	"fmt"
	"os"
	"time"
)

// Demo is the contract both bundled demos satisfy: the scheduler's
// Simulation plus input handling and context attachment.
type Demo interface {
	Simulation
	InputHandler
	Attach(*VideoContext)
	OnQuit(func())
}

func main() {
	fs := flag.NewFlagSet("videocore", flag.ExitOnError)
	width := fs.Int("width", DEFAULT_WIDTH, "Surface width in pixels")
	height := fs.Int("height", DEFAULT_HEIGHT, "Surface height in pixels")
	scale := fs.Int("scale", 1, "Integer window scale factor (1-4)")
	fullscreen := fs.Bool("fullscreen", false, "Start in fullscreen")
	tickMS := fs.Uint("tick", DEFAULT_TICK_MS, "Simulation tick period in milliseconds")
	demoName := fs.String("demo", "fire", "Demo to run: fire or plasma")
	listModes := fs.Bool("list-modes", false, "Print the supported resolutions and exit")
	if err := fs.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	surface, err := NewDisplaySurface(VIDEO_BACKEND_EBITEN)
	if err != nil {
		fmt.Printf("VideoCore: %v\n", err)
		os.Exit(1)
	}

	if *listModes {
		for _, m := range surface.ListModes() {
			fmt.Println(m)
		}
		return
	}

	var demo Demo
	switch *demoName {
	case "fire":
		demo = NewFireDemo(time.Now().UnixNano())
	case "plasma":
		demo = NewPlasmaDemo()
	default:
		fmt.Printf("VideoCore: unknown demo %q (want fire or plasma)\n", *demoName)
		os.Exit(2)
	}

	ctx, err := NewVideoContext(surface, *width, *height, demo.ColorDepth())
	if err != nil {
		fmt.Printf("VideoCore: %v\n", err)
		os.Exit(1)
	}

	cfg := surface.GetDisplayConfig()
	cfg.Scale = *scale
	cfg.Fullscreen = *fullscreen
	if err := surface.SetDisplayConfig(cfg); err != nil {
		fmt.Printf("VideoCore: %v\n", err)
		os.Exit(1)
	}

	if err := ctx.Start(); err != nil {
		fmt.Printf("VideoCore: %v\n", err)
		os.Exit(1)
	}
	defer ctx.Close()

	demo.Attach(ctx)

	scheduler := NewTickScheduler(ctx, demo, demo, NewSystemClock())
	scheduler.SetTickPeriod(uint32(*tickMS))
	demo.OnQuit(scheduler.RequestQuit)

	// Seed the palette before the first frame so indexed pixels resolve to
	// the demo's colours rather than opaque black.
	ctx.UpdatePalette(demo.Palette(), 0, PALETTE_SIZE)

	if err := scheduler.Run(); err != nil {
		fmt.Printf("VideoCore: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("VideoCore: %d ticks in %dms\n", scheduler.StepCount(), scheduler.ElapsedMS())
}
