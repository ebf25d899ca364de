package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"m3u/app"
	"m3u/hal"
	"m3u/internal/buildinfo"
)

func main() {
	cfg := app.DefaultConfig()
	var (
		headless    hal.HeadlessConfig
		screenshot  string
		showVersion bool
	)
	flag.BoolVar(&headless.Enabled, "headless", false, "Run without a window.")
	flag.Uint64Var(&headless.Frames, "frames", 0, "Quit after N presented frames (0 = run until quit).")
	flag.StringVar(&screenshot, "screenshot", "", "Write the last frame to this PNG file on exit.")
	flag.BoolVar(&cfg.Overlay, "overlay", false, "Draw the frame rate into the framebuffer.")
	flag.IntVar(&cfg.FrameLimit, "fps", cfg.FrameLimit, "Frame rate cap.")
	flag.BoolVar(&showVersion, "version", false, "Print the build version and exit.")
	flag.Parse()

	if showVersion {
		fmt.Println(buildinfo.String())
		return
	}

	logger := hal.NewLogger(os.Stdout)
	headless.Logger = logger

	if err := hal.InitVideo(headless.Enabled); err != nil {
		fatal("video initialization failed: %v", err)
	}
	if err := hal.InitImage(); err != nil {
		fatal("image initialization failed: %v", err)
	}
	a, err := app.New(cfg, hal.SystemClock())
	if err != nil {
		fatal("initialization failed: %v", err)
	}
	var snap *hal.Snapshotter
	if screenshot != "" {
		snap, err = hal.NewSnapshotter(screenshot, cfg.PixelSize)
		if err != nil {
			fatal("image initialization failed: %v", err)
		}
	}
	logger.WriteLineString("m3u " + buildinfo.Short())

	if headless.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		err = hal.RunHeadless(ctx, a.Attach, headless)
		stop()
	} else {
		err = hal.RunWindow(cfg.Window(logger), a.Attach)
	}
	if err != nil {
		fatal("%v", err)
	}

	if s := a.Session(); s != nil && snap != nil {
		if err := snap.Save(s.Framebuffer()); err != nil {
			fatal("%v", err)
		}
		logger.WriteLineString("snapshot: " + snap.Path())
	}
	if err := a.Close(); err != nil {
		fatal("%v", err)
	}
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
