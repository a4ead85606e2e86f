package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"pathviz/audio"
	"pathviz/editor"
	"pathviz/terminal"
	"pathviz/window"
)

type options struct {
	window  bool
	mute    bool
	logFile string
}

func main() {
	def := editor.DefaultConfig()
	var (
		rows    = flag.Int("rows", def.Rows, "Grid dimension (rows and columns)")
		width   = flag.Int("width", def.Width, "Surface width in pixels")
		delay   = flag.Duration("delay", def.StepDelay, "Pause after each search step")
		braid   = flag.Float64("braid", def.MazeBraiding, "Maze loop factor: 0 = perfect maze, 1 = no dead ends")
		seed    = flag.Int64("seed", 0, "Maze seed (0 = random)")
		win     = flag.Bool("window", false, "Open a desktop window instead of drawing in the terminal")
		mute    = flag.Bool("mute", false, "Disable sound cues")
		logFile = flag.String("log", "", "Write a debug log to this file")
		help    = flag.Bool("help", false, "Show help")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Interactive A* path finding visualiser.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nControls:\n%s", editor.HelpText())
	}

	flag.Parse()

	if *help {
		flag.Usage()
		return
	}

	cfg := def
	cfg.Rows = *rows
	cfg.Width = *width
	cfg.StepDelay = *delay
	cfg.MazeBraiding = *braid
	cfg.MazeSeed = *seed

	opts := options{window: *win, mute: *mute, logFile: *logFile}
	if err := run(cfg, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg editor.Config, opts options) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, closeLog, err := newLogger(opts.logFile)
	if err != nil {
		return err
	}
	defer closeLog()

	player, err := audio.NewPlayer(opts.mute)
	if err != nil {
		logger.Warn("sound disabled", "err", err)
	}
	defer player.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Info("starting", "rows", cfg.Rows, "width", cfg.Width, "window", opts.window)
	ctrlOpts := []editor.Option{editor.WithLogger(logger), editor.WithCue(player)}
	if opts.window {
		return runWindow(ctx, cfg, ctrlOpts)
	}
	return runTerminal(ctx, cfg, ctrlOpts)
}

func runTerminal(ctx context.Context, cfg editor.Config, ctrlOpts []editor.Option) error {
	screen, err := terminal.New(cfg.Geometry())
	if err != nil {
		return err
	}
	// Ensure terminal is restored even on panic
	defer func() {
		if r := recover(); r != nil {
			screen.Close()
			panic(r)
		}
		screen.Close()
	}()

	ctrl, err := editor.New(cfg, screen, screen, ctrlOpts...)
	if err != nil {
		return err
	}
	return ctrl.Run(ctx)
}

func runWindow(ctx context.Context, cfg editor.Config, ctrlOpts []editor.Option) error {
	w := window.New(cfg.Geometry())
	ctrl, err := editor.New(cfg, w, w, ctrlOpts...)
	if err != nil {
		return err
	}
	return w.Run(ctx, ctrl.Run)
}

// newLogger writes text logs to path, or discards them when path is empty.
func newLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	return newTextLogger(f), func() { f.Close() }, nil
}

func newTextLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				a.Value = slog.StringValue(a.Value.Time().Format(time.TimeOnly))
			}
			return a
		},
	}))
}
