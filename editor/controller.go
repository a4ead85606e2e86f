package editor

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"pathviz/core"
	"pathviz/maze"
	"pathviz/pathfinding"
)

// Controller turns input events into grid edits and search runs. It is not
// safe for concurrent use; one goroutine owns it together with its sink and
// source.
type Controller struct {
	cfg    Config
	geo    Geometry
	sink   Sink
	source Source
	cue    Cue
	log    *slog.Logger

	grid       *core.Grid
	start, end *core.Cell

	mode   Mode
	status Status
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for search and grid events.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// WithCue registers a listener for finished searches.
func WithCue(cue Cue) Option {
	return func(c *Controller) { c.cue = cue }
}

// New creates a controller over a fresh grid.
func New(cfg Config, sink Sink, source Source, opts ...Option) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if sink == nil || source == nil {
		return nil, fmt.Errorf("%w: sink and source are required", ErrInvalidConfig)
	}

	grid, err := core.New(cfg.Rows)
	if err != nil {
		return nil, err
	}

	c := &Controller{
		cfg:    cfg,
		geo:    cfg.Geometry(),
		sink:   sink,
		source: source,
		log:    slog.New(slog.DiscardHandler),
		grid:   grid,
		mode:   ModeEditing,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Grid returns the grid currently being edited. It changes on reset.
func (c *Controller) Grid() *core.Grid { return c.grid }

// Start returns the start cell, or nil when unset.
func (c *Controller) Start() *core.Cell { return c.start }

// End returns the end cell, or nil when unset.
func (c *Controller) End() *core.Cell { return c.end }

// Mode returns the current mode.
func (c *Controller) Mode() Mode { return c.mode }

// Status returns the state shown in the status line.
func (c *Controller) Status() Status {
	st := c.status
	st.Mode = c.mode
	st.HasStart = c.start != nil
	st.HasEnd = c.end != nil
	return st
}

// Run presents a frame, handles pending input and waits for the next tick
// until a quit event arrives or ctx is done. Only sink failures are errors.
func (c *Controller) Run(ctx context.Context) error {
	ticker := time.NewTicker(c.cfg.FrameInterval)
	defer ticker.Stop()

	for {
		if err := c.present(); err != nil {
			return err
		}

		for _, ev := range c.source.Poll() {
			quit, err := c.Handle(ctx, ev)
			if err != nil {
				return err
			}
			if quit {
				c.log.Info("quit requested")
				return nil
			}
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (c *Controller) present() error {
	if err := c.sink.Present(c.grid, c.Status()); err != nil {
		return fmt.Errorf("present frame: %w", err)
	}
	return nil
}

// Handle applies a single event. It reports quit when the program should
// stop, including a quit received while a search was running.
func (c *Controller) Handle(ctx context.Context, ev Event) (quit bool, err error) {
	if ev.IsQuit() {
		return true, nil
	}

	switch ev.Kind {
	case EventPointerDown:
		c.handlePointer(ev)
	case EventKeyDown:
		return c.handleKey(ctx, ev.Key)
	}
	return false, nil
}

// reset replaces the grid with a fresh one and forgets start and end.
func (c *Controller) reset() error {
	grid, err := core.New(c.cfg.Rows)
	if err != nil {
		return err
	}
	c.grid = grid
	c.start, c.end = nil, nil
	c.mode = ModeEditing
	c.status = Status{}
	return nil
}

// generateMaze rebuilds the grid and paints a generated maze as barriers.
func (c *Controller) generateMaze() error {
	layout, err := maze.Generate(maze.Config{
		Size:     c.cfg.Rows,
		Braiding: c.cfg.MazeBraiding,
		Seed:     c.cfg.MazeSeed,
	})
	if err != nil {
		return fmt.Errorf("generate maze: %w", err)
	}
	if err := c.reset(); err != nil {
		return err
	}

	walls := layout.Paint(c.grid)
	c.log.Info("maze generated", "rows", c.cfg.Rows, "barriers", walls)
	return nil
}

// runSearch relinks the grid and runs A* to completion. Each step presents a
// frame, pauses for StepDelay and drains input; a quit among that input
// cancels the search and is reported back to the caller.
func (c *Controller) runSearch(ctx context.Context) (quit bool, err error) {
	// marks left by a previous run would otherwise linger in the new frames
	c.grid.Clear(nil)
	c.grid.Relink()
	c.mode = ModeSearching
	c.status = Status{}

	searchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var stepErr error
	onStep := func() {
		if err := c.present(); err != nil {
			stepErr = err
			cancel()
			return
		}
		if c.cfg.StepDelay > 0 {
			time.Sleep(c.cfg.StepDelay)
		}
		for _, ev := range c.source.Poll() {
			if ev.IsQuit() {
				quit = true
				cancel()
			}
		}
	}

	c.log.Info("search started", "start", c.start.Coord(), "end", c.end.Coord())
	res, err := pathfinding.Search(searchCtx, c.grid, c.start, c.end, onStep)
	c.mode = ModeFinished

	switch {
	case stepErr != nil:
		return false, stepErr
	case quit || ctx.Err() != nil:
		c.log.Info("search interrupted", "expanded", res.Expanded)
		return true, nil
	case err != nil:
		return false, fmt.Errorf("search: %w", err)
	}

	c.status.Expanded = res.Expanded
	if res.Found {
		c.status.Outcome = OutcomeFound
		c.status.PathLength = res.Length()
	} else {
		c.status.Outcome = OutcomeNoPath
	}
	c.log.Info("search finished", "found", res.Found, "expanded", res.Expanded, "length", res.Length())

	if c.cue != nil {
		c.cue.SearchFinished(res.Found)
	}
	return false, nil
}
