// Command snapshot generates a maze, solves it with A* and writes the final
// grid as a PNG image or ASCII art.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"pathviz/canvas"
	"pathviz/core"
	"pathviz/maze"
	"pathviz/pathfinding"
)

type params struct {
	rows   int
	width  int
	seed   int64
	braid  float64
	output string
}

func main() {
	var (
		rows   = flag.Int("rows", 25, "Grid dimension")
		width  = flag.Int("width", 600, "Image width in pixels")
		seed   = flag.Int64("seed", 1, "Maze seed (0 = random)")
		braid  = flag.Float64("braid", 0.1, "Maze loop factor between 0 and 1")
		output = flag.String("o", "", "Output PNG file (default: ASCII to stdout)")
	)

	flag.Parse()

	p := params{rows: *rows, width: *width, seed: *seed, braid: *braid, output: *output}
	if err := run(context.Background(), p, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, p params, stdout io.Writer) error {
	g, res, err := solve(ctx, p)
	if err != nil {
		return err
	}

	if p.output != "" {
		if err := canvas.SavePNG(p.output, g, p.width); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Wrote %s\n", p.output)
	} else {
		fmt.Fprintln(stdout, g.String())
	}

	if res.Found {
		fmt.Fprintf(stdout, "path: %d steps, %d cells expanded\n", res.Length(), res.Expanded)
	} else {
		fmt.Fprintf(stdout, "no path, %d cells expanded\n", res.Expanded)
	}
	return nil
}

// solve builds the maze grid and runs the search between the layout's
// suggested endpoints.
func solve(ctx context.Context, p params) (*core.Grid, pathfinding.Result, error) {
	layout, err := maze.Generate(maze.Config{Size: p.rows, Braiding: p.braid, Seed: p.seed})
	if err != nil {
		return nil, pathfinding.Result{}, fmt.Errorf("generate maze: %w", err)
	}

	g, err := core.New(p.rows)
	if err != nil {
		return nil, pathfinding.Result{}, err
	}
	layout.Paint(g)

	start := g.Cell(layout.Start.Row, layout.Start.Col)
	end := g.Cell(layout.End.Row, layout.End.Col)
	start.MarkStart()
	end.MarkEnd()
	g.Relink()

	res, err := pathfinding.Search(ctx, g, start, end, nil)
	if err != nil {
		return nil, pathfinding.Result{}, err
	}
	return g, res, nil
}
