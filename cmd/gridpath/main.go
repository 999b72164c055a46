// Command gridpath replays a script of grid edits against a pathfinding
// session and prints the resulting grid and path.
//
// Usage:
//
//	gridpath [options] [command ...]
//
// Each positional argument is one command; -script reads further commands
// from a file ("-" for stdin), one per line. Commands:
//
//	block x,y           toggle the blocked flag of a cell
//	source x,y          move the source
//	dest x,y            move the destination
//	edge x,y x,y        link or unlink two cells
//	preset name         full | orthogonal | diagonal | none
//	heuristic name      euclidean | manhattan | diagonal
//	blockall            block every cell but the endpoints
//	invert              invert every cell but the endpoints
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/heuristic"
	"github.com/katalvlaran/gridpath/session"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "gridpath:", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("gridpath", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		width      = fs.Int("width", session.DefaultWidth, "Grid width in cells")
		height     = fs.Int("height", session.DefaultHeight, "Grid height in cells")
		presetName = fs.String("preset", "full", "Initial topology: full, orthogonal, diagonal, none")
		modeName   = fs.String("heuristic", "euclidean", "Initial heuristic: euclidean, manhattan, diagonal")
		relaxName  = fs.String("relax", "all", "Relaxation policy: all, traversable")
		scriptPath = fs.String("script", "", "Read commands from file (- for stdin)")
		keepGoing  = fs.Bool("k", false, "Report rejected commands and continue")
		quiet      = fs.Bool("q", false, "Print only the path summary, not the grid")
		verbose    = fs.Bool("v", false, "Debug logging to stderr")
	)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: gridpath [options] [command ...]\n\nOptions:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	preset, err := session.ParsePreset(*presetName)
	if err != nil {
		return err
	}
	mode, err := heuristic.ParseMode(*modeName)
	if err != nil {
		return err
	}
	relax, err := parseRelax(*relaxName)
	if err != nil {
		return err
	}

	cmds, err := parseScript(strings.NewReader(strings.Join(fs.Args(), "\n")))
	if err != nil {
		return err
	}
	if *scriptPath != "" {
		more, err := readScript(*scriptPath, stdin)
		if err != nil {
			return err
		}
		cmds = append(cmds, more...)
	}

	s, err := session.New(
		session.WithSize(*width, *height),
		session.WithPreset(preset),
		session.WithHeuristic(mode),
		session.WithRelaxPolicy(relax),
		session.WithLogger(logger),
	)
	if err != nil {
		return err
	}
	for _, cmd := range cmds {
		if err := apply(s, cmd); err != nil {
			if !*keepGoing {
				return fmt.Errorf("command %q: %w", cmd.verb, err)
			}
			fmt.Fprintf(stderr, "skipped %s: %v\n", cmd.verb, err)
		}
	}

	if !*quiet {
		if err := render(stdout, s); err != nil {
			return err
		}
	}

	return summary(stdout, s)
}

func readScript(path string, stdin io.Reader) ([]command, error) {
	if path == "-" {
		return parseScript(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return parseScript(f)
}

func parseRelax(s string) (astar.RelaxPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case astar.RelaxAll.String():
		return astar.RelaxAll, nil
	case astar.RelaxTraversable.String():
		return astar.RelaxTraversable, nil
	default:
		return 0, fmt.Errorf("unknown relax policy %q", s)
	}
}
