package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/heuristic"
	"github.com/katalvlaran/gridpath/session"
)

// errBadCommand is returned for script lines that do not parse.
var errBadCommand = errors.New("gridpath: bad command")

// command is one parsed script line.
type command struct {
	line  int
	verb  string
	cells []gridgraph.Cell
	arg   string
}

// arity lists the cell count (or -1 for a single word argument) per verb.
var arity = map[string]int{
	"block":     1,
	"source":    1,
	"dest":      1,
	"edge":      2,
	"preset":    -1,
	"heuristic": -1,
	"blockall":  0,
	"invert":    0,
}

// parseScript reads one command per line. Blank lines and lines starting
// with '#' are skipped.
func parseScript(r io.Reader) ([]command, error) {
	var cmds []command
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		cmd, err := parseCommand(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		cmd.line = n
		cmds = append(cmds, cmd)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return cmds, nil
}

func parseCommand(text string) (command, error) {
	fields := strings.Fields(text)
	verb := strings.ToLower(fields[0])
	want, ok := arity[verb]
	if !ok {
		return command{}, fmt.Errorf("%w: unknown verb %q", errBadCommand, fields[0])
	}
	args := fields[1:]

	cmd := command{verb: verb}
	if want < 0 {
		if len(args) != 1 {
			return command{}, fmt.Errorf("%w: %s takes one name", errBadCommand, verb)
		}
		cmd.arg = args[0]
		return cmd, nil
	}
	if len(args) != want {
		return command{}, fmt.Errorf("%w: %s takes %d cell(s), got %d", errBadCommand, verb, want, len(args))
	}
	for _, a := range args {
		c, err := parseCell(a)
		if err != nil {
			return command{}, err
		}
		cmd.cells = append(cmd.cells, c)
	}

	return cmd, nil
}

// parseCell parses "x,y".
func parseCell(s string) (gridgraph.Cell, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return gridgraph.Cell{}, fmt.Errorf("%w: cell %q is not x,y", errBadCommand, s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return gridgraph.Cell{}, fmt.Errorf("%w: cell %q: %v", errBadCommand, s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return gridgraph.Cell{}, fmt.Errorf("%w: cell %q: %v", errBadCommand, s, err)
	}

	return gridgraph.Cell{X: x, Y: y}, nil
}

// apply runs cmd against s.
func apply(s *session.Session, cmd command) error {
	switch cmd.verb {
	case "block":
		return s.ToggleBlocked(cmd.cells[0])
	case "source":
		return s.SetSource(cmd.cells[0])
	case "dest":
		return s.SetDest(cmd.cells[0])
	case "edge":
		_, err := s.ToggleEdge(cmd.cells[0], cmd.cells[1])
		return err
	case "preset":
		p, err := session.ParsePreset(cmd.arg)
		if err != nil {
			return err
		}
		return s.ApplyPreset(p)
	case "heuristic":
		m, err := heuristic.ParseMode(cmd.arg)
		if err != nil {
			return err
		}
		return s.SetHeuristic(m)
	case "blockall":
		return s.BlockAllExceptEndpoints()
	case "invert":
		return s.InvertAllExceptEndpoints()
	default:
		return fmt.Errorf("%w: unknown verb %q", errBadCommand, cmd.verb)
	}
}
