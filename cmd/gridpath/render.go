package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/session"
)

// render draws the grid row by row, y=0 first:
//
//	S source   D destination   # blocked   * path   . open
func render(w io.Writer, s *session.Session) error {
	g := s.Grid()
	onPath := mapset.New[gridgraph.Cell]()
	for _, c := range s.Path() {
		onPath.Put(c)
	}

	var b strings.Builder
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if x > 0 {
				b.WriteByte(' ')
			}
			b.WriteByte(glyph(s, onPath, gridgraph.Cell{X: x, Y: y}))
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())

	return err
}

func glyph(s *session.Session, onPath mapset.Set[gridgraph.Cell], c gridgraph.Cell) byte {
	switch {
	case c == s.Source():
		return 'S'
	case c == s.Dest():
		return 'D'
	}
	n, _ := s.Grid().NodeAt(c)
	switch {
	case n.Blocked:
		return '#'
	case onPath.Has(c):
		return '*'
	default:
		return '.'
	}
}

// summary prints the outcome of the last search.
func summary(w io.Writer, s *session.Session) error {
	res := s.Result()
	if !res.Found {
		_, err := fmt.Fprintf(w, "no path from %s to %s (expanded %d)\n", s.Source(), s.Dest(), res.Expanded)
		return err
	}
	parts := make([]string, 0, len(res.Path))
	for _, c := range s.Path() {
		parts = append(parts, "("+c.String()+")")
	}
	_, err := fmt.Fprintf(w, "path %s, cost %.4f, expanded %d\n", strings.Join(parts, " "), res.Cost, res.Expanded)

	return err
}
