package heuristic

import (
	"errors"
	"fmt"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// ErrUnknownMode indicates a Mode outside the supported set.
var ErrUnknownMode = errors.New("heuristic: unknown mode")

// Func estimates the distance between two cells.
type Func func(a, b gridgraph.Cell) float64

// Mode selects a distance function.
type Mode int

const (
	// Euclidean selects the straight-line distance.
	Euclidean Mode = iota
	// Manhattan selects the sum of axis distances.
	Manhattan
	// Diagonal selects the distance with unit-cost diagonal steps.
	Diagonal
)

var modeNames = map[Mode]string{
	Euclidean: "euclidean",
	Manhattan: "manhattan",
	Diagonal:  "diagonal",
}

// String returns the lower-case name of m.
func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}

	return fmt.Sprintf("mode(%d)", int(m))
}

// Func resolves m to its distance function.
func (m Mode) Func() (Func, error) {
	switch m {
	case Euclidean:
		return EuclideanDistance, nil
	case Manhattan:
		return ManhattanDistance, nil
	case Diagonal:
		return DiagonalDistance, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, int(m))
	}
}

// ParseMode maps a case-insensitive name ("euclidean", "manhattan",
// "diagonal") to its Mode.
func ParseMode(s string) (Mode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for m, n := range modeNames {
		if n == name {
			return m, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// EuclideanDistance returns sqrt(dx² + dy²).
func EuclideanDistance(a, b gridgraph.Cell) float64 {
	return planar.Distance(toPoint(a), toPoint(b))
}

// ManhattanDistance returns |dx| + |dy|.
func ManhattanDistance(a, b gridgraph.Cell) float64 {
	dx, dy := axisDeltas(a, b)

	return float64(dx + dy)
}

// DiagonalDistance returns (|dx| + |dy|) - min(|dx|, |dy|).
func DiagonalDistance(a, b gridgraph.Cell) float64 {
	dx, dy := axisDeltas(a, b)

	return float64(dx + dy - min(dx, dy))
}

// axisDeltas returns |dx| and |dy| between a and b.
func axisDeltas(a, b gridgraph.Cell) (dx, dy int) {
	dx, dy = a.X-b.X, a.Y-b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}

	return dx, dy
}

func toPoint(c gridgraph.Cell) orb.Point {
	return orb.Point{float64(c.X), float64(c.Y)}
}

var (
	_ Func = EuclideanDistance
	_ Func = ManhattanDistance
	_ Func = DiagonalDistance
)
