package session

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/heuristic"
)

// Preset names a bulk topology rebuild.
type Preset int

const (
	// PresetFull links all 8 neighbours and forces Euclidean.
	PresetFull Preset = iota
	// PresetOrthogonal links N, S, E, W and forces Manhattan.
	PresetOrthogonal
	// PresetDiagonal links NE, NW, SE, SW and forces Diagonal.
	PresetDiagonal
	// PresetNone removes every edge and keeps the heuristic.
	PresetNone
)

// presetSpec is the connectivity and heuristic a preset installs.
type presetSpec struct {
	name   string
	conn   gridgraph.Connectivity
	mode   heuristic.Mode
	forces bool
}

var presets = map[Preset]presetSpec{
	PresetFull:       {name: "full", conn: gridgraph.Conn8, mode: heuristic.Euclidean, forces: true},
	PresetOrthogonal: {name: "orthogonal", conn: gridgraph.ConnOrthogonal, mode: heuristic.Manhattan, forces: true},
	PresetDiagonal:   {name: "diagonal", conn: gridgraph.ConnDiagonal, mode: heuristic.Diagonal, forces: true},
	PresetNone:       {name: "none", conn: gridgraph.ConnNone},
}

// String returns the lower-case name of p.
func (p Preset) String() string {
	if ps, ok := presets[p]; ok {
		return ps.name
	}

	return fmt.Sprintf("preset(%d)", int(p))
}

// Connectivity returns the pattern p rebuilds with.
func (p Preset) Connectivity() (gridgraph.Connectivity, error) {
	ps, ok := presets[p]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownPreset, int(p))
	}

	return ps.conn, nil
}

// ParsePreset maps a case-insensitive name ("full", "orthogonal",
// "diagonal", "none") to its Preset.
func ParsePreset(s string) (Preset, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for p, ps := range presets {
		if ps.name == name {
			return p, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownPreset, s)
}
