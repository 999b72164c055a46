package session

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/heuristic"
)

// Default dimensions of a new session.
const (
	DefaultWidth  = 12
	DefaultHeight = 12
)

// Options configures New.
//
// Width, Height – grid dimensions; must be positive.
// Source, Dest  – initial endpoints; nil means bottom-left / top-right.
// Preset        – initial topology (PresetFull by default).
// Heuristic     – initial mode (Euclidean by default). The initial preset
// does not override it.
// Relax         – relaxation policy passed to every search.
// Logger, Ctx   – logging sink and parent context for spans and logs.
type Options struct {
	Width, Height int
	Source, Dest  *gridgraph.Cell
	Preset        Preset
	Heuristic     heuristic.Mode
	Relax         astar.RelaxPolicy
	Logger        *slog.Logger
	Ctx           context.Context
}

// Option represents a functional option for configuring New.
type Option func(*Options)

// DefaultOptions returns a 12×12 fully connected Euclidean session with the
// source in the bottom-left and the destination in the top-right corner.
func DefaultOptions() Options {
	return Options{
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		Preset:    PresetFull,
		Heuristic: heuristic.Euclidean,
		Relax:     astar.RelaxAll,
		Logger:    slog.Default(),
		Ctx:       context.Background(),
	}
}

// WithSize sets the grid dimensions. Non-positive values make New fail
// with gridgraph.ErrBadDimensions.
func WithSize(width, height int) Option {
	return func(o *Options) {
		o.Width, o.Height = width, height
	}
}

// WithSource sets the initial source cell.
func WithSource(c gridgraph.Cell) Option {
	return func(o *Options) {
		o.Source = &c
	}
}

// WithDest sets the initial destination cell.
func WithDest(c gridgraph.Cell) Option {
	return func(o *Options) {
		o.Dest = &c
	}
}

// WithPreset selects the initial topology.
// Panics on an unknown preset.
func WithPreset(p Preset) Option {
	if _, ok := presets[p]; !ok {
		panic(fmt.Sprintf("session: WithPreset(%d)", int(p)))
	}
	return func(o *Options) {
		o.Preset = p
	}
}

// WithHeuristic selects the initial heuristic mode.
// Panics on an unknown mode.
func WithHeuristic(m heuristic.Mode) Option {
	if _, err := m.Func(); err != nil {
		panic(fmt.Sprintf("session: WithHeuristic(%d)", int(m)))
	}
	return func(o *Options) {
		o.Heuristic = m
	}
}

// WithRelaxPolicy sets the relaxation policy used by every search.
// Panics on values other than astar.RelaxAll and astar.RelaxTraversable.
func WithRelaxPolicy(p astar.RelaxPolicy) Option {
	if p != astar.RelaxAll && p != astar.RelaxTraversable {
		panic(fmt.Sprintf("session: WithRelaxPolicy(%d)", int(p)))
	}
	return func(o *Options) {
		o.Relax = p
	}
}

// WithLogger sets the structured logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("session: WithLogger(nil)")
	}
	return func(o *Options) {
		o.Logger = l
	}
}

// WithContext sets the parent context for search spans and log records.
// Panics on nil.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic("session: WithContext(nil)")
	}
	return func(o *Options) {
		o.Ctx = ctx
	}
}
