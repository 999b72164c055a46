package session

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/heuristic"
)

// Session is a single-user editing session over one grid.
type Session struct {
	grid *gridgraph.Grid
	mode heuristic.Mode
	h    heuristic.Func

	source, dest int
	relax        astar.RelaxPolicy
	last         *astar.Result

	log *slog.Logger
	ctx context.Context
}

// New creates the grid, installs the initial preset, places the endpoints
// and runs a first search so the session is readable straight away.
//
// Returns gridgraph.ErrBadDimensions for non-positive sizes and
// gridgraph.ErrInvalidCoordinate for endpoints outside the grid.
func New(opts ...Option) (*Session, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	g, err := gridgraph.NewGrid(cfg.Width, cfg.Height)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	conn, err := cfg.Preset.Connectivity()
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	if err = g.Connect(conn); err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	h, err := cfg.Heuristic.Func()
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	srcCell := gridgraph.Cell{X: 0, Y: cfg.Height - 1}
	if cfg.Source != nil {
		srcCell = *cfg.Source
	}
	dstCell := gridgraph.Cell{X: cfg.Width - 1, Y: 0}
	if cfg.Dest != nil {
		dstCell = *cfg.Dest
	}
	src, err := g.ID(srcCell)
	if err != nil {
		return nil, fmt.Errorf("session: source: %w", err)
	}
	dst, err := g.ID(dstCell)
	if err != nil {
		return nil, fmt.Errorf("session: dest: %w", err)
	}

	s := &Session{
		grid:   g,
		mode:   cfg.Heuristic,
		h:      h,
		source: src,
		dest:   dst,
		relax:  cfg.Relax,
		log:    cfg.Logger,
		ctx:    cfg.Ctx,
	}
	s.log.DebugContext(s.ctx, "session created",
		slog.Int("width", cfg.Width),
		slog.Int("height", cfg.Height),
		slog.String("preset", cfg.Preset.String()),
		slog.String("heuristic", cfg.Heuristic.String()),
		slog.String("source", srcCell.String()),
		slog.String("dest", dstCell.String()),
	)
	if _, err = s.FindPath(); err != nil {
		return nil, err
	}

	return s, nil
}

// Grid returns the session's grid for read access (node state, adjacency).
// Mutate it only through Session methods, or call FindPath afterwards.
func (s *Session) Grid() *gridgraph.Grid { return s.grid }

// Source returns the current source cell.
func (s *Session) Source() gridgraph.Cell { return s.grid.Coordinate(s.source) }

// Dest returns the current destination cell.
func (s *Session) Dest() gridgraph.Cell { return s.grid.Coordinate(s.dest) }

// Heuristic returns the active heuristic mode.
func (s *Session) Heuristic() heuristic.Mode { return s.mode }

// RelaxPolicy returns the relaxation policy used by searches.
func (s *Session) RelaxPolicy() astar.RelaxPolicy { return s.relax }

// Result returns the outcome of the last search.
func (s *Session) Result() *astar.Result { return s.last }

// Path returns the cells of the last found path, source first, or nil when
// the destination was unreachable.
func (s *Session) Path() []gridgraph.Cell {
	if s.last == nil || !s.last.Found {
		return nil
	}
	out := make([]gridgraph.Cell, len(s.last.Path))
	for i, id := range s.last.Path {
		out[i] = s.grid.Coordinate(id)
	}

	return out
}

// FindPath runs a search from the current source to the current destination
// with the active heuristic and stores the result.
func (s *Session) FindPath() (*astar.Result, error) {
	start := time.Now()
	ctx, span := getTracer().Start(s.ctx, "session.Session.FindPath",
		trace.WithAttributes(
			attribute.Int("grid.width", s.grid.Width),
			attribute.Int("grid.height", s.grid.Height),
			attribute.String("heuristic", s.mode.String()),
			attribute.String("relax", s.relax.String()),
			attribute.String("source", s.Source().String()),
			attribute.String("dest", s.Dest().String()),
		),
	)
	defer span.End()

	res, err := astar.FindPath(s.grid, s.source, s.dest, s.h,
		astar.WithReturnPath(),
		astar.WithRelaxPolicy(s.relax),
	)
	searchDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		searchesTotal.WithLabelValues("error").Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, "search failed")
		s.log.ErrorContext(ctx, "search failed", slog.Any("error", err))
		return nil, fmt.Errorf("session: find path: %w", err)
	}

	outcome := "unreachable"
	if res.Found {
		outcome = "found"
	}
	searchesTotal.WithLabelValues(outcome).Inc()
	expandedNodes.Observe(float64(res.Expanded))

	span.SetAttributes(
		attribute.Bool("found", res.Found),
		attribute.Int("expanded", res.Expanded),
		attribute.Int("pushed", res.Pushed),
		attribute.Int("path_len", len(res.Path)),
	)
	span.SetStatus(codes.Ok, outcome)

	if s.log.Enabled(ctx, slog.LevelDebug) {
		s.log.DebugContext(ctx, "search finished",
			slog.String("result", outcome),
			slog.Float64("cost", res.Cost),
			slog.Int("expanded", res.Expanded),
			slog.Int("path_len", len(res.Path)),
		)
	}
	s.last = res

	return res, nil
}

// ToggleBlocked flips the blocked flag of c and searches again.
func (s *Session) ToggleBlocked(c gridgraph.Cell) error {
	return s.edit("toggle_blocked", []slog.Attr{slog.String("cell", c.String())}, func() error {
		return s.grid.ToggleBlocked(c)
	})
}

// SetSource moves the source to c and searches again.
func (s *Session) SetSource(c gridgraph.Cell) error {
	return s.edit("set_source", []slog.Attr{slog.String("cell", c.String())}, func() error {
		id, err := s.grid.ID(c)
		if err != nil {
			return err
		}
		s.source = id
		return nil
	})
}

// SetDest moves the destination to c and searches again.
func (s *Session) SetDest(c gridgraph.Cell) error {
	return s.edit("set_dest", []slog.Attr{slog.String("cell", c.String())}, func() error {
		id, err := s.grid.ID(c)
		if err != nil {
			return err
		}
		s.dest = id
		return nil
	})
}

// ToggleEdge links or unlinks a and b on both sides and searches again.
// linked reports whether the edge exists afterwards.
func (s *Session) ToggleEdge(a, b gridgraph.Cell) (linked bool, err error) {
	err = s.edit("toggle_edge", []slog.Attr{slog.String("a", a.String()), slog.String("b", b.String())}, func() error {
		var terr error
		linked, terr = s.grid.ToggleEdge(a, b)
		return terr
	})

	return linked, err
}

// SetHeuristic switches the heuristic mode and searches again.
func (s *Session) SetHeuristic(m heuristic.Mode) error {
	return s.edit("set_heuristic", []slog.Attr{slog.String("mode", m.String())}, func() error {
		h, err := m.Func()
		if err != nil {
			return err
		}
		s.mode, s.h = m, h
		return nil
	})
}

// ApplyPreset rebuilds every neighbour list for p, installs the heuristic p
// forces (if any) and searches again.
func (s *Session) ApplyPreset(p Preset) error {
	return s.edit("apply_preset", []slog.Attr{slog.String("preset", p.String())}, func() error {
		ps, ok := presets[p]
		if !ok {
			return fmt.Errorf("%w: %d", ErrUnknownPreset, int(p))
		}
		// Resolve the heuristic first: a failure must leave the grid untouched.
		h := s.h
		if ps.forces {
			var err error
			if h, err = ps.mode.Func(); err != nil {
				return err
			}
		}
		if err := s.grid.Connect(ps.conn); err != nil {
			return err
		}
		if ps.forces {
			s.mode, s.h = ps.mode, h
		}
		return nil
	})
}

// OrthogonalOnly applies PresetOrthogonal.
func (s *Session) OrthogonalOnly() error { return s.ApplyPreset(PresetOrthogonal) }

// DiagonalOnly applies PresetDiagonal.
func (s *Session) DiagonalOnly() error { return s.ApplyPreset(PresetDiagonal) }

// Full applies PresetFull.
func (s *Session) Full() error { return s.ApplyPreset(PresetFull) }

// RemoveEdges applies PresetNone.
func (s *Session) RemoveEdges() error { return s.ApplyPreset(PresetNone) }

// BlockAllExceptEndpoints blocks every node other than the source and the
// destination, then searches again.
func (s *Session) BlockAllExceptEndpoints() error {
	return s.edit("block_all", nil, func() error {
		return s.eachNonEndpoint(func(c gridgraph.Cell) error {
			return s.grid.SetBlocked(c, true)
		})
	})
}

// InvertAllExceptEndpoints flips the blocked flag of every node other than
// the source and the destination, then searches again.
func (s *Session) InvertAllExceptEndpoints() error {
	return s.edit("invert_all", nil, func() error {
		return s.eachNonEndpoint(s.grid.ToggleBlocked)
	})
}

func (s *Session) eachNonEndpoint(fn func(c gridgraph.Cell) error) error {
	for id := 0; id < s.grid.Len(); id++ {
		if id == s.source || id == s.dest {
			continue
		}
		if err := fn(s.grid.Coordinate(id)); err != nil {
			return err
		}
	}

	return nil
}

// edit applies one mutation and, if it succeeded, runs a fresh search.
// Mutations validate before changing anything, so a rejected edit leaves
// both the grid and the last result untouched.
func (s *Session) edit(op string, attrs []slog.Attr, apply func() error) error {
	if err := apply(); err != nil {
		editsTotal.WithLabelValues(op, "rejected").Inc()
		s.log.LogAttrs(s.ctx, slog.LevelWarn, "edit rejected",
			append([]slog.Attr{slog.String("op", op), slog.Any("error", err)}, attrs...)...)
		return fmt.Errorf("session: %s: %w", op, err)
	}
	editsTotal.WithLabelValues(op, "applied").Inc()
	s.log.LogAttrs(s.ctx, slog.LevelDebug, "edit applied",
		append([]slog.Attr{slog.String("op", op)}, attrs...)...)

	_, err := s.FindPath()
	return err
}
