package search

import (
	"fmt"

	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/gridgraph"
)

// walker encapsulates the per-invocation state shared by both strategies.
// A fresh walker is built for every call; nothing is reused across searches.
type walker struct {
	strategy   Strategy
	adj        *gridgraph.Adjacency
	start, end grid.Coord
	sink       VisitSink
	opts       Options
	visited    map[grid.Coord]bool
	parent     map[grid.Coord]grid.Coord
	emitted    int
}

// FindPath runs strategy s from start to end over adj, reporting each
// settled cell to sink, and returns the path found.
//
// Results:
//   - nil, ErrMissingEndpoint   start or end is nil; sink is never called.
//   - nil, ErrInvalidEndpoint   start or end is a wall; sink is never called.
//   - nil, ErrUnknownStrategy   s is not BreadthFirst or DepthFirst.
//   - Path{}, nil               end is unreachable, or the search was interrupted.
//   - path, nil                 start → end inclusive.
//
// A nil adj behaves as an empty mapping; a nil sink discards events.
func FindPath(s Strategy, start, end *grid.Cell, adj *gridgraph.Adjacency, sink VisitSink, opts ...Option) (Path, error) {
	switch s {
	case BreadthFirst:
		return BFS(start, end, adj, sink, opts...)
	case DepthFirst:
		return DFS(start, end, adj, sink, opts...)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownStrategy, s)
	}
}

// newWalker validates endpoints and prepares clean search state.
func newWalker(s Strategy, start, end *grid.Cell, adj *gridgraph.Adjacency, sink VisitSink, opts []Option) (*walker, error) {
	if start == nil || end == nil {
		return nil, ErrMissingEndpoint
	}
	if start.IsWall() || end.IsWall() {
		return nil, fmt.Errorf("%w: start=%v end=%v", ErrInvalidEndpoint, start.Coord, end.Coord)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if sink == nil {
		sink = func(grid.Cell) error { return nil }
	}

	n := adj.Len()
	return &walker{
		strategy: s,
		adj:      adj,
		start:    start.Coord,
		end:      end.Coord,
		sink:     sink,
		opts:     o,
		visited:  make(map[grid.Coord]bool, n),
		parent:   make(map[grid.Coord]grid.Coord, n),
	}, nil
}

// run executes loop and converts any interruption into an empty Path.
func (w *walker) run(loop func() (Path, error)) Path {
	log := w.opts.Logger.With("strategy", w.strategy.String(), "start", w.start.String(), "end", w.end.String())
	log.Debug("search started", "cells", w.adj.Len())

	path, err := loop()
	if err != nil {
		log.Debug("search interrupted", "visited", w.emitted, "error", err)
		return Path{}
	}
	if path == nil {
		path = Path{}
	}
	log.Debug("search finished", "visited", w.emitted, "found", !path.Empty(), "steps", path.Len())

	return path
}

// interrupted returns the context error once the search has been cancelled.
func (w *walker) interrupted() error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
		return nil
	}
}

// settle reports cur to the sink unless it is the start or the end.
func (w *walker) settle(cur grid.Coord) error {
	if cur == w.start || cur == w.end {
		return nil
	}
	cell, ok := w.adj.Cell(cur)
	if !ok {
		cell = grid.NewCell(cur.Row, cur.Col)
	}
	if err := w.sink(cell); err != nil {
		return fmt.Errorf("search: visit sink at %v: %w", cur, err)
	}
	w.emitted++

	return nil
}
