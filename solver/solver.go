// Package solver runs a search on a background goroutine and streams its
// visit events to a foreground consumer, such as an editor that highlights
// cells as they are explored.
//
// A Job snapshots the grid when it starts: the start and end cells are
// copied and the adjacency is built before Start returns, so later edits to
// the grid do not race with the running search.
//
// Visits are back-pressured. The search blocks until each event is
// received, so a consumer must either drain Visits or Cancel the job;
// otherwise Wait never returns.
package solver

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/gridgraph"
	"github.com/katalvlaran/mazepath/search"
)

// Job is a single background search.
type Job struct {
	// ID identifies the job in logs.
	ID uuid.UUID

	visits  chan grid.Coord
	cancel  context.CancelFunc
	group   *errgroup.Group
	outcome Outcome
}

// Start launches strategy s on g. The returned job is already running.
func Start(ctx context.Context, s search.Strategy, g *grid.Grid, opts ...Option) *Job {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	ctx, cancel := context.WithCancel(ctx)
	group, gctx := errgroup.WithContext(ctx)
	j := &Job{
		ID:      uuid.New(),
		visits:  make(chan grid.Coord, o.buffer),
		cancel:  cancel,
		group:   group,
		outcome: Outcome{Strategy: s},
	}
	log := o.logger.With("job", j.ID.String(), "strategy", s.String())

	start, end := snapshot(g)
	adj := gridgraph.Build(g)

	var sink search.VisitSink
	if o.noVisits {
		close(j.visits)
		sink = func(grid.Cell) error {
			j.outcome.Visited++
			return nil
		}
	} else {
		forward := search.ChannelSink(gctx, j.visits)
		sink = func(c grid.Cell) error {
			if err := forward(c); err != nil {
				return err
			}
			j.outcome.Visited++
			return nil
		}
	}

	group.Go(func() error {
		if !o.noVisits {
			defer close(j.visits)
		}
		log.Info("job started", "cells", adj.Len())

		path, err := search.FindPath(s, start, end, adj, sink, search.WithContext(gctx), search.WithLogger(log))
		switch {
		case errors.Is(err, search.ErrMissingEndpoint):
			j.outcome.Status = StatusMissingEndpoint
			log.Info("job skipped", "reason", err.Error())
			return nil
		case err != nil:
			log.Error("job failed", "error", err)
			return err
		case path.Empty():
			j.outcome.Status = StatusNoPath
		default:
			j.outcome.Status = StatusFound
		}
		j.outcome.Path = path
		log.Info("job finished", "status", j.outcome.Status.String(), "steps", j.outcome.Steps(), "visited", j.outcome.Visited)

		return nil
	})

	return j
}

// snapshot copies the grid's start and end cells so the search does not
// share them with the editor.
func snapshot(g *grid.Grid) (start, end *grid.Cell) {
	if g == nil {
		return nil, nil
	}
	if s := g.Start(); s != nil {
		c := *s
		start = &c
	}
	if e := g.End(); e != nil {
		c := *e
		end = &c
	}
	return start, end
}

// Visits returns the ordered stream of visited coordinates. It is closed
// when the search ends.
func (j *Job) Visits() <-chan grid.Coord { return j.visits }

// Cancel interrupts the search. The job then reports StatusNoPath.
func (j *Job) Cancel() { j.cancel() }

// Wait blocks until the search ends and returns its outcome. The error is
// non-nil only for an invalid strategy.
func (j *Job) Wait() (Outcome, error) {
	err := j.group.Wait()
	j.cancel()
	return j.outcome, err
}
