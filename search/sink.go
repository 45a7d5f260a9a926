package search

import (
	"context"

	"github.com/katalvlaran/mazepath/grid"
)

// VisitSink receives one call per settled cell, start and end excluded,
// in settle order. The search waits for it to return before continuing.
// A non-nil error is treated as an external interruption: the search stops
// and reports an empty Path.
type VisitSink func(cell grid.Cell) error

// Collector is an in-memory VisitSink target. It is not safe for
// concurrent use.
type Collector struct {
	cells []grid.Cell
}

// Sink returns a VisitSink appending to c.
func (c *Collector) Sink() VisitSink {
	return func(cell grid.Cell) error {
		c.cells = append(c.cells, cell)
		return nil
	}
}

// Cells returns the collected cells in visit order.
func (c *Collector) Cells() []grid.Cell {
	out := make([]grid.Cell, len(c.cells))
	copy(out, c.cells)
	return out
}

// Coords returns the coordinates of the collected cells in visit order.
func (c *Collector) Coords() []grid.Coord {
	out := make([]grid.Coord, len(c.cells))
	for i, cell := range c.cells {
		out[i] = cell.Coord
	}
	return out
}

// Len returns the number of collected visit events.
func (c *Collector) Len() int { return len(c.cells) }

// Reset discards collected events.
func (c *Collector) Reset() { c.cells = c.cells[:0] }

// ChannelSink returns a VisitSink that sends each coordinate on ch.
// The send blocks until the consumer receives it; if ctx is done first the
// sink returns ctx.Err(), which interrupts the search.
func ChannelSink(ctx context.Context, ch chan<- grid.Coord) VisitSink {
	return func(cell grid.Cell) error {
		select {
		case ch <- cell.Coord:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
