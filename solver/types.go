package solver

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/mazepath/search"
)

// Status classifies how a job ended.
type Status int

const (
	// StatusMissingEndpoint: start or end was not placed (or is a wall);
	// no search ran.
	StatusMissingEndpoint Status = iota
	// StatusNoPath: the search ran and the end is unreachable, or the job
	// was cancelled.
	StatusNoPath
	// StatusFound: a path was found.
	StatusFound
)

func (s Status) String() string {
	switch s {
	case StatusMissingEndpoint:
		return "missing-endpoint"
	case StatusNoPath:
		return "no-path"
	case StatusFound:
		return "found"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Outcome is the final result of a job.
type Outcome struct {
	Strategy search.Strategy
	Status   Status
	Path     search.Path
	// Visited counts the visit events delivered.
	Visited int
}

// Steps returns the number of moves on the path.
func (o Outcome) Steps() int { return o.Path.Len() }

// Message returns a one-line, user-facing summary.
func (o Outcome) Message() string {
	switch o.Status {
	case StatusMissingEndpoint:
		return "Please set both a Start (S) and End (E) point."
	case StatusNoPath:
		return "No path found! Maze is blocked."
	default:
		kind := "(Depth-First - DFS)"
		if o.Strategy == search.BreadthFirst {
			kind = "(Optimal - BFS)"
		}
		return fmt.Sprintf("Path found! Total steps: %d %s", o.Steps(), kind)
	}
}

// Option configures a job.
type Option func(*options)

type options struct {
	logger   *slog.Logger
	buffer   int
	noVisits bool
}

func defaultOptions() options {
	return options{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// WithLogger sets the job logger; records carry a "job" attribute.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithBuffer sets the capacity of the visit channel. Zero (the default)
// makes every visit a hand-off to the consumer.
func WithBuffer(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.buffer = n
		}
	}
}

// WithoutVisits runs the job without streaming visits; Visits returns a
// closed channel and only Outcome.Visited is populated.
func WithoutVisits() Option {
	return func(o *options) { o.noVisits = true }
}
