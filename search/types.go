// Package search defines the strategies, options, sinks and sentinel errors
// for uninformed path search over a gridgraph.Adjacency.
package search

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/mazepath/grid"
)

// Sentinel errors for search invocation.
var (
	// ErrMissingEndpoint is returned when start or end is nil. It is the
	// "nothing was asked" indicator, distinct from an empty Path.
	ErrMissingEndpoint = errors.New("search: start or end is not set")

	// ErrInvalidEndpoint is returned when start or end is a wall. It wraps
	// ErrMissingEndpoint, so errors.Is treats both the same way.
	ErrInvalidEndpoint = fmt.Errorf("%w: endpoint is a wall", ErrMissingEndpoint)

	// ErrUnknownStrategy is returned for a Strategy value or name that is
	// neither breadth-first nor depth-first.
	ErrUnknownStrategy = errors.New("search: unknown strategy")
)

// Strategy selects the frontier discipline used by FindPath.
type Strategy int

const (
	// BreadthFirst explores with a FIFO queue and returns a minimum-edge path.
	BreadthFirst Strategy = iota
	// DepthFirst explores with a LIFO stack; any simple path is acceptable.
	DepthFirst
)

// String returns the short name ("bfs" or "dfs").
func (s Strategy) String() string {
	switch s {
	case BreadthFirst:
		return "bfs"
	case DepthFirst:
		return "dfs"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps "bfs", "breadth-first", "dfs" or "depth-first"
// (case-insensitive) to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bfs", "breadth-first", "breadthfirst":
		return BreadthFirst, nil
	case "dfs", "depth-first", "depthfirst":
		return DepthFirst, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// Path is an ordered sequence of cells from start to end inclusive.
// An empty, non-nil Path means the search ran and found nothing.
type Path []grid.Coord

// Len returns the number of edges in the path (cells minus one).
func (p Path) Len() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Empty reports whether the path has no cells.
func (p Path) Empty() bool { return len(p) == 0 }

// String formats the path as "(r,c) -> (r,c) -> ...".
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, c := range p {
		parts[i] = c.String()
	}
	return strings.Join(parts, " -> ")
}

// Option configures a search via functional arguments.
type Option func(*Options)

// Options holds the context and logger of a single search.
type Options struct {
	// Ctx allows an external interruption. A cancelled search returns an
	// empty Path, never a partial one.
	Ctx context.Context

	// Logger receives Debug records for start, finish and interruption.
	Logger *slog.Logger
}

// DefaultOptions returns Options with a background context and a logger
// that discards everything.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithContext sets the context checked once per frontier step.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
