package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/gridgraph"
	"github.com/katalvlaran/mazepath/internal/config"
	"github.com/katalvlaran/mazepath/internal/logging"
	"github.com/katalvlaran/mazepath/search"
	"github.com/katalvlaran/mazepath/solver"
)

// flags shared by every subcommand.
type rootFlags struct {
	configPath string
	file       string
}

// flags of the solve command.
type solveFlags struct {
	strategy    string
	trace       bool
	showVisited bool
}

func newRootCmd() *cobra.Command {
	rf := &rootFlags{}
	root := &cobra.Command{
		Use:   "mazesolve",
		Short: "Solve grid mazes with BFS or DFS",
		Long: `Solve a text maze and show how the search explored it.

Maze format, one row per line:
  .  open cell
  #  wall
  S  start
  E  end`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&rf.configPath, "config", "c", "", "path to a YAML config file")
	root.PersistentFlags().StringVarP(&rf.file, "file", "f", "-", "maze file ('-' reads stdin)")

	root.AddCommand(newSolveCmd(rf), newGraphCmd(rf))
	return root
}

func newSolveCmd(rf *rootFlags) *cobra.Command {
	sf := &solveFlags{}
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Find a path from S to E",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(rf.configPath)
			if err != nil {
				return err
			}
			// flags override the config file
			if cmd.Flags().Changed("strategy") {
				cfg.Strategy = sf.strategy
			}
			if cmd.Flags().Changed("trace") {
				cfg.Output.Trace = sf.trace
			}
			if cmd.Flags().Changed("show-visited") {
				cfg.Output.ShowVisited = sf.showVisited
			}
			if err = cfg.Validate(); err != nil {
				return err
			}

			log, err := logging.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
			if err != nil {
				return err
			}
			g, err := readGrid(cmd.InOrStdin(), rf.file)
			if err != nil {
				return err
			}
			return solve(cmd, cfg, g, log)
		},
	}
	cmd.Flags().StringVarP(&sf.strategy, "strategy", "s", "bfs", "search strategy: "+strings.Join(strategyNames, " or "))
	cmd.Flags().BoolVar(&sf.trace, "trace", false, "print each visit event")
	cmd.Flags().BoolVar(&sf.showVisited, "show-visited", true, "mark visited cells with 'o'")
	return cmd
}

func newGraphCmd(rf *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "graph",
		Short: "Print the adjacency mapping of a maze",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := readGrid(cmd.InOrStdin(), rf.file)
			if err != nil {
				return err
			}
			adj := gridgraph.Build(g)
			out := cmd.OutOrStdout()
			for _, k := range adj.Keys() {
				fmt.Fprintf(out, "%v -> %v\n", k, adj.Neighbors(k))
			}
			return nil
		},
	}
}

// solve runs a background job and renders its result.
func solve(cmd *cobra.Command, cfg config.Config, g *grid.Grid, log *slog.Logger) error {
	out := cmd.OutOrStdout()
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	job := solver.Start(ctx, cfg.SearchStrategy(), g, solver.WithLogger(log))

	visited := make(map[grid.Coord]bool)
	for c := range job.Visits() {
		visited[c] = true
		if cfg.Output.Trace {
			fmt.Fprintln(out, "visit", c)
		}
	}
	res, err := job.Wait()
	if err != nil {
		return err
	}

	if !cfg.Output.ShowVisited {
		visited = nil
	}
	fmt.Fprint(out, render(g, visited, res.Path))
	fmt.Fprintf(out, "Status: %s\n", res.Message())
	return nil
}

// readGrid parses the maze from name, or from stdin when name is "-".
func readGrid(stdin io.Reader, name string) (*grid.Grid, error) {
	if name == "-" || name == "" {
		return grid.Parse(stdin)
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return grid.Parse(f)
}

// strategyNames is used in help text.
var strategyNames = []string{search.BreadthFirst.String(), search.DepthFirst.String()}
