// Command mazesolve solves text mazes with breadth-first or depth-first
// search and prints the explored cells and the route found.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "mazesolve:", err)
		os.Exit(1)
	}
}
