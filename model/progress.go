package model

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// progress prints one line per BFS level, in the tab-aligned style the
// checker's predicate-violation report uses for its state sequences.
type progress struct {
	w     io.Writer
	quiet bool

	nodesExplored int
}

func newProgress(w io.Writer, quiet bool) *progress {
	return &progress{w: w, quiet: quiet}
}

// level reports on entering a BFS level: depth searched, cumulative
// nodes explored, unique nodes visited, frontier size, next frontier
// size (the "example queue"), and terminating states found so far.
func (p *progress) level(depth, visitedLen, frontierLen, nextLen, terminatingLen int) {
	if p.quiet {
		return
	}
	tw := tabwriter.NewWriter(p.w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "depth=%d\texplored=%d\tvisited=%d\tfrontier=%d\tnext=%d\tterminating=%d\n",
		depth, p.nodesExplored, visitedLen, frontierLen, nextLen, terminatingLen)
	tw.Flush()
}
