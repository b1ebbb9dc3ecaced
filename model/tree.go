package model

import (
	"modelcheck/state"
	"modelcheck/tree"
)

// ExplorationTree builds a prefix tree of every terminating state's
// causal history, sharing common prefixes: two runs that agree on their
// first k diffs share the same path for k steps before branching. It is
// a diagnostic export only, useful for visualizing how a search reached
// its various outcomes; it plays no part in the search itself.
func ExplorationTree(res Result) *tree.Tree[string] {
	root := tree.New("start", func(a, b string) bool { return a == b })
	for _, s := range res.Terminating {
		insertHistory(&root, s)
	}
	return &root
}

func insertHistory(root *tree.Tree[string], s state.State) {
	node := root
	for _, d := range s.History {
		label := d.String()
		if child := node.GetChild(label); child != nil {
			node = child
		} else {
			node = node.AddChild(label)
		}
	}
}
