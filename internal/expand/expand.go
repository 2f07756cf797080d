// Package expand owns the open/closed state of container nodes.
//
// State is keyed by structural path rather than node identity, because
// the node tree is rebuilt wholesale on every re-parse. It is the single
// source of truth: render layers only read it.
package expand

import (
	"github.com/jacoelho/vy/internal/tree"
)

// State maps container node paths to their open flag. Paths absent from
// the map use the default policy: root open, everything else closed.
type State struct {
	open map[string]bool
}

func NewState() *State {
	return &State{
		open: make(map[string]bool),
	}
}

// IsOpen reports whether a node's subtree is visually shown.
// Leaf nodes are never open.
func (s *State) IsOpen(n *tree.Node) bool {
	if n == nil || !n.Kind.Container() {
		return false
	}
	if open, ok := s.open[n.Path]; ok {
		return open
	}

	return n.Root
}

// Toggle flips the open flag of a single container node.
// Descendants are unaffected.
func (s *State) Toggle(n *tree.Node) {
	if n == nil || !n.Kind.Container() {
		return
	}

	s.open[n.Path] = !s.IsOpen(n)
}

// SetSubtree sets the open flag on n and every descendant container,
// visiting each node exactly once.
func (s *State) SetSubtree(n *tree.Node, open bool) {
	tree.Walk(n, func(current *tree.Node) {
		if current.Kind.Container() {
			s.open[current.Path] = open
		}
	})
}

// ExpandAll opens every container in the tree, including containers
// currently hidden under closed ancestors.
func (s *State) ExpandAll(root *tree.Node) {
	s.SetSubtree(root, true)
}

// CollapseAll closes every container in the tree, the root included.
func (s *State) CollapseAll(root *tree.Node) {
	s.SetSubtree(root, false)
}

// Reset drops all recorded state, restoring defaults for the next tree.
func (s *State) Reset() {
	clear(s.open)
}
