// Package tree converts a parsed document value into an immutable node
// tree suitable for rendering. Trees are rebuilt wholesale on every
// re-parse; nodes carry no mutable state.
package tree

import (
	"strconv"
	"strings"

	"github.com/jacoelho/vy/internal/document"
	"github.com/jacoelho/vy/internal/stack"
)

// DefaultRootKey labels the root node when no source name is known.
const DefaultRootKey = "document"

// Node is one element of the display tree. Path identifies the node by
// its position from the root, so state keyed by Path survives rebuilds
// of structurally identical documents.
type Node struct {
	Key      string
	Kind     document.Kind
	Count    int
	Value    any
	Path     string
	Root     bool
	Children []*Node
}

type frame struct {
	key    string
	value  any
	path   string
	parent *Node
}

// Build converts a document value into a node tree rooted at name.
// Construction is iterative: document nesting depth is user-controlled,
// so call recursion is off limits.
func Build(name string, v any) *Node {
	if name == "" {
		name = DefaultRootKey
	}

	work := stack.NewWithCapacity[frame](16)
	work.Push(frame{key: name, value: v})

	var root *Node
	for !work.IsEmpty() {
		current, _ := work.Pop()

		info := document.Classify(current.value)
		node := &Node{
			Key:   current.key,
			Kind:  info.Kind,
			Count: info.Count,
			Path:  current.path,
		}

		if current.parent == nil {
			node.Root = true
			root = node
		} else {
			current.parent.Children = append(current.parent.Children, node)
		}

		switch info.Kind {
		case document.KindArray:
			items := current.value.([]any)
			node.Children = make([]*Node, 0, len(items))
			// Children are pushed in reverse so pops yield original order.
			for i := len(items) - 1; i >= 0; i-- {
				key := strconv.Itoa(i)
				work.Push(frame{
					key:    key,
					value:  items[i],
					path:   childPath(current.path, key),
					parent: node,
				})
			}
		case document.KindObject:
			entries := current.value.(document.Map)
			node.Children = make([]*Node, 0, len(entries))
			for i := len(entries) - 1; i >= 0; i-- {
				work.Push(frame{
					key:    entries[i].Key,
					value:  entries[i].Value,
					path:   childPath(current.path, entries[i].Key),
					parent: node,
				})
			}
		default:
			node.Value = current.value
		}
	}

	return root
}

// Walk visits n and every descendant in depth-first pre-order.
func Walk(n *Node, visit func(*Node)) {
	if n == nil {
		return
	}

	work := stack.NewWithCapacity[*Node](16)
	work.Push(n)

	for !work.IsEmpty() {
		current, _ := work.Pop()
		visit(current)

		for i := len(current.Children) - 1; i >= 0; i-- {
			work.Push(current.Children[i])
		}
	}
}

// Descend resolves a sequence of child keys starting at n.
// It returns nil when any segment does not match a child.
func (n *Node) Descend(segments []string) *Node {
	current := n
	for _, segment := range segments {
		if current == nil {
			return nil
		}

		var next *Node
		for _, child := range current.Children {
			if child.Key == segment {
				next = child
				break
			}
		}
		current = next
	}

	return current
}

var segmentEscaper = strings.NewReplacer(`\`, `\\`, "/", `\/`)

// childPath extends a structural path by one key segment.
// Separator characters inside keys are escaped to keep paths unambiguous.
func childPath(parent, key string) string {
	return parent + "/" + segmentEscaper.Replace(key)
}
