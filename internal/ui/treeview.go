package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/jacoelho/vy/internal/expand"
	"github.com/jacoelho/vy/internal/render"
	"github.com/jacoelho/vy/internal/stack"
	"github.com/jacoelho/vy/internal/tree"
)

// visibleNode is a tree node currently shown in the tree pane.
type visibleNode struct {
	node  *tree.Node
	depth int
}

// visibleNodes flattens the tree into the rows the pane displays.
// Children of closed containers are skipped.
func visibleNodes(root *tree.Node, state *expand.State) []visibleNode {
	if root == nil {
		return nil
	}

	var out []visibleNode

	frames := stack.New[visibleNode]()
	frames.Push(visibleNode{node: root})

	for !frames.IsEmpty() {
		v, _ := frames.Pop()
		out = append(out, v)

		if !v.node.Kind.Container() || !state.IsOpen(v.node) {
			continue
		}

		for i := len(v.node.Children) - 1; i >= 0; i-- {
			frames.Push(visibleNode{node: v.node.Children[i], depth: v.depth + 1})
		}
	}

	return out
}

// rowParts holds the plain text segments of a tree row before styling.
type rowParts struct {
	prefix string
	key    string
	badge  string
	sep    string
	value  string
	class  render.Class
}

func (m *Model) rowParts(v visibleNode) rowParts {
	p := rowParts{
		key:   v.node.Key,
		badge: "[" + render.Badge(v.node.Kind) + "]",
	}

	marker := "  "
	if v.node.Kind.Container() {
		if m.state.IsOpen(v.node) {
			marker = "▾ "
		} else {
			marker = "▸ "
		}
	}
	p.prefix = strings.Repeat("  ", v.depth) + marker

	if v.node.Kind.Container() {
		if !m.state.IsOpen(v.node) {
			p.sep = " "
			p.value = render.Summary(v.node)
			p.class = render.ClassSummary
		}
		return p
	}

	view := render.Describe(v.node)
	p.sep = ": "
	p.value = strings.ReplaceAll(view.Text, "\n", "\\n")
	p.class = view.Class

	return p
}

// renderRow renders a single tree row, truncated to width columns.
// Truncation happens on plain text so escape sequences never count
// as columns. A selected row is rendered without value
// styling so the reverse style covers the whole line.
func (m *Model) renderRow(v visibleNode, selected bool, width int) string {
	p := m.rowParts(v)

	plain := p.prefix + p.key + " " + p.badge + p.sep + p.value
	if runewidth.StringWidth(plain) > width {
		fixed := runewidth.StringWidth(p.prefix + p.key + " " + p.badge + p.sep)
		remaining := width - fixed
		if remaining <= 0 {
			line := runewidth.Truncate(plain, width, "…")
			if selected {
				return m.styles.Selected.Render(line)
			}
			return line
		}
		p.value = runewidth.Truncate(p.value, remaining, "…")
		plain = p.prefix + p.key + " " + p.badge + p.sep + p.value
	}

	if selected {
		return m.styles.Selected.Render(plain)
	}

	var b strings.Builder
	b.WriteString(p.prefix)
	b.WriteString(m.styles.Key.Render(p.key))
	b.WriteString(" ")
	b.WriteString(m.styles.Badge.Render(p.badge))
	b.WriteString(p.sep)
	b.WriteString(m.styles.classStyle(p.class).Render(p.value))

	return b.String()
}
