package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jacoelho/vy/internal/stack"
	"github.com/jacoelho/vy/internal/tree"
)

const htmlHeader = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
body { font-family: monospace; }
.key { font-weight: bold; }
.badge { color: #888; font-size: smaller; margin-left: 0.5em; }
.null { color: #999; font-style: italic; }
.boolean { color: #b58900; }
.number { color: #2aa198; }
.string { color: #268bd2; }
.summary { color: #888; }
</style>
</head>
<body>
`

const htmlFooter = `</body>
</html>
`

type htmlFrame struct {
	node  *tree.Node
	close bool
}

// WriteHTML renders the tree as a standalone HTML page of nested
// <details> elements. All document-derived text is escaped first.
func WriteHTML(w io.Writer, root *tree.Node) error {
	if root == nil {
		return fmt.Errorf("render: nil tree")
	}

	if _, err := io.WriteString(w, htmlHeader); err != nil {
		return err
	}

	work := stack.NewWithCapacity[htmlFrame](16)
	work.Push(htmlFrame{node: root})

	for !work.IsEmpty() {
		current, _ := work.Pop()

		if current.close {
			if _, err := io.WriteString(w, "</details>\n"); err != nil {
				return err
			}
			continue
		}

		n := current.node
		if n.Kind.Container() {
			open := ""
			if n.Root {
				open = " open"
			}
			_, err := fmt.Fprintf(w, "<details%s><summary><span class=\"key\">%s</span><span class=\"badge\">%s</span> <span class=\"summary\">%s</span></summary>\n",
				open, Escape(n.Key), Badge(n.Kind), Summary(n))
			if err != nil {
				return err
			}

			work.Push(htmlFrame{node: n, close: true})
			for i := len(n.Children) - 1; i >= 0; i-- {
				work.Push(htmlFrame{node: n.Children[i]})
			}
			continue
		}

		view := Describe(n)
		_, err := fmt.Fprintf(w, "<div><span class=\"key\">%s</span><span class=\"badge\">%s</span> <span class=\"%s\">%s</span></div>\n",
			Escape(n.Key), Badge(n.Kind), view.Class, htmlText(view))
		if err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, htmlFooter)
	return err
}

// htmlText escapes a value description and turns newlines into breaks.
func htmlText(view ValueView) string {
	escaped := Escape(view.Text)
	return strings.ReplaceAll(escaped, "\n", "<br>")
}
