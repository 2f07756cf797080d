package ui

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jacoelho/vy/internal/document"
	"github.com/jacoelho/vy/internal/expand"
	"github.com/jacoelho/vy/internal/tree"
)

func fixtureTree() *tree.Node {
	return tree.Build("config", document.Map{
		{Key: "name", Value: "demo"},
		{Key: "ports", Value: []any{int64(80), int64(443)}},
		{Key: "labels", Value: document.Map{
			{Key: "env", Value: "prod"},
		}},
	})
}

func TestVisibleNodes_Defaults(t *testing.T) {
	root := fixtureTree()
	state := expand.NewState()

	var keys []string
	for _, v := range visibleNodes(root, state) {
		keys = append(keys, v.node.Key)
	}

	want := []string{"config", "name", "ports", "labels"}
	if diff := cmp.Diff(want, keys); diff != "" {
		t.Errorf("visible keys mismatch (-want +got):\n%s", diff)
	}
}

func TestVisibleNodes_ExpandedDepths(t *testing.T) {
	root := fixtureTree()
	state := expand.NewState()
	state.ExpandAll(root)

	type row struct {
		Key   string
		Depth int
	}

	var rows []row
	for _, v := range visibleNodes(root, state) {
		rows = append(rows, row{Key: v.node.Key, Depth: v.depth})
	}

	want := []row{
		{"config", 0},
		{"name", 1},
		{"ports", 1},
		{"0", 2},
		{"1", 2},
		{"labels", 1},
		{"env", 2},
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestVisibleNodes_CollapsedRoot(t *testing.T) {
	root := fixtureTree()
	state := expand.NewState()
	state.Toggle(root)

	got := visibleNodes(root, state)
	if len(got) != 1 || got[0].node != root {
		t.Fatalf("expected only the root row, got %d rows", len(got))
	}
}

func TestVisibleNodes_NilTree(t *testing.T) {
	if got := visibleNodes(nil, expand.NewState()); got != nil {
		t.Fatalf("expected no rows, got %d", len(got))
	}
}

func newRowModel() *Model {
	return &Model{
		state:  expand.NewState(),
		styles: DefaultStyles(true),
	}
}

func TestRenderRow_ClosedContainerSummary(t *testing.T) {
	m := newRowModel()
	root := fixtureTree()
	m.state.Toggle(root)

	row := m.renderRow(visibleNode{node: root}, false, 80)

	for _, want := range []string{"▸", "config", "[OBJECT]", "object • 3"} {
		if !strings.Contains(row, want) {
			t.Errorf("row %q missing %q", row, want)
		}
	}
}

func TestRenderRow_Leaf(t *testing.T) {
	m := newRowModel()
	root := fixtureTree()

	row := m.renderRow(visibleNode{node: root.Children[0], depth: 1}, false, 80)

	for _, want := range []string{"name", "[STRING]", "demo"} {
		if !strings.Contains(row, want) {
			t.Errorf("row %q missing %q", row, want)
		}
	}
	if strings.Contains(row, "▸") || strings.Contains(row, "▾") {
		t.Errorf("leaf row %q should not carry a disclosure marker", row)
	}
}

func TestRenderRow_MultilineValueFlattened(t *testing.T) {
	m := newRowModel()
	root := tree.Build("doc", document.Map{
		{Key: "note", Value: "line one\nline two"},
	})

	row := m.renderRow(visibleNode{node: root.Children[0], depth: 1}, false, 120)

	if strings.Contains(row, "\n") {
		t.Errorf("row %q contains a raw newline", row)
	}
	if !strings.Contains(row, `line one\nline two`) {
		t.Errorf("row %q missing flattened value", row)
	}
}

func TestRenderRow_TruncatesLongValue(t *testing.T) {
	m := newRowModel()
	root := tree.Build("doc", document.Map{
		{Key: "blob", Value: strings.Repeat("x", 500)},
	})

	row := m.renderRow(visibleNode{node: root.Children[0], depth: 1}, false, 40)

	if !strings.Contains(row, "…") {
		t.Errorf("row %q not truncated", row)
	}
	if strings.Contains(row, strings.Repeat("x", 100)) {
		t.Errorf("row %q kept the full value", row)
	}
}
