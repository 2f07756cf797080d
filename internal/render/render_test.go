package render

import (
	"strings"
	"testing"

	"github.com/jacoelho/vy/internal/document"
	"github.com/jacoelho/vy/internal/tree"
)

func TestEscape(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain", input: "hello", want: "hello"},
		{name: "ampersand", input: "a&b", want: "a&amp;b"},
		{name: "angle brackets", input: "<script>", want: "&lt;script&gt;"},
		{name: "quotes", input: `"it's"`, want: "&quot;it&#39;s&quot;"},
		{name: "no double escaping", input: "&lt;", want: "&amp;lt;"},
		{name: "all five", input: `&<>"'`, want: "&amp;&lt;&gt;&quot;&#39;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Escape(tt.input); got != tt.want {
				t.Errorf("Escape(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestBadge(t *testing.T) {
	tests := []struct {
		kind document.Kind
		want string
	}{
		{document.KindNull, "NULL"},
		{document.KindEmptyString, "STRING"},
		{document.KindBool, "BOOL"},
		{document.KindInt, "INT"},
		{document.KindFloat, "FLOAT"},
		{document.KindString, "STRING"},
		{document.KindEmptyArray, "EMPTY ARRAY"},
		{document.KindArray, "ARRAY"},
		{document.KindObject, "OBJECT"},
	}

	for _, tt := range tests {
		if got := Badge(tt.kind); got != tt.want {
			t.Errorf("Badge(%v) = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestSummary(t *testing.T) {
	root := tree.Build("", document.Map{
		{Key: "list", Value: []any{int64(1), int64(2), int64(3), int64(4), int64(5)}},
		{Key: "leaf", Value: "x"},
	})

	if got := Summary(root); got != "object • 2" {
		t.Errorf("Summary(object) = %q, want %q", got, "object • 2")
	}
	if got := Summary(root.Children[0]); got != "array • 5" {
		t.Errorf("Summary(array) = %q, want %q", got, "array • 5")
	}
	if got := Summary(root.Children[1]); got != "" {
		t.Errorf("Summary(leaf) = %q, want empty", got)
	}
}

func TestDescribe(t *testing.T) {
	root := tree.Build("", document.Map{
		{Key: "null", Value: nil},
		{Key: "empty", Value: ""},
		{Key: "emptyArr", Value: []any{}},
		{Key: "flag", Value: true},
		{Key: "count", Value: int64(42)},
		{Key: "whole", Value: 2.0},
		{Key: "ratio", Value: 2.5},
		{Key: "name", Value: "linus"},
	})

	byKey := make(map[string]*tree.Node)
	for _, child := range root.Children {
		byKey[child.Key] = child
	}

	tests := []struct {
		key             string
		wantText        string
		wantClass       Class
		wantPlaceholder bool
	}{
		{key: "null", wantText: NullPlaceholder, wantClass: ClassNull, wantPlaceholder: true},
		{key: "empty", wantText: NullPlaceholder, wantClass: ClassNull, wantPlaceholder: true},
		{key: "emptyArr", wantText: "empty array", wantClass: ClassNull, wantPlaceholder: true},
		{key: "flag", wantText: "true", wantClass: ClassBool},
		{key: "count", wantText: "42", wantClass: ClassNumber},
		{key: "whole", wantText: "2", wantClass: ClassNumber},
		{key: "ratio", wantText: "2.5", wantClass: ClassNumber},
		{key: "name", wantText: "linus", wantClass: ClassString},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			view := Describe(byKey[tt.key])
			if view.Text != tt.wantText {
				t.Errorf("Describe(%s) text = %q, want %q", tt.key, view.Text, tt.wantText)
			}
			if view.Class != tt.wantClass {
				t.Errorf("Describe(%s) class = %q, want %q", tt.key, view.Class, tt.wantClass)
			}
			if view.Placeholder != tt.wantPlaceholder {
				t.Errorf("Describe(%s) placeholder = %t, want %t", tt.key, view.Placeholder, tt.wantPlaceholder)
			}
		})
	}
}

func TestWriteHTML_EscapesContent(t *testing.T) {
	root := tree.Build("doc", document.Map{
		{Key: "payload", Value: `<img src=x onerror="alert('x')">`},
	})

	var out strings.Builder
	if err := WriteHTML(&out, root); err != nil {
		t.Fatalf("WriteHTML() error = %v", err)
	}

	html := out.String()
	if strings.Contains(html, "<img") {
		t.Error("document content reached output unescaped")
	}
	if !strings.Contains(html, "&lt;img src=x onerror=&quot;alert(&#39;x&#39;)&quot;&gt;") {
		t.Errorf("escaped payload missing from output:\n%s", html)
	}
}

func TestWriteHTML_NewlinesBecomeBreaks(t *testing.T) {
	root := tree.Build("doc", document.Map{
		{Key: "text", Value: "line one\nline two"},
	})

	var out strings.Builder
	if err := WriteHTML(&out, root); err != nil {
		t.Fatalf("WriteHTML() error = %v", err)
	}

	if !strings.Contains(out.String(), "line one<br>line two") {
		t.Error("newline should render as <br>")
	}
}

func TestWriteHTML_Structure(t *testing.T) {
	root := tree.Build("doc", document.Map{
		{Key: "items", Value: []any{int64(1)}},
	})

	var out strings.Builder
	if err := WriteHTML(&out, root); err != nil {
		t.Fatalf("WriteHTML() error = %v", err)
	}

	html := out.String()
	if strings.Count(html, "<details") != strings.Count(html, "</details>") {
		t.Error("unbalanced details elements")
	}
	if !strings.Contains(html, "<details open>") {
		t.Error("root container should render open")
	}
	if !strings.Contains(html, "array • 1") {
		t.Error("container summary missing")
	}
}
