// Package render turns tree nodes into typed display descriptions.
//
// The core never emits markup directly: it describes a value (kind,
// text, semantic class) and the output layer chooses how to draw it.
// Untrusted document content must pass through Escape before it is
// embedded in any markup.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jacoelho/vy/internal/document"
	"github.com/jacoelho/vy/internal/tree"
)

// Class is the semantic styling class of a displayed value.
type Class string

const (
	ClassNull    Class = "null"
	ClassBool    Class = "boolean"
	ClassNumber  Class = "number"
	ClassString  Class = "string"
	ClassSummary Class = "summary"
)

// NullPlaceholder is the visually marked stand-in for null-like leaves.
const NullPlaceholder = "null"

// ValueView describes a leaf value for display.
type ValueView struct {
	Kind        document.Kind
	Text        string
	Class       Class
	Placeholder bool
}

var badges = map[document.Kind]string{
	document.KindNull:        "NULL",
	document.KindEmptyString: "STRING",
	document.KindBool:        "BOOL",
	document.KindInt:         "INT",
	document.KindFloat:       "FLOAT",
	document.KindString:      "STRING",
	document.KindEmptyArray:  "EMPTY ARRAY",
	document.KindArray:       "ARRAY",
	document.KindObject:      "OBJECT",
}

// Badge returns the upper-cased kind tag for a node. Empty strings keep
// the generic STRING badge while rendering the null placeholder value;
// empty arrays keep their own badge.
func Badge(k document.Kind) string {
	if badge, ok := badges[k]; ok {
		return badge
	}

	return "STRING"
}

// Summary returns the count line for container nodes: "array • N" or
// "object • N". It is empty for leaves.
func Summary(n *tree.Node) string {
	switch n.Kind {
	case document.KindArray:
		return "array • " + strconv.Itoa(n.Count)
	case document.KindObject:
		return "object • " + strconv.Itoa(n.Count)
	default:
		return ""
	}
}

// Describe produces the display description of a leaf node.
// Containers have no scalar value; callers use Summary for those.
func Describe(n *tree.Node) ValueView {
	view := ValueView{Kind: n.Kind}

	switch n.Kind {
	case document.KindNull, document.KindEmptyString:
		view.Text = NullPlaceholder
		view.Class = ClassNull
		view.Placeholder = true
	case document.KindEmptyArray:
		view.Text = "empty array"
		view.Class = ClassNull
		view.Placeholder = true
	case document.KindBool:
		view.Text = strconv.FormatBool(n.Value.(bool))
		view.Class = ClassBool
	case document.KindInt, document.KindFloat:
		view.Text = formatNumber(n.Value)
		view.Class = ClassNumber
	default:
		view.Text = formatScalar(n.Value)
		view.Class = ClassString
	}

	return view
}

func formatNumber(v any) string {
	switch current := v.(type) {
	case int:
		return strconv.Itoa(current)
	case int8:
		return strconv.FormatInt(int64(current), 10)
	case int16:
		return strconv.FormatInt(int64(current), 10)
	case int32:
		return strconv.FormatInt(int64(current), 10)
	case int64:
		return strconv.FormatInt(current, 10)
	case uint:
		return strconv.FormatUint(uint64(current), 10)
	case uint8:
		return strconv.FormatUint(uint64(current), 10)
	case uint16:
		return strconv.FormatUint(uint64(current), 10)
	case uint32:
		return strconv.FormatUint(uint64(current), 10)
	case uint64:
		return strconv.FormatUint(current, 10)
	case float32:
		return strconv.FormatFloat(float64(current), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(current, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

func formatScalar(v any) string {
	if s, ok := v.(string); ok {
		return s
	}

	return fmt.Sprint(v)
}

// escaper replaces markup-significant characters in a single pass, so
// the ampersand of an inserted entity is never re-escaped.
var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// Escape makes untrusted document content safe to embed in markup.
func Escape(s string) string {
	return escaper.Replace(s)
}
