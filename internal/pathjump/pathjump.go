// Package pathjump resolves JSONPath queries against a parsed document,
// returning structural key paths that identify tree nodes.
package pathjump

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/theory/jsonpath"
	"github.com/theory/jsonpath/spec"

	"github.com/jacoelho/vy/internal/document"
)

var (
	ErrInvalidQuery = errors.New("invalid jsonpath query")
	ErrNotFound     = errors.New("no node matches query")
)

// Locate evaluates a JSONPath expression against the document value and
// returns the key path of the first match: object keys and stringified
// array indices, root excluded. These are the same segments the tree
// builder uses for child keys.
func Locate(value any, query string) ([]string, error) {
	path, err := jsonpath.Parse(query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidQuery, err)
	}

	located := path.SelectLocated(generic(value))
	if len(located) == 0 {
		return nil, ErrNotFound
	}

	return segments(located[0].Path), nil
}

func segments(normalized spec.NormalizedPath) []string {
	out := make([]string, 0, len(normalized))
	for _, element := range normalized {
		switch current := element.(type) {
		case spec.Name:
			out = append(out, string(current))
		case spec.Index:
			out = append(out, strconv.Itoa(int(current)))
		}
	}

	return out
}

// generic converts the ordered document model into the plain map/slice
// shapes the JSONPath engine evaluates. Key order does not matter for
// queries; duplicate keys keep the last value, as plain maps do.
func generic(value any) any {
	switch current := value.(type) {
	case document.Map:
		out := make(map[string]any, len(current))
		for _, entry := range current {
			out[entry.Key] = generic(entry.Value)
		}
		return out
	case []any:
		out := make([]any, len(current))
		for i, item := range current {
			out[i] = generic(item)
		}
		return out
	default:
		return current
	}
}
