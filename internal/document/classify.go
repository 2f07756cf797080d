package document

import "math"

// Kind classifies a document value for display.
type Kind int

const (
	KindNull Kind = iota
	KindEmptyString
	KindBool
	KindInt
	KindFloat
	KindString
	KindEmptyArray
	KindArray
	KindObject
)

var kindNames = map[Kind]string{
	KindNull:        "null",
	KindEmptyString: "empty-string",
	KindBool:        "bool",
	KindInt:         "int",
	KindFloat:       "float",
	KindString:      "string",
	KindEmptyArray:  "empty-array",
	KindArray:       "array",
	KindObject:      "object",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return "string"
}

// Container reports whether values of this kind carry children.
// Empty arrays are leaves.
func (k Kind) Container() bool {
	return k == KindArray || k == KindObject
}

// Info is the classification of a single value.
// Count is meaningful only for array and object kinds.
type Info struct {
	Kind  Kind
	Count int
}

// Classify determines the display kind of a parsed value.
// It is total: shapes it does not recognise degrade to the string kind.
func Classify(v any) Info {
	switch current := v.(type) {
	case nil:
		return Info{Kind: KindNull}
	case string:
		if current == "" {
			return Info{Kind: KindEmptyString}
		}
		return Info{Kind: KindString}
	case []any:
		if len(current) == 0 {
			return Info{Kind: KindEmptyArray}
		}
		return Info{Kind: KindArray, Count: len(current)}
	case Map:
		return Info{Kind: KindObject, Count: len(current)}
	case bool:
		return Info{Kind: KindBool}
	case int:
		return Info{Kind: KindInt}
	case int8, int16, int32, int64:
		return Info{Kind: KindInt}
	case uint, uint8, uint16, uint32, uint64:
		return Info{Kind: KindInt}
	case float32:
		return classifyFloat(float64(current))
	case float64:
		return classifyFloat(current)
	default:
		return Info{Kind: KindString}
	}
}

// classifyFloat treats numbers with a zero fractional part as integers.
func classifyFloat(f float64) Info {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return Info{Kind: KindFloat}
	}
	if f == math.Trunc(f) {
		return Info{Kind: KindInt}
	}

	return Info{Kind: KindFloat}
}
