// Package document defines the value model for a parsed YAML document and
// the classification of values into display kinds.
package document

// Entry is a single key/value pair of a mapping.
type Entry struct {
	Key   string
	Value any
}

// Map is a YAML mapping with insertion order preserved.
// Plain Go maps lose key order, which is part of the display contract.
type Map []Entry

// Get returns the value for key and whether it is present.
func (m Map) Get(key string) (any, bool) {
	for _, entry := range m {
		if entry.Key == key {
			return entry.Value, true
		}
	}

	return nil, false
}

// Keys returns the mapping keys in insertion order.
func (m Map) Keys() []string {
	keys := make([]string, len(m))
	for i, entry := range m {
		keys[i] = entry.Key
	}

	return keys
}
