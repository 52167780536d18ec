package pricechart

import (
	"iter"
	"slices"
)

// Field is a single auxiliary label/value pair attached to a point.
type Field struct {
	Key   string
	Value string
}

// Fields is an ordered association list of auxiliary values.
//
// Keys are unique, and the insertion order is preserved, so that rendering is
// deterministic. The zero value is an empty list ready to use.
type Fields []Field

// F builds Fields from alternating key, value arguments. A trailing key without value is ignored.
func F(kv ...string) Fields {
	var f Fields
	for i := 0; i+1 < len(kv); i += 2 {
		f = f.Set(kv[i], kv[i+1])
	}
	return f
}

// Get returns the value for key and true, or "" and false.
func (f Fields) Get(key string) (string, bool) {
	i := slices.IndexFunc(f, func(x Field) bool { return x.Key == key })
	if i < 0 {
		return "", false
	}
	return f[i].Value, true
}

// Set returns a copy of f with key set to value.
//
// An existing key keeps its position. f itself is never modified, as fields are
// shared by points of an immutable series.
func (f Fields) Set(key, value string) Fields {
	g := slices.Clone(f)
	if i := slices.IndexFunc(g, func(x Field) bool { return x.Key == key }); i >= 0 {
		g[i].Value = value
		return g
	}
	return append(g, Field{key, value})
}

// Without returns a copy of f without the given keys.
func (f Fields) Without(keys ...string) Fields {
	g := make(Fields, 0, len(f))
	for _, x := range f {
		if !slices.Contains(keys, x.Key) {
			g = append(g, x)
		}
	}
	return g
}

// Len returns the number of fields.
func (f Fields) Len() int { return len(f) }

// All returns an iterator over key/value pairs in insertion order.
func (f Fields) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, x := range f {
			if !yield(x.Key, x.Value) {
				return
			}
		}
	}
}
