package command

import (
	"maps"
	"slices"
)

// Input is an immutable, ordered attribute mapping supplied once when a
// command or invoker is constructed. Every derived Input is a copy, so an
// Input can be shared by reference across all commands of one run.
type Input struct {
	keys   []string
	values map[string]any
}

// NewInput returns an empty Input.
func NewInput() Input {
	return Input{}
}

// FromMap builds an Input from a plain map. Keys are ordered lexically so the
// result is deterministic.
func FromMap(m map[string]any) Input {
	in := Input{
		keys:   slices.Sorted(maps.Keys(m)),
		values: maps.Clone(m),
	}
	if in.values == nil {
		in.values = map[string]any{}
	}
	return in
}

// With returns a copy of in with key set to value. A new key is appended to
// the end of the order; an existing key keeps its position.
func (in Input) With(key string, value any) Input {
	out := Input{
		keys:   slices.Clone(in.keys),
		values: maps.Clone(in.values),
	}
	if out.values == nil {
		out.values = make(map[string]any, 1)
	}
	if _, ok := out.values[key]; !ok {
		out.keys = append(out.keys, key)
	}
	out.values[key] = value
	return out
}

// Get returns the value stored under key.
func (in Input) Get(key string) (any, bool) {
	v, ok := in.values[key]
	return v, ok
}

// Has reports whether key is present. A key explicitly set to nil is present.
func (in Input) Has(key string) bool {
	_, ok := in.values[key]
	return ok
}

// Keys returns the keys in insertion order.
func (in Input) Keys() []string {
	return slices.Clone(in.keys)
}

// Len returns the number of attributes.
func (in Input) Len() int {
	return len(in.keys)
}

// Map returns a copy of the attributes as a plain map.
func (in Input) Map() map[string]any {
	out := maps.Clone(in.values)
	if out == nil {
		out = map[string]any{}
	}
	return out
}
