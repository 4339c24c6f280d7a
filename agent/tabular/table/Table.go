// Package table implements tables keyed by (state, action) pairs whose
// absent entries read as a configured default value.
//
// Reads never insert entries, so the set of keys held by a Table is
// exactly the set of pairs that have been explicitly written.
package table

// Number is the set of value types a Table can hold
type Number interface {
	~int | ~float64
}

type key[S, A comparable] struct {
	state  S
	action A
}

// Table maps (state, action) pairs to values of type V
type Table[S, A comparable, V Number] struct {
	entries map[key[S, A]]V
	def     V
}

// New returns an empty Table whose absent entries read as def
func New[S, A comparable, V Number](def V) *Table[S, A, V] {
	return &Table[S, A, V]{
		entries: make(map[key[S, A]]V),
		def:     def,
	}
}

// At returns the value stored for (s, a), or the Table's default value
// if no value has been stored
func (t *Table[S, A, V]) At(s S, a A) V {
	if v, ok := t.entries[key[S, A]{s, a}]; ok {
		return v
	}
	return t.def
}

// Set stores v for (s, a), creating the entry if needed
func (t *Table[S, A, V]) Set(s S, a A, v V) {
	t.entries[key[S, A]{s, a}] = v
}

// Add adds delta to the value of (s, a) and returns the new value. An
// absent entry is created at the default value before adding.
func (t *Table[S, A, V]) Add(s S, a A, delta V) V {
	v := t.At(s, a) + delta
	t.Set(s, a, v)
	return v
}

// Contains returns whether a value has been stored for (s, a)
func (t *Table[S, A, V]) Contains(s S, a A) bool {
	_, ok := t.entries[key[S, A]{s, a}]
	return ok
}

// Len returns the number of stored entries
func (t *Table[S, A, V]) Len() int {
	return len(t.entries)
}

// Range calls f for each stored entry in an unspecified order. Range
// stops if f returns false.
func (t *Table[S, A, V]) Range(f func(s S, a A, v V) bool) {
	for k, v := range t.entries {
		if !f(k.state, k.action, v) {
			return
		}
	}
}
