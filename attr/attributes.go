package attr

import (
	"encoding/json"
	"fmt"
	"iter"

	"github.com/google/uuid"
)

type entry struct {
	key   AnyKey
	value any
}

// Attributes is a mutable association from keys to values, keyed by key
// identity, preserving insertion order.
//
// Contract:
//   - At most one value per key identity; overwriting keeps the entry's
//     insertion-order position, while delete followed by a later set
//     re-appends at the end.
//   - Two stores holding the same key are fully independent; values are
//     never shared between stores.
//   - Traversals (All, Keys, Values, ForEach) iterate a snapshot of the
//     entries taken when the traversal starts, so mutation during an
//     in-progress traversal is not observed by it. Each call produces a
//     fresh traversal.
//   - Not safe for concurrent mutation; see the package documentation.
//
// The zero value is ready to use. NewAttributes pre-allocates the index and
// is preferred when the store is built up immediately.
type Attributes struct {
	entries []entry
	index   map[uuid.UUID]int
}

// NewAttributes creates an empty attribute store.
func NewAttributes() *Attributes {
	return &Attributes{index: make(map[uuid.UUID]int)}
}

// SetAny associates value with key, creating the association or overwriting
// an existing one in place. It is the untyped escape hatch underlying Set;
// note that a value stored under a key of a different value type is reported
// as absent by the typed accessors.
func (a *Attributes) SetAny(key AnyKey, value any) {
	if a.index == nil {
		a.index = make(map[uuid.UUID]int)
	}
	if i, ok := a.index[key.ID()]; ok {
		a.entries[i].value = value
		return
	}
	a.index[key.ID()] = len(a.entries)
	a.entries = append(a.entries, entry{key: key, value: value})
}

// GetAny returns the value stored under key and whether one is present.
// Absence is a normal outcome, not an error.
func (a *Attributes) GetAny(key AnyKey) (any, bool) {
	i, ok := a.index[key.ID()]
	if !ok {
		return nil, false
	}
	return a.entries[i].value, true
}

// Has reports whether key has a value in the store. No side effects.
func (a *Attributes) Has(key AnyKey) bool {
	_, ok := a.index[key.ID()]
	return ok
}

// Delete removes the association for key and reports whether one was
// removed. Deleting an absent key is a no-op returning false.
func (a *Attributes) Delete(key AnyKey) bool {
	i, ok := a.index[key.ID()]
	if !ok {
		return false
	}
	a.entries = append(a.entries[:i], a.entries[i+1:]...)
	delete(a.index, key.ID())
	for j := i; j < len(a.entries); j++ {
		a.index[a.entries[j].key.ID()] = j
	}
	return true
}

// Clear removes all associations.
func (a *Attributes) Clear() {
	a.entries = nil
	a.index = make(map[uuid.UUID]int)
}

// Len returns the current number of associations.
func (a *Attributes) Len() int { return len(a.entries) }

// All returns an iterator over key/value pairs in insertion order. The
// sequence is restartable: each range over it takes a fresh snapshot.
func (a *Attributes) All() iter.Seq2[AnyKey, any] {
	return func(yield func(AnyKey, any) bool) {
		for _, e := range a.snapshot() {
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}

// Keys returns an iterator over keys in insertion order.
func (a *Attributes) Keys() iter.Seq[AnyKey] {
	return func(yield func(AnyKey) bool) {
		for _, e := range a.snapshot() {
			if !yield(e.key) {
				return
			}
		}
	}
}

// Values returns an iterator over values in insertion order.
func (a *Attributes) Values() iter.Seq[any] {
	return func(yield func(any) bool) {
		for _, e := range a.snapshot() {
			if !yield(e.value) {
				return
			}
		}
	}
}

// ForEach invokes fn once per association in insertion order. Panics raised
// inside fn propagate to the caller.
func (a *Attributes) ForEach(fn func(key AnyKey, value any)) {
	for _, e := range a.snapshot() {
		fn(e.key, e.value)
	}
}

func (a *Attributes) snapshot() []entry {
	s := make([]entry, len(a.entries))
	copy(s, a.entries)
	return s
}

// ToMap projects the store to a plain name/value map: every association
// whose key has a name contributes a field, associations on anonymous keys
// are omitted, and when two distinct keys share a name the later one by
// insertion order wins. The loss of anonymous and shadowed entries is
// documented behavior of the projection, not of the store.
func (a *Attributes) ToMap() map[string]any {
	m := make(map[string]any, len(a.entries))
	for _, e := range a.entries {
		if e.key.Name() == "" {
			continue
		}
		m[e.key.Name()] = e.value
	}
	return m
}

// MarshalJSON encodes the ToMap projection.
func (a *Attributes) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.ToMap())
}

// MarshalYAML encodes the ToMap projection.
func (a *Attributes) MarshalYAML() (any, error) {
	return a.ToMap(), nil
}

// Set associates value with key, creating the association or overwriting an
// existing one in place without changing its insertion-order position.
func Set[T any](a *Attributes, key Key[T], value T) {
	a.SetAny(key, value)
}

// Lookup returns the value stored under key and whether one is present.
func Lookup[T any](a *Attributes, key Key[T]) (T, bool) {
	v, ok := a.GetAny(key)
	if !ok {
		var zero T
		return zero, false
	}
	if v == nil {
		// A nil value stored under a nilable T; assertion would reject it.
		var zero T
		return zero, true
	}
	t, ok := v.(T)
	if !ok {
		var zero T
		return zero, false
	}
	return t, true
}

// Fetch returns the value stored under key, failing with ErrNotFound when
// absent. The error message embeds the key's name when it has one. Use Fetch
// when absence is a programming error; use Lookup or GetOrDefault when it is
// a normal case.
func Fetch[T any](a *Attributes, key Key[T]) (T, error) {
	v, ok := Lookup(a, key)
	if !ok {
		return v, fmt.Errorf("attr: %s: %w", key, ErrNotFound)
	}
	return v, nil
}

// GetOrDefault returns the value stored under key, or fallback when absent.
// The fallback is returned as given and never written into the store.
func GetOrDefault[T any](a *Attributes, key Key[T], fallback T) T {
	if v, ok := Lookup(a, key); ok {
		return v
	}
	return fallback
}

// GetOrInsert returns the value stored under key; when absent it first
// stores value under key, so subsequent reads see it as present. This is the
// set-if-absent-then-read pattern, in contrast to GetOrDefault which never
// persists.
func GetOrInsert[T any](a *Attributes, key Key[T], value T) T {
	if v, ok := Lookup(a, key); ok {
		return v
	}
	a.SetAny(key, value)
	return value
}

// GetOrInsertFunc is GetOrInsert with a lazily produced value: supplier is
// invoked exactly once per miss and never on a hit, so expensive defaults
// cost nothing on the hit path.
func GetOrInsertFunc[T any](a *Attributes, key Key[T], supplier func() T) T {
	if v, ok := Lookup(a, key); ok {
		return v
	}
	v := supplier()
	a.SetAny(key, v)
	return v
}
