package attr

import (
	"fmt"

	"github.com/google/uuid"
)

// AnyKey is the type-erased view of a Key. It lets a single Attributes store
// hold keys whose value types differ, and gives key-agnostic operations
// (Has, Delete, iteration) a common currency.
//
// The identity returned by ID is the sole basis for key equality; Name is
// diagnostic metadata and never participates in lookup.
type AnyKey interface {
	// ID returns the process-unique identity of the key. It is stable for
	// the key's entire lifetime.
	ID() uuid.UUID

	// Name returns the optional human-readable name, or "" when anonymous.
	Name() string

	fmt.Stringer
}

// Key is an immutable attribute key carrying a compile-time value type T.
//
// Contract:
//   - Identity is assigned at construction and never changes; two
//     independently constructed keys are never equal, even with equal names.
//   - Copies of one constructed key share its identity and are
//     interchangeable as store keys.
//   - T has no runtime representation; the store does not verify that values
//     match it. It is an authoring aid enforced by the compiler at the Set /
//     Lookup call sites only.
//
// The zero Key has no identity and must not be used with a store; always
// construct keys through New, Named, Of, NamedOf or NewKey.
type Key[T any] struct {
	id   uuid.UUID
	name string
}

// New creates an anonymous key for values of type T.
func New[T any]() Key[T] {
	return Key[T]{id: uuid.New()}
}

// Named creates a key for values of type T with a human-readable name. The
// name is not validated and not required to be unique; it is used only for
// diagnostics and for the field name in serialized projections.
func Named[T any](name string) Key[T] {
	return Key[T]{id: uuid.New(), name: name}
}

// Of creates an anonymous key whose value type is inferred from witness. The
// witness is discarded; it is never stored, invoked or read.
func Of[T any](witness T) Key[T] {
	_ = witness
	return New[T]()
}

// NamedOf creates a named key whose value type is inferred from witness. As
// with Of, the witness is discarded.
func NamedOf[T any](name string, witness T) Key[T] {
	_ = witness
	return Named[T](name)
}

// NewKey is the flexible-construction form: it accepts zero, one or two
// arguments, where a string argument is the key name and any other argument
// is a discarded type witness, in either order. Supplying two string
// arguments is ambiguous and fails with ErrInvalidArguments; so does
// supplying more than two arguments.
//
// Prefer the explicit constructors (New, Named, Of, NamedOf) in new code;
// NewKey exists for callers translating dynamic construction sites.
func NewKey[T any](args ...any) (Key[T], error) {
	if len(args) > 2 {
		return Key[T]{}, fmt.Errorf("attr: expected at most two arguments, got %d: %w", len(args), ErrInvalidArguments)
	}

	var (
		name     string
		haveName bool
	)
	for _, arg := range args {
		s, ok := arg.(string)
		if !ok {
			continue // type witness, discarded
		}
		if haveName {
			return Key[T]{}, fmt.Errorf("attr: two name arguments supplied (%q, %q): %w", name, s, ErrInvalidArguments)
		}
		name, haveName = s, true
	}

	return Key[T]{id: uuid.New(), name: name}, nil
}

// ID returns the key's process-unique identity.
func (k Key[T]) ID() uuid.UUID { return k.id }

// Name returns the key's name, or "" when anonymous.
func (k Key[T]) Name() string { return k.name }

// String returns a human-readable form embedding the name, e.g. Key("host"),
// or Key() for anonymous keys.
func (k Key[T]) String() string {
	if k.name == "" {
		return "Key()"
	}
	return fmt.Sprintf("Key(%q)", k.name)
}
