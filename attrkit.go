// Package attrkit is the umbrella for a set of small, independent utility
// libraries:
//
//   - attr: typed attribute keys and an insertion-ordered attribute store
//   - env: environment-variable coercion to typed values
//   - reflectutil: read-only struct hierarchy inspection
//   - await: optional-awaitable values and type-witness markers
//
// The packages do not depend on each other and can be imported individually.
// This root package re-exports the attr core, the surface most consumers
// want, so simple uses need a single import.
package attrkit

import "github.com/hupe1980/attrkit/attr"

type (
	// Key is an immutable, process-unique attribute key for values of type T.
	Key[T any] = attr.Key[T]

	// AnyKey is the type-erased view of a Key.
	AnyKey = attr.AnyKey

	// Attributes is an insertion-ordered association from keys to values.
	Attributes = attr.Attributes
)

var (
	// ErrNotFound mirrors attr.ErrNotFound.
	ErrNotFound = attr.ErrNotFound

	// ErrInvalidArguments mirrors attr.ErrInvalidArguments.
	ErrInvalidArguments = attr.ErrInvalidArguments
)

// NewKey creates an anonymous key for values of type T.
func NewKey[T any]() Key[T] { return attr.New[T]() }

// NamedKey creates a key with a diagnostic name; the name does not
// participate in key identity.
func NamedKey[T any](name string) Key[T] { return attr.Named[T](name) }

// NewAttributes creates an empty attribute store.
func NewAttributes() *Attributes { return attr.NewAttributes() }
