// Package attr provides typed attribute keys and an insertion-ordered
// attribute store built on them. A Key carries a compile-time value type and a
// process-unique identity, so independently created keys never collide even
// when they share a name. Attributes associates keys with values, keyed by
// identity rather than name, and projects itself to a plain name/value map for
// serialization.
//
// Keys are immutable and freely shareable across stores and goroutines.
// Attributes itself is a plain mutable data structure and is not safe for
// concurrent mutation; callers in multi-goroutine hosts must serialize access
// themselves.
package attr
