// Package await provides Awaitable, a value that is either already resolved
// or produced by a deferred computation, and Witness, a zero-size phantom
// marker for explicit type-witness arguments. Await is idempotent and honors
// context cancellation while a computation is outstanding.
package await
