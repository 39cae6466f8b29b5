package attr

import "errors"

var (
	// ErrNotFound is returned by Fetch when the queried key has no value in
	// the store. Callers expecting possible absence should use Lookup, Has or
	// GetOrDefault instead, which never fail.
	ErrNotFound = errors.New("attribute not found")

	// ErrInvalidArguments is returned by NewKey when the argument list is
	// ambiguous, i.e. more than one name-typed argument was supplied.
	ErrInvalidArguments = errors.New("invalid key arguments")
)
