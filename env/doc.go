// Package env coerces environment variables to typed Go values. Every
// function is a pure read of the process environment: no caching, no shared
// state. The error-returning forms distinguish an unset variable (ErrNotSet)
// from a set-but-unparsable one (a wrapped parse error naming the variable),
// while the *Or forms fall back silently on either condition.
package env
