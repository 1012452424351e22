// Package must converts error-returning calls into panicking ones at
// the call site, using the same carrier protocol as the Unchecked
// methods in the root package: a non-nil error is raised as a
// *wrapped.Error panic, recoverable by wrapped.Catch or the
// Checked*As adapters.
package must

import "github.com/throwfn/throwfn/wrapped"

// Value returns the value, panicking with the carrier when err is
// non-nil. Use to inline a (T, error) call:
//
//	size := must.Value(buf.Write(payload))
func Value[T any](out T, err error) T {
	wrapped.Throw(err)
	return out
}

// Ok panics with the carrier when err is non-nil.
func Ok(err error) { wrapped.Throw(err) }

// Call invokes the operation and panics on failure.
func Call(fn func() error) { wrapped.Throw(fn()) }

// Get invokes the supplier form and returns its value, panicking on
// failure.
func Get[T any](fn func() (T, error)) T { return Value(fn()) }

// Apply invokes the consumer form with the input and panics on
// failure.
func Apply[T any](fn func(T) error, in T) { wrapped.Throw(fn(in)) }
