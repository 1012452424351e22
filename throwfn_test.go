package throwfn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// failure types shared by the shape tests. parseFailure stands in for
// a narrowly-declared failure, pathFailure for an unrelated one, and
// retryable/flakyFailure for the interface-subtype case.

type parseFailure struct{ input string }

func (e *parseFailure) Error() string { return "parse: " + e.input }

type pathFailure struct{ path string }

func (e *pathFailure) Error() string { return "path: " + e.path }

type flakyFailure struct{ msg string }

func (e *flakyFailure) Error() string   { return e.msg }
func (e *flakyFailure) Retryable() bool { return true }

type retryable interface {
	error
	Retryable() bool
}

func capture(fn func()) (r any) {
	defer func() { r = recover() }()
	fn()
	return nil
}

func expectNilPanic(t *testing.T, fn func()) {
	t.Helper()
	assert.Equal(t, ErrNilFunction, capture(fn))
}

func TestArgumentValidation(t *testing.T) {
	// every factory and combinator rejects nil before invoking
	// anything; a sampling across the shapes.
	for name, fn := range map[string]func(){
		"MakeFunction":      func() { MakeFunction[int, int](nil) },
		"MakeBiFunction":    func() { MakeBiFunction[int, int, int](nil) },
		"MakeSupplier":      func() { MakeSupplier[int](nil) },
		"MakeConsumer":      func() { MakeConsumer[int](nil) },
		"MakeBiConsumer":    func() { MakeBiConsumer[int, int](nil) },
		"MakeRunner":        func() { MakeRunner(nil) },
		"MakePredicate":     func() { MakePredicate[int](nil) },
		"MakeUnaryOperator": func() { MakeUnaryOperator[int](nil) },
		"CheckedFunction":   func() { CheckedFunction[int, int](nil) },
		"CheckedFunctionAs": func() { CheckedFunctionAs[*parseFailure, int, int](nil) },
		"CheckedRunner":     func() { CheckedRunner(nil) },
		"Compose":           func() { Compose[int, int, int](nil, nil) },
	} {
		t.Run(name, func(t *testing.T) { expectNilPanic(t, fn) })
	}
}
