package throwfn

import "github.com/throwfn/throwfn/wrapped"

// Predicate is a single-argument boolean test whose contract permits
// a declared failure.
type Predicate[T any] func(T) (bool, error)

// MakePredicate adapts a raw function into a Predicate. Panics with
// ErrNilFunction when fn is nil.
func MakePredicate[T any](fn func(T) (bool, error)) Predicate[T] {
	expect(fn != nil)
	return fn
}

// CheckedPredicate adapts a panicking test with no transformation.
func CheckedPredicate[T any](fn func(T) bool) Predicate[T] {
	expect(fn != nil)
	return func(in T) (bool, error) { return fn(in), nil }
}

// CheckedPredicateAs adapts a panicking test via the unwrap operation
// against the declared failure type X.
func CheckedPredicateAs[X error, T any](fn func(T) bool) Predicate[T] {
	expect(fn != nil)
	return func(in T) (out bool, err error) {
		defer func() { err = wrapped.Catch[X](recover()) }()
		return fn(in), nil
	}
}

// Test invokes the predicate.
func (p Predicate[T]) Test(in T) (bool, error) { return p(in) }

// Unchecked converts the predicate into its panicking form.
func (p Predicate[T]) Unchecked() func(T) bool {
	return func(in T) bool {
		out, err := p(in)
		wrapped.Throw(err)
		return out
	}
}

// Negate inverts the predicate; failures pass through unchanged.
func (p Predicate[T]) Negate() Predicate[T] {
	return func(in T) (bool, error) {
		out, err := p(in)
		return !out, err
	}
}

// And short-circuits: next runs only when the predicate succeeds with
// true; a failure from either side propagates.
func (p Predicate[T]) And(next Predicate[T]) Predicate[T] {
	expect(next != nil)
	return func(in T) (bool, error) {
		out, err := p(in)
		if err != nil || !out {
			return false, err
		}
		return next(in)
	}
}

// Or short-circuits: next runs only when the predicate succeeds with
// false; a failure from either side propagates.
func (p Predicate[T]) Or(next Predicate[T]) Predicate[T] {
	expect(next != nil)
	return func(in T) (bool, error) {
		out, err := p(in)
		if err != nil || out {
			return out, err
		}
		return next(in)
	}
}

// OnErrorReturn substitutes a fixed outcome for a declared failure.
func (p Predicate[T]) OnErrorReturn(value bool) Predicate[T] {
	return func(in T) (bool, error) {
		if out, err := p(in); err == nil {
			return out, nil
		}
		return value, nil
	}
}

// OnErrorTest re-invokes fallback with the original input on a
// declared failure.
func (p Predicate[T]) OnErrorTest(fallback Predicate[T]) Predicate[T] {
	expect(fallback != nil)
	return func(in T) (bool, error) {
		if out, err := p(in); err == nil {
			return out, nil
		}
		return fallback(in)
	}
}

// OnErrorHandle diverts a declared failure to a handler that may
// itself fail.
func (p Predicate[T]) OnErrorHandle(handler Function[error, bool]) Predicate[T] {
	expect(handler != nil)
	return func(in T) (bool, error) {
		out, err := p(in)
		if err == nil {
			return out, nil
		}
		return handler(err)
	}
}

// OnErrorResolve is OnErrorHandle for a handler that cannot fail.
func (p Predicate[T]) OnErrorResolve(fn func(error) bool) Predicate[T] {
	expect(fn != nil)
	return func(in T) (bool, error) {
		out, err := p(in)
		if err == nil {
			return out, nil
		}
		return fn(err), nil
	}
}

// OnErrorThrow replaces a declared failure with the mapper's output.
func (p Predicate[T]) OnErrorThrow(mapper func(error) error) Predicate[T] {
	expect(mapper != nil)
	return func(in T) (bool, error) {
		out, err := p(in)
		if err != nil {
			err = mapper(err)
		}
		return out, err
	}
}

// OnErrorPanic converts a declared failure into an unchecked one,
// raising the mapper's output as a panic, as-is.
func (p Predicate[T]) OnErrorPanic(mapper func(error) error) Predicate[T] {
	expect(mapper != nil)
	return func(in T) (bool, error) {
		out, err := p(in)
		if err != nil {
			panic(mapper(err))
		}
		return out, nil
	}
}

// BiPredicate is the two-argument form of Predicate.
type BiPredicate[A, B any] func(A, B) (bool, error)

func MakeBiPredicate[A, B any](fn func(A, B) (bool, error)) BiPredicate[A, B] {
	expect(fn != nil)
	return fn
}

func CheckedBiPredicate[A, B any](fn func(A, B) bool) BiPredicate[A, B] {
	expect(fn != nil)
	return func(a A, b B) (bool, error) { return fn(a, b), nil }
}

func CheckedBiPredicateAs[X error, A, B any](fn func(A, B) bool) BiPredicate[A, B] {
	expect(fn != nil)
	return func(a A, b B) (out bool, err error) {
		defer func() { err = wrapped.Catch[X](recover()) }()
		return fn(a, b), nil
	}
}

func (p BiPredicate[A, B]) Test(a A, b B) (bool, error) { return p(a, b) }

func (p BiPredicate[A, B]) Unchecked() func(A, B) bool {
	return func(a A, b B) bool {
		out, err := p(a, b)
		wrapped.Throw(err)
		return out
	}
}

func (p BiPredicate[A, B]) Negate() BiPredicate[A, B] {
	return func(a A, b B) (bool, error) {
		out, err := p(a, b)
		return !out, err
	}
}

func (p BiPredicate[A, B]) OnErrorReturn(value bool) BiPredicate[A, B] {
	return func(a A, b B) (bool, error) {
		if out, err := p(a, b); err == nil {
			return out, nil
		}
		return value, nil
	}
}

func (p BiPredicate[A, B]) OnErrorTest(fallback BiPredicate[A, B]) BiPredicate[A, B] {
	expect(fallback != nil)
	return func(a A, b B) (bool, error) {
		if out, err := p(a, b); err == nil {
			return out, nil
		}
		return fallback(a, b)
	}
}

func (p BiPredicate[A, B]) OnErrorHandle(handler Function[error, bool]) BiPredicate[A, B] {
	expect(handler != nil)
	return func(a A, b B) (bool, error) {
		out, err := p(a, b)
		if err == nil {
			return out, nil
		}
		return handler(err)
	}
}

func (p BiPredicate[A, B]) OnErrorResolve(fn func(error) bool) BiPredicate[A, B] {
	expect(fn != nil)
	return func(a A, b B) (bool, error) {
		out, err := p(a, b)
		if err == nil {
			return out, nil
		}
		return fn(err), nil
	}
}

func (p BiPredicate[A, B]) OnErrorThrow(mapper func(error) error) BiPredicate[A, B] {
	expect(mapper != nil)
	return func(a A, b B) (bool, error) {
		out, err := p(a, b)
		if err != nil {
			err = mapper(err)
		}
		return out, err
	}
}

func (p BiPredicate[A, B]) OnErrorPanic(mapper func(error) error) BiPredicate[A, B] {
	expect(mapper != nil)
	return func(a A, b B) (bool, error) {
		out, err := p(a, b)
		if err != nil {
			panic(mapper(err))
		}
		return out, nil
	}
}
