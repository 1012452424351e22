package throwfn

import "github.com/throwfn/throwfn/wrapped"

// BiFunction is the two-argument form of Function.
type BiFunction[A, B, R any] func(A, B) (R, error)

// MakeBiFunction adapts a raw function into a BiFunction. Panics with
// ErrNilFunction when fn is nil.
func MakeBiFunction[A, B, R any](fn func(A, B) (R, error)) BiFunction[A, B, R] {
	expect(fn != nil)
	return fn
}

// CheckedBiFunction adapts a panicking two-argument function with no
// transformation.
func CheckedBiFunction[A, B, R any](fn func(A, B) R) BiFunction[A, B, R] {
	expect(fn != nil)
	return func(a A, b B) (R, error) { return fn(a, b), nil }
}

// CheckedBiFunctionAs adapts a panicking two-argument function via
// the unwrap operation against the declared failure type X.
func CheckedBiFunctionAs[X error, A, B, R any](fn func(A, B) R) BiFunction[A, B, R] {
	expect(fn != nil)
	return func(a A, b B) (out R, err error) {
		defer func() { err = wrapped.Catch[X](recover()) }()
		return fn(a, b), nil
	}
}

// Apply invokes the function.
func (f BiFunction[A, B, R]) Apply(a A, b B) (R, error) { return f(a, b) }

// Unchecked converts the function into its panicking form.
func (f BiFunction[A, B, R]) Unchecked() func(A, B) R {
	return func(a A, b B) R {
		out, err := f(a, b)
		wrapped.Throw(err)
		return out
	}
}

// OnErrorReturn substitutes a fixed value for a declared failure.
func (f BiFunction[A, B, R]) OnErrorReturn(value R) BiFunction[A, B, R] {
	return func(a A, b B) (R, error) {
		if out, err := f(a, b); err == nil {
			return out, nil
		}
		return value, nil
	}
}

// OnErrorApply re-invokes fallback with the original inputs on a
// declared failure.
func (f BiFunction[A, B, R]) OnErrorApply(fallback BiFunction[A, B, R]) BiFunction[A, B, R] {
	expect(fallback != nil)
	return func(a A, b B) (R, error) {
		if out, err := f(a, b); err == nil {
			return out, nil
		}
		return fallback(a, b)
	}
}

// OnErrorHandle diverts a declared failure to a handler that may
// itself fail.
func (f BiFunction[A, B, R]) OnErrorHandle(handler Function[error, R]) BiFunction[A, B, R] {
	expect(handler != nil)
	return func(a A, b B) (R, error) {
		out, err := f(a, b)
		if err == nil {
			return out, nil
		}
		return handler(err)
	}
}

// OnErrorResolve is OnErrorHandle for a handler that cannot fail.
func (f BiFunction[A, B, R]) OnErrorResolve(fn func(error) R) BiFunction[A, B, R] {
	expect(fn != nil)
	return func(a A, b B) (R, error) {
		out, err := f(a, b)
		if err == nil {
			return out, nil
		}
		return fn(err), nil
	}
}

// OnErrorThrow replaces a declared failure with the mapper's output.
func (f BiFunction[A, B, R]) OnErrorThrow(mapper func(error) error) BiFunction[A, B, R] {
	expect(mapper != nil)
	return func(a A, b B) (R, error) {
		out, err := f(a, b)
		if err != nil {
			err = mapper(err)
		}
		return out, err
	}
}

// OnErrorPanic converts a declared failure into an unchecked one,
// raising the mapper's output as a panic, as-is.
func (f BiFunction[A, B, R]) OnErrorPanic(mapper func(error) error) BiFunction[A, B, R] {
	expect(mapper != nil)
	return func(a A, b B) (R, error) {
		out, err := f(a, b)
		if err != nil {
			panic(mapper(err))
		}
		return out, nil
	}
}
