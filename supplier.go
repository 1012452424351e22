package throwfn

import "github.com/throwfn/throwfn/wrapped"

// Supplier is a no-argument callable producing a value, whose
// contract permits a declared failure.
type Supplier[R any] func() (R, error)

// MakeSupplier adapts a raw function into a Supplier. Panics with
// ErrNilFunction when fn is nil.
func MakeSupplier[R any](fn func() (R, error)) Supplier[R] {
	expect(fn != nil)
	return fn
}

// CheckedSupplier adapts a panicking supplier with no transformation:
// values are paired with a nil error and panics propagate untouched.
func CheckedSupplier[R any](fn func() R) Supplier[R] {
	expect(fn != nil)
	return func() (R, error) { return fn(), nil }
}

// CheckedSupplierAs adapts a panicking supplier into a Supplier whose
// declared failure type is X, resolving carrier panics with an X
// cause into returned errors. All other panics continue to panic.
func CheckedSupplierAs[X error, R any](fn func() R) Supplier[R] {
	expect(fn != nil)
	return func() (out R, err error) {
		defer func() { err = wrapped.Catch[X](recover()) }()
		return fn(), nil
	}
}

// WrapValue returns a Supplier that always yields the provided value.
func WrapValue[R any](value R) Supplier[R] {
	return func() (R, error) { return value, nil }
}

// Get invokes the supplier.
func (s Supplier[R]) Get() (R, error) { return s() }

// Unchecked converts the supplier into its panicking form.
func (s Supplier[R]) Unchecked() func() R {
	return func() R {
		out, err := s()
		wrapped.Throw(err)
		return out
	}
}

// OnErrorReturn substitutes a fixed value for a declared failure.
func (s Supplier[R]) OnErrorReturn(value R) Supplier[R] {
	return func() (R, error) {
		if out, err := s(); err == nil {
			return out, nil
		}
		return value, nil
	}
}

// OnErrorGet invokes fallback in place of the failed call; the
// fallback's outcome becomes the result.
func (s Supplier[R]) OnErrorGet(fallback Supplier[R]) Supplier[R] {
	expect(fallback != nil)
	return func() (R, error) {
		if out, err := s(); err == nil {
			return out, nil
		}
		return fallback()
	}
}

// OnErrorHandle diverts a declared failure to a handler that may
// itself fail.
func (s Supplier[R]) OnErrorHandle(handler Function[error, R]) Supplier[R] {
	expect(handler != nil)
	return func() (R, error) {
		out, err := s()
		if err == nil {
			return out, nil
		}
		return handler(err)
	}
}

// OnErrorResolve is OnErrorHandle for a handler that cannot fail.
func (s Supplier[R]) OnErrorResolve(fn func(error) R) Supplier[R] {
	expect(fn != nil)
	return func() (R, error) {
		out, err := s()
		if err == nil {
			return out, nil
		}
		return fn(err), nil
	}
}

// OnErrorThrow replaces a declared failure with the mapper's output.
func (s Supplier[R]) OnErrorThrow(mapper func(error) error) Supplier[R] {
	expect(mapper != nil)
	return func() (R, error) {
		out, err := s()
		if err != nil {
			err = mapper(err)
		}
		return out, err
	}
}

// OnErrorPanic converts a declared failure into an unchecked one,
// raising the mapper's output as a panic, as-is.
func (s Supplier[R]) OnErrorPanic(mapper func(error) error) Supplier[R] {
	expect(mapper != nil)
	return func() (R, error) {
		out, err := s()
		if err != nil {
			panic(mapper(err))
		}
		return out, nil
	}
}

// PreHook runs op before every invocation.
func (s Supplier[R]) PreHook(op func()) Supplier[R] {
	expect(op != nil)
	return func() (R, error) { op(); return s() }
}

// PostHook runs op after every invocation, failing and panicking ones
// included.
func (s Supplier[R]) PostHook(op func()) Supplier[R] {
	expect(op != nil)
	return func() (R, error) { defer op(); return s() }
}
