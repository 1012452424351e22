package throwfn

import "github.com/throwfn/throwfn/wrapped"

// Function is a single-argument, single-result callable whose
// contract permits a declared failure.
type Function[T, R any] func(T) (R, error)

// MakeFunction adapts a raw function into a Function. Panics with
// ErrNilFunction when fn is nil.
func MakeFunction[T, R any](fn func(T) (R, error)) Function[T, R] {
	expect(fn != nil)
	return fn
}

// CheckedFunction adapts a function that reports failure by panicking
// into a Function without any transformation: results are paired with
// a nil error and panics propagate untouched.
func CheckedFunction[T, R any](fn func(T) R) Function[T, R] {
	expect(fn != nil)
	return func(in T) (R, error) { return fn(in), nil }
}

// CheckedFunctionAs adapts a panicking function into a Function whose
// declared failure type is X. A carrier panic whose cause is an X
// resolves to that cause as the returned error; carriers with
// unrelated causes, and panics that are not carriers, continue to
// panic. Instantiate the failure type explicitly, as in:
//
//	fn := throwfn.CheckedFunctionAs[*fs.PathError](open)
func CheckedFunctionAs[X error, T, R any](fn func(T) R) Function[T, R] {
	expect(fn != nil)
	return func(in T) (out R, err error) {
		defer func() { err = wrapped.Catch[X](recover()) }()
		return fn(in), nil
	}
}

// Apply invokes the function.
func (f Function[T, R]) Apply(in T) (R, error) { return f(in) }

// Unchecked converts the function into its panicking form: a declared
// failure is raised as a carrier panic and success values pass
// through unchanged.
func (f Function[T, R]) Unchecked() func(T) R {
	return func(in T) R {
		out, err := f(in)
		wrapped.Throw(err)
		return out
	}
}

// OnErrorReturn substitutes a fixed value for a declared failure. The
// fallback value is never observed while the function succeeds.
func (f Function[T, R]) OnErrorReturn(value R) Function[T, R] {
	return func(in T) (R, error) {
		if out, err := f(in); err == nil {
			return out, nil
		}
		return value, nil
	}
}

// OnErrorApply re-invokes fallback with the original input when the
// function reports a declared failure; the fallback's outcome,
// failure included, becomes the result.
func (f Function[T, R]) OnErrorApply(fallback Function[T, R]) Function[T, R] {
	expect(fallback != nil)
	return func(in T) (R, error) {
		if out, err := f(in); err == nil {
			return out, nil
		}
		return fallback(in)
	}
}

// OnErrorHandle diverts a declared failure to a handler that may
// itself fail; the handler's outcome becomes the result.
func (f Function[T, R]) OnErrorHandle(handler Function[error, R]) Function[T, R] {
	expect(handler != nil)
	return func(in T) (R, error) {
		out, err := f(in)
		if err == nil {
			return out, nil
		}
		return handler(err)
	}
}

// OnErrorResolve is OnErrorHandle for a handler that cannot fail.
func (f Function[T, R]) OnErrorResolve(fn func(error) R) Function[T, R] {
	expect(fn != nil)
	return func(in T) (R, error) {
		out, err := f(in)
		if err == nil {
			return out, nil
		}
		return fn(err), nil
	}
}

// OnErrorThrow replaces a declared failure with the mapper's output,
// which remains a declared (returned) failure.
func (f Function[T, R]) OnErrorThrow(mapper func(error) error) Function[T, R] {
	expect(mapper != nil)
	return func(in T) (R, error) {
		out, err := f(in)
		if err != nil {
			err = mapper(err)
		}
		return out, err
	}
}

// OnErrorPanic converts a declared failure into an unchecked one: the
// mapper's output is raised as a panic, as-is, not via the carrier.
func (f Function[T, R]) OnErrorPanic(mapper func(error) error) Function[T, R] {
	expect(mapper != nil)
	return func(in T) (R, error) {
		out, err := f(in)
		if err != nil {
			panic(mapper(err))
		}
		return out, nil
	}
}

// PreHook runs op before every invocation of the function.
func (f Function[T, R]) PreHook(op func()) Function[T, R] {
	expect(op != nil)
	return func(in T) (R, error) { op(); return f(in) }
}

// PostHook runs op after every invocation of the function, including
// failing and panicking ones.
func (f Function[T, R]) PostHook(op func()) Function[T, R] {
	expect(op != nil)
	return func(in T) (R, error) { defer op(); return f(in) }
}

// Compose chains two functions: the outcome of first feeds next. A
// failure from first short-circuits, and next never runs.
func Compose[A, B, C any](first Function[A, B], next Function[B, C]) Function[A, C] {
	expect(first != nil)
	expect(next != nil)
	return func(in A) (zero C, _ error) {
		mid, err := first(in)
		if err != nil {
			return zero, err
		}
		return next(mid)
	}
}
