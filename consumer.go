package throwfn

import "github.com/throwfn/throwfn/wrapped"

// Consumer is a single-argument callable invoked for its side
// effects, whose contract permits a declared failure.
type Consumer[T any] func(T) error

// MakeConsumer adapts a raw function into a Consumer. Panics with
// ErrNilFunction when fn is nil.
func MakeConsumer[T any](fn func(T) error) Consumer[T] {
	expect(fn != nil)
	return fn
}

// CheckedConsumer adapts a panicking consumer with no transformation:
// completion yields a nil error and panics propagate untouched.
func CheckedConsumer[T any](fn func(T)) Consumer[T] {
	expect(fn != nil)
	return func(in T) error { fn(in); return nil }
}

// CheckedConsumerAs adapts a panicking consumer into a Consumer whose
// declared failure type is X, resolving carrier panics with an X
// cause into returned errors. All other panics continue to panic.
func CheckedConsumerAs[X error, T any](fn func(T)) Consumer[T] {
	expect(fn != nil)
	return func(in T) (err error) {
		defer func() { err = wrapped.Catch[X](recover()) }()
		fn(in)
		return nil
	}
}

// Accept invokes the consumer.
func (c Consumer[T]) Accept(in T) error { return c(in) }

// Unchecked converts the consumer into its panicking form.
func (c Consumer[T]) Unchecked() func(T) {
	return func(in T) { wrapped.Throw(c(in)) }
}

// AndThen sequences a second consumer over the same input. The first
// consumer completes fully, its own recovery combinators included,
// before the second begins; any failure from the first, declared or
// panic, means the second never runs.
func (c Consumer[T]) AndThen(next Consumer[T]) Consumer[T] {
	expect(next != nil)
	return func(in T) error {
		if err := c(in); err != nil {
			return err
		}
		return next(in)
	}
}

// OnErrorAccept re-invokes fallback with the original input when the
// consumer reports a declared failure; the fallback's outcome,
// failure included, becomes the result.
func (c Consumer[T]) OnErrorAccept(fallback Consumer[T]) Consumer[T] {
	expect(fallback != nil)
	return func(in T) error {
		if err := c(in); err != nil {
			return fallback(in)
		}
		return nil
	}
}

// OnErrorHandle diverts a declared failure to a handler that may
// itself fail; the handler's outcome becomes the result.
func (c Consumer[T]) OnErrorHandle(handler Consumer[error]) Consumer[T] {
	expect(handler != nil)
	return func(in T) error {
		if err := c(in); err != nil {
			return handler(err)
		}
		return nil
	}
}

// OnErrorObserve is OnErrorHandle for a handler that cannot fail: the
// failure is passed to the observer and the composed consumer
// succeeds.
func (c Consumer[T]) OnErrorObserve(ob func(error)) Consumer[T] {
	expect(ob != nil)
	return func(in T) error {
		if err := c(in); err != nil {
			ob(err)
		}
		return nil
	}
}

// OnErrorThrow replaces a declared failure with the mapper's output.
func (c Consumer[T]) OnErrorThrow(mapper func(error) error) Consumer[T] {
	expect(mapper != nil)
	return func(in T) error {
		if err := c(in); err != nil {
			return mapper(err)
		}
		return nil
	}
}

// OnErrorPanic converts a declared failure into an unchecked one,
// raising the mapper's output as a panic, as-is.
func (c Consumer[T]) OnErrorPanic(mapper func(error) error) Consumer[T] {
	expect(mapper != nil)
	return func(in T) error {
		if err := c(in); err != nil {
			panic(mapper(err))
		}
		return nil
	}
}

// OnErrorDiscard suppresses a declared failure entirely: the composed
// consumer succeeds with no observable result. This is the only
// combinator that swallows a failure without a substitute.
func (c Consumer[T]) OnErrorDiscard() Consumer[T] {
	return func(in T) error {
		_ = c(in)
		return nil
	}
}
