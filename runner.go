package throwfn

import "github.com/throwfn/throwfn/wrapped"

// Runner is a no-argument, no-result callable whose contract permits
// a declared failure.
type Runner func() error

// MakeRunner adapts a raw function into a Runner. Panics with
// ErrNilFunction when fn is nil.
func MakeRunner(fn func() error) Runner {
	expect(fn != nil)
	return fn
}

// CheckedRunner adapts a panicking operation with no transformation:
// completion yields a nil error and panics propagate untouched.
func CheckedRunner(fn func()) Runner {
	expect(fn != nil)
	return func() error { fn(); return nil }
}

// CheckedRunnerAs adapts a panicking operation into a Runner whose
// declared failure type is X.
func CheckedRunnerAs[X error](fn func()) Runner {
	expect(fn != nil)
	return func() (err error) {
		defer func() { err = wrapped.Catch[X](recover()) }()
		fn()
		return nil
	}
}

// Run invokes the runner.
func (r Runner) Run() error { return r() }

// Unchecked converts the runner into its panicking form.
func (r Runner) Unchecked() func() {
	return func() { wrapped.Throw(r()) }
}

// AndThen sequences a second runner; any failure from the first means
// the second never runs.
func (r Runner) AndThen(next Runner) Runner {
	expect(next != nil)
	return func() error {
		if err := r(); err != nil {
			return err
		}
		return next()
	}
}

// OnErrorRun invokes fallback in place of the failed call; the
// fallback's outcome becomes the result.
func (r Runner) OnErrorRun(fallback Runner) Runner {
	expect(fallback != nil)
	return func() error {
		if err := r(); err != nil {
			return fallback()
		}
		return nil
	}
}

// OnErrorHandle diverts a declared failure to a handler that may
// itself fail.
func (r Runner) OnErrorHandle(handler Consumer[error]) Runner {
	expect(handler != nil)
	return func() error {
		if err := r(); err != nil {
			return handler(err)
		}
		return nil
	}
}

// OnErrorObserve is OnErrorHandle for a handler that cannot fail.
func (r Runner) OnErrorObserve(ob func(error)) Runner {
	expect(ob != nil)
	return func() error {
		if err := r(); err != nil {
			ob(err)
		}
		return nil
	}
}

// OnErrorThrow replaces a declared failure with the mapper's output.
func (r Runner) OnErrorThrow(mapper func(error) error) Runner {
	expect(mapper != nil)
	return func() error {
		if err := r(); err != nil {
			return mapper(err)
		}
		return nil
	}
}

// OnErrorPanic converts a declared failure into an unchecked one,
// raising the mapper's output as a panic, as-is.
func (r Runner) OnErrorPanic(mapper func(error) error) Runner {
	expect(mapper != nil)
	return func() error {
		if err := r(); err != nil {
			panic(mapper(err))
		}
		return nil
	}
}

// OnErrorDiscard suppresses a declared failure with no substitute.
func (r Runner) OnErrorDiscard() Runner {
	return func() error {
		_ = r()
		return nil
	}
}
