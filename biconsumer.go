package throwfn

import "github.com/throwfn/throwfn/wrapped"

// BiConsumer is the two-argument form of Consumer.
type BiConsumer[A, B any] func(A, B) error

func MakeBiConsumer[A, B any](fn func(A, B) error) BiConsumer[A, B] {
	expect(fn != nil)
	return fn
}

func CheckedBiConsumer[A, B any](fn func(A, B)) BiConsumer[A, B] {
	expect(fn != nil)
	return func(a A, b B) error { fn(a, b); return nil }
}

func CheckedBiConsumerAs[X error, A, B any](fn func(A, B)) BiConsumer[A, B] {
	expect(fn != nil)
	return func(a A, b B) (err error) {
		defer func() { err = wrapped.Catch[X](recover()) }()
		fn(a, b)
		return nil
	}
}

func (c BiConsumer[A, B]) Accept(a A, b B) error { return c(a, b) }

func (c BiConsumer[A, B]) Unchecked() func(A, B) {
	return func(a A, b B) { wrapped.Throw(c(a, b)) }
}

// AndThen sequences a second consumer over the same inputs; any
// failure from the first means the second never runs.
func (c BiConsumer[A, B]) AndThen(next BiConsumer[A, B]) BiConsumer[A, B] {
	expect(next != nil)
	return func(a A, b B) error {
		if err := c(a, b); err != nil {
			return err
		}
		return next(a, b)
	}
}

func (c BiConsumer[A, B]) OnErrorAccept(fallback BiConsumer[A, B]) BiConsumer[A, B] {
	expect(fallback != nil)
	return func(a A, b B) error {
		if err := c(a, b); err != nil {
			return fallback(a, b)
		}
		return nil
	}
}

func (c BiConsumer[A, B]) OnErrorHandle(handler Consumer[error]) BiConsumer[A, B] {
	expect(handler != nil)
	return func(a A, b B) error {
		if err := c(a, b); err != nil {
			return handler(err)
		}
		return nil
	}
}

func (c BiConsumer[A, B]) OnErrorObserve(ob func(error)) BiConsumer[A, B] {
	expect(ob != nil)
	return func(a A, b B) error {
		if err := c(a, b); err != nil {
			ob(err)
		}
		return nil
	}
}

func (c BiConsumer[A, B]) OnErrorThrow(mapper func(error) error) BiConsumer[A, B] {
	expect(mapper != nil)
	return func(a A, b B) error {
		if err := c(a, b); err != nil {
			return mapper(err)
		}
		return nil
	}
}

func (c BiConsumer[A, B]) OnErrorPanic(mapper func(error) error) BiConsumer[A, B] {
	expect(mapper != nil)
	return func(a A, b B) error {
		if err := c(a, b); err != nil {
			panic(mapper(err))
		}
		return nil
	}
}

// OnErrorDiscard suppresses a declared failure with no substitute.
func (c BiConsumer[A, B]) OnErrorDiscard() BiConsumer[A, B] {
	return func(a A, b B) error {
		_ = c(a, b)
		return nil
	}
}
