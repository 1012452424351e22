// Package wrapped provides the unchecked carrier that transports a
// declared failure through call paths that cannot return an error,
// and the two operations, Throw and Catch, that convert between the
// error-returning and the panicking forms of a call.
//
// A carrier is created only at a wrap boundary (Throw, or the
// Unchecked methods in the root package,) holds exactly one cause,
// and is immutable. Catch is the inverse operation: it inspects a
// recovered panic value and returns the original cause, identity
// preserved, when the cause matches the requested type. Panic values
// that are not carriers, and carriers whose cause does not match,
// always continue to panic.
package wrapped

// Constant is a string-backed error type for declaring sentinel
// errors as constants.
type Constant string

// Error implements the error interface for Constant.
func (c Constant) Error() string { return string(c) }

// ErrNilCause is raised when constructing a carrier without a cause:
// carriers exist only to transport a real failure.
const ErrNilCause Constant = "carrier requires a cause"

// Error is the unchecked carrier. The cause is the declared failure
// being smuggled; the message, when set, prefixes the cause's own
// message.
type Error struct {
	msg   string
	cause error
}

// New constructs a carrier for the provided cause. Panics with
// ErrNilCause for a nil cause.
func New(cause error) *Error {
	if cause == nil {
		panic(ErrNilCause)
	}
	return &Error{cause: cause}
}

// WithMessage constructs a carrier with an annotation that prefixes
// the cause's message. Panics with ErrNilCause for a nil cause.
func WithMessage(msg string, cause error) *Error {
	err := New(cause)
	err.msg = msg
	return err
}

func (e *Error) Error() string {
	if e.msg == "" {
		return e.cause.Error()
	}
	return e.msg + ": " + e.cause.Error()
}

// Cause returns the transported failure.
func (e *Error) Cause() error { return e.cause }

// Unwrap exposes the cause to the errors.Is/errors.As chain for
// callers holding the carrier as an ordinary error value.
func (e *Error) Unwrap() error { return e.cause }

// Throw raises err as a carrier panic. Nil errors are a noop, so
// Throw can wrap any error-returning call site unconditionally. An
// err that is already a carrier is re-raised as-is rather than
// wrapped a second time.
func Throw(err error) {
	switch e := err.(type) {
	case nil:
	case *Error:
		panic(e)
	default:
		panic(New(err))
	}
}

// Catch resolves a recovered panic value against the declared failure
// type X. A nil value (no panic) yields a nil error. A carrier whose
// cause is an X yields that cause, the same value that was thrown,
// never a copy. Everything else, carriers with unrelated causes
// included, resumes panicking.
//
// Catch matches the cause itself: an X interface type matches any
// implementation, a concrete X matches exactly. It does not walk the
// cause's own wrap chain; an error that merely wraps an X is not an X.
func Catch[X error](r any) error {
	if r == nil {
		return nil
	}
	carrier, ok := r.(*Error)
	if !ok {
		panic(r)
	}
	if _, ok := carrier.cause.(X); ok {
		return carrier.cause
	}
	panic(carrier)
}

// As reports whether err is a carrier whose cause is an X, returning
// the cause when it is. Unlike errors.As this matches the cause value
// directly and never walks a wrap chain.
func As[X error](err error) (X, bool) {
	if carrier, ok := err.(*Error); ok {
		if cause, ok := carrier.cause.(X); ok {
			return cause, true
		}
	}
	var zero X
	return zero, false
}

// Cause returns the transported failure when err is a carrier, and
// err itself otherwise.
func Cause(err error) error {
	if carrier, ok := err.(*Error); ok {
		return carrier.cause
	}
	return err
}
