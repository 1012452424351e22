package throwfn

// UnaryOperator is a Function whose input and output types agree. Its
// methods delegate to the Function implementations.
type UnaryOperator[T any] func(T) (T, error)

// MakeUnaryOperator adapts a raw function into a UnaryOperator.
// Panics with ErrNilFunction when fn is nil.
func MakeUnaryOperator[T any](fn func(T) (T, error)) UnaryOperator[T] {
	expect(fn != nil)
	return fn
}

// CheckedUnaryOperator adapts a panicking operator with no
// transformation.
func CheckedUnaryOperator[T any](fn func(T) T) UnaryOperator[T] {
	return UnaryOperator[T](CheckedFunction(fn))
}

// CheckedUnaryOperatorAs adapts a panicking operator via the unwrap
// operation against the declared failure type X.
func CheckedUnaryOperatorAs[X error, T any](fn func(T) T) UnaryOperator[T] {
	return UnaryOperator[T](CheckedFunctionAs[X](fn))
}

// Identity returns the operator that yields its input unchanged.
func Identity[T any]() UnaryOperator[T] {
	return func(in T) (T, error) { return in, nil }
}

func (op UnaryOperator[T]) fn() Function[T, T] { return Function[T, T](op) }

func (op UnaryOperator[T]) Apply(in T) (T, error) { return op(in) }
func (op UnaryOperator[T]) Unchecked() func(T) T  { return op.fn().Unchecked() }

func (op UnaryOperator[T]) OnErrorReturn(value T) UnaryOperator[T] {
	return UnaryOperator[T](op.fn().OnErrorReturn(value))
}

func (op UnaryOperator[T]) OnErrorApply(fallback UnaryOperator[T]) UnaryOperator[T] {
	return UnaryOperator[T](op.fn().OnErrorApply(fallback.fn()))
}

func (op UnaryOperator[T]) OnErrorHandle(handler Function[error, T]) UnaryOperator[T] {
	return UnaryOperator[T](op.fn().OnErrorHandle(handler))
}

func (op UnaryOperator[T]) OnErrorResolve(fn func(error) T) UnaryOperator[T] {
	return UnaryOperator[T](op.fn().OnErrorResolve(fn))
}

func (op UnaryOperator[T]) OnErrorThrow(mapper func(error) error) UnaryOperator[T] {
	return UnaryOperator[T](op.fn().OnErrorThrow(mapper))
}

func (op UnaryOperator[T]) OnErrorPanic(mapper func(error) error) UnaryOperator[T] {
	return UnaryOperator[T](op.fn().OnErrorPanic(mapper))
}

// BinaryOperator is a BiFunction over a single type. Its methods
// delegate to the BiFunction implementations.
type BinaryOperator[T any] func(T, T) (T, error)

// MakeBinaryOperator adapts a raw function into a BinaryOperator.
// Panics with ErrNilFunction when fn is nil.
func MakeBinaryOperator[T any](fn func(T, T) (T, error)) BinaryOperator[T] {
	expect(fn != nil)
	return fn
}

func CheckedBinaryOperator[T any](fn func(T, T) T) BinaryOperator[T] {
	return BinaryOperator[T](CheckedBiFunction(fn))
}

func CheckedBinaryOperatorAs[X error, T any](fn func(T, T) T) BinaryOperator[T] {
	return BinaryOperator[T](CheckedBiFunctionAs[X](fn))
}

func (op BinaryOperator[T]) fn() BiFunction[T, T, T] { return BiFunction[T, T, T](op) }

func (op BinaryOperator[T]) Apply(a, b T) (T, error) { return op(a, b) }
func (op BinaryOperator[T]) Unchecked() func(T, T) T { return op.fn().Unchecked() }

func (op BinaryOperator[T]) OnErrorReturn(value T) BinaryOperator[T] {
	return BinaryOperator[T](op.fn().OnErrorReturn(value))
}

func (op BinaryOperator[T]) OnErrorApply(fallback BinaryOperator[T]) BinaryOperator[T] {
	return BinaryOperator[T](op.fn().OnErrorApply(fallback.fn()))
}

func (op BinaryOperator[T]) OnErrorHandle(handler Function[error, T]) BinaryOperator[T] {
	return BinaryOperator[T](op.fn().OnErrorHandle(handler))
}

func (op BinaryOperator[T]) OnErrorResolve(fn func(error) T) BinaryOperator[T] {
	return BinaryOperator[T](op.fn().OnErrorResolve(fn))
}

func (op BinaryOperator[T]) OnErrorThrow(mapper func(error) error) BinaryOperator[T] {
	return BinaryOperator[T](op.fn().OnErrorThrow(mapper))
}

func (op BinaryOperator[T]) OnErrorPanic(mapper func(error) error) BinaryOperator[T] {
	return BinaryOperator[T](op.fn().OnErrorPanic(mapper))
}
