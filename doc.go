// Package throwfn defines function-shape types whose contracts admit
// a declared failure (an error return,) together with combinators
// that attach recovery, fallback, and mapping behavior, and adapters
// that convert between the error-returning form and a panicking form
// that raises failures through an unchecked carrier.
//
// The shapes (Function, BiFunction, Supplier, Consumer, BiConsumer,
// Runner, Predicate, BiPredicate, and the operator types) all follow
// the same protocol:
//
//   - the Unchecked method produces the panicking form of a callable:
//     a declared failure is raised as a *wrapped.Error carrier panic,
//     success values pass through unchanged, and panics from the
//     callable itself are never intercepted or re-wrapped.
//
//   - the Checked<Shape>As adapters invert Unchecked: a carrier panic
//     whose cause matches the requested error type resolves back to
//     that cause, the very value that failed, as an ordinary returned
//     error. Carriers with unrelated causes, and panic values that
//     are not carriers, continue to panic.
//
//   - the OnError* combinators recover only the declared failure of
//     the callable they wrap. Panics, carrier or otherwise, from
//     either the primary callable or any handler/fallback propagate
//     to the caller untouched.
//
// Every combinator and factory validates its function arguments
// before anything is invoked, panicking with ErrNilFunction for a nil
// argument. The library holds no state: every composed callable is a
// plain synchronous delegation on the caller's stack, and
// thread-safety is inherited entirely from the callables supplied.
package throwfn
