// Package decorate provides composable wrappers ("decorators") for callables,
// in the spirit of Python function decorators.
//
// A decorator takes a callable and returns a new callable with added
// behavior. Decorators compose by nesting, resolved once at construction
// time:
//
//	chained := decorate.LogTime2(
//		decorate.Output2(
//			decorate.FailSafe2(calculate),
//			reporter,
//		),
//	)
//
// The building blocks:
//
//   - Result: a container holding either a success value or a failure with
//     a diagnostic message.
//   - FailSafeN: wraps a fallible callable so that neither errors nor panics
//     escape; both become failure Results.
//   - OutputN: reports the outcome of a Result-returning callable through a
//     Reporter, then passes the Result through unchanged.
//   - LogTimeN: emits a wall-clock timestamp line after delegating,
//     returning the inner value unchanged.
//   - SlotN: a struct-member-declarable callable bound to an owning
//     instance, whose behavior is assigned once during construction.
//
// Go has no variadic type parameters, so callables are supported at fixed
// arities: the numeric suffix on FailSafe1/FailSafe2/... counts the
// arguments of the wrapped callable. A method expression such as
// (*Basket).calculateCost is already a free function taking the owner as
// its first argument, so it slots directly into the arity that includes
// the owner.
//
// Beyond the pure chain, context-aware decorators cover infrastructure
// concerns for operations shaped like func(ctx, args...) (R, error):
// ObservedN (logging, metrics, tracing), RetriedN (exponential backoff),
// and JournaledN (persisted invocation records, see package journalengine).
package decorate
