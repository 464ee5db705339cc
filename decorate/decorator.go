package decorate

// Decorator transforms a callable of type F into another callable of the
// same type with added behavior.
type Decorator[F any] func(F) F

// Chain applies the given decorators to fn inside-out, so that
// Chain(fn, d3, d2, d1) is equivalent to d3(d2(d1(fn))): d1 wraps closest
// to fn, d3 observes the call first. Composition happens once, here; no
// dynamic dispatch is involved afterward.
func Chain[F any](fn F, decorators ...Decorator[F]) F {
	for i := len(decorators) - 1; i >= 0; i-- {
		fn = decorators[i](fn)
	}

	return fn
}
