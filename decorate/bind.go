package decorate

// In Go the bound-member adapter is the method expression itself: for a
// method M on *T, the expression (*T).M is already a free function taking
// the instance as its explicit first argument, so it composes directly
// with the owner-first decorator arities. The Bind helpers go the other
// way: they pin an owner-first callable to one instance, producing a plain
// callable that can flow through the owner-less decorator arities or be
// handed to code that knows nothing about the owner.

// Bind0 pins an owner-first callable with no further arguments to owner.
func Bind0[O, R any](owner *O, fn func(*O) R) func() R {
	return func() R {
		return fn(owner)
	}
}

// Bind1 pins an owner-first one-argument callable to owner.
func Bind1[O, A1, R any](owner *O, fn func(*O, A1) R) func(A1) R {
	return func(a1 A1) R {
		return fn(owner, a1)
	}
}

// Bind2 pins an owner-first two-argument callable to owner.
func Bind2[O, A1, A2, R any](owner *O, fn func(*O, A1, A2) R) func(A1, A2) R {
	return func(a1 A1, a2 A2) R {
		return fn(owner, a1, a2)
	}
}

// Bind3 pins an owner-first three-argument callable to owner.
func Bind3[O, A1, A2, A3, R any](owner *O, fn func(*O, A1, A2, A3) R) func(A1, A2, A3) R {
	return func(a1 A1, a2 A2, a3 A3) R {
		return fn(owner, a1, a2, a3)
	}
}
