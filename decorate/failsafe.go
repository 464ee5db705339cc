package decorate

// defaultPanicMessage is used when a recovered panic value carries no
// usable description.
const defaultPanicMessage = "default exception"

// FailSafe1 wraps a fallible one-argument callable so that neither a
// returned error nor a panic escapes: both become failure Results. The
// wrapped callable is invoked exactly once per call, and downstream
// decorators only ever observe a Result.
func FailSafe1[A1, R any](fn func(A1) (R, error)) func(A1) Result[R] {
	return func(a1 A1) (res Result[R]) {
		defer recoverIntoResult(&res)

		value, err := fn(a1)
		if err != nil {
			return Fail[R](err.Error())
		}

		return Ok(value)
	}
}

// FailSafe2 is FailSafe1 for two-argument callables.
func FailSafe2[A1, A2, R any](fn func(A1, A2) (R, error)) func(A1, A2) Result[R] {
	return func(a1 A1, a2 A2) (res Result[R]) {
		defer recoverIntoResult(&res)

		value, err := fn(a1, a2)
		if err != nil {
			return Fail[R](err.Error())
		}

		return Ok(value)
	}
}

// FailSafe3 is FailSafe1 for three-argument callables, the shape of a
// method expression with two explicit arguments.
func FailSafe3[A1, A2, A3, R any](fn func(A1, A2, A3) (R, error)) func(A1, A2, A3) Result[R] {
	return func(a1 A1, a2 A2, a3 A3) (res Result[R]) {
		defer recoverIntoResult(&res)

		value, err := fn(a1, a2, a3)
		if err != nil {
			return Fail[R](err.Error())
		}

		return Ok(value)
	}
}

// recoverIntoResult converts a recovered panic into a failure Result
// written through res. Panics carrying an error or a string keep their
// description; anything else degrades to the generic message.
func recoverIntoResult[R any](res *Result[R]) {
	cause := recover()
	if cause == nil {
		return
	}

	switch v := cause.(type) {
	case error:
		*res = Fail[R](v.Error())
	case string:
		*res = Fail[R](v)
	default:
		*res = Fail[R](defaultPanicMessage)
	}
}
