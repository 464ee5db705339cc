package decorate

import (
	"fmt"
	"io"
	"os"
)

// Reporter renders the outcome of a Result-returning callable for humans.
// ReportSuccess receives the wrapped value; ReportFailure receives only the
// diagnostic message, so implementations can never read an unset value.
type Reporter[R any] interface {
	ReportSuccess(value R)
	ReportFailure(msg string)
}

// ConsoleReporter writes single-line reports to an io.Writer. The success
// line is produced by a caller-supplied formatter since its wording is
// domain-specific; failures are always reported as
// "There was an error: <msg>".
type ConsoleReporter[R any] struct {
	out     io.Writer
	success func(value R) string
}

// NewConsoleReporter creates a ConsoleReporter writing to out with the
// given success formatter. A nil out defaults to os.Stdout; a nil success
// formatter falls back to plain %v rendering.
func NewConsoleReporter[R any](out io.Writer, success func(value R) string) ConsoleReporter[R] {
	if out == nil {
		out = os.Stdout
	}

	if success == nil {
		success = func(value R) string {
			return fmt.Sprintf("%v", value)
		}
	}

	return ConsoleReporter[R]{out: out, success: success}
}

// ReportSuccess writes the formatted success line.
func (c ConsoleReporter[R]) ReportSuccess(value R) {
	_, _ = fmt.Fprintln(c.out, c.success(value))
}

// ReportFailure writes the failure line with the diagnostic message.
func (c ConsoleReporter[R]) ReportFailure(msg string) {
	_, _ = fmt.Fprintf(c.out, "There was an error: %s\n", msg)
}

// Output1 wraps a Result-returning one-argument callable so that after each
// invocation the outcome is reported through reporter. The Result passes
// through unchanged, enabling further chaining. A nil reporter disables
// reporting.
func Output1[A1, R any](fn func(A1) Result[R], reporter Reporter[R]) func(A1) Result[R] {
	return func(a1 A1) Result[R] {
		res := fn(a1)
		report(reporter, res)

		return res
	}
}

// Output2 is Output1 for two-argument callables.
func Output2[A1, A2, R any](fn func(A1, A2) Result[R], reporter Reporter[R]) func(A1, A2) Result[R] {
	return func(a1 A1, a2 A2) Result[R] {
		res := fn(a1, a2)
		report(reporter, res)

		return res
	}
}

// Output3 is Output1 for three-argument callables.
func Output3[A1, A2, A3, R any](fn func(A1, A2, A3) Result[R], reporter Reporter[R]) func(A1, A2, A3) Result[R] {
	return func(a1 A1, a2 A2, a3 A3) Result[R] {
		res := fn(a1, a2, a3)
		report(reporter, res)

		return res
	}
}

func report[R any](reporter Reporter[R], res Result[R]) {
	if reporter == nil {
		return
	}

	if res.IsBad() {
		reporter.ReportFailure(res.Msg())
		return
	}

	reporter.ReportSuccess(res.Value())
}
