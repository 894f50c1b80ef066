package demo

import (
	"errors"
	"fmt"
	"io"

	"github.com/hashicorp/go-multierror"

	"github.com/krew-solutions/multicast-go/multicast/delegate"
)

func runCustomDelegates(w io.Writer) {
	fmt.Fprintln(w, "=== Custom delegates ===")

	var op BinaryOp = Multiply
	result, _ := op(Operands{Left: 6, Right: 7})
	fmt.Fprintf(w, "multiply(6, 7) = %d\n", result)

	op = Subtract
	result, _ = op(Operands{Left: 5, Right: 2})
	fmt.Fprintf(w, "subtract(5, 2) = %d\n", result)

	op = Divide
	result, _ = op(Operands{Left: 10, Right: 2})
	fmt.Fprintf(w, "divide(10, 2) = %d\n", result)
	fmt.Fprintln(w)
}

func runTrailingResult(w io.Writer) {
	fmt.Fprintln(w, "=== Multicast: trailing result ===")
	m := delegate.NewMulticast(traced(w, "add", Add), traced(w, "multiply", Multiply))
	result, _ := m.Invoke(Operands{Left: 2, Right: 3})
	fmt.Fprintf(w, "combined [add multiply] with (2, 3) = %d\n", result)
	fmt.Fprintln(w)
}

func runCombinedAbort(w io.Writer) {
	fmt.Fprintln(w, "=== Multicast: combined call aborts on failure ===")
	m := delegate.NewMulticast(
		traced(w, "multiply", Multiply),
		traced(w, "divide", Divide),
		traced(w, "add", Add),
	)
	_, err := m.Invoke(Operands{Left: 4, Right: 0})
	fmt.Fprintf(w, "combined call failed: %v\n", err)
	fmt.Fprintln(w)
}

func runIsolatedInvocation(w io.Writer) {
	fmt.Fprintln(w, "=== Multicast: isolated invocation continues ===")
	m := delegate.NewMulticast[Operands, int](Multiply, Divide, Add)
	for i, member := range m.Members() {
		result, err := member(Operands{Left: 4, Right: 0})
		if err != nil {
			fmt.Fprintf(w, "member %d failed: %v\n", i, err)
			continue
		}
		fmt.Fprintf(w, "member %d = %d\n", i, result)
	}

	result, err := m.InvokeEach(Operands{Left: 4, Right: 0})
	failureCount := 0
	var merr *multierror.Error
	if errors.As(err, &merr) {
		failureCount = len(merr.Errors)
	}
	fmt.Fprintf(w, "isolated run: last successful result = %d with %d failure(s)\n", result, failureCount)
	fmt.Fprintln(w)
}

// traced wraps a delegate so each invocation is written to the
// transcript before its result is passed on.
func traced(w io.Writer, name string, op BinaryOp) BinaryOp {
	return func(o Operands) (int, error) {
		result, err := op(o)
		if err != nil {
			fmt.Fprintf(w, "  %s(%d, %d) failed: %v\n", name, o.Left, o.Right, err)
			return result, err
		}
		fmt.Fprintf(w, "  %s(%d, %d) = %d\n", name, o.Left, o.Right, result)
		return result, nil
	}
}
