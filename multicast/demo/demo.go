// Package demo walks through the delegate and event machinery of this
// module: custom delegate types, multicast invocation with
// trailing-result and abort-on-failure semantics, isolated per-member
// invocation, the built-in generic delegate forms, closures, and the
// publisher/subscriber event pattern.
//
// Run writes a deterministic transcript listing each call in order.
package demo

import (
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/krew-solutions/multicast-go/multicast/delegate"
	"github.com/krew-solutions/multicast-go/multicast/signals"
)

// Run is the demonstration entry point. All state lives in locals; the
// only output is what gets written to w.
func Run(w io.Writer) error {
	runCustomDelegates(w)
	runTrailingResult(w)
	runCombinedAbort(w)
	runIsolatedInvocation(w)
	runBuiltinForms(w)
	runClosures(w)
	return runPublisherSubscriber(w)
}

func runBuiltinForms(w io.Writer) {
	fmt.Fprintln(w, "=== Built-in delegate forms ===")

	isEven := delegate.Predicate[int](func(n int) bool { return n%2 == 0 })
	fmt.Fprintf(w, "predicate isEven(42) = %v\n", isEven(42))

	square := delegate.Func[int, int](func(n int) (int, error) { return n * n, nil })
	squared, _ := square(6)
	fmt.Fprintf(w, "func square(6) = %d\n", squared)

	say := delegate.Action[string](func(msg string) {
		fmt.Fprintf(w, "action says: %s\n", msg)
	})
	say("hello delegates")
	fmt.Fprintln(w)
}

func runClosures(w io.Writer) {
	fmt.Fprintln(w, "=== Closures and anonymous functions ===")
	accumulate := MakeAccumulator()
	for _, n := range []int{1, 2, 39} {
		total, _ := accumulate(n)
		fmt.Fprintf(w, "accumulate(%d) = %d\n", n, total)
	}
	fmt.Fprintln(w)
}

func runPublisherSubscriber(w io.Writer) error {
	fmt.Fprintln(w, "=== Publisher/subscriber ===")

	counter := NewCounter(10)
	slot := counter.ThresholdReached()

	auditor := signals.Observer[ThresholdReachedEvent](func(e ThresholdReachedEvent) error {
		fmt.Fprintf(w, "auditor: total %d reached threshold %d\n", e.Total, e.Threshold)
		return nil
	})
	slot.Attach(auditor, "auditor")
	alerter := slot.Attach(func(e ThresholdReachedEvent) error {
		fmt.Fprintf(w, "alerter: total %d reached threshold %d\n", e.Total, e.Threshold)
		return nil
	}, "alerter")

	for _, n := range []int{3, 4, 5} {
		if err := counter.Add(n); err != nil {
			return errors.Wrap(err, "advance counter")
		}
		fmt.Fprintf(w, "counter total = %d\n", counter.Total())
	}

	alerter.Dispose()
	slot.Detach(auditor, "auditor")

	silent := NewCounter(1)
	if err := silent.Add(5); err != nil {
		return errors.Wrap(err, "raise with no subscribers")
	}
	fmt.Fprintln(w, "raising with no subscribers is a no-op")
	return nil
}
