package signals

import (
	"reflect"

	"github.com/hashicorp/go-multierror"
	"github.com/oklog/ulid/v2"
	"github.com/pkg/errors"

	"github.com/krew-solutions/multicast-go/multicast/disposable"
)

type entry[E any] struct {
	id       any
	token    ulid.ULID
	observer Observer[E]
}

type SignalImp[E any] struct {
	observers []entry[E]
}

func NewSignal[E any]() *SignalImp[E] {
	return &SignalImp[E]{}
}

// Attach registers the observer at the end of the list. Attaching a
// duplicate identity is idempotent. Each attachment gets a subscription
// token that labels its failures in NotifyEach.
func (s *SignalImp[E]) Attach(observer Observer[E], observerID ...any) disposable.Disposable {
	id := resolveID(observer, observerID)
	for _, e := range s.observers {
		if e.id == id {
			return disposable.NewDisposable(func() {
				s.Detach(observer, id)
			})
		}
	}
	s.observers = append(s.observers, entry[E]{id: id, token: ulid.Make(), observer: observer})
	return disposable.NewDisposable(func() {
		s.Detach(observer, id)
	})
}

func (s *SignalImp[E]) Detach(observer Observer[E], observerID ...any) {
	id := resolveID(observer, observerID)
	for i, e := range s.observers {
		if e.id == id {
			s.observers = append(s.observers[:i], s.observers[i+1:]...)
			return
		}
	}
}

// Notify raises the slot as one combined call: every observer in
// registration order, aborting on the first observer error. Raising
// with no observers returns nil.
func (s *SignalImp[E]) Notify(event E) error {
	if len(s.observers) == 0 {
		return nil
	}
	for _, e := range s.snapshot() {
		if err := e.observer(event); err != nil {
			return err
		}
	}
	return nil
}

// NotifyEach raises the slot with per-observer isolation: every
// observer runs even when earlier ones fail. Failures are labelled with
// the subscription token and aggregated.
func (s *SignalImp[E]) NotifyEach(event E) error {
	var errs error
	for _, e := range s.snapshot() {
		if err := e.observer(event); err != nil {
			errs = multierror.Append(errs, errors.Wrapf(err, "observer %s", e.token))
		}
	}
	return errs
}

func (s *SignalImp[E]) Len() int {
	return len(s.observers)
}

// snapshot copies the membership so observers may attach or detach
// while a raise is in flight.
func (s *SignalImp[E]) snapshot() []entry[E] {
	out := make([]entry[E], len(s.observers))
	copy(out, s.observers)
	return out
}

func resolveID[E any](observer Observer[E], observerID []any) any {
	if len(observerID) > 0 {
		return observerID[0]
	}
	return makeID(observer)
}

func makeID[E any](observer Observer[E]) uintptr {
	return reflect.ValueOf(observer).Pointer()
}
