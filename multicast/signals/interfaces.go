// Package signals implements owner-guarded notification slots.
//
// An owner exposes a slot to the outside world as Signal, which permits
// only Attach and Detach. Raising the slot is reserved to the owner,
// which keeps the concrete SignalImp and calls Notify or NotifyEach on
// it. Raising a slot with no observers is a no-op.
package signals

import (
	"github.com/krew-solutions/multicast-go/multicast/disposable"
)

type Observer[E any] func(E) error

// Signal is the subscriber-facing surface of a notification slot.
// Attach and Detach are the only externally permitted mutations.
type Signal[E any] interface {
	Attach(observer Observer[E], observerID ...any) disposable.Disposable
	Detach(observer Observer[E], observerID ...any)
}

// Notifier is the owner-facing surface: the full Signal plus the right
// to raise it.
type Notifier[E any] interface {
	Signal[E]
	Notify(event E) error
	NotifyEach(event E) error
	Len() int
}
