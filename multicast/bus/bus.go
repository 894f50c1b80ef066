package bus

import (
	"reflect"

	"github.com/hashicorp/go-multierror"

	"github.com/krew-solutions/multicast-go/multicast/disposable"
)

type subscriberEntry struct {
	key     uintptr
	handler func(any) error
}

func NewBus() *BusImp {
	return &BusImp{
		subscribers: make(map[reflect.Type][]subscriberEntry),
	}
}

type BusImp struct {
	subscribers map[reflect.Type][]subscriberEntry
}

// --- Typed free functions ---
//
// These are free functions because Go does not support type parameters
// on methods; they keep E concrete at the call site while the bus core
// stays untyped.

// Subscribe registers a typed handler for events of type E.
func Subscribe[E any](b *BusImp, handler EventHandler[E]) disposable.Disposable {
	eventType := reflect.TypeFor[E]()
	key := reflect.ValueOf(handler).Pointer()
	b.subscribers[eventType] = append(b.subscribers[eventType], subscriberEntry{
		key: key,
		handler: func(event any) error {
			return handler(event.(E))
		},
	})
	return disposable.NewDisposable(func() {
		Unsubscribe(b, handler)
	})
}

// Unsubscribe removes a previously subscribed typed handler.
func Unsubscribe[E any](b *BusImp, handler EventHandler[E]) {
	eventType := reflect.TypeFor[E]()
	key := reflect.ValueOf(handler).Pointer()
	entries := b.subscribers[eventType]
	for i, e := range entries {
		if e.key == key {
			b.subscribers[eventType] = append(entries[:i], entries[i+1:]...)
			return
		}
	}
}

// Publish routes the event to all handlers of its type in registration
// order, aborting on the first handler error. No handlers is a no-op.
func Publish[E any](b *BusImp, event E) error {
	for _, entry := range b.subscribers[reflect.TypeFor[E]()] {
		if err := entry.handler(event); err != nil {
			return err
		}
	}
	return nil
}

// PublishEach routes the event to every handler of its type even when
// earlier handlers fail, aggregating failures. Handlers are taken from
// a snapshot so they may subscribe or unsubscribe while dispatch is in
// flight.
func PublishEach[E any](b *BusImp, event E) error {
	eventType := reflect.TypeFor[E]()
	entries := make([]subscriberEntry, len(b.subscribers[eventType]))
	copy(entries, b.subscribers[eventType])

	var errs error
	for _, entry := range entries {
		if err := entry.handler(event); err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	return errs
}
