// Package bus implements a type-routed publisher/subscriber: handlers
// subscribe per event type and Publish routes an event to the handlers
// of its type, in registration order.
package bus

// EventHandler handles an event of type E.
type EventHandler[E any] = func(E) error
