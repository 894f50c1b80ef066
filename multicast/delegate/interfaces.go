// Package delegate implements callable references and multicast
// delegate lists.
//
// A Delegate is a reference to any procedure of a fixed signature: a
// free function, a closure over enclosing state, or a method value all
// coerce to it. A Multicast is an ordered list of delegates sharing one
// signature; invoking the list invokes every member in registration
// order and yields only the last member's result.
package delegate

import (
	"github.com/krew-solutions/multicast-go/multicast/disposable"
)

// Delegate is a callable reference of signature A -> (R, error).
type Delegate[A, R any] = func(A) (R, error)

// Func is the built-in generic delegate form for value-returning
// procedures. It is the same shape as Delegate.
type Func[A, R any] = Delegate[A, R]

// Action is the built-in generic delegate form for procedures with no
// result.
type Action[T any] = func(T)

// Predicate is the built-in generic delegate form for boolean tests.
type Predicate[T any] = func(T) bool

// Multicast is an ordered list of delegates sharing one signature.
//
// Combine appends (duplicates allowed), Remove drops the last
// occurrence matching the identity, Invoke runs the whole list as one
// combined call, and Members hands out a membership snapshot so a
// caller can invoke each member in isolation.
type Multicast[A, R any] interface {
	Combine(d Delegate[A, R], memberID ...any) disposable.Disposable
	Remove(d Delegate[A, R], memberID ...any)
	Invoke(args A) (R, error)
	InvokeEach(args A) (R, error)
	Members() []Delegate[A, R]
	Len() int
}
