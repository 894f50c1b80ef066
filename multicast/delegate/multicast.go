package delegate

import (
	"fmt"
	"reflect"

	"github.com/hashicorp/go-multierror"

	"github.com/krew-solutions/multicast-go/multicast/disposable"
)

// ErrNoMembers is returned by Invoke on an empty list. This is the
// absent-target condition that owner-guarded slots check for before
// raising.
var ErrNoMembers = fmt.Errorf("delegate: multicast has no members")

type member[A, R any] struct {
	id any
	fn Delegate[A, R]
}

type MulticastImp[A, R any] struct {
	members []member[A, R]
}

func NewMulticast[A, R any](delegates ...Delegate[A, R]) *MulticastImp[A, R] {
	m := &MulticastImp[A, R]{}
	for _, d := range delegates {
		m.Combine(d)
	}
	return m
}

// Combine appends d to the list. Unlike a notification slot, a
// multicast list accepts the same member more than once.
func (m *MulticastImp[A, R]) Combine(d Delegate[A, R], memberID ...any) disposable.Disposable {
	id := resolveID(d, memberID)
	m.members = append(m.members, member[A, R]{id: id, fn: d})
	return disposable.NewDisposable(func() {
		m.Remove(d, id)
	})
}

// Remove drops the last occurrence whose identity matches. Removing an
// absent member is silent.
func (m *MulticastImp[A, R]) Remove(d Delegate[A, R], memberID ...any) {
	id := resolveID(d, memberID)
	for i := len(m.members) - 1; i >= 0; i-- {
		if m.members[i].id == id {
			m.members = append(m.members[:i], m.members[i+1:]...)
			return
		}
	}
}

// Invoke runs the list as one combined call: every member in
// registration order, each receiving the same args. A member error
// aborts the remaining members and is returned as-is. On success the
// result is the last member's result; intermediate results are
// discarded.
func (m *MulticastImp[A, R]) Invoke(args A) (R, error) {
	var last R
	if len(m.members) == 0 {
		return last, ErrNoMembers
	}
	for _, e := range m.members {
		result, err := e.fn(args)
		if err != nil {
			var zero R
			return zero, err
		}
		last = result
	}
	return last, nil
}

// InvokeEach invokes every member of a membership snapshot even when
// earlier members fail, aggregating failures. The result is the last
// successful member's result.
func (m *MulticastImp[A, R]) InvokeEach(args A) (R, error) {
	var last R
	var errs error
	for _, fn := range m.Members() {
		result, err := fn(args)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		last = result
	}
	return last, errs
}

// Members returns a snapshot of the membership in registration order,
// safe to iterate while the list is mutated.
func (m *MulticastImp[A, R]) Members() []Delegate[A, R] {
	out := make([]Delegate[A, R], len(m.members))
	for i, e := range m.members {
		out[i] = e.fn
	}
	return out
}

func (m *MulticastImp[A, R]) Len() int {
	return len(m.members)
}

func resolveID[A, R any](d Delegate[A, R], memberID []any) any {
	if len(memberID) > 0 {
		return memberID[0]
	}
	return makeID(d)
}

func makeID[A, R any](d Delegate[A, R]) uintptr {
	return reflect.ValueOf(d).Pointer()
}
