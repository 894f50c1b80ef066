package signals

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/icrowley/fake"
	"github.com/stretchr/testify/assert"
)

type sampleEvent struct {
	payload int
}

func TestSignal_AttachAndNotify(t *testing.T) {
	s := NewSignal[sampleEvent]()
	var called sampleEvent
	s.Attach(func(e sampleEvent) error { called = e; return nil }, "obs")
	err := s.Notify(sampleEvent{1})
	assert.NoError(t, err)
	assert.Equal(t, sampleEvent{1}, called)
}

func TestSignal_NotifyPreservesOrder(t *testing.T) {
	s := NewSignal[sampleEvent]()
	var order []int
	s.Attach(func(e sampleEvent) error { order = append(order, 1); return nil }, "obs1")
	s.Attach(func(e sampleEvent) error { order = append(order, 2); return nil }, "obs2")
	err := s.Notify(sampleEvent{1})
	assert.NoError(t, err)
	assert.Equal(t, []int{1, 2}, order)
}

func TestSignal_NotifyNoObserversIsNoop(t *testing.T) {
	s := NewSignal[sampleEvent]()
	err := s.Notify(sampleEvent{1})
	assert.NoError(t, err)
}

func TestSignal_NotifyEachNoObserversIsNoop(t *testing.T) {
	s := NewSignal[sampleEvent]()
	err := s.NotifyEach(sampleEvent{1})
	assert.NoError(t, err)
}

func TestSignal_NotifyAbortsOnObserverError(t *testing.T) {
	s := NewSignal[sampleEvent]()
	expectedErr := errors.New("fail")
	var ran []string
	s.Attach(func(e sampleEvent) error { ran = append(ran, "a"); return nil }, "a")
	s.Attach(func(e sampleEvent) error { ran = append(ran, "b"); return expectedErr }, "b")
	s.Attach(func(e sampleEvent) error { ran = append(ran, "c"); return nil }, "c")
	err := s.Notify(sampleEvent{1})
	assert.Equal(t, expectedErr, err)
	assert.Equal(t, []string{"a", "b"}, ran)
}

func TestSignal_NotifyEachContinuesPastFailure(t *testing.T) {
	s := NewSignal[sampleEvent]()
	expectedErr := errors.New("fail")
	var ran []string
	s.Attach(func(e sampleEvent) error { ran = append(ran, "a"); return nil }, "a")
	s.Attach(func(e sampleEvent) error { ran = append(ran, "b"); return expectedErr }, "b")
	s.Attach(func(e sampleEvent) error { ran = append(ran, "c"); return nil }, "c")
	err := s.NotifyEach(sampleEvent{1})
	assert.Equal(t, []string{"a", "b", "c"}, ran)
	var merr *multierror.Error
	assert.True(t, errors.As(err, &merr))
	assert.Len(t, merr.Errors, 1)
	assert.True(t, errors.Is(merr.Errors[0], expectedErr))
}

func TestSignal_NotifyEachLabelsFailureWithToken(t *testing.T) {
	s := NewSignal[sampleEvent]()
	s.Attach(func(e sampleEvent) error { return errors.New("fail") }, "obs")
	err := s.NotifyEach(sampleEvent{1})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "observer ")
}

func TestSignal_Detach(t *testing.T) {
	s := NewSignal[sampleEvent]()
	called := false
	observer := Observer[sampleEvent](func(e sampleEvent) error { called = true; return nil })
	s.Attach(observer, "obs")
	s.Detach(observer, "obs")
	err := s.Notify(sampleEvent{1})
	assert.NoError(t, err)
	assert.False(t, called)
}

func TestSignal_DetachNonexistentIsSilent(t *testing.T) {
	s := NewSignal[sampleEvent]()
	observer := Observer[sampleEvent](func(e sampleEvent) error { return nil })
	s.Detach(observer, "nonexistent") // should not panic
}

func TestSignal_AttachDuplicateIsIdempotent(t *testing.T) {
	s := NewSignal[sampleEvent]()
	callCount := 0
	observer := Observer[sampleEvent](func(e sampleEvent) error { callCount++; return nil })
	s.Attach(observer, "obs")
	s.Attach(observer, "obs")
	err := s.Notify(sampleEvent{1})
	assert.NoError(t, err)
	assert.Equal(t, 1, callCount)
}

func TestSignal_AttachDuplicateObserverIDKeepsFirst(t *testing.T) {
	s := NewSignal[sampleEvent]()
	var which int
	s.Attach(func(e sampleEvent) error { which = 1; return nil }, "same")
	s.Attach(func(e sampleEvent) error { which = 2; return nil }, "same")
	err := s.Notify(sampleEvent{1})
	assert.NoError(t, err)
	assert.Equal(t, 1, which)
}

func TestSignal_DisposableDetaches(t *testing.T) {
	s := NewSignal[sampleEvent]()
	called := false
	d := s.Attach(func(e sampleEvent) error { called = true; return nil }, "obs")
	d.Dispose()
	err := s.Notify(sampleEvent{1})
	assert.NoError(t, err)
	assert.False(t, called)
}

func TestSignal_AttachWithoutID(t *testing.T) {
	s := NewSignal[sampleEvent]()
	var called sampleEvent
	observer := Observer[sampleEvent](func(e sampleEvent) error { called = e; return nil })
	s.Attach(observer)
	err := s.Notify(sampleEvent{42})
	assert.NoError(t, err)
	assert.Equal(t, sampleEvent{42}, called)
}

func TestSignal_DetachWithoutID(t *testing.T) {
	s := NewSignal[sampleEvent]()
	called := false
	observer := Observer[sampleEvent](func(e sampleEvent) error { called = true; return nil })
	s.Attach(observer)
	s.Detach(observer)
	err := s.Notify(sampleEvent{1})
	assert.NoError(t, err)
	assert.False(t, called)
}

func TestSignal_DetachDuringNotifyUsesSnapshot(t *testing.T) {
	s := NewSignal[sampleEvent]()
	var ran []string
	second := Observer[sampleEvent](func(e sampleEvent) error { ran = append(ran, "second"); return nil })
	s.Attach(func(e sampleEvent) error {
		ran = append(ran, "first")
		s.Detach(second, "second")
		return nil
	}, "first")
	s.Attach(second, "second")
	err := s.Notify(sampleEvent{1})
	assert.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, ran)
	assert.Equal(t, 1, s.Len())
}

func TestSignal_EachObserverCalledExactlyOnce(t *testing.T) {
	s := NewSignal[sampleEvent]()
	const observerCount = 25
	calls := map[string]int{}
	for i := 0; i < observerCount; i++ {
		label := fmt.Sprintf("%s-%d", fake.Word(), i)
		s.Attach(func(e sampleEvent) error { calls[label]++; return nil }, label)
	}
	err := s.Notify(sampleEvent{1})
	assert.NoError(t, err)
	assert.Len(t, calls, observerCount)
	for label, n := range calls {
		assert.Equal(t, 1, n, label)
	}
}

func TestSignal_Len(t *testing.T) {
	s := NewSignal[sampleEvent]()
	assert.Equal(t, 0, s.Len())
	s.Attach(func(e sampleEvent) error { return nil }, "obs")
	assert.Equal(t, 1, s.Len())
}

func TestMakeIDForObserver(t *testing.T) {
	observer := Observer[sampleEvent](func(e sampleEvent) error { return nil })
	assert.Equal(t, reflect.ValueOf(observer).Pointer(), makeID(observer))
}

func TestSignal_ImplementsNotifier(t *testing.T) {
	var _ Notifier[sampleEvent] = NewSignal[sampleEvent]()
}
