package disposable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisposable_DisposeRunsCallback(t *testing.T) {
	called := false
	d := NewDisposable(func() { called = true })
	d.Dispose()
	assert.True(t, called)
}

func TestDisposable_DisposeIsIdempotent(t *testing.T) {
	callCount := 0
	d := NewDisposable(func() { callCount++ })
	d.Dispose()
	d.Dispose()
	assert.Equal(t, 1, callCount)
}

func TestCompositeDisposable_DisposesAll(t *testing.T) {
	var disposed []int
	c := NewCompositeDisposable(
		NewDisposable(func() { disposed = append(disposed, 1) }),
		NewDisposable(func() { disposed = append(disposed, 2) }),
	)
	c.Dispose()
	assert.Equal(t, []int{1, 2}, disposed)
}

func TestCompositeDisposable_Empty(t *testing.T) {
	c := NewCompositeDisposable()
	c.Dispose() // should not panic
}
