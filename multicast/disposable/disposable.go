// Package disposable provides undo handles for registrations.
//
// Attaching an observer or combining a delegate returns a Disposable
// whose Dispose reverses the registration. Dispose is idempotent.
package disposable

type Disposable interface {
	Dispose()
}

type DisposableImp struct {
	callback func()
	disposed bool
}

func NewDisposable(callback func()) *DisposableImp {
	return &DisposableImp{callback: callback}
}

func (d *DisposableImp) Dispose() {
	if d.disposed {
		return
	}
	d.disposed = true
	d.callback()
}

type CompositeDisposableImp struct {
	disposables []Disposable
}

func NewCompositeDisposable(disposables ...Disposable) *CompositeDisposableImp {
	return &CompositeDisposableImp{disposables: disposables}
}

func (c *CompositeDisposableImp) Dispose() {
	for _, d := range c.disposables {
		d.Dispose()
	}
}
