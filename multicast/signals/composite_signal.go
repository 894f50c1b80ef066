package signals

import (
	"github.com/hashicorp/go-multierror"

	"github.com/krew-solutions/multicast-go/multicast/disposable"
)

// CompositeSignalImp fans attach, detach and raise out to a fixed set
// of delegate slots.
type CompositeSignalImp[E any] struct {
	delegates []Notifier[E]
}

func NewCompositeSignal[E any](delegates ...Notifier[E]) *CompositeSignalImp[E] {
	return &CompositeSignalImp[E]{delegates: delegates}
}

func (s *CompositeSignalImp[E]) Attach(observer Observer[E], observerID ...any) disposable.Disposable {
	disposables := make([]disposable.Disposable, 0, len(s.delegates))
	for _, delegate := range s.delegates {
		disposables = append(disposables, delegate.Attach(observer, observerID...))
	}
	return disposable.NewCompositeDisposable(disposables...)
}

func (s *CompositeSignalImp[E]) Detach(observer Observer[E], observerID ...any) {
	for _, delegate := range s.delegates {
		delegate.Detach(observer, observerID...)
	}
}

func (s *CompositeSignalImp[E]) Notify(event E) error {
	for _, delegate := range s.delegates {
		if err := delegate.Notify(event); err != nil {
			return err
		}
	}
	return nil
}

func (s *CompositeSignalImp[E]) NotifyEach(event E) error {
	var errs error
	for _, delegate := range s.delegates {
		if err := delegate.NotifyEach(event); err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	return errs
}

func (s *CompositeSignalImp[E]) Len() int {
	total := 0
	for _, delegate := range s.delegates {
		total += delegate.Len()
	}
	return total
}
