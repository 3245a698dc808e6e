package repos

import (
	"context"
	"sync"

	applog "coffeeshop/internal/log"
)

// AsyncWriter runs persistence writes in the background. Writes are never
// cancelled or ordered against each other; whichever finishes last wins.
// Failures are logged under "<action>.fail" and otherwise dropped.
type AsyncWriter struct {
	wg sync.WaitGroup
}

func NewAsyncWriter() *AsyncWriter { return &AsyncWriter{} }

// Go starts fn detached from ctx cancellation.
func (w *AsyncWriter) Go(ctx context.Context, action string, fn func(context.Context) error) {
	ctx = context.WithoutCancel(ctx)
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		if err := fn(ctx); err != nil {
			applog.Error(nil, action+".fail", err, nil)
		}
	}()
}

// Wait blocks until every write started so far has finished.
func (w *AsyncWriter) Wait() { w.wg.Wait() }
