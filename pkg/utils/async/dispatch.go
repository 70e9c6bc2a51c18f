package async

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/vatika/pkg/utils/errutil"
	"github.com/secmon-lab/vatika/pkg/utils/logging"
)

// Dispatcher runs handlers in background goroutines detached from the
// request context and lets the owner wait for them on shutdown.
type Dispatcher struct {
	wg sync.WaitGroup
}

// Dispatch executes handler asynchronously with a background context that
// keeps the caller's logger. Errors and panics are logged and reported.
func (d *Dispatcher) Dispatch(ctx context.Context, name string, handler func(ctx context.Context) error) {
	bgCtx := logging.With(context.Background(), logging.From(ctx).With("job", name))

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				errutil.Handle(bgCtx, goerr.New("panic in async handler", goerr.V("panic", r), goerr.V("job", name)), "async handler panicked")
			}
		}()

		if err := handler(bgCtx); err != nil {
			errutil.Handle(bgCtx, err, "async handler failed")
		}
	}()
}

// Wait blocks until every dispatched handler has returned
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}
