package program

import (
	"context"
	"sync"
)

// localErrorLogger records the first error returned by a routine
// launched by RunLocal(), and cancels all other routines.
type localErrorLogger struct {
	once       sync.Once
	firstError error
	cancel     context.CancelFunc
}

func (el *localErrorLogger) Log(err error) {
	el.once.Do(func() {
		el.firstError = err
		el.cancel()
	})
}

// RunLocal runs a routine and any routines that it launches, waiting
// for all of them to complete. It is similar to errgroup.Group, except
// that no separate call to Wait() is needed, and that routines may be
// launched as siblings or as dependencies, like they can be through
// RunMain(). The first error returned by any of the routines is
// returned.
func RunLocal(ctx context.Context, routine Routine) error {
	innerCtx, cancel := context.WithCancel(ctx)
	errorLogger := &localErrorLogger{
		cancel: cancel,
	}
	run(innerCtx, errorLogger, routine)
	errorLogger.once.Do(cancel)
	return errorLogger.firstError
}
