// Package futures is the asynchronous collaborator surface of the runtime:
// a one-shot Future holding an eventual runtime object, and an Executor that
// satisfies runtime.Awaiter so do-notation blocks can run off the calling
// goroutine. A Future can be read by multiple consumers; the first
// completion wins and later completions are silently ignored.
package futures

import (
	"context"
	"sync/atomic"

	"github.com/funvibe/funtl/pkg/runtime"
)

// Future represents an asynchronous evaluation producing a runtime object,
// usually a Result instance.
type Future struct {
	isCompleted uint32
	completed   chan struct{}

	value runtime.Object
}

// New creates an uncompleted Future that must be completed manually.
func New() *Future {
	return &Future{
		completed: make(chan struct{}),
	}
}

// Go creates a Future completed by running block on its own goroutine.
func Go(block func() runtime.Object) *Future {
	f := New()
	go func() {
		f.Complete(block())
	}()
	return f
}

// Complete completes the Future with value. Ignored if already completed.
func (f *Future) Complete(value runtime.Object) {
	if atomic.CompareAndSwapUint32(&f.isCompleted, 0, 1) {
		f.value = value
		close(f.completed)
	}
}

// Get retrieves the value, blocking until the Future completes or ctx is
// canceled.
func (f *Future) Get(ctx context.Context) (runtime.Object, error) {
	select {
	case <-f.completed:
		return f.value, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Executor runs do-notation blocks to completion on background goroutines.
// It implements runtime.Awaiter. Cancellation belongs here, not to the
// runtime: a canceled context surfaces as Err(RuntimeError).
type Executor struct {
	Ctx context.Context
}

func NewExecutor(ctx context.Context) *Executor {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Executor{Ctx: ctx}
}

// Await runs block asynchronously and blocks for its eventual Result.
func (e *Executor) Await(block func() runtime.Object) runtime.Object {
	value, err := Go(block).Get(e.Ctx)
	if err != nil {
		return runtime.Err(runtime.NewException(runtime.RuntimeErrClass, "await: %v", err))
	}
	return value
}
