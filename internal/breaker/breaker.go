// Package breaker wraps a boundary operation with a circuit breaker and a
// fallback. When the primary returns an error, exceeds the call deadline or
// the circuit is open, the caller receives the fallback's value instead of an
// error. A caller that only checks for errors will not notice the
// substitution unless it inspects the payload.
package breaker

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker/v2"
)

// DefaultTimeout is the implicit deadline applied to every wrapped call.
const DefaultTimeout = 5 * time.Second

// Operation pairs a circuit breaker with a fallback value producer. One
// Operation guards one boundary operation; the breaker state is shared by
// every request flowing through it.
type Operation[T any] struct {
	name     string
	cb       *gobreaker.CircuitBreaker[T]
	timeout  time.Duration
	fallback func() T
	log      *logrus.Entry
}

// New builds an Operation named name whose fallback produces the sentinel
// value returned on any primary failure. A timeout of zero selects
// DefaultTimeout.
func New[T any](name string, timeout time.Duration, fallback func() T) *Operation[T] {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	log := logrus.WithField("operation", name)
	cb := gobreaker.NewCircuitBreaker[T](gobreaker.Settings{
		Name: name,
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warnf("Circuit state changed from %s to %s.", from, to)
		},
	})
	return &Operation[T]{
		name:     name,
		cb:       cb,
		timeout:  timeout,
		fallback: fallback,
		log:      log,
	}
}

// Execute runs primary under the breaker and the operation deadline. On any
// failure the fallback value is returned; the underlying error is logged and
// not propagated. The primary is attempted at most once per call; a failed
// call is never retried.
func (o *Operation[T]) Execute(ctx context.Context, primary func(context.Context) (T, error)) T {
	result, err := o.cb.Execute(func() (T, error) {
		return o.run(ctx, primary)
	})
	if err != nil {
		o.log.WithError(err).Warn("Primary failed, returning fallback result.")
		return o.fallback()
	}
	return result
}

func (o *Operation[T]) run(ctx context.Context, primary func(context.Context) (T, error)) (T, error) {
	cctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	type outcome struct {
		value T
		err   error
	}
	// Buffered so a late primary does not leak its goroutine after a
	// deadline has already produced the fallback.
	ch := make(chan outcome, 1)
	go func() {
		value, err := primary(cctx)
		ch <- outcome{value: value, err: err}
	}()

	select {
	case out := <-ch:
		return out.value, out.err
	case <-cctx.Done():
		var zero T
		return zero, cctx.Err()
	}
}
