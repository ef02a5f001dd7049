package mail

import (
	"context"
	"sync"
	"time"

	"github.com/starford/billabong/internal/apperr"
)

// Readiness is a one-shot future for the mail transport. The initializer
// resolves it once; senders wait on it with a bound.
type Readiness struct {
	once   sync.Once
	done   chan struct{}
	sender Sender
}

// NewReadiness returns an unresolved future.
func NewReadiness() *Readiness {
	return &Readiness{done: make(chan struct{})}
}

// Resolve publishes s. Only the first call has an effect.
func (r *Readiness) Resolve(s Sender) {
	r.once.Do(func() {
		r.sender = s
		close(r.done)
	})
}

// Ready reports whether Resolve has been called.
func (r *Readiness) Ready() bool {
	select {
	case <-r.done:
		return true
	default:
		return false
	}
}

// Wait blocks until the transport is resolved, ctx is done or timeout
// elapses. The latter two yield apperr.ErrServiceNotReady.
func (r *Readiness) Wait(ctx context.Context, timeout time.Duration) (Sender, error) {
	if r.Ready() {
		return r.sender, nil
	}
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-r.done:
		return r.sender, nil
	case <-timer.C:
		return nil, apperr.ErrServiceNotReady
	case <-ctx.Done():
		return nil, apperr.ErrServiceNotReady
	}
}
