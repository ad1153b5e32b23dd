package voikko

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/tekstikone/voikko/errors"
)

// Pool is a fixed set of identically configured sessions for use from
// multiple goroutines. A single session is not safe for concurrent use;
// the pool hands each caller exclusive access to one session at a time.
type Pool struct {
	idle   chan *Voikko
	mu     sync.Mutex
	closed bool
}

// NewPool creates size sessions for language, applying the same options
// to each. Creation is all or nothing: if any session fails to
// initialize, the ones already created are closed again.
func NewPool(language string, size int, opts ...Option) (*Pool, error) {
	if size <= 0 {
		return nil, errors.New(errors.OpPool, errors.KindBadInput).
			Detail("pool size %d", size).
			Build()
	}

	p := &Pool{idle: make(chan *Voikko, size)}
	for i := 0; i < size; i++ {
		v, err := New(language, opts...)
		if err != nil {
			p.Close()
			return nil, err
		}
		p.idle <- v
	}

	Logger().Debug("pool ready",
		zap.String("language", language), zap.Int("size", size))
	return p, nil
}

// Acquire returns an idle session, waiting until one is released or ctx
// ends. The caller owns the session until Release.
func (p *Pool) Acquire(ctx context.Context) (*Voikko, error) {
	select {
	case v, ok := <-p.idle:
		if !ok {
			return nil, errors.PoolClosed()
		}
		return v, nil
	case <-ctx.Done():
		return nil, errors.Exhausted(ctx.Err())
	}
}

// Release returns a session to the pool. Releasing into a closed pool
// closes the session instead.
func (p *Pool) Release(v *Voikko) {
	if v == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		v.Close()
		return
	}
	select {
	case p.idle <- v:
	default:
		// Not a session of this pool; never grow past capacity.
		v.Close()
	}
}

// Do runs fn with exclusive access to a pooled session.
func (p *Pool) Do(ctx context.Context, fn func(*Voikko) error) error {
	v, err := p.Acquire(ctx)
	if err != nil {
		return err
	}
	defer p.Release(v)
	return fn(v)
}

// Close terminates every idle session and marks the pool closed.
// Sessions still checked out are terminated as they are released.
func (p *Pool) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true
	close(p.idle)
	for v := range p.idle {
		v.Close()
	}
	return nil
}
