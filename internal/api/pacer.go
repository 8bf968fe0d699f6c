package api

import (
	"context"
	"sync"
	"time"
)

// Pacer spaces requests out so a burst of set logs does not hammer the
// service. The service publishes no rate limits, so this is only a minimum
// interval between requests.
type Pacer struct {
	mu          sync.Mutex
	minInterval time.Duration
	lastRequest time.Time
}

// NewPacer creates a pacer with the default interval
func NewPacer() *Pacer {
	return &Pacer{minInterval: 100 * time.Millisecond}
}

// Wait blocks until the next request may be sent or the context is done
func (p *Pacer) Wait(ctx context.Context) error {
	p.mu.Lock()
	elapsed := time.Since(p.lastRequest)
	if elapsed < p.minInterval {
		wait := p.minInterval - elapsed
		p.mu.Unlock()
		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return ctx.Err()
		}
		p.mu.Lock()
	}
	p.lastRequest = time.Now()
	p.mu.Unlock()
	return nil
}
