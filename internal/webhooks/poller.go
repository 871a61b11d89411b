package webhooks

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// DeliveryProbe checks whether a requested retry eventually went through
type DeliveryProbe interface {
	CheckDelivery(ctx context.Context, event Event) (delivered bool, resolved bool, err error)
}

// Poller re-checks in-flight retries at a fixed interval until its context
// is cancelled. Every interval started here is cleared on Stop or context
// teardown.
type Poller struct {
	repo     Repository
	probe    DeliveryProbe
	interval time.Duration
	logger   *zap.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewPoller creates a webhook retry poller
func NewPoller(repo Repository, probe DeliveryProbe, interval time.Duration, logger *zap.Logger) *Poller {
	return &Poller{
		repo:     repo,
		probe:    probe,
		interval: interval,
		logger:   logger,
	}
}

// Start launches the polling loop. Calling Start on a running poller is a
// no-op.
func (p *Poller) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	p.cancel = cancel
	p.done = done

	go p.run(ctx, done)
}

// Stop cancels the loop and waits for it to exit
func (p *Poller) Stop() {
	p.mu.Lock()
	cancel, done := p.cancel, p.done
	p.cancel, p.done = nil, nil
	p.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// run owns the done channel it was handed at Start. Stop may clear the
// struct fields while this goroutine is still winding down, so run never
// reads them.
func (p *Poller) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.resolvePending(ctx)
		}
	}
}

// ResolveOnce runs a single resolution pass. The cron worker uses this
// instead of the interval loop.
func (p *Poller) ResolveOnce(ctx context.Context) {
	p.resolvePending(ctx)
}

// resolvePending checks each in-flight retry and applies the terminal phase
// once the external outcome is known
func (p *Poller) resolvePending(ctx context.Context) {
	events, err := p.repo.GetUnresolvedRetries(ctx, 50)
	if err != nil {
		p.logger.Error("Failed to fetch unresolved retries", zap.Error(err))
		return
	}

	now := time.Now()
	for _, event := range events {
		delivered, resolved, err := p.probe.CheckDelivery(ctx, event)
		if err != nil {
			// Transient probe failure maps to a failed retry rather than an
			// event stuck in retrying forever
			p.logger.Warn("Delivery probe failed",
				zap.String("event_id", event.ID.String()), zap.Error(err))
			delivered, resolved = false, true
		}
		if !resolved {
			continue
		}

		next, err := ResolveRetry(event, delivered, now)
		if err != nil {
			continue
		}
		if err := p.repo.SaveEvent(ctx, &next); err != nil {
			p.logger.Error("Failed to persist retry resolution",
				zap.String("event_id", event.ID.String()), zap.Error(err))
		}
	}
}
