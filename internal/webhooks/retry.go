package webhooks

import (
	"errors"
	"time"
)

var (
	ErrRetriesExhausted = errors.New("webhook has exhausted its retries")
	ErrNotRetryable     = errors.New("only failed webhooks can be retried")
	ErrNoRetryRequested = errors.New("no retry in flight")
)

// RequestRetry is phase one of the optimistic retry: the event flips to
// retrying immediately, before any external confirmation. A new snapshot is
// returned; the input is not mutated.
func RequestRetry(event Event, now time.Time) (Event, error) {
	if event.Status != EventFailed {
		return event, ErrNotRetryable
	}
	if event.RetryCount >= event.MaxRetries {
		return event, ErrRetriesExhausted
	}

	next := event
	next.Status = EventRetrying
	next.RetryPhase = PhaseRequested
	next.RetryCount++
	retryAt := now.Add(backoffDelay(next.RetryCount))
	next.NextRetryAt = &retryAt
	next.UpdatedAt = now
	return next, nil
}

// ResolveRetry is phase two: an external collaborator reports the outcome of
// a requested retry. Success clears the retry bookkeeping; failure returns
// the event to failed so it can be retried again while attempts remain.
func ResolveRetry(event Event, succeeded bool, now time.Time) (Event, error) {
	if event.RetryPhase != PhaseRequested {
		return event, ErrNoRetryRequested
	}

	next := event
	next.NextRetryAt = nil
	next.UpdatedAt = now
	if succeeded {
		next.Status = EventSuccess
		next.RetryPhase = PhaseConfirmed
	} else {
		next.Status = EventFailed
		next.RetryPhase = PhaseFailed
	}
	return next, nil
}

// backoffDelay grows linearly with the attempt number
func backoffDelay(attempt int) time.Duration {
	return time.Duration(attempt) * 30 * time.Second
}
