// Package lock provides the process-wide writer lock used by in-process storage engines.
//
// Writers must hold the lock for their whole critical section. Readers never take it.
// Acquisition waits at most the configured timeout and then reports
// errs.ErrResourceIsBusy; it is never retried.
package lock

import (
	"context"
	"time"

	"ordersheet/internal/pkg/errs"

	"golang.org/x/sync/semaphore"
)

// DefaultTimeout is the bounded wait for the writer lock.
const DefaultTimeout = 10 * time.Second

// TimedMutex is a mutual-exclusion lock whose acquisition gives up after a timeout.
type TimedMutex struct {
	name    string
	timeout time.Duration
	sem     *semaphore.Weighted
}

// NewTimedMutex creates a lock for the named resource. A non-positive timeout
// falls back to DefaultTimeout.
func NewTimedMutex(name string, timeout time.Duration) *TimedMutex {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &TimedMutex{
		name:    name,
		timeout: timeout,
		sem:     semaphore.NewWeighted(1),
	}
}

// Acquire blocks until the lock is held or the timeout elapses.
// A cancelled ctx is returned as is; an elapsed wait becomes *errs.ResourceIsBusyError.
func (m *TimedMutex) Acquire(ctx context.Context) error {
	waitCtx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	if err := m.sem.Acquire(waitCtx, 1); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return errs.NewResourceIsBusyErrorWithCause(m.name, m.timeout, err)
	}
	return nil
}

// Release gives the lock back. It must only be called by the current holder.
func (m *TimedMutex) Release() {
	m.sem.Release(1)
}

// Name returns the guarded resource name.
func (m *TimedMutex) Name() string {
	return m.name
}

// Timeout returns the bounded wait used by Acquire.
func (m *TimedMutex) Timeout() time.Duration {
	return m.timeout
}
