package api

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"
)

// refreshKey is the single-flight key shared by every refresh attempt.
const refreshKey = "refresh"

// Coordinator serializes token-refresh attempts. At most one refresh call
// is in flight at any time; every request that observes an expired session
// while a refresh is running awaits the same outcome.
//
// Once a refresh fails the coordinator is terminally invalid: every call
// is rejected without network I/O until Reset is invoked by a fresh login
// or registration attempt.
//
// The zero value is not usable; construct with NewCoordinator. A single
// Coordinator is injected into the Client at composition time so tests can
// build isolated instances.
type Coordinator struct {
	mu        sync.Mutex
	sf        singleflight.Group
	invalid   bool
	gen       uint64
	observers []func()
}

func NewCoordinator() *Coordinator {
	return &Coordinator{}
}

// Invalid reports whether the session is terminally invalid.
func (c *Coordinator) Invalid() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.invalid
}

// OnInvalidated registers fn to run when the session transitions to the
// invalid state. Observers fire exactly once per invalidation, outside the
// coordinator's lock. Typical consumers clear cached identity and prompt
// the user to log in again.
func (c *Coordinator) OnInvalidated(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.observers = append(c.observers, fn)
}

// Reset returns the coordinator to the idle state: the invalid flag is
// cleared and any in-flight refresh is disowned. Login and Register call
// Reset before issuing their network request so a new credential attempt
// always starts from a clean slate.
//
// Reset wins over a refresh still resolving: the generation counter is
// bumped, so a stale refresh outcome can no longer flip the coordinator
// to invalid or fire the invalidation observers.
func (c *Coordinator) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalid = false
	c.gen++
	c.sf.Forget(refreshKey)
}

// AwaitRefresh runs refresh under single-flight: concurrent callers share
// one refresh call and one outcome. On success the caller may retry its
// original request. On failure the coordinator becomes invalid, observers
// fire, and ErrReauthRequired is returned.
func (c *Coordinator) AwaitRefresh(ctx context.Context, refresh func(context.Context) error) error {
	c.mu.Lock()
	if c.invalid {
		c.mu.Unlock()
		return ErrReauthRequired
	}
	gen := c.gen
	c.mu.Unlock()

	_, err, _ := c.sf.Do(refreshKey, func() (any, error) {
		return nil, refresh(ctx)
	})
	if err != nil {
		c.invalidate(gen)
		return fmt.Errorf("%w: refresh failed: %v", ErrReauthRequired, err)
	}
	return nil
}

// Invalidate marks the session terminally invalid, e.g. when the refresh
// endpoint itself answers 401.
func (c *Coordinator) Invalidate() {
	c.mu.Lock()
	gen := c.gen
	c.mu.Unlock()
	c.invalidate(gen)
}

// invalidate transitions to the invalid state unless a Reset happened
// after gen was observed, in which case the stale outcome is discarded.
func (c *Coordinator) invalidate(gen uint64) {
	c.mu.Lock()
	if c.gen != gen || c.invalid {
		c.mu.Unlock()
		return
	}
	c.invalid = true
	observers := make([]func(), len(c.observers))
	copy(observers, c.observers)
	c.mu.Unlock()

	for _, fn := range observers {
		fn()
	}
}
