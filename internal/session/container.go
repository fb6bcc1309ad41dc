// Package session owns the current user profile and the role being
// onboarded, and keeps both in sync with the persistent store.
//
// Every mutating operation is applied in two phases: memory first, then the
// durable write. Operations are executed one at a time, in the order they
// were submitted, by the container's Run loop. A failed write is retried
// and then returned to the caller; the in-memory state is not rolled back.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/driversetu/driver-setu/internal/domain/profile"
	"github.com/driversetu/driver-setu/pkg/logger"
	"github.com/driversetu/driver-setu/pkg/storage"
	"golang.org/x/sync/errgroup"
)

// Container is the single source of truth for who is logged in
type Container struct {
	store        storage.Store
	logger       *logger.Logger
	observer     Observer
	writeRetries int

	mu    sync.RWMutex
	state State

	// touched only by the Run goroutine
	hydrated bool

	subMu   sync.Mutex
	subs    map[int]chan State
	nextSub int

	ops       chan operation
	done      chan struct{}
	closeOnce sync.Once
}

type operation struct {
	ctx    context.Context
	name   string
	run    func(ctx context.Context) error
	result chan error
	// runs even when ctx is already done; ctx then only bounds storage calls
	always bool
}

// Option configures a Container
type Option func(*Container)

// WithLogger sets the logger
func WithLogger(l *logger.Logger) Option {
	return func(c *Container) { c.logger = l }
}

// WithObserver registers lifecycle hooks
func WithObserver(o Observer) Option {
	return func(c *Container) {
		if o != nil {
			c.observer = o
		}
	}
}

// WithWriteRetries sets how many times a failed write is retried
func WithWriteRetries(n int) Option {
	return func(c *Container) {
		if n >= 0 {
			c.writeRetries = n
		}
	}
}

// New creates a container. The caller must start Run in its own goroutine,
// call Hydrate once, and Close the container on shutdown.
func New(store storage.Store, opts ...Option) *Container {
	c := &Container{
		store:        store,
		logger:       logger.NewNop(),
		observer:     nopObserver{},
		writeRetries: 1,
		state:        State{Hydrating: true},
		subs:         make(map[int]chan State),
		ops:          make(chan operation),
		done:         make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.Named("session")
	return c
}

// Run executes submitted operations until Close is called
func (c *Container) Run() {
	for {
		select {
		case op := <-c.ops:
			select {
			case <-c.done:
				op.result <- ErrClosed
				continue
			default:
			}
			if err := op.ctx.Err(); err != nil && !op.always {
				op.result <- err
				continue
			}
			err := op.run(op.ctx)
			if err != nil {
				c.logger.Debug("Operation failed", logger.String("op", op.name), logger.Err(err))
			}
			op.result <- err
		case <-c.done:
			return
		}
	}
}

// Close stops the Run loop and closes every subscription channel.
// Operations submitted afterwards fail with ErrClosed.
func (c *Container) Close() {
	c.closeOnce.Do(func() {
		close(c.done)

		c.subMu.Lock()
		for id, ch := range c.subs {
			close(ch)
			delete(c.subs, id)
		}
		c.subMu.Unlock()
	})
}

func (c *Container) submit(ctx context.Context, name string, fn func(ctx context.Context) error) error {
	op := operation{ctx: ctx, name: name, run: fn, result: make(chan error, 1)}

	select {
	case c.ops <- op:
	case <-c.done:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}

	// once accepted the operation runs to completion even if ctx ends
	select {
	case err := <-op.result:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// State returns a snapshot of the current session
func (c *Container) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state.clone()
}

// Profile returns the current profile, or nil when logged out
func (c *Container) Profile() *profile.Profile {
	return c.State().Profile
}

// IsAuthenticated reports whether a profile is current
func (c *Container) IsAuthenticated() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state.Profile != nil
}

// submitAlways queues an operation that must run even if ctx is already
// done, and waits for it to finish.
func (c *Container) submitAlways(ctx context.Context, name string, fn func(ctx context.Context) error) error {
	op := operation{ctx: ctx, name: name, run: fn, result: make(chan error, 1), always: true}

	select {
	case c.ops <- op:
	case <-c.done:
		return ErrClosed
	}
	return <-op.result
}

// Hydrate loads the persisted profile and selected role. Read or decode
// failures, including an expired ctx, are logged and leave the session
// logged out. Hydrating is cleared in every case. Only the first call
// touches storage.
func (c *Container) Hydrate(ctx context.Context) error {
	return c.submitAlways(ctx, "hydrate", func(ctx context.Context) error {
		if c.hydrated {
			return nil
		}
		c.hydrated = true

		var (
			rawProfile, rawRole string
			hasProfile, hasRole bool
		)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			rawProfile, hasProfile, err = c.store.Get(gctx, ProfileKey)
			return err
		})
		g.Go(func() error {
			var err error
			rawRole, hasRole, err = c.store.Get(gctx, RoleKey)
			return err
		})

		next := State{}
		if err := g.Wait(); err != nil {
			c.logger.Error("Failed to load session", logger.Err(err))
			c.observer.StorageFailure("hydrate", err)
		} else {
			if hasProfile {
				next.Profile = c.decodeProfile(rawProfile)
			}
			if hasRole {
				if role, err := profile.ParseRole(rawRole); err == nil {
					next.SelectedRole = role
				} else {
					c.logger.Warn("Ignoring stored role", logger.String("value", rawRole))
				}
			}
		}

		c.update(func(s *State) { *s = next })

		c.logger.Info("Session hydrated",
			logger.Bool("authenticated", next.Profile != nil),
			logger.String("selected_role", string(next.SelectedRole)),
		)
		return nil
	})
}

func (c *Container) decodeProfile(raw string) *profile.Profile {
	var p profile.Profile
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		c.logger.Warn("Stored profile is not valid JSON", logger.Err(err))
		return nil
	}
	if err := p.Validate(); err != nil {
		c.logger.Warn("Stored profile failed validation", logger.Err(err))
		return nil
	}
	return &p
}

// Login makes p the current profile, persists it together with its role,
// and reconciles the selected role to p.Role.
func (c *Container) Login(ctx context.Context, p *profile.Profile) error {
	if p == nil {
		return ErrNilProfile
	}
	if err := p.Validate(); err != nil {
		return fmt.Errorf("login: %w", err)
	}
	p = p.Clone()
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("login: encode profile: %w", err)
	}

	return c.submit(ctx, "login", func(ctx context.Context) error {
		c.update(func(s *State) { s.Profile = p })

		if err := c.write(ctx, "login", ProfileKey, string(data)); err != nil {
			return err
		}
		if err := c.write(ctx, "login", RoleKey, string(p.Role)); err != nil {
			return err
		}

		c.update(func(s *State) { s.SelectedRole = p.Role })

		c.logger.Info("Session started",
			logger.String("user_id", p.ID),
			logger.String("role", string(p.Role)),
		)
		c.observer.LoggedIn(p.Clone())
		return nil
	})
}

// Logout clears the session in memory and then removes both keys in one
// batch. Memory stays cleared if the removal fails.
func (c *Container) Logout(ctx context.Context) error {
	return c.submit(ctx, "logout", func(ctx context.Context) error {
		var role profile.Role
		c.update(func(s *State) {
			role = s.Role()
			s.Profile = nil
			s.SelectedRole = profile.RoleNone
		})

		if err := c.remove(ctx, "logout", ProfileKey, RoleKey); err != nil {
			return err
		}

		c.logger.Info("Session ended", logger.String("role", string(role)))
		c.observer.LoggedOut(role)
		return nil
	})
}

// UpdateProfile merges u into the current profile and persists the result.
// It fails with ErrNoActiveSession, without touching storage, when nobody
// is logged in. The role key is not rewritten.
func (c *Container) UpdateProfile(ctx context.Context, u profile.Update) error {
	return c.submit(ctx, "update_profile", func(ctx context.Context) error {
		c.mu.RLock()
		current := c.state.Profile
		c.mu.RUnlock()

		if current == nil {
			return ErrNoActiveSession
		}

		next, err := u.Apply(current)
		if err != nil {
			return fmt.Errorf("update profile: %w", err)
		}
		data, err := json.Marshal(next)
		if err != nil {
			return fmt.Errorf("update profile: encode profile: %w", err)
		}

		c.update(func(s *State) { s.Profile = next })

		if err := c.write(ctx, "update_profile", ProfileKey, string(data)); err != nil {
			return err
		}

		c.observer.ProfileUpdated(next.Clone())
		return nil
	})
}

// SetSelectedRole records the role picked on the role selection screen.
// A concrete role is persisted; RoleNone only clears memory and leaves any
// stored value in place.
func (c *Container) SetSelectedRole(ctx context.Context, role profile.Role) error {
	if role != profile.RoleNone && !role.IsValid() {
		return fmt.Errorf("select role: %w: %q", profile.ErrInvalidRole, role)
	}

	return c.submit(ctx, "select_role", func(ctx context.Context) error {
		c.update(func(s *State) { s.SelectedRole = role })

		if role == profile.RoleNone {
			return nil
		}
		return c.write(ctx, "select_role", RoleKey, string(role))
	})
}

func (c *Container) write(ctx context.Context, op, key, value string) error {
	var err error
	for attempt := 0; attempt <= c.writeRetries; attempt++ {
		if err = c.store.Set(ctx, key, value); err == nil {
			return nil
		}
		c.logger.Warn("Storage write failed",
			logger.String("op", op),
			logger.String("key", key),
			logger.Int("attempt", attempt+1),
			logger.Err(err),
		)
		if ctx.Err() != nil {
			break
		}
	}
	c.observer.StorageFailure(op, err)
	return &StorageWriteError{Op: op, Keys: []string{key}, Err: err}
}

func (c *Container) remove(ctx context.Context, op string, keys ...string) error {
	var err error
	for attempt := 0; attempt <= c.writeRetries; attempt++ {
		if err = c.store.RemoveAll(ctx, keys...); err == nil {
			return nil
		}
		c.logger.Warn("Storage delete failed",
			logger.String("op", op),
			logger.Strings("keys", keys),
			logger.Int("attempt", attempt+1),
			logger.Err(err),
		)
		if ctx.Err() != nil {
			break
		}
	}
	c.observer.StorageFailure(op, err)
	return &StorageWriteError{Op: op, Keys: keys, Err: err}
}

// update mutates the state under the lock and publishes the result
func (c *Container) update(fn func(s *State)) {
	c.mu.Lock()
	fn(&c.state)
	snapshot := c.state
	c.mu.Unlock()

	c.publish(snapshot)
}
