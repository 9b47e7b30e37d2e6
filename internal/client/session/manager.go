package session

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/dmitrijs2005/folio/internal/logging"
)

// Storage is the durable local storage the session record lives in.
// GetItem returns (nil, nil) for an absent key.
type Storage interface {
	GetItem(ctx context.Context, key string) ([]byte, error)
	SetItem(ctx context.Context, key string, value []byte) error
	RemoveItem(ctx context.Context, key string) error
}

type subscriber struct {
	id int
	fn func(State)
}

type Manager struct {
	mu     sync.RWMutex
	user   *User
	subs   []subscriber
	nextID int

	store  Storage
	logger logging.Logger
	now    func() time.Time
}

type Option func(*Manager)

// WithClock overrides the clock used to judge token expiry.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// NewManager returns an empty (logged-out) manager. A nil store keeps the
// session in memory only.
func NewManager(store Storage, logger logging.Logger, opts ...Option) *Manager {
	m := &Manager{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.logger == nil {
		m.logger = logging.Discard()
	}
	return m
}

// Initialize restores the session from local storage. An absent, unreadable
// or malformed record, or one whose token has expired, leaves the session
// empty; none of these is an error. Initialize never writes to storage.
func (m *Manager) Initialize(ctx context.Context) State {
	u, err := m.load(ctx)
	if err != nil {
		m.logger.Debug(ctx, "no usable stored session", "error", err)
	}

	m.mu.Lock()
	m.user = u
	st := snapshot(m.user)
	m.mu.Unlock()

	if st.IsAuthenticated {
		m.logger.Info(ctx, "session restored", "user", st.User.DisplayName())
	}
	return st
}

func (m *Manager) load(ctx context.Context) (*User, error) {
	if m.store == nil {
		return nil, nil
	}

	raw, err := m.store.GetItem(ctx, StorageKey)
	if err != nil || raw == nil {
		return nil, err
	}

	var u *User
	if err := json.Unmarshal(raw, &u); err != nil {
		return nil, err
	}
	if u == nil || u.Token == "" {
		return nil, errNoToken
	}
	if err := checkExpiry(u.Token, m.now()); err != nil {
		return nil, err
	}
	return u, nil
}

// Login makes the given identity and token the current session, persists
// it and notifies subscribers. Only an empty token is rejected; a failed
// storage write is logged and the in-memory session is kept.
func (m *Manager) Login(ctx context.Context, creds Credentials, token string) (State, error) {
	if token == "" {
		return m.State(), ErrEmptyToken
	}

	u := &User{
		ID:       creds.ID,
		Email:    creds.Email,
		Username: creds.Username,
		Token:    token,
	}

	m.mu.Lock()
	m.user = u
	st := snapshot(m.user)
	m.mu.Unlock()

	m.persist(ctx, u)
	m.logger.Info(ctx, "logged in", "user", u.DisplayName())
	m.notify(st)
	return st, nil
}

// Logout clears the session, removes the stored record and notifies
// subscribers.
func (m *Manager) Logout(ctx context.Context) State {
	m.mu.Lock()
	m.user = nil
	st := snapshot(nil)
	m.mu.Unlock()

	if m.store != nil {
		if err := m.store.RemoveItem(ctx, StorageKey); err != nil {
			m.logger.Warn(ctx, "failed to remove stored session", "error", err)
		}
	}
	m.logger.Info(ctx, "logged out")
	m.notify(st)
	return st
}

func (m *Manager) persist(ctx context.Context, u *User) {
	if m.store == nil {
		return
	}
	data, err := json.Marshal(u)
	if err != nil {
		m.logger.Warn(ctx, "failed to encode session", "error", err)
		return
	}
	if err := m.store.SetItem(ctx, StorageKey, data); err != nil {
		m.logger.Warn(ctx, "failed to persist session", "error", err)
	}
}

// State returns a snapshot of the current session. The returned User is a
// copy; mutating it does not affect the session.
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return snapshot(m.user)
}

// Token returns the current bearer token, or "" when logged out.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.user == nil {
		return ""
	}
	return m.user.Token
}

// Subscribe registers fn to be called with the new state after every Login
// and Logout, in registration order. The returned cancel func is idempotent.
func (m *Manager) Subscribe(fn func(State)) (cancel func()) {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.subs = append(m.subs, subscriber{id: id, fn: fn})
	m.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			m.mu.Lock()
			defer m.mu.Unlock()
			for i, s := range m.subs {
				if s.id == id {
					m.subs = append(m.subs[:i:i], m.subs[i+1:]...)
					return
				}
			}
		})
	}
}

// notify runs outside the lock so subscribers may read State.
func (m *Manager) notify(st State) {
	m.mu.RLock()
	subs := make([]subscriber, len(m.subs))
	copy(subs, m.subs)
	m.mu.RUnlock()

	for _, s := range subs {
		s.fn(st)
	}
}
