package session

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/harssh120/AlphaFit/internal/api"
	"github.com/harssh120/AlphaFit/internal/db"
	"github.com/harssh120/AlphaFit/internal/model"
)

type State int

const (
	StateUnauthenticated State = iota
	StateRestoring
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateRestoring:
		return "restoring"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unauthenticated"
	}
}

// Manager owns the current user identity, the persisted token, and the
// authorization capability handed to every authorized call. It is the sole
// writer of the credential store.
type Manager struct {
	client *api.Client
	store  *sql.DB
	logger *slog.Logger

	mu      sync.Mutex
	state   State
	cred    api.Credential
	profile *model.UserProfile
	epoch   uuid.UUID
}

func NewManager(client *api.Client, store *sql.DB, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{client: client, store: store, logger: logger}
}

// Restore reads the credential store and, if a token is present, verifies it
// by fetching the profile. Any failure tears the session down fail-closed: an
// unverifiable token must not leave authenticated state visible.
func (m *Manager) Restore(ctx context.Context) error {
	token, ok, err := db.LoadToken(m.store)
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}
	if !ok {
		return nil
	}

	cred := api.Credential(token)
	m.mu.Lock()
	m.state = StateRestoring
	m.cred = cred
	m.mu.Unlock()

	profile, err := m.client.Profile(ctx, cred)

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != StateRestoring || m.cred != cred {
		// A logout (or a fresh login) resolved the session while the
		// verification fetch was in flight; its result no longer applies.
		return nil
	}
	if err != nil {
		m.teardownLocked()
		return fmt.Errorf("restore session: %w", err)
	}
	m.state = StateAuthenticated
	m.profile = &profile
	m.epoch = uuid.New()
	return nil
}

func (m *Manager) Login(ctx context.Context, username, password string) error {
	resp, err := m.client.Login(ctx, username, password)
	if err != nil {
		return err
	}
	if err := db.SaveToken(m.store, resp.Token); err != nil {
		return err
	}
	m.establish(api.Credential(resp.Token), resp.User)
	return nil
}

func (m *Manager) Register(ctx context.Context, reg api.Registration) error {
	resp, err := m.client.Register(ctx, reg)
	if err != nil {
		return err
	}
	if err := db.SaveToken(m.store, resp.Token); err != nil {
		return err
	}
	m.establish(api.Credential(resp.Token), resp.User)
	return nil
}

// Logout clears the persisted token and in-memory identity. It never fails
// and is idempotent; from StateUnauthenticated it is a no-op.
func (m *Manager) Logout() {
	m.teardown()
}

func (m *Manager) establish(cred api.Credential, profile model.UserProfile) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = StateAuthenticated
	m.cred = cred
	m.profile = &profile
	m.epoch = uuid.New()
}

func (m *Manager) teardown() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.teardownLocked()
}

func (m *Manager) teardownLocked() {
	if err := db.ClearToken(m.store); err != nil {
		m.logger.Warn("clear persisted token", slog.String("error", err.Error()))
	}
	m.state = StateUnauthenticated
	m.cred = ""
	m.profile = nil
	m.epoch = uuid.Nil
}

func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Credential returns the authorization capability for the current session.
// It always matches the held token exactly; after teardown it is gone.
func (m *Manager) Credential() (api.Credential, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.cred == "" {
		return "", false
	}
	return m.cred, true
}

func (m *Manager) Profile() *model.UserProfile {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.profile == nil {
		return nil
	}
	p := *m.profile
	return &p
}

// Epoch identifies the current authenticated session. In-flight fetches
// capture it before issuing a request and check Matches before applying the
// result, so a response resolving after logout is silently dropped.
func (m *Manager) Epoch() uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.epoch
}

func (m *Manager) Matches(epoch uuid.UUID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return epoch != uuid.Nil && epoch == m.epoch
}
