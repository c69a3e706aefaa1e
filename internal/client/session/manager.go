// Package session tracks who the client is logged in as. The state is a
// tagged status plus an optional profile; there is never a stale profile
// under a non-authenticated status.
package session

import (
	"context"
	"errors"

	"github.com/shivtchandra/CivicWatch/internal/client/api"
	"github.com/shivtchandra/CivicWatch/internal/client/models"
	"github.com/shivtchandra/CivicWatch/internal/client/repositories/metadata"
	"github.com/shivtchandra/CivicWatch/internal/common"
)

type Status string

const (
	// StatusLoading holds from construction until the first Resolve finishes.
	StatusLoading       Status = "loading"
	StatusAuthenticated Status = "authenticated"
	StatusAnonymous     Status = "anonymous"
)

const tokenKey = "session_token"

type apiClient interface {
	SetToken(token string)
	Me(ctx context.Context) (*models.Profile, error)
	Login(ctx context.Context, email, password string) (*api.AuthResponse, error)
	Register(ctx context.Context, email, password, name string) (*api.AuthResponse, error)
	UpdateProfile(ctx context.Context, name, city, phone string) (*models.Profile, error)
}

type Manager struct {
	api     apiClient
	store   metadata.Repository
	status  Status
	profile *models.Profile
}

func NewManager(client apiClient, store metadata.Repository) *Manager {
	return &Manager{api: client, store: store, status: StatusLoading}
}

func (m *Manager) Status() Status {
	return m.status
}

// Profile returns the authenticated profile, nil otherwise.
func (m *Manager) Profile() *models.Profile {
	if m.status != StatusAuthenticated {
		return nil
	}
	return m.profile
}

// Resolve loads the persisted token and asks the server who it belongs to.
// Any failure, a rejected token (expired, or its user deleted) or a transport
// error, drops the stored token and lands in the anonymous state; only
// transport errors are reported back to the caller.
func (m *Manager) Resolve(ctx context.Context) error {
	token, err := m.store.Get(ctx, tokenKey)
	if err != nil {
		m.setAnonymous()
		return err
	}
	if len(token) == 0 {
		m.setAnonymous()
		return nil
	}

	m.api.SetToken(string(token))

	profile, err := m.api.Me(ctx)
	if err != nil {
		_ = m.store.Delete(ctx, tokenKey)
		m.api.SetToken("")
		m.setAnonymous()
		if errors.Is(err, common.ErrUnauthorized) || errors.Is(err, common.ErrNotFound) {
			return nil
		}
		return err
	}

	m.profile = profile
	m.status = StatusAuthenticated
	return nil
}

// Login authenticates, persists the token and re-resolves the session.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	res, err := m.api.Login(ctx, email, password)
	if err != nil {
		return err
	}
	return m.adopt(ctx, res.Token)
}

// Register creates an account, persists the token and re-resolves the session.
func (m *Manager) Register(ctx context.Context, email, password, name string) error {
	res, err := m.api.Register(ctx, email, password, name)
	if err != nil {
		return err
	}
	return m.adopt(ctx, res.Token)
}

// UpdateProfile pushes profile changes and refreshes the cached profile.
func (m *Manager) UpdateProfile(ctx context.Context, name, city, phone string) error {
	profile, err := m.api.UpdateProfile(ctx, name, city, phone)
	if err != nil {
		return err
	}
	m.profile = profile
	return nil
}

// Logout clears the token and profile locally. No server call is involved;
// the session is gone the moment this returns.
func (m *Manager) Logout(ctx context.Context) error {
	err := m.store.Delete(ctx, tokenKey)
	m.api.SetToken("")
	m.setAnonymous()
	return err
}

func (m *Manager) adopt(ctx context.Context, token string) error {
	if err := m.store.Set(ctx, tokenKey, []byte(token)); err != nil {
		return err
	}
	return m.Resolve(ctx)
}

func (m *Manager) setAnonymous() {
	m.status = StatusAnonymous
	m.profile = nil
}
