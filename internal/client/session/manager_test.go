package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shivtchandra/CivicWatch/internal/client/api"
	"github.com/shivtchandra/CivicWatch/internal/client/models"
	"github.com/shivtchandra/CivicWatch/internal/common"
)

type fakeAPI struct {
	token string

	meOut *models.Profile
	meErr error

	loginOut *api.AuthResponse
	loginErr error

	registerOut *api.AuthResponse
	registerErr error

	updateOut *models.Profile
	updateErr error
}

func (f *fakeAPI) SetToken(token string) { f.token = token }
func (f *fakeAPI) Me(ctx context.Context) (*models.Profile, error) {
	if f.meErr != nil {
		return nil, f.meErr
	}
	return f.meOut, nil
}
func (f *fakeAPI) Login(ctx context.Context, email, password string) (*api.AuthResponse, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.loginOut, nil
}
func (f *fakeAPI) Register(ctx context.Context, email, password, name string) (*api.AuthResponse, error) {
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	return f.registerOut, nil
}
func (f *fakeAPI) UpdateProfile(ctx context.Context, name, city, phone string) (*models.Profile, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.updateOut, nil
}

type memStore struct {
	data map[string][]byte
}

func newMemStore() *memStore { return &memStore{data: map[string][]byte{}} }

func (s *memStore) Get(ctx context.Context, key string) ([]byte, error) {
	return s.data[key], nil
}
func (s *memStore) Set(ctx context.Context, key string, value []byte) error {
	s.data[key] = value
	return nil
}
func (s *memStore) Delete(ctx context.Context, key string) error {
	delete(s.data, key)
	return nil
}
func (s *memStore) Clear(ctx context.Context) error {
	s.data = map[string][]byte{}
	return nil
}

func TestManager_StartsLoading(t *testing.T) {
	m := NewManager(&fakeAPI{}, newMemStore())
	assert.Equal(t, StatusLoading, m.Status())
	assert.Nil(t, m.Profile())
}

func TestResolve_NoToken(t *testing.T) {
	m := NewManager(&fakeAPI{}, newMemStore())

	require.NoError(t, m.Resolve(context.Background()))
	assert.Equal(t, StatusAnonymous, m.Status())
	assert.Nil(t, m.Profile())
}

func TestResolve_ValidToken(t *testing.T) {
	store := newMemStore()
	require.NoError(t, store.Set(context.Background(), tokenKey, []byte("tok")))

	client := &fakeAPI{meOut: &models.Profile{ID: "u1", Email: "a@b.c", City: "Springfield"}}
	m := NewManager(client, store)

	require.NoError(t, m.Resolve(context.Background()))
	assert.Equal(t, StatusAuthenticated, m.Status())
	require.NotNil(t, m.Profile())
	assert.Equal(t, "Springfield", m.Profile().City)
	assert.Equal(t, "tok", client.token)
}

func TestResolve_RejectedTokenIsCleared(t *testing.T) {
	for _, sentinel := range []error{common.ErrUnauthorized, common.ErrNotFound} {
		store := newMemStore()
		require.NoError(t, store.Set(context.Background(), tokenKey, []byte("stale")))

		client := &fakeAPI{meErr: sentinel}
		m := NewManager(client, store)

		require.NoError(t, m.Resolve(context.Background()))
		assert.Equal(t, StatusAnonymous, m.Status())
		assert.Nil(t, store.data[tokenKey], "token must be wiped for %v", sentinel)
		assert.Empty(t, client.token)
	}
}

func TestResolve_TransportErrorClearsTokenAndReports(t *testing.T) {
	store := newMemStore()
	require.NoError(t, store.Set(context.Background(), tokenKey, []byte("tok")))

	m := NewManager(&fakeAPI{meErr: common.ErrInternal}, store)

	err := m.Resolve(context.Background())
	require.Error(t, err)
	assert.Equal(t, StatusAnonymous, m.Status())
	assert.Nil(t, store.data[tokenKey], "unresolvable token must not survive startup")
}

func TestLogin_StoresTokenAndResolves(t *testing.T) {
	store := newMemStore()
	client := &fakeAPI{
		loginOut: &api.AuthResponse{Token: "fresh", User: models.Profile{ID: "u1"}},
		meOut:    &models.Profile{ID: "u1", Email: "a@b.c"},
	}
	m := NewManager(client, store)

	require.NoError(t, m.Login(context.Background(), "a@b.c", "pw"))
	assert.Equal(t, StatusAuthenticated, m.Status())
	assert.Equal(t, []byte("fresh"), store.data[tokenKey])
}

func TestLogin_Failure(t *testing.T) {
	m := NewManager(&fakeAPI{loginErr: common.ErrUnauthorized}, newMemStore())

	err := m.Login(context.Background(), "a@b.c", "wrong")
	assert.ErrorIs(t, err, common.ErrUnauthorized)
	assert.Equal(t, StatusLoading, m.Status(), "failed login before first resolve leaves status untouched")
}

func TestLogout_IsLocalAndSynchronous(t *testing.T) {
	store := newMemStore()
	require.NoError(t, store.Set(context.Background(), tokenKey, []byte("tok")))

	client := &fakeAPI{meOut: &models.Profile{ID: "u1"}}
	m := NewManager(client, store)
	require.NoError(t, m.Resolve(context.Background()))
	require.Equal(t, StatusAuthenticated, m.Status())

	require.NoError(t, m.Logout(context.Background()))
	assert.Equal(t, StatusAnonymous, m.Status())
	assert.Nil(t, m.Profile())
	assert.Nil(t, store.data[tokenKey])
	assert.Empty(t, client.token)
}

func TestUpdateProfile_RefreshesCachedProfile(t *testing.T) {
	store := newMemStore()
	require.NoError(t, store.Set(context.Background(), tokenKey, []byte("tok")))

	client := &fakeAPI{
		meOut:     &models.Profile{ID: "u1", Name: "Old"},
		updateOut: &models.Profile{ID: "u1", Name: "New", City: "Springfield"},
	}
	m := NewManager(client, store)
	require.NoError(t, m.Resolve(context.Background()))

	require.NoError(t, m.UpdateProfile(context.Background(), "New", "Springfield", ""))
	assert.Equal(t, "New", m.Profile().Name)
	assert.Equal(t, "Springfield", m.Profile().City)
}
