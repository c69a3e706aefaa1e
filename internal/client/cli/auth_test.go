package cli

import (
	"bufio"
	"context"
	"io"
	"testing"

	"github.com/shivtchandra/CivicWatch/internal/client/api"
	"github.com/shivtchandra/CivicWatch/internal/client/models"
	"github.com/shivtchandra/CivicWatch/internal/client/session"
	"github.com/shivtchandra/CivicWatch/internal/common"
)

func stubInputs(t *testing.T, text string, password []byte) func() {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return text, nil }
	getPassword = func(_ io.Writer) ([]byte, error) { return password, nil }
	return func() {
		getSimpleText = origST
		getPassword = origGP
	}
}

type fakeSessionAPI struct {
	token string

	regEmail string
	regPass  string
	regErr   error

	loginEmail string
	loginPass  string
	loginErr   error

	profile *models.Profile
}

func (f *fakeSessionAPI) SetToken(token string) { f.token = token }

func (f *fakeSessionAPI) Me(_ context.Context) (*models.Profile, error) {
	if f.profile == nil {
		return nil, common.ErrUnauthorized
	}
	return f.profile, nil
}

func (f *fakeSessionAPI) Login(_ context.Context, email, password string) (*api.AuthResponse, error) {
	f.loginEmail, f.loginPass = email, password
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return &api.AuthResponse{User: *f.profile, Token: "t1"}, nil
}

func (f *fakeSessionAPI) Register(_ context.Context, email, password, name string) (*api.AuthResponse, error) {
	f.regEmail, f.regPass = email, password
	if f.regErr != nil {
		return nil, f.regErr
	}
	return &api.AuthResponse{User: *f.profile, Token: "t1"}, nil
}

func (f *fakeSessionAPI) UpdateProfile(_ context.Context, name, city, phone string) (*models.Profile, error) {
	return f.profile, nil
}

type memTokenStore struct {
	data map[string][]byte
}

func newMemTokenStore() *memTokenStore {
	return &memTokenStore{data: map[string][]byte{}}
}

func (s *memTokenStore) Get(_ context.Context, key string) ([]byte, error) {
	return s.data[key], nil
}
func (s *memTokenStore) Set(_ context.Context, key string, value []byte) error {
	s.data[key] = value
	return nil
}
func (s *memTokenStore) Delete(_ context.Context, key string) error {
	delete(s.data, key)
	return nil
}
func (s *memTokenStore) Clear(_ context.Context) error {
	s.data = map[string][]byte{}
	return nil
}

func TestRegister_Success(t *testing.T) {
	f := &fakeSessionAPI{profile: &models.Profile{ID: "u1", Email: "alice@example.org"}}
	a := &App{session: session.NewManager(f, newMemTokenStore())}

	restore := stubInputs(t, "alice@example.org", []byte("secret12"))
	defer restore()

	if err := a.Register(context.Background()); err != nil {
		t.Fatalf("Register err: %v", err)
	}
	if f.regEmail != "alice@example.org" {
		t.Fatalf("Register email mismatch: %q", f.regEmail)
	}
	if f.regPass != "secret12" {
		t.Fatalf("Register pass mismatch: %q", f.regPass)
	}
	if !a.isLoggedIn() {
		t.Fatalf("expected authenticated session after register")
	}
}

func TestLogin_Failure(t *testing.T) {
	f := &fakeSessionAPI{loginErr: common.ErrUnauthorized}
	a := &App{session: session.NewManager(f, newMemTokenStore())}

	restore := stubInputs(t, "alice@example.org", []byte("wrong"))
	defer restore()

	if err := a.Login(context.Background()); err == nil {
		t.Fatalf("want login error")
	}
	if a.isLoggedIn() {
		t.Fatalf("must not be logged in after failed login")
	}
}

func TestLogout(t *testing.T) {
	f := &fakeSessionAPI{profile: &models.Profile{ID: "u1", Email: "alice@example.org"}}
	store := newMemTokenStore()
	store.data["session_token"] = []byte("t1")
	sm := session.NewManager(f, store)
	if err := sm.Resolve(context.Background()); err != nil {
		t.Fatal(err)
	}

	a := &App{session: sm}
	if err := a.Logout(context.Background()); err != nil {
		t.Fatalf("Logout err: %v", err)
	}
	if a.isLoggedIn() {
		t.Fatalf("still logged in after logout")
	}
	if _, ok := store.data["session_token"]; ok {
		t.Fatalf("token not removed from store")
	}
}
