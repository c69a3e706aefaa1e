// Package services contains server-side business logic. This file implements
// UserService: registration, login, profile hydration and profile updates.
package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/shivtchandra/CivicWatch/internal/common"
	"github.com/shivtchandra/CivicWatch/internal/server/auth"
	"github.com/shivtchandra/CivicWatch/internal/server/config"
	"github.com/shivtchandra/CivicWatch/internal/server/models"
	"github.com/shivtchandra/CivicWatch/internal/server/repositories/repomanager"
)

// AuthResult bundles the public user projection with a freshly issued
// session token.
type AuthResult struct {
	User  *models.PublicUser
	Token string
}

// UserService provides authentication-related operations:
//   - Register: create users and mint a session token
//   - Login: verify credentials and mint a session token
//   - GetByID: hydrate a profile from a verified token's user ID
//   - UpdateProfile: owner-initiated profile changes
type UserService struct {
	db            *sql.DB
	repomanager   repomanager.RepositoryManager
	jwtSecret     []byte
	tokenValidity time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:            db,
		repomanager:   m,
		jwtSecret:     []byte(cfg.SecretKey),
		tokenValidity: cfg.TokenValidityDuration,
	}
}

// Register creates a new user with a bcrypt-hashed password and returns the
// public profile plus a session token. Email matching is case-sensitive exact;
// a duplicate email yields common.ErrConflict.
func (s *UserService) Register(ctx context.Context, email, password, name string) (*AuthResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, common.NewValidationError("email and password required")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, common.ErrInternal
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.Create(ctx, &models.User{
		Email:        email,
		PasswordHash: hash,
		Name:         strings.TrimSpace(name),
	})
	if err != nil {
		if errors.Is(err, common.ErrConflict) {
			return nil, common.ErrConflict
		}
		return nil, common.ErrInternal
	}

	return s.authResult(user)
}

// Login verifies the email/password pair. Unknown email and wrong password
// both produce common.ErrUnauthorized; the unknown-email path still burns a
// bcrypt comparison so latency does not reveal which check failed.
func (s *UserService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	if email == "" || password == "" {
		return nil, common.NewValidationError("email and password required")
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			auth.BurnPasswordCheck(password)
			return nil, common.ErrUnauthorized
		}
		return nil, common.ErrInternal
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, common.ErrUnauthorized
	}

	return s.authResult(user)
}

// GetByID returns the public profile for a verified token's user ID.
// A token whose user row no longer exists yields common.ErrNotFound.
func (s *UserService) GetByID(ctx context.Context, id string) (*models.PublicUser, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, common.ErrInternal
	}
	return user.Public(), nil
}

// UpdateProfile sets the caller's display name, city and phone.
func (s *UserService) UpdateProfile(ctx context.Context, id, name, city, phone string) (*models.PublicUser, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.UpdateProfile(ctx, id,
		strings.TrimSpace(name), strings.TrimSpace(city), strings.TrimSpace(phone))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, common.ErrInternal
	}
	return user.Public(), nil
}

func (s *UserService) authResult(user *models.User) (*AuthResult, error) {
	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenValidity)
	if err != nil {
		return nil, common.ErrInternal
	}
	return &AuthResult{User: user.Public(), Token: token}, nil
}
