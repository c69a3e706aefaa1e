package users

import (
	"context"

	"github.com/shivtchandra/CivicWatch/internal/server/models"
)

// Repository persists user accounts. Create returns common.ErrConflict on a
// duplicate email; lookups return common.ErrNotFound.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	UpdateProfile(ctx context.Context, id, name, city, phone string) (*models.User, error)
}
