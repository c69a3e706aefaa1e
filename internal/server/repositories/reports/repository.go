package reports

import (
	"context"

	"github.com/shivtchandra/CivicWatch/internal/server/models"
)

// ListFilter narrows List results. Zero value means no filtering.
type ListFilter struct {
	City string
}

type Repository interface {
	Create(ctx context.Context, report *models.Report) (*models.Report, error)
	// List returns reports newest first, each with an owner summary when the
	// owning user still exists.
	List(ctx context.Context, filter ListFilter) ([]*models.Report, error)
	GetByID(ctx context.Context, id string) (*models.Report, error)
	UpdateStatus(ctx context.Context, id, status string) (*models.Report, error)
	Delete(ctx context.Context, id string) error
}
