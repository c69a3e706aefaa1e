package services

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/shivtchandra/CivicWatch/internal/common"
	"github.com/shivtchandra/CivicWatch/internal/server/models"
	"github.com/shivtchandra/CivicWatch/internal/server/repositories/repomanager"
	"github.com/shivtchandra/CivicWatch/internal/server/repositories/reports"
)

// CreateReportParams carries a report submission. Lat/Lng arrive as strings
// from form-style clients and are coerced to floats; empty means absent.
type CreateReportParams struct {
	Title              string `validate:"required,min=5,max=100"`
	Description        string `validate:"required,min=10,max=1000"`
	Category           string
	Location           string `validate:"omitempty,min=3,max=200"`
	City               string
	Lat                string
	Lng                string
	ImageKey           string
	Priority           string `validate:"omitempty,oneof=low medium high"`
	ContactInfo        string
	GovernmentResponse string
}

// ReportService implements the report lifecycle: create, public listing with
// an optional city scope, single fetch, and owner-only status update/delete.
type ReportService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	validate    *validator.Validate
}

func NewReportService(db *sql.DB, m repomanager.RepositoryManager) *ReportService {
	return &ReportService{
		db:          db,
		repomanager: m,
		validate:    validator.New(),
	}
}

// Create validates the submission and stores a new report owned by ownerID.
// Category defaults to "general" and priority to "medium"; status always
// starts as "open" regardless of input.
func (s *ReportService) Create(ctx context.Context, ownerID string, params *CreateReportParams) (*models.Report, error) {
	params.Title = strings.TrimSpace(params.Title)
	params.Description = strings.TrimSpace(params.Description)
	params.Location = strings.TrimSpace(params.Location)

	if err := s.validate.Struct(params); err != nil {
		return nil, common.NewValidationError(validationMessage(err))
	}

	lat, err := parseCoord(params.Lat, "lat")
	if err != nil {
		return nil, err
	}
	lng, err := parseCoord(params.Lng, "lng")
	if err != nil {
		return nil, err
	}

	category := params.Category
	if category == "" {
		category = models.CategoryGeneral
	}
	priority := params.Priority
	if priority == "" {
		priority = "medium"
	}

	repo := s.repomanager.Reports(s.db)
	report, err := repo.Create(ctx, &models.Report{
		Title:              params.Title,
		Description:        params.Description,
		Category:           category,
		Location:           params.Location,
		City:               strings.TrimSpace(params.City),
		Lat:                lat,
		Lng:                lng,
		ImageKey:           params.ImageKey,
		Status:             models.StatusOpen,
		Priority:           priority,
		ContactInfo:        strings.TrimSpace(params.ContactInfo),
		GovernmentResponse: strings.TrimSpace(params.GovernmentResponse),
		CreatedBy:          ownerID,
	})
	if err != nil {
		return nil, common.ErrInternal
	}
	return report, nil
}

// List returns all reports newest first. A non-empty city narrows the result
// to reports whose stored city matches exactly.
func (s *ReportService) List(ctx context.Context, city string) ([]*models.Report, error) {
	repo := s.repomanager.Reports(s.db)
	list, err := repo.List(ctx, reports.ListFilter{City: strings.TrimSpace(city)})
	if err != nil {
		return nil, common.ErrInternal
	}
	return list, nil
}

func (s *ReportService) GetByID(ctx context.Context, id string) (*models.Report, error) {
	repo := s.repomanager.Reports(s.db)
	report, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, common.ErrInternal
	}
	return report, nil
}

// UpdateStatus changes the lifecycle status. Only the report owner may do so;
// anyone else gets common.ErrForbidden. Ownership is checked on the current
// row before the write.
func (s *ReportService) UpdateStatus(ctx context.Context, id, status, requesterID string) (*models.Report, error) {
	switch status {
	case models.StatusOpen, models.StatusInProgress, models.StatusResolved:
	default:
		return nil, common.NewValidationError("invalid status")
	}

	repo := s.repomanager.Reports(s.db)
	current, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, common.ErrInternal
	}
	if current.CreatedBy != requesterID {
		return nil, common.ErrForbidden
	}

	updated, err := repo.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, common.ErrInternal
	}
	return updated, nil
}

// Delete removes a report. Owner only.
func (s *ReportService) Delete(ctx context.Context, id, requesterID string) error {
	repo := s.repomanager.Reports(s.db)
	current, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.ErrNotFound
		}
		return common.ErrInternal
	}
	if current.CreatedBy != requesterID {
		return common.ErrForbidden
	}

	if err := repo.Delete(ctx, id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.ErrNotFound
		}
		return common.ErrInternal
	}
	return nil
}

func parseCoord(raw, name string) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, common.NewValidationError("invalid " + name)
	}
	return &v, nil
}

// validationMessage flattens the first validator error into a human-readable
// message for the API error body.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "invalid payload"
	}
	fe := verrs[0]
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return field + " must be at least " + fe.Param() + " characters"
	case "max":
		return field + " must be at most " + fe.Param() + " characters"
	case "oneof":
		return field + " must be one of: " + fe.Param()
	default:
		return field + " is invalid"
	}
}
