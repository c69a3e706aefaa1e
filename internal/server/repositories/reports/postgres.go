package reports

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shivtchandra/CivicWatch/internal/common"
	"github.com/shivtchandra/CivicWatch/internal/dbx"
	"github.com/shivtchandra/CivicWatch/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const reportColumns = `r.id, r.title, r.description, r.category, r.location, r.city,
		r.lat, r.lng, r.image_key, r.status, r.priority,
		r.contact_info, r.government_response, r.created_by, r.created_at`

const bareReportColumns = `id, title, description, category, location, city,
		lat, lng, image_key, status, priority,
		contact_info, government_response, created_by, created_at`

func (r *PostgresRepository) Create(ctx context.Context, report *models.Report) (*models.Report, error) {

	query :=
		`INSERT INTO reports (title, description, category, location, city, lat, lng,
		                      image_key, priority, contact_info, government_response, created_by)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 RETURNING id, status, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		report.Title, report.Description, report.Category, report.Location, report.City,
		report.Lat, report.Lng, report.ImageKey, report.Priority,
		report.ContactInfo, report.GovernmentResponse, report.CreatedBy).
		Scan(&report.ID, &report.Status, &report.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return report, nil
}

// List returns all reports newest first. Owner columns come from a left join
// so reports whose owner was deleted still come back, with a nil Owner.
func (r *PostgresRepository) List(ctx context.Context, filter ListFilter) ([]*models.Report, error) {

	query := `SELECT ` + reportColumns + `, u.id, u.name, u.city
		 FROM reports r
		 LEFT JOIN users u ON u.id = r.created_by`

	args := []any{}
	if filter.City != "" {
		query += ` WHERE r.city = $1`
		args = append(args, filter.City)
	}
	query += ` ORDER BY r.created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Report
	for rows.Next() {
		report, err := scanReportWithOwner(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, report)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Report, error) {

	query := `SELECT ` + reportColumns + `, u.id, u.name, u.city
		 FROM reports r
		 LEFT JOIN users u ON u.id = r.created_by
		 WHERE r.id = $1`

	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		return nil, common.ErrNotFound
	}

	return scanReportWithOwner(rows)
}

func (r *PostgresRepository) UpdateStatus(ctx context.Context, id, status string) (*models.Report, error) {

	query :=
		`UPDATE reports SET status = $2
		 WHERE id = $1
		 RETURNING ` + bareReportColumns

	report := &models.Report{}
	err := r.db.QueryRowContext(ctx, query, id, status).Scan(reportFields(report)...)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return report, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {

	res, err := r.db.ExecContext(ctx, `DELETE FROM reports WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}

	return nil
}

// reportFields returns scan destinations in reportColumns order.
func reportFields(report *models.Report) []any {
	return []any{
		&report.ID, &report.Title, &report.Description, &report.Category,
		&report.Location, &report.City, &report.Lat, &report.Lng,
		&report.ImageKey, &report.Status, &report.Priority,
		&report.ContactInfo, &report.GovernmentResponse,
		&report.CreatedBy, &report.CreatedAt,
	}
}

func scanReportWithOwner(rows *sql.Rows) (*models.Report, error) {
	report := &models.Report{}

	var ownerID, ownerName, ownerCity sql.NullString
	dest := append(reportFields(report), &ownerID, &ownerName, &ownerCity)

	if err := rows.Scan(dest...); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	if ownerID.Valid {
		report.Owner = &models.OwnerSummary{
			ID:   ownerID.String,
			Name: ownerName.String,
			City: ownerCity.String,
		}
	}

	return report, nil
}
