package issue

import (
	"context"
	"database/sql"
	"errors"

	"fixitplus-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, params CreateIssueParams) (*Issue, error)
	GetByID(ctx context.Context, id string) (*Issue, error)
	List(ctx context.Context) ([]*Issue, error)
	ListByReporter(ctx context.Context, reporterID string) ([]*Issue, error)
	Update(ctx context.Context, id string, params UpdateIssueParams) (*Issue, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const issueColumns = `id, title, description, location, location_class, category,
	subcategory, status, reported_by, image_url, repaired_image_url, notes,
	created_at, updated_at`

func scanIssue(row interface{ Scan(...any) error }) (*Issue, error) {
	var i Issue
	err := row.Scan(
		&i.ID, &i.Title, &i.Description, &i.Location, &i.LocationClass,
		&i.Category, &i.Subcategory, &i.Status, &i.ReportedBy, &i.ImageURL,
		&i.RepairedImageURL, &i.Notes, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *repository) Create(ctx context.Context, params CreateIssueParams) (*Issue, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateIssue"),
	)

	row := r.db.QueryRowContext(ctx, `
		INSERT INTO issues (
			title, description, location, location_class,
			category, subcategory, status, reported_by, image_url
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING `+issueColumns,
		params.Title,
		params.Description,
		params.Location,
		params.LocationClass,
		params.Category,
		params.Subcategory,
		StatusPending,
		params.ReporterID,
		params.ImageURL,
	)

	i, err := scanIssue(row)
	if err != nil {
		log.Error("failed to insert issue", zap.Error(err))
		return nil, err
	}

	log.Info("issue created", zap.String("issue_id", i.ID))
	return i, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Issue, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+issueColumns+` FROM issues WHERE id = $1`, id)

	i, err := scanIssue(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrIssueNotFound
	}
	return i, err
}

func (r *repository) List(ctx context.Context) ([]*Issue, error) {
	return r.queryIssues(ctx,
		`SELECT `+issueColumns+` FROM issues ORDER BY created_at DESC`)
}

func (r *repository) ListByReporter(ctx context.Context, reporterID string) ([]*Issue, error) {
	return r.queryIssues(ctx,
		`SELECT `+issueColumns+` FROM issues WHERE reported_by = $1 ORDER BY created_at DESC`,
		reporterID)
}

func (r *repository) queryIssues(ctx context.Context, query string, args ...any) ([]*Issue, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var issues []*Issue
	for rows.Next() {
		i, err := scanIssue(rows)
		if err != nil {
			return nil, err
		}
		issues = append(issues, i)
	}

	return issues, rows.Err()
}

func (r *repository) Update(ctx context.Context, id string, params UpdateIssueParams) (*Issue, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "UpdateIssue"),
		zap.String("issue_id", id),
	)

	// COALESCE keeps existing values when the input field is nil
	row := r.db.QueryRowContext(ctx, `
		UPDATE issues
		SET status = COALESCE($2, status),
			notes = COALESCE($3, notes),
			repaired_image_url = COALESCE($4, repaired_image_url),
			updated_at = NOW()
		WHERE id = $1
		RETURNING `+issueColumns,
		id, params.Status, params.Notes, params.RepairedImageURL,
	)

	i, err := scanIssue(row)
	if errors.Is(err, sql.ErrNoRows) {
		log.Info("issue not found")
		return nil, ErrIssueNotFound
	}
	if err != nil {
		log.Error("failed to update issue", zap.Error(err))
		return nil, err
	}

	return i, nil
}
