package issue

import (
	"context"
	"strings"

	"fixitplus-be/internal/category"
	"fixitplus-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, params CreateIssueParams) (*Issue, error)
	List(ctx context.Context) ([]*Issue, error)
	ListByReporter(ctx context.Context, reporterID string) ([]*Issue, error)
	Update(ctx context.Context, id string, params UpdateIssueParams) (*Issue, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, params CreateIssueParams) (*Issue, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateIssue"),
	)

	if strings.TrimSpace(params.Title) == "" ||
		strings.TrimSpace(params.Description) == "" ||
		strings.TrimSpace(params.Location) == "" ||
		params.ReporterID == "" {
		return nil, ErrValidation
	}

	// A report without a photo is not actionable.
	if params.ImageURL == "" {
		return nil, ErrValidation
	}

	if !ValidLocationClass(params.LocationClass) {
		return nil, ErrValidation
	}

	// The suggestion flow already falls back to a valid member, so an
	// out-of-set category here is a caller bug, not classifier noise.
	if !category.Valid(params.Category) {
		return nil, ErrValidation
	}

	if params.Subcategory != nil && *params.Subcategory == "" {
		params.Subcategory = nil
	}

	i, err := s.repo.Create(ctx, params)
	if err != nil {
		log.Error("failed to create issue", zap.Error(err))
		return nil, err
	}

	log.Info("issue reported",
		zap.String("issue_id", i.ID),
		zap.String("category", i.Category),
		zap.String("location_class", string(i.LocationClass)),
	)

	return i, nil
}

func (s *service) List(ctx context.Context) ([]*Issue, error) {
	return s.repo.List(ctx)
}

func (s *service) ListByReporter(ctx context.Context, reporterID string) ([]*Issue, error) {
	return s.repo.ListByReporter(ctx, reporterID)
}

// Update applies a partial patch under the lifecycle rules: a resolved
// issue never changes status again, and resolving requires a repaired
// photo. Notes may change on any status.
func (s *service) Update(ctx context.Context, id string, params UpdateIssueParams) (*Issue, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "UpdateIssue"),
		zap.String("issue_id", id),
	)

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.Status != nil {
		next := *params.Status

		if !ValidStatus(next) {
			return nil, ErrInvalidStatus
		}

		if current.Status == StatusResolved && next != StatusResolved {
			return nil, ErrIssueResolved
		}

		if next == StatusResolved && params.RepairedImageURL == nil && current.RepairedImageURL == nil {
			return nil, ErrAfterPhotoRequired
		}
	}

	updated, err := s.repo.Update(ctx, id, params)
	if err != nil {
		log.Error("failed to update issue", zap.Error(err))
		return nil, err
	}

	if params.Status != nil {
		log.Info("issue status changed",
			zap.String("from", string(current.Status)),
			zap.String("to", string(updated.Status)),
		)
	}

	return updated, nil
}
