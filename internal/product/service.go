package product

import (
	"context"
	"strings"

	"fixitplus-be/internal/category"
	"fixitplus-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	GetAll(ctx context.Context) ([]*Product, error)
	GetByID(ctx context.Context, id string) (*Product, error)
	Create(ctx context.Context, params NewProductParams) (*Product, error)
	Update(ctx context.Context, id string, params UpdateProductParams) (*Product, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetAll(ctx context.Context) ([]*Product, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) GetByID(ctx context.Context, id string) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Create(ctx context.Context, params NewProductParams) (*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateProduct"),
	)

	if strings.TrimSpace(params.Name) == "" {
		return nil, ErrValidation
	}
	if params.Price < 0 || params.Stock < 0 {
		return nil, ErrValidation
	}
	if !category.Valid(params.Category) {
		return nil, ErrValidation
	}

	p, err := s.repo.Create(ctx, params)
	if err != nil {
		log.Error("failed to create product", zap.Error(err))
		return nil, err
	}

	return p, nil
}

func (s *service) Update(ctx context.Context, id string, params UpdateProductParams) (*Product, error) {
	if params.Name == nil && params.Description == nil && params.Category == nil &&
		params.Price == nil && params.Stock == nil && params.ImageURL == nil {
		return nil, ErrNothingToUpdate
	}

	// Validate only provided fields
	if params.Name != nil && strings.TrimSpace(*params.Name) == "" {
		return nil, ErrValidation
	}
	if params.Price != nil && *params.Price < 0 {
		return nil, ErrValidation
	}
	if params.Stock != nil && *params.Stock < 0 {
		return nil, ErrValidation
	}
	if params.Category != nil && !category.Valid(*params.Category) {
		return nil, ErrValidation
	}

	return s.repo.Update(ctx, id, params)
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
