// Package category manages the lookup table tools are grouped by.
package category

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/saas-inventory-backend/internal/domain"
)

type categoryRepo interface {
	List(ctx context.Context) ([]*domain.Category, error)
	GetByID(ctx context.Context, id int64) (*domain.Category, error)
	Create(ctx context.Context, c *domain.Category) (*domain.Category, error)
	CountTools(ctx context.Context, id int64) (int, error)
	Delete(ctx context.Context, id int64) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides category operations.
type Service struct {
	categories categoryRepo
	tx         txManager
	log        *slog.Logger
}

// NewService creates a new category service.
func NewService(log *slog.Logger, categories categoryRepo, tx txManager) *Service {
	return &Service{
		categories: categories,
		tx:         tx,
		log:        log.With("service", "category"),
	}
}

// CreateCategoryInput holds the parameters for creating a category.
type CreateCategoryInput struct {
	Name        string  `validate:"required,min=2,max=50"`
	Description *string `validate:"omitempty,max=500"`
	ColorHex    *string `validate:"omitempty,hexcolor,len=7"`
}

// Validate checks all fields and collects all errors.
func (i CreateCategoryInput) Validate() error {
	return domain.ValidateStruct(i)
}

// ListCategories returns every category with its tool count.
func (s *Service) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	list, err := s.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return list, nil
}

// GetCategory returns a category by id. Returns domain.ErrNotFound if missing.
func (s *Service) GetCategory(ctx context.Context, id int64) (*domain.Category, error) {
	if id <= 0 {
		return nil, domain.NewValidationError("id", "must be a positive integer")
	}
	return s.categories.GetByID(ctx, id)
}

// CreateCategory inserts a category with the default color when none is given.
func (s *Service) CreateCategory(ctx context.Context, input CreateCategoryInput) (*domain.Category, error) {
	input.Name = domain.NormalizeName(input.Name)
	input.Description = domain.NormalizeOptional(input.Description)
	input.ColorHex = domain.NormalizeOptional(input.ColorHex)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	color := domain.DefaultCategoryColor
	if input.ColorHex != nil {
		color = *input.ColorHex
	}

	created, err := s.categories.Create(ctx, &domain.Category{
		Name:        input.Name,
		Description: input.Description,
		ColorHex:    color,
	})
	if err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}

	s.log.InfoContext(ctx, "category created",
		slog.Int64("category_id", created.ID),
		slog.String("name", created.Name),
	)
	return created, nil
}

// DeleteCategory removes an unused category. Returns domain.ErrNotFound for
// an unknown id and domain.ErrConflict while tools still reference it.
func (s *Service) DeleteCategory(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.NewValidationError("id", "must be a positive integer")
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.categories.GetByID(txCtx, id); err != nil {
			return err
		}

		n, err := s.categories.CountTools(txCtx, id)
		if err != nil {
			return fmt.Errorf("count category tools: %w", err)
		}
		if n > 0 {
			return fmt.Errorf("category %d referenced by %d tools: %w", id, n, domain.ErrConflict)
		}

		return s.categories.Delete(txCtx, id)
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "category deleted", slog.Int64("category_id", id))
	return nil
}
