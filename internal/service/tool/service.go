package tool

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/saas-inventory-backend/internal/config"
	"github.com/heartmarshall/saas-inventory-backend/internal/domain"
)

type toolRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Tool, error)
	List(ctx context.Context, f domain.ToolFilter) ([]*domain.Tool, error)
	Count(ctx context.Context, f domain.ToolFilter) (int, error)
	Create(ctx context.Context, t *domain.Tool) (*domain.Tool, error)
	Update(ctx context.Context, id int64, p domain.ToolPatch) (*domain.Tool, error)
	Delete(ctx context.Context, id int64) error
}

type categoryChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides tool inventory operations.
type Service struct {
	tools      toolRepo
	categories categoryChecker
	tx         txManager
	paging     config.PaginationConfig
	log        *slog.Logger
}

// NewService creates a new tool service.
func NewService(
	log *slog.Logger,
	tools toolRepo,
	categories categoryChecker,
	tx txManager,
	paging config.PaginationConfig,
) *Service {
	return &Service{
		tools:      tools,
		categories: categories,
		tx:         tx,
		paging:     paging,
		log:        log.With("service", "tool"),
	}
}

// ensureCategory reports a category_id field error when id does not exist.
func (s *Service) ensureCategory(ctx context.Context, id int64) error {
	ok, err := s.categories.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.NewValidationError("category_id", "category does not exist")
	}
	return nil
}
