package tool

import (
	"context"

	"github.com/heartmarshall/saas-inventory-backend/internal/domain"
)

// GetTool returns a tool by id. Returns domain.ErrNotFound if it does not exist.
func (s *Service) GetTool(ctx context.Context, id int64) (*domain.Tool, error) {
	if id <= 0 {
		return nil, domain.NewValidationError("id", "must be a positive integer")
	}
	return s.tools.GetByID(ctx, id)
}
