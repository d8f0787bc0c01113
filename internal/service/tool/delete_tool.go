package tool

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/saas-inventory-backend/internal/domain"
)

// DeleteTool removes a tool. Returns domain.ErrNotFound if it does not exist.
func (s *Service) DeleteTool(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.NewValidationError("id", "must be a positive integer")
	}

	if err := s.tools.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete tool: %w", err)
	}

	s.log.InfoContext(ctx, "tool deleted", slog.Int64("tool_id", id))
	return nil
}
