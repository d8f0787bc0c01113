package tool

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/saas-inventory-backend/internal/domain"
)

// UpdateTool applies a partial update. Only supplied fields change and
// updated_at is refreshed. Returns domain.ErrNoFieldsToUpdate for an empty
// input and domain.ErrNotFound for an unknown tool.
func (s *Service) UpdateTool(ctx context.Context, input UpdateToolInput) (*domain.Tool, error) {
	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	patch := input.patch()

	var updated *domain.Tool
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if patch.CategoryID != nil {
			if err := s.ensureCategory(txCtx, *patch.CategoryID); err != nil {
				return err
			}
		}

		var updateErr error
		updated, updateErr = s.tools.Update(txCtx, input.ToolID, patch)
		if updateErr != nil {
			return fmt.Errorf("update tool: %w", updateErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "tool updated", slog.Int64("tool_id", input.ToolID))

	return updated, nil
}
