package tool

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/saas-inventory-backend/internal/domain"
)

// CreateTool validates input, applies defaults (status active, no users,
// Engineering) and inserts the tool.
func (s *Service) CreateTool(ctx context.Context, input CreateToolInput) (*domain.Tool, error) {
	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if err := s.ensureCategory(ctx, input.CategoryID); err != nil {
		return nil, err
	}

	created, err := s.tools.Create(ctx, input.tool())
	if err != nil {
		return nil, fmt.Errorf("create tool: %w", err)
	}

	s.log.InfoContext(ctx, "tool created",
		slog.Int64("tool_id", created.ID),
		slog.String("name", created.Name),
		slog.Float64("monthly_cost", created.MonthlyCost),
	)

	return created, nil
}
