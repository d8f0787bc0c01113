package tool

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/saas-inventory-backend/internal/domain"
)

// ListResult is one page of tools with counts and the echoed filters.
type ListResult struct {
	Tools          []*domain.Tool
	Total          int
	Filtered       int
	FiltersApplied map[string]any
}

// ListTools returns a filtered, sorted page of tools. The page, the total
// count and the filtered count are read concurrently.
func (s *Service) ListTools(ctx context.Context, input ListToolsInput) (*ListResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	f := input.filter(s.paging.DefaultLimit, s.paging.MaxLimit)

	var (
		tools    []*domain.Tool
		total    int
		filtered int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		tools, err = s.tools.List(gctx, f)
		if err != nil {
			return fmt.Errorf("list tools: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		total, err = s.tools.Count(gctx, domain.ToolFilter{})
		if err != nil {
			return fmt.Errorf("count all tools: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		filtered, err = s.tools.Count(gctx, f)
		if err != nil {
			return fmt.Errorf("count filtered tools: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if tools == nil {
		tools = []*domain.Tool{}
	}

	return &ListResult{
		Tools:          tools,
		Total:          total,
		Filtered:       filtered,
		FiltersApplied: input.filtersApplied(),
	}, nil
}
