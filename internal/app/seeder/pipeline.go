// Package seeder loads an inventory fixture through the application
// services, so seeded rows pass the same validation as API writes.
package seeder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/saas-inventory-backend/internal/domain"
	"github.com/heartmarshall/saas-inventory-backend/internal/service/category"
	"github.com/heartmarshall/saas-inventory-backend/internal/service/tool"
)

type categoryService interface {
	ListCategories(ctx context.Context) ([]*domain.Category, error)
	CreateCategory(ctx context.Context, input category.CreateCategoryInput) (*domain.Category, error)
}

type toolService interface {
	CreateTool(ctx context.Context, input tool.CreateToolInput) (*domain.Tool, error)
}

// Phase names in execution order.
const (
	PhaseCategories = "categories"
	PhaseTools      = "tools"
)

// Config holds seeding options.
type Config struct {
	DryRun      bool
	StopOnError bool
}

// PhaseResult holds the outcome of a single pipeline phase.
type PhaseResult struct {
	Inserted int
	Skipped  int
	Errors   int
	Duration time.Duration
	Err      error
}

// Pipeline seeds categories, then tools.
type Pipeline struct {
	log        *slog.Logger
	categories categoryService
	tools      toolService
	cfg        Config
	results    map[string]PhaseResult

	categoryIDs map[string]int64
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, categories categoryService, tools toolService, cfg Config) *Pipeline {
	return &Pipeline{
		log:         log.With("component", "seeder"),
		categories:  categories,
		tools:       tools,
		cfg:         cfg,
		results:     make(map[string]PhaseResult),
		categoryIDs: make(map[string]int64),
	}
}

// Results returns phase results after Run completes.
func (p *Pipeline) Results() map[string]PhaseResult {
	return p.results
}

// HasErrors returns true if any phase recorded errors.
func (p *Pipeline) HasErrors() bool {
	for _, r := range p.results {
		if r.Err != nil || r.Errors > 0 {
			return true
		}
	}
	return false
}

// Run seeds the fixture. Rows that already exist are skipped, so a fixture
// can be applied repeatedly.
func (p *Pipeline) Run(ctx context.Context, fx *Fixture) error {
	phases := []struct {
		name string
		run  func(context.Context, *Fixture) PhaseResult
	}{
		{PhaseCategories, p.runCategories},
		{PhaseTools, p.runTools},
	}

	for _, ph := range phases {
		start := time.Now()
		p.log.InfoContext(ctx, "starting phase", slog.String("phase", ph.name))

		result := ph.run(ctx, fx)
		result.Duration = time.Since(start)
		p.results[ph.name] = result

		if result.Err != nil {
			p.log.WarnContext(ctx, "phase failed",
				slog.String("phase", ph.name),
				slog.String("error", result.Err.Error()),
				slog.Duration("duration", result.Duration),
			)
			return fmt.Errorf("seed %s: %w", ph.name, result.Err)
		}
		p.log.InfoContext(ctx, "phase completed",
			slog.String("phase", ph.name),
			slog.Int("inserted", result.Inserted),
			slog.Int("skipped", result.Skipped),
			slog.Int("errors", result.Errors),
			slog.Duration("duration", result.Duration),
		)
	}

	p.log.InfoContext(ctx, "pipeline completed", slog.Bool("dry_run", p.cfg.DryRun))
	return nil
}

func (p *Pipeline) runCategories(ctx context.Context, fx *Fixture) PhaseResult {
	existing, err := p.categories.ListCategories(ctx)
	if err != nil {
		return PhaseResult{Err: fmt.Errorf("list categories: %w", err)}
	}
	for _, c := range existing {
		p.categoryIDs[c.Name] = c.ID
	}

	var result PhaseResult
	for _, c := range fx.Categories {
		if _, ok := p.categoryIDs[c.Name]; ok {
			result.Skipped++
			continue
		}
		if p.cfg.DryRun {
			p.categoryIDs[c.Name] = 0
			result.Skipped++
			continue
		}

		created, err := p.categories.CreateCategory(ctx, category.CreateCategoryInput{
			Name:        c.Name,
			Description: c.Description,
			ColorHex:    c.ColorHex,
		})
		if err != nil {
			if stop := p.recordError(ctx, &result, "category", c.Name, err); stop {
				return result
			}
			continue
		}
		p.categoryIDs[created.Name] = created.ID
		result.Inserted++
	}
	return result
}

func (p *Pipeline) runTools(ctx context.Context, fx *Fixture) PhaseResult {
	var result PhaseResult
	for _, t := range fx.Tools {
		catID, ok := p.categoryIDs[t.Category]
		if !ok {
			err := domain.NewValidationError("category", fmt.Sprintf("unknown category %q", t.Category))
			if stop := p.recordError(ctx, &result, "tool", t.Name, err); stop {
				return result
			}
			continue
		}
		if p.cfg.DryRun {
			result.Skipped++
			continue
		}

		_, err := p.tools.CreateTool(ctx, tool.CreateToolInput{
			Name:             t.Name,
			Description:      t.Description,
			Vendor:           t.Vendor,
			WebsiteURL:       t.WebsiteURL,
			CategoryID:       catID,
			MonthlyCost:      t.MonthlyCost,
			ActiveUsersCount: t.ActiveUsersCount,
			OwnerDepartment:  t.OwnerDepartment,
			Status:           t.Status,
		})
		switch {
		case err == nil:
			result.Inserted++
		case errors.Is(err, domain.ErrAlreadyExists):
			result.Skipped++
		default:
			if stop := p.recordError(ctx, &result, "tool", t.Name, err); stop {
				return result
			}
		}
	}
	return result
}

// recordError counts a rejected row. Validation failures are per-row;
// anything else aborts the phase. With StopOnError every failure aborts.
func (p *Pipeline) recordError(ctx context.Context, result *PhaseResult, kind, name string, err error) bool {
	if errors.Is(err, domain.ErrAlreadyExists) {
		result.Skipped++
		return false
	}
	if !errors.Is(err, domain.ErrValidation) || p.cfg.StopOnError {
		result.Err = fmt.Errorf("%s %q: %w", kind, name, err)
		return true
	}

	result.Errors++
	p.log.WarnContext(ctx, "row rejected",
		slog.String("kind", kind),
		slog.String("name", name),
		slog.String("error", err.Error()),
	)
	return false
}
