// Package analytics computes the cost reports over active tools.
// Rows come from the repository; grouping, rounding and labeling are pure
// functions in this package.
package analytics

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/saas-inventory-backend/internal/config"
	"github.com/heartmarshall/saas-inventory-backend/internal/domain"
)

type usageRepo interface {
	ListActive(ctx context.Context) ([]domain.ToolUsage, error)
	ListExpensive(ctx context.Context, limit int, minCost *float64) ([]domain.ToolUsage, error)
	ListLowUsage(ctx context.Context, maxUsers int) ([]domain.ToolUsage, error)
}

// Department report sort keys.
const (
	DepartmentSortCost = "total_cost"
	DepartmentSortName = "department"
)

// Service provides the analytics reports.
type Service struct {
	usage usageRepo
	cfg   config.AnalyticsConfig
	log   *slog.Logger
}

// NewService creates a new analytics service.
func NewService(log *slog.Logger, usage usageRepo, cfg config.AnalyticsConfig) *Service {
	return &Service{
		usage: usage,
		cfg:   cfg,
		log:   log.With("service", "analytics"),
	}
}

// DepartmentCostsInput selects the ordering of the department report.
type DepartmentCostsInput struct {
	SortBy string `validate:"omitempty,oneof=total_cost department"`
	Order  string `validate:"omitempty,oneof=asc desc"`
}

// ExpensiveToolsInput holds the expensive-tools query. Nil means default.
type ExpensiveToolsInput struct {
	Limit   *int     `validate:"omitempty,gte=1"`
	MinCost *float64 `validate:"omitempty,gte=0"`
}

// LowUsageInput holds the low-usage query. Nil means the configured default.
type LowUsageInput struct {
	MaxUsers *int `validate:"omitempty,gte=0"`
}

// DepartmentCosts groups active tools by owner department.
func (s *Service) DepartmentCosts(ctx context.Context, input DepartmentCostsInput) (*domain.DepartmentCostReport, error) {
	if err := domain.ValidateStruct(input); err != nil {
		return nil, err
	}

	sortBy := input.SortBy
	if sortBy == "" {
		sortBy = DepartmentSortCost
	}
	order := domain.SortOrder(input.Order)
	if order == "" {
		order = domain.SortDesc
	}

	rows, err := s.usage.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("department costs: %w", err)
	}

	report := departmentCosts(rows, sortBy, order)
	s.log.DebugContext(ctx, "department costs computed",
		slog.Int("departments", len(report.Departments)),
		slog.Float64("total_company_cost", report.TotalCompanyCost),
	)
	return &report, nil
}

// ExpensiveTools ranks active tools by monthly cost and rates their
// efficiency against the company-wide cost per user.
func (s *Service) ExpensiveTools(ctx context.Context, input ExpensiveToolsInput) (*domain.ExpensiveToolsReport, error) {
	if err := domain.ValidateStruct(input); err != nil {
		return nil, err
	}

	limit := s.cfg.ExpensiveDefaultLimit
	if input.Limit != nil {
		limit = min(*input.Limit, s.cfg.ExpensiveMaxLimit)
	}

	rows, err := s.usage.ListExpensive(ctx, limit, input.MinCost)
	if err != nil {
		return nil, fmt.Errorf("expensive tools: %w", err)
	}

	all, err := s.usage.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("expensive tools: company average: %w", err)
	}

	report := expensiveTools(rows, companyAvgCostPerUser(all))
	return &report, nil
}

// ToolsByCategory groups active tools by category.
func (s *Service) ToolsByCategory(ctx context.Context) (*domain.CategoryCostReport, error) {
	rows, err := s.usage.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("tools by category: %w", err)
	}

	report := categoryCosts(rows)
	return &report, nil
}

// LowUsageTools lists active tools with at most MaxUsers users and labels
// each with a warning level.
func (s *Service) LowUsageTools(ctx context.Context, input LowUsageInput) (*domain.LowUsageReport, error) {
	if err := domain.ValidateStruct(input); err != nil {
		return nil, err
	}

	maxUsers := s.cfg.LowUsageMaxUsers
	if input.MaxUsers != nil {
		maxUsers = *input.MaxUsers
	}

	rows, err := s.usage.ListLowUsage(ctx, maxUsers)
	if err != nil {
		return nil, fmt.Errorf("low usage tools: %w", err)
	}

	report := lowUsageTools(rows, thresholds{
		high:   s.cfg.HighCostPerUser,
		medium: s.cfg.MediumCostPerUser,
	})
	return &report, nil
}

// VendorSummary groups active tools by vendor.
func (s *Service) VendorSummary(ctx context.Context) (*domain.VendorSummaryReport, error) {
	rows, err := s.usage.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("vendor summary: %w", err)
	}

	report := vendorSummary(rows)
	return &report, nil
}
