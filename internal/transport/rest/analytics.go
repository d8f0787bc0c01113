package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/saas-inventory-backend/internal/domain"
	"github.com/heartmarshall/saas-inventory-backend/internal/service/analytics"
)

type analyticsService interface {
	DepartmentCosts(ctx context.Context, input analytics.DepartmentCostsInput) (*domain.DepartmentCostReport, error)
	ExpensiveTools(ctx context.Context, input analytics.ExpensiveToolsInput) (*domain.ExpensiveToolsReport, error)
	ToolsByCategory(ctx context.Context) (*domain.CategoryCostReport, error)
	LowUsageTools(ctx context.Context, input analytics.LowUsageInput) (*domain.LowUsageReport, error)
	VendorSummary(ctx context.Context) (*domain.VendorSummaryReport, error)
}

// AnalyticsHandler serves the /api/analytics reports.
type AnalyticsHandler struct {
	svc analyticsService
	log *slog.Logger
}

// NewAnalyticsHandler creates an AnalyticsHandler.
func NewAnalyticsHandler(svc analyticsService, logger *slog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc, log: logger.With("handler", "analytics")}
}

type departmentCostJSON struct {
	Department         string  `json:"department"`
	TotalCost          float64 `json:"total_cost"`
	ToolsCount         int     `json:"tools_count"`
	TotalUsers         int     `json:"total_users"`
	AverageCostPerTool float64 `json:"average_cost_per_tool"`
	CostPercentage     float64 `json:"cost_percentage"`
}

type departmentCostsResponse struct {
	Data    []departmentCostJSON `json:"data"`
	Summary struct {
		TotalCompanyCost        float64 `json:"total_company_cost"`
		DepartmentsCount        int     `json:"departments_count"`
		MostExpensiveDepartment *string `json:"most_expensive_department"`
	} `json:"summary"`
}

type expensiveToolJSON struct {
	ID               int64   `json:"id"`
	Name             string  `json:"name"`
	MonthlyCost      float64 `json:"monthly_cost"`
	ActiveUsersCount int     `json:"active_users_count"`
	CostPerUser      float64 `json:"cost_per_user"`
	Department       string  `json:"department"`
	Vendor           string  `json:"vendor"`
	EfficiencyRating string  `json:"efficiency_rating"`
}

type expensiveToolsResponse struct {
	Data     []expensiveToolJSON `json:"data"`
	Analysis struct {
		TotalToolsAnalyzed         int     `json:"total_tools_analyzed"`
		AvgCostPerUserCompany      float64 `json:"avg_cost_per_user_company"`
		PotentialSavingsIdentified float64 `json:"potential_savings_identified"`
	} `json:"analysis"`
}

type categoryCostJSON struct {
	CategoryName       string  `json:"category_name"`
	ToolsCount         int     `json:"tools_count"`
	TotalCost          float64 `json:"total_cost"`
	TotalUsers         int     `json:"total_users"`
	PercentageOfBudget float64 `json:"percentage_of_budget"`
	AverageCostPerUser float64 `json:"average_cost_per_user"`
}

type toolsByCategoryResponse struct {
	Data     []categoryCostJSON `json:"data"`
	Insights struct {
		MostExpensiveCategory *string `json:"most_expensive_category"`
		MostEfficientCategory *string `json:"most_efficient_category"`
	} `json:"insights"`
}

type lowUsageToolJSON struct {
	ID               int64   `json:"id"`
	Name             string  `json:"name"`
	MonthlyCost      float64 `json:"monthly_cost"`
	ActiveUsersCount int     `json:"active_users_count"`
	CostPerUser      float64 `json:"cost_per_user"`
	Department       string  `json:"department"`
	Vendor           string  `json:"vendor"`
	WarningLevel     string  `json:"warning_level"`
	PotentialAction  string  `json:"potential_action"`
}

type lowUsageToolsResponse struct {
	Data            []lowUsageToolJSON `json:"data"`
	SavingsAnalysis struct {
		TotalUnderutilizedTools int     `json:"total_underutilized_tools"`
		PotentialMonthlySavings float64 `json:"potential_monthly_savings"`
		PotentialAnnualSavings  float64 `json:"potential_annual_savings"`
	} `json:"savings_analysis"`
}

type vendorJSON struct {
	Vendor                   string  `json:"vendor"`
	ToolsCount               int     `json:"tools_count"`
	TotalMonthlyCost         float64 `json:"total_monthly_cost"`
	TotalUsers               int     `json:"total_users"`
	Departments              string  `json:"departments"`
	AverageCostPerUser       float64 `json:"average_cost_per_user"`
	VendorEfficiency         string  `json:"vendor_efficiency"`
	ConsolidationOpportunity bool    `json:"consolidation_opportunity"`
}

type vendorSummaryResponse struct {
	Data           []vendorJSON `json:"data"`
	VendorInsights struct {
		MostExpensiveVendor *string `json:"most_expensive_vendor"`
		MostEfficientVendor *string `json:"most_efficient_vendor"`
		SingleToolVendors   int     `json:"single_tool_vendors"`
	} `json:"vendor_insights"`
}

// DepartmentCosts handles GET /api/analytics/department-costs.
func (h *AnalyticsHandler) DepartmentCosts(w http.ResponseWriter, r *http.Request) {
	q := newQueryParser(r.URL.Query())
	input := analytics.DepartmentCostsInput{
		SortBy: deref(q.String("sort_by")),
		Order:  deref(q.String("order")),
	}

	report, err := h.svc.DepartmentCosts(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var resp departmentCostsResponse
	resp.Data = make([]departmentCostJSON, 0, len(report.Departments))
	for _, d := range report.Departments {
		resp.Data = append(resp.Data, departmentCostJSON{
			Department:         d.Department.String(),
			TotalCost:          d.TotalCost,
			ToolsCount:         d.ToolsCount,
			TotalUsers:         d.TotalUsers,
			AverageCostPerTool: d.AverageCostPerTool,
			CostPercentage:     d.CostPercentage,
		})
	}
	resp.Summary.TotalCompanyCost = report.TotalCompanyCost
	resp.Summary.DepartmentsCount = len(report.Departments)
	if d := report.MostExpensiveDepartment; d != nil {
		name := d.String()
		resp.Summary.MostExpensiveDepartment = &name
	}
	writeJSON(w, http.StatusOK, resp)
}

// ExpensiveTools handles GET /api/analytics/expensive-tools.
func (h *AnalyticsHandler) ExpensiveTools(w http.ResponseWriter, r *http.Request) {
	q := newQueryParser(r.URL.Query())
	input := analytics.ExpensiveToolsInput{
		Limit:   q.Int("limit"),
		MinCost: q.Float("min_cost"),
	}
	if err := q.Err(); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	report, err := h.svc.ExpensiveTools(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var resp expensiveToolsResponse
	resp.Data = make([]expensiveToolJSON, 0, len(report.Tools))
	for _, t := range report.Tools {
		resp.Data = append(resp.Data, expensiveToolJSON{
			ID:               t.ID,
			Name:             t.Name,
			MonthlyCost:      t.MonthlyCost,
			ActiveUsersCount: t.ActiveUsersCount,
			CostPerUser:      t.CostPerUser,
			Department:       t.Department.String(),
			Vendor:           t.Vendor,
			EfficiencyRating: t.EfficiencyRating.String(),
		})
	}
	resp.Analysis.TotalToolsAnalyzed = len(report.Tools)
	resp.Analysis.AvgCostPerUserCompany = report.AvgCostPerUserCompany
	resp.Analysis.PotentialSavingsIdentified = report.PotentialSavingsIdentified
	writeJSON(w, http.StatusOK, resp)
}

// ToolsByCategory handles GET /api/analytics/tools-by-category.
func (h *AnalyticsHandler) ToolsByCategory(w http.ResponseWriter, r *http.Request) {
	report, err := h.svc.ToolsByCategory(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var resp toolsByCategoryResponse
	resp.Data = make([]categoryCostJSON, 0, len(report.Categories))
	for _, c := range report.Categories {
		resp.Data = append(resp.Data, categoryCostJSON(c))
	}
	resp.Insights.MostExpensiveCategory = report.MostExpensiveCategory
	resp.Insights.MostEfficientCategory = report.MostEfficientCategory
	writeJSON(w, http.StatusOK, resp)
}

// LowUsageTools handles GET /api/analytics/low-usage-tools.
func (h *AnalyticsHandler) LowUsageTools(w http.ResponseWriter, r *http.Request) {
	q := newQueryParser(r.URL.Query())
	input := analytics.LowUsageInput{MaxUsers: q.Int("max_users")}
	if err := q.Err(); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	report, err := h.svc.LowUsageTools(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var resp lowUsageToolsResponse
	resp.Data = make([]lowUsageToolJSON, 0, len(report.Tools))
	for _, t := range report.Tools {
		resp.Data = append(resp.Data, lowUsageToolJSON{
			ID:               t.ID,
			Name:             t.Name,
			MonthlyCost:      t.MonthlyCost,
			ActiveUsersCount: t.ActiveUsersCount,
			CostPerUser:      t.CostPerUser,
			Department:       t.Department.String(),
			Vendor:           t.Vendor,
			WarningLevel:     t.WarningLevel.String(),
			PotentialAction:  t.PotentialAction,
		})
	}
	resp.SavingsAnalysis.TotalUnderutilizedTools = len(report.Tools)
	resp.SavingsAnalysis.PotentialMonthlySavings = report.PotentialMonthlySavings
	resp.SavingsAnalysis.PotentialAnnualSavings = report.PotentialAnnualSavings
	writeJSON(w, http.StatusOK, resp)
}

// VendorSummary handles GET /api/analytics/vendor-summary.
func (h *AnalyticsHandler) VendorSummary(w http.ResponseWriter, r *http.Request) {
	report, err := h.svc.VendorSummary(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var resp vendorSummaryResponse
	resp.Data = make([]vendorJSON, 0, len(report.Vendors))
	for _, v := range report.Vendors {
		resp.Data = append(resp.Data, vendorJSON{
			Vendor:                   v.Vendor,
			ToolsCount:               v.ToolsCount,
			TotalMonthlyCost:         v.TotalMonthlyCost,
			TotalUsers:               v.TotalUsers,
			Departments:              joinDepartments(v.Departments),
			AverageCostPerUser:       v.AverageCostPerUser,
			VendorEfficiency:         v.VendorEfficiency.String(),
			ConsolidationOpportunity: v.ConsolidationOpportunity,
		})
	}
	resp.VendorInsights.MostExpensiveVendor = report.MostExpensiveVendor
	resp.VendorInsights.MostEfficientVendor = report.MostEfficientVendor
	resp.VendorInsights.SingleToolVendors = report.SingleToolVendors
	writeJSON(w, http.StatusOK, resp)
}

func joinDepartments(ds []domain.Department) string {
	names := make([]string, len(ds))
	for i, d := range ds {
		names[i] = d.String()
	}
	return strings.Join(names, ",")
}
