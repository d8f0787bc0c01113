package analytics

import (
	"cmp"
	"slices"

	"github.com/heartmarshall/saas-inventory-backend/internal/domain"
)

// group accumulates the active tools sharing one key.
type group struct {
	key         string
	cost        float64
	tools       int
	users       int
	departments map[domain.Department]struct{}
}

// groupBy sums rows per key, keeping first-seen order.
func groupBy(rows []domain.ToolUsage, key func(domain.ToolUsage) string) []*group {
	index := make(map[string]*group)
	var out []*group
	for _, r := range rows {
		k := key(r)
		g, ok := index[k]
		if !ok {
			g = &group{key: k, departments: make(map[domain.Department]struct{})}
			index[k] = g
			out = append(out, g)
		}
		g.cost += r.MonthlyCost
		g.tools++
		g.users += r.ActiveUsersCount
		g.departments[r.Department] = struct{}{}
	}
	return out
}

// sortByCostDesc orders groups by total cost DESC, key ASC.
func sortByCostDesc(groups []*group) {
	slices.SortStableFunc(groups, func(a, b *group) int {
		if c := cmp.Compare(b.cost, a.cost); c != 0 {
			return c
		}
		return cmp.Compare(a.key, b.key)
	})
}

func totalCost(rows []domain.ToolUsage) float64 {
	var sum float64
	for _, r := range rows {
		sum += r.MonthlyCost
	}
	return sum
}

// mostEfficient returns the key with the lowest cost per user among groups
// that have users, scanning in the given order; ties keep the first.
func mostEfficient(groups []*group) *string {
	var best *group
	var bestCPU float64
	for _, g := range groups {
		if g.users <= 0 {
			continue
		}
		cpu := g.cost / float64(g.users)
		if best == nil || cpu < bestCPU {
			best, bestCPU = g, cpu
		}
	}
	if best == nil {
		return nil
	}
	k := best.key
	return &k
}

func firstKey(groups []*group) *string {
	if len(groups) == 0 {
		return nil
	}
	k := groups[0].key
	return &k
}

// departmentCosts aggregates rows by owner department. Departments are sorted
// by sortBy ("total_cost" or "department") in order; the most expensive
// department is picked before re-sorting.
func departmentCosts(rows []domain.ToolUsage, sortBy string, order domain.SortOrder) domain.DepartmentCostReport {
	groups := groupBy(rows, func(r domain.ToolUsage) string { return string(r.Department) })
	sortByCostDesc(groups)

	grand := totalCost(rows)
	report := domain.DepartmentCostReport{
		Departments:      make([]domain.DepartmentCost, 0, len(groups)),
		TotalCompanyCost: round2(grand),
	}
	if len(groups) > 0 {
		d := domain.Department(groups[0].key)
		report.MostExpensiveDepartment = &d
	}

	for _, g := range groups {
		report.Departments = append(report.Departments, domain.DepartmentCost{
			Department:         domain.Department(g.key),
			TotalCost:          round2(g.cost),
			ToolsCount:         g.tools,
			TotalUsers:         g.users,
			AverageCostPerTool: round2(ratio(g.cost, float64(g.tools))),
			CostPercentage:     round1(ratio(g.cost, grand) * 100),
		})
	}

	sortDepartments(report.Departments, sortBy, order)
	return report
}

func sortDepartments(ds []domain.DepartmentCost, sortBy string, order domain.SortOrder) {
	desc := order != domain.SortAsc
	slices.SortStableFunc(ds, func(a, b domain.DepartmentCost) int {
		var c int
		if sortBy == DepartmentSortName {
			c = cmp.Compare(a.Department, b.Department)
		} else {
			c = cmp.Compare(a.TotalCost, b.TotalCost)
		}
		if desc {
			c = -c
		}
		if c == 0 {
			c = cmp.Compare(a.Department, b.Department)
		}
		return c
	})
}

// categoryCosts aggregates rows by category name, sorted by total cost DESC.
func categoryCosts(rows []domain.ToolUsage) domain.CategoryCostReport {
	groups := groupBy(rows, func(r domain.ToolUsage) string { return r.CategoryName })
	sortByCostDesc(groups)

	grand := totalCost(rows)
	report := domain.CategoryCostReport{
		Categories:            make([]domain.CategoryCost, 0, len(groups)),
		MostExpensiveCategory: firstKey(groups),
		MostEfficientCategory: mostEfficient(groups),
	}

	for _, g := range groups {
		report.Categories = append(report.Categories, domain.CategoryCost{
			CategoryName:       g.key,
			ToolsCount:         g.tools,
			TotalCost:          round2(g.cost),
			TotalUsers:         g.users,
			PercentageOfBudget: round1(ratio(g.cost, grand) * 100),
			AverageCostPerUser: round2(ratio(g.cost, float64(g.users))),
		})
	}
	return report
}

// vendorSummary aggregates rows by vendor, sorted by total cost DESC.
// Vendor efficiency uses the same relative scale as individual tools.
func vendorSummary(rows []domain.ToolUsage) domain.VendorSummaryReport {
	groups := groupBy(rows, func(r domain.ToolUsage) string { return r.Vendor })
	sortByCostDesc(groups)

	companyAvg := companyAvgCostPerUser(rows)
	report := domain.VendorSummaryReport{
		Vendors:             make([]domain.VendorSummary, 0, len(groups)),
		MostExpensiveVendor: firstKey(groups),
		MostEfficientVendor: mostEfficient(groups),
	}

	for _, g := range groups {
		depts := make([]domain.Department, 0, len(g.departments))
		for d := range g.departments {
			depts = append(depts, d)
		}
		slices.Sort(depts)

		avg := ratio(g.cost, float64(g.users))
		report.Vendors = append(report.Vendors, domain.VendorSummary{
			Vendor:                   g.key,
			ToolsCount:               g.tools,
			TotalMonthlyCost:         round2(g.cost),
			TotalUsers:               g.users,
			Departments:              depts,
			AverageCostPerUser:       round2(avg),
			VendorEfficiency:         rateEfficiency(avg, g.users, companyAvg),
			ConsolidationOpportunity: g.tools > 1 && len(depts) == 1,
		})
		if g.tools == 1 {
			report.SingleToolVendors++
		}
	}
	return report
}

// expensiveTools labels the given rows (already ordered and limited) against
// the company average computed over all active tools.
func expensiveTools(rows []domain.ToolUsage, companyAvg float64) domain.ExpensiveToolsReport {
	report := domain.ExpensiveToolsReport{
		Tools:                 make([]domain.ExpensiveTool, 0, len(rows)),
		AvgCostPerUserCompany: round2(companyAvg),
	}

	var savings float64
	for _, r := range rows {
		cpu := costPerUser(r.MonthlyCost, r.ActiveUsersCount)
		rating := rateEfficiency(cpu, r.ActiveUsersCount, companyAvg)
		if rating == domain.EfficiencyLow {
			savings += r.MonthlyCost
		}
		report.Tools = append(report.Tools, domain.ExpensiveTool{
			ID:               r.ID,
			Name:             r.Name,
			MonthlyCost:      round2(r.MonthlyCost),
			ActiveUsersCount: r.ActiveUsersCount,
			CostPerUser:      round2(cpu),
			Department:       r.Department,
			Vendor:           r.Vendor,
			EfficiencyRating: rating,
		})
	}
	report.PotentialSavingsIdentified = round2(savings)
	return report
}

// lowUsageTools labels underused rows and sums what high and medium warnings
// would save.
func lowUsageTools(rows []domain.ToolUsage, th thresholds) domain.LowUsageReport {
	report := domain.LowUsageReport{
		Tools: make([]domain.LowUsageTool, 0, len(rows)),
	}

	var monthly float64
	for _, r := range rows {
		cpu := costPerUser(r.MonthlyCost, r.ActiveUsersCount)
		level, action := classifyWarning(cpu, r.ActiveUsersCount, th)
		if level == domain.WarningLevelHigh || level == domain.WarningLevelMedium {
			monthly += r.MonthlyCost
		}
		report.Tools = append(report.Tools, domain.LowUsageTool{
			ID:               r.ID,
			Name:             r.Name,
			MonthlyCost:      round2(r.MonthlyCost),
			ActiveUsersCount: r.ActiveUsersCount,
			CostPerUser:      round2(cpu),
			Department:       r.Department,
			Vendor:           r.Vendor,
			WarningLevel:     level,
			PotentialAction:  action,
		})
	}
	report.PotentialMonthlySavings = round2(monthly)
	report.PotentialAnnualSavings = round2(monthly * 12)
	return report
}
