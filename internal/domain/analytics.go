package domain

// DepartmentCost aggregates active tools owned by one department.
type DepartmentCost struct {
	Department         Department
	TotalCost          float64
	ToolsCount         int
	TotalUsers         int
	AverageCostPerTool float64
	CostPercentage     float64
}

// DepartmentCostReport is the cost breakdown by department.
type DepartmentCostReport struct {
	Departments             []DepartmentCost
	TotalCompanyCost        float64
	MostExpensiveDepartment *Department
}

// ExpensiveTool is a tool ranked by monthly cost with its efficiency label.
type ExpensiveTool struct {
	ID               int64
	Name             string
	MonthlyCost      float64
	ActiveUsersCount int
	CostPerUser      float64
	Department       Department
	Vendor           string
	EfficiencyRating EfficiencyRating
}

// ExpensiveToolsReport lists the most expensive tools and the savings they hide.
type ExpensiveToolsReport struct {
	Tools                      []ExpensiveTool
	AvgCostPerUserCompany      float64
	PotentialSavingsIdentified float64
}

// CategoryCost aggregates active tools of one category.
type CategoryCost struct {
	CategoryName       string
	ToolsCount         int
	TotalCost          float64
	TotalUsers         int
	PercentageOfBudget float64
	AverageCostPerUser float64
}

// CategoryCostReport is the cost breakdown by category.
type CategoryCostReport struct {
	Categories            []CategoryCost
	MostExpensiveCategory *string
	MostEfficientCategory *string
}

// LowUsageTool is an underused tool with its warning label.
type LowUsageTool struct {
	ID               int64
	Name             string
	MonthlyCost      float64
	ActiveUsersCount int
	CostPerUser      float64
	Department       Department
	Vendor           string
	WarningLevel     WarningLevel
	PotentialAction  string
}

// LowUsageReport lists underused tools and what canceling them would save.
type LowUsageReport struct {
	Tools                   []LowUsageTool
	PotentialMonthlySavings float64
	PotentialAnnualSavings  float64
}

// VendorSummary aggregates active tools bought from one vendor.
type VendorSummary struct {
	Vendor                   string
	ToolsCount               int
	TotalMonthlyCost         float64
	TotalUsers               int
	Departments              []Department
	AverageCostPerUser       float64
	VendorEfficiency         EfficiencyRating
	ConsolidationOpportunity bool
}

// VendorSummaryReport is the cost breakdown by vendor.
type VendorSummaryReport struct {
	Vendors             []VendorSummary
	MostExpensiveVendor *string
	MostEfficientVendor *string
	SingleToolVendors   int
}
