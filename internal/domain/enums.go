package domain

// Department is the business unit that owns a tool.
type Department string

const (
	DepartmentEngineering Department = "Engineering"
	DepartmentSales       Department = "Sales"
	DepartmentMarketing   Department = "Marketing"
	DepartmentHR          Department = "HR"
	DepartmentFinance     Department = "Finance"
	DepartmentOperations  Department = "Operations"
	DepartmentDesign      Department = "Design"
)

func (d Department) String() string { return string(d) }

func (d Department) IsValid() bool {
	switch d {
	case DepartmentEngineering, DepartmentSales, DepartmentMarketing, DepartmentHR,
		DepartmentFinance, DepartmentOperations, DepartmentDesign:
		return true
	}
	return false
}

// ToolStatus is the subscription lifecycle state of a tool.
type ToolStatus string

const (
	ToolStatusActive     ToolStatus = "active"
	ToolStatusDeprecated ToolStatus = "deprecated"
	ToolStatusTrial      ToolStatus = "trial"
)

func (s ToolStatus) String() string { return string(s) }

func (s ToolStatus) IsValid() bool {
	switch s {
	case ToolStatusActive, ToolStatusDeprecated, ToolStatusTrial:
		return true
	}
	return false
}

// EfficiencyRating labels cost-per-user relative to the company average.
type EfficiencyRating string

const (
	EfficiencyExcellent EfficiencyRating = "excellent"
	EfficiencyGood      EfficiencyRating = "good"
	EfficiencyAverage   EfficiencyRating = "average"
	EfficiencyLow       EfficiencyRating = "low"
)

func (r EfficiencyRating) String() string { return string(r) }

// WarningLevel is the urgency of an underused tool.
type WarningLevel string

const (
	WarningLevelLow    WarningLevel = "low"
	WarningLevelMedium WarningLevel = "medium"
	WarningLevelHigh   WarningLevel = "high"
)

func (l WarningLevel) String() string { return string(l) }

// SortOrder is the direction of a sorted listing.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

func (o SortOrder) String() string { return string(o) }

func (o SortOrder) IsValid() bool {
	return o == SortAsc || o == SortDesc
}
