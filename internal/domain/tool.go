package domain

import "time"

// Tool is a tracked SaaS subscription.
type Tool struct {
	ID               int64
	Name             string
	Description      *string
	Vendor           string
	WebsiteURL       *string
	CategoryID       int64
	CategoryName     *string
	MonthlyCost      float64
	ActiveUsersCount int
	OwnerDepartment  Department
	Status           ToolStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// IsActive reports whether the tool counts towards analytics.
func (t *Tool) IsActive() bool {
	return t.Status == ToolStatusActive
}

// ToolPatch holds a partial tool update. A nil field is left unchanged.
type ToolPatch struct {
	Name             *string
	Description      *string
	Vendor           *string
	WebsiteURL       *string
	CategoryID       *int64
	MonthlyCost      *float64
	ActiveUsersCount *int
	OwnerDepartment  *Department
	Status           *ToolStatus
}

// IsEmpty reports whether the patch carries no field at all.
func (p ToolPatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Vendor == nil &&
		p.WebsiteURL == nil && p.CategoryID == nil && p.MonthlyCost == nil &&
		p.ActiveUsersCount == nil && p.OwnerDepartment == nil && p.Status == nil
}

// Tool sort keys accepted by listings.
const (
	ToolSortName        = "name"
	ToolSortMonthlyCost = "monthly_cost"
	ToolSortCreatedAt   = "created_at"
)

// IsValidToolSort reports whether key is an accepted tool sort key.
func IsValidToolSort(key string) bool {
	switch key {
	case ToolSortName, ToolSortMonthlyCost, ToolSortCreatedAt:
		return true
	}
	return false
}

// ToolFilter contains filtering, sorting and pagination parameters for tool listings.
// Nil pointer fields are not applied.
type ToolFilter struct {
	Department *Department
	Status     *ToolStatus
	CategoryID *int64
	Vendor     *string
	Search     *string
	MinCost    *float64
	MaxCost    *float64
	SortBy     string
	Order      SortOrder
	Skip       int
	Limit      int
}

// ToolPage is one page of a filtered tool listing.
type ToolPage struct {
	Tools    []*Tool
	Total    int
	Filtered int
}

// ToolUsage is the projection of an active tool consumed by analytics.
type ToolUsage struct {
	ID               int64
	Name             string
	Vendor           string
	CategoryName     string
	MonthlyCost      float64
	ActiveUsersCount int
	Department       Department
}
