package tool

import (
	"strings"

	"github.com/heartmarshall/saas-inventory-backend/internal/domain"
)

// ListToolsInput holds the raw listing parameters. Nil fields are not filtered on.
type ListToolsInput struct {
	Department *string  `validate:"omitempty,department"`
	Status     *string  `validate:"omitempty,tool_status"`
	CategoryID *int64   `validate:"omitempty,gt=0"`
	Vendor     *string  `validate:"omitempty,max=100"`
	Search     *string  `validate:"omitempty,max=100"`
	MinCost    *float64 `validate:"omitempty,gte=0"`
	MaxCost    *float64 `validate:"omitempty,gte=0"`
	SortBy     string   `validate:"omitempty,oneof=name monthly_cost created_at"`
	Order      string   `validate:"omitempty,oneof=asc desc"`
	Skip       int      `validate:"gte=0"`
	Limit      int
}

// Validate checks all fields and collects all errors.
func (i ListToolsInput) Validate() error {
	if err := domain.ValidateStruct(i); err != nil {
		return err
	}
	if i.MinCost != nil && i.MaxCost != nil && *i.MinCost > *i.MaxCost {
		return domain.NewValidationError("min_cost", "must be <= max_cost")
	}
	return nil
}

// filter converts validated input into a repository filter, applying the
// default sort and the page size limits.
func (i ListToolsInput) filter(defaultLimit, maxLimit int) domain.ToolFilter {
	f := domain.ToolFilter{
		CategoryID: i.CategoryID,
		Vendor:     i.Vendor,
		Search:     i.Search,
		MinCost:    i.MinCost,
		MaxCost:    i.MaxCost,
		SortBy:     i.SortBy,
		Order:      domain.SortOrder(i.Order),
		Skip:       i.Skip,
		Limit:      i.Limit,
	}
	if i.Department != nil {
		d := domain.Department(*i.Department)
		f.Department = &d
	}
	if i.Status != nil {
		s := domain.ToolStatus(*i.Status)
		f.Status = &s
	}
	if f.SortBy == "" {
		f.SortBy = domain.ToolSortCreatedAt
	}
	if f.Order == "" {
		f.Order = domain.SortDesc
	}
	if f.Limit <= 0 {
		f.Limit = defaultLimit
	}
	if f.Limit > maxLimit {
		f.Limit = maxLimit
	}
	return f
}

// filtersApplied echoes the parameters the caller actually supplied.
func (i ListToolsInput) filtersApplied() map[string]any {
	applied := make(map[string]any)
	if i.Department != nil {
		applied["department"] = *i.Department
	}
	if i.Status != nil {
		applied["status"] = *i.Status
	}
	if i.CategoryID != nil {
		applied["category_id"] = *i.CategoryID
	}
	if i.Vendor != nil {
		applied["vendor"] = *i.Vendor
	}
	if i.Search != nil {
		applied["search"] = *i.Search
	}
	if i.MinCost != nil {
		applied["min_cost"] = *i.MinCost
	}
	if i.MaxCost != nil {
		applied["max_cost"] = *i.MaxCost
	}
	if i.SortBy != "" {
		applied["sort_by"] = i.SortBy
	}
	if i.Order != "" {
		applied["order"] = i.Order
	}
	return applied
}

// CreateToolInput holds the parameters for creating a tool.
type CreateToolInput struct {
	Name             string   `validate:"required,min=2,max=100"`
	Description      *string  `validate:"omitempty,max=2000"`
	Vendor           string   `validate:"required,max=100"`
	WebsiteURL       *string  `validate:"omitempty,url,max=255"`
	CategoryID       int64    `validate:"required,gt=0"`
	MonthlyCost      *float64 `validate:"required,gte=0,lte=99999999.99"`
	ActiveUsersCount *int     `validate:"omitempty,gte=0,lte=2147483647"`
	OwnerDepartment  *string  `validate:"omitempty,department"`
	Status           *string  `validate:"omitempty,tool_status"`
}

func (i *CreateToolInput) normalize() {
	i.Name = domain.NormalizeName(i.Name)
	i.Vendor = domain.NormalizeName(i.Vendor)
	i.Description = domain.NormalizeOptional(i.Description)
	i.WebsiteURL = domain.NormalizeOptional(i.WebsiteURL)
}

// Validate checks all fields and collects all errors.
func (i CreateToolInput) Validate() error {
	return domain.ValidateStruct(i)
}

// tool builds the entity to insert, applying creation defaults.
func (i CreateToolInput) tool() *domain.Tool {
	t := &domain.Tool{
		Name:            i.Name,
		Description:     i.Description,
		Vendor:          i.Vendor,
		WebsiteURL:      i.WebsiteURL,
		CategoryID:      i.CategoryID,
		MonthlyCost:     *i.MonthlyCost,
		OwnerDepartment: domain.DepartmentEngineering,
		Status:          domain.ToolStatusActive,
	}
	if i.ActiveUsersCount != nil {
		t.ActiveUsersCount = *i.ActiveUsersCount
	}
	if i.OwnerDepartment != nil {
		t.OwnerDepartment = domain.Department(*i.OwnerDepartment)
	}
	if i.Status != nil {
		t.Status = domain.ToolStatus(*i.Status)
	}
	return t
}

// UpdateToolInput holds a partial update. Nil fields are left unchanged.
type UpdateToolInput struct {
	ToolID           int64    `validate:"gt=0"`
	Name             *string  `validate:"omitempty,min=2,max=100"`
	Description      *string  `validate:"omitempty,max=2000"`
	Vendor           *string  `validate:"omitempty,min=1,max=100"`
	WebsiteURL       *string  `validate:"omitempty,max=255,url|len=0"`
	CategoryID       *int64   `validate:"omitempty,gt=0"`
	MonthlyCost      *float64 `validate:"omitempty,gte=0,lte=99999999.99"`
	ActiveUsersCount *int     `validate:"omitempty,gte=0,lte=2147483647"`
	OwnerDepartment  *string  `validate:"omitempty,department"`
	Status           *string  `validate:"omitempty,tool_status"`
}

func (i *UpdateToolInput) normalize() {
	if i.Name != nil {
		n := domain.NormalizeName(*i.Name)
		i.Name = &n
	}
	if i.Vendor != nil {
		v := domain.NormalizeName(*i.Vendor)
		i.Vendor = &v
	}
	if i.Description != nil {
		d := strings.TrimSpace(*i.Description)
		i.Description = &d
	}
	// A blank URL clears the column.
	if i.WebsiteURL != nil {
		u := strings.TrimSpace(*i.WebsiteURL)
		i.WebsiteURL = &u
	}
}

// Validate checks all fields and collects all errors.
// An input without any field to change is rejected.
func (i UpdateToolInput) Validate() error {
	if err := domain.ValidateStruct(i); err != nil {
		return err
	}
	if i.patch().IsEmpty() {
		return domain.ErrNoFieldsToUpdate
	}
	return nil
}

func (i UpdateToolInput) patch() domain.ToolPatch {
	p := domain.ToolPatch{
		Name:             i.Name,
		Description:      i.Description,
		Vendor:           i.Vendor,
		WebsiteURL:       i.WebsiteURL,
		CategoryID:       i.CategoryID,
		MonthlyCost:      i.MonthlyCost,
		ActiveUsersCount: i.ActiveUsersCount,
	}
	if i.OwnerDepartment != nil {
		d := domain.Department(*i.OwnerDepartment)
		p.OwnerDepartment = &d
	}
	if i.Status != nil {
		s := domain.ToolStatus(*i.Status)
		p.Status = &s
	}
	return p
}
