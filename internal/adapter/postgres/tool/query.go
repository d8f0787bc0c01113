package tool

import (
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/heartmarshall/saas-inventory-backend/internal/domain"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// toolColumns is the projection shared by every tool read.
var toolColumns = []string{
	"t.id",
	"t.name",
	"t.description",
	"t.vendor",
	"t.website_url",
	"t.category_id",
	"c.name AS category_name",
	"t.monthly_cost::float8 AS monthly_cost",
	"t.active_users_count",
	"t.owner_department",
	"t.status",
	"t.created_at",
	"t.updated_at",
}

func selectTools() squirrel.SelectBuilder {
	return psql.Select(toolColumns...).
		From("tools t").
		LeftJoin("categories c ON c.id = t.category_id")
}

// applyFilter adds a WHERE clause for every non-nil filter field.
// Text filters are case-insensitive substring matches.
func applyFilter(b squirrel.SelectBuilder, f domain.ToolFilter) squirrel.SelectBuilder {
	if f.Department != nil {
		b = b.Where(squirrel.Eq{"t.owner_department": string(*f.Department)})
	}
	if f.Status != nil {
		b = b.Where(squirrel.Eq{"t.status": string(*f.Status)})
	}
	if f.CategoryID != nil {
		b = b.Where(squirrel.Eq{"t.category_id": *f.CategoryID})
	}
	if f.Vendor != nil {
		b = b.Where(squirrel.ILike{"t.vendor": containsPattern(*f.Vendor)})
	}
	if f.Search != nil {
		pattern := containsPattern(*f.Search)
		b = b.Where(squirrel.Or{
			squirrel.ILike{"t.name": pattern},
			squirrel.ILike{"t.description": pattern},
		})
	}
	if f.MinCost != nil {
		b = b.Where(squirrel.GtOrEq{"t.monthly_cost": *f.MinCost})
	}
	if f.MaxCost != nil {
		b = b.Where(squirrel.LtOrEq{"t.monthly_cost": *f.MaxCost})
	}
	return b
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern wraps s in % after escaping LIKE metacharacters,
// so user input matches literally.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

// sortColumn returns the SQL column for a sort key. Keys are validated by the
// service; an unknown key falls back to created_at.
func sortColumn(key string) string {
	switch key {
	case domain.ToolSortName:
		return "t.name"
	case domain.ToolSortMonthlyCost:
		return "t.monthly_cost"
	default:
		return "t.created_at"
	}
}

// orderBy returns the ORDER BY terms: sort column then id, same direction,
// so pages are stable across equal sort values.
func orderBy(f domain.ToolFilter) []string {
	dir := "DESC"
	if f.Order == domain.SortAsc {
		dir = "ASC"
	}
	return []string{sortColumn(f.SortBy) + " " + dir, "t.id " + dir}
}

// listQuery builds the page query for f.
func listQuery(f domain.ToolFilter) squirrel.SelectBuilder {
	b := applyFilter(selectTools(), f).OrderBy(orderBy(f)...)
	if f.Limit > 0 {
		b = b.Limit(uint64(f.Limit))
	}
	if f.Skip > 0 {
		b = b.Offset(uint64(f.Skip))
	}
	return b
}

// countQuery builds a COUNT(*) over the rows matching f.
func countQuery(f domain.ToolFilter) squirrel.SelectBuilder {
	return applyFilter(psql.Select("COUNT(*)").From("tools t"), f)
}

// patchColumns maps the present fields of p to their column values.
func patchColumns(p domain.ToolPatch) map[string]any {
	cols := make(map[string]any, 9)
	if p.Name != nil {
		cols["name"] = *p.Name
	}
	if p.Description != nil {
		cols["description"] = nilIfEmpty(*p.Description)
	}
	if p.Vendor != nil {
		cols["vendor"] = *p.Vendor
	}
	if p.WebsiteURL != nil {
		cols["website_url"] = nilIfEmpty(*p.WebsiteURL)
	}
	if p.CategoryID != nil {
		cols["category_id"] = *p.CategoryID
	}
	if p.MonthlyCost != nil {
		cols["monthly_cost"] = *p.MonthlyCost
	}
	if p.ActiveUsersCount != nil {
		cols["active_users_count"] = *p.ActiveUsersCount
	}
	if p.OwnerDepartment != nil {
		cols["owner_department"] = string(*p.OwnerDepartment)
	}
	if p.Status != nil {
		cols["status"] = string(*p.Status)
	}
	return cols
}

// nilIfEmpty stores a blank optional text as NULL.
func nilIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
