// Package analytics reads the active-tool projections that reports aggregate.
// All aggregation happens in the service; these queries only filter and order.
package analytics

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/heartmarshall/saas-inventory-backend/internal/adapter/postgres"
	"github.com/heartmarshall/saas-inventory-backend/internal/domain"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo reads active tools for analytics.
type Repo struct {
	db postgres.Querier
}

// New creates a new analytics repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type usageRow struct {
	ID               int64   `db:"id"`
	Name             string  `db:"name"`
	Vendor           string  `db:"vendor"`
	CategoryName     string  `db:"category_name"`
	MonthlyCost      float64 `db:"monthly_cost"`
	ActiveUsersCount int     `db:"active_users_count"`
	Department       string  `db:"owner_department"`
}

func selectActive() squirrel.SelectBuilder {
	return psql.Select(
		"t.id",
		"t.name",
		"t.vendor",
		"COALESCE(c.name, 'Uncategorized') AS category_name",
		"t.monthly_cost::float8 AS monthly_cost",
		"t.active_users_count",
		"t.owner_department",
	).
		From("tools t").
		LeftJoin("categories c ON c.id = t.category_id").
		Where(squirrel.Eq{"t.status": string(domain.ToolStatusActive)})
}

// ListActive returns every active tool ordered by monthly cost DESC, id ASC.
func (r *Repo) ListActive(ctx context.Context) ([]domain.ToolUsage, error) {
	return r.list(ctx, selectActive().OrderBy("t.monthly_cost DESC", "t.id ASC"))
}

// ListExpensive returns at most limit active tools costing at least minCost
// (when set), ordered by monthly cost DESC, id ASC.
func (r *Repo) ListExpensive(ctx context.Context, limit int, minCost *float64) ([]domain.ToolUsage, error) {
	b := selectActive()
	if minCost != nil {
		b = b.Where(squirrel.GtOrEq{"t.monthly_cost": *minCost})
	}
	b = b.OrderBy("t.monthly_cost DESC", "t.id ASC").Limit(uint64(limit))
	return r.list(ctx, b)
}

// ListLowUsage returns active tools with at most maxUsers active users,
// ordered by users ASC, monthly cost DESC, id ASC.
func (r *Repo) ListLowUsage(ctx context.Context, maxUsers int) ([]domain.ToolUsage, error) {
	b := selectActive().
		Where(squirrel.LtOrEq{"t.active_users_count": maxUsers}).
		OrderBy("t.active_users_count ASC", "t.monthly_cost DESC", "t.id ASC")
	return r.list(ctx, b)
}

func (r *Repo) list(ctx context.Context, b squirrel.SelectBuilder) ([]domain.ToolUsage, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build analytics query: %w", err)
	}

	var rows []usageRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list active tools: %w", err)
	}

	out := make([]domain.ToolUsage, len(rows))
	for i, row := range rows {
		out[i] = domain.ToolUsage{
			ID:               row.ID,
			Name:             row.Name,
			Vendor:           row.Vendor,
			CategoryName:     row.CategoryName,
			MonthlyCost:      row.MonthlyCost,
			ActiveUsersCount: row.ActiveUsersCount,
			Department:       domain.Department(row.Department),
		}
	}
	return out, nil
}
