// Package tool implements the tool repository on PostgreSQL.
// Listings are built with squirrel so optional filters never concatenate user
// input into SQL; rows are scanned with pgxscan.
package tool

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/heartmarshall/saas-inventory-backend/internal/adapter/postgres"
	"github.com/heartmarshall/saas-inventory-backend/internal/domain"
)

// Repo provides tool persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new tool repository. db is normally the *pgxpool.Pool;
// a transaction in the context takes precedence.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type toolRow struct {
	ID               int64     `db:"id"`
	Name             string    `db:"name"`
	Description      *string   `db:"description"`
	Vendor           string    `db:"vendor"`
	WebsiteURL       *string   `db:"website_url"`
	CategoryID       int64     `db:"category_id"`
	CategoryName     *string   `db:"category_name"`
	MonthlyCost      float64   `db:"monthly_cost"`
	ActiveUsersCount int       `db:"active_users_count"`
	OwnerDepartment  string    `db:"owner_department"`
	Status           string    `db:"status"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

func (r toolRow) toDomain() *domain.Tool {
	return &domain.Tool{
		ID:               r.ID,
		Name:             r.Name,
		Description:      r.Description,
		Vendor:           r.Vendor,
		WebsiteURL:       r.WebsiteURL,
		CategoryID:       r.CategoryID,
		CategoryName:     r.CategoryName,
		MonthlyCost:      r.MonthlyCost,
		ActiveUsersCount: r.ActiveUsersCount,
		OwnerDepartment:  domain.Department(r.OwnerDepartment),
		Status:           domain.ToolStatus(r.Status),
		CreatedAt:        r.CreatedAt.UTC(),
		UpdatedAt:        r.UpdatedAt.UTC(),
	}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a tool with its category name.
// Returns domain.ErrNotFound if the tool does not exist.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Tool, error) {
	query, args, err := selectTools().Where(squirrel.Eq{"t.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get tool query: %w", err)
	}

	var row toolRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, mapReadError(err, id)
	}

	return row.toDomain(), nil
}

// List returns one page of tools matching f, ordered by f's sort key then id.
// Returns an empty slice (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, f domain.ToolFilter) ([]*domain.Tool, error) {
	query, args, err := listQuery(f).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list tools query: %w", err)
	}

	var rows []toolRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list tools: %w", err)
	}

	tools := make([]*domain.Tool, len(rows))
	for i, row := range rows {
		tools[i] = row.toDomain()
	}
	return tools, nil
}

// Count returns the number of tools matching f. Pagination and sort fields
// of f are ignored; a zero filter counts every tool.
func (r *Repo) Count(ctx context.Context, f domain.ToolFilter) (int, error) {
	query, args, err := countQuery(f).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count tools query: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count tools: %w", err)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a tool and returns it re-read with its category name.
// A missing category is reported as a category_id validation error and a
// duplicate name as domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, t *domain.Tool) (*domain.Tool, error) {
	query, args, err := psql.Insert("tools").
		Columns(
			"name", "description", "vendor", "website_url", "category_id",
			"monthly_cost", "active_users_count", "owner_department", "status",
		).
		Values(
			t.Name, t.Description, t.Vendor, t.WebsiteURL, t.CategoryID,
			t.MonthlyCost, t.ActiveUsersCount, string(t.OwnerDepartment), string(t.Status),
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert tool query: %w", err)
	}

	var id int64
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return nil, mapWriteError(err, 0)
	}

	return r.GetByID(ctx, id)
}

// Update applies the present fields of p, refreshes updated_at and returns
// the tool re-read with its category name. An empty patch only touches
// updated_at; callers reject it before reaching here.
func (r *Repo) Update(ctx context.Context, id int64, p domain.ToolPatch) (*domain.Tool, error) {
	query, args, err := psql.Update("tools").
		SetMap(patchColumns(p)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update tool query: %w", err)
	}

	var updatedID int64
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&updatedID); err != nil {
		return nil, mapWriteError(err, id)
	}

	return r.GetByID(ctx, updatedID)
}

// Delete removes a tool. Returns domain.ErrNotFound if no row was deleted.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	query, args, err := psql.Delete("tools").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete tool query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "tool", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("tool %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Error mapping
// ---------------------------------------------------------------------------

func mapReadError(err error, id int64) error {
	if pgxscan.NotFound(err) {
		return fmt.Errorf("tool %d: %w", id, domain.ErrNotFound)
	}
	return postgres.MapError(err, "tool", id)
}

// mapWriteError turns a category FK violation into a field error; everything
// else goes through the generic mapping.
func mapWriteError(err error, id int64) error {
	if postgres.IsForeignKeyViolation(err) {
		return domain.NewValidationError("category_id", "category does not exist")
	}
	return postgres.MapError(err, "tool", id)
}
