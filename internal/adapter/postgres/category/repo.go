// Package category implements the category repository on PostgreSQL.
package category

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/heartmarshall/saas-inventory-backend/internal/adapter/postgres"
	"github.com/heartmarshall/saas-inventory-backend/internal/domain"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides category persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new category repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type categoryRow struct {
	ID          int64     `db:"id"`
	Name        string    `db:"name"`
	Description *string   `db:"description"`
	ColorHex    string    `db:"color_hex"`
	ToolsCount  int       `db:"tools_count"`
	CreatedAt   time.Time `db:"created_at"`
}

func (r categoryRow) toDomain() *domain.Category {
	return &domain.Category{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		ColorHex:    r.ColorHex,
		ToolsCount:  r.ToolsCount,
		CreatedAt:   r.CreatedAt.UTC(),
	}
}

func selectCategories() squirrel.SelectBuilder {
	return psql.Select(
		"c.id", "c.name", "c.description", "c.color_hex", "c.created_at",
		"COUNT(t.id) AS tools_count",
	).
		From("categories c").
		LeftJoin("tools t ON t.category_id = c.id").
		GroupBy("c.id")
}

// List returns all categories ordered by name, each with its tool count.
func (r *Repo) List(ctx context.Context) ([]*domain.Category, error) {
	query, args, err := selectCategories().OrderBy("c.name ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list categories query: %w", err)
	}

	var rows []categoryRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	out := make([]*domain.Category, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

// GetByID returns a category with its tool count.
// Returns domain.ErrNotFound if the category does not exist.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	query, args, err := selectCategories().Where(squirrel.Eq{"c.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get category query: %w", err)
	}

	var row categoryRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("category %d: %w", id, domain.ErrNotFound)
		}
		return nil, postgres.MapError(err, "category", id)
	}
	return row.toDomain(), nil
}

// Exists reports whether a category with id exists.
func (r *Repo) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := postgres.QuerierFromCtx(ctx, r.db).
		QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM categories WHERE id = $1)`, id).
		Scan(&exists)
	if err != nil {
		return false, postgres.MapError(err, "category", id)
	}
	return exists, nil
}

// Create inserts a category. Returns domain.ErrAlreadyExists on a duplicate name.
func (r *Repo) Create(ctx context.Context, c *domain.Category) (*domain.Category, error) {
	query, args, err := psql.Insert("categories").
		Columns("name", "description", "color_hex").
		Values(c.Name, c.Description, c.ColorHex).
		Suffix("RETURNING id, name, description, color_hex, created_at, 0 AS tools_count").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert category query: %w", err)
	}

	var row categoryRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "category", 0)
	}
	return row.toDomain(), nil
}

// CountTools returns how many tools reference the category.
func (r *Repo) CountTools(ctx context.Context, id int64) (int, error) {
	var n int
	err := postgres.QuerierFromCtx(ctx, r.db).
		QueryRow(ctx, `SELECT COUNT(*) FROM tools WHERE category_id = $1`, id).
		Scan(&n)
	if err != nil {
		return 0, postgres.MapError(err, "category", id)
	}
	return n, nil
}

// Delete removes a category. Returns domain.ErrNotFound if it does not exist
// and domain.ErrConflict if tools still reference it.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).
		Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		if postgres.IsForeignKeyViolation(err) {
			return fmt.Errorf("category %d: %w", id, domain.ErrConflict)
		}
		return postgres.MapError(err, "category", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("category %d: %w", id, domain.ErrNotFound)
	}
	return nil
}
