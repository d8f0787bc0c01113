package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/saas-inventory-backend/internal/domain"
)

// UniqueName returns prefix plus a short random suffix, for rows with UNIQUE names.
func UniqueName(prefix string) string {
	return prefix + "-" + uuid.New().String()[:8]
}

// SeedCategory inserts a category with a unique name and the default color.
func SeedCategory(t *testing.T, pool *pgxpool.Pool) domain.Category {
	t.Helper()

	c := domain.Category{
		Name:     UniqueName("cat"),
		ColorHex: domain.DefaultCategoryColor,
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO categories (name, color_hex) VALUES ($1, $2) RETURNING id, created_at`,
		c.Name, c.ColorHex,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedCategory: %v", err)
	}

	return c
}

// ToolOption customizes a seeded tool before insert.
type ToolOption func(*domain.Tool)

// WithCost sets monthly cost and active users.
func WithCost(cost float64, users int) ToolOption {
	return func(tl *domain.Tool) {
		tl.MonthlyCost = cost
		tl.ActiveUsersCount = users
	}
}

// WithDepartment sets the owner department.
func WithDepartment(d domain.Department) ToolOption {
	return func(tl *domain.Tool) { tl.OwnerDepartment = d }
}

// WithStatus sets the status.
func WithStatus(s domain.ToolStatus) ToolOption {
	return func(tl *domain.Tool) { tl.Status = s }
}

// WithVendor sets the vendor.
func WithVendor(v string) ToolOption {
	return func(tl *domain.Tool) { tl.Vendor = v }
}

// SeedTool inserts an active Engineering tool with a unique name into categoryID.
func SeedTool(t *testing.T, pool *pgxpool.Pool, categoryID int64, opts ...ToolOption) domain.Tool {
	t.Helper()

	tl := domain.Tool{
		Name:             UniqueName("tool"),
		Vendor:           UniqueName("vendor"),
		CategoryID:       categoryID,
		MonthlyCost:      10,
		ActiveUsersCount: 5,
		OwnerDepartment:  domain.DepartmentEngineering,
		Status:           domain.ToolStatusActive,
	}
	for _, opt := range opts {
		opt(&tl)
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO tools (name, vendor, category_id, monthly_cost, active_users_count, owner_department, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at, updated_at`,
		tl.Name, tl.Vendor, tl.CategoryID, tl.MonthlyCost, tl.ActiveUsersCount,
		string(tl.OwnerDepartment), string(tl.Status),
	).Scan(&tl.ID, &tl.CreatedAt, &tl.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedTool: %v", err)
	}

	return tl
}
