package domain

import "time"

// DefaultCategoryColor is assigned when a category is created without a color.
const DefaultCategoryColor = "#6366f1"

// Category groups tools for reporting.
type Category struct {
	ID          int64
	Name        string
	Description *string
	ColorHex    string
	ToolsCount  int
	CreatedAt   time.Time
}
