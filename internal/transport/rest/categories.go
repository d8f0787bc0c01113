package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/saas-inventory-backend/internal/domain"
	"github.com/heartmarshall/saas-inventory-backend/internal/service/category"
)

type categoryService interface {
	ListCategories(ctx context.Context) ([]*domain.Category, error)
	GetCategory(ctx context.Context, id int64) (*domain.Category, error)
	CreateCategory(ctx context.Context, input category.CreateCategoryInput) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
}

// CategoryHandler serves the /api/categories endpoints.
type CategoryHandler struct {
	svc          categoryService
	maxBodyBytes int64
	log          *slog.Logger
}

// NewCategoryHandler creates a CategoryHandler.
func NewCategoryHandler(svc categoryService, maxBodyBytes int64, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{svc: svc, maxBodyBytes: maxBodyBytes, log: logger.With("handler", "categories")}
}

type categoryResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	ColorHex    string    `json:"color_hex"`
	ToolsCount  int       `json:"tools_count"`
	CreatedAt   time.Time `json:"created_at"`
}

type createCategoryRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	ColorHex    *string `json:"color_hex"`
}

// List handles GET /api/categories.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	cats, err := h.svc.ListCategories(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]categoryResponse, 0, len(cats))
	for _, c := range cats {
		resp = append(resp, toCategoryResponse(c))
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": resp})
}

// Get handles GET /api/categories/{id}.
func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	c, err := h.svc.GetCategory(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCategoryResponse(c))
}

// Create handles POST /api/categories.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCategoryRequest
	if err := decodeJSON(w, r, h.maxBodyBytes, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	c, err := h.svc.CreateCategory(r.Context(), category.CreateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
		ColorHex:    req.ColorHex,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.Header().Set("Location", "/api/categories/"+formatID(c.ID))
	writeJSON(w, http.StatusCreated, toCategoryResponse(c))
}

// Delete handles DELETE /api/categories/{id}. Categories still referenced
// by tools are rejected with 409.
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.DeleteCategory(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toCategoryResponse(c *domain.Category) categoryResponse {
	return categoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		ColorHex:    c.ColorHex,
		ToolsCount:  c.ToolsCount,
		CreatedAt:   c.CreatedAt,
	}
}
