package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/saas-inventory-backend/internal/domain"
	"github.com/heartmarshall/saas-inventory-backend/internal/service/tool"
)

type toolService interface {
	ListTools(ctx context.Context, input tool.ListToolsInput) (*tool.ListResult, error)
	GetTool(ctx context.Context, id int64) (*domain.Tool, error)
	CreateTool(ctx context.Context, input tool.CreateToolInput) (*domain.Tool, error)
	UpdateTool(ctx context.Context, input tool.UpdateToolInput) (*domain.Tool, error)
	DeleteTool(ctx context.Context, id int64) error
}

// ToolHandler serves the /api/tools endpoints.
type ToolHandler struct {
	svc          toolService
	maxBodyBytes int64
	log          *slog.Logger
}

// NewToolHandler creates a ToolHandler.
func NewToolHandler(svc toolService, maxBodyBytes int64, logger *slog.Logger) *ToolHandler {
	return &ToolHandler{svc: svc, maxBodyBytes: maxBodyBytes, log: logger.With("handler", "tools")}
}

type toolResponse struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	Description      *string   `json:"description"`
	Vendor           string    `json:"vendor"`
	WebsiteURL       *string   `json:"website_url"`
	CategoryID       int64     `json:"category_id"`
	Category         *string   `json:"category"`
	MonthlyCost      float64   `json:"monthly_cost"`
	ActiveUsersCount int       `json:"active_users_count"`
	OwnerDepartment  string    `json:"owner_department"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type toolListResponse struct {
	Data           []toolResponse `json:"data"`
	Total          int            `json:"total"`
	Filtered       int            `json:"filtered"`
	FiltersApplied map[string]any `json:"filters_applied"`
}

type createToolRequest struct {
	Name             string   `json:"name"`
	Description      *string  `json:"description"`
	Vendor           string   `json:"vendor"`
	WebsiteURL       *string  `json:"website_url"`
	CategoryID       int64    `json:"category_id"`
	MonthlyCost      *float64 `json:"monthly_cost"`
	ActiveUsersCount *int     `json:"active_users_count"`
	OwnerDepartment  *string  `json:"owner_department"`
	Status           *string  `json:"status"`
}

type updateToolRequest struct {
	Name             *string  `json:"name"`
	Description      *string  `json:"description"`
	Vendor           *string  `json:"vendor"`
	WebsiteURL       *string  `json:"website_url"`
	CategoryID       *int64   `json:"category_id"`
	MonthlyCost      *float64 `json:"monthly_cost"`
	ActiveUsersCount *int     `json:"active_users_count"`
	OwnerDepartment  *string  `json:"owner_department"`
	Status           *string  `json:"status"`
}

// List handles GET /api/tools.
func (h *ToolHandler) List(w http.ResponseWriter, r *http.Request) {
	q := newQueryParser(r.URL.Query())
	input := tool.ListToolsInput{
		Department: q.String("department"),
		Status:     q.String("status"),
		CategoryID: q.Int64("category_id"),
		Vendor:     q.String("vendor"),
		Search:     q.String("search"),
		MinCost:    q.Float("min_cost"),
		MaxCost:    q.Float("max_cost"),
		SortBy:     deref(q.String("sort_by")),
		Order:      deref(q.String("order")),
		Skip:       q.IntOr("skip", 0),
		Limit:      q.IntOr("limit", 0),
	}
	if err := q.Err(); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	result, err := h.svc.ListTools(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := toolListResponse{
		Data:           make([]toolResponse, 0, len(result.Tools)),
		Total:          result.Total,
		Filtered:       result.Filtered,
		FiltersApplied: result.FiltersApplied,
	}
	for _, t := range result.Tools {
		resp.Data = append(resp.Data, toToolResponse(t))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /api/tools/{id}.
func (h *ToolHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	t, err := h.svc.GetTool(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toToolResponse(t))
}

// Create handles POST /api/tools.
func (h *ToolHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createToolRequest
	if err := decodeJSON(w, r, h.maxBodyBytes, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	t, err := h.svc.CreateTool(r.Context(), tool.CreateToolInput{
		Name:             req.Name,
		Description:      req.Description,
		Vendor:           req.Vendor,
		WebsiteURL:       req.WebsiteURL,
		CategoryID:       req.CategoryID,
		MonthlyCost:      req.MonthlyCost,
		ActiveUsersCount: req.ActiveUsersCount,
		OwnerDepartment:  req.OwnerDepartment,
		Status:           req.Status,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.Header().Set("Location", "/api/tools/"+formatID(t.ID))
	writeJSON(w, http.StatusCreated, toToolResponse(t))
}

// Update handles PUT /api/tools/{id}. Only the supplied fields change.
func (h *ToolHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req updateToolRequest
	if err := decodeJSON(w, r, h.maxBodyBytes, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	t, err := h.svc.UpdateTool(r.Context(), tool.UpdateToolInput{
		ToolID:           id,
		Name:             req.Name,
		Description:      req.Description,
		Vendor:           req.Vendor,
		WebsiteURL:       req.WebsiteURL,
		CategoryID:       req.CategoryID,
		MonthlyCost:      req.MonthlyCost,
		ActiveUsersCount: req.ActiveUsersCount,
		OwnerDepartment:  req.OwnerDepartment,
		Status:           req.Status,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toToolResponse(t))
}

// Delete handles DELETE /api/tools/{id}.
func (h *ToolHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.DeleteTool(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toToolResponse(t *domain.Tool) toolResponse {
	return toolResponse{
		ID:               t.ID,
		Name:             t.Name,
		Description:      t.Description,
		Vendor:           t.Vendor,
		WebsiteURL:       t.WebsiteURL,
		CategoryID:       t.CategoryID,
		Category:         t.CategoryName,
		MonthlyCost:      t.MonthlyCost,
		ActiveUsersCount: t.ActiveUsersCount,
		OwnerDepartment:  t.OwnerDepartment.String(),
		Status:           t.Status.String(),
		CreatedAt:        t.CreatedAt,
		UpdatedAt:        t.UpdatedAt,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
