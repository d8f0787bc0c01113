package app

import (
	"log/slog"

	"github.com/heartmarshall/saas-inventory-backend/internal/adapter/postgres"
	analyticsrepo "github.com/heartmarshall/saas-inventory-backend/internal/adapter/postgres/analytics"
	categoryrepo "github.com/heartmarshall/saas-inventory-backend/internal/adapter/postgres/category"
	toolrepo "github.com/heartmarshall/saas-inventory-backend/internal/adapter/postgres/tool"
	"github.com/heartmarshall/saas-inventory-backend/internal/config"
	"github.com/heartmarshall/saas-inventory-backend/internal/service/analytics"
	"github.com/heartmarshall/saas-inventory-backend/internal/service/category"
	"github.com/heartmarshall/saas-inventory-backend/internal/service/tool"
)

// db is what the repositories and the transaction manager need from the pool.
type db interface {
	postgres.Querier
	postgres.Beginner
}

// Services bundles the application services built over one database.
type Services struct {
	Tools      *tool.Service
	Categories *category.Service
	Analytics  *analytics.Service
}

// NewServices wires repositories and services over pool.
func NewServices(logger *slog.Logger, pool db, cfg *config.Config) *Services {
	txm := postgres.NewTxManager(pool)

	tools := toolrepo.New(pool)
	categories := categoryrepo.New(pool)
	usage := analyticsrepo.New(pool)

	return &Services{
		Tools:      tool.NewService(logger, tools, categories, txm, cfg.Pagination),
		Categories: category.NewService(logger, categories, txm),
		Analytics:  analytics.NewService(logger, usage, cfg.Analytics),
	}
}
