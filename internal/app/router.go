package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/groenwerk/groenwerk/internal/catalog"
	"github.com/groenwerk/groenwerk/internal/offerte"
	"github.com/groenwerk/groenwerk/internal/platform/httpx"
	"github.com/groenwerk/groenwerk/internal/rates/factors"
	"github.com/groenwerk/groenwerk/internal/rates/normhours"
	"github.com/groenwerk/groenwerk/internal/settings"
	"github.com/groenwerk/groenwerk/internal/shared"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger           *slog.Logger
	Config           *Config
	Pool             *pgxpool.Pool
	FactorsHandler   *factors.Handler
	NormHoursHandler *normhours.Handler
	CatalogHandler   *catalog.Handler
	SettingsHandler  *settings.Handler
	OfferteHandler   *offerte.Handler
}

// NewRouter constructs the chi.Router with the standard middleware chain and
// all module routes under /api/v1.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger: params.Logger,
		Config: params.Config,
	}) {
		r.Use(mw)
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if params.Pool != nil {
			if err := params.Pool.Ping(r.Context()); err != nil {
				httpx.Problem(w, http.StatusServiceUnavailable, "Unhealthy", "database unreachable")
				return
			}
		}
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(shared.EigenaarContext)
		r.Route("/correctiefactoren", params.FactorsHandler.MountRoutes)
		r.Route("/normuren", params.NormHoursHandler.MountRoutes)
		r.Route("/producten", params.CatalogHandler.MountRoutes)
		r.Route("/instellingen", params.SettingsHandler.MountRoutes)
		r.Route("/offertes", params.OfferteHandler.MountRoutes)
	})

	return r
}
