package wire

import (
	"net/http"

	"yatri-auth/internal/adaptor"
	"yatri-auth/internal/data/repository"
	"yatri-auth/internal/usecase"
	"yatri-auth/pkg/mailer"
	"yatri-auth/pkg/middleware"
	"yatri-auth/pkg/token"
	"yatri-auth/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// App holds the wired HTTP surface.
type App struct {
	Router *chi.Mux
}

// Wiring builds services and handlers on top of repo and returns the router.
// Metrics are registered on reg and served from /metrics.
func Wiring(
	repo *repository.Repository,
	sender mailer.Sender,
	issuer *token.Issuer,
	config *utils.Config,
	logger *zap.Logger,
	reg *prometheus.Registry,
) *App {
	usecase.RegisterMetrics(reg)

	service := usecase.NewService(repo, sender, issuer, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, reg, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	reg *prometheus.Registry,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(chimw.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireAuth(r, handler.Auth, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	return r
}
