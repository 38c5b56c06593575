package api

import (
	"log/slog"
	"net/http"

	"golang.org/x/time/rate"

	"github.com/flockwise/flockwise/internal/adapter/api/handler"
	"github.com/flockwise/flockwise/internal/adapter/api/middleware"
	"github.com/flockwise/flockwise/internal/adapter/metrics"
	"github.com/flockwise/flockwise/internal/usecase"
)

// Services bundles the use cases the router exposes.
type Services struct {
	Coops     *usecase.CoopCommands
	Flocks    *usecase.FlockCommands
	Records   *usecase.DailyRecordCommands
	Purchases *usecase.PurchaseCommands
	Queries   *usecase.Queries
}

// NewRouter creates and configures the main HTTP router for the API service.
func NewRouter(
	svc Services,
	resolver middleware.IdentityResolver,
	logger *slog.Logger,
	m *metrics.CommandMetrics,
	mutationRPS rate.Limit,
	mutationBurst int,
) http.Handler {
	mux := http.NewServeMux()

	coops := handler.NewCoopHandler(svc.Coops, svc.Queries, logger, m)
	flocks := handler.NewFlockHandler(svc.Flocks, svc.Queries, logger, m)
	records := handler.NewDailyRecordHandler(svc.Records, svc.Queries, logger, m)
	purchases := handler.NewPurchaseHandler(svc.Purchases, svc.Queries, logger, m)

	limit := middleware.RateLimit(mutationRPS, mutationBurst, m)
	mutation := func(h http.HandlerFunc) http.Handler { return limit(h) }

	mux.Handle("POST /api/v1/coops", mutation(coops.Create))
	mux.Handle("PUT /api/v1/coops/{id}", mutation(coops.Update))
	mux.Handle("DELETE /api/v1/coops/{id}", mutation(coops.Delete))
	mux.HandleFunc("GET /api/v1/coops", coops.List)
	mux.HandleFunc("GET /api/v1/coops/{id}", coops.Get)
	mux.HandleFunc("GET /api/v1/coops/{coopID}/flocks", flocks.ListByCoop)

	mux.Handle("POST /api/v1/flocks", mutation(flocks.Create))
	mux.Handle("PUT /api/v1/flocks/{id}", mutation(flocks.Update))
	mux.Handle("POST /api/v1/flocks/{id}/archive", mutation(flocks.Archive))
	mux.HandleFunc("GET /api/v1/flocks/{id}", flocks.Get)
	mux.HandleFunc("GET /api/v1/flocks/{flockID}/records", records.ListByFlock)

	mux.Handle("POST /api/v1/records", mutation(records.Create))
	mux.Handle("PUT /api/v1/records/{id}", mutation(records.Update))
	mux.Handle("DELETE /api/v1/records/{id}", mutation(records.Delete))

	mux.Handle("POST /api/v1/purchases", mutation(purchases.Create))
	mux.Handle("PUT /api/v1/purchases/{id}", mutation(purchases.Update))
	mux.Handle("DELETE /api/v1/purchases/{id}", mutation(purchases.Delete))
	mux.HandleFunc("GET /api/v1/purchases", purchases.List)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return middleware.Auth(resolver, logger)(middleware.Logging(logger)(mux))
}
