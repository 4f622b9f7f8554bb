package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /{$}", handler.Welcome)
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerStatsRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /api/v1/stats/{name}", handler.GetPlayerStats)
	mux.HandleFunc("GET /api/v1/table", handler.GetLeagueTable)
	mux.HandleFunc("GET /api/v1/fixtures", handler.ListFixtures)
	mux.HandleFunc("GET /api/v1/results", handler.ListResults)
	mux.HandleFunc("GET /api/v1/cache/stats", handler.GetCacheStats)
}
