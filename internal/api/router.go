package api

import (
	"net/http"

	"mandoob-route-service/internal/adapters/cache"
	"mandoob-route-service/internal/api/handlers"
	"mandoob-route-service/internal/ingest"
	"mandoob-route-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root (handlers stay unaware of
// concrete adapters). resultCache may be nil.
func NewRouter(
	repo ports.OrderRepository,
	resultCache *cache.RedisResultCache,
	parser *ingest.Parser,
	gen *ingest.Generator,
) http.Handler {
	mux := http.NewServeMux()

	orderHandler := &handlers.OrderHandler{Repo: repo, Gen: gen}
	optimizeHandler := &handlers.OptimizeHandler{Repo: repo, Cache: resultCache, Gen: gen}
	notificationHandler := &handlers.NotificationHandler{Parser: parser}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/orders", orderHandler.Collection)
	mux.HandleFunc("/orders/", orderHandler.Item)
	mux.HandleFunc("/optimize", optimizeHandler.Optimize)
	mux.HandleFunc("/notifications/parse", notificationHandler.Parse)
	mux.HandleFunc("/mock/orders", orderHandler.Mock)
	mux.HandleFunc("/mock/optimize", optimizeHandler.MockOptimize)

	return loggingMiddleware(mux)
}
