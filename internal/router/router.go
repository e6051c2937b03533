package router

import (
	"net/http"

	"kart-compare/internal/handler"
	"kart-compare/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
// A nil limiter disables rate limiting.
func New(
	productHandler *handler.ProductHandler,
	comparisonHandler *handler.ComparisonHandler,
	apiKey string,
	limiter *middleware.IPRateLimiter,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Product handler function
	productRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		// Check if this is a request for a specific product ID
		if r.URL.Path != "/api/products" && r.URL.Path != "/api/products/" {
			productHandler.GetByID(w, r)
			return
		}
		productHandler.GetAll(w, r)
	}

	// Register product routes (both with and without trailing slash)
	mux.HandleFunc("/api/products", productRouteHandler)
	mux.HandleFunc("/api/products/", productRouteHandler)

	// Live comparison
	mux.HandleFunc("/api/compare", comparisonHandler.Compare)

	// Share routes: POST creates a link, GET on /api/compare/share/{token} opens one
	shareRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/compare/share" || (r.Method == http.MethodPost && r.URL.Path == "/api/compare/share/") {
			comparisonHandler.CreateShare(w, r)
			return
		}
		comparisonHandler.ResolveShare(w, r)
	}

	mux.HandleFunc("/api/compare/share", shareRouteHandler)
	mux.HandleFunc("/api/compare/share/", shareRouteHandler)

	// Apply middleware in order: Recovery -> RequestID -> Logging -> CORS -> RateLimit -> APIKeyAuth
	var handler http.Handler = mux
	handler = middleware.APIKeyAuth(apiKey, logger)(handler)
	if limiter != nil {
		handler = middleware.RateLimit(limiter, logger)(handler)
	}
	handler = middleware.CORS(handler)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.RequestID(handler)
	handler = middleware.Recovery(logger)(handler)

	return handler
}
