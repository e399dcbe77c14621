package http

import (
	"github.com/go-openapi/runtime/middleware"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/gaming-store/internal/domain"
	"net/http"
)

// NewRouter wires the API routes. CORS runs outside the router so that
// preflight requests are answered for every path.
func NewRouter(
	h *Handler,
	validator *domain.Validation,
	logger hclog.Logger,
	corsConfig *CORSConfig,
) http.Handler {
	router := mux.NewRouter()

	// Create a middleware instance
	mw := NewMiddleware(logger, validator, corsConfig)

	// Apply global middleware
	router.Use(mw.LoggingMiddleware)
	router.Use(mw.ContentTypeMiddleware)
	router.Use(handlers.CompressHandler)

	router.HandleFunc("/", h.Root).Methods(http.MethodGet)
	router.HandleFunc("/api/products", h.ListProducts).Methods(http.MethodGet)
	router.HandleFunc("/test", h.TestDatabase).Methods(http.MethodGet)

	// Routes requiring validation middleware (for request body validation)
	postRouter := router.Methods(http.MethodPost).Subrouter()
	postRouter.HandleFunc("/api/checkout", h.Checkout)
	postRouter.Use(mw.CheckoutValidationMiddleware)

	// Serve the embedded swagger.yaml file
	router.HandleFunc("/swagger.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		w.Write(swaggerSpec)
	}).Methods(http.MethodGet)

	// Configure the Redoc middleware to point to the SpecURL
	swaggerOpts := middleware.RedocOpts{SpecURL: "/swagger.yaml"}
	router.Handle("/docs", middleware.Redoc(swaggerOpts, nil)).Methods(http.MethodGet)

	recovery := handlers.RecoveryHandler(
		handlers.RecoveryLogger(logger.StandardLogger(&hclog.StandardLoggerOptions{InferLevels: true})),
		handlers.PrintRecoveryStack(true),
	)

	return recovery(mw.CORSMiddleware(router))
}
