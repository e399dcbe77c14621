package http

import (
	"context"
	"encoding/json"
	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/gaming-store/internal/domain"
	"net/http"
	"strconv"
	"strings"
	"time"
)

type contextKey string

// ContextKeyCheckout holds the validated *domain.CheckoutRequest
const ContextKeyCheckout contextKey = "checkout"

// Middleware struct holds dependencies for middleware functions
type Middleware struct {
	Logger     hclog.Logger
	Validator  *domain.Validation
	corsConfig *CORSConfig
}

// CORSConfig holds configuration for CORS middleware. A "*" entry in
// AllowedOrigins or AllowedHeaders permits any value.
type CORSConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	MaxAge           int  // Cache preflight requests
	AllowCredentials bool // Allow credentials like cookies
}

// DefaultCORSConfig permits every origin, method and header
func DefaultCORSConfig() *CORSConfig {
	return &CORSConfig{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		MaxAge:           600,
		AllowCredentials: true,
	}
}

// NewMiddleware creates a new Middleware instance
func NewMiddleware(logger hclog.Logger, validator *domain.Validation, corsConfig *CORSConfig) *Middleware {
	if corsConfig == nil {
		corsConfig = DefaultCORSConfig()
	}
	return &Middleware{
		Logger:     logger,
		Validator:  validator,
		corsConfig: corsConfig,
	}
}

func (m *Middleware) CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin == "" || !contains(m.corsConfig.AllowedOrigins, origin) {
			// not a CORS request, or one we don't answer
			next.ServeHTTP(w, r)
			return
		}

		// Reflect the origin; a literal "*" is rejected by browsers when
		// credentials are allowed
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Add("Vary", "Origin")

		if m.corsConfig.AllowCredentials {
			w.Header().Set("Access-Control-Allow-Credentials", "true")
		}

		// Handle preflight requests
		if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
			w.Header().Set("Access-Control-Allow-Methods", strings.Join(m.corsConfig.AllowedMethods, ","))

			headers := strings.Join(m.corsConfig.AllowedHeaders, ",")
			if requested := r.Header.Get("Access-Control-Request-Headers"); requested != "" &&
				contains(m.corsConfig.AllowedHeaders, "*") {
				headers = requested
			}
			w.Header().Set("Access-Control-Allow-Headers", headers)

			// Set max age for preflight cache
			if m.corsConfig.MaxAge > 0 {
				w.Header().Set("Access-Control-Max-Age", strconv.Itoa(m.corsConfig.MaxAge))
			}
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// ContentTypeMiddleware sets the Content-Type header to application/json
func (m *Middleware) ContentTypeMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

// LoggingMiddleware logs the incoming requests and responses
func (m *Middleware) LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.New().String()

		m.Logger.Info("Incoming request",
			"method", r.Method,
			"url", r.URL.Path,
			"request_id", requestID,
		)

		// Add the request ID to the response header
		w.Header().Set("X-Request-ID", requestID)

		next.ServeHTTP(w, r)

		m.Logger.Info("Completed request",
			"method", r.Method,
			"url", r.URL.Path,
			"request_id", requestID,
			"duration", time.Since(start),
		)
	})
}

// CheckoutValidationMiddleware decodes and validates the checkout request
// and adds it to the context
func (m *Middleware) CheckoutValidationMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req domain.CheckoutRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			m.Logger.Error("Error decoding checkout request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(&ErrorResponse{Detail: "Invalid checkout data"})
			return
		}

		if errs := m.Validator.Validate(&req); len(errs) > 0 {
			m.Logger.Debug("Checkout request rejected", "errors", errs.Errors())
			w.WriteHeader(http.StatusUnprocessableEntity)
			json.NewEncoder(w).Encode(&ValidationErrorResponse{Detail: errs.Errors()})
			return
		}

		// Add the validated request to the context
		ctx := context.WithValue(r.Context(), ContextKeyCheckout, &req)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// contains reports whether v is in list or list holds "*"
func contains(list []string, v string) bool {
	for _, item := range list {
		if item == "*" || strings.EqualFold(item, v) {
			return true
		}
	}
	return false
}
