package http

import (
	"encoding/json"
	"errors"
	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/gaming-store/internal/domain"
	"github.com/kahvecikaan/gaming-store/internal/repository"
	"github.com/kahvecikaan/gaming-store/internal/service"
	"net/http"
	"strconv"
)

// RootMessage is returned by GET /
const RootMessage = "Gaming E-commerce Backend Running"

// Response headers exposing degraded responses
const (
	HeaderDataSource     = "X-Data-Source"
	HeaderOrderPersisted = "X-Order-Persisted"
)

type Handler struct {
	catalogService     service.CatalogService
	checkoutService    service.CheckoutService
	diagnosticsService service.DiagnosticsService
	logger             hclog.Logger
}

func NewHandler(
	cs service.CatalogService,
	co service.CheckoutService,
	ds service.DiagnosticsService,
	log hclog.Logger) *Handler {
	return &Handler{
		catalogService:     cs,
		checkoutService:    co,
		diagnosticsService: ds,
		logger:             log,
	}
}

// Root handles GET /
//
// swagger:route GET / root root
//
// Reports that the backend is running.
//
// Responses:
//
//	200: description: running message
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"message": RootMessage})
}

// ListProducts handles GET /api/products
//
// swagger:route GET /api/products products listProducts
//
// Returns a list of products. When the store cannot be queried the
// demonstration catalog is returned.
//
// Responses:
//
//	200: productsResponse
//	422: validationErrorResponse
//	500: errorResponse
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	limit := int64(service.DefaultProductLimit)
	if raw := params.Get("limit"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.writeJSON(w, http.StatusUnprocessableEntity, &ValidationErrorResponse{
				Detail: []string{"Field 'limit': must be an integer"},
			})
			return
		}
		limit = n
	}

	catalog, err := h.catalogService.ListProducts(r.Context(), repository.ProductQuery{
		Category: params.Get("category"),
		Platform: params.Get("platform"),
		Limit:    limit,
	})
	if err != nil {
		h.logger.Error("Error getting products", "error", err)
		h.writeJSON(w, http.StatusInternalServerError, &ErrorResponse{Detail: "Error getting products"})
		return
	}

	source := "store"
	if catalog.Fallback {
		source = "fallback"
	}
	w.Header().Set(HeaderDataSource, source)

	h.writeJSON(w, http.StatusOK, catalog.Products)
}

// Checkout handles POST /api/checkout
//
// swagger:route POST /api/checkout orders checkout
//
// Places an order for the cart.
//
// Responses:
//
//	200: confirmationResponse
//	400: errorResponse
//	422: validationErrorResponse
//	500: errorResponse
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	// Retrieve the validated request from the context
	req, ok := r.Context().Value(ContextKeyCheckout).(*domain.CheckoutRequest)
	if !ok {
		h.writeJSON(w, http.StatusBadRequest, &ErrorResponse{Detail: "Invalid checkout data"})
		return
	}

	conf, err := h.checkoutService.Checkout(r.Context(), req)

	var (
		fieldErr  domain.ValidationError
		fieldErrs domain.ValidationErrors
	)
	switch {
	case err == nil:
	case errors.As(err, &fieldErr):
		h.writeJSON(w, http.StatusBadRequest, &ErrorResponse{Detail: fieldErr.Message})
		return
	case errors.As(err, &fieldErrs):
		h.writeJSON(w, http.StatusUnprocessableEntity, &ValidationErrorResponse{Detail: fieldErrs.Errors()})
		return
	default:
		h.logger.Error("Error placing order", "error", err)
		h.writeJSON(w, http.StatusInternalServerError, &ErrorResponse{Detail: "Error placing order"})
		return
	}

	w.Header().Set(HeaderOrderPersisted, strconv.FormatBool(conf.Persisted))
	h.writeJSON(w, http.StatusOK, conf)
}

// TestDatabase handles GET /test
//
// swagger:route GET /test diagnostics testDatabase
//
// Reports document store connectivity.
//
// Responses:
//
//	200: statusResponse
func (h *Handler) TestDatabase(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.diagnosticsService.TestDatabase(r.Context()))
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// we should never be here but log the error just in case
		h.logger.Error("Error serializing response", "error", err)
	}
}
