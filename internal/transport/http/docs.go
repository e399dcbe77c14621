// Package classification of Gaming Store API
//
// # Documentation for Gaming Store API
//
// Schemes: http
// BasePath: /
// Version: 1.0.0
//
// Consumes:
// - application/json
//
// Produces:
// - application/json
//
// swagger:meta
package http

import (
	_ "embed"
	"github.com/kahvecikaan/gaming-store/internal/domain"
	"github.com/kahvecikaan/gaming-store/internal/service"
)

//go:embed swagger.yaml
var swaggerSpec []byte

// NOTE: Types defined here are purely for documentation purposes
// These types are not used by any of the handlers

// Generic error message returned as a string
// swagger:response errorResponse
type errorResponseWrapper struct {
	// Description of the error
	// in: body
	Body ErrorResponse
}

// Validation errors defined as an array of strings
// swagger:response validationErrorResponse
type validationErrorResponseWrapper struct {
	// Collection of the errors
	// in: body
	Body ValidationErrorResponse
}

// A list of products
// swagger:response productsResponse
type productsResponseWrapper struct {
	// Store products, or the demonstration catalog when the store is down
	// in: body
	Body []domain.Product
}

// The checkout confirmation
// swagger:response confirmationResponse
type confirmationResponseWrapper struct {
	// in: body
	Body service.Confirmation
}

// The database diagnostics
// swagger:response statusResponse
type statusResponseWrapper struct {
	// in: body
	Body service.Status
}

// swagger:parameters listProducts
type productQueryParamsWrapper struct {
	// Only products of this category
	// in: query
	Category string `json:"category"`

	// Only products for this platform
	// in: query
	Platform string `json:"platform"`

	// Maximum number of products, 50 by default
	// in: query
	Limit int `json:"limit"`
}

// swagger:parameters checkout
type checkoutBodyParamsWrapper struct {
	// The customer and the cart to order
	// in: body
	// required: true
	Body domain.CheckoutRequest
}

// ErrorResponse defines the structure for API error responses
//
// swagger:model
type ErrorResponse struct {
	// The error message
	//
	// required: true
	Detail string `json:"detail"`
}

// ValidationErrorResponse defines the structure for API validation error responses
//
// swagger:model
type ValidationErrorResponse struct {
	// The validation errors
	//
	// required: true
	Detail []string `json:"detail"`
}
