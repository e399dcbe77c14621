package domain

// Domain-level errors
var (
	ErrEmptyCart = ValidationError{Field: "items", Message: "Cart is empty"}
)
