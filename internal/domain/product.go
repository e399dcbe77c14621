package domain

// DefaultRating is the rating assumed for products stored without one
const DefaultRating = 4.5

// Product represents an item of the catalog
//
// swagger:model
type Product struct {
	// The store-assigned ID of the product
	//
	// required: true
	// example: 65f1c2a9e4b0a1b2c3d4e5f6
	ID string `json:"id" bson:"-"`

	// The title of the product
	//
	// required: true
	// example: Pro Gaming Headset
	Title string `json:"title" bson:"title" validate:"required"`

	// A short description of the product
	//
	// required: false
	// example: 7.1 surround, noise-cancel mic
	Description string `json:"description,omitempty" bson:"description,omitempty"`

	// The price of the product in USD
	//
	// required: true
	// min: 0
	// example: 89.99
	Price float64 `json:"price" bson:"price" validate:"gte=0"`

	// The category of the product, e.g. accessories, consoles, games
	//
	// required: true
	// example: accessories
	Category string `json:"category" bson:"category" validate:"required"`

	// The platform of the product, e.g. PC, PS5, Xbox, Switch
	//
	// required: false
	// example: PC
	Platform string `json:"platform,omitempty" bson:"platform,omitempty"`

	// Whether the product is currently in stock
	//
	// required: true
	// example: true
	InStock bool `json:"in_stock" bson:"in_stock"`

	// The image URL of the product
	//
	// required: false
	Image string `json:"image,omitempty" bson:"image,omitempty"`

	// The average rating of the product
	//
	// required: false
	// min: 0
	// max: 5
	// example: 4.5
	Rating *float64 `json:"rating,omitempty" bson:"rating,omitempty" validate:"omitempty,gte=0,lte=5"`
}

// Products is a collection of Product
type Products []*Product

// NewProduct returns a product carrying the catalog defaults: in stock and
// rated DefaultRating
func NewProduct(title, category string, price float64) *Product {
	rating := DefaultRating
	return &Product{
		Title:    title,
		Category: category,
		Price:    price,
		InStock:  true,
		Rating:   &rating,
	}
}
