package domain

import "time"

// StatusPending is the status every order is created with
const StatusPending = "pending"

// OrderItem is a snapshot of a cart line taken at purchase time. Title and
// price are copied so later catalog changes never alter a placed order.
//
// swagger:model
type OrderItem struct {
	// The referenced product ID; not enforced as a foreign key
	//
	// required: true
	ProductID string `json:"product_id" bson:"product_id" validate:"required"`

	// The product title at time of purchase
	//
	// required: true
	Title string `json:"title" bson:"title" validate:"required"`

	// The unit price at time of purchase
	//
	// required: true
	// min: 0
	Price float64 `json:"price" bson:"price" validate:"gte=0"`

	// The quantity purchased
	//
	// required: true
	// min: 1
	Quantity int `json:"quantity" bson:"quantity" validate:"gte=1"`

	// The product image at time of purchase
	//
	// required: false
	Image string `json:"image,omitempty" bson:"image,omitempty"`
}

// Order is a placed customer order
//
// swagger:model
type Order struct {
	ID            string      `json:"id" bson:"-"`
	CustomerName  string      `json:"customer_name" bson:"customer_name" validate:"required"`
	CustomerEmail string      `json:"customer_email" bson:"customer_email" validate:"required"`
	Address       string      `json:"address" bson:"address" validate:"required"`
	Items         []OrderItem `json:"items" bson:"items" validate:"required,min=1,dive"`
	Subtotal      float64     `json:"subtotal" bson:"subtotal" validate:"gte=0"`
	Tax           float64     `json:"tax" bson:"tax" validate:"gte=0"`
	Total         float64     `json:"total" bson:"total" validate:"gte=0"`
	Status        string      `json:"status" bson:"status" validate:"required"`
	CreatedAt     time.Time   `json:"created_at" bson:"created_at"`
}

// CartItem is one line of a checkout request
//
// swagger:model
type CartItem struct {
	// required: true
	ProductID string `json:"product_id" validate:"required"`

	// required: true
	Title string `json:"title" validate:"required"`

	// required: true
	// min: 0
	Price float64 `json:"price" validate:"gte=0"`

	// required: true
	// min: 1
	Quantity int `json:"quantity" validate:"gte=1"`

	// required: false
	Image string `json:"image,omitempty"`
}

// CheckoutRequest is the payload accepted by the checkout endpoint.
// An empty items list passes validation here; it is rejected by the
// checkout service with ErrEmptyCart.
//
// swagger:model
type CheckoutRequest struct {
	// required: true
	Name string `json:"name" validate:"required"`

	// required: true
	Email string `json:"email" validate:"required"`

	// required: true
	Address string `json:"address" validate:"required"`

	// required: true
	Items []CartItem `json:"items" validate:"required,dive"`
}

// NewOrder builds a pending order from a checkout request, snapshotting
// every cart line into an OrderItem
func NewOrder(req *CheckoutRequest, totals Totals, createdAt time.Time) *Order {
	items := make([]OrderItem, 0, len(req.Items))
	for _, i := range req.Items {
		items = append(items, OrderItem{
			ProductID: i.ProductID,
			Title:     i.Title,
			Price:     i.Price,
			Quantity:  i.Quantity,
			Image:     i.Image,
		})
	}

	return &Order{
		CustomerName:  req.Name,
		CustomerEmail: req.Email,
		Address:       req.Address,
		Items:         items,
		Subtotal:      totals.Subtotal.InexactFloat64(),
		Tax:           totals.Tax.InexactFloat64(),
		Total:         totals.Total.InexactFloat64(),
		Status:        StatusPending,
		CreatedAt:     createdAt,
	}
}
