package repository

import (
	"fmt"
	"github.com/kahvecikaan/gaming-store/internal/domain"
	"github.com/kahvecikaan/gaming-store/internal/store"
)

// ProductFromDocument maps a raw store document to a Product. Absent
// optional fields take the catalog defaults: in stock and DefaultRating.
// Range checks are left to domain.Validation.
func ProductFromDocument(doc store.Document) (*domain.Product, error) {
	var (
		p   domain.Product
		err error
	)

	if p.ID, err = stringField(doc, store.IDField); err != nil {
		return nil, err
	}
	if p.Title, err = stringField(doc, "title"); err != nil {
		return nil, err
	}
	if p.Description, err = stringField(doc, "description"); err != nil {
		return nil, err
	}
	if p.Category, err = stringField(doc, "category"); err != nil {
		return nil, err
	}
	if p.Platform, err = stringField(doc, "platform"); err != nil {
		return nil, err
	}
	if p.Image, err = stringField(doc, "image"); err != nil {
		return nil, err
	}

	price, ok, err := numberField(doc, "price")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("field %q: missing", "price")
	}
	p.Price = price

	p.InStock = true
	if inStock, ok, err := boolField(doc, "in_stock"); err != nil {
		return nil, err
	} else if ok {
		p.InStock = inStock
	}

	rating, ok, err := numberField(doc, "rating")
	if err != nil {
		return nil, err
	}
	if !ok {
		rating = domain.DefaultRating
	}
	p.Rating = &rating

	return &p, nil
}

func stringField(doc store.Document, key string) (string, error) {
	switch v := doc[key].(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	default:
		return "", fmt.Errorf("field %q: unexpected type %T", key, v)
	}
}

// numberField accepts any numeric BSON type; ok is false when the field is
// absent or null
func numberField(doc store.Document, key string) (value float64, ok bool, err error) {
	switch v := doc[key].(type) {
	case nil:
		return 0, false, nil
	case float64:
		return v, true, nil
	case float32:
		return float64(v), true, nil
	case int32:
		return float64(v), true, nil
	case int64:
		return float64(v), true, nil
	case int:
		return float64(v), true, nil
	default:
		return 0, false, fmt.Errorf("field %q: unexpected type %T", key, v)
	}
}

func boolField(doc store.Document, key string) (value bool, ok bool, err error) {
	switch v := doc[key].(type) {
	case nil:
		return false, false, nil
	case bool:
		return v, true, nil
	default:
		return false, false, fmt.Errorf("field %q: unexpected type %T", key, v)
	}
}
