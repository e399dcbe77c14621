package repository

import (
	"context"
	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/gaming-store/internal/domain"
	"github.com/kahvecikaan/gaming-store/internal/store"
)

// ProductQuery selects products. Empty fields are not filtered on.
type ProductQuery struct {
	Category string
	Platform string
	Limit    int64
}

// Filter builds the store filter for the query
func (q ProductQuery) Filter() store.Filter {
	filter := store.Filter{}
	if q.Category != "" {
		filter["category"] = q.Category
	}
	if q.Platform != "" {
		filter["platform"] = q.Platform
	}
	return filter
}

type ProductRepository interface {
	Find(ctx context.Context, q ProductQuery) (domain.Products, error)
	Add(ctx context.Context, product *domain.Product) (string, error)
}

type documentProductRepository struct {
	gateway   store.Gateway
	validator *domain.Validation
	logger    hclog.Logger
}

func NewProductRepository(gw store.Gateway, v *domain.Validation, logger hclog.Logger) ProductRepository {
	return &documentProductRepository{
		gateway:   gw,
		validator: v,
		logger:    logger,
	}
}

// Find returns the matching products. Stored documents that cannot be
// mapped to a valid product are skipped.
func (r *documentProductRepository) Find(ctx context.Context, q ProductQuery) (domain.Products, error) {
	docs, err := r.gateway.Find(ctx, store.ProductCollection, q.Filter(), q.Limit)
	if err != nil {
		return nil, err
	}

	products := make(domain.Products, 0, len(docs))
	for _, doc := range docs {
		product, err := ProductFromDocument(doc)
		if err != nil {
			r.logger.Warn("Skipping malformed product document", "id", doc[store.IDField], "error", err)
			continue
		}

		if errs := r.validator.Validate(product); len(errs) != 0 {
			r.logger.Warn("Skipping invalid product document", "id", product.ID, "errors", errs.Errors())
			continue
		}

		products = append(products, product)
	}

	return products, nil
}

func (r *documentProductRepository) Add(ctx context.Context, product *domain.Product) (string, error) {
	id, err := r.gateway.Insert(ctx, store.ProductCollection, product)
	if err != nil {
		return "", err
	}

	product.ID = id
	return id, nil
}
