package service

import (
	"context"
	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/gaming-store/internal/domain"
	"github.com/kahvecikaan/gaming-store/internal/repository"
	"github.com/kahvecikaan/gaming-store/internal/store"
)

// DefaultProductLimit is the number of products listed when no limit is given
const DefaultProductLimit = 50

// Catalog is the result of a product listing. Fallback is set when the
// products are the demonstration catalog rather than store data.
type Catalog struct {
	Products domain.Products
	Fallback bool
}

type CatalogService interface {
	ListProducts(ctx context.Context, q repository.ProductQuery) (*Catalog, error)
	AddProduct(ctx context.Context, product *domain.Product) error
}

type catalogService struct {
	repo      repository.ProductRepository
	validator *domain.Validation
	logger    hclog.Logger
}

func NewCatalogService(
	repo repository.ProductRepository,
	validator *domain.Validation,
	logger hclog.Logger) CatalogService {
	return &catalogService{
		repo:      repo,
		validator: validator,
		logger:    logger,
	}
}

// ListProducts lists the products matching q. When the store fails the
// fixed FallbackCatalog is returned instead of an error; an empty store
// result is returned as is.
func (s *catalogService) ListProducts(ctx context.Context, q repository.ProductQuery) (*Catalog, error) {
	s.logger.Debug("Listing products", "category", q.Category, "platform", q.Platform, "limit", q.Limit)

	products, err := s.repo.Find(ctx, q)
	switch {
	case err == nil:
		return &Catalog{Products: products}, nil
	case store.IsUnavailable(err):
		s.logger.Warn("Document store unavailable, serving fallback catalog", "error", err)
		return &Catalog{Products: FallbackCatalog(), Fallback: true}, nil
	default:
		s.logger.Error("Unable to list products", "error", err)
		return nil, err
	}
}

// AddProduct validates and stores a new product. Store errors are returned
// to the caller.
func (s *catalogService) AddProduct(ctx context.Context, product *domain.Product) error {
	s.logger.Debug("Adding new product", "title", product.Title)

	if errs := s.validator.Validate(product); len(errs) != 0 {
		return errs
	}

	if _, err := s.repo.Add(ctx, product); err != nil {
		s.logger.Error("Unable to add product", "title", product.Title, "error", err)
		return err
	}

	return nil
}
