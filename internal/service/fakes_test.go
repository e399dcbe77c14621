package service

import (
	"context"
	"github.com/kahvecikaan/gaming-store/internal/domain"
	"github.com/kahvecikaan/gaming-store/internal/repository"
	"github.com/kahvecikaan/gaming-store/internal/store"
)

type fakeProductRepo struct {
	findFunc func(ctx context.Context, q repository.ProductQuery) (domain.Products, error)
	addFunc  func(ctx context.Context, p *domain.Product) (string, error)
}

func (f *fakeProductRepo) Find(ctx context.Context, q repository.ProductQuery) (domain.Products, error) {
	if f.findFunc != nil {
		return f.findFunc(ctx, q)
	}
	return domain.Products{}, nil
}

func (f *fakeProductRepo) Add(ctx context.Context, p *domain.Product) (string, error) {
	if f.addFunc != nil {
		return f.addFunc(ctx, p)
	}
	return "", nil
}

type fakeOrderRepo struct {
	addFunc func(ctx context.Context, o *domain.Order) (string, error)
	added   []*domain.Order
}

func (f *fakeOrderRepo) Add(ctx context.Context, o *domain.Order) (string, error) {
	if f.addFunc != nil {
		id, err := f.addFunc(ctx, o)
		if err == nil {
			f.added = append(f.added, o)
		}
		return id, err
	}
	f.added = append(f.added, o)
	return "", nil
}

type fakeGateway struct {
	initialized         bool
	listCollectionsFunc func(ctx context.Context) ([]string, error)
}

func (f *fakeGateway) Insert(ctx context.Context, collection string, record any) (string, error) {
	return "", nil
}

func (f *fakeGateway) Find(ctx context.Context, collection string, filter store.Filter, limit int64) ([]store.Document, error) {
	return nil, nil
}

func (f *fakeGateway) ListCollections(ctx context.Context) ([]string, error) {
	if f.listCollectionsFunc != nil {
		return f.listCollectionsFunc(ctx)
	}
	return nil, nil
}

func (f *fakeGateway) Name() string                    { return "gaming_store" }
func (f *fakeGateway) Initialized() bool               { return f.initialized }
func (f *fakeGateway) Close(ctx context.Context) error { return nil }
