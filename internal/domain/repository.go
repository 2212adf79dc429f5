package domain

import (
	"context"
	"errors"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

// CatalogRepository defines the contract for the product catalog
type CatalogRepository interface {
	Create(ctx context.Context, product *Product) error
	Update(ctx context.Context, id string, patch *ProductUpdate) (*Product, error)
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*Product, error)
	FindAll(ctx context.Context) ([]*Product, error)
}
