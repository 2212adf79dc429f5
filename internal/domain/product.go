package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidProductName        = errors.New("product name is required")
	ErrInvalidProductDescription = errors.New("product description is required")
	ErrInvalidProductCategory    = errors.New("product category is required")
	ErrInvalidProductPrice       = errors.New("product price must be positive")
	ErrInvalidProductStock       = errors.New("product stock must be zero or greater")
)

// Product represents a catalog entry. The catalog owns the canonical
// instance; everything handed out of the store is a copy.
type Product struct {
	ID          string
	Name        string
	Description string
	Category    string
	Price       float64
	Stock       int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewProduct creates a validated product with a fresh id.
// CreatedAt and UpdatedAt are both stamped with now.
func NewProduct(name, description, category string, price float64, stock int, now time.Time) (*Product, error) {
	product := &Product{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
		Category:    category,
		Price:       price,
		Stock:       stock,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := product.Validate(); err != nil {
		return nil, err
	}

	return product, nil
}

// Validate performs business validation on the product
func (p *Product) Validate() error {
	if p.Name == "" {
		return ErrInvalidProductName
	}
	if p.Description == "" {
		return ErrInvalidProductDescription
	}
	if p.Category == "" {
		return ErrInvalidProductCategory
	}
	if p.Price <= 0 {
		return ErrInvalidProductPrice
	}
	if p.Stock < 0 {
		return ErrInvalidProductStock
	}
	return nil
}

// LineValue is the inventory value this product contributes.
func (p *Product) LineValue() float64 {
	return p.Price * float64(p.Stock)
}

// ProductUpdate is a partial patch. Nil fields are left untouched by
// the catalog; supplied fields replace the stored value.
type ProductUpdate struct {
	Name        *string
	Description *string
	Category    *string
	Price       *float64
	Stock       *int
}

// Validate checks only the fields the patch actually carries.
func (u *ProductUpdate) Validate() error {
	if u.Name != nil && *u.Name == "" {
		return ErrInvalidProductName
	}
	if u.Description != nil && *u.Description == "" {
		return ErrInvalidProductDescription
	}
	if u.Category != nil && *u.Category == "" {
		return ErrInvalidProductCategory
	}
	if u.Price != nil && *u.Price <= 0 {
		return ErrInvalidProductPrice
	}
	if u.Stock != nil && *u.Stock < 0 {
		return ErrInvalidProductStock
	}
	return nil
}

// Empty reports whether the patch carries no fields at all.
func (u *ProductUpdate) Empty() bool {
	return u.Name == nil && u.Description == nil && u.Category == nil &&
		u.Price == nil && u.Stock == nil
}

// Apply merges the patch over p and stamps UpdatedAt.
func (u *ProductUpdate) Apply(p *Product, now time.Time) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.Category != nil {
		p.Category = *u.Category
	}
	if u.Price != nil {
		p.Price = *u.Price
	}
	if u.Stock != nil {
		p.Stock = *u.Stock
	}
	p.UpdatedAt = now
}
