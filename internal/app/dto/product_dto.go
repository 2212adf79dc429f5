package dto

import (
	"time"

	"github.com/mrops-br/inventory-dashboard-api/internal/domain"
)

// FieldErrors maps an input field name to a human-readable reason.
// A non-empty map blocks the operation before it reaches the catalog.
type FieldErrors map[string]string

// CreateProductRequest represents the request to create a product
type CreateProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
}

// Validate checks every field and reports all offending fields at once,
// the way the product form annotates its inputs.
func (r *CreateProductRequest) Validate() FieldErrors {
	errs := FieldErrors{}
	if r.Name == "" {
		errs["name"] = "Product name is required"
	}
	if r.Description == "" {
		errs["description"] = "Description is required"
	}
	if r.Category == "" {
		errs["category"] = "Category is required"
	}
	if r.Price <= 0 {
		errs["price"] = "Please enter a valid price greater than 0"
	}
	if r.Stock < 0 {
		errs["stock"] = "Please enter a valid stock quantity (0 or greater)"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// UpdateProductRequest is a partial patch; absent fields are preserved.
type UpdateProductRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Stock       *int     `json:"stock,omitempty"`
}

// Validate checks only the fields the patch carries.
func (r *UpdateProductRequest) Validate() FieldErrors {
	errs := FieldErrors{}
	if r.Name != nil && *r.Name == "" {
		errs["name"] = "Product name is required"
	}
	if r.Description != nil && *r.Description == "" {
		errs["description"] = "Description is required"
	}
	if r.Category != nil && *r.Category == "" {
		errs["category"] = "Category is required"
	}
	if r.Price != nil && *r.Price <= 0 {
		errs["price"] = "Please enter a valid price greater than 0"
	}
	if r.Stock != nil && *r.Stock < 0 {
		errs["stock"] = "Please enter a valid stock quantity (0 or greater)"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ToPatch converts the request into a domain patch.
func (r *UpdateProductRequest) ToPatch() *domain.ProductUpdate {
	return &domain.ProductUpdate{
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		Price:       r.Price,
		Stock:       r.Stock,
	}
}

// ProductResponse represents the product response
type ProductResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	StockStatus string    `json:"stock_status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// MutationResponse wraps a product with the transient confirmation the
// views surface after a successful mutation.
type MutationResponse struct {
	Message string           `json:"message"`
	Product *ProductResponse `json:"product,omitempty"`
}

// ToProductResponse converts a domain Product to ProductResponse
func ToProductResponse(p *domain.Product) *ProductResponse {
	return &ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Price:       p.Price,
		Stock:       p.Stock,
		StockStatus: string(domain.StockStatusOf(p.Stock)),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ToProductResponseList converts a list of domain Products to ProductResponse list
func ToProductResponseList(products []*domain.Product) []*ProductResponse {
	responses := make([]*ProductResponse, len(products))
	for i, p := range products {
		responses[i] = ToProductResponse(p)
	}
	return responses
}
