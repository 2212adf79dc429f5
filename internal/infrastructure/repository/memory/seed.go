package memory

import (
	"context"
	"time"

	"github.com/mrops-br/inventory-dashboard-api/internal/domain"
)

// Seed loads the demo catalog. The service has no durable storage, so
// each process starts from this fixed data set when seeding is enabled.
func (r *CatalogRepository) Seed(ctx context.Context) error {
	for _, p := range seedProducts() {
		if err := r.Create(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

func seedProducts() []*domain.Product {
	return []*domain.Product{
		{
			ID:          "1",
			Name:        "Premium Laptop",
			Description: "High-performance laptop for professionals",
			Price:       1299.99,
			Category:    "Electronics",
			Stock:       15,
			CreatedAt:   time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "2",
			Name:        "Wireless Headphones",
			Description: "Noise-canceling wireless headphones",
			Price:       199.99,
			Category:    "Electronics",
			Stock:       32,
			CreatedAt:   time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "3",
			Name:        "Office Chair",
			Description: "Ergonomic office chair with lumbar support",
			Price:       349.99,
			Category:    "Furniture",
			Stock:       8,
			CreatedAt:   time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		},
	}
}
