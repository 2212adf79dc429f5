package memory

import (
	"context"
	"log/slog"
	"sync"

	"github.com/mrops-br/inventory-dashboard-api/internal/domain"
	"github.com/mrops-br/inventory-dashboard-api/internal/pkg/clock"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Subscriber observes the catalog. It is invoked synchronously on the
// mutating goroutine after each committed mutation, with a snapshot of
// the full catalog in insertion order.
type Subscriber func(snapshot []domain.Product)

// CatalogRepository is an in-memory implementation of
// domain.CatalogRepository. Products are kept as an ordered sequence:
// insertion order is preserved and deletes never reorder the remainder.
type CatalogRepository struct {
	mu          sync.RWMutex
	products    []*domain.Product
	subscribers []Subscriber
	clock       clock.Clock
	tracer      trace.Tracer
	logger      *slog.Logger
}

// NewCatalogRepository creates an empty in-memory catalog
func NewCatalogRepository(clk clock.Clock, tracer trace.Tracer, logger *slog.Logger) *CatalogRepository {
	return &CatalogRepository{
		clock:  clk,
		tracer: tracer,
		logger: logger,
	}
}

// Subscribe registers a catalog observer. Subscribers cannot be
// removed; the set is fixed at wiring time.
func (r *CatalogRepository) Subscribe(fn Subscriber) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subscribers = append(r.subscribers, fn)
}

// Create appends a new product to the end of the catalog
func (r *CatalogRepository) Create(ctx context.Context, product *domain.Product) error {
	ctx, span := r.tracer.Start(ctx, "CatalogRepository.Create")
	defer span.End()

	span.SetAttributes(
		attribute.String("product.id", product.ID),
		attribute.String("product.name", product.Name),
	)

	r.mu.Lock()
	stored := *product
	r.products = append(r.products, &stored)
	snapshot := r.snapshotLocked()
	r.mu.Unlock()

	r.logger.InfoContext(ctx, "Product created in catalog",
		slog.String("product_id", product.ID),
		slog.String("product_name", product.Name),
	)

	span.SetStatus(codes.Ok, "Product created successfully")
	r.notify(snapshot)
	return nil
}

// Update merges the patch over the product with the given id and
// stamps UpdatedAt. Fields the patch does not carry are preserved.
// Returns the updated record, or domain.ErrProductNotFound.
func (r *CatalogRepository) Update(ctx context.Context, id string, patch *domain.ProductUpdate) (*domain.Product, error) {
	ctx, span := r.tracer.Start(ctx, "CatalogRepository.Update")
	defer span.End()

	span.SetAttributes(attribute.String("product.id", id))

	r.mu.Lock()
	product := r.findLocked(id)
	if product == nil {
		r.mu.Unlock()
		span.RecordError(domain.ErrProductNotFound)
		span.SetStatus(codes.Error, "Product not found")
		r.logger.WarnContext(ctx, "Product not found for update",
			slog.String("product_id", id),
		)
		return nil, domain.ErrProductNotFound
	}

	patch.Apply(product, r.clock.Now())
	updated := *product
	snapshot := r.snapshotLocked()
	r.mu.Unlock()

	r.logger.InfoContext(ctx, "Product updated in catalog",
		slog.String("product_id", id),
		slog.String("product_name", updated.Name),
	)

	span.SetStatus(codes.Ok, "Product updated successfully")
	r.notify(snapshot)
	return &updated, nil
}

// Delete removes the product with the given id. Exactly one element is
// removed and the relative order of the remainder is unchanged.
// Returns domain.ErrProductNotFound when the id is unknown; the catalog
// is never altered by a miss, so a repeated delete changes nothing.
func (r *CatalogRepository) Delete(ctx context.Context, id string) error {
	ctx, span := r.tracer.Start(ctx, "CatalogRepository.Delete")
	defer span.End()

	span.SetAttributes(attribute.String("product.id", id))

	r.mu.Lock()
	idx := -1
	for i, p := range r.products {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		r.mu.Unlock()
		span.RecordError(domain.ErrProductNotFound)
		span.SetStatus(codes.Error, "Product not found")
		r.logger.WarnContext(ctx, "Product not found for delete",
			slog.String("product_id", id),
		)
		return domain.ErrProductNotFound
	}

	r.products = append(r.products[:idx], r.products[idx+1:]...)
	snapshot := r.snapshotLocked()
	r.mu.Unlock()

	r.logger.InfoContext(ctx, "Product deleted from catalog",
		slog.String("product_id", id),
	)

	span.SetStatus(codes.Ok, "Product deleted successfully")
	r.notify(snapshot)
	return nil
}

// FindByID retrieves a copy of the product with the given id
func (r *CatalogRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	ctx, span := r.tracer.Start(ctx, "CatalogRepository.FindByID")
	defer span.End()

	span.SetAttributes(attribute.String("product.id", id))

	r.mu.RLock()
	product := r.findLocked(id)
	if product == nil {
		r.mu.RUnlock()
		span.RecordError(domain.ErrProductNotFound)
		span.SetStatus(codes.Error, "Product not found")
		r.logger.WarnContext(ctx, "Product not found",
			slog.String("product_id", id),
		)
		return nil, domain.ErrProductNotFound
	}
	found := *product
	r.mu.RUnlock()

	r.logger.DebugContext(ctx, "Product found in catalog",
		slog.String("product_id", id),
		slog.String("product_name", found.Name),
	)

	span.SetStatus(codes.Ok, "Product found")
	return &found, nil
}

// FindAll retrieves copies of all products in insertion order
func (r *CatalogRepository) FindAll(ctx context.Context) ([]*domain.Product, error) {
	ctx, span := r.tracer.Start(ctx, "CatalogRepository.FindAll")
	defer span.End()

	r.mu.RLock()
	products := make([]*domain.Product, len(r.products))
	for i, p := range r.products {
		copied := *p
		products[i] = &copied
	}
	r.mu.RUnlock()

	span.SetAttributes(attribute.Int("product.count", len(products)))

	r.logger.DebugContext(ctx, "Products retrieved from catalog",
		slog.Int("count", len(products)),
	)

	span.SetStatus(codes.Ok, "Products retrieved successfully")
	return products, nil
}

// Snapshot returns the catalog as values, for observers and gauges.
func (r *CatalogRepository) Snapshot() []domain.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshotLocked()
}

func (r *CatalogRepository) findLocked(id string) *domain.Product {
	for _, p := range r.products {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (r *CatalogRepository) snapshotLocked() []domain.Product {
	snapshot := make([]domain.Product, len(r.products))
	for i, p := range r.products {
		snapshot[i] = *p
	}
	return snapshot
}

func (r *CatalogRepository) notify(snapshot []domain.Product) {
	r.mu.RLock()
	subs := r.subscribers
	r.mu.RUnlock()
	for _, fn := range subs {
		fn(snapshot)
	}
}
