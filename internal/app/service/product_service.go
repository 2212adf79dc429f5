package service

import (
	"context"
	"log/slog"

	"github.com/mrops-br/inventory-dashboard-api/internal/app/dto"
	"github.com/mrops-br/inventory-dashboard-api/internal/domain"
	"github.com/mrops-br/inventory-dashboard-api/internal/pkg/clock"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// ProductService handles catalog use cases
type ProductService struct {
	repo                  domain.CatalogRepository
	clock                 clock.Clock
	tracer                trace.Tracer
	logger                *slog.Logger
	productCreatedCounter metric.Int64Counter
	productOperations     metric.Int64Counter
}

// NewProductService creates a new product service
func NewProductService(
	repo domain.CatalogRepository,
	clk clock.Clock,
	tracer trace.Tracer,
	meter metric.Meter,
	logger *slog.Logger,
) *ProductService {
	// Initialize metrics
	productCreatedCounter, _ := meter.Int64Counter(
		"products.created.total",
		metric.WithDescription("Total number of products created"),
	)

	productOperations, _ := meter.Int64Counter(
		"products.operations",
		metric.WithDescription("Total number of product operations"),
	)

	return &ProductService{
		repo:                  repo,
		clock:                 clk,
		tracer:                tracer,
		logger:                logger,
		productCreatedCounter: productCreatedCounter,
		productOperations:     productOperations,
	}
}

func (s *ProductService) recordOperation(ctx context.Context, op, result string) {
	s.productOperations.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("operation", op),
			attribute.String("result", result),
		),
	)
}

// CreateProduct creates a new product at the end of the catalog
func (s *ProductService) CreateProduct(ctx context.Context, req *dto.CreateProductRequest) (*dto.ProductResponse, error) {
	ctx, span := s.tracer.Start(ctx, "ProductService.CreateProduct")
	defer span.End()

	span.SetAttributes(
		attribute.String("product.name", req.Name),
		attribute.Float64("product.price", req.Price),
	)

	s.logger.InfoContext(ctx, "Creating product",
		slog.String("name", req.Name),
		slog.Float64("price", req.Price),
	)

	// Create domain entity
	product, err := domain.NewProduct(req.Name, req.Description, req.Category, req.Price, req.Stock, s.clock.Now())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Validation failed")
		s.logger.ErrorContext(ctx, "Failed to create product",
			slog.String("error", err.Error()),
		)
		s.recordOperation(ctx, "create", "failure")
		return nil, err
	}

	span.SetAttributes(attribute.String("product.id", product.ID))

	// Store in catalog
	if err := s.repo.Create(ctx, product); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to store product")
		s.logger.ErrorContext(ctx, "Failed to store product",
			slog.String("error", err.Error()),
		)
		s.recordOperation(ctx, "create", "failure")
		return nil, err
	}

	// Record metrics
	s.productCreatedCounter.Add(ctx, 1)
	s.recordOperation(ctx, "create", "success")

	s.logger.InfoContext(ctx, "Product created successfully",
		slog.String("product_id", product.ID),
	)

	span.SetStatus(codes.Ok, "Product created successfully")
	return dto.ToProductResponse(product), nil
}

// UpdateProduct applies a partial patch to an existing product
func (s *ProductService) UpdateProduct(ctx context.Context, id string, req *dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	ctx, span := s.tracer.Start(ctx, "ProductService.UpdateProduct")
	defer span.End()

	span.SetAttributes(attribute.String("product.id", id))

	s.logger.InfoContext(ctx, "Updating product",
		slog.String("product_id", id),
	)

	updated, err := s.repo.Update(ctx, id, req.ToPatch())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to update product")
		s.logger.WarnContext(ctx, "Failed to update product",
			slog.String("product_id", id),
			slog.String("error", err.Error()),
		)
		result := "failure"
		if err == domain.ErrProductNotFound {
			result = "not_found"
		}
		s.recordOperation(ctx, "update", result)
		return nil, err
	}

	s.recordOperation(ctx, "update", "success")

	s.logger.InfoContext(ctx, "Product updated successfully",
		slog.String("product_id", id),
	)

	span.SetStatus(codes.Ok, "Product updated successfully")
	return dto.ToProductResponse(updated), nil
}

// DeleteProduct removes a product from the catalog
func (s *ProductService) DeleteProduct(ctx context.Context, id string) (*dto.ProductResponse, error) {
	ctx, span := s.tracer.Start(ctx, "ProductService.DeleteProduct")
	defer span.End()

	span.SetAttributes(attribute.String("product.id", id))

	s.logger.InfoContext(ctx, "Deleting product",
		slog.String("product_id", id),
	)

	// Look the product up first so the confirmation can name it.
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Product not found")
		s.recordOperation(ctx, "delete", "not_found")
		return nil, err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to delete product")
		s.logger.WarnContext(ctx, "Failed to delete product",
			slog.String("product_id", id),
			slog.String("error", err.Error()),
		)
		result := "failure"
		if err == domain.ErrProductNotFound {
			result = "not_found"
		}
		s.recordOperation(ctx, "delete", result)
		return nil, err
	}

	s.recordOperation(ctx, "delete", "success")

	s.logger.InfoContext(ctx, "Product deleted successfully",
		slog.String("product_id", id),
	)

	span.SetStatus(codes.Ok, "Product deleted successfully")
	return dto.ToProductResponse(product), nil
}

// GetProductByID retrieves a product by ID
func (s *ProductService) GetProductByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	ctx, span := s.tracer.Start(ctx, "ProductService.GetProductByID")
	defer span.End()

	span.SetAttributes(attribute.String("product.id", id))

	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Product not found")
		s.logger.WarnContext(ctx, "Product not found",
			slog.String("product_id", id),
		)
		s.recordOperation(ctx, "read", "not_found")
		return nil, err
	}

	s.recordOperation(ctx, "read", "success")

	span.SetStatus(codes.Ok, "Product retrieved successfully")
	return dto.ToProductResponse(product), nil
}

// ListProducts retrieves the full catalog in insertion order
func (s *ProductService) ListProducts(ctx context.Context) ([]*dto.ProductResponse, error) {
	ctx, span := s.tracer.Start(ctx, "ProductService.ListProducts")
	defer span.End()

	products, err := s.repo.FindAll(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to retrieve products")
		s.logger.ErrorContext(ctx, "Failed to list products",
			slog.String("error", err.Error()),
		)
		s.recordOperation(ctx, "list", "failure")
		return nil, err
	}

	span.SetAttributes(attribute.Int("product.count", len(products)))

	s.recordOperation(ctx, "list", "success")

	span.SetStatus(codes.Ok, "Products listed successfully")
	return dto.ToProductResponseList(products), nil
}
