package service

import (
	"context"
	"log/slog"

	"github.com/mrops-br/inventory-dashboard-api/internal/app/dto"
	"github.com/mrops-br/inventory-dashboard-api/internal/domain"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// AnalyticsService computes the derived dashboard and analytics views.
// Every read folds the live catalog snapshot; nothing is cached.
type AnalyticsService struct {
	repo              domain.CatalogRepository
	tracer            trace.Tracer
	logger            *slog.Logger
	analyticsRequests metric.Int64Counter
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(
	repo domain.CatalogRepository,
	tracer trace.Tracer,
	meter metric.Meter,
	logger *slog.Logger,
) *AnalyticsService {
	analyticsRequests, _ := meter.Int64Counter(
		"analytics.requests",
		metric.WithDescription("Total number of derived-view computations"),
	)

	return &AnalyticsService{
		repo:              repo,
		tracer:            tracer,
		logger:            logger,
		analyticsRequests: analyticsRequests,
	}
}

// Dashboard computes the overview aggregates and recent additions.
func (s *AnalyticsService) Dashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	ctx, span := s.tracer.Start(ctx, "AnalyticsService.Dashboard")
	defer span.End()

	products, err := s.repo.FindAll(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to read catalog")
		return nil, err
	}

	summary := domain.Summarize(products)
	recent := domain.RecentProducts(products)

	span.SetAttributes(
		attribute.Int("product.count", summary.TotalProducts),
		attribute.Float64("catalog.total_value", summary.TotalValue),
	)

	s.analyticsRequests.Add(ctx, 1,
		metric.WithAttributes(attribute.String("view", "dashboard")),
	)

	s.logger.DebugContext(ctx, "Dashboard computed",
		slog.Int("products", summary.TotalProducts),
		slog.Float64("total_value", summary.TotalValue),
	)

	span.SetStatus(codes.Ok, "Dashboard computed successfully")
	return dto.ToDashboardResponse(summary, recent), nil
}

// Analytics computes totals, rankings, and the stock-status partition.
func (s *AnalyticsService) Analytics(ctx context.Context) (*dto.AnalyticsResponse, error) {
	ctx, span := s.tracer.Start(ctx, "AnalyticsService.Analytics")
	defer span.End()

	products, err := s.repo.FindAll(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to read catalog")
		return nil, err
	}

	summary := domain.Summarize(products)
	topCategories := domain.TopCategories(products)
	mostValuable := domain.MostValuable(products)
	buckets := domain.StockBuckets(products)

	span.SetAttributes(
		attribute.Int("product.count", summary.TotalProducts),
		attribute.Int("catalog.categories", summary.CategoryCount),
	)

	s.analyticsRequests.Add(ctx, 1,
		metric.WithAttributes(attribute.String("view", "analytics")),
	)

	s.logger.DebugContext(ctx, "Analytics computed",
		slog.Int("products", summary.TotalProducts),
		slog.Int("categories", summary.CategoryCount),
	)

	span.SetStatus(codes.Ok, "Analytics computed successfully")
	return dto.ToAnalyticsResponse(summary, topCategories, mostValuable, buckets), nil
}
