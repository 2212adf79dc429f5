package memory

import (
	"context"
	"math"
	"sync/atomic"

	"github.com/mrops-br/inventory-dashboard-api/internal/domain"
	"go.opentelemetry.io/otel/metric"
)

// CatalogMetrics exports catalog-level gauges. It observes the catalog
// through the repository's subscription, so the reported values always
// reflect the latest committed mutation.
type CatalogMetrics struct {
	size       atomic.Int64
	totalStock atomic.Int64
	valueBits  atomic.Uint64
}

// RegisterCatalogMetrics subscribes to the repository and registers
// observable gauges on the meter.
func RegisterCatalogMetrics(repo *CatalogRepository, meter metric.Meter) (*CatalogMetrics, error) {
	m := &CatalogMetrics{}
	m.observe(repo.Snapshot())
	repo.Subscribe(m.observe)

	sizeGauge, err := meter.Int64ObservableGauge(
		"catalog.size",
		metric.WithDescription("Number of products in the catalog"),
	)
	if err != nil {
		return nil, err
	}

	stockGauge, err := meter.Int64ObservableGauge(
		"catalog.stock.units",
		metric.WithDescription("Total stock units across the catalog"),
	)
	if err != nil {
		return nil, err
	}

	valueGauge, err := meter.Float64ObservableGauge(
		"catalog.inventory.value",
		metric.WithDescription("Total inventory value (price x stock summed)"),
	)
	if err != nil {
		return nil, err
	}

	_, err = meter.RegisterCallback(
		func(_ context.Context, o metric.Observer) error {
			o.ObserveInt64(sizeGauge, m.size.Load())
			o.ObserveInt64(stockGauge, m.totalStock.Load())
			o.ObserveFloat64(valueGauge, math.Float64frombits(m.valueBits.Load()))
			return nil
		},
		sizeGauge, stockGauge, valueGauge,
	)
	if err != nil {
		return nil, err
	}

	return m, nil
}

func (m *CatalogMetrics) observe(snapshot []domain.Product) {
	size := int64(len(snapshot))
	var stock int64
	var value float64
	for i := range snapshot {
		stock += int64(snapshot[i].Stock)
		value += snapshot[i].LineValue()
	}
	m.size.Store(size)
	m.totalStock.Store(stock)
	m.valueBits.Store(math.Float64bits(value))
}
