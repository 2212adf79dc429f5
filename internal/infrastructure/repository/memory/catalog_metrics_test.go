package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func findGauge(t *testing.T, rm metricdata.ResourceMetrics, name string) metricdata.Metrics {
	t.Helper()
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name == name {
				return m
			}
		}
	}
	t.Fatalf("metric %s not found", name)
	return metricdata.Metrics{}
}

func TestCatalogMetrics_TrackMutations(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	defer provider.Shutdown(ctx)

	_, err := RegisterCatalogMetrics(repo, provider.Meter("test"))
	require.NoError(t, err)

	require.NoError(t, repo.Create(ctx, newTestProduct(t, "A", 10, 3)))
	require.NoError(t, repo.Create(ctx, newTestProduct(t, "B", 5, 2)))

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))

	size := findGauge(t, rm, "catalog.size")
	sizeData, ok := size.Data.(metricdata.Gauge[int64])
	require.True(t, ok)
	require.Len(t, sizeData.DataPoints, 1)
	assert.Equal(t, int64(2), sizeData.DataPoints[0].Value)

	stock := findGauge(t, rm, "catalog.stock.units")
	stockData, ok := stock.Data.(metricdata.Gauge[int64])
	require.True(t, ok)
	assert.Equal(t, int64(5), stockData.DataPoints[0].Value)

	value := findGauge(t, rm, "catalog.inventory.value")
	valueData, ok := value.Data.(metricdata.Gauge[float64])
	require.True(t, ok)
	assert.InDelta(t, 40.0, valueData.DataPoints[0].Value, 1e-9)
}
