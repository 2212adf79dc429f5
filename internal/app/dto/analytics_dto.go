package dto

import "github.com/mrops-br/inventory-dashboard-api/internal/domain"

// DashboardResponse is the overview page payload.
type DashboardResponse struct {
	TotalProducts  int                `json:"total_products"`
	InventoryValue float64            `json:"inventory_value"`
	LowStockItems  int                `json:"low_stock_items"`
	Categories     int                `json:"categories"`
	RecentProducts []*ProductResponse `json:"recent_products"`
}

// CategoryCountResponse pairs a category with its product count.
type CategoryCountResponse struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// ValuedProductResponse is a ranking entry in the most-valuable view.
type ValuedProductResponse struct {
	Product   *ProductResponse `json:"product"`
	LineValue float64          `json:"line_value"`
}

// StockBucketsResponse reports the stock-status partition counts.
type StockBucketsResponse struct {
	OutOfStock  int `json:"out_of_stock"`
	LowStock    int `json:"low_stock"`
	WellStocked int `json:"well_stocked"`
}

// AnalyticsResponse is the analytics page payload.
type AnalyticsResponse struct {
	TotalValue    float64                  `json:"total_value"`
	AveragePrice  float64                  `json:"average_price"`
	TotalStock    int                      `json:"total_stock"`
	CategoryCount int                      `json:"category_count"`
	TopCategories []*CategoryCountResponse `json:"top_categories"`
	MostValuable  []*ValuedProductResponse `json:"most_valuable"`
	StockBuckets  StockBucketsResponse     `json:"stock_buckets"`
}

// ToDashboardResponse builds the overview payload from domain aggregates.
func ToDashboardResponse(summary domain.CatalogSummary, recent []*domain.Product) *DashboardResponse {
	return &DashboardResponse{
		TotalProducts:  summary.TotalProducts,
		InventoryValue: summary.TotalValue,
		LowStockItems:  summary.LowStockCount,
		Categories:     summary.CategoryCount,
		RecentProducts: ToProductResponseList(recent),
	}
}

// ToAnalyticsResponse builds the analytics payload from domain aggregates.
func ToAnalyticsResponse(
	summary domain.CatalogSummary,
	topCategories []domain.CategoryCount,
	mostValuable []domain.ValuedProduct,
	buckets domain.StockBucketCounts,
) *AnalyticsResponse {
	categories := make([]*CategoryCountResponse, len(topCategories))
	for i, c := range topCategories {
		categories[i] = &CategoryCountResponse{Category: c.Category, Count: c.Count}
	}

	valuable := make([]*ValuedProductResponse, len(mostValuable))
	for i, v := range mostValuable {
		valuable[i] = &ValuedProductResponse{
			Product:   ToProductResponse(v.Product),
			LineValue: v.LineValue,
		}
	}

	return &AnalyticsResponse{
		TotalValue:    summary.TotalValue,
		AveragePrice:  summary.AveragePrice,
		TotalStock:    summary.TotalStock,
		CategoryCount: summary.CategoryCount,
		TopCategories: categories,
		MostValuable:  valuable,
		StockBuckets: StockBucketsResponse{
			OutOfStock:  buckets.OutOfStock,
			LowStock:    buckets.LowStock,
			WellStocked: buckets.WellStocked,
		},
	}
}
