package domain

import "sort"

// Derived views over a catalog snapshot. Everything here is a pure
// function of its input slice and is recomputed on every read; the
// catalog is small enough that caching would only buy staleness bugs.

const (
	// LowStockThreshold marks products with fewer units as low stock.
	LowStockThreshold = 10

	// TopN bounds the ranking views.
	TopN = 5
)

// StockStatus classifies a product's stock level.
type StockStatus string

const (
	StockStatusOut  StockStatus = "out_of_stock"
	StockStatusLow  StockStatus = "low_stock"
	StockStatusWell StockStatus = "well_stocked"
)

// StockStatusOf buckets a stock count: 0, 1-9, 10+.
func StockStatusOf(stock int) StockStatus {
	switch {
	case stock <= 0:
		return StockStatusOut
	case stock < LowStockThreshold:
		return StockStatusLow
	default:
		return StockStatusWell
	}
}

// CatalogSummary holds the headline aggregates shown on the dashboard.
type CatalogSummary struct {
	TotalProducts int
	TotalValue    float64
	AveragePrice  float64
	TotalStock    int
	CategoryCount int
	LowStockCount int
}

// Summarize folds the snapshot into its headline aggregates.
// The empty catalog yields all zeroes; average price is defined as 0
// rather than dividing by zero.
func Summarize(products []*Product) CatalogSummary {
	s := CatalogSummary{TotalProducts: len(products)}

	categories := make(map[string]struct{})
	priceSum := 0.0
	for _, p := range products {
		s.TotalValue += p.LineValue()
		s.TotalStock += p.Stock
		priceSum += p.Price
		categories[p.Category] = struct{}{}
		if p.Stock < LowStockThreshold {
			s.LowStockCount++
		}
	}
	s.CategoryCount = len(categories)
	if len(products) > 0 {
		s.AveragePrice = priceSum / float64(len(products))
	}
	return s
}

// CategoryCount pairs a category label with the number of products
// carrying it.
type CategoryCount struct {
	Category string
	Count    int
}

// CategoryDistribution counts products per category label, in the
// order each label is first encountered in the snapshot.
func CategoryDistribution(products []*Product) []CategoryCount {
	index := make(map[string]int)
	var dist []CategoryCount
	for _, p := range products {
		i, ok := index[p.Category]
		if !ok {
			i = len(dist)
			index[p.Category] = i
			dist = append(dist, CategoryCount{Category: p.Category})
		}
		dist[i].Count++
	}
	return dist
}

// TopCategories returns the category distribution sorted by count
// descending, ties kept in first-encountered order, truncated to TopN.
func TopCategories(products []*Product) []CategoryCount {
	dist := CategoryDistribution(products)
	sort.SliceStable(dist, func(i, j int) bool {
		return dist[i].Count > dist[j].Count
	})
	if len(dist) > TopN {
		dist = dist[:TopN]
	}
	return dist
}

// ValuedProduct pairs a product with its line value for ranking.
type ValuedProduct struct {
	Product   *Product
	LineValue float64
}

// MostValuable ranks products by line value (price x stock) descending,
// ties kept in catalog order, truncated to TopN.
func MostValuable(products []*Product) []ValuedProduct {
	ranked := make([]ValuedProduct, len(products))
	for i, p := range products {
		ranked[i] = ValuedProduct{Product: p, LineValue: p.LineValue()}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].LineValue > ranked[j].LineValue
	})
	if len(ranked) > TopN {
		ranked = ranked[:TopN]
	}
	return ranked
}

// StockBucketCounts partitions the catalog by stock status. Every
// product lands in exactly one bucket, so the counts always sum to the
// snapshot size.
type StockBucketCounts struct {
	OutOfStock  int
	LowStock    int
	WellStocked int
}

// StockBuckets counts products per stock status bucket.
func StockBuckets(products []*Product) StockBucketCounts {
	var b StockBucketCounts
	for _, p := range products {
		switch StockStatusOf(p.Stock) {
		case StockStatusOut:
			b.OutOfStock++
		case StockStatusLow:
			b.LowStock++
		default:
			b.WellStocked++
		}
	}
	return b
}

// RecentProducts returns the first TopN entries of the snapshot in
// catalog order, for the dashboard's recent-additions panel.
func RecentProducts(products []*Product) []*Product {
	if len(products) > TopN {
		return products[:TopN]
	}
	return products
}
