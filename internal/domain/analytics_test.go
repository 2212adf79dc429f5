package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(id, category string, price float64, stock int) *Product {
	return &Product{
		ID:          id,
		Name:        "Product " + id,
		Description: "desc",
		Category:    category,
		Price:       price,
		Stock:       stock,
	}
}

func TestSummarize_EmptyCatalog(t *testing.T) {
	s := Summarize(nil)

	assert.Zero(t, s.TotalProducts)
	assert.Zero(t, s.TotalValue)
	assert.Zero(t, s.AveragePrice, "average price must be 0 on an empty catalog, not NaN")
	assert.Zero(t, s.TotalStock)
	assert.Zero(t, s.CategoryCount)
	assert.Zero(t, s.LowStockCount)
}

func TestSummarize(t *testing.T) {
	products := []*Product{
		product("1", "Electronics", 10, 0),
		product("2", "Electronics", 20, 5),
		product("3", "Furniture", 5, 20),
	}

	s := Summarize(products)

	assert.Equal(t, 3, s.TotalProducts)
	assert.InDelta(t, 200.0, s.TotalValue, 1e-9) // 0 + 100 + 100
	assert.InDelta(t, 35.0/3.0, s.AveragePrice, 1e-9)
	assert.Equal(t, 25, s.TotalStock)
	assert.Equal(t, 2, s.CategoryCount)
	assert.Equal(t, 2, s.LowStockCount) // stock 0 and stock 5
}

func TestMostValuable_TieBrokenByCatalogOrder(t *testing.T) {
	products := []*Product{
		product("1", "Electronics", 10, 0),  // value 0
		product("2", "Electronics", 20, 5),  // value 100
		product("3", "Furniture", 5, 20),    // value 100, tied with "2"
	}

	ranked := MostValuable(products)
	require.Len(t, ranked, 3)

	// "2" comes first in the catalog, so it wins the tie at 100.
	assert.Equal(t, "2", ranked[0].Product.ID)
	assert.InDelta(t, 100.0, ranked[0].LineValue, 1e-9)
	assert.Equal(t, "3", ranked[1].Product.ID)
	assert.Equal(t, "1", ranked[2].Product.ID)
}

func TestMostValuable_TruncatesToTopN(t *testing.T) {
	var products []*Product
	for i := 0; i < 8; i++ {
		products = append(products, product(string(rune('a'+i)), "c", float64(i+1), 10))
	}

	ranked := MostValuable(products)
	require.Len(t, ranked, TopN)
	assert.Equal(t, "h", ranked[0].Product.ID)
}

func TestStockBuckets_PartitionCatalogExactly(t *testing.T) {
	products := []*Product{
		product("1", "a", 10, 0),
		product("2", "a", 20, 5),
		product("3", "b", 5, 20),
		product("4", "b", 5, 9),
		product("5", "b", 5, 10),
	}

	b := StockBuckets(products)

	assert.Equal(t, 1, b.OutOfStock)
	assert.Equal(t, 2, b.LowStock) // stock 5 and 9
	assert.Equal(t, 2, b.WellStocked)
	assert.Equal(t, len(products), b.OutOfStock+b.LowStock+b.WellStocked,
		"bucket counts must sum to catalog size")
}

func TestStockStatusOf_Boundaries(t *testing.T) {
	assert.Equal(t, StockStatusOut, StockStatusOf(0))
	assert.Equal(t, StockStatusLow, StockStatusOf(1))
	assert.Equal(t, StockStatusLow, StockStatusOf(9))
	assert.Equal(t, StockStatusWell, StockStatusOf(10))
	assert.Equal(t, StockStatusWell, StockStatusOf(500))
}

func TestCategoryDistribution_FirstEncounterOrder(t *testing.T) {
	products := []*Product{
		product("1", "Furniture", 1, 1),
		product("2", "Electronics", 1, 1),
		product("3", "Electronics", 1, 1),
		product("4", "Furniture", 1, 1),
		product("5", "Toys", 1, 1),
	}

	dist := CategoryDistribution(products)
	require.Len(t, dist, 3)
	assert.Equal(t, CategoryCount{"Furniture", 2}, dist[0])
	assert.Equal(t, CategoryCount{"Electronics", 2}, dist[1])
	assert.Equal(t, CategoryCount{"Toys", 1}, dist[2])
}

func TestTopCategories_SortedWithStableTies(t *testing.T) {
	products := []*Product{
		product("1", "Furniture", 1, 1),
		product("2", "Electronics", 1, 1),
		product("3", "Electronics", 1, 1),
		product("4", "Toys", 1, 1),
		product("5", "Toys", 1, 1),
		product("6", "Books", 1, 1),
	}

	top := TopCategories(products)
	require.Len(t, top, 4)

	// Electronics and Toys tie at 2; Electronics appeared first.
	assert.Equal(t, "Electronics", top[0].Category)
	assert.Equal(t, "Toys", top[1].Category)
	// Furniture and Books tie at 1; Furniture appeared first.
	assert.Equal(t, "Furniture", top[2].Category)
	assert.Equal(t, "Books", top[3].Category)
}

func TestTopCategories_TruncatesToTopN(t *testing.T) {
	var products []*Product
	for i := 0; i < 7; i++ {
		products = append(products, product(string(rune('a'+i)), "cat"+string(rune('a'+i)), 1, 1))
	}

	top := TopCategories(products)
	assert.Len(t, top, TopN)
}

func TestRecentProducts(t *testing.T) {
	var products []*Product
	for i := 0; i < 7; i++ {
		products = append(products, product(string(rune('a'+i)), "c", 1, 1))
	}

	recent := RecentProducts(products)
	require.Len(t, recent, TopN)
	assert.Equal(t, "a", recent[0].ID)

	short := products[:2]
	assert.Len(t, RecentProducts(short), 2)
	assert.Empty(t, RecentProducts(nil))
}
