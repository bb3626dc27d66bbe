package daos

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func uintPtr(v uint) *uint {
	return &v
}

func decimalPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestSearchProductsNoFilter(t *testing.T) {
	db := setupTestDB(t)
	seedProduct(t, db, 1, "滑鼠", "25.00", 1)
	seedProduct(t, db, 2, "鍵盤", "60.00", 1)
	seedProduct(t, db, 3, "螢幕", "90.00", 2)

	products, err := SearchProducts(db, ProductSearch{})
	require.NoError(t, err)
	assert.Len(t, products, 3)
}

func TestSearchProductsByCategory(t *testing.T) {
	db := setupTestDB(t)
	seedProduct(t, db, 1, "滑鼠", "25.00", 1)
	seedProduct(t, db, 2, "鍵盤", "60.00", 1)
	seedProduct(t, db, 3, "螢幕", "90.00", 2)

	products, err := SearchProducts(db, ProductSearch{CategoryID: uintPtr(1)})
	require.NoError(t, err)
	require.Len(t, products, 2)
	for _, product := range products {
		assert.Equal(t, uint(1), product.CategoryID)
	}
}

func TestSearchProductsByPriceRange(t *testing.T) {
	db := setupTestDB(t)
	seedProduct(t, db, 1, "滑鼠", "25.00", 1)
	seedProduct(t, db, 2, "鍵盤", "60.00", 1)
	seedProduct(t, db, 3, "螢幕", "90.00", 2)

	products, err := SearchProducts(db, ProductSearch{
		MinPrice: decimalPtr("30.00"),
		MaxPrice: decimalPtr("80.00"),
	})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "鍵盤", products[0].Name)
}

func TestSearchProductsBySubCategory(t *testing.T) {
	db := setupTestDB(t)
	product := seedProduct(t, db, 1, "滑鼠", "25.00", 1)
	seedProduct(t, db, 2, "鍵盤", "60.00", 1)

	require.NoError(t, db.Model(&product).Update("subcategory", "mouse").Error)

	sub := "mouse"
	products, err := SearchProducts(db, ProductSearch{SubCategory: &sub})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "滑鼠", products[0].Name)
}

func TestSearchProductsNoMatch(t *testing.T) {
	db := setupTestDB(t)
	seedProduct(t, db, 1, "滑鼠", "25.00", 1)

	products, err := SearchProducts(db, ProductSearch{CategoryID: uintPtr(99)})
	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestGetProductByID(t *testing.T) {
	db := setupTestDB(t)
	seedProduct(t, db, 1, "滑鼠", "25.00", 1)

	product, err := GetProductByID(db, 1)
	require.NoError(t, err)
	assert.Equal(t, "滑鼠", product.Name)
	assert.True(t, product.Price.Equal(decimal.RequireFromString("25.00")))
}

func TestGetProductByIDNotFound(t *testing.T) {
	db := setupTestDB(t)

	_, err := GetProductByID(db, 999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
