package daos

import (
	"testing"

	"EasyShop/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Category{},
		&models.Product{},
		&models.CartItem{},
	)
	require.NoError(t, err)

	return db
}

func seedCategory(t *testing.T, db *gorm.DB, name string, description string) models.Category {
	t.Helper()

	category := models.Category{Name: name, Description: description}
	require.NoError(t, db.Create(&category).Error)
	return category
}

func seedProduct(t *testing.T, db *gorm.DB, productID uint, name string, price string, categoryID uint) models.Product {
	t.Helper()

	product := models.Product{
		ProductID:   productID,
		Name:        name,
		Price:       decimal.RequireFromString(price),
		CategoryID:  categoryID,
		SubCategory: "general",
		Stock:       100,
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}
