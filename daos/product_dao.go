package daos

import (
	"EasyShop/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// 商品搜尋條件，nil代表不以該條件過濾
type ProductSearch struct {
	CategoryID  *uint
	MinPrice    *decimal.Decimal
	MaxPrice    *decimal.Decimal
	SubCategory *string
}

// 依條件搜尋商品，查無資料時回傳空切片
func SearchProducts(db *gorm.DB, search ProductSearch) ([]models.Product, error) {
	query := db.Model(&models.Product{})
	if search.CategoryID != nil {
		query = query.Where("category_id = ?", *search.CategoryID)
	}
	if search.MinPrice != nil {
		query = query.Where("price >= ?", *search.MinPrice)
	}
	if search.MaxPrice != nil {
		query = query.Where("price <= ?", *search.MaxPrice)
	}
	if search.SubCategory != nil {
		query = query.Where("subcategory = ?", *search.SubCategory)
	}

	products := make([]models.Product, 0)
	err := query.Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// 以ID查詢商品，查無資料時回傳gorm.ErrRecordNotFound
func GetProductByID(db *gorm.DB, productID uint) (models.Product, error) {
	var product models.Product
	err := db.First(&product, "product_id = ?", productID).Error
	if err != nil {
		return models.Product{}, err
	}
	return product, nil
}
