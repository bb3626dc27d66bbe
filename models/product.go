package models

import "github.com/shopspring/decimal"

type Product struct {
	ProductID   uint            `gorm:"column:product_id;primarykey" json:"productId"`
	Name        string          `gorm:"not null" json:"name"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	CategoryID  uint            `gorm:"column:category_id;index" json:"categoryId"`
	Description string          `json:"description"`
	SubCategory string          `gorm:"column:subcategory" json:"subCategory"`
	Stock       uint            `gorm:"not null" json:"stock"`
	Featured    bool            `json:"featured"`
	ImageURL    string          `gorm:"column:image_url" json:"imageUrl"`
}

func (Product) TableName() string {
	return "products"
}
