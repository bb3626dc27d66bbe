package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// 下單當下的商品快照，SalesPrice為成交單價
type OrderItem struct {
	gorm.Model
	OrderID    uint `gorm:"foreignKey:OrderID"`
	ProductID  uint
	Product    Product         `gorm:"foreignKey:ProductID;references:ProductID"`
	SalesPrice decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Quantity   uint            `gorm:"not null"`
}
