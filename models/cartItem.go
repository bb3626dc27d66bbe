package models

// shopping_cart的單筆紀錄，複合主鍵(user_id, product_id)
// 不使用軟刪除，數量為0的紀錄一律直接刪除
type CartItem struct {
	UserID    uint    `gorm:"column:user_id;primaryKey;autoIncrement:false" json:"userId"`
	ProductID uint    `gorm:"column:product_id;primaryKey;autoIncrement:false" json:"productId"`
	Product   Product `gorm:"foreignKey:ProductID;references:ProductID" json:"product"`
	Quantity  uint    `gorm:"not null" json:"quantity"`
}

func (CartItem) TableName() string {
	return "shopping_cart"
}
