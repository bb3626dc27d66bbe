package daos

import (
	"errors"

	"EasyShop/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrNegativeQuantity = errors.New("商品數量不得為負數")

// 查詢使用者的購物車
// 以單一Join查詢取得shopping_cart與products，再組成購物車
// 查無資料時回傳空購物車，不視為錯誤
func GetCartByUserID(db *gorm.DB, userID uint) (models.ShoppingCart, error) {
	var rows []models.CartItem
	err := db.
		Joins("Product").
		Where("shopping_cart.user_id = ?", userID).
		Find(&rows).
		Error
	if err != nil {
		return models.ShoppingCart{}, err
	}

	return models.NewShoppingCart(userID, rows), nil
}

// 新增商品至購物車
// 以單一原子Upsert實作:無紀錄時新增數量1，已有紀錄則數量+1
// 避免同一使用者並發請求時讀取後寫入的競爭問題
func AddToCart(db *gorm.DB, productID uint, userID uint) error {
	item := models.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  1,
	}

	return db.
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"quantity": gorm.Expr("quantity + 1"),
			}),
		}).
		Create(&item).
		Error
}

// 修改購物車商品數量
// 數量為0時改為刪除該筆紀錄，購物車不儲存數量為0的紀錄
// 更新與刪除包在同一事務內，其他讀取不會看到數量為0的紀錄
// 查無紀錄時不做任何事，與AddToCart的新增行為不同
func EditCart(db *gorm.DB, productID uint, userID uint, quantity int) error {
	if quantity < 0 {
		return ErrNegativeQuantity
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if quantity == 0 {
			return tx.
				Where("user_id = ? AND product_id = ?", userID, productID).
				Delete(&models.CartItem{}).
				Error
		}

		return tx.
			Model(&models.CartItem{}).
			Where("user_id = ? AND product_id = ?", userID, productID).
			Update("quantity", quantity).
			Error
	})
}

// 清空使用者的購物車
func ClearCart(db *gorm.DB, userID uint) error {
	return db.
		Where("user_id = ?", userID).
		Delete(&models.CartItem{}).
		Error
}
