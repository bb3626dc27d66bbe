package models

import "github.com/shopspring/decimal"

// 購物車單項商品，包含商品快照與數量
type ShoppingCartItem struct {
	Product   Product         `json:"product"`
	UserID    uint            `json:"userId"`
	Quantity  uint            `json:"quantity"`
	LineTotal decimal.Decimal `json:"lineTotal"`
}

// 以商品ID為Key的購物車，每次查詢時從資料庫重新建立
type ShoppingCart struct {
	UserID uint                      `json:"userId"`
	Items  map[uint]ShoppingCartItem `json:"items"`
	Total  decimal.Decimal           `json:"total"`
}

// 計算單項商品小計
func lineTotal(product Product, quantity uint) decimal.Decimal {
	return product.Price.Mul(decimal.NewFromInt(int64(quantity)))
}

// 將shopping_cart與products Join出的紀錄轉換為購物車
// 純函式，不依賴資料庫
func NewShoppingCart(userID uint, rows []CartItem) ShoppingCart {
	cart := ShoppingCart{
		UserID: userID,
		Items:  make(map[uint]ShoppingCartItem),
		Total:  decimal.Zero,
	}

	for _, row := range rows {
		item := ShoppingCartItem{
			Product:   row.Product,
			UserID:    userID,
			Quantity:  row.Quantity,
			LineTotal: lineTotal(row.Product, row.Quantity),
		}
		cart.Items[row.ProductID] = item
		cart.Total = cart.Total.Add(item.LineTotal)
	}

	return cart
}
