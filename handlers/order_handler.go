package handlers

import (
	"EasyShop/daos"
	"EasyShop/models"
	"errors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"net/http"
)

// 送出訂單
// 以目前購物車內容建立訂單:鎖定商品、檢查並扣除庫存、
// 以成交價建立訂單明細，成功後清除購物車內對應商品
func SendOrderHandler(c *gin.Context, db *gorm.DB, rdb *redis.Client) {
	userID, ok := c.Get("UserID")
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "無法取得使用者ID",
		})
		return
	}

	var orderReq struct {
		Name           string `json:"name" binding:"required"`
		Address        string `json:"address" binding:"required"`
		Phone          string `json:"phone" binding:"required"`
		ShippingMethod string `json:"shippingMethod" binding:"required"`
	}
	if err := c.ShouldBindJSON(&orderReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "綁定請求資料錯誤",
			"error":   err.Error(),
		})
		return
	}

	cart, err := daos.GetCartByUserID(db, userID.(uint))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "查詢購物車失敗",
			"error":   err.Error(),
		})
		return
	}
	if len(cart.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "購物車是空的",
		})
		return
	}

	newOrder := models.Order{
		UserID:         userID.(uint),
		Name:           orderReq.Name,
		Address:        orderReq.Address,
		Phone:          orderReq.Phone,
		ShippingMethod: orderReq.ShippingMethod,
		Status:         "待處理",
	}

	var orderProductIDs []uint
	var updatedProducts []models.Product
	totalPrice := decimal.Zero

	err = db.Transaction(func(tx *gorm.DB) error {
		for productID, cartItem := range cart.Items {
			//鎖定商品紀錄避免並發下單超賣
			var product models.Product
			if err := tx.
				Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&product, "product_id = ?", productID).
				Error; err != nil {
				return err
			}

			if product.Stock < cartItem.Quantity {
				return errors.New("商品庫存不足: " + product.Name)
			}

			product.Stock -= cartItem.Quantity
			if err := tx.Save(&product).Error; err != nil {
				return err
			}

			linePrice := product.Price.Mul(decimal.NewFromInt(int64(cartItem.Quantity)))
			totalPrice = totalPrice.Add(linePrice)

			newOrder.OrderItems = append(newOrder.OrderItems, models.OrderItem{
				ProductID:  productID,
				SalesPrice: product.Price,
				Quantity:   cartItem.Quantity,
			})
			orderProductIDs = append(orderProductIDs, productID)
			updatedProducts = append(updatedProducts, product)
		}

		newOrder.Total = totalPrice
		if err := tx.Create(&newOrder).Error; err != nil {
			return err
		}

		//清除購物車內已下單的商品
		return tx.
			Where("user_id = ? AND product_id IN ?", userID, orderProductIDs).
			Delete(&models.CartItem{}).
			Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "送出訂單失敗",
			"error":   err.Error(),
		})
		return
	}

	//同步更新Redis商品快取
	for i := range updatedProducts {
		err, msg := UpdateProductToRedis(c, rdb, &updatedProducts[i])
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"message": "訂單已送出，但" + msg,
				"error":   err.Error(),
			})
			return
		}
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "訂單已送出，成功清除購物車對應商品",
		"orderID": newOrder.ID,
		"total":   newOrder.Total,
	})
}

func GetOrderListHandler(c *gin.Context, db *gorm.DB) {
	userID, ok := c.Get("UserID")
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "無法取得使用者ID",
		})
		return
	}

	var orders []models.Order
	err := db.Where("user_id = ?", userID).Find(&orders).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "查詢訂單列表失敗",
			"error":   err.Error(),
		})
		return
	}

	var orderList []gin.H
	for _, order := range orders {
		orderList = append(orderList, gin.H{
			"OrderID":        order.ID,
			"OrderTime":      order.CreatedAt,
			"ShippingMethod": order.ShippingMethod,
			"Total":          order.Total,
			"Status":         order.Status,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "成功查詢訂單列表",
		"orderList": orderList,
	})
}

func GetOrderDataHandler(c *gin.Context, db *gorm.DB) {
	userID, ok := c.Get("UserID")
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "無法取得使用者ID",
		})
		return
	}

	orderID, err := parseIDParam(c, "orderID")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "訂單ID輸入錯誤",
			"error":   err.Error(),
		})
		return
	}

	var order models.Order
	err = db.
		Where("id = ? AND user_id = ?", orderID, userID).
		Preload("OrderItems").
		Preload("OrderItems.Product").
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "查無此訂單",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "查詢訂單失敗",
			"error":   err.Error(),
		})
		return
	}

	var orderItemsData []gin.H
	for _, orderItem := range order.OrderItems {
		orderItemsData = append(orderItemsData, gin.H{
			"ProductID":  orderItem.ProductID,
			"Name":       orderItem.Product.Name,
			"SalesPrice": orderItem.SalesPrice,
			"ImageURL":   orderItem.Product.ImageURL,
			"Quantity":   orderItem.Quantity,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"message":        "成功查詢訂單",
		"OrderID":        order.ID,
		"Name":           order.Name,
		"Address":        order.Address,
		"Phone":          order.Phone,
		"ShippingMethod": order.ShippingMethod,
		"Total":          order.Total,
		"OrderTime":      order.CreatedAt,
		"Status":         order.Status,
		"orderItemsData": orderItemsData,
	})
}
