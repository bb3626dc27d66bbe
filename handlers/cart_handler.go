package handlers

import (
	"EasyShop/daos"
	"errors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"net/http"
)

// 查詢目前使用者的購物車
func GetCartHandler(c *gin.Context, db *gorm.DB) {
	userID, ok := c.Get("UserID")
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "無法取得使用者ID",
		})
		return
	}

	//查無資料時回傳空購物車，不視為錯誤
	cart, err := daos.GetCartByUserID(db, userID.(uint))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "查詢購物車失敗",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, cart)
}

// 新增商品至購物車，已有此商品則數量+1
func AddToCartHandler(c *gin.Context, db *gorm.DB) {
	userID, ok := c.Get("UserID")
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "無法取得使用者ID",
		})
		return
	}

	productID, err := parseIDParam(c, "productID")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "商品ID輸入錯誤",
			"error":   err.Error(),
		})
		return
	}

	//檢查商品是否存在
	_, err = daos.GetProductByID(db, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "查無此商品",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "查詢商品失敗",
			"error":   err.Error(),
		})
		return
	}

	err = daos.AddToCart(db, productID, userID.(uint))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "新增商品至購物車失敗",
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

	c.JSON(http.StatusOK, gin.H{
		"message": "成功新增商品至購物車",
		"cart":    cart,
	})
}

// 修改購物車商品數量，數量為0時刪除該筆紀錄
func UpdateCartItemQuantityHandler(c *gin.Context, db *gorm.DB) {
	userID, ok := c.Get("UserID")
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "無法取得使用者ID",
		})
		return
	}

	productID, err := parseIDParam(c, "productID")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "商品ID輸入錯誤",
			"error":   err.Error(),
		})
		return
	}

	var cartItemReq struct {
		Quantity *int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&cartItemReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "綁定請求資料錯誤",
			"error":   err.Error(),
		})
		return
	}

	err = daos.EditCart(db, productID, userID.(uint), *cartItemReq.Quantity)
	if err != nil {
		if errors.Is(err, daos.ErrNegativeQuantity) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "更新購物車商品數量失敗",
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

	c.JSON(http.StatusOK, gin.H{
		"message": "成功更新購物車商品數量",
		"cart":    cart,
	})
}

// 清空目前使用者的購物車
func ClearCartHandler(c *gin.Context, db *gorm.DB) {
	userID, ok := c.Get("UserID")
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "無法取得使用者ID",
		})
		return
	}

	err := daos.ClearCart(db, userID.(uint))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "清空購物車失敗",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "成功清空購物車",
	})
}
