package handlers

import (
	"EasyShop/daos"
	"EasyShop/models"
	"encoding/json"
	"errors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"log"
	"net/http"
	"strconv"
)

const productsCacheKey = "products"

// 更新Redis中的商品快取
func UpdateProductToRedis(c *gin.Context, rdb *redis.Client, product *models.Product) (error, string) {
	score := strconv.Itoa(int(product.ProductID))

	err := rdb.ZRemRangeByScore(c, productsCacheKey, score, score).Err()
	if err != nil {
		return err, "無法將商品資料從Redis刪除"
	}

	productJSON, err := json.Marshal(product)
	if err != nil {
		return err, "無法序列化商品資料"
	}

	err = rdb.ZAdd(c, productsCacheKey, redis.Z{
		Score:  float64(product.ProductID),
		Member: productJSON,
	}).Err()
	if err != nil {
		return err, "無法將商品資料加入Redis"
	}

	return nil, ""
}

// 查詢商品列表
// 優先從Redis讀取，如快取為空則從資料庫讀取並回填
func GetProductListHandler(c *gin.Context, db *gorm.DB, rdb *redis.Client) {
	limit := c.DefaultQuery("limit", "10")
	limitInt, err := strconv.Atoi(limit)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "查詢數量輸入錯誤",
			"error":   err.Error(),
		})
		return
	}
	//限制最高查詢數量為50
	if limitInt > 50 {
		limitInt = 50
	}

	offset := c.DefaultQuery("offset", "0")
	offsetInt, err := strconv.Atoi(offset)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "offset輸入錯誤",
			"error":   err.Error(),
		})
		return
	}

	redisProducts, err := rdb.ZRange(c, productsCacheKey, int64(offsetInt), int64(offsetInt+limitInt-1)).Result()
	if err != nil || rdb.ZCard(c, productsCacheKey).Val() == 0 {
		products, err := daos.SearchProducts(db, daos.ProductSearch{})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"message": "無法讀取商品列表",
				"error":   err.Error(),
			})
			return
		}

		rdb.Del(c, productsCacheKey)

		for _, product := range products {
			productJSON, err := json.Marshal(product)
			if err != nil {
				log.Printf("無法序列化商品資料: %v\n", err)
				continue
			}

			err = rdb.ZAdd(c, productsCacheKey, redis.Z{
				Score:  float64(product.ProductID),
				Member: productJSON,
			}).Err()
			if err != nil {
				log.Printf("無法將商品資料加入Redis: %v\n", err)
				continue
			}
		}

		//再次嘗試從Redis讀取商品列表
		redisProducts, err = rdb.ZRange(c, productsCacheKey, int64(offsetInt), int64(offsetInt+limitInt-1)).Result()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"message": "無法從Redis讀取商品列表",
				"error":   err.Error(),
			})
			return
		}
	}

	var productsData []gin.H
	for _, redisProduct := range redisProducts {
		var productUnmarshal models.Product
		err = json.Unmarshal([]byte(redisProduct), &productUnmarshal)
		if err != nil {
			log.Printf("無法反序列化商品資料: %v\n", err)
			continue
		}

		productsData = append(productsData, gin.H{
			"productId": productUnmarshal.ProductID,
			"name":      productUnmarshal.Name,
			"price":     productUnmarshal.Price,
			"stock":     productUnmarshal.Stock,
			"featured":  productUnmarshal.Featured,
			"imageUrl":  productUnmarshal.ImageURL,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "成功讀取商品列表",
		"products":   productsData,
		"totalCount": rdb.ZCard(c, productsCacheKey).Val(),
	})
}

// 依條件搜尋商品
func SearchProductsHandler(c *gin.Context, db *gorm.DB) {
	var search daos.ProductSearch

	if cat := c.Query("cat"); cat != "" {
		categoryID, err := strconv.ParseUint(cat, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"message": "分類ID輸入錯誤",
				"error":   err.Error(),
			})
			return
		}
		id := uint(categoryID)
		search.CategoryID = &id
	}
	if minPrice := c.Query("minPrice"); minPrice != "" {
		price, err := decimal.NewFromString(minPrice)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"message": "最低價格輸入錯誤",
				"error":   err.Error(),
			})
			return
		}
		search.MinPrice = &price
	}
	if maxPrice := c.Query("maxPrice"); maxPrice != "" {
		price, err := decimal.NewFromString(maxPrice)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"message": "最高價格輸入錯誤",
				"error":   err.Error(),
			})
			return
		}
		search.MaxPrice = &price
	}
	if subCategory := c.Query("subCategory"); subCategory != "" {
		search.SubCategory = &subCategory
	}

	products, err := daos.SearchProducts(db, search)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "搜尋商品失敗",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, products)
}

// 查詢商品詳細資料
func GetProductDataHandler(c *gin.Context, db *gorm.DB) {
	productID, err := parseIDParam(c, "productID")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "商品ID輸入錯誤",
			"error":   err.Error(),
		})
		return
	}

	product, err := daos.GetProductByID(db, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "查無此商品",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "查詢商品資料失敗",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, product)
}
