package handlers

import (
	"EasyShop/daos"
	"EasyShop/models"
	"errors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

func isValidImageExtensions(file *multipart.FileHeader) bool {
	allowExtensions := []string{".jpg", ".jpeg", ".png"}
	fileExt := strings.ToLower(filepath.Ext(file.Filename))
	for _, allowExt := range allowExtensions {
		if fileExt == allowExt {
			return true
		}
	}
	return false
}

// 以UUID產生不重複的檔名
func makeUniqueFileName(file *multipart.FileHeader) string {
	fileExt := filepath.Ext(file.Filename)
	return uuid.New().String() + fileExt
}

// 查詢使用者列表
func GetUserListHandler(c *gin.Context, db *gorm.DB) {
	var userList []struct {
		Id       uint
		Username string
	}
	err := db.
		Model(&models.User{}).
		Select("Id", "Username").
		Find(&userList).
		Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "無法獲取使用者列表",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "成功獲取使用者列表",
		"userList": userList,
	})
}

func UploadImageHandler(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "綁定圖片失敗",
			"error":   err.Error(),
		})
		return
	}

	if !isValidImageExtensions(file) {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "圖片檔案格式錯誤",
		})
		return
	}

	uploadsDir := "./uploads"
	//檢查uploads資料夾是否存在，如不存在則創建
	_, err = os.Stat(uploadsDir)
	if err != nil {
		if os.IsNotExist(err) {
			if err := os.Mkdir(uploadsDir, 0755); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{
					"message": "建立uploads資料夾失敗",
					"error":   err.Error(),
				})
				return
			}
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{
				"message": "檢查uploads資料夾失敗",
				"error":   err.Error(),
			})
			return
		}
	}

	imageName := makeUniqueFileName(file)
	filePath := filepath.Join(uploadsDir, imageName)
	if err := c.SaveUploadedFile(file, filePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "儲存圖片失敗",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "成功上傳圖片",
		"imagePath": "/" + filepath.ToSlash(filePath),
	})
}

func CreateProductHandler(c *gin.Context, db *gorm.DB, rdb *redis.Client) {
	var newProduct struct {
		Name        string          `json:"name" binding:"required"`
		Price       decimal.Decimal `json:"price" binding:"required"`
		CategoryID  uint            `json:"categoryId" binding:"required"`
		Stock       uint            `json:"stock"`
		ImageURL    string          `json:"imageUrl"`
		Description string          `json:"description"`
		SubCategory string          `json:"subCategory"`
		Featured    bool            `json:"featured"`
	}
	err := c.ShouldBindJSON(&newProduct)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "綁定請求資料錯誤",
			"error":   err.Error(),
		})
		return
	}

	//檢查商品分類是否存在
	_, err = daos.GetCategoryByID(db, newProduct.CategoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "查無此商品分類",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "查詢商品分類失敗",
			"error":   err.Error(),
		})
		return
	}

	product := models.Product{
		Name:        newProduct.Name,
		Price:       newProduct.Price,
		CategoryID:  newProduct.CategoryID,
		Stock:       newProduct.Stock,
		ImageURL:    newProduct.ImageURL,
		Description: newProduct.Description,
		SubCategory: newProduct.SubCategory,
		Featured:    newProduct.Featured,
	}

	err = db.Create(&product).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "新增商品失敗",
			"error":   err.Error(),
		})
		return
	}

	err, msg := UpdateProductToRedis(c, rdb, &product)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": msg,
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "成功新增商品",
		"product": product,
	})
}

func UpdateProductHandler(c *gin.Context, db *gorm.DB, rdb *redis.Client) {
	productID, err := parseIDParam(c, "productID")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "商品ID輸入錯誤",
			"error":   err.Error(),
		})
		return
	}

	var productDataReq struct {
		Name        *string          `json:"name"`
		Price       *decimal.Decimal `json:"price"`
		CategoryID  *uint            `json:"categoryId"`
		Stock       *uint            `json:"stock"`
		ImageURL    *string          `json:"imageUrl"`
		Description *string          `json:"description"`
		SubCategory *string          `json:"subCategory"`
		Featured    *bool            `json:"featured"`
	}
	err = c.ShouldBindJSON(&productDataReq)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "綁定請求資料錯誤",
			"error":   err.Error(),
		})
		return
	}

	var product models.Product
	err = db.First(&product, "product_id = ?", productID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
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

	//只覆蓋有提供的欄位
	if productDataReq.Name != nil {
		product.Name = *productDataReq.Name
	}
	if productDataReq.Price != nil {
		product.Price = *productDataReq.Price
	}
	if productDataReq.CategoryID != nil {
		product.CategoryID = *productDataReq.CategoryID
	}
	if productDataReq.Stock != nil {
		product.Stock = *productDataReq.Stock
	}
	if productDataReq.ImageURL != nil {
		product.ImageURL = *productDataReq.ImageURL
	}
	if productDataReq.Description != nil {
		product.Description = *productDataReq.Description
	}
	if productDataReq.SubCategory != nil {
		product.SubCategory = *productDataReq.SubCategory
	}
	if productDataReq.Featured != nil {
		product.Featured = *productDataReq.Featured
	}

	err = db.Save(&product).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "修改商品資料失敗",
			"error":   err.Error(),
		})
		return
	}

	err, msg := UpdateProductToRedis(c, rdb, &product)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": msg,
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "成功修改商品資料",
		"product": product,
	})
}

func DeleteProductHandler(c *gin.Context, db *gorm.DB, rdb *redis.Client) {
	productID, err := parseIDParam(c, "productID")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "商品ID輸入錯誤",
			"error":   err.Error(),
		})
		return
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		//連同所有購物車內的此商品一併刪除
		if err := tx.Where("product_id = ?", productID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Product{}, "product_id = ?", productID).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "刪除商品失敗",
			"error":   err.Error(),
		})
		return
	}

	score := strconv.Itoa(int(productID))
	err = rdb.ZRemRangeByScore(c, productsCacheKey, score, score).Err()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "無法將商品資料從Redis刪除",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "成功刪除商品",
	})
}
