package handlers

import (
	"EasyShop/daos"
	"EasyShop/models"
	"errors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"net/http"
	"strconv"
)

func parseIDParam(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	return uint(id), err
}

// 查詢商品分類列表
func GetAllCategoriesHandler(c *gin.Context, db *gorm.DB) {
	categories, err := daos.GetAllCategories(db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "查詢商品分類列表失敗",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, categories)
}

// 以ID查詢商品分類，查無資料時回傳404
func GetCategoryHandler(c *gin.Context, db *gorm.DB) {
	categoryID, err := parseIDParam(c, "categoryID")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "分類ID輸入錯誤",
			"error":   err.Error(),
		})
		return
	}

	category, err := daos.GetCategoryByID(db, categoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
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

	c.JSON(http.StatusOK, category)
}

// 查詢分類下的所有商品
func GetProductsByCategoryHandler(c *gin.Context, db *gorm.DB) {
	categoryID, err := parseIDParam(c, "categoryID")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "分類ID輸入錯誤",
			"error":   err.Error(),
		})
		return
	}

	products, err := daos.SearchProducts(db, daos.ProductSearch{
		CategoryID: &categoryID,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "查詢分類商品失敗",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, products)
}

// 新增商品分類
func CreateCategoryHandler(c *gin.Context, db *gorm.DB) {
	var categoryReq struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&categoryReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "綁定請求資料錯誤",
			"error":   err.Error(),
		})
		return
	}

	category := models.Category{
		Name:        categoryReq.Name,
		Description: categoryReq.Description,
	}
	if err := daos.CreateCategory(db, &category); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "新增商品分類失敗",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, category)
}

// 部分更新商品分類，只覆蓋有提供的欄位
func UpdateCategoryHandler(c *gin.Context, db *gorm.DB) {
	categoryID, err := parseIDParam(c, "categoryID")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "分類ID輸入錯誤",
			"error":   err.Error(),
		})
		return
	}

	var update daos.CategoryUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "綁定請求資料錯誤",
			"error":   err.Error(),
		})
		return
	}

	if err := daos.UpdateCategory(db, categoryID, update); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "更新商品分類失敗",
			"error":   err.Error(),
		})
		return
	}

	c.Status(http.StatusOK)
}

// 刪除商品分類
func DeleteCategoryHandler(c *gin.Context, db *gorm.DB) {
	categoryID, err := parseIDParam(c, "categoryID")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "分類ID輸入錯誤",
			"error":   err.Error(),
		})
		return
	}

	if err := daos.DeleteCategory(db, categoryID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "刪除商品分類失敗",
			"error":   err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}
