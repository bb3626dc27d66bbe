package daos

import (
	"EasyShop/models"

	"gorm.io/gorm"
)

// 部分更新用的欄位，nil代表保留原值
type CategoryUpdate struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// 查詢所有商品分類，查無資料時回傳空切片
func GetAllCategories(db *gorm.DB) ([]models.Category, error) {
	categories := make([]models.Category, 0)
	err := db.Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// 以ID查詢商品分類，查無資料時回傳gorm.ErrRecordNotFound
func GetCategoryByID(db *gorm.DB, categoryID uint) (models.Category, error) {
	var category models.Category
	err := db.First(&category, "category_id = ?", categoryID).Error
	if err != nil {
		return models.Category{}, err
	}
	return category, nil
}

// 新增商品分類並回填產生的ID
func CreateCategory(db *gorm.DB, category *models.Category) error {
	return db.Create(category).Error
}

// 部分更新商品分類，只覆蓋有提供的欄位
func UpdateCategory(db *gorm.DB, categoryID uint, update CategoryUpdate) error {
	columns := map[string]interface{}{}
	if update.Name != nil {
		columns["name"] = *update.Name
	}
	if update.Description != nil {
		columns["description"] = *update.Description
	}

	//沒有提供任何欄位則不需更新
	if len(columns) == 0 {
		return nil
	}

	return db.
		Model(&models.Category{}).
		Where("category_id = ?", categoryID).
		Updates(columns).
		Error
}

// 刪除商品分類，不連帶刪除分類下的商品
func DeleteCategory(db *gorm.DB, categoryID uint) error {
	return db.Delete(&models.Category{}, "category_id = ?", categoryID).Error
}
