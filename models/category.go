package models

type Category struct {
	CategoryID  uint   `gorm:"column:category_id;primarykey" json:"categoryId"`
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
}

func (Category) TableName() string {
	return "categories"
}
