package entities

import "time"

// Category - категория каталога.
type Category struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"type:varchar(255);uniqueIndex;not null"`
	Description string    `json:"description" gorm:"type:text;not null;default:''"`
	Image       string    `json:"img" gorm:"column:img;type:text;not null;default:''"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TableName задает имя таблицы для gorm.
func (Category) TableName() string {
	return "categories"
}

// CategoryPatch - частичное обновление категории.
type CategoryPatch struct {
	Name        *string
	Description *string
	Image       *string
}

// IsEmpty сообщает, что обновлять нечего.
func (p CategoryPatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Image == nil
}
