package entities

import "time"

// FastCategory - ярлык быстрого перехода на витрине: название и иконка.
type FastCategory struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"type:varchar(255);uniqueIndex;not null"`
	Icon      *string   `json:"icon" gorm:"type:varchar(255)"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName задает имя таблицы для gorm.
func (FastCategory) TableName() string {
	return "fast_categories"
}

// FastCategoryPatch - частичное обновление быстрой категории.
type FastCategoryPatch struct {
	Name *string
	Icon *string
}

// IsEmpty сообщает, что обновлять нечего.
func (p FastCategoryPatch) IsEmpty() bool {
	return p.Name == nil && p.Icon == nil
}
