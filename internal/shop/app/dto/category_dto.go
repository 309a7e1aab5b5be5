package dto

import "goshop/internal/shop/domain/entities"

// CategoryRequest - тело запроса на создание или изменение категории.
type CategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Img         *string `json:"img"`
}

// ToPatch преобразует запрос в частичное обновление категории.
func (r *CategoryRequest) ToPatch() entities.CategoryPatch {
	return entities.CategoryPatch{Name: r.Name, Description: r.Description, Image: r.Img}
}

// ToCategory преобразует запрос в новую категорию.
func (r *CategoryRequest) ToCategory() *entities.Category {
	category := &entities.Category{}
	if r.Name != nil {
		category.Name = *r.Name
	}
	if r.Description != nil {
		category.Description = *r.Description
	}
	if r.Img != nil {
		category.Image = *r.Img
	}
	return category
}

// FastCategoryRequest - тело запроса на создание или изменение быстрой категории.
type FastCategoryRequest struct {
	Name *string `json:"name"`
	Icon *string `json:"icon"`
}

// ToPatch преобразует запрос в частичное обновление.
func (r *FastCategoryRequest) ToPatch() entities.FastCategoryPatch {
	return entities.FastCategoryPatch{Name: r.Name, Icon: r.Icon}
}

// ToFastCategory преобразует запрос в новую быструю категорию.
func (r *FastCategoryRequest) ToFastCategory() *entities.FastCategory {
	category := &entities.FastCategory{Icon: r.Icon}
	if r.Name != nil {
		category.Name = *r.Name
	}
	return category
}
