package postgres

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"goshop/internal/shop/domain/entities"
	"goshop/internal/shop/ports/repositories"
	"goshop/pkg/logger"
)

// CategoryRepository хранит категории через gorm.
type CategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository создает новый экземпляр репозитория категорий.
func NewCategoryRepository(db *gorm.DB) repositories.CategoryRepository {
	return &CategoryRepository{db: db}
}

func mapCategoryError(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return entities.ErrCategoryNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey), pgErrorCode(err) == pgUniqueViolation:
		return entities.ErrDuplicateCategoryName
	default:
		return mapDataError(err)
	}
}

// Create сохраняет новую категорию.
func (r *CategoryRepository) Create(ctx context.Context, category *entities.Category) (*entities.Category, error) {
	log := logger.Log(ctx).With(zap.String("repository", "category"), zap.String("method", "Create"))

	created := *category
	if err := r.db.WithContext(ctx).Create(&created).Error; err != nil {
		if mapped := mapCategoryError(err); mapped != nil {
			log.Debug(ctx, "category rejected by storage", zap.String("name", category.Name), zap.Error(err))
			return nil, mapped
		}
		log.Error(ctx, "error creating category", zap.Error(err))
		return nil, fmt.Errorf("error creating category: %w", err)
	}

	return &created, nil
}

// FindByID находит категорию по ID.
func (r *CategoryRepository) FindByID(ctx context.Context, id int64) (*entities.Category, error) {
	var category entities.Category
	if err := r.db.WithContext(ctx).First(&category, id).Error; err != nil {
		if mapped := mapCategoryError(err); mapped != nil {
			return nil, mapped
		}
		logger.Log(ctx).Error(ctx, "error finding category", zap.Int64("id", id), zap.Error(err))
		return nil, fmt.Errorf("error querying category by id: %w", err)
	}

	return &category, nil
}

// List возвращает категории в алфавитном порядке.
func (r *CategoryRepository) List(ctx context.Context) ([]*entities.Category, error) {
	categories := make([]*entities.Category, 0)
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&categories).Error; err != nil {
		logger.Log(ctx).Error(ctx, "error listing categories", zap.Error(err))
		return nil, fmt.Errorf("error listing categories: %w", err)
	}

	return categories, nil
}

// Update меняет заданные поля категории.
func (r *CategoryRepository) Update(
	ctx context.Context,
	id int64,
	patch entities.CategoryPatch,
) (*entities.Category, error) {
	log := logger.Log(ctx).With(zap.String("repository", "category"), zap.String("method", "Update"))

	values := map[string]any{}
	if patch.Name != nil {
		values["name"] = *patch.Name
	}
	if patch.Description != nil {
		values["description"] = *patch.Description
	}
	if patch.Image != nil {
		values["img"] = *patch.Image
	}
	if len(values) == 0 {
		return r.FindByID(ctx, id)
	}

	category := entities.Category{ID: id}
	result := r.db.WithContext(ctx).
		Model(&category).
		Clauses(clause.Returning{}).
		Updates(values)
	if result.Error != nil {
		if mapped := mapCategoryError(result.Error); mapped != nil {
			log.Debug(ctx, "category update rejected", zap.Error(result.Error))
			return nil, mapped
		}
		log.Error(ctx, "error updating category", zap.Error(result.Error))
		return nil, fmt.Errorf("error updating category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, entities.ErrCategoryNotFound
	}

	return &category, nil
}

// Delete удаляет категорию.
func (r *CategoryRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&entities.Category{}, id)
	if result.Error != nil {
		logger.Log(ctx).Error(ctx, "error deleting category", zap.Int64("id", id), zap.Error(result.Error))
		return fmt.Errorf("error deleting category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return entities.ErrCategoryNotFound
	}

	return nil
}
