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

// FastCategoryRepository хранит быстрые категории через gorm.
type FastCategoryRepository struct {
	db *gorm.DB
}

// NewFastCategoryRepository создает новый экземпляр репозитория быстрых категорий.
func NewFastCategoryRepository(db *gorm.DB) repositories.FastCategoryRepository {
	return &FastCategoryRepository{db: db}
}

func mapFastCategoryError(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return entities.ErrFastCategoryNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey), pgErrorCode(err) == pgUniqueViolation:
		return entities.ErrDuplicateFastCategoryName
	default:
		return mapDataError(err)
	}
}

// Create сохраняет новую быструю категорию.
func (r *FastCategoryRepository) Create(
	ctx context.Context,
	category *entities.FastCategory,
) (*entities.FastCategory, error) {
	created := *category
	if err := r.db.WithContext(ctx).Create(&created).Error; err != nil {
		log := logger.Log(ctx).With(zap.String("repository", "fast_category"), zap.String("method", "Create"))
		if mapped := mapFastCategoryError(err); mapped != nil {
			log.Debug(ctx, "fast category rejected by storage", zap.String("name", category.Name), zap.Error(err))
			return nil, mapped
		}
		log.Error(ctx, "error creating fast category", zap.Error(err))
		return nil, fmt.Errorf("error creating fast category: %w", err)
	}

	return &created, nil
}

// FindByID находит быструю категорию по ID.
func (r *FastCategoryRepository) FindByID(ctx context.Context, id int64) (*entities.FastCategory, error) {
	var category entities.FastCategory
	if err := r.db.WithContext(ctx).First(&category, id).Error; err != nil {
		if mapped := mapFastCategoryError(err); mapped != nil {
			return nil, mapped
		}
		logger.Log(ctx).Error(ctx, "error finding fast category", zap.Int64("id", id), zap.Error(err))
		return nil, fmt.Errorf("error querying fast category by id: %w", err)
	}

	return &category, nil
}

// List возвращает быстрые категории в порядке создания.
func (r *FastCategoryRepository) List(ctx context.Context) ([]*entities.FastCategory, error) {
	categories := make([]*entities.FastCategory, 0)
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&categories).Error; err != nil {
		logger.Log(ctx).Error(ctx, "error listing fast categories", zap.Error(err))
		return nil, fmt.Errorf("error listing fast categories: %w", err)
	}

	return categories, nil
}

// Update меняет заданные поля быстрой категории.
func (r *FastCategoryRepository) Update(
	ctx context.Context,
	id int64,
	patch entities.FastCategoryPatch,
) (*entities.FastCategory, error) {
	values := map[string]any{}
	if patch.Name != nil {
		values["name"] = *patch.Name
	}
	if patch.Icon != nil {
		values["icon"] = nullableString(*patch.Icon)
	}
	if len(values) == 0 {
		return r.FindByID(ctx, id)
	}

	category := entities.FastCategory{ID: id}
	result := r.db.WithContext(ctx).
		Model(&category).
		Clauses(clause.Returning{}).
		Updates(values)
	if result.Error != nil {
		log := logger.Log(ctx).With(zap.String("repository", "fast_category"), zap.String("method", "Update"))
		if mapped := mapFastCategoryError(result.Error); mapped != nil {
			log.Debug(ctx, "fast category update rejected", zap.Error(result.Error))
			return nil, mapped
		}
		log.Error(ctx, "error updating fast category", zap.Error(result.Error))
		return nil, fmt.Errorf("error updating fast category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, entities.ErrFastCategoryNotFound
	}

	return &category, nil
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// Delete удаляет быструю категорию.
func (r *FastCategoryRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&entities.FastCategory{}, id)
	if result.Error != nil {
		logger.Log(ctx).Error(ctx, "error deleting fast category", zap.Int64("id", id), zap.Error(result.Error))
		return fmt.Errorf("error deleting fast category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return entities.ErrFastCategoryNotFound
	}

	return nil
}
