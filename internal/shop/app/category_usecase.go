package app

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"goshop/internal/shop/domain/entities"
	"goshop/internal/shop/ports/api"
	"goshop/internal/shop/ports/repositories"
	"goshop/pkg/logger"
)

const (
	methodCreateCategory = "CreateCategory"
	methodUpdateCategory = "UpdateCategory"
	methodDeleteCategory = "DeleteCategory"

	msgCategoryCreated = "category created"
	msgCategoryUpdated = "category updated"
	msgCategoryDeleted = "category deleted"

	errCtxValidatingCategory = "validating category"
	errCtxCreatingCategory   = "creating category"
	errCtxFetchingCategory   = "fetching category"
	errCtxListingCategories  = "listing categories"
	errCtxUpdatingCategory   = "updating category"
	errCtxDeletingCategory   = "deleting category"
)

var (
	errCategoryNameRequired = entities.NewValidationError("invalid category", "name is required")
	errCategoryNameTooLong  = entities.NewValidationError("invalid category",
		fmt.Sprintf("name must be at most %d characters", entities.MaxTextLength))
)

func validateCategoryName(name string) error {
	switch {
	case name == "":
		return errCategoryNameRequired
	case entities.TooLong(name, entities.MaxTextLength):
		return errCategoryNameTooLong
	default:
		return nil
	}
}

// CategoryUseCaseImpl реализует интерфейс CategoryUseCase.
type CategoryUseCaseImpl struct {
	categoryRepo repositories.CategoryRepository
}

// NewCategoryUseCase создает новый экземпляр сервиса категорий.
func NewCategoryUseCase(categoryRepo repositories.CategoryRepository) api.CategoryUseCase {
	return &CategoryUseCaseImpl{categoryRepo: categoryRepo}
}

// Create сохраняет новую категорию.
func (c *CategoryUseCaseImpl) Create(ctx context.Context, category *entities.Category) (*entities.Category, error) {
	log := logger.Log(ctx).With(zap.String("method", methodCreateCategory))

	category.Name = strings.TrimSpace(category.Name)
	if err := validateCategoryName(category.Name); err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxValidatingCategory, err)
	}

	created, err := c.categoryRepo.Create(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxCreatingCategory, err)
	}

	log.Info(ctx, msgCategoryCreated, zap.Int64("categoryID", created.ID))
	return created, nil
}

// Get возвращает категорию по ID.
func (c *CategoryUseCaseImpl) Get(ctx context.Context, id int64) (*entities.Category, error) {
	category, err := c.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxFetchingCategory, err)
	}
	return category, nil
}

// List возвращает все категории.
func (c *CategoryUseCaseImpl) List(ctx context.Context) ([]*entities.Category, error) {
	categories, err := c.categoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxListingCategories, err)
	}
	return categories, nil
}

// Update меняет заданные поля категории.
func (c *CategoryUseCaseImpl) Update(ctx context.Context, id int64, patch entities.CategoryPatch) (*entities.Category, error) {
	log := logger.Log(ctx).With(zap.String("method", methodUpdateCategory), zap.Int64("categoryID", id))

	if patch.IsEmpty() {
		return nil, fmt.Errorf("%s: %w", errCtxValidatingCategory, entities.ErrNothingToUpdate)
	}
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if err := validateCategoryName(name); err != nil {
			return nil, fmt.Errorf("%s: %w", errCtxValidatingCategory, err)
		}
		patch.Name = &name
	}

	updated, err := c.categoryRepo.Update(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxUpdatingCategory, err)
	}

	log.Info(ctx, msgCategoryUpdated)
	return updated, nil
}

// Delete удаляет категорию.
func (c *CategoryUseCaseImpl) Delete(ctx context.Context, id int64) error {
	log := logger.Log(ctx).With(zap.String("method", methodDeleteCategory), zap.Int64("categoryID", id))

	if err := c.categoryRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", errCtxDeletingCategory, err)
	}

	log.Info(ctx, msgCategoryDeleted)
	return nil
}
