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
	methodCreateFastCategory = "CreateFastCategory"
	methodUpdateFastCategory = "UpdateFastCategory"
	methodDeleteFastCategory = "DeleteFastCategory"

	msgFastCategoryCreated = "fast category created"
	msgFastCategoryUpdated = "fast category updated"
	msgFastCategoryDeleted = "fast category deleted"

	errCtxValidatingFastCategory = "validating fast category"
	errCtxCreatingFastCategory   = "creating fast category"
	errCtxFetchingFastCategory   = "fetching fast category"
	errCtxListingFastCategories  = "listing fast categories"
	errCtxUpdatingFastCategory   = "updating fast category"
	errCtxDeletingFastCategory   = "deleting fast category"
)

var errFastCategoryIconTooLong = entities.NewValidationError("invalid fast category",
	fmt.Sprintf("icon must be at most %d characters", entities.MaxTextLength))

// FastCategoryUseCaseImpl реализует интерфейс FastCategoryUseCase.
type FastCategoryUseCaseImpl struct {
	repo repositories.FastCategoryRepository
}

// NewFastCategoryUseCase создает новый экземпляр сервиса быстрых категорий.
func NewFastCategoryUseCase(repo repositories.FastCategoryRepository) api.FastCategoryUseCase {
	return &FastCategoryUseCaseImpl{repo: repo}
}

// trimIcon обрезает пробелы в иконке. Пустая строка означает "без иконки".
func trimIcon(icon *string) (*string, error) {
	if icon == nil {
		return nil, nil
	}
	trimmed := strings.TrimSpace(*icon)
	if entities.TooLong(trimmed, entities.MaxTextLength) {
		return nil, errFastCategoryIconTooLong
	}
	return &trimmed, nil
}

// Create сохраняет новую быструю категорию.
func (c *FastCategoryUseCaseImpl) Create(
	ctx context.Context,
	category *entities.FastCategory,
) (*entities.FastCategory, error) {
	log := logger.Log(ctx).With(zap.String("method", methodCreateFastCategory))

	category.Name = strings.TrimSpace(category.Name)
	if err := validateCategoryName(category.Name); err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxValidatingFastCategory, err)
	}
	icon, err := trimIcon(category.Icon)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxValidatingFastCategory, err)
	}
	if icon != nil && *icon == "" {
		icon = nil
	}
	category.Icon = icon

	created, err := c.repo.Create(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxCreatingFastCategory, err)
	}

	log.Info(ctx, msgFastCategoryCreated, zap.Int64("fastCategoryID", created.ID))
	return created, nil
}

// Get возвращает быструю категорию по ID.
func (c *FastCategoryUseCaseImpl) Get(ctx context.Context, id int64) (*entities.FastCategory, error) {
	category, err := c.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxFetchingFastCategory, err)
	}
	return category, nil
}

// List возвращает все быстрые категории.
func (c *FastCategoryUseCaseImpl) List(ctx context.Context) ([]*entities.FastCategory, error) {
	categories, err := c.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxListingFastCategories, err)
	}
	return categories, nil
}

// Update меняет заданные поля. Пустая иконка сбрасывает ее.
func (c *FastCategoryUseCaseImpl) Update(
	ctx context.Context,
	id int64,
	patch entities.FastCategoryPatch,
) (*entities.FastCategory, error) {
	log := logger.Log(ctx).With(zap.String("method", methodUpdateFastCategory), zap.Int64("fastCategoryID", id))

	if patch.IsEmpty() {
		return nil, fmt.Errorf("%s: %w", errCtxValidatingFastCategory, entities.ErrNothingToUpdate)
	}
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if err := validateCategoryName(name); err != nil {
			return nil, fmt.Errorf("%s: %w", errCtxValidatingFastCategory, err)
		}
		patch.Name = &name
	}
	icon, err := trimIcon(patch.Icon)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxValidatingFastCategory, err)
	}
	patch.Icon = icon

	updated, err := c.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxUpdatingFastCategory, err)
	}

	log.Info(ctx, msgFastCategoryUpdated)
	return updated, nil
}

// Delete удаляет быструю категорию.
func (c *FastCategoryUseCaseImpl) Delete(ctx context.Context, id int64) error {
	log := logger.Log(ctx).With(zap.String("method", methodDeleteFastCategory), zap.Int64("fastCategoryID", id))

	if err := c.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", errCtxDeletingFastCategory, err)
	}

	log.Info(ctx, msgFastCategoryDeleted)
	return nil
}
