// Package app содержит сценарии использования магазина.
package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"goshop/internal/shop/domain/entities"
	"goshop/internal/shop/ports/api"
	"goshop/internal/shop/ports/repositories"
	"goshop/pkg/logger"
)

const (
	methodCreateProduct = "CreateProduct"
	methodGetProduct    = "GetProduct"
	methodListProducts  = "ListProducts"
	methodUpdateProduct = "UpdateProduct"
	methodDeleteProduct = "DeleteProduct"

	msgCreatingProduct = "creating product"
	msgProductCreated  = "product created"
	msgInvalidProduct  = "product failed validation"
	msgUpdatingProduct = "updating product"
	msgProductUpdated  = "product updated"
	msgProductDeleted  = "product deleted"

	msgErrCreateProduct = "failed to create product"
	msgErrUpdateProduct = "failed to update product"
	msgErrDeleteProduct = "failed to delete product"

	errCtxValidatingProduct = "validating product"
	errCtxCreatingProduct   = "creating product"
	errCtxFetchingProduct   = "fetching product"
	errCtxListingProducts   = "listing products"
	errCtxUpdatingProduct   = "updating product"
	errCtxDeletingProduct   = "deleting product"
)

// CatalogUseCaseImpl реализует интерфейс CatalogUseCase.
type CatalogUseCaseImpl struct {
	productRepo repositories.ProductRepository
}

// NewCatalogUseCase создает новый экземпляр сервиса каталога.
func NewCatalogUseCase(productRepo repositories.ProductRepository) api.CatalogUseCase {
	return &CatalogUseCaseImpl{productRepo: productRepo}
}

// Create проверяет и сохраняет новый товар.
func (c *CatalogUseCaseImpl) Create(ctx context.Context, product *entities.Product) (*entities.Product, error) {
	log := logger.Log(ctx).With(zap.String("method", methodCreateProduct), zap.String("sku", product.SKU))
	log.Debug(ctx, msgCreatingProduct)

	if err := product.Validate(); err != nil {
		log.Debug(ctx, msgInvalidProduct, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxValidatingProduct, err)
	}

	created, err := c.productRepo.Create(ctx, product)
	if err != nil {
		log.Warn(ctx, msgErrCreateProduct, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCreatingProduct, err)
	}

	log.Info(ctx, msgProductCreated, zap.Int64("productID", created.ID))
	return created, nil
}

// Get возвращает товар по ID.
func (c *CatalogUseCaseImpl) Get(ctx context.Context, id int64) (*entities.Product, error) {
	logger.Log(ctx).Debug(ctx, methodGetProduct, zap.Int64("productID", id))

	product, err := c.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxFetchingProduct, err)
	}
	return product, nil
}

// List возвращает товары по фильтру.
func (c *CatalogUseCaseImpl) List(ctx context.Context, filter entities.ProductFilter) ([]*entities.Product, error) {
	logger.Log(ctx).Debug(ctx, methodListProducts,
		zap.String("category", filter.Category),
		zap.String("orderBy", string(filter.OrderBy)),
		zap.Bool("asc", filter.Asc),
	)

	products, err := c.productRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxListingProducts, err)
	}
	return products, nil
}

// Update применяет частичное обновление. Чтение, слияние атрибутов и запись
// выполняются хранилищем в одной транзакции.
func (c *CatalogUseCaseImpl) Update(ctx context.Context, id int64, patch entities.ProductPatch) (*entities.Product, error) {
	log := logger.Log(ctx).With(zap.String("method", methodUpdateProduct), zap.Int64("productID", id))
	log.Debug(ctx, msgUpdatingProduct)

	updated, err := c.productRepo.Update(ctx, id, func(product *entities.Product) error {
		product.Apply(patch)
		return product.Validate()
	})
	if err != nil {
		log.Warn(ctx, msgErrUpdateProduct, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxUpdatingProduct, err)
	}

	log.Info(ctx, msgProductUpdated)
	return updated, nil
}

// Delete удаляет товар.
func (c *CatalogUseCaseImpl) Delete(ctx context.Context, id int64) error {
	log := logger.Log(ctx).With(zap.String("method", methodDeleteProduct), zap.Int64("productID", id))

	if err := c.productRepo.Delete(ctx, id); err != nil {
		log.Warn(ctx, msgErrDeleteProduct, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxDeletingProduct, err)
	}

	log.Info(ctx, msgProductDeleted)
	return nil
}
