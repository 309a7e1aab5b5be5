package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"goshop/internal/shop/domain/entities"
	"goshop/internal/shop/ports/repositories"
	"goshop/pkg/logger"
)

const productColumns = "id, sku, name, category, description, price::text, stock, " +
	"weight::text, package_volume::text, quantity_in_package, " +
	"transport_package_type, individual_package_type, branding_types, attributes, " +
	"created_at, updated_at"

const (
	errCtxCreateProduct = "error creating product"
	errCtxFindProduct   = "error querying product by id"
	errCtxListProducts  = "error listing products"
	errCtxUpdateProduct = "error updating product"
	errCtxDeleteProduct = "error deleting product"
	errCtxBeginTx       = "error starting transaction"
	errCtxCommitTx      = "error committing transaction"
	errCtxBuildQuery    = "error building query"
)

// ProductRepository реализует repositories.ProductRepository для работы с Postgres.
type ProductRepository struct {
	pool PgxPoolInterface
}

// NewProductRepository создает новый экземпляр репозитория товаров.
func NewProductRepository(pool PgxPoolInterface) repositories.ProductRepository {
	return &ProductRepository{pool: pool}
}

func scanProduct(row pgx.Row) (*entities.Product, error) {
	var (
		p                     entities.Product
		price                 string
		weight, packageVolume *string
		brandingTypes         []string
		attributes            entities.Attributes
	)
	if err := row.Scan(
		&p.ID,
		&p.SKU,
		&p.Name,
		&p.Category,
		&p.Description,
		&price,
		&p.Stock,
		&weight,
		&packageVolume,
		&p.QuantityInPackage,
		&p.TransportPackageType,
		&p.IndividualPackageType,
		&brandingTypes,
		&attributes,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}

	var err error
	if p.Price, err = parseDecimal(price); err != nil {
		return nil, err
	}
	if p.Weight, err = parseNullDecimal(weight); err != nil {
		return nil, err
	}
	if p.PackageVolume, err = parseNullDecimal(packageVolume); err != nil {
		return nil, err
	}

	p.BrandingTypes = brandingTypes
	if p.BrandingTypes == nil {
		p.BrandingTypes = []string{}
	}
	p.Attributes = attributes
	if p.Attributes == nil {
		p.Attributes = entities.Attributes{}
	}
	return &p, nil
}

// productValues возвращает значения колонок для записи товара.
func productValues(p *entities.Product) map[string]any {
	brandingTypes := p.BrandingTypes
	if brandingTypes == nil {
		brandingTypes = []string{}
	}
	attributes := p.Attributes
	if attributes == nil {
		attributes = entities.Attributes{}
	}
	return map[string]any{
		"sku":                     p.SKU,
		"name":                    p.Name,
		"category":                p.Category,
		"description":             p.Description,
		"price":                   p.Price.String(),
		"stock":                   p.Stock,
		"weight":                  nullDecimalArg(p.Weight),
		"package_volume":          nullDecimalArg(p.PackageVolume),
		"quantity_in_package":     p.QuantityInPackage,
		"transport_package_type":  p.TransportPackageType,
		"individual_package_type": p.IndividualPackageType,
		"branding_types":          brandingTypes,
		"attributes":              attributes,
	}
}

func mapProductWriteError(err error) error {
	if pgErrorCode(err) == pgUniqueViolation {
		return entities.ErrDuplicateSKU
	}
	return mapDataError(err)
}

// Create сохраняет новый товар.
func (r *ProductRepository) Create(ctx context.Context, product *entities.Product) (*entities.Product, error) {
	log := logger.Log(ctx).With(zap.String("repository", "product"), zap.String("method", "Create"))

	query, args, err := psql.Insert("products").
		SetMap(productValues(product)).
		Suffix("RETURNING " + productColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxBuildQuery, err)
	}

	created, err := scanProduct(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if mapped := mapProductWriteError(err); mapped != nil {
			log.Debug(ctx, "product rejected by storage", zap.String("sku", product.SKU), zap.Error(err))
			return nil, mapped
		}
		log.Error(ctx, errCtxCreateProduct, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCreateProduct, err)
	}

	return created, nil
}

// FindByID находит товар по ID.
func (r *ProductRepository) FindByID(ctx context.Context, id int64) (*entities.Product, error) {
	log := logger.Log(ctx).With(zap.String("repository", "product"), zap.String("method", "FindByID"))

	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	product, err := scanProduct(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "product not found", zap.Int64("id", id))
			return nil, entities.ErrProductNotFound
		}
		log.Error(ctx, errCtxFindProduct, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFindProduct, err)
	}

	return product, nil
}

var productOrderColumns = map[entities.ProductOrder]string{
	entities.OrderByCreatedAt: "created_at",
	entities.OrderByName:      "name",
	entities.OrderByPrice:     "price",
}

// List возвращает товары с фильтром по категории и сортировкой из белого списка колонок.
func (r *ProductRepository) List(ctx context.Context, filter entities.ProductFilter) ([]*entities.Product, error) {
	log := logger.Log(ctx).With(zap.String("repository", "product"), zap.String("method", "List"))

	column, ok := productOrderColumns[filter.OrderBy]
	if !ok {
		column = productOrderColumns[entities.OrderByCreatedAt]
	}
	direction := " DESC"
	if filter.Asc {
		direction = " ASC"
	}

	builder := psql.Select(productColumns).From("products")
	if filter.Category != "" {
		builder = builder.Where(squirrel.Eq{"category": filter.Category})
	}
	query, args, err := builder.OrderBy(column+direction, "id"+direction).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxBuildQuery, err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		log.Error(ctx, errCtxListProducts, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxListProducts, err)
	}
	defer rows.Close()

	products := make([]*entities.Product, 0)
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			log.Error(ctx, errCtxListProducts, zap.Error(err))
			return nil, fmt.Errorf("%s: %w", errCtxListProducts, err)
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		log.Error(ctx, errCtxListProducts, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxListProducts, err)
	}

	return products, nil
}

// Update читает товар с блокировкой строки, применяет mutate и сохраняет результат в одной транзакции.
func (r *ProductRepository) Update(
	ctx context.Context,
	id int64,
	mutate func(*entities.Product) error,
) (_ *entities.Product, err error) {
	log := logger.Log(ctx).With(
		zap.String("repository", "product"),
		zap.String("method", "Update"),
		zap.Int64("id", id),
	)

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		log.Error(ctx, errCtxBeginTx, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxBeginTx, err)
	}
	defer func() {
		if err != nil {
			rollback(ctx, tx)
		}
	}()

	current, err := scanProduct(tx.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "product not found")
			return nil, entities.ErrProductNotFound
		}
		log.Error(ctx, errCtxFindProduct, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFindProduct, err)
	}

	if err = mutate(current); err != nil {
		return nil, err
	}

	query, args, err := psql.Update("products").
		SetMap(productValues(current)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + productColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxBuildQuery, err)
	}

	updated, err := scanProduct(tx.QueryRow(ctx, query, args...))
	if err != nil {
		if mapped := mapProductWriteError(err); mapped != nil {
			log.Debug(ctx, "product rejected by storage", zap.String("sku", current.SKU), zap.Error(err))
			return nil, mapped
		}
		log.Error(ctx, errCtxUpdateProduct, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxUpdateProduct, err)
	}

	if err = tx.Commit(ctx); err != nil {
		log.Error(ctx, errCtxCommitTx, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCommitTx, err)
	}

	return updated, nil
}

// Delete удаляет товар. Товар, на который ссылаются строки корзин, не удаляется.
func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	log := logger.Log(ctx).With(zap.String("repository", "product"), zap.String("method", "Delete"))

	result, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			log.Debug(ctx, "product is referenced by cart items", zap.Int64("id", id))
			return entities.ErrProductReferenced
		}
		log.Error(ctx, errCtxDeleteProduct, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxDeleteProduct, err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "product not found", zap.Int64("id", id))
		return entities.ErrProductNotFound
	}

	return nil
}
