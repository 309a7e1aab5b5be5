package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"goshop/internal/shop/domain/entities"
	"goshop/internal/shop/ports/repositories"
	"goshop/pkg/logger"
)

const cartItemColumns = `id, quantity, price_at_time_of_order::text, created_at, updated_at`

const (
	queryCartItemForUpdate = `
        SELECT ` + cartItemColumns + `
        FROM cart_items
        WHERE user_id = $1 AND product_id = $2 AND size = $3 AND color = $4
        FOR UPDATE
    `
	queryInsertCartItem = `
        INSERT INTO cart_items (user_id, product_id, size, color, quantity, price_at_time_of_order)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING ` + cartItemColumns
	queryAccumulateCartItem = `
        UPDATE cart_items
        SET quantity = quantity + $2, updated_at = NOW()
        WHERE id = $1
        RETURNING ` + cartItemColumns
	querySetCartItemQuantity = `
        UPDATE cart_items
        SET quantity = $5, updated_at = NOW()
        WHERE user_id = $1 AND product_id = $2 AND size = $3 AND color = $4
        RETURNING ` + cartItemColumns
	queryDeleteCartItem = `
        DELETE FROM cart_items
        WHERE user_id = $1 AND product_id = $2 AND size = $3 AND color = $4
    `
	queryClearCart = `DELETE FROM cart_items WHERE user_id = $1`
	queryCartLines = `
        SELECT c.id, c.product_id, c.size, c.color, c.quantity, c.price_at_time_of_order::text,
               c.created_at, c.updated_at, p.sku, p.name, p.price::text, p.attributes
        FROM cart_items c
        JOIN products p ON p.id = c.product_id
        WHERE c.user_id = $1
        ORDER BY c.id
    `
)

const (
	errCtxAddCartItem    = "error adding cart item"
	errCtxSetCartItem    = "error setting cart item quantity"
	errCtxRemoveCartItem = "error removing cart item"
	errCtxClearCart      = "error clearing cart"
	errCtxCartLines      = "error reading cart"
)

// CartRepository реализует repositories.CartRepository для работы с Postgres.
type CartRepository struct {
	pool PgxPoolInterface
}

// NewCartRepository создает новый экземпляр репозитория корзины.
func NewCartRepository(pool PgxPoolInterface) repositories.CartRepository {
	return &CartRepository{pool: pool}
}

func scanCartItem(row pgx.Row, key entities.CartKey) (*entities.CartItem, error) {
	item := entities.CartItem{CartKey: key}
	var price *string
	if err := row.Scan(&item.ID, &item.Quantity, &price, &item.CreatedAt, &item.UpdatedAt); err != nil {
		return nil, err
	}
	var err error
	if item.PriceAtTimeOfOrder, err = parseNullDecimal(price); err != nil {
		return nil, err
	}
	return &item, nil
}

func keyArgs(key entities.CartKey) []any {
	return []any{key.UserID, key.ProductID, key.Size, key.Color}
}

// AddOrAccumulate ищет строку по составному ключу под блокировкой и либо увеличивает количество,
// либо вставляет новую строку с зафиксированной ценой. Проигравшая параллельная вставка
// упирается в уникальный ключ и возвращается как ErrCartItemConflict.
func (r *CartRepository) AddOrAccumulate(
	ctx context.Context,
	key entities.CartKey,
	quantity int,
	unitPrice decimal.Decimal,
) (_ *entities.AddResult, err error) {
	log := logger.Log(ctx).With(
		zap.String("repository", "cart"),
		zap.String("method", "AddOrAccumulate"),
		zap.Int64("userID", key.UserID),
		zap.Int64("productID", key.ProductID),
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

	result := &entities.AddResult{}

	existing, err := scanCartItem(tx.QueryRow(ctx, queryCartItemForUpdate, keyArgs(key)...), key)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		args := append(keyArgs(key), quantity, unitPrice.String())
		created, insertErr := scanCartItem(tx.QueryRow(ctx, queryInsertCartItem, args...), key)
		if insertErr != nil {
			err = insertErr
			if pgErrorCode(insertErr) == pgUniqueViolation {
				log.Warn(ctx, "concurrent insert of the same cart line")
				return nil, entities.ErrCartItemConflict
			}
			if mapped := mapDataError(insertErr); mapped != nil {
				log.Debug(ctx, "cart line rejected by storage", zap.Error(insertErr))
				return nil, mapped
			}
			log.Error(ctx, errCtxAddCartItem, zap.Error(insertErr))
			return nil, fmt.Errorf("%s: %w", errCtxAddCartItem, insertErr)
		}
		result.Item, result.Created = *created, true
	case err != nil:
		log.Error(ctx, errCtxAddCartItem, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxAddCartItem, err)
	case existing.Quantity > entities.MaxQuantity-quantity:
		err = entities.ErrCartItemTooLarge
		log.Debug(ctx, "accumulated quantity overflows", zap.Int("current", existing.Quantity), zap.Int("added", quantity))
		return nil, err
	default:
		updated, updateErr := scanCartItem(tx.QueryRow(ctx, queryAccumulateCartItem, existing.ID, quantity), key)
		if updateErr != nil {
			err = updateErr
			if mapped := mapDataError(updateErr); mapped != nil {
				log.Debug(ctx, "cart line rejected by storage", zap.Error(updateErr))
				return nil, mapped
			}
			log.Error(ctx, errCtxAddCartItem, zap.Error(updateErr))
			return nil, fmt.Errorf("%s: %w", errCtxAddCartItem, updateErr)
		}
		result.Item = *updated
	}

	if err = tx.Commit(ctx); err != nil {
		log.Error(ctx, errCtxCommitTx, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCommitTx, err)
	}

	return result, nil
}

// SetQuantity присваивает строке новое количество.
func (r *CartRepository) SetQuantity(ctx context.Context, key entities.CartKey, quantity int) (*entities.CartItem, error) {
	log := logger.Log(ctx).With(zap.String("repository", "cart"), zap.String("method", "SetQuantity"))

	args := append(keyArgs(key), quantity)
	item, err := scanCartItem(r.pool.QueryRow(ctx, querySetCartItemQuantity, args...), key)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "cart item not found")
			return nil, entities.ErrCartItemNotFound
		}
		if mapped := mapDataError(err); mapped != nil {
			log.Debug(ctx, "cart line rejected by storage", zap.Error(err))
			return nil, mapped
		}
		log.Error(ctx, errCtxSetCartItem, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxSetCartItem, err)
	}

	return item, nil
}

// Remove удаляет строку корзины по ключу.
func (r *CartRepository) Remove(ctx context.Context, key entities.CartKey) error {
	log := logger.Log(ctx).With(zap.String("repository", "cart"), zap.String("method", "Remove"))

	result, err := r.pool.Exec(ctx, queryDeleteCartItem, keyArgs(key)...)
	if err != nil {
		log.Error(ctx, errCtxRemoveCartItem, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxRemoveCartItem, err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "cart item not found")
		return entities.ErrCartItemNotFound
	}

	return nil
}

// Clear удаляет все строки корзины пользователя и возвращает их количество.
func (r *CartRepository) Clear(ctx context.Context, userID int64) (int64, error) {
	log := logger.Log(ctx).With(zap.String("repository", "cart"), zap.String("method", "Clear"))

	result, err := r.pool.Exec(ctx, queryClearCart, userID)
	if err != nil {
		log.Error(ctx, errCtxClearCart, zap.Error(err))
		return 0, fmt.Errorf("%s: %w", errCtxClearCart, err)
	}

	return result.RowsAffected(), nil
}

// Lines возвращает строки корзины вместе с данными товаров.
func (r *CartRepository) Lines(ctx context.Context, userID int64) ([]entities.CartLine, error) {
	log := logger.Log(ctx).With(zap.String("repository", "cart"), zap.String("method", "Lines"))

	rows, err := r.pool.Query(ctx, queryCartLines, userID)
	if err != nil {
		log.Error(ctx, errCtxCartLines, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCartLines, err)
	}
	defer rows.Close()

	lines := make([]entities.CartLine, 0)
	for rows.Next() {
		var (
			line         entities.CartLine
			snapshot     *string
			currentPrice string
		)
		line.Item.UserID = userID
		if err := rows.Scan(
			&line.Item.ID,
			&line.Item.ProductID,
			&line.Item.Size,
			&line.Item.Color,
			&line.Item.Quantity,
			&snapshot,
			&line.Item.CreatedAt,
			&line.Item.UpdatedAt,
			&line.SKU,
			&line.Name,
			&currentPrice,
			&line.Attributes,
		); err != nil {
			log.Error(ctx, errCtxCartLines, zap.Error(err))
			return nil, fmt.Errorf("%s: %w", errCtxCartLines, err)
		}
		if line.Item.PriceAtTimeOfOrder, err = parseNullDecimal(snapshot); err != nil {
			return nil, fmt.Errorf("%s: %w", errCtxCartLines, err)
		}
		if line.CurrentPrice, err = parseDecimal(currentPrice); err != nil {
			return nil, fmt.Errorf("%s: %w", errCtxCartLines, err)
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		log.Error(ctx, errCtxCartLines, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCartLines, err)
	}

	return lines, nil
}
