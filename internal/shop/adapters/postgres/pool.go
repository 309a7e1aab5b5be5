// Package postgres содержит репозитории магазина поверх PostgreSQL.
package postgres

import (
	"context"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"goshop/internal/shop/domain/entities"
	"goshop/pkg/logger"
)

// PgxPoolInterface - подмножество pgxpool.Pool, которое нужно репозиториям.
type PgxPoolInterface interface {
	QueryRow(ctx context.Context, query string, args ...any) pgx.Row
	Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, query string, args ...any) (pgx.Rows, error)
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Коды ошибок PostgreSQL.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgStringTooLong       = "22001"
	pgNumericOutOfRange   = "22003"
)

// psql - построитель запросов с плейсхолдерами $n.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// mapDataError переводит переполнение колонки в ошибку валидации.
func mapDataError(err error) error {
	switch pgErrorCode(err) {
	case pgStringTooLong, pgNumericOutOfRange:
		return entities.ErrValueOutOfRange
	default:
		return nil
	}
}

// rollback откатывает транзакцию, если она не была зафиксирована.
func rollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		logger.Log(ctx).Warn(ctx, "failed to rollback transaction", zap.Error(err))
	}
}
