package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"
	gormpg "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"goshop/pkg/logger"
)

// ErrOpenGorm - ошибка инициализации gorm.
const ErrOpenGorm = "failed to open gorm connection"

// OpenGorm открывает gorm поверх пула pgx, чтобы все хранилища делили одни соединения.
// Ошибки уникальности и отсутствия записи переводятся в gorm.ErrDuplicatedKey и gorm.ErrRecordNotFound.
func (db *Database) OpenGorm(ctx context.Context) (*gorm.DB, error) {
	sqlDB := stdlib.OpenDBFromPool(db.pool)

	gdb, err := gorm.Open(gormpg.New(gormpg.Config{Conn: sqlDB}), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		logger.Log(ctx).Error(ctx, ErrOpenGorm, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrOpenGorm, err)
	}
	return gdb, nil
}
