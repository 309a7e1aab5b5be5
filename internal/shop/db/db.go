// Package db поднимает хранилище магазина: миграции, пул pgx и gorm поверх него.
package db

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"goshop/internal/shop/config"
	"goshop/pkg/db/postgres"
	"goshop/pkg/logger"
)

// Константы для сообщений логгера.
const (
	LogDBInitializing    = "initializing shop database"
	LogDBInitialized     = "shop database initialized successfully"
	LogMigrationStarting = "starting shop database migrations"
)

// Константы для сообщений об ошибках.
const (
	ErrDBMigrations = "failed to apply shop database migrations"
	ErrDBConnection = "failed to connect to shop database"
	ErrDBGorm       = "failed to initialize gorm for shop database"
	ErrGetPath      = "failed to get path"
)

// DB объединяет пул pgx и gorm, работающий на тех же соединениях.
type DB struct {
	database *postgres.Database
	gorm     *gorm.DB
}

// MigrationsURL превращает каталог миграций в URL источника file://.
func MigrationsURL(dir string) (string, error) {
	if filepath.IsAbs(dir) {
		return "file://" + dir, nil
	}
	absPath, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("%s: %w", ErrGetPath, err)
	}
	return "file://" + absPath, nil
}

// New применяет миграции и открывает соединения с базой.
func New(ctx context.Context, cfg *config.PostgresConfig) (*DB, error) {
	log := logger.Log(ctx)

	log.Info(ctx, LogDBInitializing,
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
		zap.String("database", cfg.Database),
		zap.Int("min_conn", cfg.MinConn),
		zap.Int("max_conn", cfg.MaxConn))

	migrationsPath, err := MigrationsURL(cfg.MigrationsPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrDBMigrations, err)
	}

	log.Info(ctx, LogMigrationStarting, zap.String("migrations_path", migrationsPath))
	if err := postgres.MigrateDSN(ctx, cfg.GetConnectionURL(), migrationsPath); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrDBMigrations, err)
	}

	database, err := postgres.New(ctx, cfg.GetDSN(), cfg.MinConn, cfg.MaxConn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrDBConnection, err)
	}

	gdb, err := database.OpenGorm(ctx)
	if err != nil {
		_ = database.Close(ctx)
		return nil, fmt.Errorf("%s: %w", ErrDBGorm, err)
	}

	log.Info(ctx, LogDBInitialized)

	return &DB{database: database, gorm: gdb}, nil
}

// Close закрывает соединения с базой данных.
func (db *DB) Close(ctx context.Context) error {
	return db.database.Close(ctx)
}

// Pool возвращает пул соединений pgx.
func (db *DB) Pool() *pgxpool.Pool {
	return db.database.Pool()
}

// Gorm возвращает gorm, разделяющий пул с pgx.
func (db *DB) Gorm() *gorm.DB {
	return db.gorm
}

// Ping проверяет соединение с базой данных.
func (db *DB) Ping(ctx context.Context) error {
	return db.database.Ping(ctx)
}
