// Package main реализует точку входа сервиса магазина.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"goshop/internal/shop/adapters/cache"
	shophttp "goshop/internal/shop/adapters/http"
	"goshop/internal/shop/adapters/postgres"
	"goshop/internal/shop/adapters/services"
	"goshop/internal/shop/app"
	"goshop/internal/shop/config"
	"goshop/internal/shop/db"
	"goshop/internal/shop/resilience"
	"goshop/pkg/db/redis"
	"goshop/pkg/logger"
	"goshop/pkg/shutdown"
)

// Константы для переменных окружения.
const (
	EnvLoggerMode  = "SHOP_LOGGER_MODE"
	EnvLoggerLevel = "SHOP_LOGGER_LEVEL"
	EnvFile        = "SHOP_ENV_FILE"

	defaultEnvFile = ".env"
)

// Константы для сообщений об ошибках.
const (
	ErrInitLogger           = "failed to initialize logger"
	ErrSyncLogger           = "failed to sync logger"
	ErrLoadConfig           = "failed to load configuration"
	ErrInitLoggerWithConfig = "failed to initialize logger with configuration settings"
	ErrInitDB               = "failed to initialize database"
	ErrInitRedis            = "failed to connect to redis"
	ErrStartHTTPServer      = "failed to start HTTP server"
	ErrCloseDB              = "failed to close database"
)

// Константы для игнорируемых ошибок.
const (
	ErrSyncStderr = "sync /dev/stderr: invalid argument"
	ErrSyncStdout = "sync /dev/stdout: invalid argument"
)

// Константы для сообщений сервиса.
const (
	LogServiceStarted      = "shop service started"
	LogServiceShutdownDone = "shop service shutdown complete"
	LogShutdownWithErrors  = "shop service shutdown finished with errors"
	LogClosingDB           = "closing database connections"
	LogClosingRedis        = "closing redis connection"
	LogStoppingHTTP        = "stopping HTTP server"
	LogInitRepo            = "initializing repositories"
	LogInitServices        = "initializing services"
	LogInitUseCases        = "initializing use cases"
	LogInitHTTPServer      = "initializing HTTP server"
	LogStartingHTTP        = "starting HTTP server"
)

func redisBreaker(cfg *config.ResilienceConfig) *resilience.CircuitBreaker {
	breaker := resilience.DefaultCircuitBreakerConfig()
	breaker.ErrorThreshold = cfg.BreakerThreshold
	breaker.Timeout = cfg.BreakerTimeout

	return resilience.NewCircuitBreaker("redis", breaker)
}

func main() {
	env := logger.Development
	if strings.ToLower(os.Getenv(EnvLoggerMode)) == "production" {
		env = logger.Production
	}

	log, err := logger.NewLogger(env, os.Getenv(EnvLoggerLevel))
	if err != nil {
		panic(ErrInitLogger + ": " + err.Error())
	}

	logger.SetGlobalLogger(log)

	ctx := logger.NewRequestIDContext(context.Background(), "")

	var exitCode int

	func() {
		defer func() {
			if err := log.Sync(); err != nil {
				errMsg := err.Error()
				if strings.Contains(errMsg, ErrSyncStderr) || strings.Contains(errMsg, ErrSyncStdout) {
					return
				}
				if _, writeErr := fmt.Fprintf(os.Stderr, "%s: %v\n", ErrSyncLogger, err); writeErr != nil {
					panic(writeErr)
				}
			}
		}()

		envFile := os.Getenv(EnvFile)
		if envFile == "" {
			envFile = defaultEnvFile
		}

		cfg, err := config.Load(ctx, envFile)
		if err != nil {
			log.Error(ctx, ErrLoadConfig, zap.Error(err))
			exitCode = 1
			return
		}

		finalLogger, err := logger.NewLogger(cfg.Logging.GetEnvironment(), cfg.Logging.Level)
		if err != nil {
			log.Error(ctx, ErrInitLoggerWithConfig, zap.Error(err))
			exitCode = 1
			return
		}
		logger.SetGlobalLogger(finalLogger)
		log = finalLogger

		database, err := db.New(ctx, &cfg.Postgres)
		if err != nil {
			log.Error(ctx, ErrInitDB, zap.Error(err))
			exitCode = 1
			return
		}

		redisClient, err := redis.NewClient(ctx, redis.Config{
			Addr:         cfg.Redis.GetAddress(),
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			PoolSize:     cfg.Redis.PoolSize,
			DialTimeout:  cfg.Redis.ConnectTimeout,
			ReadTimeout:  cfg.Redis.ReadTimeout,
			WriteTimeout: cfg.Redis.WriteTimeout,
		})
		if err != nil {
			log.Error(ctx, ErrInitRedis, zap.Error(err))
			if closeErr := database.Close(ctx); closeErr != nil {
				log.Warn(ctx, ErrCloseDB, zap.Error(closeErr))
			}
			exitCode = 1
			return
		}

		log.Info(ctx, LogServiceStarted,
			zap.String("environment", string(cfg.Logging.GetEnvironment())),
			zap.String("log_level", cfg.Logging.Level),
			zap.String("startup_time", time.Now().Format(time.RFC3339)))

		log.Info(ctx, LogInitRepo)
		repoFactory := postgres.NewRepositoryFactory(database.Pool(), database.Gorm())
		productRepo := repoFactory.ProductRepository()
		categoryRepo := repoFactory.CategoryRepository()
		fastCategoryRepo := repoFactory.FastCategoryRepository()
		cartRepo := repoFactory.CartRepository()
		userRepo := repoFactory.UserRepository()
		redisStore := cache.NewRedisRevocationStore(redisClient, cfg.Redis.KeyPrefix)
		revocations := cache.NewResilientRevocationStore(redisStore, redisBreaker(&cfg.Redis.Resilience))

		log.Info(ctx, LogInitServices)
		serviceFactory := services.NewServiceFactory(
			cfg.JWT.SecretKey,
			cfg.JWT.GetTokenTTL(),
			cfg.JWT.Issuer,
			cfg.JWT.BCryptCost,
		)

		log.Info(ctx, LogInitUseCases)
		catalogUseCase := app.NewCatalogUseCase(productRepo)
		categoryUseCase := app.NewCategoryUseCase(categoryRepo)
		fastCategoryUseCase := app.NewFastCategoryUseCase(fastCategoryRepo)
		cartUseCase := app.NewCartUseCase(cartRepo, productRepo)
		userUseCase := app.NewUserUseCase(userRepo, serviceFactory.PasswordService(), serviceFactory.TokenService(), revocations)

		log.Info(ctx, LogInitHTTPServer)
		server := shophttp.NewApp(shophttp.ServerConfig{
			ReadTimeout:  cfg.HTTP.ReadTimeout,
			WriteTimeout: cfg.HTTP.WriteTimeout,
		})
		shophttp.SetupRouter(server, shophttp.Dependencies{
			Catalog:        catalogUseCase,
			Categories:     categoryUseCase,
			FastCategories: fastCategoryUseCase,
			Cart:           cartUseCase,
			Users:          userUseCase,
			Cookie: shophttp.CookieSettings{
				Name:     cfg.Cookie.Name,
				Secure:   cfg.Cookie.Secure,
				SameSite: cfg.Cookie.SameSite,
				Domain:   cfg.Cookie.Domain,
			},
			CORSOrigins: cfg.HTTP.CORSOrigins,
			Health:      database.Ping,
			Logger:      log,
		})

		log.Info(ctx, LogStartingHTTP, zap.String("address", cfg.HTTP.GetAddress()))
		listen := func() error {
			return server.Listen(cfg.HTTP.GetAddress())
		}

		if err := shutdown.Serve(ctx, listen, cfg.Shutdown.GetTimeout(),
			func(ctx context.Context) error {
				log.Info(ctx, LogStoppingHTTP)
				return server.ShutdownWithContext(ctx)
			},
			func(ctx context.Context) error {
				log.Info(ctx, LogClosingRedis)
				return redisStore.Close(ctx)
			},
			func(ctx context.Context) error {
				log.Info(ctx, LogClosingDB)
				return database.Close(ctx)
			},
		); err != nil {
			if errors.Is(err, shutdown.ErrServeFailed) {
				log.Error(ctx, ErrStartHTTPServer, zap.Error(err))
				exitCode = 1
				return
			}
			log.Warn(ctx, LogShutdownWithErrors, zap.Error(err))
			return
		}

		log.Info(ctx, LogServiceShutdownDone)
	}()

	if exitCode != 0 {
		os.Exit(exitCode)
	}
}
