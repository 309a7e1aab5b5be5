package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"

	"goshop/internal/shop/adapters/http/middleware"
	"goshop/internal/shop/domain/entities"
	"goshop/internal/shop/ports/api"
	"goshop/pkg/logger"
)

// HealthCheck проверяет доступность зависимостей.
type HealthCheck func(ctx context.Context) error

// Dependencies - все, что нужно маршрутизатору.
type Dependencies struct {
	Catalog        api.CatalogUseCase
	Categories     api.CategoryUseCase
	FastCategories api.FastCategoryUseCase
	Cart           api.CartUseCase
	Users          api.UserUseCase
	Cookie         CookieSettings
	CORSOrigins    []string
	Health         HealthCheck
	Logger         *logger.Logger
}

// ServerConfig - параметры fiber приложения.
type ServerConfig struct {
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// NewApp создает fiber приложение с общим обработчиком ошибок.
func NewApp(cfg ServerConfig) *fiber.App {
	return fiber.New(fiber.Config{
		AppName:      "goshop",
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		ErrorHandler: ErrorHandler,
	})
}

// SetupRouter настраивает маршрутизацию для HTTP сервера.
func SetupRouter(app *fiber.App, deps Dependencies) {
	products := NewProductHandler(deps.Catalog)
	categories := NewCategoryHandler(deps.Categories)
	fastCategories := NewFastCategoryHandler(deps.FastCategories)
	cart := NewCartHandler(deps.Cart)
	users := NewUserHandler(deps.Users, deps.Cookie)
	admin := NewAdminHandler(deps.Users)

	authenticated := middleware.NewAuthMiddleware(deps.Users, deps.Cookie.Name)
	adminOnly := middleware.RequireRole(entities.RoleAdmin)

	// Middleware для всех запросов.
	app.Use(middleware.NewRequestIDMiddleware(deps.Logger))
	app.Use(middleware.NewLoggerMiddleware(ErrorHandler))
	app.Use(middleware.NewRecoveryMiddleware())
	if len(deps.CORSOrigins) > 0 {
		app.Use(cors.New(cors.Config{
			AllowOrigins:     deps.CORSOrigins,
			AllowCredentials: true,
			ExposeHeaders:    []string{middleware.HeaderRequestID},
		}))
	}

	app.Get("/health", func(c fiber.Ctx) error {
		if deps.Health != nil {
			if err := deps.Health(middleware.RequestContext(c)); err != nil {
				return fiber.NewError(fiber.StatusServiceUnavailable, "unhealthy")
			}
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})

	apiGroup := app.Group("/api")

	// Каталог: чтение публичное, изменения только для администратора.
	productRoutes := apiGroup.Group("/products")
	productRoutes.Get("/", products.List)
	productRoutes.Get("/category/:category", products.ListByCategory)
	productRoutes.Get("/:id", products.Get)
	productRoutes.Post("/", authenticated, adminOnly, products.Create)
	productRoutes.Put("/:id", authenticated, adminOnly, products.Update)
	productRoutes.Delete("/:id", authenticated, adminOnly, products.Delete)

	categoryRoutes := apiGroup.Group("/categories")
	categoryRoutes.Get("/", categories.List)
	categoryRoutes.Get("/:id", categories.Get)
	categoryRoutes.Post("/", authenticated, adminOnly, categories.Create)
	categoryRoutes.Put("/:id", authenticated, adminOnly, categories.Update)
	categoryRoutes.Delete("/:id", authenticated, adminOnly, categories.Delete)

	fastCategoryRoutes := apiGroup.Group("/fastCategories")
	fastCategoryRoutes.Get("/", fastCategories.List)
	fastCategoryRoutes.Get("/:id", fastCategories.Get)
	fastCategoryRoutes.Post("/", authenticated, adminOnly, fastCategories.Create)
	fastCategoryRoutes.Put("/:id", authenticated, adminOnly, fastCategories.Update)
	fastCategoryRoutes.Delete("/:id", authenticated, adminOnly, fastCategories.Delete)

	// Корзина текущего пользователя.
	cartRoutes := apiGroup.Group("/cart", authenticated)
	cartRoutes.Get("/", cart.Get)
	cartRoutes.Post("/add", cart.Add)
	cartRoutes.Put("/update", cart.Update)
	cartRoutes.Delete("/remove", cart.Remove)
	cartRoutes.Delete("/clear", cart.Clear)

	userRoutes := apiGroup.Group("/users")
	userRoutes.Post("/register", users.Register)
	userRoutes.Post("/login", users.Login)
	userRoutes.Post("/logout", users.Logout)
	userRoutes.Get("/me", authenticated, users.Me)

	adminRoutes := apiGroup.Group("/admin/users", authenticated, adminOnly)
	adminRoutes.Get("/", admin.ListUsers)
	adminRoutes.Post("/manage", admin.ManageUser)
	adminRoutes.Post("/delete", admin.DeleteUser)

	// Обработчик для несуществующих маршрутов.
	app.Use(notFound)
}
