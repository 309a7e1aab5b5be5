package postgres

import (
	"gorm.io/gorm"

	"goshop/internal/shop/ports/repositories"
)

// RepositoryFactory создает все необходимые репозитории для работы с PostgreSQL.
type RepositoryFactory struct {
	productRepo      repositories.ProductRepository
	categoryRepo     repositories.CategoryRepository
	fastCategoryRepo repositories.FastCategoryRepository
	cartRepo         repositories.CartRepository
	userRepo         repositories.UserRepository
}

// NewRepositoryFactory создает новую фабрику репозиториев.
// Товары, корзина и пользователи работают через pgx, оба вида категорий - через gorm на том же пуле.
func NewRepositoryFactory(pool PgxPoolInterface, gormDB *gorm.DB) *RepositoryFactory {
	return &RepositoryFactory{
		productRepo:      NewProductRepository(pool),
		categoryRepo:     NewCategoryRepository(gormDB),
		fastCategoryRepo: NewFastCategoryRepository(gormDB),
		cartRepo:         NewCartRepository(pool),
		userRepo:         NewUserRepository(pool),
	}
}

// ProductRepository возвращает репозиторий товаров.
func (f *RepositoryFactory) ProductRepository() repositories.ProductRepository {
	return f.productRepo
}

// CategoryRepository возвращает репозиторий категорий.
func (f *RepositoryFactory) CategoryRepository() repositories.CategoryRepository {
	return f.categoryRepo
}

// FastCategoryRepository возвращает репозиторий быстрых категорий.
func (f *RepositoryFactory) FastCategoryRepository() repositories.FastCategoryRepository {
	return f.fastCategoryRepo
}

// CartRepository возвращает репозиторий корзины.
func (f *RepositoryFactory) CartRepository() repositories.CartRepository {
	return f.cartRepo
}

// UserRepository возвращает репозиторий пользователей.
func (f *RepositoryFactory) UserRepository() repositories.UserRepository {
	return f.userRepo
}
