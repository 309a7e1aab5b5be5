package http_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"goshop/internal/shop/domain/entities"
	"goshop/internal/shop/domain/services"
	"goshop/internal/shop/ports/api"
)

type mockCatalog struct {
	mock.Mock
}

func (m *mockCatalog) Create(ctx context.Context, product *entities.Product) (*entities.Product, error) {
	args := m.Called(ctx, product)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Product), args.Error(1)
}

func (m *mockCatalog) Get(ctx context.Context, id int64) (*entities.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Product), args.Error(1)
}

func (m *mockCatalog) List(ctx context.Context, filter entities.ProductFilter) ([]*entities.Product, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Product), args.Error(1)
}

func (m *mockCatalog) Update(ctx context.Context, id int64, patch entities.ProductPatch) (*entities.Product, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Product), args.Error(1)
}

func (m *mockCatalog) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockCategories struct {
	mock.Mock
}

func (m *mockCategories) Create(ctx context.Context, category *entities.Category) (*entities.Category, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Category), args.Error(1)
}

func (m *mockCategories) Get(ctx context.Context, id int64) (*entities.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Category), args.Error(1)
}

func (m *mockCategories) List(ctx context.Context) ([]*entities.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Category), args.Error(1)
}

func (m *mockCategories) Update(ctx context.Context, id int64, patch entities.CategoryPatch) (*entities.Category, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Category), args.Error(1)
}

func (m *mockCategories) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockFastCategories struct {
	mock.Mock
}

func (m *mockFastCategories) Create(ctx context.Context, category *entities.FastCategory) (*entities.FastCategory, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.FastCategory), args.Error(1)
}

func (m *mockFastCategories) Get(ctx context.Context, id int64) (*entities.FastCategory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.FastCategory), args.Error(1)
}

func (m *mockFastCategories) List(ctx context.Context) ([]*entities.FastCategory, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.FastCategory), args.Error(1)
}

func (m *mockFastCategories) Update(
	ctx context.Context,
	id int64,
	patch entities.FastCategoryPatch,
) (*entities.FastCategory, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.FastCategory), args.Error(1)
}

func (m *mockFastCategories) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockCart struct {
	mock.Mock
}

func (m *mockCart) GetCart(ctx context.Context, userID int64) (*entities.Cart, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Cart), args.Error(1)
}

func (m *mockCart) AddItem(ctx context.Context, key entities.CartKey, quantity int) (*entities.AddResult, error) {
	args := m.Called(ctx, key, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.AddResult), args.Error(1)
}

func (m *mockCart) SetQuantity(ctx context.Context, key entities.CartKey, quantity int) (*entities.CartItem, error) {
	args := m.Called(ctx, key, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.CartItem), args.Error(1)
}

func (m *mockCart) RemoveItem(ctx context.Context, key entities.CartKey) error {
	return m.Called(ctx, key).Error(0)
}

func (m *mockCart) Clear(ctx context.Context, userID int64) error {
	return m.Called(ctx, userID).Error(0)
}

type mockUsers struct {
	mock.Mock
}

func (m *mockUsers) Register(ctx context.Context, email, password string) (*entities.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUsers) Login(ctx context.Context, email, password string) (*api.Session, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*api.Session), args.Error(1)
}

func (m *mockUsers) Logout(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

func (m *mockUsers) Authenticate(ctx context.Context, token string) (*services.VerifiedToken, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.VerifiedToken), args.Error(1)
}

func (m *mockUsers) List(ctx context.Context) ([]*entities.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.User), args.Error(1)
}

func (m *mockUsers) UpdateCredentials(ctx context.Context, id int64, change api.CredentialsChange) (*entities.User, error) {
	args := m.Called(ctx, id, change)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUsers) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
