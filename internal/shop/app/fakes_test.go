package app_test

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"goshop/internal/shop/domain/entities"
)

// memoryCatalog хранит товары в памяти и позволяет менять цену между вызовами.
type memoryCatalog struct {
	mu       sync.Mutex
	products map[int64]*entities.Product
}

func newMemoryCatalog(products ...*entities.Product) *memoryCatalog {
	c := &memoryCatalog{products: make(map[int64]*entities.Product)}
	for _, p := range products {
		c.products[p.ID] = p
	}
	return c
}

func (c *memoryCatalog) setPrice(id int64, price string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.products[id].Price = decimal.RequireFromString(price)
}

func (c *memoryCatalog) Create(_ context.Context, p *entities.Product) (*entities.Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p.ID = int64(len(c.products) + 1)
	c.products[p.ID] = p
	return p, nil
}

func (c *memoryCatalog) FindByID(_ context.Context, id int64) (*entities.Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p, ok := c.products[id]
	if !ok {
		return nil, entities.ErrProductNotFound
	}
	cp := *p
	return &cp, nil
}

func (c *memoryCatalog) List(context.Context, entities.ProductFilter) ([]*entities.Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*entities.Product, 0, len(c.products))
	for _, p := range c.products {
		out = append(out, p)
	}
	return out, nil
}

func (c *memoryCatalog) Update(_ context.Context, id int64, mutate func(*entities.Product) error) (*entities.Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p, ok := c.products[id]
	if !ok {
		return nil, entities.ErrProductNotFound
	}
	cp := *p
	if err := mutate(&cp); err != nil {
		return nil, err
	}
	c.products[id] = &cp
	return &cp, nil
}

func (c *memoryCatalog) Delete(_ context.Context, id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.products[id]; !ok {
		return entities.ErrProductNotFound
	}
	delete(c.products, id)
	return nil
}

// memoryCart - корзина в памяти с той же политикой find-or-accumulate, что и в Postgres.
type memoryCart struct {
	mu      sync.Mutex
	catalog *memoryCatalog
	nextID  int64
	items   map[entities.CartKey]*entities.CartItem
}

func newMemoryCart(catalog *memoryCatalog) *memoryCart {
	return &memoryCart{catalog: catalog, items: make(map[entities.CartKey]*entities.CartItem)}
}

func (c *memoryCart) AddOrAccumulate(
	_ context.Context,
	key entities.CartKey,
	quantity int,
	unitPrice decimal.Decimal,
) (*entities.AddResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if item, ok := c.items[key]; ok {
		item.Quantity += quantity
		return &entities.AddResult{Item: *item}, nil
	}
	c.nextID++
	item := &entities.CartItem{
		ID:                 c.nextID,
		CartKey:            key,
		Quantity:           quantity,
		PriceAtTimeOfOrder: decimal.NewNullDecimal(unitPrice),
	}
	c.items[key] = item
	return &entities.AddResult{Item: *item, Created: true}, nil
}

func (c *memoryCart) SetQuantity(_ context.Context, key entities.CartKey, quantity int) (*entities.CartItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	item, ok := c.items[key]
	if !ok {
		return nil, entities.ErrCartItemNotFound
	}
	item.Quantity = quantity
	cp := *item
	return &cp, nil
}

func (c *memoryCart) Remove(_ context.Context, key entities.CartKey) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[key]; !ok {
		return entities.ErrCartItemNotFound
	}
	delete(c.items, key)
	return nil
}

func (c *memoryCart) Clear(_ context.Context, userID int64) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var removed int64
	for key := range c.items {
		if key.UserID == userID {
			delete(c.items, key)
			removed++
		}
	}
	return removed, nil
}

func (c *memoryCart) Lines(ctx context.Context, userID int64) ([]entities.CartLine, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	lines := make([]entities.CartLine, 0)
	for key, item := range c.items {
		if key.UserID != userID {
			continue
		}
		product, err := c.catalog.FindByID(ctx, key.ProductID)
		if err != nil {
			return nil, err
		}
		lines = append(lines, entities.CartLine{
			Item:         *item,
			SKU:          product.SKU,
			Name:         product.Name,
			CurrentPrice: product.Price,
			Attributes:   product.Attributes,
		})
	}
	return lines, nil
}

func (c *memoryCart) rows() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}
