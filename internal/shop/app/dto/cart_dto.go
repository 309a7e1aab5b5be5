package dto

import (
	"time"

	"goshop/internal/shop/domain/entities"
)

// CartItemRequest - тело запросов корзины add, update и remove.
type CartItemRequest struct {
	ProductID Int    `json:"productId"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	Quantity  Int    `json:"quantity"`
}

// Key возвращает ключ строки корзины пользователя.
func (r *CartItemRequest) Key(userID int64) entities.CartKey {
	return entities.CartKey{
		UserID:    userID,
		ProductID: r.ProductID.ID(),
		Size:      r.Size,
		Color:     r.Color,
	}
}

// CartItemView - строка корзины в ответе на add и update.
type CartItemView struct {
	ID                 int64     `json:"id"`
	ProductID          int64     `json:"productId"`
	Size               string    `json:"size"`
	Color              string    `json:"color"`
	Quantity           int       `json:"quantity"`
	PriceAtTimeOfOrder *string   `json:"priceAtTimeOfOrder"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// NewCartItemView формирует представление строки корзины.
func NewCartItemView(item *entities.CartItem) CartItemView {
	view := CartItemView{
		ID:        item.ID,
		ProductID: item.ProductID,
		Size:      item.Size,
		Color:     item.Color,
		Quantity:  item.Quantity,
		UpdatedAt: item.UpdatedAt,
	}
	if item.PriceAtTimeOfOrder.Valid {
		price := item.PriceAtTimeOfOrder.Decimal.StringFixed(2)
		view.PriceAtTimeOfOrder = &price
	}
	return view
}

// CartMutationResponse - ответ на изменение корзины.
type CartMutationResponse struct {
	Message string        `json:"message"`
	Item    *CartItemView `json:"item,omitempty"`
}

// CartLineResponse - строка корзины в ответе GET /cart.
type CartLineResponse struct {
	ID             int64   `json:"id"`
	ProductID      int64   `json:"productId"`
	SKU            string  `json:"sku"`
	Name           string  `json:"name"`
	Size           string  `json:"size"`
	Color          string  `json:"color"`
	Quantity       int     `json:"quantity"`
	UnitPrice      float64 `json:"unitPrice"`
	TotalItemPrice float64 `json:"totalItemPrice"`
	ImgURL         string  `json:"imgUrl"`
}

// CartResponse - ответ GET /cart.
type CartResponse struct {
	Items      []CartLineResponse `json:"items"`
	TotalItems int                `json:"totalItems"`
	TotalSum   string             `json:"totalSum"`
}

// NewCartResponse формирует ответ корзины. Округление выполняется только здесь.
func NewCartResponse(cart *entities.Cart) CartResponse {
	items := make([]CartLineResponse, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		items = append(items, CartLineResponse{
			ID:             line.Item.ID,
			ProductID:      line.Item.ProductID,
			SKU:            line.SKU,
			Name:           line.Name,
			Size:           line.Item.Size,
			Color:          line.Item.Color,
			Quantity:       line.Item.Quantity,
			UnitPrice:      line.UnitPrice().Round(2).InexactFloat64(),
			TotalItemPrice: line.Total().Round(2).InexactFloat64(),
			ImgURL:         line.Attributes.FirstImage(),
		})
	}
	return CartResponse{
		Items:      items,
		TotalItems: cart.TotalItems,
		TotalSum:   cart.TotalSum.StringFixed(2),
	}
}
