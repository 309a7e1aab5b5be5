package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartKey однозначно определяет строку корзины.
type CartKey struct {
	UserID    int64
	ProductID int64
	Size      string
	Color     string
}

// CartItem - строка корзины пользователя.
// PriceAtTimeOfOrder фиксируется при первом добавлении и дальше не пересчитывается.
type CartItem struct {
	CartKey

	ID                 int64
	Quantity           int
	PriceAtTimeOfOrder decimal.NullDecimal
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// CartLine - строка корзины вместе с данными товара для отображения.
type CartLine struct {
	Item         CartItem
	SKU          string
	Name         string
	CurrentPrice decimal.Decimal
	Attributes   Attributes
}

// UnitPrice возвращает зафиксированную цену, а при ее отсутствии - текущую цену товара.
func (l CartLine) UnitPrice() decimal.Decimal {
	if l.Item.PriceAtTimeOfOrder.Valid {
		return l.Item.PriceAtTimeOfOrder.Decimal
	}
	return l.CurrentPrice
}

// Total возвращает стоимость строки.
func (l CartLine) Total() decimal.Decimal {
	return l.UnitPrice().Mul(decimal.NewFromInt(int64(l.Item.Quantity)))
}

// Cart - корзина с итогами.
type Cart struct {
	Lines      []CartLine
	TotalItems int
	TotalSum   decimal.Decimal
}

// NewCart считает итоги корзины в точной десятичной арифметике.
func NewCart(lines []CartLine) *Cart {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.Total())
	}
	return &Cart{
		Lines:      lines,
		TotalItems: len(lines),
		TotalSum:   total,
	}
}

// AddResult - итог добавления товара в корзину.
type AddResult struct {
	Item    CartItem
	Created bool
}
