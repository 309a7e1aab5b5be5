package entities

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Product - товар каталога.
type Product struct {
	ID                    int64               `json:"id"`
	SKU                   string              `json:"sku"`
	Name                  string              `json:"name"`
	Category              string              `json:"category"`
	Description           string              `json:"description"`
	Price                 decimal.Decimal     `json:"price"`
	Stock                 int                 `json:"stock"`
	Weight                decimal.NullDecimal `json:"weight"`
	PackageVolume         decimal.NullDecimal `json:"packageVolume"`
	QuantityInPackage     *int                `json:"quantityInPackage"`
	TransportPackageType  string              `json:"transportPackageType"`
	IndividualPackageType string              `json:"individualPackageType"`
	BrandingTypes         []string            `json:"brandingTypes"`
	Attributes            Attributes          `json:"productData"`
	CreatedAt             time.Time           `json:"createdAt"`
	UpdatedAt             time.Time           `json:"updatedAt"`
}

// Validate проверяет инварианты товара перед сохранением.
func (p *Product) Validate() error {
	var details []string
	if strings.TrimSpace(p.SKU) == "" {
		details = append(details, "sku is required")
	}
	if strings.TrimSpace(p.Name) == "" {
		details = append(details, "name is required")
	}
	if p.Price.IsNegative() {
		details = append(details, "price must not be negative")
	}
	if p.Stock < 0 {
		details = append(details, "stock must not be negative")
	}
	if p.Weight.Valid && p.Weight.Decimal.IsNegative() {
		details = append(details, "weight must not be negative")
	}
	if p.PackageVolume.Valid && p.PackageVolume.Decimal.IsNegative() {
		details = append(details, "packageVolume must not be negative")
	}
	if p.QuantityInPackage != nil && *p.QuantityInPackage < 0 {
		details = append(details, "quantityInPackage must not be negative")
	}
	details = append(details, p.rangeViolations()...)
	if len(details) > 0 {
		return NewValidationError("invalid product", details...)
	}
	return nil
}

func (p *Product) rangeViolations() []string {
	var details []string
	if TooLong(p.SKU, MaxSKULength) {
		details = append(details, fmt.Sprintf("sku must be at most %d characters", MaxSKULength))
	}
	texts := []struct {
		field string
		value string
	}{
		{"name", p.Name},
		{"category", p.Category},
		{"transportPackageType", p.TransportPackageType},
		{"individualPackageType", p.IndividualPackageType},
	}
	for _, t := range texts {
		if TooLong(t.value, MaxTextLength) {
			details = append(details, fmt.Sprintf("%s must be at most %d characters", t.field, MaxTextLength))
		}
	}
	if exceeds(p.Price, 2, maxPrice) {
		details = append(details, "price is too large")
	}
	if p.Stock > MaxQuantity {
		details = append(details, "stock is too large")
	}
	if p.Weight.Valid && exceeds(p.Weight.Decimal, 3, maxWeight) {
		details = append(details, "weight is too large")
	}
	if p.PackageVolume.Valid && exceeds(p.PackageVolume.Decimal, 4, maxPackageVolume) {
		details = append(details, "packageVolume is too large")
	}
	if p.QuantityInPackage != nil && *p.QuantityInPackage > MaxQuantity {
		details = append(details, "quantityInPackage is too large")
	}
	return details
}

// ProductPatch - частичное обновление товара. nil означает "не менять".
type ProductPatch struct {
	SKU                   *string
	Name                  *string
	Category              *string
	Description           *string
	Price                 *decimal.Decimal
	Stock                 *int
	Weight                *decimal.Decimal
	PackageVolume         *decimal.Decimal
	QuantityInPackage     *int
	TransportPackageType  *string
	IndividualPackageType *string
	BrandingTypes         []string
	Attributes            Attributes
}

// Apply переносит заданные поля патча в товар.
// Набор атрибутов сливается с сохраненным, а не заменяется.
func (p *Product) Apply(patch ProductPatch) {
	setString(&p.SKU, patch.SKU)
	setString(&p.Name, patch.Name)
	setString(&p.Category, patch.Category)
	setString(&p.Description, patch.Description)
	setString(&p.TransportPackageType, patch.TransportPackageType)
	setString(&p.IndividualPackageType, patch.IndividualPackageType)

	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Stock != nil {
		p.Stock = *patch.Stock
	}
	if patch.Weight != nil {
		p.Weight = decimal.NewNullDecimal(*patch.Weight)
	}
	if patch.PackageVolume != nil {
		p.PackageVolume = decimal.NewNullDecimal(*patch.PackageVolume)
	}
	if patch.QuantityInPackage != nil {
		q := *patch.QuantityInPackage
		p.QuantityInPackage = &q
	}
	if patch.BrandingTypes != nil {
		p.BrandingTypes = append([]string(nil), patch.BrandingTypes...)
	}
	if patch.Attributes != nil {
		p.Attributes = MergeAttributes(p.Attributes, patch.Attributes)
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// ProductOrder - поле сортировки списка товаров.
type ProductOrder string

// Допустимые поля сортировки.
const (
	OrderByCreatedAt ProductOrder = "createdAt"
	OrderByName      ProductOrder = "name"
	OrderByPrice     ProductOrder = "price"
)

// ParseProductOrder возвращает поле сортировки; неизвестное значение дает createdAt.
func ParseProductOrder(s string) ProductOrder {
	switch o := ProductOrder(s); o {
	case OrderByName, OrderByPrice, OrderByCreatedAt:
		return o
	default:
		return OrderByCreatedAt
	}
}

// ProductFilter задает выборку и порядок списка товаров.
type ProductFilter struct {
	Category string
	OrderBy  ProductOrder
	Asc      bool
}
