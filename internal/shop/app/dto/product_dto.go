package dto

import (
	"maps"

	"github.com/shopspring/decimal"

	"goshop/internal/shop/domain/entities"
)

// ProductRequest - тело запроса на создание или изменение товара.
// color и img верхнего уровня переносятся в productData.
type ProductRequest struct {
	SKU                   *string             `json:"sku"`
	Name                  *string             `json:"name"`
	Category              *string             `json:"category"`
	Description           *string             `json:"description"`
	Price                 Decimal             `json:"price"`
	Stock                 Int                 `json:"stock"`
	Weight                Decimal             `json:"weight"`
	PackageVolume         Decimal             `json:"packageVolume"`
	QuantityInPackage     Int                 `json:"quantityInPackage"`
	TransportPackageType  *string             `json:"transportPackageType"`
	IndividualPackageType *string             `json:"individualPackageType"`
	BrandingTypes         []string            `json:"brandingTypes"`
	ProductData           entities.Attributes `json:"productData"`
	Color                 *string             `json:"color"`
	Img                   StringList          `json:"img"`
}

// ToPatch преобразует запрос в частичное обновление товара.
func (r *ProductRequest) ToPatch() entities.ProductPatch {
	return entities.ProductPatch{
		SKU:                   r.SKU,
		Name:                  r.Name,
		Category:              r.Category,
		Description:           r.Description,
		Price:                 r.Price.Money(),
		Stock:                 r.Stock.Ptr(),
		Weight:                r.Weight.Ptr(),
		PackageVolume:         r.PackageVolume.Ptr(),
		QuantityInPackage:     r.QuantityInPackage.Ptr(),
		TransportPackageType:  r.TransportPackageType,
		IndividualPackageType: r.IndividualPackageType,
		BrandingTypes:         r.BrandingTypes,
		Attributes:            r.attributes(),
	}
}

// ToProduct преобразует запрос в новый товар со значениями по умолчанию.
func (r *ProductRequest) ToProduct() *entities.Product {
	product := &entities.Product{
		Price:         decimal.Zero,
		BrandingTypes: []string{},
		Attributes:    entities.Attributes{},
	}
	product.Apply(r.ToPatch())
	return product
}

func (r *ProductRequest) attributes() entities.Attributes {
	if r.ProductData == nil && r.Color == nil && r.Img == nil {
		return nil
	}

	attrs := make(entities.Attributes, len(r.ProductData)+2)
	maps.Copy(attrs, r.ProductData)
	if r.Color != nil {
		attrs[entities.AttrColor] = *r.Color
	}
	if r.Img != nil {
		attrs[entities.AttrImages] = []string(r.Img)
	}
	return attrs
}
