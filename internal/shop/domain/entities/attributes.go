package entities

import "maps"

// Ключи набора атрибутов, которые используются при формировании ответов.
const (
	AttrColor  = "color"
	AttrImages = "img"
)

// Attributes - полуструктурированный набор дополнительных характеристик товара
// (цвет, изображения, материал и т.п.).
type Attributes map[string]any

// MergeAttributes возвращает объединение existing и partial.
// При совпадении ключей побеждает значение из partial. Исходные карты не изменяются.
func MergeAttributes(existing, partial Attributes) Attributes {
	merged := make(Attributes, len(existing)+len(partial))
	maps.Copy(merged, existing)
	maps.Copy(merged, partial)
	return merged
}

// Merge - то же, что MergeAttributes(a, partial).
func (a Attributes) Merge(partial Attributes) Attributes {
	return MergeAttributes(a, partial)
}

// FirstImage возвращает первое изображение из набора или пустую строку.
func (a Attributes) FirstImage() string {
	switch imgs := a[AttrImages].(type) {
	case string:
		return imgs
	case []string:
		if len(imgs) > 0 {
			return imgs[0]
		}
	case []any:
		if len(imgs) > 0 {
			if s, ok := imgs[0].(string); ok {
				return s
			}
		}
	}
	return ""
}
