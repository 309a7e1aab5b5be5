package entities

import (
	"math"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Ограничения, которые накладывает схема хранилища.
const (
	MaxSKULength        = 100
	MaxTextLength       = 255
	MaxCartOptionLength = 50
	MaxQuantity         = math.MaxInt32
)

// Верхние границы (не включительно) для колонок NUMERIC(12,s).
var (
	maxPrice         = decimal.New(1, 10)
	maxWeight        = decimal.New(1, 9)
	maxPackageVolume = decimal.New(1, 8)
)

// ErrValueOutOfRange возвращается, когда значение не помещается в колонку хранилища.
var ErrValueOutOfRange = NewValidationError("value is out of range")

// TooLong сообщает, что строка длиннее limit символов.
func TooLong(s string, limit int) bool {
	return utf8.RuneCountInString(s) > limit
}

func exceeds(d decimal.Decimal, places int32, limit decimal.Decimal) bool {
	return d.Round(places).Abs().GreaterThanOrEqual(limit)
}
