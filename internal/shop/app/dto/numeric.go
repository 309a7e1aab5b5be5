// Package dto содержит объекты передачи данных HTTP API магазина.
package dto

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

var jsonNull = []byte("null")

// Decimal - число из запроса. Принимает JSON-число или строку с числом.
// null, пустая строка, NaN и мусор дают отсутствующее значение, а не ошибку.
type Decimal struct {
	Value decimal.Decimal
	Set   bool
}

// UnmarshalJSON реализует json.Unmarshaler.
func (d *Decimal) UnmarshalJSON(data []byte) error {
	*d = Decimal{}

	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, jsonNull) {
		return nil
	}

	raw := string(data)
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		raw = strings.TrimSpace(s)
	}

	value, err := decimal.NewFromString(raw)
	if err != nil {
		return nil
	}
	d.Value, d.Set = value, true
	return nil
}

// Ptr возвращает указатель на значение или nil, если оно не задано.
func (d Decimal) Ptr() *decimal.Decimal {
	if !d.Set {
		return nil
	}
	v := d.Value
	return &v
}

// Money возвращает значение, округленное до копеек.
func (d Decimal) Money() *decimal.Decimal {
	if !d.Set {
		return nil
	}
	v := d.Value.Round(2)
	return &v
}

// Int - целое число из запроса по тем же правилам, что и Decimal.
// Дробная часть отбрасывается, значения за пределами типа прижимаются к его границе.
type Int struct {
	Decimal
}

func clampInt(d decimal.Decimal, lo, hi int64) int64 {
	d = d.Truncate(0)
	switch {
	case d.GreaterThan(decimal.NewFromInt(hi)):
		return hi
	case d.LessThan(decimal.NewFromInt(lo)):
		return lo
	default:
		return d.IntPart()
	}
}

// Ptr возвращает указатель на целое значение или nil.
func (i Int) Ptr() *int {
	if !i.Set {
		return nil
	}
	v := int(clampInt(i.Value, math.MinInt, math.MaxInt))
	return &v
}

// Or возвращает значение или def, если оно не задано.
func (i Int) Or(def int) int {
	if p := i.Ptr(); p != nil {
		return *p
	}
	return def
}

// ID возвращает идентификатор или 0, если он не задан.
func (i Int) ID() int64 {
	if !i.Set {
		return 0
	}
	return clampInt(i.Value, math.MinInt64, math.MaxInt64)
}

// StringList принимает строку или массив строк.
type StringList []string

// UnmarshalJSON реализует json.Unmarshaler.
func (l *StringList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, jsonNull) {
		*l = nil
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*l = StringList{single}
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	if list == nil {
		list = []string{}
	}
	*l = list
	return nil
}
