// Package entities содержит доменные сущности магазина и таксономию ошибок.
package entities

import (
	"errors"
	"strings"
)

// Виды ошибок. Каждая доменная ошибка относится ровно к одному виду,
// по которому транспортный слой выбирает код ответа.
var (
	ErrValidation   = errors.New("validation error")
	ErrDuplicateKey = errors.New("duplicate key")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)

// Error - доменная ошибка с безопасным для клиента сообщением.
type Error struct {
	Kind    error
	Message string
	Details []string
}

// NewError создает ошибку вида kind.
func NewError(kind error, message string, details ...string) *Error {
	return &Error{Kind: kind, Message: message, Details: details}
}

// NewValidationError создает ошибку валидации.
func NewValidationError(message string, details ...string) *Error {
	return NewError(ErrValidation, message, details...)
}

func (e *Error) Error() string {
	if len(e.Details) == 0 {
		return e.Message
	}
	return e.Message + ": " + strings.Join(e.Details, "; ")
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// Ошибки сущностей.
var (
	ErrProductNotFound   = NewError(ErrNotFound, "product not found")
	ErrDuplicateSKU      = NewError(ErrDuplicateKey, "product with this sku already exists")
	ErrProductReferenced = NewError(ErrConflict, "product is referenced by cart items")

	ErrCategoryNotFound      = NewError(ErrNotFound, "category not found")
	ErrDuplicateCategoryName = NewError(ErrDuplicateKey, "category with this name already exists")

	ErrFastCategoryNotFound      = NewError(ErrNotFound, "fast category not found")
	ErrDuplicateFastCategoryName = NewError(ErrDuplicateKey, "fast category with this name already exists")

	ErrCartItemNotFound = NewError(ErrNotFound, "cart item not found")
	ErrCartItemConflict = NewError(ErrConflict, "cart item was modified concurrently, retry the request")
	ErrCartItemTooLarge = NewValidationError("cart item quantity is too large")

	ErrUserNotFound       = NewError(ErrNotFound, "user not found")
	ErrEmailAlreadyExists = NewError(ErrDuplicateKey, "user with this email already exists")
	ErrInvalidEmail       = NewValidationError("invalid email format")
	ErrPasswordTooShort   = NewValidationError("password is too short")
	ErrInvalidID          = NewValidationError("invalid id")
	ErrNothingToUpdate    = NewValidationError("no data to update")
)
