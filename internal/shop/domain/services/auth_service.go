// Package services содержит доменные типы и ошибки аутентификации.
package services

import (
	"goshop/internal/shop/domain/entities"
)

// Ошибки домена аутентификации.
// Неизвестный email и неверный пароль дают одну и ту же ошибку ErrInvalidCredentials.
var (
	ErrInvalidCredentials = entities.NewError(entities.ErrUnauthorized, "invalid email or password")
	ErrAccountDisabled    = entities.NewError(entities.ErrForbidden, "account is not active")
	ErrNotAuthenticated   = entities.NewError(entities.ErrUnauthorized, "authentication required")
	ErrInsufficientRole   = entities.NewError(entities.ErrForbidden, "insufficient permissions")
)
