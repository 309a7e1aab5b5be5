package entities

import (
	"strings"
	"time"
)

// Role - роль пользователя.
type Role string

// Роли пользователей.
const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// ParseRole возвращает роль и признак того, что значение известно.
func ParseRole(s string) (Role, bool) {
	switch r := Role(strings.ToLower(strings.TrimSpace(s))); r {
	case RoleUser, RoleAdmin:
		return r, true
	default:
		return "", false
	}
}

// Status - состояние учетной записи.
type Status string

// Состояния учетной записи.
const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusBanned   Status = "banned"
)

// ParseStatus возвращает статус и признак того, что значение известно.
func ParseStatus(s string) (Status, bool) {
	switch st := Status(strings.ToLower(strings.TrimSpace(s))); st {
	case StatusActive, StatusInactive, StatusBanned:
		return st, true
	default:
		return "", false
	}
}

// User представляет учетную запись покупателя или администратора.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	Status       Status    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// IsActive сообщает, может ли пользователь входить в систему.
func (u *User) IsActive() bool {
	return u.Status == StatusActive
}

// IsAdmin сообщает, является ли пользователь администратором.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CredentialsUpdate - изменение учетных данных администратором.
// Пустые поля не меняются.
type CredentialsUpdate struct {
	Role         *Role
	Status       *Status
	PasswordHash *string
}

// IsEmpty сообщает, что обновлять нечего.
func (u CredentialsUpdate) IsEmpty() bool {
	return u.Role == nil && u.Status == nil && u.PasswordHash == nil
}
