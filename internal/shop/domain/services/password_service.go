package services

import "errors"

// ErrHashingFailed - ошибка хеширования пароля.
var ErrHashingFailed = errors.New("failed to hash password")

// MinPasswordLength - минимальная длина пароля.
const MinPasswordLength = 8
