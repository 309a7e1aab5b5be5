package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"goshop/internal/shop/domain/entities"
	"goshop/internal/shop/domain/services"
	svc "goshop/internal/shop/ports/services"
	"goshop/pkg/logger"
)

// Константы для работы с JWT.
const (
	methodIssue  = "Issue"
	methodVerify = "Verify"

	msgIssuingToken    = "issuing session token"
	msgTokenIssued     = "token issued successfully"
	msgVerifyingToken  = "verifying token"
	msgTokenVerified   = "token verified successfully"
	msgTokenExpired    = "token has expired"
	msgEmptySecretKey  = "empty secret key provided"
	msgInvalidIdentity = "token carries no user identity"

	//nolint:gosec
	errSigningToken = "error signing token"
	//nolint:gosec
	errParsingToken       = "error parsing token"
	errCtxGeneratingToken = "generating token"
	errCtxValidatingToken = "validating token"
)

// ErrInvalidAlgorithm представляет статическую ошибку неверного алгоритма подписи.
var ErrInvalidAlgorithm = errors.New("invalid signing algorithm")

// Claims используется для адаптации между доменной моделью и библиотекой JWT.
type Claims struct {
	UserID int64         `json:"id"`
	Email  string        `json:"email"`
	Role   entities.Role `json:"role"`
	jwt.RegisteredClaims
}

// ServiceJWT реализует TokenService на HS256.
type ServiceJWT struct {
	config services.JWTConfig
	now    func() time.Time
}

// NewJWT создает новый экземпляр сервиса JWT.
func NewJWT(secretKey string, tokenTTL time.Duration, issuer string) *ServiceJWT {
	return &ServiceJWT{
		config: services.JWTConfig{
			SecretKey: []byte(secretKey),
			TokenTTL:  tokenTTL,
			Issuer:    issuer,
		},
		now: time.Now,
	}
}

// WithClock подменяет источник времени.
func (s *ServiceJWT) WithClock(now func() time.Time) *ServiceJWT {
	s.now = now
	return s
}

// TTL возвращает время жизни токена.
func (s *ServiceJWT) TTL() time.Duration {
	return s.config.TokenTTL
}

func domainToJWTClaims(claims services.Claims, id, issuer string, issuedAt, expiresAt time.Time) Claims {
	return Claims{
		UserID: claims.UserID,
		Email:  claims.Email,
		Role:   claims.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        id,
			Issuer:    issuer,
			Subject:   strconv.FormatInt(claims.UserID, 10),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
}

func jwtToDomainClaims(claims *Claims) *services.VerifiedToken {
	verified := &services.VerifiedToken{
		Claims: services.Claims{
			UserID: claims.UserID,
			Email:  claims.Email,
			Role:   claims.Role,
		},
		ID: claims.ID,
	}
	if claims.ExpiresAt != nil {
		verified.ExpiresAt = claims.ExpiresAt.Time
	}
	return verified
}

// Issue подписывает токен с данными пользователя.
func (s *ServiceJWT) Issue(ctx context.Context, claims services.Claims) (*services.IssuedToken, error) {
	log := logger.Log(ctx).With(
		zap.String("method", methodIssue),
		zap.Int64("userID", claims.UserID),
	)
	log.Debug(ctx, msgIssuingToken)

	if len(s.config.SecretKey) == 0 {
		log.Error(ctx, msgEmptySecretKey)
		return nil, fmt.Errorf("%s: %w: empty secret key", errCtxGeneratingToken, services.ErrGeneratingJWTToken)
	}

	now := s.now()
	expiresAt := now.Add(s.config.TokenTTL)
	id := uuid.NewString()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, domainToJWTClaims(claims, id, s.config.Issuer, now, expiresAt))

	tokenString, err := token.SignedString(s.config.SecretKey)
	if err != nil {
		log.Error(ctx, errSigningToken, zap.Error(err))
		return nil, fmt.Errorf("%s: %w: %w", errCtxGeneratingToken, services.ErrGeneratingJWTToken, err)
	}

	log.Debug(ctx, msgTokenIssued, zap.Time("expiresAt", expiresAt))
	return &services.IssuedToken{Token: tokenString, ID: id, ExpiresAt: expiresAt}, nil
}

// Verify проверяет подпись и срок действия токена.
func (s *ServiceJWT) Verify(ctx context.Context, tokenString string) (*services.VerifiedToken, error) {
	log := logger.Log(ctx).With(zap.String("method", methodVerify))
	log.Debug(ctx, msgVerifyingToken)

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAlgorithm, token.Header["alg"])
		}
		return s.config.SecretKey, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			log.Debug(ctx, msgTokenExpired)
			return nil, fmt.Errorf("%s: %w", errCtxValidatingToken, services.ErrExpiredJWTToken)
		}
		log.Debug(ctx, errParsingToken, zap.Error(err))
		return nil, fmt.Errorf("%s: %w: %w", errCtxValidatingToken, services.ErrInvalidJWTToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%s: %w", errCtxValidatingToken, services.ErrInvalidJWTToken)
	}

	if claims.UserID <= 0 || claims.ID == "" {
		log.Debug(ctx, msgInvalidIdentity)
		return nil, fmt.Errorf("%s: %w", errCtxValidatingToken, services.ErrInvalidJWTToken)
	}

	log.Debug(ctx, msgTokenVerified, zap.Int64("userID", claims.UserID))
	return jwtToDomainClaims(claims), nil
}

var _ svc.TokenService = (*ServiceJWT)(nil)
