package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapters "goshop/internal/shop/adapters/services"
	"goshop/internal/shop/domain/entities"
	"goshop/internal/shop/domain/services"
)

const testSecret = "test-secret-key"

func TestJWTIssueAndVerify(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	svc := adapters.NewJWT(testSecret, time.Hour, "goshop").WithClock(clock)
	claims := services.Claims{UserID: 7, Email: "a@b.io", Role: entities.RoleAdmin}

	issued, err := svc.Issue(ctx, claims)
	require.NoError(t, err)
	assert.NotEmpty(t, issued.ID)
	assert.Equal(t, now.Add(time.Hour), issued.ExpiresAt)

	t.Run("valid token round trips claims", func(t *testing.T) {
		verified, err := svc.Verify(ctx, issued.Token)
		require.NoError(t, err)
		assert.Equal(t, claims, verified.Claims)
		assert.Equal(t, issued.ID, verified.ID)
		assert.True(t, issued.ExpiresAt.Equal(verified.ExpiresAt))
	})

	t.Run("expired token", func(t *testing.T) {
		later := adapters.NewJWT(testSecret, time.Hour, "goshop").
			WithClock(func() time.Time { return now.Add(2 * time.Hour) })

		_, err := later.Verify(ctx, issued.Token)
		require.ErrorIs(t, err, services.ErrExpiredJWTToken)
		assert.ErrorIs(t, err, entities.ErrUnauthorized)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := adapters.NewJWT("another-secret", time.Hour, "goshop").WithClock(clock)

		_, err := other.Verify(ctx, issued.Token)
		require.ErrorIs(t, err, services.ErrInvalidJWTToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.Verify(ctx, "not.a.token")
		require.ErrorIs(t, err, services.ErrInvalidJWTToken)
	})

	t.Run("foreign signing method", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodNone, adapters.Claims{
			UserID: 7,
			RegisteredClaims: jwt.RegisteredClaims{
				ID:        "x",
				ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			},
		})
		signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = svc.Verify(ctx, signed)
		require.ErrorIs(t, err, services.ErrInvalidJWTToken)
	})

	t.Run("token without identity", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, adapters.Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				ID:        "x",
				ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			},
		})
		signed, err := token.SignedString([]byte(testSecret))
		require.NoError(t, err)

		_, err = svc.Verify(ctx, signed)
		require.ErrorIs(t, err, services.ErrInvalidJWTToken)
	})
}

func TestJWTEmptySecret(t *testing.T) {
	_, err := adapters.NewJWT("", time.Hour, "goshop").Issue(context.Background(), services.Claims{UserID: 1})
	require.ErrorIs(t, err, services.ErrGeneratingJWTToken)
}

func TestServiceFactory(t *testing.T) {
	factory := adapters.NewServiceFactory(testSecret, 24*time.Hour, "goshop", 4)
	require.NotNil(t, factory.PasswordService())
	require.NotNil(t, factory.TokenService())
	assert.Equal(t, 24*time.Hour, factory.TokenService().TTL())
}
