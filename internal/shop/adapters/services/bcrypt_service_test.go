package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	adapters "goshop/internal/shop/adapters/services"
	"goshop/internal/shop/domain/entities"
)

func TestBcryptHashAndVerify(t *testing.T) {
	ctx := context.Background()
	svc := adapters.NewBcrypt(bcrypt.MinCost)

	hash, err := svc.Hash(ctx, "correct-horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct-horse", hash)

	t.Run("matching password", func(t *testing.T) {
		ok, err := svc.Verify(ctx, "correct-horse", hash)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("wrong password is not an error", func(t *testing.T) {
		ok, err := svc.Verify(ctx, "battery-staple", hash)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("empty input", func(t *testing.T) {
		ok, err := svc.Verify(ctx, "", hash)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("malformed hash", func(t *testing.T) {
		_, err := svc.Verify(ctx, "correct-horse", "not-a-hash")
		require.Error(t, err)
	})

	t.Run("salted hashes differ", func(t *testing.T) {
		other, err := svc.Hash(ctx, "correct-horse")
		require.NoError(t, err)
		assert.NotEqual(t, hash, other)
	})
}

func TestBcryptRejectsShortPassword(t *testing.T) {
	_, err := adapters.NewBcrypt(bcrypt.MinCost).Hash(context.Background(), "short")
	require.ErrorIs(t, err, entities.ErrPasswordTooShort)
	assert.ErrorIs(t, err, entities.ErrValidation)
}
