package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"

	"goshop/internal/shop/domain/entities"
	"goshop/pkg/logger"
)

var testTime = time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC)

func testContext(t *testing.T) context.Context {
	t.Helper()
	testLogger, err := logger.NewLogger(logger.Development, "debug")
	require.NoError(t, err)
	return logger.NewContext(context.Background(), testLogger)
}

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

var productCols = []string{
	"id", "sku", "name", "category", "description", "price", "stock",
	"weight", "package_volume", "quantity_in_package",
	"transport_package_type", "individual_package_type", "branding_types", "attributes",
	"created_at", "updated_at",
}

func productRows(id int64, sku, price string, attrs entities.Attributes) *pgxmock.Rows {
	weight := "0.350"
	qty := 12
	return pgxmock.NewRows(productCols).AddRow(
		id, sku, "Mug", "kitchen", "ceramic mug", price, 5,
		&weight, (*string)(nil), &qty,
		"box", "bag", []string{"print"}, attrs,
		testTime, testTime,
	)
}

var cartItemCols = []string{"id", "quantity", "price_at_time_of_order", "created_at", "updated_at"}

func cartItemRows(id int64, qty int, price string) *pgxmock.Rows {
	return pgxmock.NewRows(cartItemCols).AddRow(id, qty, &price, testTime, testTime)
}

var userCols = []string{"id", "email", "password_hash", "role", "status", "created_at", "updated_at"}

func userRows(id int64, email string, role entities.Role, status entities.Status) *pgxmock.Rows {
	return pgxmock.NewRows(userCols).AddRow(id, email, "hash", role, status, testTime, testTime)
}
