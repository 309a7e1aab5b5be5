package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	shophttp "goshop/internal/shop/adapters/http"
	"goshop/internal/shop/domain/entities"
	"goshop/internal/shop/domain/services"
	"goshop/pkg/logger"
)

const (
	userToken  = "user-token"
	adminToken = "admin-token"
	cookieName = "token"
)

var errUnhealthy = errors.New("postgres is down")

type testServer struct {
	app            *fiber.App
	catalog        *mockCatalog
	categories     *mockCategories
	fastCategories *mockFastCategories
	cart           *mockCart
	users          *mockUsers
	health         error
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	testLogger, err := logger.NewLogger(logger.Development, "error")
	require.NoError(t, err)

	s := &testServer{
		catalog:        new(mockCatalog),
		categories:     new(mockCategories),
		fastCategories: new(mockFastCategories),
		cart:           new(mockCart),
		users:          new(mockUsers),
	}

	s.users.On("Authenticate", mock.Anything, userToken).Return(&services.VerifiedToken{
		Claims:    services.Claims{UserID: 1, Email: "user@shop.io", Role: entities.RoleUser},
		ID:        "jti-user",
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil).Maybe()
	s.users.On("Authenticate", mock.Anything, adminToken).Return(&services.VerifiedToken{
		Claims:    services.Claims{UserID: 2, Email: "admin@shop.io", Role: entities.RoleAdmin},
		ID:        "jti-admin",
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil).Maybe()

	s.app = shophttp.NewApp(shophttp.ServerConfig{ReadTimeout: time.Second, WriteTimeout: time.Second})
	shophttp.SetupRouter(s.app, shophttp.Dependencies{
		Catalog:        s.catalog,
		Categories:     s.categories,
		FastCategories: s.fastCategories,
		Cart:           s.cart,
		Users:          s.users,
		Cookie:         shophttp.CookieSettings{Name: cookieName, SameSite: "Lax"},
		Health: func(context.Context) error {
			return s.health
		},
		Logger: testLogger,
	})

	return s
}

func (s *testServer) do(t *testing.T, method, path, token, body string) (*nethttp.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.AddCookie(&nethttp.Cookie{Name: cookieName, Value: token})
	}

	resp, err := s.app.Test(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]any
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

func (s *testServer) assertExpectations(t *testing.T) {
	t.Helper()
	s.catalog.AssertExpectations(t)
	s.categories.AssertExpectations(t)
	s.fastCategories.AssertExpectations(t)
	s.cart.AssertExpectations(t)
	s.users.AssertExpectations(t)
}
