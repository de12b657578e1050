package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"loan-engine/internal/auth"
	"loan-engine/internal/domain/user"
)

const testSecret = "test-secret"

func protectedEcho(t *testing.T) *echo.Echo {
	t.Helper()
	e := echo.New()
	e.HideBanner = true
	e.Use(JWT(testSecret))
	e.GET("/api/loans/1", func(c echo.Context) error {
		idn, ok := auth.IdentityFromContext(c.Request().Context())
		if !ok {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "no identity"})
		}
		return c.JSON(http.StatusOK, map[string]any{"username": idn.Username, "customer_id": idn.CustomerID})
	})
	return e
}

func TestJWT_ValidToken(t *testing.T) {
	e := protectedEcho(t)

	customerID := uint64(3)
	token, err := auth.GenerateToken(&user.User{
		ID: 5, Username: "jane", Role: user.RoleCustomer, CustomerID: &customerID,
	}, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/loans/1", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body=%s", rec.Code, rec.Body.String())
	}
}

func TestJWT_Rejections(t *testing.T) {
	e := protectedEcho(t)

	wrongSecret, err := auth.GenerateToken(&user.User{ID: 5, Username: "jane", Role: user.RoleAdmin},
		"other-secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	expired, err := auth.GenerateToken(&user.User{ID: 5, Username: "jane", Role: user.RoleAdmin},
		testSecret, -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not a bearer token", "Basic abc"},
		{"garbage token", "Bearer not.a.jwt"},
		{"wrong secret", "Bearer " + wrongSecret},
		{"expired token", "Bearer " + expired},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/loans/1", nil)
			if tc.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tc.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)
			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("status = %d, want 401", rec.Code)
			}
		})
	}
}
