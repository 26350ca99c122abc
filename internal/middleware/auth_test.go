package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bfaucher/ecureuil-backend/internal/auth"
	"github.com/labstack/echo/v4"
)

const testSecret = "test-secret"

func runAuth(t *testing.T, req *http.Request) (*httptest.ResponseRecorder, int64) {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seenUserID int64
	handler := Authenticate(testSecret)(func(c echo.Context) error {
		seenUserID = GetUserID(c)
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	return rec, seenUserID
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/comptes", nil)

	rec, _ := runAuth(t, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", rec.Code)
	}
}

func TestAuthenticate_MalformedHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/comptes", nil)
	req.Header.Set("Authorization", "Token abc")

	rec, _ := runAuth(t, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", rec.Code)
	}
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/comptes", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")

	rec, _ := runAuth(t, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("Expected status 403, got %d", rec.Code)
	}
}

func TestAuthenticate_WrongSecret(t *testing.T) {
	token, err := auth.GenerateToken("other-secret", 7)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/comptes", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rec, _ := runAuth(t, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("Expected status 403, got %d", rec.Code)
	}
}

func TestAuthenticate_ValidToken(t *testing.T) {
	token, err := auth.GenerateToken(testSecret, 7)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/comptes", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rec, userID := runAuth(t, req)

	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}
	if userID != 7 {
		t.Errorf("Expected user ID 7 in context, got %d", userID)
	}
}
