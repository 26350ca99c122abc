package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bfaucher/ecureuil-backend/internal/middleware"
)

// newJSONContext builds an echo context carrying a JSON body and an
// authenticated user, the way requests look after the auth middleware ran.
func newJSONContext(t *testing.T, method, target, body string, userID int64) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != 0 {
		ctx := context.WithValue(req.Context(), middleware.UserIDKey, userID)
		req = req.WithContext(ctx)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func todayStr() string {
	return time.Now().Format("2006-01-02")
}

func yesterdayStr() string {
	return time.Now().AddDate(0, 0, -1).Format("2006-01-02")
}
