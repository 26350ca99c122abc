package service

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bfaucher/ecureuil-backend/internal/domain"
)

func strPtr(s string) *string { return &s }

func i64Ptr(n int64) *int64 { return &n }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func timePtr(t time.Time) *time.Time { return &t }

func today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
}

func yesterday() time.Time { return today().AddDate(0, 0, -1) }

func tomorrow() time.Time { return today().AddDate(0, 0, 1) }

// requireValidationDetail fails unless err is a ValidationError containing
// the given message.
func requireValidationDetail(t *testing.T, err error, detail string) {
	t.Helper()
	vErr, ok := err.(*domain.ValidationError)
	if !ok {
		t.Fatalf("Expected ValidationError, got %v", err)
	}
	for _, d := range vErr.Details {
		if d == detail {
			return
		}
	}
	t.Fatalf("Expected detail %q in %q", detail, strings.Join(vErr.Details, "; "))
}
