package service

import (
	"strings"
	"time"
)

// beforeToday reports whether d falls before the current server date, compared
// at day granularity in server time.
func beforeToday(d time.Time) bool {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, now.Location())
	return day.Before(today)
}

// blank reports whether s is nil, empty or whitespace-only.
func blank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}

const noFieldsToUpdate = "No fields to update"
