package helper

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// ParseDate accepts RFC3339 or bare YYYY-MM-DD and returns a UTC time.
// All stored timestamps are UTC; range bounds are compared as timestamps
// in SQL, never as raw strings.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// QueryDate reads an optional date query param. Missing/empty yields nil.
func QueryDate(c *fiber.Ctx, name string) (*time.Time, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	t, err := ParseDate(raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
