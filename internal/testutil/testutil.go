package testutil

import (
	"globetrotter/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestUser creates a test user
func NewTestUser(id int64, name, color string) *domain.User {
	return &domain.User{
		ID:    id,
		Name:  name,
		Color: color,
	}
}

// NewTestCountry creates a test country
func NewTestCountry(code, name string) *domain.Country {
	return &domain.Country{
		Code: code,
		Name: name,
	}
}
