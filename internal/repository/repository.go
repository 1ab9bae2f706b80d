package repository

import (
	"globetrotter/internal/domain"
)

// CountryRepository defines country reference data operations
type CountryRepository interface {
	FindByName(input string) (*domain.Country, error)
	ListVisited(userID int64) ([]domain.Country, error)
}

// UserRepository defines user profile operations
type UserRepository interface {
	ListUsers() ([]domain.User, error)
	GetUser(id int64) (*domain.User, error)
	CreateUser(name, color string) (*domain.User, error)
}

// VisitRepository defines visit ledger operations
type VisitRepository interface {
	AddVisit(userID int64, countryCode string) error
	RemoveVisit(userID int64, countryCode string) error
}
