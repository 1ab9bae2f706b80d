package testutil

import (
	"globetrotter/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockCountryRepository is a mock for CountryRepository
type MockCountryRepository struct {
	mock.Mock
}

func (m *MockCountryRepository) FindByName(input string) (*domain.Country, error) {
	args := m.Called(input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Country), args.Error(1)
}

func (m *MockCountryRepository) ListVisited(userID int64) ([]domain.Country, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Country), args.Error(1)
}

// MockUserRepository is a mock for UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) ListUsers() ([]domain.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) GetUser(id int64) (*domain.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) CreateUser(name, color string) (*domain.User, error) {
	args := m.Called(name, color)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockVisitRepository is a mock for VisitRepository
type MockVisitRepository struct {
	mock.Mock
}

func (m *MockVisitRepository) AddVisit(userID int64, countryCode string) error {
	args := m.Called(userID, countryCode)
	return args.Error(0)
}

func (m *MockVisitRepository) RemoveVisit(userID int64, countryCode string) error {
	args := m.Called(userID, countryCode)
	return args.Error(0)
}
