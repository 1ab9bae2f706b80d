package service

import (
	"strings"

	"globetrotter/internal/domain"
	"globetrotter/internal/repository"
)

// CountryService resolves free-text country input against the reference table
type CountryService struct {
	countryRepo repository.CountryRepository
}

// NewCountryService creates a new country service
func NewCountryService(countryRepo repository.CountryRepository) *CountryService {
	return &CountryService{countryRepo: countryRepo}
}

// Resolve maps user input to a canonical country. Input is trimmed and
// lower-cased before matching. Empty input and input matching no reference
// row both yield ErrCountryNotFound.
func (s *CountryService) Resolve(input string) (*domain.Country, error) {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return nil, domain.ErrCountryNotFound
	}

	country, err := s.countryRepo.FindByName(input)
	if err != nil {
		return nil, err
	}
	if country == nil {
		return nil, domain.ErrCountryNotFound
	}

	return country, nil
}
