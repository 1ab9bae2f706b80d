package service

import (
	"globetrotter/internal/domain"
	"globetrotter/internal/repository"
)

// VisitService handles the visited-country ledger
type VisitService struct {
	visitRepo      repository.VisitRepository
	countryRepo    repository.CountryRepository
	countryService *CountryService
}

// NewVisitService creates a new visit service
func NewVisitService(visitRepo repository.VisitRepository, countryRepo repository.CountryRepository, countryService *CountryService) *VisitService {
	return &VisitService{
		visitRepo:      visitRepo,
		countryRepo:    countryRepo,
		countryService: countryService,
	}
}

// ListVisited returns the user's visited countries ordered by name
func (s *VisitService) ListVisited(userID int64) ([]domain.Country, error) {
	return s.countryRepo.ListVisited(userID)
}

// MarkVisited resolves free-text input and records the visit for the user.
// Returns ErrCountryNotFound if the input matches no country and
// ErrAlreadyVisited if the user already has the country in their set.
func (s *VisitService) MarkVisited(userID int64, input string) (*domain.Country, error) {
	country, err := s.countryService.Resolve(input)
	if err != nil {
		return nil, err
	}

	if err := s.visitRepo.AddVisit(userID, country.Code); err != nil {
		return nil, err
	}

	return country, nil
}

// AddVisit records a visit for an already-resolved country code
func (s *VisitService) AddVisit(userID int64, countryCode string) error {
	return s.visitRepo.AddVisit(userID, countryCode)
}

// RemoveVisit unmarks a country. Idempotent: unknown pairs are a no-op.
func (s *VisitService) RemoveVisit(userID int64, countryCode string) error {
	return s.visitRepo.RemoveVisit(userID, countryCode)
}
