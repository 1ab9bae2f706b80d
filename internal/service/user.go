package service

import (
	"sync/atomic"

	"globetrotter/internal/domain"
	"globetrotter/internal/repository"
)

// defaultUserID is the profile selected at process start, before anyone
// has switched. Matches the first seeded user.
const defaultUserID int64 = 1

// UserService handles user profiles and the active-profile selection.
//
// The active user id is a single process-wide value, not per session:
// every request sees the last switch made by any client. This is the
// historical contract of the app and a known hazard, kept deliberately.
// The value itself is read and written atomically so concurrent requests
// never observe a torn id, but last-switch-wins races are by contract.
type UserService struct {
	userRepo repository.UserRepository
	activeID atomic.Int64
}

// NewUserService creates a new user service with the default profile active
func NewUserService(userRepo repository.UserRepository) *UserService {
	s := &UserService{userRepo: userRepo}
	s.activeID.Store(defaultUserID)
	return s
}

// ListUsers returns all profiles ordered by id
func (s *UserService) ListUsers() ([]domain.User, error) {
	return s.userRepo.ListUsers()
}

// ActiveUserID returns the currently selected profile id
func (s *UserService) ActiveUserID() int64 {
	return s.activeID.Load()
}

// SwitchUser selects a profile id unconditionally. The id is not checked
// against the directory; ActiveUser falls back if it turns out to be stale.
func (s *UserService) SwitchUser(id int64) {
	s.activeID.Store(id)
}

// ActiveUser dereferences the active profile id. If the id no longer
// resolves (directory changed under us) the first user by id is used
// instead. An empty directory yields ErrNoUsers.
func (s *UserService) ActiveUser() (*domain.User, error) {
	user, err := s.userRepo.GetUser(s.activeID.Load())
	if err != nil {
		return nil, err
	}
	if user != nil {
		return user, nil
	}

	users, err := s.userRepo.ListUsers()
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, domain.ErrNoUsers
	}

	return &users[0], nil
}

// CreateUser stores a new profile and makes it the active one. Name and
// color are stored as-is; the app has never validated either.
func (s *UserService) CreateUser(name, color string) (*domain.User, error) {
	user, err := s.userRepo.CreateUser(name, color)
	if err != nil {
		return nil, err
	}

	s.activeID.Store(user.ID)
	return user, nil
}
