package domain

import "errors"

var (
	// ErrCountryNotFound means free-text input matched no reference row.
	// Expected outcome, rendered as an inline validation message.
	ErrCountryNotFound = errors.New("country not found")

	// ErrAlreadyVisited means the (user, country) pair is already in the ledger.
	ErrAlreadyVisited = errors.New("country already visited")

	// ErrNoUsers means the user directory is empty and no active user
	// can be resolved even by fallback.
	ErrNoUsers = errors.New("no users in directory")
)
