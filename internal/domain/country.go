package domain

// Country is a row of the static country reference table. The reference
// set is seeded by migration and never mutated at runtime.
type Country struct {
	Code string
	Name string
}

// VisitedCountry marks that a user has visited a country. At most one
// record exists per (UserID, Code) pair.
type VisitedCountry struct {
	UserID int64
	Code   string
}
