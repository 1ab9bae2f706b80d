package postgres

import (
	"database/sql"

	"globetrotter/internal/domain"
)

// VisitRepo implements repository.VisitRepository
type VisitRepo struct {
	db *sql.DB
}

// NewVisitRepo creates a new visit repository
func NewVisitRepo(db *sql.DB) *VisitRepo {
	return &VisitRepo{db: db}
}

// AddVisit inserts a (user, country) pair. The check and the insert are a
// single statement so two concurrent adds for the same pair cannot both
// succeed; the loser of the conflict gets ErrAlreadyVisited.
func (r *VisitRepo) AddVisit(userID int64, countryCode string) error {
	query := `
		INSERT INTO visited_countries (user_id, country_code)
		VALUES ($1, $2)
		ON CONFLICT (user_id, country_code) DO NOTHING
	`
	res, err := r.db.Exec(query, userID, countryCode)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrAlreadyVisited
	}

	return nil
}

// RemoveVisit deletes a (user, country) pair. Deleting a pair that was
// never added is not an error.
func (r *VisitRepo) RemoveVisit(userID int64, countryCode string) error {
	query := `
		DELETE FROM visited_countries
		WHERE user_id = $1 AND country_code = $2
	`
	_, err := r.db.Exec(query, userID, countryCode)
	return err
}
