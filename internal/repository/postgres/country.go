package postgres

import (
	"database/sql"

	"globetrotter/internal/domain"
)

// CountryRepo implements repository.CountryRepository
type CountryRepo struct {
	db *sql.DB
}

// NewCountryRepo creates a new country repository
func NewCountryRepo(db *sql.DB) *CountryRepo {
	return &CountryRepo{db: db}
}

// FindByName resolves free-text input to a reference row by case-insensitive
// substring match. Candidates are ordered by country_name so repeated calls
// with ambiguous input always pick the same row.
func (r *CountryRepo) FindByName(input string) (*domain.Country, error) {
	var c domain.Country
	query := `
		SELECT country_code, country_name
		FROM countries
		WHERE LOWER(country_name) LIKE '%' || $1 || '%'
		ORDER BY country_name ASC
		LIMIT 1
	`
	err := r.db.QueryRow(query, input).Scan(&c.Code, &c.Name)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &c, nil
}

// ListVisited returns the countries a user has marked visited, by name ascending
func (r *CountryRepo) ListVisited(userID int64) ([]domain.Country, error) {
	query := `
		SELECT c.country_code, c.country_name
		FROM visited_countries vc
		JOIN countries c ON c.country_code = vc.country_code
		WHERE vc.user_id = $1
		ORDER BY c.country_name ASC
	`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var countries []domain.Country
	for rows.Next() {
		var c domain.Country
		if err := rows.Scan(&c.Code, &c.Name); err != nil {
			return nil, err
		}
		countries = append(countries, c)
	}

	return countries, rows.Err()
}
