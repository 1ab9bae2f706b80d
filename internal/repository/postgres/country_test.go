package postgres

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestCountryRepo_FindByName(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		mockRows      *sqlmock.Rows
		mockError     error
		expectedCode  string
		expectedNil   bool
		expectedError bool
	}{
		{
			name:         "substring match",
			input:        "ice",
			mockRows:     sqlmock.NewRows([]string{"country_code", "country_name"}).AddRow("IS", "Iceland"),
			expectedCode: "IS",
		},
		{
			name:        "no match",
			input:       "wakanda",
			mockRows:    sqlmock.NewRows([]string{"country_code", "country_name"}),
			expectedNil: true,
		},
		{
			name:          "query failure",
			input:         "ice",
			mockError:     errors.New("connection refused"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewCountryRepo(db)

			// Ordering by name is what makes ambiguous input deterministic
			query := "SELECT country_code, country_name FROM countries WHERE LOWER\\(country_name\\) LIKE '%' \\|\\| \\$1 \\|\\| '%' ORDER BY country_name ASC LIMIT 1"

			if tt.mockError != nil {
				mock.ExpectQuery(query).WithArgs(tt.input).WillReturnError(tt.mockError)
			} else {
				mock.ExpectQuery(query).WithArgs(tt.input).WillReturnRows(tt.mockRows)
			}

			country, err := repo.FindByName(tt.input)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				if tt.expectedNil {
					assert.Nil(t, country)
				} else {
					assert.NotNil(t, country)
					assert.Equal(t, tt.expectedCode, country.Code)
				}
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCountryRepo_ListVisited(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewCountryRepo(db)

	userID := int64(1)

	rows := sqlmock.NewRows([]string{"country_code", "country_name"}).
		AddRow("FR", "France").
		AddRow("IS", "Iceland")

	mock.ExpectQuery("SELECT c.country_code, c.country_name FROM visited_countries vc").
		WithArgs(userID).
		WillReturnRows(rows)

	countries, err := repo.ListVisited(userID)

	assert.NoError(t, err)
	assert.Len(t, countries, 2)
	assert.Equal(t, "FR", countries[0].Code)
	assert.Equal(t, "Iceland", countries[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountryRepo_ListVisited_Empty(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewCountryRepo(db)

	mock.ExpectQuery("SELECT c.country_code, c.country_name FROM visited_countries vc").
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"country_code", "country_name"}))

	countries, err := repo.ListVisited(2)

	assert.NoError(t, err)
	assert.Empty(t, countries)
	assert.NoError(t, mock.ExpectationsWereMet())
}
