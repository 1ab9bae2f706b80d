package postgres

import (
	"errors"
	"testing"

	"globetrotter/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestVisitRepo_AddVisit(t *testing.T) {
	tests := []struct {
		name        string
		rowsChanged int64
		mockError   error
		expectedErr error
	}{
		{
			name:        "first visit inserts",
			rowsChanged: 1,
		},
		{
			// ON CONFLICT DO NOTHING swallows the duplicate row; zero
			// rows affected is the only signal
			name:        "duplicate visit rejected",
			rowsChanged: 0,
			expectedErr: domain.ErrAlreadyVisited,
		},
		{
			name:        "storage failure propagates",
			mockError:   errors.New("connection refused"),
			expectedErr: errors.New("connection refused"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewVisitRepo(db)

			userID := int64(1)
			code := "IS"

			exec := mock.ExpectExec("INSERT INTO visited_countries \\(user_id, country_code\\) VALUES \\(\\$1, \\$2\\) ON CONFLICT \\(user_id, country_code\\) DO NOTHING").
				WithArgs(userID, code)

			if tt.mockError != nil {
				exec.WillReturnError(tt.mockError)
			} else {
				exec.WillReturnResult(sqlmock.NewResult(0, tt.rowsChanged))
			}

			err = repo.AddVisit(userID, code)

			if tt.expectedErr != nil {
				assert.Error(t, err)
				if errors.Is(tt.expectedErr, domain.ErrAlreadyVisited) {
					assert.ErrorIs(t, err, domain.ErrAlreadyVisited)
				}
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestVisitRepo_RemoveVisit(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewVisitRepo(db)

	mock.ExpectExec("DELETE FROM visited_countries WHERE user_id = \\$1 AND country_code = \\$2").
		WithArgs(int64(1), "IS").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.RemoveVisit(1, "IS")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVisitRepo_RemoveVisit_NeverAdded(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewVisitRepo(db)

	// Removing a pair that was never added deletes zero rows and succeeds
	mock.ExpectExec("DELETE FROM visited_countries WHERE user_id = \\$1 AND country_code = \\$2").
		WithArgs(int64(1), "ZZ").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.RemoveVisit(1, "ZZ")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
