package repositories

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslatePQError(t *testing.T) {
	err := translatePQError(&pq.Error{Code: "23505", Constraint: "boats_name_key"}, "creating boat")
	assert.ErrorIs(t, err, ErrDuplicateKey)
	assert.Contains(t, err.Error(), "boats_name_key")

	err = translatePQError(&pq.Error{Code: "23503", Constraint: "attendance_employee_id_fkey"}, "deleting employee")
	assert.ErrorIs(t, err, ErrForeignKey)

	assert.Equal(t, ErrNotFound, translatePQError(sql.ErrNoRows, "reading boat"))

	err = translatePQError(errors.New("connection reset"), "reading boat")
	assert.ErrorIs(t, err, ErrDatabaseError)
	assert.NotErrorIs(t, err, ErrForeignKey)
}

func TestDeleteBoatResults(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewBoatRepository(db)

	query := regexp.QuoteMeta(`DELETE FROM boats WHERE id = $1`)
	mock.ExpectExec(query).WithArgs(int64(2)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(query).WithArgs(int64(9)).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(query).WithArgs(int64(3)).
		WillReturnError(&pq.Error{Code: "23503", Constraint: "attendance_boat_id_fkey"})

	assert.NoError(t, repo.DeleteBoat(context.Background(), db, 2))
	assert.ErrorIs(t, repo.DeleteBoat(context.Background(), db, 9), ErrNotFound)
	assert.ErrorIs(t, repo.DeleteBoat(context.Background(), db, 3), ErrForeignKey)
	assert.NoError(t, mock.ExpectationsWereMet())
}
