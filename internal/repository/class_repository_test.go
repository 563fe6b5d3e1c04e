package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/eduguru-api/internal/models"
)

func TestListClasses(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewClassRepository(db)

	rows := sqlmock.NewRows([]string{"id", "name", "grade", "user_id"}).
		AddRow("CAAAAA", "X-A", 10, "u1").
		AddRow("CBBBBB", "XI-B", 11, "u1")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, grade, user_id FROM classes WHERE user_id = $1 ORDER BY grade, name")).
		WithArgs("u1").
		WillReturnRows(rows)

	classes, err := repo.List(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, classes, 2)
	assert.Equal(t, "X-A", classes[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteAllClassesDetachesStudents(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewClassRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM journals WHERE user_id = $1")).
		WithArgs("u1").WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE students SET class_id = NULL WHERE user_id = $1")).
		WithArgs("u1").WillReturnResult(sqlmock.NewResult(0, 12))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM classes WHERE user_id = $1")).
		WithArgs("u1").WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	require.NoError(t, repo.DeleteAll(context.Background(), "u1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteAllClassesRollsBack(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewClassRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM journals WHERE user_id = $1")).
		WithArgs("u1").WillReturnError(errors.New("boom"))
	mock.ExpectRollback()

	err := repo.DeleteAll(context.Background(), "u1")
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateClass(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewClassRepository(db)

	mock.ExpectExec("INSERT INTO classes").
		WithArgs("CAAAAA", "X-A", 10, "u1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), models.Class{ID: "CAAAAA", Name: "X-A", Grade: intPtr(10), UserID: "u1"})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteStudentCascades(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM counseling WHERE student_id = $1 AND user_id = $2")).
		WithArgs("student_1", "u1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM scores WHERE student_id = $1 AND user_id = $2")).
		WithArgs("student_1", "u1").WillReturnResult(sqlmock.NewResult(0, 4))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM attendance WHERE student_id = $1 AND user_id = $2")).
		WithArgs("student_1", "u1").WillReturnResult(sqlmock.NewResult(0, 9))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM students WHERE id = $1 AND user_id = $2")).
		WithArgs("student_1", "u1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Delete(context.Background(), "student_1", "u1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteStudentRollsBackMidway(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM counseling WHERE student_id = $1 AND user_id = $2")).
		WithArgs("student_1", "u1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM scores WHERE student_id = $1 AND user_id = $2")).
		WithArgs("student_1", "u1").WillReturnError(errors.New("boom"))
	mock.ExpectRollback()

	err := repo.Delete(context.Background(), "student_1", "u1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "delete scores")
	assert.NoError(t, mock.ExpectationsWereMet())
}
