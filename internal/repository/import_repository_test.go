package repository

import (
	"context"
	"errors"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/eduguru-api/internal/models"
)

func newMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	sqlxdb := sqlx.NewDb(db, "sqlmock")
	return sqlxdb, mock, func() {
		db.Close()
	}
}

func strPtr(s string) *string { return &s }

func intPtr(n int) *int { return &n }

func TestUpsertClassesAppliesInInputOrder(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewImportRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO classes").
		WithArgs("CAAAAA", "X-A", 10, "u1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO classes").
		WithArgs("CBBBBB", "X-B", 10, "u1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.UpsertClasses(context.Background(), []models.Class{
		{ID: "CAAAAA", Name: "X-A", Grade: intPtr(10), UserID: "u1"},
		{ID: "CBBBBB", Name: "X-B", Grade: intPtr(10), UserID: "u1"},
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertClassesRollsBackOnFailure(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewImportRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO classes").
		WithArgs("CAAAAA", "X-A", 10, "u1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO classes").
		WithArgs("CBBBBB", "X-B", 10, "u1").
		WillReturnError(errors.New("constraint violated"))
	mock.ExpectRollback()

	err := repo.UpsertClasses(context.Background(), []models.Class{
		{ID: "CAAAAA", Name: "X-A", Grade: intPtr(10), UserID: "u1"},
		{ID: "CBBBBB", Name: "X-B", Grade: intPtr(10), UserID: "u1"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upsert class CBBBBB")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertClassesEmptyBatchSkipsTransaction(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewImportRepository(db)

	// no Begin expected
	require.NoError(t, repo.UpsertClasses(context.Background(), nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertStudentsNullClass(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewImportRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO students").
		WithArgs("student_1", "Budi", "12345", nil, "u1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	nis := "12345"
	err := repo.UpsertStudents(context.Background(), []models.Student{
		{ID: "student_1", Name: "Budi", NIS: &nis, ClassID: nil, UserID: "u1"},
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertSubjectsSkipsConflicts(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewImportRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO subjects").
		WithArgs("Matematika", "u1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO subjects").
		WithArgs("Matematika", "u1").
		WillReturnResult(sqlmock.NewResult(0, 0)) // conflict absorbed
	mock.ExpectCommit()

	err := repo.InsertSubjects(context.Background(), []string{"Matematika", "Matematika"}, "u1")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertAttendance(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewImportRepository(db)

	date, err := models.ParseDate("2026-03-02")
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO attendance").
		WithArgs("2026-03-02_CX1_Fisika_student_1", sqlmock.AnyArg(), "student_1", "CX1", "Fisika", "H", "u1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err = repo.UpsertAttendance(context.Background(), []models.Attendance{
		{
			ID:        models.AttendanceKey("2026-03-02", "CX1", "Fisika", "student_1"),
			Date:      date,
			StudentID: "student_1",
			ClassID:   "CX1",
			Subject:   "Fisika",
			Status:    models.AttendancePresent,
			UserID:    "u1",
		},
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertScores(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewImportRepository(db)

	date, err := models.ParseDate("2026-03-02")
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO scores").
		WithArgs("CX1_Fisika_FORMATIVE_uh1_student_1", "student_1", "CX1", "Fisika", "FORMATIVE",
			85, "UH 1", sqlmock.AnyArg(), nil, "u1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err = repo.UpsertScores(context.Background(), []models.Score{
		{
			ID:              models.ScoreKey("CX1", "Fisika", models.AssessmentFormative, "UH 1", "student_1"),
			StudentID:       "student_1",
			ClassID:         "CX1",
			Subject:         "Fisika",
			Type:            models.AssessmentFormative,
			Score:           intPtr(85),
			AssessmentTitle: strPtr("UH 1"),
			Date:            date,
			UserID:          "u1",
		},
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSyncMasterAppliesAllKindsInOneTransaction(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewImportRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO classes").
		WithArgs("CAAAAA", "X-A", 10, "u1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO students").
		WithArgs("student_1", "Budi", nil, "CAAAAA", "u1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO subjects").
		WithArgs("Matematika", "u1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	classID := "CAAAAA"
	err := repo.SyncMaster(context.Background(),
		[]models.Class{{ID: "CAAAAA", Name: "X-A", Grade: intPtr(10), UserID: "u1"}},
		[]models.Student{{ID: "student_1", Name: "Budi", ClassID: &classID, UserID: "u1"}},
		[]string{"Matematika"},
		"u1",
	)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSyncMasterRollsBackWhenStudentFails(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewImportRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO classes").
		WithArgs("CAAAAA", "X-A", 10, "u1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO students").
		WillReturnError(errors.New("boom"))
	mock.ExpectRollback()

	classID := "CAAAAA"
	err := repo.SyncMaster(context.Background(),
		[]models.Class{{ID: "CAAAAA", Name: "X-A", Grade: intPtr(10), UserID: "u1"}},
		[]models.Student{{ID: "student_1", Name: "Budi", ClassID: &classID, UserID: "u1"}},
		nil,
		"u1",
	)
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
