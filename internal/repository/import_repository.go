package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/eduguru-api/internal/models"
)

// ImportRepository applies bulk reconciliation batches. Each batch runs in a
// single transaction, statements in input order; any failure rolls the whole
// batch back so no partial state is ever committed.
type ImportRepository struct {
	db *sqlx.DB
}

// NewImportRepository constructs an ImportRepository.
func NewImportRepository(db *sqlx.DB) *ImportRepository {
	return &ImportRepository{db: db}
}

const upsertClassQuery = `INSERT INTO classes (id, name, grade, user_id) VALUES ($1, $2, $3, $4)
        ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, grade = EXCLUDED.grade, user_id = EXCLUDED.user_id`

const upsertStudentQuery = `INSERT INTO students (id, name, nis, class_id, user_id) VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, nis = EXCLUDED.nis, class_id = EXCLUDED.class_id, user_id = EXCLUDED.user_id`

const insertSubjectQuery = `INSERT INTO subjects (name, user_id) VALUES ($1, $2)
        ON CONFLICT (name, user_id) DO NOTHING`

const upsertAttendanceQuery = `INSERT INTO attendance (id, date, student_id, class_id, subject, status, user_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        ON CONFLICT (id) DO UPDATE SET status = EXCLUDED.status`

const upsertScoreQuery = `INSERT INTO scores (id, student_id, class_id, subject, type, score, assessment_title, date, notes, user_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        ON CONFLICT (id) DO UPDATE SET score = EXCLUDED.score, notes = EXCLUDED.notes`

// UpsertClasses applies a class batch. All provided fields are overwritten on
// conflict.
func (r *ImportRepository) UpsertClasses(ctx context.Context, classes []models.Class) error {
	if len(classes) == 0 {
		return nil
	}
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin class import: %w", err)
	}
	commit := false
	defer func() {
		if !commit {
			tx.Rollback()
		}
	}()

	for _, c := range classes {
		if _, err := tx.ExecContext(ctx, upsertClassQuery, c.ID, c.Name, c.Grade, c.UserID); err != nil {
			return fmt.Errorf("upsert class %s: %w", c.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit class import: %w", err)
	}
	commit = true
	return nil
}

// UpsertStudents applies a student batch. All provided fields are overwritten
// on conflict.
func (r *ImportRepository) UpsertStudents(ctx context.Context, students []models.Student) error {
	if len(students) == 0 {
		return nil
	}
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin student import: %w", err)
	}
	commit := false
	defer func() {
		if !commit {
			tx.Rollback()
		}
	}()

	for _, s := range students {
		if _, err := tx.ExecContext(ctx, upsertStudentQuery, s.ID, s.Name, s.NIS, s.ClassID, s.UserID); err != nil {
			return fmt.Errorf("upsert student %s: %w", s.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit student import: %w", err)
	}
	commit = true
	return nil
}

// InsertSubjects applies a subject batch. Duplicates within the batch or
// against existing rows are silently skipped.
func (r *ImportRepository) InsertSubjects(ctx context.Context, names []string, userID string) error {
	if len(names) == 0 {
		return nil
	}
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin subject import: %w", err)
	}
	commit := false
	defer func() {
		if !commit {
			tx.Rollback()
		}
	}()

	for _, name := range names {
		if _, err := tx.ExecContext(ctx, insertSubjectQuery, name, userID); err != nil {
			return fmt.Errorf("insert subject %s: %w", name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit subject import: %w", err)
	}
	commit = true
	return nil
}

// UpsertAttendance applies an attendance batch. Only status is overwritten on
// conflict; date, class, subject and student stay as first written.
func (r *ImportRepository) UpsertAttendance(ctx context.Context, records []models.Attendance) error {
	if len(records) == 0 {
		return nil
	}
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin attendance import: %w", err)
	}
	commit := false
	defer func() {
		if !commit {
			tx.Rollback()
		}
	}()

	for _, rec := range records {
		if _, err := tx.ExecContext(ctx, upsertAttendanceQuery,
			rec.ID, rec.Date, rec.StudentID, rec.ClassID, rec.Subject, rec.Status, rec.UserID); err != nil {
			return fmt.Errorf("upsert attendance %s: %w", rec.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit attendance import: %w", err)
	}
	commit = true
	return nil
}

// UpsertScores applies a score batch. Only score and notes are overwritten on
// conflict; the original date is preserved.
func (r *ImportRepository) UpsertScores(ctx context.Context, scores []models.Score) error {
	if len(scores) == 0 {
		return nil
	}
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin score import: %w", err)
	}
	commit := false
	defer func() {
		if !commit {
			tx.Rollback()
		}
	}()

	for _, s := range scores {
		if _, err := tx.ExecContext(ctx, upsertScoreQuery,
			s.ID, s.StudentID, s.ClassID, s.Subject, s.Type, s.Score,
			s.AssessmentTitle, s.Date, s.Notes, s.UserID); err != nil {
			return fmt.Errorf("upsert score %s: %w", s.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit score import: %w", err)
	}
	commit = true
	return nil
}

// SyncMaster applies classes, students and subjects together in one
// transaction, in that order, so a client resync is all-or-nothing across
// the three kinds.
func (r *ImportRepository) SyncMaster(ctx context.Context, classes []models.Class, students []models.Student, subjects []string, userID string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin master sync: %w", err)
	}
	commit := false
	defer func() {
		if !commit {
			tx.Rollback()
		}
	}()

	for _, c := range classes {
		if _, err := tx.ExecContext(ctx, upsertClassQuery, c.ID, c.Name, c.Grade, c.UserID); err != nil {
			return fmt.Errorf("sync class %s: %w", c.ID, err)
		}
	}
	for _, s := range students {
		if _, err := tx.ExecContext(ctx, upsertStudentQuery, s.ID, s.Name, s.NIS, s.ClassID, s.UserID); err != nil {
			return fmt.Errorf("sync student %s: %w", s.ID, err)
		}
	}
	for _, name := range subjects {
		if _, err := tx.ExecContext(ctx, insertSubjectQuery, name, userID); err != nil {
			return fmt.Errorf("sync subject %s: %w", name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit master sync: %w", err)
	}
	commit = true
	return nil
}
