package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/eduguru-api/internal/models"
)

// StudentRepository manages persistence for students.
type StudentRepository struct {
	db *sqlx.DB
}

// NewStudentRepository constructs a StudentRepository.
func NewStudentRepository(db *sqlx.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// List returns the owner's students with the joined class name, ordered by
// student name.
func (r *StudentRepository) List(ctx context.Context, userID string, filter models.StudentFilter) ([]models.StudentRecord, error) {
	query := `SELECT s.id, s.name, s.nis, s.class_id, s.user_id, c.name AS class_name
        FROM students s LEFT JOIN classes c ON s.class_id = c.id
        WHERE s.user_id = $1`
	args := []interface{}{userID}

	if filter.ClassID != "" {
		args = append(args, filter.ClassID)
		query += fmt.Sprintf(" AND s.class_id = $%d", len(args))
	}
	query += " ORDER BY s.name"

	students := []models.StudentRecord{}
	if err := r.db.SelectContext(ctx, &students, query, args...); err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	return students, nil
}

// Count returns how many students the owner has.
func (r *StudentRepository) Count(ctx context.Context, userID string) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM students WHERE user_id = $1`, userID); err != nil {
		return 0, fmt.Errorf("count students: %w", err)
	}
	return count, nil
}

// Create inserts a single student.
func (r *StudentRepository) Create(ctx context.Context, student models.Student) error {
	query := `INSERT INTO students (id, name, nis, class_id, user_id) VALUES ($1, $2, $3, $4, $5)`
	if _, err := r.db.ExecContext(ctx, query,
		student.ID, student.Name, student.NIS, student.ClassID, student.UserID); err != nil {
		return fmt.Errorf("create student: %w", err)
	}
	return nil
}

// Update overwrites the mutable fields of an owned student.
func (r *StudentRepository) Update(ctx context.Context, student models.Student) error {
	query := `UPDATE students SET name = $1, nis = $2, class_id = $3 WHERE id = $4 AND user_id = $5`
	if _, err := r.db.ExecContext(ctx, query,
		student.Name, student.NIS, student.ClassID, student.ID, student.UserID); err != nil {
		return fmt.Errorf("update student: %w", err)
	}
	return nil
}

// Delete removes one student together with their counseling, score and
// attendance records, all in one transaction.
func (r *StudentRepository) Delete(ctx context.Context, id, userID string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete student: %w", err)
	}
	commit := false
	defer func() {
		if !commit {
			tx.Rollback()
		}
	}()

	steps := []struct {
		what  string
		query string
	}{
		{"delete counseling", `DELETE FROM counseling WHERE student_id = $1 AND user_id = $2`},
		{"delete scores", `DELETE FROM scores WHERE student_id = $1 AND user_id = $2`},
		{"delete attendance", `DELETE FROM attendance WHERE student_id = $1 AND user_id = $2`},
		{"delete student", `DELETE FROM students WHERE id = $1 AND user_id = $2`},
	}
	for _, step := range steps {
		if _, err := tx.ExecContext(ctx, step.query, id, userID); err != nil {
			return fmt.Errorf("%s: %w", step.what, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete student: %w", err)
	}
	commit = true
	return nil
}

// DeleteAll removes every student of the owner along with all dependent
// counseling, score and attendance rows.
func (r *StudentRepository) DeleteAll(ctx context.Context, userID string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete all students: %w", err)
	}
	commit := false
	defer func() {
		if !commit {
			tx.Rollback()
		}
	}()

	for _, table := range []string{"counseling", "scores", "attendance", "students"} {
		query := fmt.Sprintf(`DELETE FROM %s WHERE user_id = $1`, table)
		if _, err := tx.ExecContext(ctx, query, userID); err != nil {
			return fmt.Errorf("delete %s: %w", table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete all students: %w", err)
	}
	commit = true
	return nil
}
