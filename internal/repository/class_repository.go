package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/eduguru-api/internal/models"
)

// ClassRepository manages persistence for class groups.
type ClassRepository struct {
	db *sqlx.DB
}

// NewClassRepository constructs a ClassRepository.
func NewClassRepository(db *sqlx.DB) *ClassRepository {
	return &ClassRepository{db: db}
}

// List returns the owner's classes ordered by grade then name.
func (r *ClassRepository) List(ctx context.Context, userID string) ([]models.Class, error) {
	classes := []models.Class{}
	query := `SELECT id, name, grade, user_id FROM classes WHERE user_id = $1 ORDER BY grade, name`
	if err := r.db.SelectContext(ctx, &classes, query, userID); err != nil {
		return nil, fmt.Errorf("list classes: %w", err)
	}
	return classes, nil
}

// ListIDs returns the ids of the owner's classes, used to validate class
// references during student imports.
func (r *ClassRepository) ListIDs(ctx context.Context, userID string) ([]string, error) {
	ids := []string{}
	if err := r.db.SelectContext(ctx, &ids, `SELECT id FROM classes WHERE user_id = $1`, userID); err != nil {
		return nil, fmt.Errorf("list class ids: %w", err)
	}
	return ids, nil
}

// Count returns how many classes the owner has.
func (r *ClassRepository) Count(ctx context.Context, userID string) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM classes WHERE user_id = $1`, userID); err != nil {
		return 0, fmt.Errorf("count classes: %w", err)
	}
	return count, nil
}

// Create inserts a single class.
func (r *ClassRepository) Create(ctx context.Context, class models.Class) error {
	query := `INSERT INTO classes (id, name, grade, user_id) VALUES ($1, $2, $3, $4)`
	if _, err := r.db.ExecContext(ctx, query, class.ID, class.Name, class.Grade, class.UserID); err != nil {
		return fmt.Errorf("create class: %w", err)
	}
	return nil
}

// Update overwrites the name and grade of an owned class.
func (r *ClassRepository) Update(ctx context.Context, class models.Class) error {
	query := `UPDATE classes SET name = $1, grade = $2 WHERE id = $3 AND user_id = $4`
	if _, err := r.db.ExecContext(ctx, query, class.Name, class.Grade, class.ID, class.UserID); err != nil {
		return fmt.Errorf("update class: %w", err)
	}
	return nil
}

// Delete removes one class. The students FK is ON DELETE SET NULL, so the
// class's students are detached, not deleted.
func (r *ClassRepository) Delete(ctx context.Context, id, userID string) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM classes WHERE id = $1 AND user_id = $2`, id, userID); err != nil {
		return fmt.Errorf("delete class: %w", err)
	}
	return nil
}

// DeleteAll removes every class the owner has, detaching students and
// clearing the owner's journals in the same transaction.
func (r *ClassRepository) DeleteAll(ctx context.Context, userID string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete all classes: %w", err)
	}
	commit := false
	defer func() {
		if !commit {
			tx.Rollback()
		}
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM journals WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("delete journals: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `UPDATE students SET class_id = NULL WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("detach students: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM classes WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("delete classes: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete all classes: %w", err)
	}
	commit = true
	return nil
}
