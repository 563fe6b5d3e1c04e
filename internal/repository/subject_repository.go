package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// SubjectRepository manages persistence for subject names. Subjects are
// identified by (name, owner); duplicate inserts are silently absorbed.
type SubjectRepository struct {
	db *sqlx.DB
}

// NewSubjectRepository constructs a SubjectRepository.
func NewSubjectRepository(db *sqlx.DB) *SubjectRepository {
	return &SubjectRepository{db: db}
}

// List returns the owner's subject names, sorted.
func (r *SubjectRepository) List(ctx context.Context, userID string) ([]string, error) {
	names := []string{}
	query := `SELECT name FROM subjects WHERE user_id = $1 ORDER BY name`
	if err := r.db.SelectContext(ctx, &names, query, userID); err != nil {
		return nil, fmt.Errorf("list subjects: %w", err)
	}
	return names, nil
}

// Insert adds a subject, ignoring duplicates.
func (r *SubjectRepository) Insert(ctx context.Context, name, userID string) error {
	query := `INSERT INTO subjects (name, user_id) VALUES ($1, $2) ON CONFLICT (name, user_id) DO NOTHING`
	if _, err := r.db.ExecContext(ctx, query, name, userID); err != nil {
		return fmt.Errorf("insert subject: %w", err)
	}
	return nil
}

// DeleteByName removes one subject by name.
func (r *SubjectRepository) DeleteByName(ctx context.Context, name, userID string) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM subjects WHERE name = $1 AND user_id = $2`, name, userID); err != nil {
		return fmt.Errorf("delete subject: %w", err)
	}
	return nil
}

// DeleteAll removes every subject of the owner.
func (r *SubjectRepository) DeleteAll(ctx context.Context, userID string) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM subjects WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("delete all subjects: %w", err)
	}
	return nil
}
