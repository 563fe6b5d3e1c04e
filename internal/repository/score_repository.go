package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/eduguru-api/internal/models"
)

// ScoreRepository manages persistence for assessment scores. Writes go
// through the import repository's bulk path.
type ScoreRepository struct {
	db *sqlx.DB
}

// NewScoreRepository constructs a ScoreRepository.
func NewScoreRepository(db *sqlx.DB) *ScoreRepository {
	return &ScoreRepository{db: db}
}

// List returns the owner's scores matching the filter.
func (r *ScoreRepository) List(ctx context.Context, userID string, filter models.ScoreFilter) ([]models.Score, error) {
	query := `SELECT id, student_id, class_id, subject, type, score, assessment_title, date, notes, user_id
        FROM scores WHERE user_id = $1`
	args := []interface{}{userID}

	if filter.ClassID != "" {
		args = append(args, filter.ClassID)
		query += fmt.Sprintf(" AND class_id = $%d", len(args))
	}
	if filter.Subject != "" {
		args = append(args, filter.Subject)
		query += fmt.Sprintf(" AND subject = $%d", len(args))
	}
	if filter.Type != "" {
		args = append(args, filter.Type)
		query += fmt.Sprintf(" AND type = $%d", len(args))
	}

	scores := []models.Score{}
	if err := r.db.SelectContext(ctx, &scores, query, args...); err != nil {
		return nil, fmt.Errorf("list scores: %w", err)
	}
	return scores, nil
}

// ListForClass returns score rows for a class, optionally narrowed to a
// subject, used by the recap aggregation.
func (r *ScoreRepository) ListForClass(ctx context.Context, userID, classID, subject string) ([]models.Score, error) {
	query := `SELECT id, student_id, class_id, subject, type, score, assessment_title, date, notes, user_id
        FROM scores WHERE user_id = $1 AND class_id = $2`
	args := []interface{}{userID, classID}

	if subject != "" {
		args = append(args, subject)
		query += fmt.Sprintf(" AND subject = $%d", len(args))
	}

	scores := []models.Score{}
	if err := r.db.SelectContext(ctx, &scores, query, args...); err != nil {
		return nil, fmt.Errorf("list scores for class: %w", err)
	}
	return scores, nil
}
