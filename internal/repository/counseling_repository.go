package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/eduguru-api/internal/models"
)

// CounselingRepository manages persistence for counseling sessions.
type CounselingRepository struct {
	db *sqlx.DB
}

// NewCounselingRepository constructs a CounselingRepository.
func NewCounselingRepository(db *sqlx.DB) *CounselingRepository {
	return &CounselingRepository{db: db}
}

// List returns the owner's counseling sessions with the joined student name,
// newest first.
func (r *CounselingRepository) List(ctx context.Context, userID, studentID string) ([]models.CounselingRecord, error) {
	query := `SELECT c.id, c.student_id, c.date, c.type, c.notes, c.follow_up, c.ai_suggestion,
        c.is_private, c.user_id, s.name AS student_name
        FROM counseling c LEFT JOIN students s ON c.student_id = s.id
        WHERE c.user_id = $1`
	args := []interface{}{userID}

	if studentID != "" {
		args = append(args, studentID)
		query += fmt.Sprintf(" AND c.student_id = $%d", len(args))
	}
	query += " ORDER BY c.date DESC"

	sessions := []models.CounselingRecord{}
	if err := r.db.SelectContext(ctx, &sessions, query, args...); err != nil {
		return nil, fmt.Errorf("list counseling: %w", err)
	}
	return sessions, nil
}

// Upsert inserts a counseling session, or overwrites notes, follow-up and
// the AI suggestion when the id already exists.
func (r *CounselingRepository) Upsert(ctx context.Context, session models.Counseling) error {
	query := `INSERT INTO counseling (id, student_id, date, type, notes, follow_up, ai_suggestion, is_private, user_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        ON CONFLICT (id) DO UPDATE SET
            notes = EXCLUDED.notes,
            follow_up = EXCLUDED.follow_up,
            ai_suggestion = EXCLUDED.ai_suggestion`
	if _, err := r.db.ExecContext(ctx, query,
		session.ID, session.StudentID, session.Date, session.Type, session.Notes,
		session.FollowUp, session.AISuggestion, session.IsPrivate, session.UserID); err != nil {
		return fmt.Errorf("upsert counseling: %w", err)
	}
	return nil
}

// Delete removes one counseling session.
func (r *CounselingRepository) Delete(ctx context.Context, id, userID string) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM counseling WHERE id = $1 AND user_id = $2`, id, userID); err != nil {
		return fmt.Errorf("delete counseling: %w", err)
	}
	return nil
}
