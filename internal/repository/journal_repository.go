package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/eduguru-api/internal/models"
)

// JournalRepository manages persistence for teaching journals.
type JournalRepository struct {
	db *sqlx.DB
}

// NewJournalRepository constructs a JournalRepository.
func NewJournalRepository(db *sqlx.DB) *JournalRepository {
	return &JournalRepository{db: db}
}

// List returns the owner's journals, newest first.
func (r *JournalRepository) List(ctx context.Context, userID string) ([]models.Journal, error) {
	journals := []models.Journal{}
	query := `SELECT id, date, class_id, subject, start_time, learning_objective, materials,
        method, activities, reflection, engagement_level, user_id, created_at
        FROM journals WHERE user_id = $1 ORDER BY date DESC, created_at DESC`
	if err := r.db.SelectContext(ctx, &journals, query, userID); err != nil {
		return nil, fmt.Errorf("list journals: %w", err)
	}
	return journals, nil
}

// Upsert inserts a journal entry, or overwrites its content fields when the
// id already exists. created_at keeps its first-insert value.
func (r *JournalRepository) Upsert(ctx context.Context, journal models.Journal) error {
	query := `INSERT INTO journals (id, date, class_id, subject, start_time, learning_objective,
        materials, method, activities, reflection, engagement_level, user_id, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
        ON CONFLICT (id) DO UPDATE SET
            date = EXCLUDED.date,
            class_id = EXCLUDED.class_id,
            subject = EXCLUDED.subject,
            start_time = EXCLUDED.start_time,
            learning_objective = EXCLUDED.learning_objective,
            materials = EXCLUDED.materials,
            method = EXCLUDED.method,
            activities = EXCLUDED.activities,
            reflection = EXCLUDED.reflection,
            engagement_level = EXCLUDED.engagement_level`
	if _, err := r.db.ExecContext(ctx, query,
		journal.ID, journal.Date, journal.ClassID, journal.Subject, journal.StartTime,
		journal.LearningObjective, journal.Materials, journal.Method, journal.Activities,
		journal.Reflection, journal.EngagementLevel, journal.UserID, journal.CreatedAt); err != nil {
		return fmt.Errorf("upsert journal: %w", err)
	}
	return nil
}

// Delete removes one journal entry.
func (r *JournalRepository) Delete(ctx context.Context, id, userID string) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM journals WHERE id = $1 AND user_id = $2`, id, userID); err != nil {
		return fmt.Errorf("delete journal: %w", err)
	}
	return nil
}

// CountThisMonth counts the owner's journal entries in the current calendar
// month.
func (r *JournalRepository) CountThisMonth(ctx context.Context, userID string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM journals
        WHERE user_id = $1
        AND date >= DATE_TRUNC('month', CURRENT_DATE)
        AND date < DATE_TRUNC('month', CURRENT_DATE) + INTERVAL '1 month'`
	if err := r.db.GetContext(ctx, &count, query, userID); err != nil {
		return 0, fmt.Errorf("count journals this month: %w", err)
	}
	return count, nil
}

// Recent returns the owner's latest journal references.
func (r *JournalRepository) Recent(ctx context.Context, userID string, limit int) ([]models.RecentJournal, error) {
	recent := []models.RecentJournal{}
	query := `SELECT id, date, subject FROM journals WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`
	if err := r.db.SelectContext(ctx, &recent, query, userID, limit); err != nil {
		return nil, fmt.Errorf("recent journals: %w", err)
	}
	return recent, nil
}
