package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/eduguru-api/internal/models"
)

// AttendanceRepository manages persistence for attendance records. Writes go
// through the import repository's bulk path.
type AttendanceRepository struct {
	db *sqlx.DB
}

// NewAttendanceRepository constructs an AttendanceRepository.
func NewAttendanceRepository(db *sqlx.DB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

// List returns the owner's attendance records matching the filter.
func (r *AttendanceRepository) List(ctx context.Context, userID string, filter models.AttendanceFilter) ([]models.Attendance, error) {
	query := `SELECT id, date, student_id, class_id, subject, status, user_id
        FROM attendance WHERE user_id = $1`
	args := []interface{}{userID}

	if filter.ClassID != "" {
		args = append(args, filter.ClassID)
		query += fmt.Sprintf(" AND class_id = $%d", len(args))
	}
	if filter.Date != "" {
		args = append(args, filter.Date)
		query += fmt.Sprintf(" AND date = $%d", len(args))
	}
	if filter.Subject != "" {
		args = append(args, filter.Subject)
		query += fmt.Sprintf(" AND subject = $%d", len(args))
	}

	records := []models.Attendance{}
	if err := r.db.SelectContext(ctx, &records, query, args...); err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	return records, nil
}

// ListForClass returns attendance rows for a class, optionally narrowed to a
// subject, used by the recap aggregation.
func (r *AttendanceRepository) ListForClass(ctx context.Context, userID, classID, subject string) ([]models.Attendance, error) {
	query := `SELECT id, date, student_id, class_id, subject, status, user_id
        FROM attendance WHERE user_id = $1 AND class_id = $2`
	args := []interface{}{userID, classID}

	if subject != "" {
		args = append(args, subject)
		query += fmt.Sprintf(" AND subject = $%d", len(args))
	}

	records := []models.Attendance{}
	if err := r.db.SelectContext(ctx, &records, query, args...); err != nil {
		return nil, fmt.Errorf("list attendance for class: %w", err)
	}
	return records, nil
}
