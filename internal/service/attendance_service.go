package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/eduguru-api/internal/models"
	appErrors "github.com/noah-isme/eduguru-api/pkg/errors"
)

type attendanceRepository interface {
	List(ctx context.Context, userID string, filter models.AttendanceFilter) ([]models.Attendance, error)
}

// AttendanceService serves attendance queries. Writes arrive through the
// bulk import path only.
type AttendanceService struct {
	repo   attendanceRepository
	logger *zap.Logger
}

// NewAttendanceService constructs an AttendanceService.
func NewAttendanceService(repo attendanceRepository, logger *zap.Logger) *AttendanceService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AttendanceService{repo: repo, logger: logger}
}

// List returns the owner's attendance records, optionally scoped by class,
// date and subject.
func (s *AttendanceService) List(ctx context.Context, userID string, filter models.AttendanceFilter) ([]models.Attendance, error) {
	records, err := s.repo.List(ctx, userID, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
	return records, nil
}
