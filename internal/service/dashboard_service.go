package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/eduguru-api/internal/models"
	appErrors "github.com/noah-isme/eduguru-api/pkg/errors"
)

type dashboardStudentCounter interface {
	Count(ctx context.Context, userID string) (int, error)
}

type dashboardClassCounter interface {
	Count(ctx context.Context, userID string) (int, error)
}

type dashboardJournalReader interface {
	CountThisMonth(ctx context.Context, userID string) (int, error)
	Recent(ctx context.Context, userID string, limit int) ([]models.RecentJournal, error)
}

const (
	recentActivityLimit = 5
	// teaching hours are estimated at two hours per journal entry
	hoursPerJournal = 2
)

// DashboardService assembles the teacher's home screen statistics.
type DashboardService struct {
	students dashboardStudentCounter
	classes  dashboardClassCounter
	journals dashboardJournalReader
	cache    *CacheService
	logger   *zap.Logger
}

// NewDashboardService constructs a DashboardService.
func NewDashboardService(students dashboardStudentCounter, classes dashboardClassCounter, journals dashboardJournalReader, cache *CacheService, logger *zap.Logger) *DashboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{students: students, classes: classes, journals: journals, cache: cache, logger: logger}
}

// Stats returns the dashboard counters and recent journal activity,
// served from cache when fresh.
func (s *DashboardService) Stats(ctx context.Context, userID string) (*models.DashboardStats, error) {
	if s.cache != nil {
		var cached models.DashboardStats
		if err := s.cache.GetDashboard(ctx, userID, &cached); err == nil {
			return &cached, nil
		}
	}

	studentCount, err := s.students.Count(ctx, userID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
	classCount, err := s.classes.Count(ctx, userID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
	journalCount, err := s.journals.CountThisMonth(ctx, userID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
	recent, err := s.journals.Recent(ctx, userID, recentActivityLimit)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}

	stats := &models.DashboardStats{
		StudentCount:   studentCount,
		ClassCount:     classCount,
		JournalCount:   journalCount,
		TeachingHours:  journalCount * hoursPerJournal,
		RecentActivity: recent,
	}
	if s.cache != nil {
		s.cache.SetDashboard(ctx, userID, stats)
	}
	return stats, nil
}
