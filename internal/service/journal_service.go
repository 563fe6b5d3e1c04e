package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/eduguru-api/internal/models"
	appErrors "github.com/noah-isme/eduguru-api/pkg/errors"
)

type journalRepository interface {
	List(ctx context.Context, userID string) ([]models.Journal, error)
	Upsert(ctx context.Context, journal models.Journal) error
	Delete(ctx context.Context, id, userID string) error
}

// JournalRequest is the payload for saving a teaching journal entry.
// Posting an existing id replaces the entry while its original creation
// time is kept.
type JournalRequest struct {
	ID                string `json:"id"`
	Date              string `json:"date" validate:"required"`
	ClassID           string `json:"classId"`
	Subject           string `json:"subject"`
	StartTime         string `json:"startTime"`
	LearningObjective string `json:"learningObjective"`
	Materials         string `json:"materials"`
	Method            string `json:"method"`
	Activities        string `json:"activities"`
	Reflection        string `json:"reflection"`
	EngagementLevel   string `json:"engagementLevel"`
}

// JournalService provides teaching journal use cases.
type JournalService struct {
	repo      journalRepository
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewJournalService constructs a JournalService.
func NewJournalService(repo journalRepository, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *JournalService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &JournalService{repo: repo, cache: cache, validator: validate, logger: logger}
}

// List returns the owner's journal entries, most recent first.
func (s *JournalService) List(ctx context.Context, userID string) ([]models.Journal, error) {
	journals, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
	return journals, nil
}

// Save upserts a journal entry.
func (s *JournalService) Save(ctx context.Context, userID string, req JournalRequest) (*models.Journal, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Journal date is required")
	}
	date, err := models.ParseDate(req.Date)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Invalid journal date")
	}

	journal := models.Journal{
		ID:                req.ID,
		Date:              date,
		ClassID:           optional(req.ClassID),
		Subject:           optional(req.Subject),
		StartTime:         optional(req.StartTime),
		LearningObjective: optional(req.LearningObjective),
		Materials:         optional(req.Materials),
		Method:            optional(req.Method),
		Activities:        optional(req.Activities),
		Reflection:        optional(req.Reflection),
		EngagementLevel:   optional(req.EngagementLevel),
		UserID:            userID,
		CreatedAt:         time.Now().UnixMilli(),
	}
	if journal.ID == "" {
		journal.ID = models.GenerateID("journal")
	}

	if err := s.repo.Upsert(ctx, journal); err != nil {
		s.logger.Error("save journal failed", zap.String("user_id", userID), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
	if s.cache != nil {
		s.cache.InvalidateDashboard(userID)
	}
	return &journal, nil
}

// Delete removes one journal entry.
func (s *JournalService) Delete(ctx context.Context, userID, id string) error {
	if err := s.repo.Delete(ctx, id, userID); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
	if s.cache != nil {
		s.cache.InvalidateDashboard(userID)
	}
	return nil
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
