package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/eduguru-api/internal/models"
	appErrors "github.com/noah-isme/eduguru-api/pkg/errors"
)

type counselingRepository interface {
	List(ctx context.Context, userID, studentID string) ([]models.CounselingRecord, error)
	Upsert(ctx context.Context, session models.Counseling) error
	Delete(ctx context.Context, id, userID string) error
}

// CounselingRequest is the payload for saving a counseling session.
// Posting an existing id updates the notes, follow-up and suggestion while
// the session identity fields stay as first recorded.
type CounselingRequest struct {
	ID           string `json:"id"`
	StudentID    string `json:"studentId" validate:"required"`
	Date         string `json:"date" validate:"required"`
	Type         string `json:"type" validate:"required"`
	Notes        string `json:"notes"`
	FollowUp     string `json:"followUp"`
	AISuggestion string `json:"aiSuggestion"`
	IsPrivate    bool   `json:"isPrivate"`
}

// CounselingService provides counseling session use cases.
type CounselingService struct {
	repo      counselingRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewCounselingService constructs a CounselingService.
func NewCounselingService(repo counselingRepository, validate *validator.Validate, logger *zap.Logger) *CounselingService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CounselingService{repo: repo, validator: validate, logger: logger}
}

// List returns the owner's counseling sessions, optionally scoped to one
// student, newest first.
func (s *CounselingService) List(ctx context.Context, userID, studentID string) ([]models.CounselingRecord, error) {
	sessions, err := s.repo.List(ctx, userID, studentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
	return sessions, nil
}

// Save upserts a counseling session.
func (s *CounselingService) Save(ctx context.Context, userID string, req CounselingRequest) (*models.Counseling, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Student, date and type are required")
	}
	typ := models.CounselingType(req.Type)
	if !typ.Valid() {
		return nil, appErrors.New(appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Invalid counseling type")
	}
	date, err := models.ParseDate(req.Date)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Invalid counseling date")
	}

	session := models.Counseling{
		ID:           req.ID,
		StudentID:    req.StudentID,
		Date:         date,
		Type:         typ,
		Notes:        optional(req.Notes),
		FollowUp:     optional(req.FollowUp),
		AISuggestion: optional(req.AISuggestion),
		IsPrivate:    req.IsPrivate,
		UserID:       userID,
	}
	if session.ID == "" {
		session.ID = models.GenerateID("counseling")
	}

	if err := s.repo.Upsert(ctx, session); err != nil {
		s.logger.Error("save counseling failed", zap.String("user_id", userID), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
	return &session, nil
}

// Delete removes one counseling session.
func (s *CounselingService) Delete(ctx context.Context, userID, id string) error {
	if err := s.repo.Delete(ctx, id, userID); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
	return nil
}
