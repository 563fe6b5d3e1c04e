package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/eduguru-api/internal/models"
	appErrors "github.com/noah-isme/eduguru-api/pkg/errors"
)

type classRepository interface {
	List(ctx context.Context, userID string) ([]models.Class, error)
	Create(ctx context.Context, class models.Class) error
	Update(ctx context.Context, class models.Class) error
	Delete(ctx context.Context, id, userID string) error
	DeleteAll(ctx context.Context, userID string) error
}

// ClassRequest is the payload for creating or updating a class.
type ClassRequest struct {
	ID    string `json:"id"`
	Name  string `json:"name" validate:"required"`
	Grade *int   `json:"grade"`
}

// ClassService provides class master-data use cases.
type ClassService struct {
	repo      classRepository
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewClassService constructs a ClassService.
func NewClassService(repo classRepository, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *ClassService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClassService{repo: repo, cache: cache, validator: validate, logger: logger}
}

// List returns the owner's classes, served from cache when fresh.
func (s *ClassService) List(ctx context.Context, userID string) ([]models.Class, error) {
	if s.cache != nil {
		var cached []models.Class
		if err := s.cache.GetMaster(ctx, userID, "classes", &cached); err == nil {
			return cached, nil
		} else if !errors.Is(err, appErrors.ErrCacheMiss) {
			s.logger.Warn("class cache read failed", zap.Error(err))
		}
	}

	classes, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
	if s.cache != nil {
		s.cache.SetMaster(ctx, userID, "classes", classes)
	}
	return classes, nil
}

// Create inserts a class. A missing id gets a generated class code.
func (s *ClassService) Create(ctx context.Context, userID string, req ClassRequest) (*models.Class, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Class name is required")
	}

	class := models.Class{ID: req.ID, Name: req.Name, Grade: req.Grade, UserID: userID}
	if class.ID == "" {
		class.ID = models.GenerateClassCode()
	}
	if err := s.repo.Create(ctx, class); err != nil {
		s.logger.Error("create class failed", zap.String("user_id", userID), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
	s.invalidate(userID)
	return &class, nil
}

// Update replaces the class fields.
func (s *ClassService) Update(ctx context.Context, userID, id string, req ClassRequest) (*models.Class, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Class name is required")
	}

	class := models.Class{ID: id, Name: req.Name, Grade: req.Grade, UserID: userID}
	if err := s.repo.Update(ctx, class); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
	s.invalidate(userID)
	return &class, nil
}

// Delete removes one class; its students keep their rows with the class
// reference cleared by the schema.
func (s *ClassService) Delete(ctx context.Context, userID, id string) error {
	if err := s.repo.Delete(ctx, id, userID); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
	s.invalidate(userID)
	return nil
}

// DeleteAll removes every class the user owns, together with journals,
// and detaches students.
func (s *ClassService) DeleteAll(ctx context.Context, userID string) error {
	if err := s.repo.DeleteAll(ctx, userID); err != nil {
		s.logger.Error("delete all classes failed", zap.String("user_id", userID), zap.Error(err))
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
	s.invalidate(userID)
	return nil
}

func (s *ClassService) invalidate(userID string) {
	if s.cache != nil {
		s.cache.InvalidateMaster(userID, "classes", "students")
	}
}
