package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/eduguru-api/internal/models"
	appErrors "github.com/noah-isme/eduguru-api/pkg/errors"
)

type studentRepository interface {
	List(ctx context.Context, userID string, filter models.StudentFilter) ([]models.StudentRecord, error)
	Create(ctx context.Context, student models.Student) error
	Update(ctx context.Context, student models.Student) error
	Delete(ctx context.Context, id, userID string) error
	DeleteAll(ctx context.Context, userID string) error
}

// StudentRequest is the payload for creating or updating a student.
type StudentRequest struct {
	ID      string `json:"id"`
	Name    string `json:"name" validate:"required"`
	NIS     string `json:"nis"`
	ClassID string `json:"classId"`
}

// StudentService provides student master-data use cases.
type StudentService struct {
	repo      studentRepository
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewStudentService constructs a StudentService.
func NewStudentService(repo studentRepository, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *StudentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{repo: repo, cache: cache, validator: validate, logger: logger}
}

// List returns the owner's students with their class names. The unfiltered
// list is served from cache when fresh; class-scoped queries go straight to
// the database.
func (s *StudentService) List(ctx context.Context, userID string, filter models.StudentFilter) ([]models.StudentRecord, error) {
	cacheable := filter.ClassID == ""
	if cacheable && s.cache != nil {
		var cached []models.StudentRecord
		if err := s.cache.GetMaster(ctx, userID, "students", &cached); err == nil {
			return cached, nil
		}
	}

	students, err := s.repo.List(ctx, userID, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
	if cacheable && s.cache != nil {
		s.cache.SetMaster(ctx, userID, "students", students)
	}
	return students, nil
}

// Create inserts a student.
func (s *StudentService) Create(ctx context.Context, userID string, req StudentRequest) (*models.Student, error) {
	student, err := s.build(userID, "", req)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, *student); err != nil {
		s.logger.Error("create student failed", zap.String("user_id", userID), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
	s.invalidate(userID)
	return student, nil
}

// Update replaces the student fields.
func (s *StudentService) Update(ctx context.Context, userID, id string, req StudentRequest) (*models.Student, error) {
	student, err := s.build(userID, id, req)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, *student); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
	s.invalidate(userID)
	return student, nil
}

// Delete removes the student together with their attendance, scores and
// counseling history.
func (s *StudentService) Delete(ctx context.Context, userID, id string) error {
	if err := s.repo.Delete(ctx, id, userID); err != nil {
		s.logger.Error("delete student failed", zap.String("student_id", id), zap.Error(err))
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
	s.invalidate(userID)
	return nil
}

// DeleteAll removes every student the user owns with the same cascade.
func (s *StudentService) DeleteAll(ctx context.Context, userID string) error {
	if err := s.repo.DeleteAll(ctx, userID); err != nil {
		s.logger.Error("delete all students failed", zap.String("user_id", userID), zap.Error(err))
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
	s.invalidate(userID)
	return nil
}

func (s *StudentService) build(userID, id string, req StudentRequest) (*models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Student name is required")
	}

	if id == "" {
		id = req.ID
	}
	if id == "" {
		id = models.GenerateID("student")
	}
	student := &models.Student{ID: id, Name: req.Name, UserID: userID}
	if req.NIS != "" {
		nis := req.NIS
		student.NIS = &nis
	}
	if req.ClassID != "" {
		classID := req.ClassID
		student.ClassID = &classID
	}
	return student, nil
}

func (s *StudentService) invalidate(userID string) {
	if s.cache != nil {
		s.cache.InvalidateMaster(userID, "students")
	}
}
