package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	appErrors "github.com/noah-isme/eduguru-api/pkg/errors"
)

type subjectRepository interface {
	List(ctx context.Context, userID string) ([]string, error)
	Insert(ctx context.Context, name, userID string) error
	DeleteByName(ctx context.Context, name, userID string) error
	DeleteAll(ctx context.Context, userID string) error
}

// SubjectService provides the subject name list use cases. Subjects are a
// flat per-user name set; duplicates are absorbed by the database.
type SubjectService struct {
	repo   subjectRepository
	cache  *CacheService
	logger *zap.Logger
}

// NewSubjectService constructs a SubjectService.
func NewSubjectService(repo subjectRepository, cache *CacheService, logger *zap.Logger) *SubjectService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SubjectService{repo: repo, cache: cache, logger: logger}
}

// List returns the owner's subject names.
func (s *SubjectService) List(ctx context.Context, userID string) ([]string, error) {
	if s.cache != nil {
		var cached []string
		if err := s.cache.GetMaster(ctx, userID, "subjects", &cached); err == nil {
			return cached, nil
		}
	}

	names, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
	if s.cache != nil {
		s.cache.SetMaster(ctx, userID, "subjects", names)
	}
	return names, nil
}

// Add inserts a subject name. Blank names are rejected.
func (s *SubjectService) Add(ctx context.Context, userID, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return appErrors.New(appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Subject name is required")
	}
	if err := s.repo.Insert(ctx, name, userID); err != nil {
		s.logger.Error("add subject failed", zap.String("user_id", userID), zap.Error(err))
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
	s.invalidate(userID)
	return nil
}

// Remove deletes one subject by name.
func (s *SubjectService) Remove(ctx context.Context, userID, name string) error {
	if err := s.repo.DeleteByName(ctx, name, userID); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
	s.invalidate(userID)
	return nil
}

// RemoveAll deletes every subject the user owns.
func (s *SubjectService) RemoveAll(ctx context.Context, userID string) error {
	if err := s.repo.DeleteAll(ctx, userID); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
	s.invalidate(userID)
	return nil
}

func (s *SubjectService) invalidate(userID string) {
	if s.cache != nil {
		s.cache.InvalidateMaster(userID, "subjects")
	}
}
