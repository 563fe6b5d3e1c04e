package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/eduguru-api/internal/models"
	appErrors "github.com/noah-isme/eduguru-api/pkg/errors"
)

type scoreRepository interface {
	List(ctx context.Context, userID string, filter models.ScoreFilter) ([]models.Score, error)
}

// ScoreService serves score queries. Writes arrive through the bulk import
// path only.
type ScoreService struct {
	repo   scoreRepository
	logger *zap.Logger
}

// NewScoreService constructs a ScoreService.
func NewScoreService(repo scoreRepository, logger *zap.Logger) *ScoreService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScoreService{repo: repo, logger: logger}
}

// List returns the owner's scores, optionally scoped by class, subject
// and assessment type.
func (s *ScoreService) List(ctx context.Context, userID string, filter models.ScoreFilter) ([]models.Score, error) {
	scores, err := s.repo.List(ctx, userID, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
	return scores, nil
}
