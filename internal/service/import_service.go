package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/eduguru-api/internal/models"
	"github.com/noah-isme/eduguru-api/pkg/config"
	appErrors "github.com/noah-isme/eduguru-api/pkg/errors"
)

type importRepository interface {
	UpsertClasses(ctx context.Context, classes []models.Class) error
	UpsertStudents(ctx context.Context, students []models.Student) error
	InsertSubjects(ctx context.Context, names []string, userID string) error
	UpsertAttendance(ctx context.Context, records []models.Attendance) error
	UpsertScores(ctx context.Context, scores []models.Score) error
	SyncMaster(ctx context.Context, classes []models.Class, students []models.Student, subjects []string, userID string) error
}

type classIDLister interface {
	ListIDs(ctx context.Context, userID string) ([]string, error)
}

type masterInvalidator interface {
	InvalidateMaster(userID string, kinds ...string)
}

// ClassImport is one class row in a bulk batch.
type ClassImport struct {
	ID    string `json:"id"`
	Name  string `json:"name" validate:"required"`
	Grade *int   `json:"grade"`
}

// StudentImport is one student row in a bulk batch.
type StudentImport struct {
	ID      string `json:"id"`
	Name    string `json:"name" validate:"required"`
	NIS     string `json:"nis"`
	ClassID string `json:"classId"`
}

// AttendanceImport is one attendance row in a bulk batch.
type AttendanceImport struct {
	ID        string `json:"id"`
	Date      string `json:"date" validate:"required"`
	StudentID string `json:"studentId" validate:"required"`
	ClassID   string `json:"classId" validate:"required"`
	Subject   string `json:"subject" validate:"required"`
	Status    string `json:"status" validate:"required"`
}

// ScoreImport is one score row in a bulk batch.
type ScoreImport struct {
	ID              string `json:"id"`
	StudentID       string `json:"studentId" validate:"required"`
	ClassID         string `json:"classId" validate:"required"`
	Subject         string `json:"subject" validate:"required"`
	Type            string `json:"type" validate:"required"`
	Score           *int   `json:"score"`
	AssessmentTitle string `json:"assessmentTitle"`
	Date            string `json:"date"`
	Notes           string `json:"notes"`
}

// ImportResult reports the outcome of a bulk batch.
type ImportResult struct {
	Success              bool     `json:"success"`
	Imported             int      `json:"imported"`
	Invalid              int      `json:"invalid,omitempty"`
	InvalidReferences    []string `json:"invalidReferences,omitempty"`
	RequiresConfirmation bool     `json:"requiresConfirmation,omitempty"`
}

// MasterSyncResult reports a combined master-data resync.
type MasterSyncResult struct {
	Success  bool `json:"success"`
	Classes  int  `json:"classes"`
	Students int  `json:"students"`
	Subjects int  `json:"subjects"`
}

// ImportService applies bulk reconciliation batches: it resolves missing
// ids, validates cross references, then hands the prepared rows to the
// repository for an all-or-nothing transaction.
type ImportService struct {
	repo        importRepository
	classes     classIDLister
	invalidator masterInvalidator
	validator   *validator.Validate
	logger      *zap.Logger
	classPolicy string
}

// NewImportService constructs an ImportService.
func NewImportService(repo importRepository, classes classIDLister, invalidator masterInvalidator, validate *validator.Validate, logger *zap.Logger, classPolicy string) *ImportService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if classPolicy == "" {
		classPolicy = config.ImportPolicyNullify
	}
	return &ImportService{
		repo:        repo,
		classes:     classes,
		invalidator: invalidator,
		validator:   validate,
		logger:      logger,
		classPolicy: classPolicy,
	}
}

// ImportClasses upserts a class batch. Ids default to generated class codes.
func (s *ImportService) ImportClasses(ctx context.Context, userID string, items []ClassImport) (*ImportResult, error) {
	if len(items) == 0 {
		return &ImportResult{Success: true, Imported: 0}, nil
	}

	rows := make([]models.Class, 0, len(items))
	for _, item := range items {
		if err := s.validator.Struct(item); err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "class name is required")
		}
		id := item.ID
		if id == "" {
			id = models.GenerateClassCode()
		}
		rows = append(rows, models.Class{ID: id, Name: item.Name, Grade: item.Grade, UserID: userID})
	}

	if err := s.repo.UpsertClasses(ctx, rows); err != nil {
		s.logger.Error("class import failed", zap.String("user_id", userID), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}

	s.logger.Info("classes imported", zap.String("user_id", userID), zap.Int("count", len(rows)))
	if s.invalidator != nil {
		s.invalidator.InvalidateMaster(userID, "classes")
	}
	return &ImportResult{Success: true, Imported: len(rows)}, nil
}

// ImportStudents upserts a student batch. Class references are validated
// against the owner's classes up front. Unknown references follow the
// configured policy: with "nullify" the reference is cleared and, unless the
// request was confirmed, nothing is written and the caller is asked to
// confirm; with "reject" the whole batch fails validation.
func (s *ImportService) ImportStudents(ctx context.Context, userID string, items []StudentImport, confirmed bool) (*ImportResult, error) {
	if len(items) == 0 {
		return &ImportResult{Success: true, Imported: 0}, nil
	}

	known, err := s.classes.ListIDs(ctx, userID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
	knownSet := make(map[string]struct{}, len(known))
	for _, id := range known {
		knownSet[id] = struct{}{}
	}

	rows := make([]models.Student, 0, len(items))
	invalidRefs := []string{}
	for _, item := range items {
		if err := s.validator.Struct(item); err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "student name is required")
		}

		id := item.ID
		if id == "" {
			id = models.GenerateID("student")
		}
		row := models.Student{ID: id, Name: item.Name, UserID: userID}
		if item.NIS != "" {
			nis := item.NIS
			row.NIS = &nis
		}
		if item.ClassID != "" {
			if _, ok := knownSet[item.ClassID]; ok {
				classID := item.ClassID
				row.ClassID = &classID
			} else {
				invalidRefs = append(invalidRefs, item.ClassID)
				// policy nullify: row kept with class reference cleared
			}
		}
		rows = append(rows, row)
	}

	if len(invalidRefs) > 0 {
		switch s.classPolicy {
		case config.ImportPolicyReject:
			return nil, appErrors.New(appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "batch references unknown classes")
		default:
			if !confirmed {
				return &ImportResult{
					Success:              false,
					Invalid:              len(invalidRefs),
					InvalidReferences:    invalidRefs,
					RequiresConfirmation: true,
				}, nil
			}
		}
	}

	if err := s.repo.UpsertStudents(ctx, rows); err != nil {
		s.logger.Error("student import failed", zap.String("user_id", userID), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}

	s.logger.Info("students imported",
		zap.String("user_id", userID), zap.Int("count", len(rows)), zap.Int("invalid_refs", len(invalidRefs)))
	if s.invalidator != nil {
		s.invalidator.InvalidateMaster(userID, "students")
	}
	return &ImportResult{Success: true, Imported: len(rows), Invalid: len(invalidRefs), InvalidReferences: invalidRefs}, nil
}

// ImportSubjects inserts a subject batch. Names are trimmed; blanks are
// skipped; duplicates are absorbed by the database.
func (s *ImportService) ImportSubjects(ctx context.Context, userID string, names []string) (*ImportResult, error) {
	cleaned := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		cleaned = append(cleaned, name)
	}
	if len(cleaned) == 0 {
		return &ImportResult{Success: true, Imported: 0}, nil
	}

	if err := s.repo.InsertSubjects(ctx, cleaned, userID); err != nil {
		s.logger.Error("subject import failed", zap.String("user_id", userID), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}

	if s.invalidator != nil {
		s.invalidator.InvalidateMaster(userID, "subjects")
	}
	return &ImportResult{Success: true, Imported: len(cleaned)}, nil
}

// ImportAttendance upserts an attendance batch. Missing ids become the
// deterministic session key, which makes re-imports idempotent.
func (s *ImportService) ImportAttendance(ctx context.Context, userID string, items []AttendanceImport) (*ImportResult, error) {
	if len(items) == 0 {
		return &ImportResult{Success: true, Imported: 0}, nil
	}

	rows := make([]models.Attendance, 0, len(items))
	for _, item := range items {
		if err := s.validator.Struct(item); err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "attendance record is incomplete")
		}
		status := models.AttendanceStatus(item.Status)
		if !status.Valid() {
			return nil, appErrors.New(appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid attendance status")
		}
		date, err := models.ParseDate(item.Date)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid attendance date")
		}
		id := item.ID
		if id == "" {
			id = models.AttendanceKey(item.Date, item.ClassID, item.Subject, item.StudentID)
		}
		rows = append(rows, models.Attendance{
			ID:        id,
			Date:      date,
			StudentID: item.StudentID,
			ClassID:   item.ClassID,
			Subject:   item.Subject,
			Status:    status,
			UserID:    userID,
		})
	}

	if err := s.repo.UpsertAttendance(ctx, rows); err != nil {
		s.logger.Error("attendance import failed", zap.String("user_id", userID), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
	return &ImportResult{Success: true, Imported: len(rows)}, nil
}

// ImportScores upserts a score batch. Missing ids become the deterministic
// class/subject/type/title/student key, so re-imports update score and notes
// in place while the original date is preserved.
func (s *ImportService) ImportScores(ctx context.Context, userID string, items []ScoreImport) (*ImportResult, error) {
	if len(items) == 0 {
		return &ImportResult{Success: true, Imported: 0}, nil
	}

	rows := make([]models.Score, 0, len(items))
	for _, item := range items {
		if err := s.validator.Struct(item); err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "score record is incomplete")
		}
		typ := models.AssessmentType(item.Type)
		if !typ.Valid() {
			return nil, appErrors.New(appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid assessment type")
		}
		if item.Score != nil && (*item.Score < 0 || *item.Score > 100) {
			return nil, appErrors.New(appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "score must be between 0 and 100")
		}

		id := item.ID
		if id == "" {
			id = models.ScoreKey(item.ClassID, item.Subject, typ, item.AssessmentTitle, item.StudentID)
		}
		row := models.Score{
			ID:        id,
			StudentID: item.StudentID,
			ClassID:   item.ClassID,
			Subject:   item.Subject,
			Type:      typ,
			Score:     item.Score,
			UserID:    userID,
		}
		if item.AssessmentTitle != "" {
			title := item.AssessmentTitle
			row.AssessmentTitle = &title
		}
		if item.Notes != "" {
			notes := item.Notes
			row.Notes = &notes
		}
		if item.Date != "" {
			date, err := models.ParseDate(item.Date)
			if err != nil {
				return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid score date")
			}
			row.Date = date
		}
		rows = append(rows, row)
	}

	if err := s.repo.UpsertScores(ctx, rows); err != nil {
		s.logger.Error("score import failed", zap.String("user_id", userID), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
	return &ImportResult{Success: true, Imported: len(rows)}, nil
}

// MasterSyncRequest is a combined resync of the three master-data kinds.
type MasterSyncRequest struct {
	Classes  []ClassImport   `json:"classes"`
	Students []StudentImport `json:"students"`
	Subjects []string        `json:"subjects"`
}

// SyncMaster applies classes, students and subjects in one transaction.
// Student class references are not policy-checked here: a resync restores
// the client's own data, which already passed import validation.
func (s *ImportService) SyncMaster(ctx context.Context, userID string, req MasterSyncRequest) (*MasterSyncResult, error) {
	classRows := make([]models.Class, 0, len(req.Classes))
	for _, item := range req.Classes {
		if err := s.validator.Struct(item); err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "class name is required")
		}
		id := item.ID
		if id == "" {
			id = models.GenerateClassCode()
		}
		classRows = append(classRows, models.Class{ID: id, Name: item.Name, Grade: item.Grade, UserID: userID})
	}

	studentRows := make([]models.Student, 0, len(req.Students))
	for _, item := range req.Students {
		if err := s.validator.Struct(item); err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "student name is required")
		}
		id := item.ID
		if id == "" {
			id = models.GenerateID("student")
		}
		row := models.Student{ID: id, Name: item.Name, UserID: userID}
		if item.NIS != "" {
			nis := item.NIS
			row.NIS = &nis
		}
		if item.ClassID != "" {
			classID := item.ClassID
			row.ClassID = &classID
		}
		studentRows = append(studentRows, row)
	}

	subjects := make([]string, 0, len(req.Subjects))
	for _, name := range req.Subjects {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		subjects = append(subjects, name)
	}

	if err := s.repo.SyncMaster(ctx, classRows, studentRows, subjects, userID); err != nil {
		s.logger.Error("master sync failed", zap.String("user_id", userID), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}

	if s.invalidator != nil {
		s.invalidator.InvalidateMaster(userID, "classes", "students", "subjects")
	}
	return &MasterSyncResult{
		Success:  true,
		Classes:  len(classRows),
		Students: len(studentRows),
		Subjects: len(subjects),
	}, nil
}
