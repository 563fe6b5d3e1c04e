package service

import (
	"context"
	"math"
	"sort"

	"go.uber.org/zap"

	"github.com/noah-isme/eduguru-api/internal/models"
	appErrors "github.com/noah-isme/eduguru-api/pkg/errors"
)

type recapStudentLister interface {
	List(ctx context.Context, userID string, filter models.StudentFilter) ([]models.StudentRecord, error)
}

type recapAttendanceLister interface {
	ListForClass(ctx context.Context, userID, classID, subject string) ([]models.Attendance, error)
}

type recapScoreLister interface {
	ListForClass(ctx context.Context, userID, classID, subject string) ([]models.Score, error)
}

// RecapService aggregates attendance tallies and pivoted score matrices
// per class and period for reporting and export.
type RecapService struct {
	students   recapStudentLister
	attendance recapAttendanceLister
	scores     recapScoreLister
	logger     *zap.Logger
}

// NewRecapService constructs a RecapService.
func NewRecapService(students recapStudentLister, attendance recapAttendanceLister, scores recapScoreLister, logger *zap.Logger) *RecapService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RecapService{students: students, attendance: attendance, scores: scores, logger: logger}
}

// AttendanceRecap tallies each student's presence codes over the period.
// Every student in the class appears, even with no records; the percentage
// is the present share of that student's recorded sessions, 0 when none.
func (s *RecapService) AttendanceRecap(ctx context.Context, userID, classID, subject string, period models.Period) ([]models.AttendanceRecapRow, error) {
	if classID == "" {
		return nil, appErrors.New(appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Class is required")
	}

	students, err := s.students.List(ctx, userID, models.StudentFilter{ClassID: classID})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
	records, err := s.attendance.ListForClass(ctx, userID, classID, subject)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}

	tally := make(map[string]*models.AttendanceRecapRow, len(students))
	rows := make([]models.AttendanceRecapRow, 0, len(students))
	order := make([]string, 0, len(students))
	for _, student := range students {
		tally[student.ID] = &models.AttendanceRecapRow{StudentID: student.ID, StudentName: student.Name}
		order = append(order, student.ID)
	}

	for _, record := range records {
		row, ok := tally[record.StudentID]
		if !ok {
			continue
		}
		if !period.Contains(record.Date.Time) {
			continue
		}
		switch record.Status {
		case models.AttendancePresent:
			row.Present++
		case models.AttendanceSick:
			row.Sick++
		case models.AttendanceExcused:
			row.Excused++
		case models.AttendanceAbsent:
			row.Absent++
		default:
			continue
		}
		row.Total++
	}

	for _, id := range order {
		row := tally[id]
		if row.Total > 0 {
			row.Percentage = round1(float64(row.Present) / float64(row.Total) * 100)
		}
		rows = append(rows, *row)
	}
	return rows, nil
}

// ScoreRecap pivots the class scores into an assessment-column matrix.
// Formative, summative and portfolio entries become one column per distinct
// title, sorted by title within their type; midterm and final are single
// columns. The average is the mean of a student's non-empty cells, rounded
// to one decimal.
func (s *RecapService) ScoreRecap(ctx context.Context, userID, classID, subject string, period models.Period) (*models.ScoreRecap, error) {
	if classID == "" {
		return nil, appErrors.New(appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Class is required")
	}

	students, err := s.students.List(ctx, userID, models.StudentFilter{ClassID: classID})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
	scores, err := s.scores.ListForClass(ctx, userID, classID, subject)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}

	inPeriod := make([]models.Score, 0, len(scores))
	for _, score := range scores {
		if period.Contains(score.Date.Time) {
			inPeriod = append(inPeriod, score)
		}
	}

	columns := buildScoreColumns(inPeriod)
	columnIndex := make(map[models.ScoreRecapColumn]int, len(columns))
	for i, col := range columns {
		columnIndex[col] = i
	}

	cells := make(map[string][]*int, len(students))
	for _, student := range students {
		cells[student.ID] = make([]*int, len(columns))
	}
	for _, score := range inPeriod {
		row, ok := cells[score.StudentID]
		if !ok {
			continue
		}
		idx, ok := columnIndex[columnFor(score)]
		if !ok {
			continue
		}
		row[idx] = score.Score
	}

	recap := &models.ScoreRecap{Columns: columns, Rows: make([]models.ScoreRecapRow, 0, len(students))}
	for _, student := range students {
		values := cells[student.ID]
		recap.Rows = append(recap.Rows, models.ScoreRecapRow{
			StudentID:   student.ID,
			StudentName: student.Name,
			Values:      values,
			Average:     averageOf(values),
		})
	}
	return recap, nil
}

// columnFor maps a score row onto its pivot column. Titled assessment types
// keep their title; midterm and final collapse onto a single column each.
func columnFor(score models.Score) models.ScoreRecapColumn {
	switch score.Type {
	case models.AssessmentMidterm, models.AssessmentFinal:
		return models.ScoreRecapColumn{Type: score.Type, Title: string(score.Type)}
	default:
		title := "Standard"
		if score.AssessmentTitle != nil && *score.AssessmentTitle != "" {
			title = *score.AssessmentTitle
		}
		return models.ScoreRecapColumn{Type: score.Type, Title: title}
	}
}

func buildScoreColumns(scores []models.Score) []models.ScoreRecapColumn {
	seen := make(map[models.ScoreRecapColumn]struct{})
	byType := make(map[models.AssessmentType][]models.ScoreRecapColumn)
	for _, score := range scores {
		col := columnFor(score)
		if _, ok := seen[col]; ok {
			continue
		}
		seen[col] = struct{}{}
		byType[col.Type] = append(byType[col.Type], col)
	}

	ordered := []models.AssessmentType{
		models.AssessmentFormative,
		models.AssessmentPortfolio,
		models.AssessmentSummative,
		models.AssessmentMidterm,
		models.AssessmentFinal,
		models.AssessmentNote,
	}
	columns := make([]models.ScoreRecapColumn, 0, len(seen))
	for _, typ := range ordered {
		cols := byType[typ]
		sort.Slice(cols, func(i, j int) bool { return cols[i].Title < cols[j].Title })
		columns = append(columns, cols...)
	}
	return columns
}

func averageOf(values []*int) float64 {
	sum, n := 0, 0
	for _, v := range values {
		if v == nil {
			continue
		}
		sum += *v
		n++
	}
	if n == 0 {
		return 0
	}
	return round1(float64(sum) / float64(n))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
