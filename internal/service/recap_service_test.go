package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/eduguru-api/internal/models"
)

type fakeRecapStudents struct {
	records []models.StudentRecord
}

func (f *fakeRecapStudents) List(_ context.Context, _ string, _ models.StudentFilter) ([]models.StudentRecord, error) {
	return f.records, nil
}

type fakeRecapAttendance struct {
	records []models.Attendance
}

func (f *fakeRecapAttendance) ListForClass(_ context.Context, _, _, _ string) ([]models.Attendance, error) {
	return f.records, nil
}

type fakeRecapScores struct {
	records []models.Score
}

func (f *fakeRecapScores) ListForClass(_ context.Context, _, _, _ string) ([]models.Score, error) {
	return f.records, nil
}

func mustDate(t *testing.T, raw string) models.DateOnly {
	t.Helper()
	d, err := models.ParseDate(raw)
	require.NoError(t, err)
	return d
}

func studentRecord(id, name string) models.StudentRecord {
	return models.StudentRecord{Student: models.Student{ID: id, Name: name}}
}

func TestAttendanceRecapTallies(t *testing.T) {
	students := &fakeRecapStudents{records: []models.StudentRecord{
		studentRecord("s1", "Andi"),
		studentRecord("s2", "Budi"),
		studentRecord("s3", "Citra"),
	}}
	attendance := &fakeRecapAttendance{records: []models.Attendance{
		{StudentID: "s1", Date: mustDate(t, "2026-08-03"), Status: models.AttendancePresent},
		{StudentID: "s1", Date: mustDate(t, "2026-08-04"), Status: models.AttendancePresent},
		{StudentID: "s1", Date: mustDate(t, "2026-08-05"), Status: models.AttendanceSick},
		{StudentID: "s2", Date: mustDate(t, "2026-08-03"), Status: models.AttendanceAbsent},
		{StudentID: "s2", Date: mustDate(t, "2026-08-04"), Status: models.AttendanceExcused},
	}}
	svc := NewRecapService(students, attendance, &fakeRecapScores{}, nil)

	rows, err := svc.AttendanceRecap(context.Background(), "u1", "CX1AB", "", models.Period{})
	require.NoError(t, err)
	require.Len(t, rows, 3)

	andi := rows[0]
	assert.Equal(t, 2, andi.Present)
	assert.Equal(t, 1, andi.Sick)
	assert.Equal(t, 3, andi.Total)
	assert.InDelta(t, 66.7, andi.Percentage, 0.01)

	budi := rows[1]
	assert.Equal(t, 1, budi.Absent)
	assert.Equal(t, 1, budi.Excused)
	assert.Zero(t, budi.Present)
	assert.Zero(t, budi.Percentage)

	citra := rows[2]
	assert.Zero(t, citra.Total, "students without records still appear")
	assert.Zero(t, citra.Percentage)
}

func TestAttendanceRecapHonorsSemesterBand(t *testing.T) {
	students := &fakeRecapStudents{records: []models.StudentRecord{studentRecord("s1", "Andi")}}
	attendance := &fakeRecapAttendance{records: []models.Attendance{
		{StudentID: "s1", Date: mustDate(t, "2026-03-02"), Status: models.AttendancePresent},
		{StudentID: "s1", Date: mustDate(t, "2026-09-07"), Status: models.AttendancePresent},
	}}
	svc := NewRecapService(students, attendance, &fakeRecapScores{}, nil)

	odd, err := svc.AttendanceRecap(context.Background(), "u1", "CX1AB", "", models.Period{Year: 2026, Semester: models.SemesterOdd})
	require.NoError(t, err)
	assert.Equal(t, 1, odd[0].Total, "only July-December counts in the odd semester")

	months, err := svc.AttendanceRecap(context.Background(), "u1", "CX1AB", "", models.Period{
		Year:     2026,
		Semester: models.SemesterOdd,
		Months:   []time.Month{time.March},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, months[0].Total, "an explicit month set overrides the semester")
}

func TestAttendanceRecapRequiresClass(t *testing.T) {
	svc := NewRecapService(&fakeRecapStudents{}, &fakeRecapAttendance{}, &fakeRecapScores{}, nil)

	_, err := svc.AttendanceRecap(context.Background(), "u1", "", "", models.Period{})
	require.Error(t, err)
}

func TestScoreRecapPivotsByTitle(t *testing.T) {
	students := &fakeRecapStudents{records: []models.StudentRecord{
		studentRecord("s1", "Andi"),
		studentRecord("s2", "Budi"),
	}}
	v80, v90, v70 := 80, 90, 70
	uh1, uh2 := "UH 1", "UH 2"
	scores := &fakeRecapScores{records: []models.Score{
		{StudentID: "s1", Type: models.AssessmentFormative, AssessmentTitle: &uh1, Score: &v80, Date: mustDate(t, "2026-08-10")},
		{StudentID: "s1", Type: models.AssessmentFormative, AssessmentTitle: &uh2, Score: &v90, Date: mustDate(t, "2026-08-24")},
		{StudentID: "s1", Type: models.AssessmentMidterm, Score: &v70, Date: mustDate(t, "2026-10-05")},
		{StudentID: "s2", Type: models.AssessmentFormative, AssessmentTitle: &uh1, Score: &v70, Date: mustDate(t, "2026-08-10")},
	}}
	svc := NewRecapService(students, &fakeRecapAttendance{}, scores, nil)

	recap, err := svc.ScoreRecap(context.Background(), "u1", "CX1AB", "Fisika", models.Period{})
	require.NoError(t, err)

	require.Len(t, recap.Columns, 3)
	assert.Equal(t, "UH 1", recap.Columns[0].Title)
	assert.Equal(t, "UH 2", recap.Columns[1].Title)
	assert.Equal(t, string(models.AssessmentMidterm), recap.Columns[2].Title, "midterm collapses onto one column")

	require.Len(t, recap.Rows, 2)
	andi := recap.Rows[0]
	require.Len(t, andi.Values, 3)
	assert.Equal(t, 80, *andi.Values[0])
	assert.Equal(t, 90, *andi.Values[1])
	assert.Equal(t, 70, *andi.Values[2])
	assert.InDelta(t, 80.0, andi.Average, 0.01)

	budi := recap.Rows[1]
	assert.Equal(t, 70, *budi.Values[0])
	assert.Nil(t, budi.Values[1], "no entry leaves an empty cell")
	assert.Nil(t, budi.Values[2])
	assert.InDelta(t, 70.0, budi.Average, 0.01)
}

func TestScoreRecapAverageIgnoresEmptyCells(t *testing.T) {
	students := &fakeRecapStudents{records: []models.StudentRecord{studentRecord("s1", "Andi")}}
	v100 := 100
	title := "Tugas"
	scores := &fakeRecapScores{records: []models.Score{
		{StudentID: "s1", Type: models.AssessmentPortfolio, AssessmentTitle: &title, Score: &v100, Date: mustDate(t, "2026-08-10")},
	}}
	svc := NewRecapService(students, &fakeRecapAttendance{}, scores, nil)

	recap, err := svc.ScoreRecap(context.Background(), "u1", "CX1AB", "", models.Period{})
	require.NoError(t, err)
	require.Len(t, recap.Rows, 1)
	assert.InDelta(t, 100.0, recap.Rows[0].Average, 0.01)
}

func TestScoreRecapFiltersByPeriod(t *testing.T) {
	students := &fakeRecapStudents{records: []models.StudentRecord{studentRecord("s1", "Andi")}}
	v60, v95 := 60, 95
	title := "UH 1"
	scores := &fakeRecapScores{records: []models.Score{
		{StudentID: "s1", Type: models.AssessmentFormative, AssessmentTitle: &title, Score: &v60, Date: mustDate(t, "2026-02-10")},
		{StudentID: "s1", Type: models.AssessmentFormative, AssessmentTitle: &title, Score: &v95, Date: mustDate(t, "2026-09-10")},
	}}
	svc := NewRecapService(students, &fakeRecapAttendance{}, scores, nil)

	recap, err := svc.ScoreRecap(context.Background(), "u1", "CX1AB", "", models.Period{Year: 2026, Semester: models.SemesterEven})
	require.NoError(t, err)
	require.Len(t, recap.Columns, 1)
	assert.Equal(t, 60, *recap.Rows[0].Values[0], "only the even-semester entry survives")
}
