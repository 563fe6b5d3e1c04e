package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugifyTitle(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Ulangan Harian 1", "ulanganharian1"},
		{"  UH-2  ", "uh2"},
		{"Bab 3: Aljabar!", "bab3aljabar"},
		{"???", "standard"},
		{"", "standard"},
		{"   ", "standard"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, SlugifyTitle(tc.title), tc.title)
	}
}

func TestScoreKeyDeterministic(t *testing.T) {
	a := ScoreKey("CX1", "Matematika", AssessmentFormative, "Ulangan Harian 1", "student_1")
	b := ScoreKey("CX1", "Matematika", AssessmentFormative, "ulangan harian 1", "student_1")
	assert.Equal(t, a, b)
	assert.Equal(t, "CX1_Matematika_FORMATIVE_ulanganharian1_student_1", a)
}

func TestAttendanceKey(t *testing.T) {
	key := AttendanceKey("2026-03-02", "CX1", "Fisika", "student_9")
	assert.Equal(t, "2026-03-02_CX1_Fisika_student_9", key)
}

func TestGenerateClassCode(t *testing.T) {
	code := GenerateClassCode()
	require.Len(t, code, 6)
	assert.True(t, strings.HasPrefix(code, "C"))
	for _, r := range code {
		assert.Contains(t, classCodeAlphabet, string(r))
	}
}

func TestGenerateIDPrefix(t *testing.T) {
	id := GenerateID("student")
	assert.True(t, strings.HasPrefix(id, "student_"))
	assert.NotEqual(t, id, GenerateID("student"))
}

func TestPeriodSemesterBands(t *testing.T) {
	odd := Period{Year: 2026, Semester: SemesterOdd}
	assert.True(t, odd.Contains(time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, odd.Contains(time.Date(2026, time.December, 31, 0, 0, 0, 0, time.UTC)))
	assert.False(t, odd.Contains(time.Date(2026, time.June, 30, 0, 0, 0, 0, time.UTC)))
	assert.False(t, odd.Contains(time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC)))

	even := Period{Year: 2026, Semester: SemesterEven}
	assert.True(t, even.Contains(time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC)))
	assert.False(t, even.Contains(time.Date(2026, time.September, 15, 0, 0, 0, 0, time.UTC)))
}

func TestPeriodExplicitMonthsWin(t *testing.T) {
	p := Period{Year: 2026, Semester: SemesterOdd, Months: []time.Month{time.March}}
	assert.True(t, p.Contains(time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)))
	// inside the semester band but outside the month set
	assert.False(t, p.Contains(time.Date(2026, time.August, 10, 0, 0, 0, 0, time.UTC)))
}

func TestDateOnlyJSON(t *testing.T) {
	d, err := ParseDate("2026-02-28")
	require.NoError(t, err)

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2026-02-28"`, string(out))

	var back DateOnly
	require.NoError(t, json.Unmarshal([]byte(`"2026-02-28T00:00:00.000Z"`), &back))
	assert.Equal(t, "2026-02-28", back.String())
}

func TestAttendanceStatusValid(t *testing.T) {
	for _, s := range []AttendanceStatus{AttendancePresent, AttendanceSick, AttendanceExcused, AttendanceAbsent} {
		assert.True(t, s.Valid())
	}
	assert.False(t, AttendanceStatus("X").Valid())
}
