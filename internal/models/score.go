package models

import (
	"fmt"
	"strings"
	"unicode"
)

// AssessmentType classifies a score entry.
type AssessmentType string

const (
	AssessmentFormative AssessmentType = "FORMATIVE"
	AssessmentSummative AssessmentType = "SUMMATIVE"
	AssessmentMidterm   AssessmentType = "STS"
	AssessmentFinal     AssessmentType = "SAS"
	AssessmentPortfolio AssessmentType = "PORTFOLIO"
	AssessmentNote      AssessmentType = "NOTE"
)

// Valid reports whether the type is a supported value.
func (t AssessmentType) Valid() bool {
	switch t {
	case AssessmentFormative, AssessmentSummative, AssessmentMidterm,
		AssessmentFinal, AssessmentPortfolio, AssessmentNote:
		return true
	default:
		return false
	}
}

// Score represents one assessment result for a student.
type Score struct {
	ID              string         `db:"id" json:"id"`
	StudentID       string         `db:"student_id" json:"studentId"`
	ClassID         string         `db:"class_id" json:"classId"`
	Subject         string         `db:"subject" json:"subject"`
	Type            AssessmentType `db:"type" json:"type"`
	Score           *int           `db:"score" json:"score"`
	AssessmentTitle *string        `db:"assessment_title" json:"assessmentTitle"`
	Date            DateOnly       `db:"date" json:"date"`
	Notes           *string        `db:"notes" json:"notes"`
	UserID          string         `db:"user_id" json:"userId"`
}

// SlugifyTitle normalizes an assessment title for use inside a score id:
// lower case, whitespace removed, anything outside [a-z0-9] stripped.
// Titles that slug down to nothing become "standard".
func SlugifyTitle(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		if unicode.IsSpace(r) {
			continue
		}
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "standard"
	}
	return b.String()
}

// ScoreKey derives the deterministic score id used when the client does not
// supply one. The same class/subject/type/title/student always maps to the
// same row, so re-imports update score and notes in place.
func ScoreKey(classID, subject string, typ AssessmentType, title, studentID string) string {
	return fmt.Sprintf("%s_%s_%s_%s_%s", classID, subject, typ, SlugifyTitle(title), studentID)
}

// ScoreFilter scopes score listings.
type ScoreFilter struct {
	ClassID string
	Subject string
	Type    string
}
