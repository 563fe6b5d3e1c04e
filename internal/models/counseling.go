package models

// CounselingType classifies a counseling session.
type CounselingType string

const (
	CounselingAcademic CounselingType = "AKADEMIK"
	CounselingBehavior CounselingType = "PERILAKU"
	CounselingPersonal CounselingType = "PRIBADI"
	CounselingSocial   CounselingType = "SOSIAL"
)

// Valid reports whether the type is a supported value.
func (t CounselingType) Valid() bool {
	switch t {
	case CounselingAcademic, CounselingBehavior, CounselingPersonal, CounselingSocial:
		return true
	default:
		return false
	}
}

// Counseling represents a counseling session record. Re-saving by id
// overwrites notes, follow-up and the AI suggestion only.
type Counseling struct {
	ID           string         `db:"id" json:"id"`
	StudentID    string         `db:"student_id" json:"studentId"`
	Date         DateOnly       `db:"date" json:"date"`
	Type         CounselingType `db:"type" json:"type"`
	Notes        *string        `db:"notes" json:"notes"`
	FollowUp     *string        `db:"follow_up" json:"followUp"`
	AISuggestion *string        `db:"ai_suggestion" json:"aiSuggestion"`
	IsPrivate    bool           `db:"is_private" json:"isPrivate"`
	UserID       string         `db:"user_id" json:"userId"`
}

// CounselingRecord extends the session row with the joined student name.
type CounselingRecord struct {
	Counseling
	StudentName *string `db:"student_name" json:"studentName,omitempty"`
}
