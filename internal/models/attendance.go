package models

import "fmt"

// AttendanceStatus is the daily presence code for a student.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "H"
	AttendanceSick    AttendanceStatus = "S"
	AttendanceExcused AttendanceStatus = "I"
	AttendanceAbsent  AttendanceStatus = "A"
)

// Valid reports whether the status is a supported code.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendancePresent, AttendanceSick, AttendanceExcused, AttendanceAbsent:
		return true
	default:
		return false
	}
}

// Attendance represents one student's status for one session.
type Attendance struct {
	ID        string           `db:"id" json:"id"`
	Date      DateOnly         `db:"date" json:"date"`
	StudentID string           `db:"student_id" json:"studentId"`
	ClassID   string           `db:"class_id" json:"classId"`
	Subject   string           `db:"subject" json:"subject"`
	Status    AttendanceStatus `db:"status" json:"status"`
	UserID    string           `db:"user_id" json:"userId"`
}

// AttendanceKey derives the deterministic record id used when the client
// does not supply one. Re-importing the same session yields the same id,
// which is what makes attendance sync idempotent.
func AttendanceKey(date, classID, subject, studentID string) string {
	return fmt.Sprintf("%s_%s_%s_%s", date, classID, subject, studentID)
}

// AttendanceFilter scopes attendance listings.
type AttendanceFilter struct {
	ClassID string
	Date    string
	Subject string
}
