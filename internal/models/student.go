package models

// Student represents a student on a teacher's roster. ClassID is nullable:
// unassigned or detached students are allowed.
type Student struct {
	ID      string  `db:"id" json:"id"`
	Name    string  `db:"name" json:"name"`
	NIS     *string `db:"nis" json:"nis,omitempty"`
	ClassID *string `db:"class_id" json:"classId"`
	UserID  string  `db:"user_id" json:"userId"`
}

// StudentRecord extends the student row with the joined class name.
type StudentRecord struct {
	Student
	ClassName *string `db:"class_name" json:"className,omitempty"`
}

// StudentFilter scopes student listings.
type StudentFilter struct {
	ClassID string
}
