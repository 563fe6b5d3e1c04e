package models

import "time"

// Semester selects a half of the calendar year for recap filtering.
type Semester string

const (
	// SemesterOdd covers July through December.
	SemesterOdd Semester = "ODD"
	// SemesterEven covers January through June.
	SemesterEven Semester = "EVEN"
)

// Valid reports whether the semester is a supported value.
func (s Semester) Valid() bool {
	return s == SemesterOdd || s == SemesterEven
}

// Period is the time window a recap aggregates over: a calendar year plus
// either a semester band or an explicit month set. A non-empty month set
// takes precedence over the semester.
type Period struct {
	Year     int
	Semester Semester
	Months   []time.Month
}

// Contains reports whether a date falls inside the period.
func (p Period) Contains(d time.Time) bool {
	if p.Year != 0 && d.Year() != p.Year {
		return false
	}
	if len(p.Months) > 0 {
		for _, m := range p.Months {
			if d.Month() == m {
				return true
			}
		}
		return false
	}
	switch p.Semester {
	case SemesterOdd:
		return d.Month() >= time.July
	case SemesterEven:
		return d.Month() <= time.June
	default:
		return true
	}
}

// AttendanceRecapRow tallies one student's statuses for the period.
type AttendanceRecapRow struct {
	StudentID   string  `json:"studentId"`
	StudentName string  `json:"studentName"`
	Present     int     `json:"present"`
	Sick        int     `json:"sick"`
	Excused     int     `json:"excused"`
	Absent      int     `json:"absent"`
	Total       int     `json:"total"`
	Percentage  float64 `json:"percentage"`
}

// ScoreRecapRow pivots one student's scores into assessment-title columns.
// Values holds the score per column in column order; nil means no entry.
type ScoreRecapRow struct {
	StudentID   string  `json:"studentId"`
	StudentName string  `json:"studentName"`
	Values      []*int  `json:"values"`
	Average     float64 `json:"average"`
}

// ScoreRecap is the full pivoted matrix for a class and subject.
type ScoreRecap struct {
	Columns []ScoreRecapColumn `json:"columns"`
	Rows    []ScoreRecapRow    `json:"rows"`
}

// ScoreRecapColumn describes one pivoted assessment column.
type ScoreRecapColumn struct {
	Type  AssessmentType `json:"type"`
	Title string         `json:"title"`
}
