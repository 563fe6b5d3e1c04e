package models

// DashboardStats aggregates headline numbers for a teacher's dashboard.
// TeachingHours assumes two hours per journal entry this month.
type DashboardStats struct {
	StudentCount   int             `json:"studentCount"`
	ClassCount     int             `json:"classCount"`
	JournalCount   int             `json:"journalCount"`
	TeachingHours  int             `json:"teachingHours"`
	RecentActivity []RecentJournal `json:"recentActivity"`
}

// RecentJournal is a compact journal reference shown as recent activity.
type RecentJournal struct {
	ID      string   `db:"id" json:"id"`
	Date    DateOnly `db:"date" json:"date"`
	Subject *string  `db:"subject" json:"subject"`
}
