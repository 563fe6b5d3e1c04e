package models

// Journal represents a teaching journal entry. CreatedAt is epoch millis
// assigned on first insert and preserved across re-saves.
type Journal struct {
	ID                string   `db:"id" json:"id"`
	Date              DateOnly `db:"date" json:"date"`
	ClassID           *string  `db:"class_id" json:"classId"`
	Subject           *string  `db:"subject" json:"subject"`
	StartTime         *string  `db:"start_time" json:"startTime"`
	LearningObjective *string  `db:"learning_objective" json:"learningObjective"`
	Materials         *string  `db:"materials" json:"materials"`
	Method            *string  `db:"method" json:"method"`
	Activities        *string  `db:"activities" json:"activities"`
	Reflection        *string  `db:"reflection" json:"reflection"`
	EngagementLevel   *string  `db:"engagement_level" json:"engagementLevel"`
	UserID            string   `db:"user_id" json:"userId"`
	CreatedAt         int64    `db:"created_at" json:"createdAt"`
}
