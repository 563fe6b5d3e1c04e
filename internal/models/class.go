package models

// Class represents a class group owned by a teacher. Deleting a class
// detaches its students rather than deleting them.
type Class struct {
	ID     string `db:"id" json:"id"`
	Name   string `db:"name" json:"name"`
	Grade  *int   `db:"grade" json:"grade,omitempty"`
	UserID string `db:"user_id" json:"userId"`
}
