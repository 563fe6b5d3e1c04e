package models

// Subject is identified by (name, owner); duplicate inserts are absorbed
// silently rather than rejected.
type Subject struct {
	ID     int    `db:"id" json:"-"`
	Name   string `db:"name" json:"name"`
	UserID string `db:"user_id" json:"userId"`
}
