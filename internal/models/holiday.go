package models

import "time"

// Holiday marks a non-teaching calendar date.
type Holiday struct {
	ID   string    `db:"id" json:"id"`
	Date time.Time `db:"date" json:"date"`
	Name string    `db:"name" json:"name"`
}

// SameDate reports whether the holiday falls on the given calendar date,
// ignoring time-of-day and zone.
func (h Holiday) SameDate(t time.Time) bool {
	hy, hm, hd := h.Date.Date()
	ty, tm, td := t.Date()
	return hy == ty && hm == tm && hd == td
}
