package models

import "fmt"

// ConflictType tags a detected invariant violation.
type ConflictType string

const (
	ConflictTeacherDoubleBooked ConflictType = "teacher_double_booked"
	ConflictBatchDoubleBooked   ConflictType = "batch_double_booked"
	ConflictOverload            ConflictType = "overload"
)

// Conflict is a derived invariant violation. Conflicts are never stored;
// they are recomputed from the grid on demand.
type Conflict struct {
	Type      ConflictType `json:"type"`
	Day       Weekday      `json:"day,omitempty"`
	Period    int          `json:"period,omitempty"`
	TeacherID string       `json:"teacher_id,omitempty"`
	BatchID   string       `json:"batch_id,omitempty"`
	Count     int          `json:"count,omitempty"`
}

// Key identifies a conflict for deduplication. A group of colliding entries
// yields one conflict per key, not one per pair.
func (c Conflict) Key() string {
	switch c.Type {
	case ConflictOverload:
		return fmt.Sprintf("%s|%s", c.Type, c.TeacherID)
	case ConflictBatchDoubleBooked:
		return fmt.Sprintf("%s|%s|%s|%d", c.Type, c.BatchID, c.Day, c.Period)
	default:
		return fmt.Sprintf("%s|%s|%s|%d", c.Type, c.TeacherID, c.Day, c.Period)
	}
}
