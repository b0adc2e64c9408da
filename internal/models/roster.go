package models

// AllowedBatch is one batch/subject pairing a teacher is authorized to teach.
type AllowedBatch struct {
	BatchID     string `db:"batch_id" json:"batch_id"`
	BatchName   string `db:"batch_name" json:"batch_name"`
	SubjectID   string `db:"subject_id" json:"subject_id"`
	SubjectName string `db:"subject_name" json:"subject_name"`
}

// TeacherLoad is the roster fact about one teacher. It is read-only to the
// workspace core; the roster repository supplies it.
type TeacherLoad struct {
	TeacherID      string         `json:"teacher_id"`
	TeacherName    string         `json:"teacher_name"`
	WorkingDays    []Weekday      `json:"working_days"`
	AllowedBatches []AllowedBatch `json:"allowed_batches"`
}

// WorksOn reports whether the teacher is available on the given day.
func (t TeacherLoad) WorksOn(day Weekday) bool {
	for _, d := range t.WorkingDays {
		if d == day {
			return true
		}
	}
	return false
}

// BatchByID returns the allowed batch with the given id.
func (t TeacherLoad) BatchByID(batchID string) (AllowedBatch, bool) {
	for _, b := range t.AllowedBatches {
		if b.BatchID == batchID {
			return b, true
		}
	}
	return AllowedBatch{}, false
}

// Subject is one catalog subject.
type Subject struct {
	ID   string `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// Batch is a named group of students sharing a single timetable.
type Batch struct {
	ID   string `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// TeacherLoadFilter narrows roster queries.
type TeacherLoadFilter struct {
	Search   string
	BatchID  string
	Page     int
	PageSize int
}
