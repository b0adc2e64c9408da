package models

import "strings"

// Weekday names a working day on the scheduling grid.
type Weekday string

const (
	Monday    Weekday = "MONDAY"
	Tuesday   Weekday = "TUESDAY"
	Wednesday Weekday = "WEDNESDAY"
	Thursday  Weekday = "THURSDAY"
	Friday    Weekday = "FRIDAY"
	Saturday  Weekday = "SATURDAY"
)

// WorkingWeek is the fixed ordered set of schedulable days.
var WorkingWeek = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

var weekdayOffsets = map[Weekday]int{
	Monday:    0,
	Tuesday:   1,
	Wednesday: 2,
	Thursday:  3,
	Friday:    4,
	Saturday:  5,
}

// ParseWeekday normalises raw day text into a Weekday.
func ParseWeekday(raw string) (Weekday, bool) {
	day := Weekday(strings.ToUpper(strings.TrimSpace(raw)))
	_, ok := weekdayOffsets[day]
	return day, ok
}

// Offset returns the day's distance from Monday, used to project calendar
// dates from a week anchor. Unknown days report false.
func (d Weekday) Offset() (int, bool) {
	offset, ok := weekdayOffsets[d]
	return offset, ok
}

// PeriodType classifies a scheduled period.
type PeriodType string

const (
	PeriodRegular PeriodType = "REGULAR"
	PeriodLab     PeriodType = "LAB"
	PeriodSports  PeriodType = "SPORTS"
	PeriodLibrary PeriodType = "LIBRARY"
)

// Slot is a (day, period) coordinate on the grid.
type Slot struct {
	Day    Weekday `json:"day"`
	Period int     `json:"period"`
}

// TimetableEntry is one scheduled period: who teaches what, to whom, when.
type TimetableEntry struct {
	ID          string     `json:"id"`
	Day         Weekday    `json:"day"`
	Period      int        `json:"period"`
	SubjectID   string     `json:"subject_id"`
	SubjectName string     `json:"subject_name"`
	TeacherID   string     `json:"teacher_id"`
	TeacherName string     `json:"teacher_name"`
	BatchID     string     `json:"batch_id"`
	BatchName   string     `json:"batch_name"`
	PeriodType  PeriodType `json:"period_type,omitempty"`
}

// Slot returns the entry's grid coordinate.
func (e TimetableEntry) Slot() Slot {
	return Slot{Day: e.Day, Period: e.Period}
}

// Pagination carries list metadata in API responses.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalCount int `json:"total_count"`
}
