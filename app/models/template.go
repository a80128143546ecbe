package models

import "time"

// ScheduleTemplate is a recurring weekly rule that produces dated lessons.
// Subject and teacher are derived through the owning assignment and never
// stored on the template itself; group_id is kept as the scheduling coordinate
// backing the (group, day, period) uniqueness constraint and must always match
// the assignment's group.
type ScheduleTemplate struct {
	ID              string    `json:"id" db:"id"`
	AssignmentID    string    `json:"assignment_id" db:"assignment_id"`
	GroupID         string    `json:"group_id" db:"group_id"`
	DayOfWeek       int       `json:"day_of_week" db:"day_of_week"`
	Period          int       `json:"period" db:"period"`
	StartTime       string    `json:"start_time" db:"start_time"`
	DurationMinutes int       `json:"duration_minutes" db:"duration_minutes"`
	ClassroomID     *string   `json:"classroom_id,omitempty" db:"classroom_id"`
	ValidFrom       time.Time `json:"valid_from" db:"valid_from"`

	// Derived through joins, not stored on the template row.
	SubjectID     string `json:"subject_id,omitempty"`
	SubjectName   string `json:"subject_name,omitempty"`
	TeacherID     string `json:"teacher_id,omitempty"`
	TeacherName   string `json:"teacher_name,omitempty"`
	ClassroomName string `json:"classroom_name,omitempty"`
}

// EndTime returns the template's end as "HH:MM".
func (t *ScheduleTemplate) EndTime() string {
	end, err := AddMinutes(t.StartTime, t.DurationMinutes)
	if err != nil {
		return t.StartTime
	}
	return end
}
