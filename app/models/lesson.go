package models

import "time"

// Lesson is one concrete dated occurrence, either materialized from a schedule
// template or created manually (TemplateID nil). The (group, date, start_time)
// triple is unique.
type Lesson struct {
	ID                   string    `json:"id" db:"id"`
	GroupID              string    `json:"group_id" db:"group_id"`
	SubjectID            string    `json:"subject_id" db:"subject_id"`
	TeacherID            string    `json:"teacher_id" db:"teacher_id"`
	Date                 time.Time `json:"date" db:"date"`
	StartTime            string    `json:"start_time" db:"start_time"`
	EndTime              string    `json:"end_time" db:"end_time"`
	Topic                string    `json:"topic" db:"topic"`
	ClassroomID          *string   `json:"classroom_id,omitempty" db:"classroom_id"`
	MaxPoints            int       `json:"max_points" db:"max_points"`
	EvaluationCategoryID *string   `json:"evaluation_category_id,omitempty" db:"evaluation_category_id"`
	TemplateID           *string   `json:"template_id,omitempty" db:"template_id"`

	SubjectName    string  `json:"subject_name,omitempty"`
	TeacherName    string  `json:"teacher_name,omitempty"`
	CategoryName   string  `json:"category_name,omitempty"`
	CategoryWeight float64 `json:"category_weight,omitempty"`
}
