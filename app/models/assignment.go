package models

// TeachingAssignment authorizes one (subject, teacher, group) triple to carry
// schedule templates and lessons. The triple is unique.
type TeachingAssignment struct {
	ID          string `json:"id" db:"id"`
	SubjectID   string `json:"subject_id" db:"subject_id"`
	TeacherID   string `json:"teacher_id" db:"teacher_id"`
	GroupID     string `json:"group_id" db:"group_id"`
	SubjectName string `json:"subject_name,omitempty"`
	TeacherName string `json:"teacher_name,omitempty"`
	GroupName   string `json:"group_name,omitempty"`
}

// EvaluationCategory is a weighted grading bucket (e.g. lecture, lab) owned by
// one teaching assignment. The weights of all categories of one assignment must
// not exceed 100 in total; enforced at write time.
type EvaluationCategory struct {
	ID            string  `json:"id" db:"id"`
	AssignmentID  string  `json:"assignment_id" db:"assignment_id"`
	Name          string  `json:"name" db:"name"`
	WeightPercent float64 `json:"weight_percent" db:"weight_percent"`
}

// DefaultCategoryName is the name given to the zero-weight evaluation category
// that is auto-created when an assignment has none. This is a convenience
// affordance of lesson materialization, not a business rule.
const DefaultCategoryName = "Lesson"
