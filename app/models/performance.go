package models

import "time"

// AbsenceReason is a reference entry for absence codes (N, S, ...).
type AbsenceReason struct {
	ID           string `json:"id" db:"id"`
	Code         string `json:"code" db:"code"`
	Description  string `json:"description" db:"description"`
	IsRespectful bool   `json:"is_respectful" db:"is_respectful"`
}

// PerformanceRecord is the single per-student outcome for one lesson: either
// earned points or an absence reference, never both. A record with neither set
// does not exist; clearing a grade deletes the row. The (lesson, student) pair
// is unique, and the student must belong to the lesson's group.
type PerformanceRecord struct {
	ID           string     `json:"id" db:"id"`
	LessonID     string     `json:"lesson_id" db:"lesson_id"`
	StudentID    string     `json:"student_id" db:"student_id"`
	EarnedPoints *float64   `json:"earned_points,omitempty" db:"earned_points"`
	AbsenceID    *string    `json:"absence_id,omitempty" db:"absence_id"`
	Comment      string     `json:"comment" db:"comment"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`

	AbsenceCode         *string `json:"absence_code,omitempty"`
	AbsenceIsRespectful *bool   `json:"absence_is_respectful,omitempty"`
}

// AccessLog is one turnstile event in the append-only building access stream.
type AccessLog struct {
	ID        string       `json:"id" db:"id"`
	StudentID string       `json:"student_id" db:"student_id"`
	Timestamp time.Time    `json:"timestamp" db:"timestamp"`
	Action    AccessAction `json:"action" db:"action"`
}
