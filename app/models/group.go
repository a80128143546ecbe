package models

// StudyGroup represents a cohort of students (e.g. KN-41).
type StudyGroup struct {
	ID   string `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// Subject represents a taught discipline.
type Subject struct {
	ID          string `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description" db:"description"`
}

// Classroom represents a physical room where lessons take place.
type Classroom struct {
	ID       string `json:"id" db:"id"`
	Name     string `json:"name" db:"name"`
	Building string `json:"building" db:"building"`
	Capacity *int   `json:"capacity,omitempty" db:"capacity"`
}
