package models

// ScoredRecord is one scored performance row joined with its lesson's
// evaluation-category weight, the unit the cohort rating is computed from.
type ScoredRecord struct {
	StudentID     string
	StudentName   string
	GroupName     string
	Points        float64
	WeightPercent float64
}

// SubjectSummary aggregates a student's scored records for one subject.
type SubjectSummary struct {
	TotalPoints  float64   `json:"total_points"`
	AvgPoints    float64   `json:"avg_points"`
	LessonsCount int       `json:"lessons_count"`
	Scores       []float64 `json:"scores"`
}

// RatingEntry is one row of the cohort rating, ordered by WeightedScore.
type RatingEntry struct {
	StudentID     string  `json:"student_id"`
	StudentName   string  `json:"student_name"`
	GroupName     string  `json:"group_name"`
	RawMean       float64 `json:"raw_mean"`
	WeightedScore float64 `json:"weighted_score"`
	VoteCount     int     `json:"vote_count"`
}

// AbsenceStats summarizes a student's absences.
type AbsenceStats struct {
	Total        int            `json:"total_absences"`
	Respectful   int            `json:"respectful"`
	Unrespectful int            `json:"unrespectful"`
	ByCode       map[string]int `json:"by_reason"`
}

// AbsenceCount is one row of the weekly absence report.
type AbsenceCount struct {
	StudentID   string `json:"student_id"`
	StudentName string `json:"student_name"`
	GroupName   string `json:"group_name"`
	Total       int    `json:"total_absences"`
	Unexcused   int    `json:"unexcused_absences"`
}
