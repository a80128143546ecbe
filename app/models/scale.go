package models

// GradingScale owns an ordered list of thresholds mapping points to labels.
type GradingScale struct {
	ID         string            `json:"id" db:"id"`
	Name       string            `json:"name" db:"name"`
	Thresholds []*GradeThreshold `json:"thresholds,omitempty"`
}

// GradeThreshold is one (label, min_points) rule of a scale. Thresholds are
// read in descending min_points order.
type GradeThreshold struct {
	ID        string  `json:"id" db:"id"`
	ScaleID   string  `json:"scale_id" db:"scale_id"`
	Label     string  `json:"label" db:"label"`
	MinPoints float64 `json:"min_points" db:"min_points"`
}
