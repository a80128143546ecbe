package grades

import "github.com/SerhiiHodis/EduTrack/app/models"

// Summarize aggregates a list of scored points into the per-subject summary.
// Empty input yields all zeros, not NaN.
func Summarize(scores []float64) *models.SubjectSummary {
	summary := &models.SubjectSummary{Scores: scores}
	if len(scores) == 0 {
		summary.Scores = []float64{}
		return summary
	}

	for _, s := range scores {
		summary.TotalPoints += s
	}
	summary.LessonsCount = len(scores)
	summary.AvgPoints = summary.TotalPoints / float64(len(scores))
	return summary
}
