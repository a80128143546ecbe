package reports

import (
	"sort"

	"github.com/SerhiiHodis/EduTrack/app/models"
)

// SmoothingK is the Bayesian smoothing constant: the number of scored records
// at which a student's own mean and the cohort mean weigh equally.
const SmoothingK = 5

// ComputeBayesianRating ranks a cohort by weighted score smoothed toward the
// cohort-wide mean, so one lucky high score cannot outrank a long record of
// consistently good ones. Students with no scored records are excluded, not
// ranked at zero. Output is ordered by weighted score descending; ties keep
// their input order.
func ComputeBayesianRating(records []*models.ScoredRecord) []*models.RatingEntry {
	type accum struct {
		entry     *models.RatingEntry
		weighted  float64
		weightSum float64
	}

	var globalWeighted, globalWeightSum float64
	byStudent := make(map[string]*accum)
	var order []string

	for _, r := range records {
		weightedValue := r.Points * r.WeightPercent
		globalWeighted += weightedValue
		globalWeightSum += r.WeightPercent

		a := byStudent[r.StudentID]
		if a == nil {
			a = &accum{entry: &models.RatingEntry{
				StudentID:   r.StudentID,
				StudentName: r.StudentName,
				GroupName:   r.GroupName,
			}}
			byStudent[r.StudentID] = a
			order = append(order, r.StudentID)
		}
		a.weighted += weightedValue
		a.weightSum += r.WeightPercent
		a.entry.VoteCount++
	}

	// Cohort prior. A cohort whose every record carries zero weight has no
	// meaningful mean to shrink toward.
	var c float64
	if globalWeightSum > 0 {
		c = globalWeighted / globalWeightSum
	}

	entries := make([]*models.RatingEntry, 0, len(order))
	for _, studentID := range order {
		a := byStudent[studentID]
		if a.entry.VoteCount == 0 {
			continue
		}
		if a.weightSum > 0 {
			a.entry.RawMean = a.weighted / a.weightSum
		}
		v := float64(a.entry.VoteCount)
		a.entry.WeightedScore = (v/(v+SmoothingK))*a.entry.RawMean + (SmoothingK/(v+SmoothingK))*c
		entries = append(entries, a.entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].WeightedScore > entries[j].WeightedScore
	})
	return entries
}
