package grades

import (
	"sort"

	"github.com/SerhiiHodis/EduTrack/app/models"
)

// UnscoredLabel is returned when no threshold of a scale matches the points.
const UnscoredLabel = "Unscored"

// ConvertPoints maps a numeric score to a scale label. Thresholds are walked
// in descending min_points order and the first one at or below the score wins;
// a score below every threshold, including any negative score, falls through
// to the unscored sentinel.
func ConvertPoints(points float64, scale *models.GradingScale) string {
	if scale == nil {
		return UnscoredLabel
	}

	thresholds := make([]*models.GradeThreshold, len(scale.Thresholds))
	copy(thresholds, scale.Thresholds)
	sort.SliceStable(thresholds, func(i, j int) bool {
		return thresholds[i].MinPoints > thresholds[j].MinPoints
	})

	for _, t := range thresholds {
		if t.MinPoints <= points {
			return t.Label
		}
	}
	return UnscoredLabel
}
