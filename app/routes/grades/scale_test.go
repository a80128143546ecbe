package grades

import (
	"testing"

	"github.com/SerhiiHodis/EduTrack/app/models"
)

func ectsScale() *models.GradingScale {
	return &models.GradingScale{
		Name: "ECTS",
		Thresholds: []*models.GradeThreshold{
			{Label: "A", MinPoints: 90},
			{Label: "B", MinPoints: 80},
			{Label: "C", MinPoints: 70},
			{Label: "D", MinPoints: 60},
			{Label: "E", MinPoints: 50},
			{Label: "FX", MinPoints: 35},
			{Label: "F", MinPoints: 0},
		},
	}
}

func TestConvertPoints(t *testing.T) {
	scale := ectsScale()

	tests := []struct {
		points float64
		want   string
	}{
		{100, "A"},
		{90, "A"},
		{89.9, "B"},
		{80, "B"},
		{70, "C"},
		{60, "D"},
		{50, "E"},
		{35, "FX"},
		{34.9, "F"},
		{0, "F"},
		{-1, UnscoredLabel},
	}

	for _, tt := range tests {
		if got := ConvertPoints(tt.points, scale); got != tt.want {
			t.Errorf("ConvertPoints(%v) = %q, want %q", tt.points, got, tt.want)
		}
	}
}

func TestConvertPointsUnsortedThresholds(t *testing.T) {
	// Storage order must not matter; the converter sorts descending itself.
	scale := &models.GradingScale{
		Thresholds: []*models.GradeThreshold{
			{Label: "F", MinPoints: 0},
			{Label: "A", MinPoints: 90},
			{Label: "C", MinPoints: 70},
		},
	}

	if got := ConvertPoints(95, scale); got != "A" {
		t.Errorf("ConvertPoints(95) = %q, want A", got)
	}
	if got := ConvertPoints(75, scale); got != "C" {
		t.Errorf("ConvertPoints(75) = %q, want C", got)
	}
}

func TestConvertPointsEmptyScale(t *testing.T) {
	if got := ConvertPoints(80, &models.GradingScale{}); got != UnscoredLabel {
		t.Errorf("empty scale: got %q, want %q", got, UnscoredLabel)
	}
	if got := ConvertPoints(80, nil); got != UnscoredLabel {
		t.Errorf("nil scale: got %q, want %q", got, UnscoredLabel)
	}
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name      string
		scores    []float64
		wantTotal float64
		wantMean  float64
		wantCount int
	}{
		{"empty", nil, 0, 0, 0},
		{"single", []float64{80}, 80, 80, 1},
		{"several", []float64{70, 80, 90}, 240, 80, 3},
		{"zeros count", []float64{0, 0}, 0, 0, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summarize(tt.scores)
			if got.TotalPoints != tt.wantTotal || got.AvgPoints != tt.wantMean || got.LessonsCount != tt.wantCount {
				t.Errorf("Summarize(%v) = total %v mean %v count %d, want %v %v %d",
					tt.scores, got.TotalPoints, got.AvgPoints, got.LessonsCount,
					tt.wantTotal, tt.wantMean, tt.wantCount)
			}
		})
	}
}
