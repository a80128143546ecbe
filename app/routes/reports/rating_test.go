package reports

import (
	"math"
	"testing"

	"github.com/SerhiiHodis/EduTrack/app/models"
)

func scored(student string, points float64) *models.ScoredRecord {
	return &models.ScoredRecord{StudentID: student, StudentName: student, Points: points, WeightPercent: 100}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestRatingExcludesUnscored(t *testing.T) {
	// Only students with scored records appear; there is no one else to rank.
	entries := ComputeBayesianRating([]*models.ScoredRecord{scored("a", 80)})
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].StudentID != "a" {
		t.Errorf("ranked %s, want a", entries[0].StudentID)
	}
}

func TestRatingEmptyCohort(t *testing.T) {
	if entries := ComputeBayesianRating(nil); len(entries) != 0 {
		t.Errorf("empty cohort produced %d entries", len(entries))
	}
}

func TestRatingZeroWeightCohort(t *testing.T) {
	// All weights zero: the prior falls back to 0 and nothing divides by zero.
	records := []*models.ScoredRecord{
		{StudentID: "a", Points: 80, WeightPercent: 0},
		{StudentID: "a", Points: 90, WeightPercent: 0},
	}
	entries := ComputeBayesianRating(records)
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].RawMean != 0 || entries[0].WeightedScore != 0 {
		t.Errorf("zero-weight cohort: mean %v score %v, want 0 0",
			entries[0].RawMean, entries[0].WeightedScore)
	}
}

func TestRatingMidpointAtK(t *testing.T) {
	// A student with exactly K scored records lands halfway between their own
	// mean and the cohort mean.
	var records []*models.ScoredRecord
	for i := 0; i < SmoothingK; i++ {
		records = append(records, scored("a", 60))
	}
	// Second student shifts the cohort mean away from 60.
	records = append(records, scored("b", 100))

	entries := ComputeBayesianRating(records)

	var a *models.RatingEntry
	for _, e := range entries {
		if e.StudentID == "a" {
			a = e
		}
	}
	if a == nil {
		t.Fatal("student a missing from rating")
	}

	cohortMean := (60.0*float64(SmoothingK) + 100.0) / float64(SmoothingK+1)
	want := 0.5*60.0 + 0.5*cohortMean
	if !almostEqual(a.WeightedScore, want) {
		t.Errorf("weighted score at v=K: got %v, want %v", a.WeightedScore, want)
	}
}

func TestRatingConvergesToRawMean(t *testing.T) {
	// As volume grows, the weighted score approaches the student's own mean.
	var records []*models.ScoredRecord
	for i := 0; i < 1000; i++ {
		records = append(records, scored("a", 90))
	}
	records = append(records, scored("b", 10))

	entries := ComputeBayesianRating(records)
	if entries[0].StudentID != "a" {
		t.Fatalf("high-volume student should rank first")
	}
	if math.Abs(entries[0].WeightedScore-90) > 1 {
		t.Errorf("high-volume score = %v, want near raw mean 90", entries[0].WeightedScore)
	}
}

func TestRatingAntiGaming(t *testing.T) {
	// One lucky 100 must not outrank five consistent scores near 72.
	records := []*models.ScoredRecord{scored("a", 100)}
	for _, p := range []float64{70, 75, 72, 68, 74} {
		records = append(records, scored("b", p))
	}

	entries := ComputeBayesianRating(records)
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}

	var a, b *models.RatingEntry
	for _, e := range entries {
		switch e.StudentID {
		case "a":
			a = e
		case "b":
			b = e
		}
	}

	if a.RawMean != 100 {
		t.Errorf("a raw mean = %v, want 100", a.RawMean)
	}
	if !almostEqual(b.RawMean, 71.8) {
		t.Errorf("b raw mean = %v, want 71.8", b.RawMean)
	}

	// A's single score is shrunk hard toward the cohort mean (~76.5), while
	// B at v=K sits midway between 71.8 and the cohort mean.
	if a.WeightedScore >= 100 {
		t.Errorf("a weighted score = %v, want pulled below the naive 100", a.WeightedScore)
	}

	cohort := (100.0 + 70 + 75 + 72 + 68 + 74) / 6.0
	wantA := (1.0/6.0)*100 + (5.0/6.0)*cohort
	wantB := 0.5*71.8 + 0.5*cohort
	if !almostEqual(a.WeightedScore, wantA) {
		t.Errorf("a weighted score = %v, want %v", a.WeightedScore, wantA)
	}
	if !almostEqual(b.WeightedScore, wantB) {
		t.Errorf("b weighted score = %v, want %v", b.WeightedScore, wantB)
	}
	if math.Abs(a.WeightedScore-b.WeightedScore) > 8 {
		t.Errorf("anti-gaming: a (%v) and b (%v) should end up close", a.WeightedScore, b.WeightedScore)
	}
}

func TestRatingSortOrder(t *testing.T) {
	records := []*models.ScoredRecord{}
	for i := 0; i < 6; i++ {
		records = append(records, scored("low", 50))
		records = append(records, scored("high", 95))
	}

	entries := ComputeBayesianRating(records)
	if entries[0].StudentID != "high" || entries[1].StudentID != "low" {
		t.Errorf("order = [%s %s], want [high low]", entries[0].StudentID, entries[1].StudentID)
	}
}
