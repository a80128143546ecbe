package journal

import (
	"errors"
	"testing"

	"github.com/SerhiiHodis/EduTrack/app/models"
)

var testReasons = []*models.AbsenceReason{
	{ID: "r1", Code: "N", Description: "absent", IsRespectful: false},
	{ID: "r2", Code: "S", Description: "sick", IsRespectful: true},
}

func TestParseGradeValue(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		wantClear   bool
		wantPoints  float64
		wantAbsence string
		wantErr     bool
	}{
		{name: "empty clears", raw: "", wantClear: true},
		{name: "whitespace clears", raw: "   ", wantClear: true},
		{name: "sentinel clears", raw: "—", wantClear: true},
		{name: "integer score", raw: "85", wantPoints: 85},
		{name: "decimal score", raw: "72.5", wantPoints: 72.5},
		{name: "zero is a score", raw: "0", wantPoints: 0},
		{name: "max score", raw: "100", wantPoints: 100},
		{name: "absence code", raw: "N", wantAbsence: "N"},
		{name: "absence code lowercase", raw: "s", wantAbsence: "S"},
		{name: "over max", raw: "101", wantErr: true},
		{name: "negative", raw: "-5", wantErr: true},
		{name: "garbage", raw: "good", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseGradeValue(tt.raw, testReasons, models.MaxPoints)
			if tt.wantErr {
				var verr *models.ValidationError
				if !errors.As(err, &verr) {
					t.Fatalf("expected ValidationError, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Clear != tt.wantClear {
				t.Errorf("Clear = %v, want %v", got.Clear, tt.wantClear)
			}
			if tt.wantAbsence != "" {
				if got.Absence == nil || got.Absence.Code != tt.wantAbsence {
					t.Errorf("Absence = %+v, want code %s", got.Absence, tt.wantAbsence)
				}
			} else if !tt.wantClear {
				if got.Points == nil || *got.Points != tt.wantPoints {
					t.Errorf("Points = %v, want %v", got.Points, tt.wantPoints)
				}
			}
		})
	}
}

func TestDisplayValue(t *testing.T) {
	points := 87.6
	zero := 0.0
	code := "N"

	tests := []struct {
		name string
		rec  *models.PerformanceRecord
		want string
	}{
		{"nil record", nil, ""},
		{"score truncated", &models.PerformanceRecord{EarnedPoints: &points}, "87"},
		{"zero score is visible", &models.PerformanceRecord{EarnedPoints: &zero}, "0"},
		{"absence wins", &models.PerformanceRecord{AbsenceCode: &code}, "N"},
		{"neither set", &models.PerformanceRecord{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DisplayValue(tt.rec); got != tt.want {
				t.Errorf("DisplayValue = %q, want %q", got, tt.want)
			}
		})
	}
}
