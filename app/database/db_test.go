package database

import (
	"errors"
	"testing"

	"github.com/lib/pq"
)

func TestConstraintViolationClassification(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		wantUnique    bool
		wantExclusion bool
	}{
		{"unique violation", &pq.Error{Code: "23505"}, true, false},
		{"exclusion violation", &pq.Error{Code: "23P01"}, false, true},
		{"check violation is neither", &pq.Error{Code: "23514"}, false, false},
		{"plain error", errors.New("connection reset"), false, false},
		{"nil error", nil, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsUniqueViolation(tt.err); got != tt.wantUnique {
				t.Errorf("IsUniqueViolation = %v, want %v", got, tt.wantUnique)
			}
			if got := IsExclusionViolation(tt.err); got != tt.wantExclusion {
				t.Errorf("IsExclusionViolation = %v, want %v", got, tt.wantExclusion)
			}
		})
	}
}
