package journal

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/SerhiiHodis/EduTrack/app/models"
)

// EmptyCell is the sentinel the journal renders for an ungraded cell; receiving
// it back on grade entry means "clear".
const EmptyCell = "—"

// GradeValue is the parsed form of a raw journal cell input: exactly one of
// Clear, Points or Absence is set.
type GradeValue struct {
	Clear   bool
	Points  *float64
	Absence *models.AbsenceReason
}

// ParseGradeValue interprets a raw grade string. Empty or the empty-cell
// sentinel clears the record; a known absence code (case-insensitive) marks an
// absence; a numeric string within [0, maxPoints] sets a score. Anything else
// is a validation error.
func ParseGradeValue(raw string, reasons []*models.AbsenceReason, maxPoints int) (*GradeValue, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == EmptyCell {
		return &GradeValue{Clear: true}, nil
	}

	for _, r := range reasons {
		if strings.EqualFold(raw, r.Code) {
			return &GradeValue{Absence: r}, nil
		}
	}

	points, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, models.NewValidationError("value",
			fmt.Sprintf("%q is neither a number nor a known absence code", raw))
	}
	if points < 0 || points > float64(maxPoints) {
		return nil, models.NewValidationError("value",
			fmt.Sprintf("score must be between 0 and %d", maxPoints))
	}
	return &GradeValue{Points: &points}, nil
}

// DisplayValue renders a performance record the way the journal shows it: the
// absence code, or the integer-truncated score, or the empty string. An unset
// cell is distinguishable from a scored zero.
func DisplayValue(rec *models.PerformanceRecord) string {
	if rec == nil {
		return ""
	}
	if rec.AbsenceCode != nil {
		return *rec.AbsenceCode
	}
	if rec.EarnedPoints != nil {
		return strconv.Itoa(int(*rec.EarnedPoints))
	}
	return ""
}
