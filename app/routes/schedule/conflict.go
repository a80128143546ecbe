package schedule

import (
	"fmt"

	"github.com/SerhiiHodis/EduTrack/app/database"
	"github.com/SerhiiHodis/EduTrack/app/models"
)

// overlaps reports whether two half-open minute intervals intersect. Touching
// intervals (one ends exactly where the other starts) do not overlap.
func overlaps(startA, durA, startB, durB int) bool {
	return startA < startB+durB && startB < startA+durA
}

// checkPeriodBound rejects period numbers above the bell table's highest
// period. maxPeriod 0 means the bell table is empty and nothing can be bound.
func checkPeriodBound(period, maxPeriod int) error {
	if maxPeriod > 0 && period > maxPeriod {
		return models.NewValidationError("period", fmt.Sprintf("period %d is beyond the bell table (max %d)", period, maxPeriod))
	}
	return nil
}

// FindConflict checks a proposed template against every template already
// occupying the same weekday. Checks run in a fixed order and short-circuit:
// time sanity, classroom double-booking, teacher double-booking, group slot
// occupancy. excludeID names a template being edited in place; it never
// conflicts with itself.
func FindConflict(candidate *models.ScheduleTemplate, sameDay []*models.ScheduleTemplate, excludeID string) error {
	if candidate.DayOfWeek < models.Monday || candidate.DayOfWeek > models.Sunday {
		return models.NewValidationError("day_of_week", "must be between 1 (Monday) and 7 (Sunday)")
	}
	if candidate.Period < 1 {
		return models.NewValidationError("period", "must be a positive period number")
	}
	if candidate.DurationMinutes <= 0 {
		return models.NewValidationError("duration_minutes", "must be greater than zero")
	}
	start, err := models.MinuteOfDay(candidate.StartTime)
	if err != nil {
		return models.NewValidationError("start_time", err.Error())
	}

	for _, other := range sameDay {
		if other.ID == excludeID || other.ID == candidate.ID {
			continue
		}
		if candidate.ClassroomID == nil || other.ClassroomID == nil ||
			*candidate.ClassroomID != *other.ClassroomID {
			continue
		}
		otherStart, err := models.MinuteOfDay(other.StartTime)
		if err != nil {
			continue
		}
		if overlaps(start, candidate.DurationMinutes, otherStart, other.DurationMinutes) {
			return &models.ConflictError{
				Resource: "classroom",
				Name:     other.ClassroomName,
				Day:      candidate.DayOfWeek,
				Range:    other.StartTime + "-" + other.EndTime(),
			}
		}
	}

	for _, other := range sameDay {
		if other.ID == excludeID || other.ID == candidate.ID {
			continue
		}
		if other.TeacherID != candidate.TeacherID {
			continue
		}
		otherStart, err := models.MinuteOfDay(other.StartTime)
		if err != nil {
			continue
		}
		if overlaps(start, candidate.DurationMinutes, otherStart, other.DurationMinutes) {
			return &models.ConflictError{
				Resource: "teacher",
				Name:     other.TeacherName,
				Day:      candidate.DayOfWeek,
				Range:    other.StartTime + "-" + other.EndTime(),
			}
		}
	}

	for _, other := range sameDay {
		if other.ID == excludeID || other.ID == candidate.ID {
			continue
		}
		if other.GroupID == candidate.GroupID && other.Period == candidate.Period {
			return &models.ConflictError{
				Resource: "slot",
				Name:     other.SubjectName,
				Day:      candidate.DayOfWeek,
				Range:    other.StartTime + "-" + other.EndTime(),
			}
		}
	}

	return nil
}

// ValidateSlot runs FindConflict against the current template state. It must
// share a transaction with the subsequent write so that two concurrent saves
// cannot both pass validation against the same snapshot.
func ValidateSlot(q database.DBTX, candidate *models.ScheduleTemplate, excludeID string) error {
	sameDay, err := database.ListTemplatesForDay(q, candidate.DayOfWeek)
	if err != nil {
		return err
	}
	return FindConflict(candidate, sameDay, excludeID)
}
