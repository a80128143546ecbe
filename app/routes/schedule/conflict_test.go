package schedule

import (
	"errors"
	"testing"

	"github.com/SerhiiHodis/EduTrack/app/models"
)

func strptr(s string) *string { return &s }

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                       string
		startA, durA, startB, durB int
		want                       bool
	}{
		{"identical intervals", 480, 80, 480, 80, true},
		{"partial overlap", 480, 80, 520, 80, true},
		{"contained interval", 480, 80, 500, 20, true},
		{"touching end to start", 480, 80, 560, 80, false},
		{"touching start to end", 560, 80, 480, 80, false},
		{"disjoint", 480, 80, 600, 80, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := overlaps(tt.startA, tt.durA, tt.startB, tt.durB); got != tt.want {
				t.Errorf("overlaps(%d,%d,%d,%d) = %v, want %v",
					tt.startA, tt.durA, tt.startB, tt.durB, got, tt.want)
			}
		})
	}
}

func TestFindConflictClassroom(t *testing.T) {
	// One template occupies classroom C1 on Monday period 1. A second group
	// with a different teacher must still be rejected for the same room.
	existing := []*models.ScheduleTemplate{{
		ID:              "t1",
		GroupID:         "group-a",
		DayOfWeek:       models.Monday,
		Period:          1,
		StartTime:       "08:00",
		DurationMinutes: 80,
		ClassroomID:     strptr("c1"),
		ClassroomName:   "C1",
		TeacherID:       "teacher-1",
		TeacherName:     "I. Petrenko",
	}}

	candidate := &models.ScheduleTemplate{
		GroupID:         "group-b",
		DayOfWeek:       models.Monday,
		Period:          1,
		StartTime:       "08:00",
		DurationMinutes: 80,
		ClassroomID:     strptr("c1"),
		TeacherID:       "teacher-2",
	}

	err := FindConflict(candidate, existing, "")
	var conflict *models.ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
	if conflict.Resource != "classroom" || conflict.Name != "C1" {
		t.Errorf("got conflict on %s %q, want classroom C1", conflict.Resource, conflict.Name)
	}
	if conflict.Range != "08:00-09:20" {
		t.Errorf("conflict range = %q, want 08:00-09:20", conflict.Range)
	}

	// Excluding the occupant makes the save legal (in-place edit).
	if err := FindConflict(candidate, existing, "t1"); err != nil {
		t.Errorf("with exclusion: unexpected error %v", err)
	}
}

func TestFindConflictTeacher(t *testing.T) {
	existing := []*models.ScheduleTemplate{{
		ID:              "t1",
		GroupID:         "group-a",
		DayOfWeek:       models.Tuesday,
		Period:          2,
		StartTime:       "09:30",
		DurationMinutes: 80,
		TeacherID:       "teacher-1",
		TeacherName:     "O. Shevchenko",
	}}

	candidate := &models.ScheduleTemplate{
		GroupID:         "group-b",
		DayOfWeek:       models.Tuesday,
		Period:          2,
		StartTime:       "09:30",
		DurationMinutes: 80,
		TeacherID:       "teacher-1",
	}

	err := FindConflict(candidate, existing, "")
	var conflict *models.ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
	if conflict.Resource != "teacher" {
		t.Errorf("conflict resource = %q, want teacher", conflict.Resource)
	}
}

func TestFindConflictGroupSlot(t *testing.T) {
	existing := []*models.ScheduleTemplate{{
		ID:              "t1",
		GroupID:         "group-a",
		DayOfWeek:       models.Monday,
		Period:          3,
		StartTime:       "11:10",
		DurationMinutes: 80,
		TeacherID:       "teacher-1",
		SubjectName:     "Algebra",
	}}

	// Same group and period, different teacher and room, non-overlapping time:
	// the slot itself is still taken.
	candidate := &models.ScheduleTemplate{
		GroupID:         "group-a",
		DayOfWeek:       models.Monday,
		Period:          3,
		StartTime:       "14:00",
		DurationMinutes: 80,
		TeacherID:       "teacher-2",
	}

	err := FindConflict(candidate, existing, "")
	var conflict *models.ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
	if conflict.Resource != "slot" {
		t.Errorf("conflict resource = %q, want slot", conflict.Resource)
	}
}

func TestFindConflictTouchingIntervals(t *testing.T) {
	// Back-to-back lessons in the same room never conflict.
	existing := []*models.ScheduleTemplate{{
		ID:              "t1",
		GroupID:         "group-a",
		DayOfWeek:       models.Monday,
		Period:          1,
		StartTime:       "08:00",
		DurationMinutes: 80,
		ClassroomID:     strptr("c1"),
		TeacherID:       "teacher-1",
	}}

	candidate := &models.ScheduleTemplate{
		GroupID:         "group-b",
		DayOfWeek:       models.Monday,
		Period:          2,
		StartTime:       "09:20",
		DurationMinutes: 80,
		ClassroomID:     strptr("c1"),
		TeacherID:       "teacher-1",
	}

	if err := FindConflict(candidate, existing, ""); err != nil {
		t.Errorf("touching intervals should not conflict, got %v", err)
	}
}

func TestFindConflictValidation(t *testing.T) {
	tests := []struct {
		name      string
		candidate *models.ScheduleTemplate
		field     string
	}{
		{
			"zero duration",
			&models.ScheduleTemplate{DayOfWeek: 1, Period: 1, StartTime: "08:00", DurationMinutes: 0},
			"duration_minutes",
		},
		{
			"negative duration",
			&models.ScheduleTemplate{DayOfWeek: 1, Period: 1, StartTime: "08:00", DurationMinutes: -10},
			"duration_minutes",
		},
		{
			"day out of range",
			&models.ScheduleTemplate{DayOfWeek: 8, Period: 1, StartTime: "08:00", DurationMinutes: 80},
			"day_of_week",
		},
		{
			"period out of range",
			&models.ScheduleTemplate{DayOfWeek: 1, Period: 0, StartTime: "08:00", DurationMinutes: 80},
			"period",
		},
		{
			"garbage start time",
			&models.ScheduleTemplate{DayOfWeek: 1, Period: 1, StartTime: "morning", DurationMinutes: 80},
			"start_time",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := FindConflict(tt.candidate, nil, "")
			var verr *models.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Field != tt.field {
				t.Errorf("validation field = %q, want %q", verr.Field, tt.field)
			}
		})
	}
}

func TestFindConflictDifferentDimensionsCoexist(t *testing.T) {
	// Different room, different teacher, different group: same day and time is
	// fine.
	existing := []*models.ScheduleTemplate{{
		ID:              "t1",
		GroupID:         "group-a",
		DayOfWeek:       models.Friday,
		Period:          1,
		StartTime:       "08:00",
		DurationMinutes: 80,
		ClassroomID:     strptr("c1"),
		TeacherID:       "teacher-1",
	}}

	candidate := &models.ScheduleTemplate{
		GroupID:         "group-b",
		DayOfWeek:       models.Friday,
		Period:          1,
		StartTime:       "08:00",
		DurationMinutes: 80,
		ClassroomID:     strptr("c2"),
		TeacherID:       "teacher-2",
	}

	if err := FindConflict(candidate, existing, ""); err != nil {
		t.Errorf("independent dimensions should coexist, got %v", err)
	}
}
