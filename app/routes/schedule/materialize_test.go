package schedule

import (
	"errors"
	"testing"
	"time"

	"github.com/SerhiiHodis/EduTrack/app/models"
)

func TestISOWeekday(t *testing.T) {
	// 2026-01-05 is a Monday.
	tests := []struct {
		date string
		want int
	}{
		{"2026-01-05", models.Monday},
		{"2026-01-06", models.Tuesday},
		{"2026-01-07", models.Wednesday},
		{"2026-01-08", models.Thursday},
		{"2026-01-09", models.Friday},
		{"2026-01-10", models.Saturday},
		{"2026-01-11", models.Sunday},
	}

	for _, tt := range tests {
		d, err := time.Parse("2006-01-02", tt.date)
		if err != nil {
			t.Fatal(err)
		}
		if got := ISOWeekday(d); got != tt.want {
			t.Errorf("ISOWeekday(%s) = %d, want %d", tt.date, got, tt.want)
		}
	}
}

func TestNewLessonFromTemplate(t *testing.T) {
	room := "room-1"
	tmpl := &models.ScheduleTemplate{
		ID:              "t1",
		AssignmentID:    "a1",
		GroupID:         "g1",
		DayOfWeek:       models.Monday,
		Period:          1,
		StartTime:       "08:30",
		DurationMinutes: 80,
		ClassroomID:     &room,
		SubjectID:       "sub1",
		TeacherID:       "teacher-1",
	}
	date, _ := time.Parse("2006-01-02", "2026-01-05")

	lesson := NewLessonFromTemplate(tmpl, date, "cat1")

	if lesson.GroupID != "g1" || lesson.SubjectID != "sub1" || lesson.TeacherID != "teacher-1" {
		t.Errorf("identity fields not carried: %+v", lesson)
	}
	if lesson.StartTime != "08:30" || lesson.EndTime != "09:50" {
		t.Errorf("times = %s-%s, want 08:30-09:50", lesson.StartTime, lesson.EndTime)
	}
	if lesson.MaxPoints != models.MaxPoints {
		t.Errorf("MaxPoints = %d, want %d", lesson.MaxPoints, models.MaxPoints)
	}
	if lesson.EvaluationCategoryID == nil || *lesson.EvaluationCategoryID != "cat1" {
		t.Error("evaluation category not set")
	}
	if lesson.TemplateID == nil || *lesson.TemplateID != "t1" {
		t.Error("template link not set")
	}
}

func TestNeedsRealign(t *testing.T) {
	tmpl := &models.ScheduleTemplate{SubjectID: "sub1", TeacherID: "teacher-1"}

	tests := []struct {
		name      string
		subjectID string
		teacherID string
		want      bool
	}{
		{"matching lesson is left alone", "sub1", "teacher-1", false},
		{"subject drift triggers repair", "sub2", "teacher-1", true},
		{"teacher drift triggers repair", "sub1", "teacher-2", true},
		{"both drifted", "sub2", "teacher-2", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			existing := &models.Lesson{SubjectID: tt.subjectID, TeacherID: tt.teacherID}
			if got := NeedsRealign(existing, tmpl); got != tt.want {
				t.Errorf("NeedsRealign = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMaterializationIsIdempotent(t *testing.T) {
	// A second sweep sees the lesson the first one created. It must neither
	// duplicate nor touch it: the freshly built lesson matches its template,
	// so no realign fires.
	tmpl := &models.ScheduleTemplate{
		ID:        "t1",
		GroupID:   "g1",
		SubjectID: "sub1",
		TeacherID: "teacher-1",
		StartTime: "08:30",
	}
	date, _ := time.Parse("2006-01-02", "2026-01-05")

	first := NewLessonFromTemplate(tmpl, date, "cat1")
	if NeedsRealign(first, tmpl) {
		t.Error("a lesson just built from its template must not need repair")
	}

	// Only after the template is repointed does the existing lesson drift.
	tmpl.SubjectID = "sub2"
	if !NeedsRealign(first, tmpl) {
		t.Error("a repointed template must repair the existing lesson")
	}
}

func TestCheckPeriodBound(t *testing.T) {
	tests := []struct {
		name      string
		period    int
		maxPeriod int
		wantErr   bool
	}{
		{"within bell table", 3, 8, false},
		{"at bell table max", 8, 8, false},
		{"beyond bell table", 9, 8, true},
		{"far beyond bell table", 99, 8, true},
		{"empty bell table binds nothing", 99, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkPeriodBound(tt.period, tt.maxPeriod)
			if (err != nil) != tt.wantErr {
				t.Fatalf("checkPeriodBound(%d, %d) = %v, wantErr %v", tt.period, tt.maxPeriod, err, tt.wantErr)
			}
			if err != nil {
				var vErr *models.ValidationError
				if !errors.As(err, &vErr) || vErr.Field != "period" {
					t.Errorf("want a period validation error, got %v", err)
				}
			}
		})
	}
}

func TestTemplateEndTime(t *testing.T) {
	tests := []struct {
		start    string
		duration int
		want     string
	}{
		{"08:00", 80, "09:20"},
		{"09:30", 80, "10:50"},
		{"23:30", 60, "00:30"},
		{"12:00", 45, "12:45"},
	}

	for _, tt := range tests {
		tmpl := &models.ScheduleTemplate{StartTime: tt.start, DurationMinutes: tt.duration}
		if got := tmpl.EndTime(); got != tt.want {
			t.Errorf("EndTime(%s + %dm) = %s, want %s", tt.start, tt.duration, got, tt.want)
		}
	}
}
