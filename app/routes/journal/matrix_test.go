package journal

import (
	"testing"
	"time"

	"github.com/SerhiiHodis/EduTrack/app/models"
)

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestBuildMatrixHeaders(t *testing.T) {
	slots := []*models.TimeSlot{
		{Period: 1, StartTime: "08:00", EndTime: "09:20"},
		{Period: 2, StartTime: "09:30", EndTime: "10:50"},
	}
	lessons := []*models.Lesson{
		{ID: "l1", Date: date("2026-01-05"), StartTime: "08:00", CategoryName: "Lecture", MaxPoints: 100},
		{ID: "l2", Date: date("2026-01-05"), StartTime: "09:30", CategoryName: "Lab", MaxPoints: 100},
		{ID: "l3", Date: date("2026-01-07"), StartTime: "11:00", CategoryName: "Lecture", MaxPoints: 50},
	}

	m := BuildMatrix(nil, lessons, nil, nil, slots, date("2026-01-07"))

	if len(m.Days) != 2 {
		t.Fatalf("got %d day headers, want 2", len(m.Days))
	}
	if m.Days[0].Date != "2026-01-05" || len(m.Days[0].Lessons) != 2 {
		t.Errorf("first day = %s with %d lessons, want 2026-01-05 with 2", m.Days[0].Date, len(m.Days[0].Lessons))
	}
	if got := m.Days[0].Lessons[0].Period; got != 1 {
		t.Errorf("first lesson period = %d, want 1", got)
	}
	if got := m.Days[0].Lessons[1].Period; got != 2 {
		t.Errorf("second lesson period = %d, want 2", got)
	}
	// 11:00 matches no bell-table entry.
	if got := m.Days[1].Lessons[0].Period; got != 0 {
		t.Errorf("off-grid lesson period = %d, want 0 sentinel", got)
	}

	if m.CategoryMaxPoints["Lecture"] != 150 {
		t.Errorf("Lecture max points = %d, want 150", m.CategoryMaxPoints["Lecture"])
	}
	if m.CategoryMaxPoints["Lab"] != 100 {
		t.Errorf("Lab max points = %d, want 100", m.CategoryMaxPoints["Lab"])
	}
}

func TestBuildMatrixCells(t *testing.T) {
	students := []*models.User{
		{ID: "s1", FullName: "A. Bondar"},
		{ID: "s2", FullName: "B. Kovalenko"},
	}
	lessons := []*models.Lesson{
		{ID: "l1", Date: date("2026-01-05"), StartTime: "08:00", MaxPoints: 100},
	}
	score := 91.4
	code := "N"
	records := []*models.PerformanceRecord{
		{LessonID: "l1", StudentID: "s1", EarnedPoints: &score, Comment: "late submission"},
		{LessonID: "l1", StudentID: "s2", AbsenceCode: &code},
	}

	m := BuildMatrix(students, lessons, records, nil, nil, date("2026-01-05"))

	if len(m.Students) != 2 {
		t.Fatalf("got %d rows, want 2", len(m.Students))
	}

	cell := m.Students[0].Cells["l1"]
	if cell == nil || cell.Display != "91" {
		t.Errorf("scored cell = %+v, want display 91", cell)
	}
	if cell != nil && cell.Comment != "late submission" {
		t.Errorf("comment = %q, want it carried through", cell.Comment)
	}

	cell = m.Students[1].Cells["l1"]
	if cell == nil || cell.Display != "N" {
		t.Errorf("absence cell = %+v, want display N", cell)
	}
}

func TestBuildMatrixEmptyCellIsNotZero(t *testing.T) {
	students := []*models.User{{ID: "s1", FullName: "A. Bondar"}}
	lessons := []*models.Lesson{
		{ID: "l1", Date: date("2026-01-05"), StartTime: "08:00", MaxPoints: 100},
	}

	m := BuildMatrix(students, lessons, nil, nil, nil, date("2026-01-05"))

	if _, ok := m.Students[0].Cells["l1"]; ok {
		t.Error("ungraded lesson must have no cell, not a zero cell")
	}
}

func TestBuildMatrixPresence(t *testing.T) {
	now := time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC)
	students := []*models.User{
		{ID: "s1", FullName: "entered"},
		{ID: "s2", FullName: "entered and left"},
		{ID: "s3", FullName: "no events"},
		{ID: "s4", FullName: "yesterday only"},
	}
	logs := []*models.AccessLog{
		{StudentID: "s1", Timestamp: now.Add(-3 * time.Hour), Action: models.AccessEnter},
		{StudentID: "s2", Timestamp: now.Add(-4 * time.Hour), Action: models.AccessEnter},
		{StudentID: "s2", Timestamp: now.Add(-1 * time.Hour), Action: models.AccessExit},
		{StudentID: "s4", Timestamp: now.AddDate(0, 0, -1), Action: models.AccessEnter},
	}

	m := BuildMatrix(students, nil, nil, logs, nil, now)

	want := []bool{true, false, false, false}
	for i, row := range m.Students {
		if row.PresentNow != want[i] {
			t.Errorf("%s: present = %v, want %v", row.StudentName, row.PresentNow, want[i])
		}
	}
}
