package journal

import (
	"time"

	"github.com/SerhiiHodis/EduTrack/app/models"
)

// LessonHeader is one column of the journal grid.
type LessonHeader struct {
	LessonID     string `json:"lesson_id"`
	Period       int    `json:"period"`
	StartTime    string `json:"start_time"`
	Topic        string `json:"topic"`
	CategoryName string `json:"category_name"`
	MaxPoints    int    `json:"max_points"`
}

// DayHeader groups one date's lesson columns.
type DayHeader struct {
	Date    string          `json:"date"`
	Lessons []*LessonHeader `json:"lessons"`
}

// Cell is one (student, lesson) entry. Display carries the rendered value;
// Points and AbsenceCode carry the raw data for editing clients.
type Cell struct {
	Display     string   `json:"display"`
	Comment     string   `json:"comment,omitempty"`
	Points      *float64 `json:"points,omitempty"`
	AbsenceCode *string  `json:"absence_code,omitempty"`
}

// StudentRow is one journal row: the student, their live presence flag and
// their cells keyed by lesson id. Lessons without a record have no cell.
type StudentRow struct {
	StudentID   string           `json:"student_id"`
	StudentName string           `json:"student_name"`
	PresentNow  bool             `json:"present_now"`
	Cells       map[string]*Cell `json:"cells"`
}

// Matrix is the assembled journal for one (group, subject, week): day headers,
// student rows and the per-category max-point totals of the visible lessons.
type Matrix struct {
	WeekStart         string         `json:"week_start"`
	WeekEnd           string         `json:"week_end"`
	Days              []*DayHeader   `json:"days"`
	Students          []*StudentRow  `json:"students"`
	CategoryMaxPoints map[string]int `json:"category_max_points"`
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// BuildMatrix composes the journal grid from its sparse inputs. It is a pure
// projection: lessons are expected ordered by date and start time, access logs
// by student and timestamp. A student is "present now" iff their last access
// event today is an entry.
func BuildMatrix(students []*models.User, lessons []*models.Lesson,
	records []*models.PerformanceRecord, logs []*models.AccessLog,
	slots []*models.TimeSlot, now time.Time) *Matrix {

	m := &Matrix{CategoryMaxPoints: make(map[string]int)}

	var day *DayHeader
	for _, l := range lessons {
		date := l.Date.Format("2006-01-02")
		if day == nil || day.Date != date {
			day = &DayHeader{Date: date}
			m.Days = append(m.Days, day)
		}
		day.Lessons = append(day.Lessons, &LessonHeader{
			LessonID:     l.ID,
			Period:       models.PeriodForStart(slots, l.StartTime),
			StartTime:    l.StartTime,
			Topic:        l.Topic,
			CategoryName: l.CategoryName,
			MaxPoints:    l.MaxPoints,
		})
		category := l.CategoryName
		if category == "" {
			category = models.DefaultCategoryName
		}
		m.CategoryMaxPoints[category] += l.MaxPoints
	}

	cells := make(map[string]map[string]*Cell)
	for _, rec := range records {
		if cells[rec.StudentID] == nil {
			cells[rec.StudentID] = make(map[string]*Cell)
		}
		cells[rec.StudentID][rec.LessonID] = &Cell{
			Display:     DisplayValue(rec),
			Comment:     rec.Comment,
			Points:      rec.EarnedPoints,
			AbsenceCode: rec.AbsenceCode,
		}
	}

	lastAction := make(map[string]models.AccessAction)
	for _, entry := range logs {
		if sameDate(entry.Timestamp, now) {
			lastAction[entry.StudentID] = entry.Action
		}
	}

	for _, student := range students {
		row := &StudentRow{
			StudentID:   student.ID,
			StudentName: student.FullName,
			PresentNow:  lastAction[student.ID] == models.AccessEnter,
			Cells:       cells[student.ID],
		}
		if row.Cells == nil {
			row.Cells = make(map[string]*Cell)
		}
		m.Students = append(m.Students, row)
	}

	return m
}
