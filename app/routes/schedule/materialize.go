package schedule

import (
	"database/sql"
	"time"

	"github.com/SerhiiHodis/EduTrack/app/database"
	"github.com/SerhiiHodis/EduTrack/app/models"
)

// ISOWeekday returns the ISO weekday number (1 = Monday .. 7 = Sunday).
func ISOWeekday(d time.Time) int {
	wd := int(d.Weekday())
	if wd == 0 {
		return models.Sunday
	}
	return wd
}

// resolveCategory picks the evaluation category a materialized lesson will use:
// the assignment's first category, or a fresh zero-weight default when the
// assignment has none. Every lesson ends up with a gradable context.
func resolveCategory(q database.DBTX, assignmentID string) (*models.EvaluationCategory, error) {
	c, err := database.FirstCategoryForAssignment(q, assignmentID)
	if err == sql.ErrNoRows {
		return database.CreateCategory(q, assignmentID, models.DefaultCategoryName, 0)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// NewLessonFromTemplate builds the lesson one template produces on one date.
// The caller supplies the resolved evaluation category.
func NewLessonFromTemplate(tmpl *models.ScheduleTemplate, date time.Time, categoryID string) *models.Lesson {
	return &models.Lesson{
		GroupID:              tmpl.GroupID,
		SubjectID:            tmpl.SubjectID,
		TeacherID:            tmpl.TeacherID,
		Date:                 date,
		StartTime:            tmpl.StartTime,
		EndTime:              tmpl.EndTime(),
		ClassroomID:          tmpl.ClassroomID,
		MaxPoints:            models.MaxPoints,
		EvaluationCategoryID: &categoryID,
		TemplateID:           &tmpl.ID,
	}
}

// NeedsRealign reports whether an existing lesson diverged from its template.
// Only subject and teacher trigger a repair; topic, points and performance
// records belong to the lesson, not the template.
func NeedsRealign(existing *models.Lesson, tmpl *models.ScheduleTemplate) bool {
	return existing.SubjectID != tmpl.SubjectID || existing.TeacherID != tmpl.TeacherID
}

// EnsureLesson upserts the lesson for one template on one date, keyed by
// (group, date, start_time). When a lesson already exists there but its subject
// or teacher diverged from the template, the lesson is realigned to the
// template; performance records stay untouched. Returns the lesson and whether
// a new row was created.
func EnsureLesson(q database.DBTX, tmpl *models.ScheduleTemplate, date time.Time) (*models.Lesson, bool, error) {
	existing, err := database.GetLessonAt(q, tmpl.GroupID, date, tmpl.StartTime)
	if err != nil && err != sql.ErrNoRows {
		return nil, false, err
	}

	if err == sql.ErrNoRows {
		category, err := resolveCategory(q, tmpl.AssignmentID)
		if err != nil {
			return nil, false, err
		}
		lesson := NewLessonFromTemplate(tmpl, date, category.ID)
		id, err := database.CreateLesson(q, lesson)
		if err != nil {
			if database.IsUniqueViolation(err) {
				// Another writer materialized the same coordinate first.
				existing, err := database.GetLessonAt(q, tmpl.GroupID, date, tmpl.StartTime)
				return existing, false, err
			}
			return nil, false, err
		}
		lesson.ID = id
		return lesson, true, nil
	}

	if NeedsRealign(existing, tmpl) {
		category, err := resolveCategory(q, tmpl.AssignmentID)
		if err != nil {
			return nil, false, err
		}
		if err := database.RealignLesson(q, existing.ID, tmpl.SubjectID, tmpl.TeacherID, &category.ID, &tmpl.ID); err != nil {
			return nil, false, err
		}
		existing.SubjectID = tmpl.SubjectID
		existing.TeacherID = tmpl.TeacherID
		existing.EvaluationCategoryID = &category.ID
		existing.TemplateID = &tmpl.ID
	}
	return existing, false, nil
}

// MaterializeRange expands templates into dated lessons over [from, to]
// inclusive. Each date is matched against template weekdays; existing lessons
// are never duplicated, so re-running over a materialized range creates
// nothing. Returns the number of lessons created.
func MaterializeRange(q database.DBTX, templates []*models.ScheduleTemplate, from, to time.Time) (int, error) {
	byDay := make(map[int][]*models.ScheduleTemplate)
	for _, t := range templates {
		byDay[t.DayOfWeek] = append(byDay[t.DayOfWeek], t)
	}

	created := 0
	for date := from; !date.After(to); date = date.AddDate(0, 0, 1) {
		for _, tmpl := range byDay[ISOWeekday(date)] {
			_, isNew, err := EnsureLesson(q, tmpl, date)
			if err != nil {
				return created, err
			}
			if isNew {
				created++
			}
		}
	}
	return created, nil
}
