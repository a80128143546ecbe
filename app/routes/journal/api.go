package journal

import (
	"database/sql"
	"time"

	"github.com/SerhiiHodis/EduTrack/app/config"
	"github.com/SerhiiHodis/EduTrack/app/database"
	"github.com/SerhiiHodis/EduTrack/app/models"
	"github.com/SerhiiHodis/EduTrack/app/routes/schedule"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

const dateLayout = "2006-01-02"

// weekStartOf returns the Monday of the week containing d.
func weekStartOf(d time.Time) time.Time {
	return d.AddDate(0, 0, -(schedule.ISOWeekday(d) - 1))
}

// JournalAPI assembles the journal matrix for one (group, subject, week).
// week_start defaults to the Monday of the current week; any date inside the
// wanted week is accepted and normalized.
func JournalAPI(c *fiber.Ctx) error {
	groupID := c.Query("group_id")
	subjectID := c.Query("subject_id")
	if groupID == "" || subjectID == "" {
		return models.NewValidationError("group_id", "group_id and subject_id are required")
	}

	now := time.Now()
	weekStart := weekStartOf(now)
	if s := c.Query("week_start"); s != "" {
		d, err := time.Parse(dateLayout, s)
		if err != nil {
			return models.NewValidationError("week_start", "want YYYY-MM-DD")
		}
		weekStart = weekStartOf(d)
	}
	weekStart = weekStart.AddDate(0, 0, 7*c.QueryInt("week_offset"))
	weekEnd := weekStart.AddDate(0, 0, 6)

	db := config.GetDB()

	students, err := database.GetStudentsByGroup(db, groupID)
	if err != nil {
		return err
	}
	lessons, err := database.ListLessonsForWeek(db, groupID, subjectID, weekStart, weekEnd)
	if err != nil {
		return err
	}

	lessonIDs := make([]string, len(lessons))
	for i, l := range lessons {
		lessonIDs[i] = l.ID
	}
	records, err := database.ListPerformanceForLessons(db, lessonIDs)
	if err != nil {
		return err
	}

	studentIDs := make([]string, len(students))
	for i, s := range students {
		studentIDs[i] = s.ID
	}
	logs, err := database.ListAccessLogsForDay(db, studentIDs, now)
	if err != nil {
		return err
	}

	slots, err := database.ListTimeSlots(db)
	if err != nil {
		return err
	}

	matrix := BuildMatrix(students, lessons, records, logs, slots, now)
	matrix.WeekStart = weekStart.Format(dateLayout)
	matrix.WeekEnd = weekEnd.Format(dateLayout)
	return c.JSON(matrix)
}

// resolveLesson finds the lesson a grade entry targets, either by id or by a
// (group, date, period) coordinate. A coordinate with no lesson yet is
// materialized on demand from its template.
func resolveLesson(tx database.DBTX, lessonID, groupID, dateStr string, period int) (*models.Lesson, error) {
	if lessonID != "" {
		lesson, err := database.GetLessonByID(tx, lessonID)
		if err == sql.ErrNoRows {
			return nil, &models.NotFoundError{Entity: "lesson", Key: lessonID}
		}
		return lesson, err
	}

	if groupID == "" || dateStr == "" || period < 1 {
		return nil, models.NewValidationError("lesson_id", "lesson_id or (group_id, date, period) required")
	}
	date, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return nil, models.NewValidationError("date", "want YYYY-MM-DD")
	}

	tmpl, err := database.GetTemplateAt(tx, groupID, schedule.ISOWeekday(date), period)
	if err == sql.ErrNoRows {
		return nil, &models.NotFoundError{Entity: "schedule slot", Key: dateStr}
	}
	if err != nil {
		return nil, err
	}

	lesson, _, err := schedule.EnsureLesson(tx, tmpl, date)
	return lesson, err
}

// writeGrade applies a parsed value to one (lesson, student) record. A score
// clears any stored absence and vice versa; both columns always come from the
// same write, so a cell can never hold both.
func writeGrade(q database.DBTX, lessonID, studentID string, value *GradeValue, comment *string) error {
	switch {
	case value.Clear:
		return database.DeletePerformance(q, lessonID, studentID)
	case value.Absence != nil:
		return database.UpsertPerformance(q, lessonID, studentID, nil, &value.Absence.ID, comment)
	default:
		return database.UpsertPerformance(q, lessonID, studentID, value.Points, nil, comment)
	}
}

// RecordGradeAPI records one journal cell: a numeric score, an absence code,
// or a clear. The write is transactional with the structural checks.
func RecordGradeAPI(c *fiber.Ctx) error {
	type GradeRequest struct {
		LessonID  string  `json:"lesson_id"`
		GroupID   string  `json:"group_id"`
		Date      string  `json:"date"`
		Period    int     `json:"period"`
		StudentID string  `json:"student_id" validate:"required"`
		Value     string  `json:"value"`
		Comment   *string `json:"comment"`
	}

	var req GradeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(&req); err != nil {
		return models.NewValidationError("", err.Error())
	}

	tx, err := config.GetDB().Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	lesson, err := resolveLesson(tx, req.LessonID, req.GroupID, req.Date, req.Period)
	if err != nil {
		return err
	}

	student, err := database.GetUserByID(tx, req.StudentID)
	if err == sql.ErrNoRows {
		return &models.NotFoundError{Entity: "student", Key: req.StudentID}
	}
	if err != nil {
		return err
	}
	if student.GroupID == nil || *student.GroupID != lesson.GroupID {
		return &models.ConsistencyError{Message: "student does not belong to the lesson's group"}
	}

	reasons, err := database.ListAbsenceReasons(tx)
	if err != nil {
		return err
	}
	value, err := ParseGradeValue(req.Value, reasons, lesson.MaxPoints)
	if err != nil {
		return err
	}

	if err := writeGrade(tx, lesson.ID, student.ID, value, req.Comment); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	rec, err := database.GetPerformance(config.GetDB(), lesson.ID, student.ID)
	if err != nil && err != sql.ErrNoRows {
		return err
	}
	return c.JSON(fiber.Map{
		"success":   true,
		"lesson_id": lesson.ID,
		"display":   DisplayValue(rec),
	})
}

// PresenceScanAPI records one turnstile swipe. The direction alternates: a
// student whose last event today is an entry is now leaving, and vice versa.
func PresenceScanAPI(c *fiber.Ctx) error {
	type ScanRequest struct {
		StudentID string `json:"student_id" validate:"required"`
	}

	var req ScanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(&req); err != nil {
		return models.NewValidationError("", err.Error())
	}

	db := config.GetDB()

	student, err := database.GetUserByID(db, req.StudentID)
	if err == sql.ErrNoRows {
		return &models.NotFoundError{Entity: "student", Key: req.StudentID}
	}
	if err != nil {
		return err
	}

	logs, err := database.ListAccessLogsForDay(db, []string{student.ID}, time.Now())
	if err != nil {
		return err
	}

	action := models.AccessEnter
	if n := len(logs); n > 0 && logs[n-1].Action == models.AccessEnter {
		action = models.AccessExit
	}

	if err := database.InsertAccessLog(db, student.ID, action); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "student_id": student.ID, "action": action})
}
