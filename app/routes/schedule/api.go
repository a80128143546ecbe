package schedule

import (
	"database/sql"
	"time"

	"github.com/SerhiiHodis/EduTrack/app/config"
	"github.com/SerhiiHodis/EduTrack/app/database"
	"github.com/SerhiiHodis/EduTrack/app/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

const dateLayout = "2006-01-02"

type slotEntry struct {
	DayOfWeek       int     `json:"day_of_week" validate:"required,min=1,max=7"`
	Period          int     `json:"period" validate:"required,min=1"`
	SubjectID       string  `json:"subject_id"`
	TeacherID       string  `json:"teacher_id"`
	ClassroomID     *string `json:"classroom_id"`
	StartTime       string  `json:"start_time"`
	DurationMinutes int     `json:"duration_minutes"`
}

// buildCandidate resolves the teaching assignment and fills bell-table defaults
// for a slot entry, returning a template ready for conflict validation.
func buildCandidate(tx database.DBTX, groupID string, entry slotEntry) (*models.ScheduleTemplate, error) {
	assignment, err := database.GetOrCreateAssignment(tx, entry.SubjectID, entry.TeacherID, groupID)
	if err != nil {
		return nil, err
	}

	maxPeriod, err := database.MaxPeriod(tx)
	if err != nil {
		return nil, err
	}
	if err := checkPeriodBound(entry.Period, maxPeriod); err != nil {
		return nil, err
	}

	startTime := entry.StartTime
	duration := entry.DurationMinutes
	if startTime == "" || duration <= 0 {
		slot, err := database.GetTimeSlotByPeriod(tx, entry.Period)
		if err == sql.ErrNoRows {
			return nil, models.NewValidationError("period", "no bell-table entry for this period; provide start_time and duration_minutes")
		}
		if err != nil {
			return nil, err
		}
		if startTime == "" {
			startTime = slot.StartTime
		}
		if duration <= 0 {
			duration = slot.DurationMinutes()
		}
	}
	if duration <= 0 {
		duration = models.DefaultLessonDuration
	}

	return &models.ScheduleTemplate{
		AssignmentID:    assignment.ID,
		GroupID:         groupID,
		DayOfWeek:       entry.DayOfWeek,
		Period:          entry.Period,
		StartTime:       startTime,
		DurationMinutes: duration,
		ClassroomID:     entry.ClassroomID,
		SubjectID:       assignment.SubjectID,
		SubjectName:     assignment.SubjectName,
		TeacherID:       assignment.TeacherID,
		TeacherName:     assignment.TeacherName,
	}, nil
}

// SaveSlotAPI creates, replaces or clears the template at one
// (group, day, period) coordinate. An entry without subject and teacher clears
// the slot. Validation and write share one transaction.
func SaveSlotAPI(c *fiber.Ctx) error {
	type SlotRequest struct {
		GroupID string `json:"group_id" validate:"required"`
		slotEntry
		ExcludeTemplateID string `json:"exclude_template_id"`
	}

	var req SlotRequest
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

	if req.SubjectID == "" && req.TeacherID == "" {
		if err := database.DeleteTemplateAt(tx, req.GroupID, req.DayOfWeek, req.Period); err != nil {
			return err
		}
		if err := tx.Commit(); err != nil {
			return err
		}
		return c.JSON(fiber.Map{"success": true, "cleared": true})
	}

	candidate, err := buildCandidate(tx, req.GroupID, req.slotEntry)
	if err != nil {
		return err
	}

	// The current occupant of this coordinate is about to be replaced and must
	// not conflict with its successor.
	occupant, err := database.GetTemplateAt(tx, req.GroupID, req.DayOfWeek, req.Period)
	if err != nil && err != sql.ErrNoRows {
		return err
	}
	if occupant != nil {
		candidate.ID = occupant.ID
	}

	if err := ValidateSlot(tx, candidate, req.ExcludeTemplateID); err != nil {
		return err
	}

	id, err := database.UpsertTemplate(tx, candidate)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return &models.ConflictError{Resource: "slot", Name: candidate.SubjectName, Day: candidate.DayOfWeek}
		}
		if database.IsExclusionViolation(err) {
			return &models.ConflictError{
				Resource: "classroom",
				Name:     candidate.SubjectName,
				Day:      candidate.DayOfWeek,
				Range:    candidate.StartTime + "-" + candidate.EndTime(),
			}
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "template_id": id})
}

// SaveWeekAPI replaces a group's entire weekly schedule in one transaction.
// Existing templates are dropped and the submitted slots inserted one by one,
// each validated against the state accumulated so far; any conflict rolls the
// whole week back.
func SaveWeekAPI(c *fiber.Ctx) error {
	type WeekRequest struct {
		GroupID string      `json:"group_id" validate:"required"`
		Slots   []slotEntry `json:"slots" validate:"dive"`
	}

	var req WeekRequest
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

	if err := database.DeleteTemplatesByGroup(tx, req.GroupID); err != nil {
		return err
	}

	saved := 0
	for _, entry := range req.Slots {
		if entry.SubjectID == "" && entry.TeacherID == "" {
			continue
		}
		candidate, err := buildCandidate(tx, req.GroupID, entry)
		if err != nil {
			return err
		}
		if err := ValidateSlot(tx, candidate, ""); err != nil {
			return err
		}
		if _, err := database.UpsertTemplate(tx, candidate); err != nil {
			if database.IsExclusionViolation(err) {
				return &models.ConflictError{
					Resource: "classroom",
					Name:     candidate.SubjectName,
					Day:      candidate.DayOfWeek,
					Range:    candidate.StartTime + "-" + candidate.EndTime(),
				}
			}
			return err
		}
		saved++
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "slots_saved": saved})
}

// MaterializeAPI expands templates into dated lessons over a date range, for
// one group or for all. The whole range is one transaction; a failure on any
// date rolls back every lesson created by this call.
func MaterializeAPI(c *fiber.Ctx) error {
	type MaterializeRequest struct {
		From    string `json:"from" validate:"required"`
		To      string `json:"to" validate:"required"`
		GroupID string `json:"group_id"`
	}

	var req MaterializeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(&req); err != nil {
		return models.NewValidationError("", err.Error())
	}

	from, err := time.Parse(dateLayout, req.From)
	if err != nil {
		return models.NewValidationError("from", "want YYYY-MM-DD")
	}
	to, err := time.Parse(dateLayout, req.To)
	if err != nil {
		return models.NewValidationError("to", "want YYYY-MM-DD")
	}
	if to.Before(from) {
		return models.NewValidationError("to", "must not be before from")
	}

	tx, err := config.GetDB().Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var templates []*models.ScheduleTemplate
	if req.GroupID != "" {
		templates, err = database.ListTemplatesByGroup(tx, req.GroupID)
	} else {
		templates, err = database.ListAllTemplates(tx)
	}
	if err != nil {
		return err
	}

	created, err := MaterializeRange(tx, templates, from, to)
	if err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "lessons_created": created})
}

// UpdateLessonAPI edits one materialized lesson's details: topic, maximum
// points and evaluation category. Schedule identity (group, date, time) stays
// with the template and is not editable here.
func UpdateLessonAPI(c *fiber.Ctx) error {
	type LessonRequest struct {
		Topic      string  `json:"topic"`
		MaxPoints  int     `json:"max_points" validate:"required,min=1,max=100"`
		CategoryID *string `json:"category_id"`
	}

	var req LessonRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(&req); err != nil {
		return models.NewValidationError("", err.Error())
	}

	lessonID := c.Params("lessonID")
	db := config.GetDB()

	lesson, err := database.GetLessonByID(db, lessonID)
	if err == sql.ErrNoRows {
		return &models.NotFoundError{Entity: "lesson", Key: lessonID}
	}
	if err != nil {
		return err
	}

	categoryID := req.CategoryID
	if categoryID == nil {
		categoryID = lesson.EvaluationCategoryID
	}
	if err := database.UpdateLessonDetails(db, lesson.ID, req.Topic, req.MaxPoints, categoryID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true})
}

// GroupScheduleAPI returns a group's weekly templates plus the bell table the
// client needs to lay them out.
func GroupScheduleAPI(c *fiber.Ctx) error {
	groupID := c.Params("groupID")
	db := config.GetDB()

	templates, err := database.ListTemplatesByGroup(db, groupID)
	if err != nil {
		return err
	}
	slots, err := database.ListTimeSlots(db)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"templates": templates, "time_slots": slots})
}

// TimelineAPI returns a group's materialized lessons in a date range,
// defaulting to the next seven days.
func TimelineAPI(c *fiber.Ctx) error {
	groupID := c.Query("group_id")
	if groupID == "" {
		return models.NewValidationError("group_id", "required")
	}

	from := time.Now().Truncate(24 * time.Hour)
	to := from.AddDate(0, 0, 7)
	if s := c.Query("from"); s != "" {
		var err error
		if from, err = time.Parse(dateLayout, s); err != nil {
			return models.NewValidationError("from", "want YYYY-MM-DD")
		}
	}
	if s := c.Query("to"); s != "" {
		var err error
		if to, err = time.Parse(dateLayout, s); err != nil {
			return models.NewValidationError("to", "want YYYY-MM-DD")
		}
	}

	lessons, err := database.ListLessonsByGroupRange(config.GetDB(), groupID, from, to)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"lessons": lessons})
}
