package grades

import (
	"database/sql"
	"time"

	"github.com/SerhiiHodis/EduTrack/app/config"
	"github.com/SerhiiHodis/EduTrack/app/database"
	"github.com/SerhiiHodis/EduTrack/app/models"
	"github.com/SerhiiHodis/EduTrack/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

const dateLayout = "2006-01-02"

func parseDateQuery(c *fiber.Ctx, name string) (*time.Time, error) {
	s := c.Query(name)
	if s == "" {
		return nil, nil
	}
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, models.NewValidationError(name, "want YYYY-MM-DD")
	}
	return &d, nil
}

// scopedStudentID resolves which student a grades query targets. Students are
// always scoped to themselves regardless of the parameter.
func scopedStudentID(c *fiber.Ctx) (string, error) {
	user := auth.CurrentUser(c)
	if user.Role == models.RoleStudent {
		return user.ID, nil
	}
	studentID := c.Query("student_id")
	if studentID == "" {
		return "", models.NewValidationError("student_id", "required")
	}
	return studentID, nil
}

// SummaryAPI returns one student's per-subject summary: total, mean, count and
// the raw scores, plus the mean converted through a grading scale.
func SummaryAPI(c *fiber.Ctx) error {
	studentID, err := scopedStudentID(c)
	if err != nil {
		return err
	}
	subjectID := c.Query("subject_id")
	if subjectID == "" {
		return models.NewValidationError("subject_id", "required")
	}

	from, err := parseDateQuery(c, "from")
	if err != nil {
		return err
	}
	to, err := parseDateQuery(c, "to")
	if err != nil {
		return err
	}

	db := config.GetDB()

	scores, err := database.ListScoredPoints(db, studentID, subjectID, from, to)
	if err != nil {
		return err
	}
	summary := Summarize(scores)

	label := UnscoredLabel
	scale, err := pickScale(db, c.Query("scale_id"))
	if err != nil {
		return err
	}
	if scale != nil && summary.LessonsCount > 0 {
		label = ConvertPoints(summary.AvgPoints, scale)
	}

	return c.JSON(fiber.Map{
		"student_id": studentID,
		"subject_id": subjectID,
		"summary":    summary,
		"grade":      label,
	})
}

// pickScale loads the requested grading scale, or the first configured one
// when no id is given. Returns nil when the system has no scales at all.
func pickScale(q database.DBTX, scaleID string) (*models.GradingScale, error) {
	if scaleID != "" {
		scale, err := database.GetScaleWithThresholds(q, scaleID)
		if err == sql.ErrNoRows {
			return nil, &models.NotFoundError{Entity: "grading scale", Key: scaleID}
		}
		return scale, err
	}

	scales, err := database.ListScales(q)
	if err != nil || len(scales) == 0 {
		return nil, err
	}
	return database.GetScaleWithThresholds(q, scales[0].ID)
}

// AbsencesAPI returns one student's absence statistics, broken down by reason
// code and by whether the reason is respectful.
func AbsencesAPI(c *fiber.Ctx) error {
	studentID, err := scopedStudentID(c)
	if err != nil {
		return err
	}

	from, err := parseDateQuery(c, "from")
	if err != nil {
		return err
	}
	to, err := parseDateQuery(c, "to")
	if err != nil {
		return err
	}

	stats, err := database.GetAbsenceStats(config.GetDB(), studentID, c.Query("subject_id"), from, to)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"student_id": studentID, "absences": stats})
}
