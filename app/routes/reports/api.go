package reports

import (
	"time"

	"github.com/SerhiiHodis/EduTrack/app/config"
	"github.com/SerhiiHodis/EduTrack/app/database"
	"github.com/SerhiiHodis/EduTrack/app/models"
	"github.com/SerhiiHodis/EduTrack/app/routes/schedule"

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

// RatingAPI returns the Bayesian-smoothed cohort rating, optionally narrowed
// by group, subject and date bounds.
func RatingAPI(c *fiber.Ctx) error {
	from, err := parseDateQuery(c, "from")
	if err != nil {
		return err
	}
	to, err := parseDateQuery(c, "to")
	if err != nil {
		return err
	}

	filters := database.RatingFilters{
		GroupID:   c.Query("group_id"),
		SubjectID: c.Query("subject_id"),
		DateFrom:  from,
		DateTo:    to,
	}

	records, err := database.ListScoredRecords(config.GetDB(), filters)
	if err != nil {
		return err
	}

	rating := ComputeBayesianRating(records)
	return c.JSON(fiber.Map{"rating": rating, "students_ranked": len(rating)})
}

// WeeklyAbsencesAPI reports per-student absence counts for one week. Any date
// inside the wanted week is accepted; it is normalized to Monday.
func WeeklyAbsencesAPI(c *fiber.Ctx) error {
	weekStart := time.Now()
	if s := c.Query("week_start"); s != "" {
		d, err := time.Parse(dateLayout, s)
		if err != nil {
			return models.NewValidationError("week_start", "want YYYY-MM-DD")
		}
		weekStart = d
	}
	weekStart = weekStart.AddDate(0, 0, -(schedule.ISOWeekday(weekStart) - 1))
	weekEnd := weekStart.AddDate(0, 0, 6)

	counts, err := database.ListWeeklyAbsences(config.GetDB(),
		c.Query("group_id"), c.Query("subject_id"), weekStart, weekEnd)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"week_start": weekStart.Format(dateLayout),
		"week_end":   weekEnd.Format(dateLayout),
		"absences":   counts,
	})
}
