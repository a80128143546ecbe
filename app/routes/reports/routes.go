package reports

import (
	"github.com/SerhiiHodis/EduTrack/app/models"
	"github.com/SerhiiHodis/EduTrack/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupReportsRoutes(app *fiber.App) {
	api := app.Group("/api/reports", auth.AuthMiddleware)

	api.Get("/rating", RatingAPI)

	staff := api.Group("/", auth.RequireRole(models.RoleAdmin, models.RoleTeacher))
	staff.Get("/absences/weekly", WeeklyAbsencesAPI)
}
