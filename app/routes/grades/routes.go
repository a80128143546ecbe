package grades

import (
	"github.com/SerhiiHodis/EduTrack/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupGradesRoutes(app *fiber.App) {
	api := app.Group("/api/grades", auth.AuthMiddleware)

	api.Get("/summary", SummaryAPI)
	api.Get("/absences", AbsencesAPI)
}
