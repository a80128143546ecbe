package journal

import (
	"github.com/SerhiiHodis/EduTrack/app/models"
	"github.com/SerhiiHodis/EduTrack/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupJournalRoutes(app *fiber.App) {
	api := app.Group("/api/journal", auth.AuthMiddleware)

	api.Get("/", JournalAPI)

	staff := api.Group("/", auth.RequireRole(models.RoleAdmin, models.RoleTeacher))
	staff.Post("/grade", RecordGradeAPI)
	staff.Post("/presence/scan", PresenceScanAPI)
}
