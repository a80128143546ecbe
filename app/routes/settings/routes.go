package settings

import (
	"github.com/SerhiiHodis/EduTrack/app/models"
	"github.com/SerhiiHodis/EduTrack/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupSettingsRoutes(app *fiber.App) {
	api := app.Group("/api/settings", auth.AuthMiddleware)

	api.Get("/time-slots", GetTimeSlotsAPI)
	api.Get("/absence-reasons", GetAbsenceReasonsAPI)
	api.Get("/scales", GetScalesAPI)
	api.Get("/scales/:id", GetScaleAPI)

	admin := api.Group("/", auth.RequireRole(models.RoleAdmin))
	admin.Post("/time-slots", SaveTimeSlotAPI)
	admin.Post("/absence-reasons", CreateAbsenceReasonAPI)
	admin.Post("/scales", CreateScaleAPI)
}
