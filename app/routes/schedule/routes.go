package schedule

import (
	"github.com/SerhiiHodis/EduTrack/app/models"
	"github.com/SerhiiHodis/EduTrack/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupScheduleRoutes(app *fiber.App) {
	api := app.Group("/api/schedule", auth.AuthMiddleware)

	api.Get("/group/:groupID", GroupScheduleAPI)
	api.Get("/timeline", TimelineAPI)

	staff := api.Group("/", auth.RequireRole(models.RoleAdmin, models.RoleTeacher))
	staff.Put("/lesson/:lessonID", UpdateLessonAPI)

	admin := api.Group("/", auth.RequireRole(models.RoleAdmin))
	admin.Post("/slot", SaveSlotAPI)
	admin.Post("/week", SaveWeekAPI)
	admin.Post("/materialize", MaterializeAPI)
}
