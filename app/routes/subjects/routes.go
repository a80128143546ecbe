package subjects

import (
	"github.com/SerhiiHodis/EduTrack/app/models"
	"github.com/SerhiiHodis/EduTrack/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupSubjectsRoutes(app *fiber.App) {
	api := app.Group("/api/subjects", auth.AuthMiddleware)

	api.Get("/", GetSubjectsAPI)
	api.Get("/:id", GetSubjectAPI)

	admin := api.Group("/", auth.RequireRole(models.RoleAdmin))
	admin.Post("/", CreateSubjectAPI)
	admin.Delete("/:id", DeleteSubjectAPI)
}
