package students

import (
	"github.com/SerhiiHodis/EduTrack/app/models"
	"github.com/SerhiiHodis/EduTrack/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupStudentsRoutes(app *fiber.App) {
	api := app.Group("/api/students", auth.AuthMiddleware)

	api.Get("/", GetStudentsAPI)
	api.Get("/:id", GetStudentAPI)

	admin := api.Group("/", auth.RequireRole(models.RoleAdmin))
	admin.Post("/", CreateStudentAPI)
	admin.Delete("/:id", DeactivateStudentAPI)
}
