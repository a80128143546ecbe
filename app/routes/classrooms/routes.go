package classrooms

import (
	"github.com/SerhiiHodis/EduTrack/app/models"
	"github.com/SerhiiHodis/EduTrack/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupClassroomsRoutes(app *fiber.App) {
	api := app.Group("/api/classrooms", auth.AuthMiddleware)

	api.Get("/", GetClassroomsAPI)

	admin := api.Group("/", auth.RequireRole(models.RoleAdmin))
	admin.Post("/", CreateClassroomAPI)
	admin.Delete("/:id", DeleteClassroomAPI)
}
