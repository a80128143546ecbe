package groups

import (
	"github.com/SerhiiHodis/EduTrack/app/models"
	"github.com/SerhiiHodis/EduTrack/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupGroupsRoutes(app *fiber.App) {
	api := app.Group("/api/groups", auth.AuthMiddleware)

	api.Get("/", GetGroupsAPI)
	api.Get("/:id", GetGroupAPI)

	admin := api.Group("/", auth.RequireRole(models.RoleAdmin))
	admin.Post("/", CreateGroupAPI)
	admin.Delete("/:id", DeleteGroupAPI)
}
