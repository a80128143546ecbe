package assignments

import (
	"github.com/SerhiiHodis/EduTrack/app/models"
	"github.com/SerhiiHodis/EduTrack/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAssignmentsRoutes(app *fiber.App) {
	api := app.Group("/api/assignments", auth.AuthMiddleware)

	api.Get("/", GetAssignmentsAPI)
	api.Get("/:id/categories", GetCategoriesAPI)

	staff := api.Group("/", auth.RequireRole(models.RoleAdmin, models.RoleTeacher))
	staff.Post("/:id/categories", CreateCategoryAPI)
	staff.Put("/:id/categories/:categoryID", UpdateCategoryAPI)
	staff.Delete("/:id/categories/:categoryID", DeleteCategoryAPI)

	admin := api.Group("/", auth.RequireRole(models.RoleAdmin))
	admin.Post("/", CreateAssignmentAPI)
	admin.Delete("/:id", DeleteAssignmentAPI)
}
