package classrooms

import (
	"github.com/SerhiiHodis/EduTrack/app/config"
	"github.com/SerhiiHodis/EduTrack/app/database"

	"github.com/gofiber/fiber/v2"
)

func GetClassroomsAPI(c *fiber.Ctx) error {
	classrooms, err := database.ListClassrooms(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch classrooms"})
	}
	return c.JSON(fiber.Map{"classrooms": classrooms, "count": len(classrooms)})
}

func CreateClassroomAPI(c *fiber.Ctx) error {
	type CreateClassroomRequest struct {
		Name     string `json:"name"`
		Building string `json:"building"`
		Capacity *int   `json:"capacity"`
	}

	var req CreateClassroomRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if req.Name == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Classroom name is required"})
	}

	classroom, err := database.CreateClassroom(config.GetDB(), req.Name, req.Building, req.Capacity)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return c.Status(409).JSON(fiber.Map{"error": "A classroom with this name already exists"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create classroom"})
	}

	return c.Status(201).JSON(fiber.Map{"success": true, "classroom": classroom})
}

func DeleteClassroomAPI(c *fiber.Ctx) error {
	if err := database.DeleteClassroom(config.GetDB(), c.Params("id")); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete classroom"})
	}
	return c.JSON(fiber.Map{"success": true})
}
