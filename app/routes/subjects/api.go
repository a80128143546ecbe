package subjects

import (
	"database/sql"

	"github.com/SerhiiHodis/EduTrack/app/config"
	"github.com/SerhiiHodis/EduTrack/app/database"

	"github.com/gofiber/fiber/v2"
)

func GetSubjectsAPI(c *fiber.Ctx) error {
	subjects, err := database.ListSubjects(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch subjects"})
	}
	return c.JSON(fiber.Map{"subjects": subjects, "count": len(subjects)})
}

func GetSubjectAPI(c *fiber.Ctx) error {
	subject, err := database.GetSubjectByID(config.GetDB(), c.Params("id"))
	if err == sql.ErrNoRows {
		return c.Status(404).JSON(fiber.Map{"error": "Subject not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch subject"})
	}
	return c.JSON(fiber.Map{"subject": subject})
}

func CreateSubjectAPI(c *fiber.Ctx) error {
	type CreateSubjectRequest struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}

	var req CreateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if req.Name == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Subject name is required"})
	}

	subject, err := database.CreateSubject(config.GetDB(), req.Name, req.Description)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return c.Status(409).JSON(fiber.Map{"error": "A subject with this name already exists"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create subject"})
	}

	return c.Status(201).JSON(fiber.Map{"success": true, "subject": subject})
}

func DeleteSubjectAPI(c *fiber.Ctx) error {
	if err := database.DeleteSubject(config.GetDB(), c.Params("id")); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete subject"})
	}
	return c.JSON(fiber.Map{"success": true})
}
