package students

import (
	"database/sql"

	"github.com/SerhiiHodis/EduTrack/app/config"
	"github.com/SerhiiHodis/EduTrack/app/database"
	"github.com/SerhiiHodis/EduTrack/app/models"
	"github.com/SerhiiHodis/EduTrack/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func GetStudentsAPI(c *fiber.Ctx) error {
	groupID := c.Query("group_id")

	var list []*models.User
	var err error
	if groupID != "" {
		list, err = database.GetStudentsByGroup(config.GetDB(), groupID)
	} else {
		list, err = database.ListUsersByRole(config.GetDB(), models.RoleStudent)
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch students"})
	}

	return c.JSON(fiber.Map{"students": list, "count": len(list)})
}

func GetStudentAPI(c *fiber.Ctx) error {
	student, err := database.GetUserByID(config.GetDB(), c.Params("id"))
	if err == sql.ErrNoRows {
		return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch student"})
	}
	return c.JSON(fiber.Map{"student": student})
}

func CreateStudentAPI(c *fiber.Ctx) error {
	type CreateStudentRequest struct {
		Email    string  `json:"email"`
		Password string  `json:"password"`
		FullName string  `json:"full_name"`
		GroupID  *string `json:"group_id"`
	}

	var req CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if req.Email == "" || req.FullName == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Email and full name are required"})
	}
	if len(req.Password) < 8 {
		return c.Status(400).JSON(fiber.Map{"error": "Password must be at least 8 characters"})
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to hash password"})
	}

	student, err := database.CreateUser(config.GetDB(), req.Email, hashed, req.FullName, models.RoleStudent, req.GroupID)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return c.Status(409).JSON(fiber.Map{"error": "A user with this email already exists"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create student"})
	}

	return c.Status(201).JSON(fiber.Map{"success": true, "student": student})
}

func DeactivateStudentAPI(c *fiber.Ctx) error {
	if err := database.DeactivateUser(config.GetDB(), c.Params("id")); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to deactivate student"})
	}
	return c.JSON(fiber.Map{"success": true})
}
