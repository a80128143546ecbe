package groups

import (
	"database/sql"

	"github.com/SerhiiHodis/EduTrack/app/config"
	"github.com/SerhiiHodis/EduTrack/app/database"

	"github.com/gofiber/fiber/v2"
)

func GetGroupsAPI(c *fiber.Ctx) error {
	groups, err := database.ListGroups(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch groups"})
	}
	return c.JSON(fiber.Map{"groups": groups, "count": len(groups)})
}

func GetGroupAPI(c *fiber.Ctx) error {
	group, err := database.GetGroupByID(config.GetDB(), c.Params("id"))
	if err == sql.ErrNoRows {
		return c.Status(404).JSON(fiber.Map{"error": "Group not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch group"})
	}

	students, err := database.GetStudentsByGroup(config.GetDB(), group.ID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch students"})
	}

	return c.JSON(fiber.Map{"group": group, "students": students})
}

func CreateGroupAPI(c *fiber.Ctx) error {
	type CreateGroupRequest struct {
		Name string `json:"name"`
	}

	var req CreateGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if req.Name == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Group name is required"})
	}

	group, err := database.CreateGroup(config.GetDB(), req.Name)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return c.Status(409).JSON(fiber.Map{"error": "A group with this name already exists"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create group"})
	}

	return c.Status(201).JSON(fiber.Map{"success": true, "group": group})
}

func DeleteGroupAPI(c *fiber.Ctx) error {
	if err := database.DeleteGroup(config.GetDB(), c.Params("id")); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete group"})
	}
	return c.JSON(fiber.Map{"success": true})
}
