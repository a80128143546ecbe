package assignments

import (
	"database/sql"
	"fmt"

	"github.com/SerhiiHodis/EduTrack/app/config"
	"github.com/SerhiiHodis/EduTrack/app/database"
	"github.com/SerhiiHodis/EduTrack/app/models"
	"github.com/SerhiiHodis/EduTrack/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func GetAssignmentsAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	user := auth.CurrentUser(c)

	// Teachers see their own assignments only; the handler scopes, the engine
	// never inspects roles.
	var list []*models.TeachingAssignment
	var err error
	if user.IsTeacher() {
		list, err = database.ListAssignmentsByTeacher(db, user.ID)
	} else {
		list, err = database.ListAssignments(db)
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch assignments"})
	}

	return c.JSON(fiber.Map{"assignments": list, "count": len(list)})
}

func CreateAssignmentAPI(c *fiber.Ctx) error {
	type CreateAssignmentRequest struct {
		SubjectID string `json:"subject_id"`
		TeacherID string `json:"teacher_id"`
		GroupID   string `json:"group_id"`
	}

	var req CreateAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if req.SubjectID == "" || req.TeacherID == "" || req.GroupID == "" {
		return models.NewValidationError("", "subject_id, teacher_id and group_id are required")
	}

	assignment, err := database.GetOrCreateAssignment(config.GetDB(), req.SubjectID, req.TeacherID, req.GroupID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create assignment"})
	}

	return c.Status(201).JSON(fiber.Map{"success": true, "assignment": assignment})
}

func DeleteAssignmentAPI(c *fiber.Ctx) error {
	if err := database.DeleteAssignment(config.GetDB(), c.Params("id")); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete assignment"})
	}
	return c.JSON(fiber.Map{"success": true})
}

func GetCategoriesAPI(c *fiber.Ctx) error {
	categories, err := database.ListCategories(config.GetDB(), c.Params("id"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch categories"})
	}
	return c.JSON(fiber.Map{"categories": categories, "count": len(categories)})
}

// checkWeightBudget rejects a category write that would push the assignment's
// total weight above 100 percent.
func checkWeightBudget(q database.DBTX, assignmentID, excludeCategoryID string, weight float64) error {
	if weight < 0 || weight > 100 {
		return models.NewValidationError("weight_percent", "must be between 0 and 100")
	}
	current, err := database.SumCategoryWeight(q, assignmentID, excludeCategoryID)
	if err != nil {
		return err
	}
	if current+weight > 100 {
		return models.NewValidationError("weight_percent",
			fmt.Sprintf("total weight would reach %.1f%%, the limit is 100%%", current+weight))
	}
	return nil
}

func CreateCategoryAPI(c *fiber.Ctx) error {
	type CreateCategoryRequest struct {
		Name          string  `json:"name"`
		WeightPercent float64 `json:"weight_percent"`
	}

	var req CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if req.Name == "" {
		return models.NewValidationError("name", "required")
	}

	assignmentID := c.Params("id")

	tx, err := config.GetDB().Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := database.GetAssignmentByID(tx, assignmentID); err != nil {
		if err == sql.ErrNoRows {
			return &models.NotFoundError{Entity: "assignment", Key: assignmentID}
		}
		return err
	}
	if err := checkWeightBudget(tx, assignmentID, "", req.WeightPercent); err != nil {
		return err
	}

	category, err := database.CreateCategory(tx, assignmentID, req.Name, req.WeightPercent)
	if err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	return c.Status(201).JSON(fiber.Map{"success": true, "category": category})
}

func UpdateCategoryAPI(c *fiber.Ctx) error {
	type UpdateCategoryRequest struct {
		Name          string  `json:"name"`
		WeightPercent float64 `json:"weight_percent"`
	}

	var req UpdateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if req.Name == "" {
		return models.NewValidationError("name", "required")
	}

	assignmentID := c.Params("id")
	categoryID := c.Params("categoryID")

	tx, err := config.GetDB().Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := checkWeightBudget(tx, assignmentID, categoryID, req.WeightPercent); err != nil {
		return err
	}
	if err := database.UpdateCategory(tx, categoryID, req.Name, req.WeightPercent); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true})
}

func DeleteCategoryAPI(c *fiber.Ctx) error {
	if err := database.DeleteCategory(config.GetDB(), c.Params("categoryID")); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete category"})
	}
	return c.JSON(fiber.Map{"success": true})
}
