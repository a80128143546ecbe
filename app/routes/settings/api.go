package settings

import (
	"database/sql"

	"github.com/SerhiiHodis/EduTrack/app/config"
	"github.com/SerhiiHodis/EduTrack/app/database"
	"github.com/SerhiiHodis/EduTrack/app/models"

	"github.com/gofiber/fiber/v2"
)

func GetTimeSlotsAPI(c *fiber.Ctx) error {
	slots, err := database.ListTimeSlots(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch time slots"})
	}
	return c.JSON(fiber.Map{"time_slots": slots, "count": len(slots)})
}

// SaveTimeSlotAPI creates or replaces one row of the bell table.
func SaveTimeSlotAPI(c *fiber.Ctx) error {
	type TimeSlotRequest struct {
		Period    int    `json:"period"`
		StartTime string `json:"start_time"`
		EndTime   string `json:"end_time"`
	}

	var req TimeSlotRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if req.Period < 1 {
		return models.NewValidationError("period", "must be a positive period number")
	}

	start, err := models.MinuteOfDay(req.StartTime)
	if err != nil {
		return models.NewValidationError("start_time", err.Error())
	}
	end, err := models.MinuteOfDay(req.EndTime)
	if err != nil {
		return models.NewValidationError("end_time", err.Error())
	}
	if end <= start {
		return models.NewValidationError("end_time", "must be after start_time")
	}

	if err := database.UpsertTimeSlot(config.GetDB(), req.Period, req.StartTime, req.EndTime); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save time slot"})
	}
	return c.JSON(fiber.Map{"success": true})
}

func GetAbsenceReasonsAPI(c *fiber.Ctx) error {
	reasons, err := database.ListAbsenceReasons(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch absence reasons"})
	}
	return c.JSON(fiber.Map{"absence_reasons": reasons, "count": len(reasons)})
}

func CreateAbsenceReasonAPI(c *fiber.Ctx) error {
	type AbsenceReasonRequest struct {
		Code         string `json:"code"`
		Description  string `json:"description"`
		IsRespectful bool   `json:"is_respectful"`
	}

	var req AbsenceReasonRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if req.Code == "" {
		return models.NewValidationError("code", "required")
	}

	reason, err := database.CreateAbsenceReason(config.GetDB(), req.Code, req.Description, req.IsRespectful)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return c.Status(409).JSON(fiber.Map{"error": "An absence reason with this code already exists"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create absence reason"})
	}

	return c.Status(201).JSON(fiber.Map{"success": true, "absence_reason": reason})
}

func GetScalesAPI(c *fiber.Ctx) error {
	scales, err := database.ListScales(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch grading scales"})
	}
	return c.JSON(fiber.Map{"scales": scales, "count": len(scales)})
}

func GetScaleAPI(c *fiber.Ctx) error {
	scale, err := database.GetScaleWithThresholds(config.GetDB(), c.Params("id"))
	if err == sql.ErrNoRows {
		return c.Status(404).JSON(fiber.Map{"error": "Grading scale not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch grading scale"})
	}
	return c.JSON(fiber.Map{"scale": scale})
}

// CreateScaleAPI creates a grading scale together with its threshold rules.
func CreateScaleAPI(c *fiber.Ctx) error {
	type ThresholdEntry struct {
		Label     string  `json:"label"`
		MinPoints float64 `json:"min_points"`
	}
	type CreateScaleRequest struct {
		Name       string           `json:"name"`
		Thresholds []ThresholdEntry `json:"thresholds"`
	}

	var req CreateScaleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if req.Name == "" {
		return models.NewValidationError("name", "required")
	}
	for _, t := range req.Thresholds {
		if t.Label == "" {
			return models.NewValidationError("thresholds", "every threshold needs a label")
		}
	}

	tx, err := config.GetDB().Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	scale, err := database.CreateScale(tx, req.Name)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return c.Status(409).JSON(fiber.Map{"error": "A scale with this name already exists"})
		}
		return err
	}
	for _, t := range req.Thresholds {
		threshold, err := database.CreateThreshold(tx, scale.ID, t.Label, t.MinPoints)
		if err != nil {
			return err
		}
		scale.Thresholds = append(scale.Thresholds, threshold)
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	return c.Status(201).JSON(fiber.Map{"success": true, "scale": scale})
}
