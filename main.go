package main

import (
	"errors"
	"log"

	"github.com/SerhiiHodis/EduTrack/app/config"
	"github.com/SerhiiHodis/EduTrack/app/database"
	"github.com/SerhiiHodis/EduTrack/app/models"
	"github.com/SerhiiHodis/EduTrack/app/routes/assignments"
	"github.com/SerhiiHodis/EduTrack/app/routes/auth"
	"github.com/SerhiiHodis/EduTrack/app/routes/classrooms"
	"github.com/SerhiiHodis/EduTrack/app/routes/grades"
	"github.com/SerhiiHodis/EduTrack/app/routes/groups"
	"github.com/SerhiiHodis/EduTrack/app/routes/journal"
	"github.com/SerhiiHodis/EduTrack/app/routes/reports"
	"github.com/SerhiiHodis/EduTrack/app/routes/schedule"
	"github.com/SerhiiHodis/EduTrack/app/routes/settings"
	"github.com/SerhiiHodis/EduTrack/app/routes/students"
	"github.com/SerhiiHodis/EduTrack/app/routes/subjects"
	"github.com/SerhiiHodis/EduTrack/app/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// errorHandler maps the domain error taxonomy to HTTP statuses: validation
// errors to 400, missing entities to 404, schedule collisions to 409 and
// structural violations to 422.
func errorHandler(c *fiber.Ctx, err error) error {
	var (
		validationErr  *models.ValidationError
		conflictErr    *models.ConflictError
		consistencyErr *models.ConsistencyError
		notFoundErr    *models.NotFoundError
		fiberErr       *fiber.Error
	)

	switch {
	case errors.As(err, &validationErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   validationErr.Message,
			"field":   validationErr.Field,
		})
	case errors.As(err, &notFoundErr):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   notFoundErr.Error(),
		})
	case errors.As(err, &conflictErr):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"success":  false,
			"error":    conflictErr.Error(),
			"resource": conflictErr.Resource,
			"name":     conflictErr.Name,
			"range":    conflictErr.Range,
		})
	case errors.As(err, &consistencyErr):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"success": false,
			"error":   consistencyErr.Error(),
		})
	case errors.As(err, &fiberErr):
		return c.Status(fiberErr.Code).JSON(fiber.Map{
			"success": false,
			"error":   fiberErr.Message,
		})
	}

	log.Printf("Unhandled error on %s %s: %v", c.Method(), c.Path(), err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"error":   "Internal server error",
	})
}

func main() {
	config.InitDB()
	defer config.GetDB().Close()

	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	services.StartScheduler(config.GetDB())

	app := fiber.New(fiber.Config{
		AppName:      "EduTrack",
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	auth.SetupAuthRoutes(app)
	groups.SetupGroupsRoutes(app)
	subjects.SetupSubjectsRoutes(app)
	classrooms.SetupClassroomsRoutes(app)
	students.SetupStudentsRoutes(app)
	assignments.SetupAssignmentsRoutes(app)
	settings.SetupSettingsRoutes(app)
	schedule.SetupScheduleRoutes(app)
	journal.SetupJournalRoutes(app)
	grades.SetupGradesRoutes(app)
	reports.SetupReportsRoutes(app)

	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Not found")
	})

	log.Printf("Server starting on %s", config.AppConfig.Listen)
	log.Fatal(app.Listen(config.AppConfig.Listen))
}
