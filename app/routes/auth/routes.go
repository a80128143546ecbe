package auth

import (
	"strings"

	"github.com/SerhiiHodis/EduTrack/app/config"
	"github.com/SerhiiHodis/EduTrack/app/database"
	"github.com/SerhiiHodis/EduTrack/app/models"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	api := app.Group("/api/auth")
	api.Post("/login", LoginAPI)
	api.Post("/logout", LogoutAPI)

	me := api.Group("/", AuthMiddleware)
	me.Get("/me", MeAPI)
	me.Post("/change-password", ChangePasswordAPI)
}

// AuthMiddleware validates the JWT and stores the current user in ctx locals.
func AuthMiddleware(c *fiber.Ctx) error {
	tokenString := c.Cookies("jwt_token")
	if tokenString == "" {
		auth := c.Get("Authorization")
		if strings.HasPrefix(auth, "Bearer ") {
			tokenString = strings.TrimPrefix(auth, "Bearer ")
		}
	}

	if tokenString == "" {
		return c.Status(401).JSON(fiber.Map{"error": "No token found"})
	}

	claims, err := ValidateJWT(tokenString)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid token"})
	}

	user, err := database.GetUserByID(config.GetDB(), claims.UserID)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "User not found"})
	}

	c.Locals("user", user)
	c.Locals("user_id", user.ID)
	return c.Next()
}

// RequireRole returns a middleware that rejects callers without one of the
// given roles. Handlers never branch on role themselves; they receive
// already-scoped parameters.
func RequireRole(roles ...models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := c.Locals("user").(*models.User)
		if !ok {
			return c.Status(401).JSON(fiber.Map{"error": "Not authenticated"})
		}
		for _, role := range roles {
			if user.Role == role {
				return c.Next()
			}
		}
		return c.Status(403).JSON(fiber.Map{"error": "Insufficient permissions"})
	}
}

// CurrentUser fetches the authenticated user set by AuthMiddleware.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals("user").(*models.User)
	return user
}
