package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"apexdrive_backend/internals/middlewares/logger"
)

// SetupMiddlewares wires the global middleware chain. Order matters:
// recovery first so a panic in any later handler still returns 500.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.RequestLogger())
}
