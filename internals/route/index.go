// file: internals/route/index.go
package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	clientsRoute "apexdrive_backend/internals/features/clients/main/route"
	clientUsersRoute "apexdrive_backend/internals/features/clients/users/route"
	allocationsRoute "apexdrive_backend/internals/features/courses/allocations/route"
	attendeesRoute "apexdrive_backend/internals/features/courses/attendees/route"
	closuresRoute "apexdrive_backend/internals/features/courses/closures/route"
	instancesRoute "apexdrive_backend/internals/features/courses/instances/route"
	vehiclesRoute "apexdrive_backend/internals/features/courses/vehicles/route"
	studentsRoute "apexdrive_backend/internals/features/students/main/route"
	authMiddleware "apexdrive_backend/internals/middlewares/auth"
	"apexdrive_backend/internals/middlewares/logger"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// everything under /api requires a bearer token
	admin := app.Group("/api/admin", authMiddleware.AuthMiddleware())

	logger.L().Info().Msg("mounting client administration routes")
	clientsRoute.ClientAdminRoutes(admin, db)
	clientUsersRoute.ClientUserAdminRoutes(admin, db)
	studentsRoute.StudentAdminRoutes(admin, db)

	logger.L().Info().Msg("mounting course routes")
	instancesRoute.CourseInstanceAdminRoutes(admin, db)
	allocationsRoute.CourseAllocationAdminRoutes(admin, db)
	attendeesRoute.SessionAttendeeAdminRoutes(admin, db)
	vehiclesRoute.VehicleAdminRoutes(admin, db)
	closuresRoute.CourseClosureAdminRoutes(admin, db)
}
