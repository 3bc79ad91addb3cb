// internals/features/courses/attendees/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"apexdrive_backend/internals/constants"
	attendeectrl "apexdrive_backend/internals/features/courses/attendees/controller"
	authMiddleware "apexdrive_backend/internals/middlewares/auth"
)

func SessionAttendeeAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := attendeectrl.NewSessionAttendeeController(db)

	guard := authMiddleware.OnlyRoles(constants.RoleErrorManager("enrollment"), constants.ManagerAndAbove...)

	courses := admin.Group("/courses/:courseId", guard)
	courses.Get("/roster", h.ListRoster)
	courses.Get("/attendees", h.ListAttendees)
	courses.Post("/attendees", h.Enroll)
	courses.Post("/attendees/import", h.ImportCSV)
	courses.Delete("/attendees/:studentId", h.Unenroll)
}
