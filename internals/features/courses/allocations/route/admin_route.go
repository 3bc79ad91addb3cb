// internals/features/courses/allocations/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"apexdrive_backend/internals/constants"
	allocctrl "apexdrive_backend/internals/features/courses/allocations/controller"
	authMiddleware "apexdrive_backend/internals/middlewares/auth"
)

func CourseAllocationAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := allocctrl.NewCourseAllocationController(db)

	allocations := admin.Group("/courses/:courseId/allocations",
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("seat allocation"), constants.AdminOnly...))
	allocations.Get("/", h.ListAllocations)
	allocations.Put("/", h.SaveAllocations)
}
