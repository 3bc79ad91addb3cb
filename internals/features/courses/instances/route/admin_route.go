// internals/features/courses/instances/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"apexdrive_backend/internals/constants"
	coursectrl "apexdrive_backend/internals/features/courses/instances/controller"
	authMiddleware "apexdrive_backend/internals/middlewares/auth"
)

func CourseInstanceAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := coursectrl.NewCourseInstanceController(db)

	courses := admin.Group("/courses",
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("course scheduling"), constants.AdminOnly...))
	courses.Post("/", h.CreateCourseInstance)
	courses.Get("/", h.ListCourseInstances)
	courses.Get("/:id", h.GetCourseInstanceByID)
	courses.Patch("/:id", h.UpdateCourseInstance)
	courses.Delete("/:id", h.SoftDeleteCourseInstance)

	admin.Get("/programs", h.ListPrograms)
	admin.Get("/venues", h.ListVenues)
}
