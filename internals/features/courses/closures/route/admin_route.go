// internals/features/courses/closures/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"apexdrive_backend/internals/constants"
	closurectrl "apexdrive_backend/internals/features/courses/closures/controller"
	authMiddleware "apexdrive_backend/internals/middlewares/auth"
)

func CourseClosureAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := closurectrl.NewCourseClosureController(db)

	closure := admin.Group("/courses/:courseId/closure",
		authMiddleware.OnlyRoles(constants.RoleErrorManager("course closure"), constants.ManagerAndAbove...))
	closure.Get("/", h.GetClosure)
	closure.Get("/download", h.DownloadClosure)
	closure.Post("/file", h.UploadClosureFile)
	closure.Post("/", h.SubmitClosure)
}
