// internals/features/students/main/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"apexdrive_backend/internals/constants"
	studentctrl "apexdrive_backend/internals/features/students/main/controller"
	authMiddleware "apexdrive_backend/internals/middlewares/auth"
)

func StudentAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := studentctrl.NewStudentController(db)

	students := admin.Group("/students",
		authMiddleware.OnlyRoles(constants.RoleErrorManager("student administration"), constants.ManagerAndAbove...))
	students.Post("/", h.CreateStudent)
	students.Get("/", h.ListStudents)
	students.Get("/:id", h.GetStudentByID)
	students.Patch("/:id", h.UpdateStudent)
	students.Patch("/:id/deactivate", h.DeactivateStudent)
}
