// internals/features/courses/vehicles/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"apexdrive_backend/internals/constants"
	vehiclectrl "apexdrive_backend/internals/features/courses/vehicles/controller"
	authMiddleware "apexdrive_backend/internals/middlewares/auth"
)

func VehicleAdminRoutes(admin fiber.Router, db *gorm.DB) {
	catalog := vehiclectrl.NewVehicleController(db)
	courseVehicles := vehiclectrl.NewCourseVehicleController(db)

	guard := authMiddleware.OnlyRoles(constants.RoleErrorManager("vehicles"), constants.ManagerAndAbove...)

	vehicles := admin.Group("/vehicles", guard)
	vehicles.Get("/", catalog.ListVehicles)
	vehicles.Get("/:id", catalog.GetVehicle)
	vehicles.Post("/", catalog.CreateVehicle)
	vehicles.Put("/:id", catalog.UpdateVehicle)
	vehicles.Delete("/:id", catalog.DeleteVehicle)

	course := admin.Group("/courses/:courseId/vehicles", guard)
	course.Get("/", courseVehicles.ListCourseVehicles)
	course.Put("/", courseVehicles.SaveCourseVehicles)
}
