// internals/features/clients/users/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"apexdrive_backend/internals/constants"
	userctrl "apexdrive_backend/internals/features/clients/users/controller"
	authMiddleware "apexdrive_backend/internals/middlewares/auth"
)

func ClientUserAdminRoutes(admin fiber.Router, db *gorm.DB) {
	uh := userctrl.NewClientUserController(db)
	ih := userctrl.NewInvitationController(db)

	users := admin.Group("/users",
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("user administration"), constants.AdminOnly...))
	users.Post("/", uh.AddUser)
	users.Get("/", uh.ListUsers)
	users.Get("/:id", uh.GetUserByID)
	users.Patch("/:id", uh.UpdateUser)

	invitations := admin.Group("/invitations",
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("invitations"), constants.AdminOnly...))
	invitations.Post("/", ih.CreateInvitation)
	invitations.Get("/", ih.ListInvitations)
	invitations.Post("/:id/resend", ih.ResendInvitation)
	invitations.Delete("/:id", ih.RevokeInvitation)
}
