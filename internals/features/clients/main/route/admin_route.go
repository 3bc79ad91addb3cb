// internals/features/clients/main/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"apexdrive_backend/internals/constants"
	clientctrl "apexdrive_backend/internals/features/clients/main/controller"
	authMiddleware "apexdrive_backend/internals/middlewares/auth"
)

func ClientAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ch := clientctrl.NewClientController(db)
	gh := clientctrl.NewGroupController(db)
	th := clientctrl.NewTeamController(db)

	// /admin/clients — platform administration, client_admin only
	clients := admin.Group("/clients",
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("client administration"), constants.AdminOnly...))
	clients.Post("/", ch.CreateClient)
	clients.Get("/", ch.ListClients)
	clients.Get("/:id", ch.GetClientByID)
	clients.Patch("/:id", ch.UpdateClient)
	clients.Delete("/:id", ch.SoftDeleteClient)

	// /admin/groups — scoped to the caller's client, managers and up
	groups := admin.Group("/groups",
		authMiddleware.OnlyRoles(constants.RoleErrorManager("group administration"), constants.ManagerAndAbove...))
	groups.Post("/", gh.CreateGroup)
	groups.Get("/", gh.ListGroups)
	groups.Patch("/:id", gh.UpdateGroup)
	groups.Delete("/:id", gh.SoftDeleteGroup)
	groups.Get("/:groupId/teams", th.ListTeamsByGroup)

	// /admin/teams
	teams := admin.Group("/teams",
		authMiddleware.OnlyRoles(constants.RoleErrorManager("team administration"), constants.ManagerAndAbove...))
	teams.Post("/", th.CreateTeam)
	teams.Patch("/:id", th.UpdateTeam)
	teams.Delete("/:id", th.DeleteTeam)
}
