package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"apexdrive_backend/internals/features/clients/main/dto"
	"apexdrive_backend/internals/features/clients/main/model"
	helper "apexdrive_backend/internals/helpers"
)

/* ================= Controller & Constructor ================= */

type TeamController struct {
	DB *gorm.DB
}

func NewTeamController(db *gorm.DB) *TeamController {
	return &TeamController{DB: db}
}

// ownGroup verifies a group belongs to the caller's client.
func (ctrl *TeamController) ownGroup(clientID, groupID uuid.UUID) error {
	var cnt int64
	if err := ctrl.DB.Model(&model.GroupModel{}).
		Where("group_id = ? AND group_client_id = ? AND group_deleted_at IS NULL", groupID, clientID).
		Count(&cnt).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to verify group")
	}
	if cnt == 0 {
		return fiber.NewError(fiber.StatusForbidden, "Group does not belong to this client")
	}
	return nil
}

/* ================= Handlers ================= */

// POST /admin/teams
func (ctrl *TeamController) CreateTeam(c *fiber.Ctx) error {
	clientID, err := helper.GetClientIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateTeamRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.TeamName = strings.TrimSpace(req.TeamName)
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if err := ctrl.ownGroup(clientID, req.TeamGroupID); err != nil {
		return err
	}

	m := req.ToModel()
	if err := ctrl.DB.Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create team")
	}
	return helper.JsonCreated(c, "Team created", dto.NewTeamResponse(m))
}

// GET /admin/groups/:groupId/teams
func (ctrl *TeamController) ListTeamsByGroup(c *fiber.Ctx) error {
	clientID, err := helper.GetClientIDFromToken(c)
	if err != nil {
		return err
	}
	groupID, err := uuid.Parse(c.Params("groupId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid group ID")
	}
	if err := ctrl.ownGroup(clientID, groupID); err != nil {
		return err
	}

	var rows []model.TeamModel
	if err := ctrl.DB.
		Where("team_group_id = ?", groupID).
		Order("team_name ASC").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch teams")
	}

	items := make([]*dto.TeamResponse, 0, len(rows))
	for i := range rows {
		items = append(items, dto.NewTeamResponse(&rows[i]))
	}
	return helper.JsonOK(c, "ok", items)
}

// PATCH /admin/teams/:id
func (ctrl *TeamController) UpdateTeam(c *fiber.Ctx) error {
	clientID, err := helper.GetClientIDFromToken(c)
	if err != nil {
		return err
	}
	teamID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid ID")
	}

	var req dto.UpdateTeamRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var existing model.TeamModel
	if err := ctrl.DB.First(&existing, "team_id = ?", teamID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Team not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch team")
	}
	if err := ctrl.ownGroup(clientID, existing.TeamGroupID); err != nil {
		return err
	}

	req.ApplyToModel(&existing)
	if err := ctrl.DB.Model(&model.TeamModel{}).
		Where("team_id = ?", existing.TeamID).
		Updates(&existing).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update team")
	}
	return helper.JsonUpdated(c, "Team updated", dto.NewTeamResponse(&existing))
}

// DELETE /admin/teams/:id — teams are hard-deleted, unlike the other entities.
func (ctrl *TeamController) DeleteTeam(c *fiber.Ctx) error {
	clientID, err := helper.GetClientIDFromToken(c)
	if err != nil {
		return err
	}
	teamID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid ID")
	}

	var existing model.TeamModel
	if err := ctrl.DB.First(&existing, "team_id = ?", teamID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Team not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch team")
	}
	if err := ctrl.ownGroup(clientID, existing.TeamGroupID); err != nil {
		return err
	}

	if err := ctrl.DB.Delete(&model.TeamModel{}, "team_id = ?", teamID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete team")
	}
	return helper.JsonDeleted(c, "Team deleted", fiber.Map{"team_id": teamID})
}
