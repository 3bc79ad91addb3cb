package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"apexdrive_backend/internals/features/clients/main/dto"
	"apexdrive_backend/internals/features/clients/main/model"
	helper "apexdrive_backend/internals/helpers"
)

/* ================= Controller & Constructor ================= */

type GroupController struct {
	DB *gorm.DB
}

func NewGroupController(db *gorm.DB) *GroupController {
	return &GroupController{DB: db}
}

/* ================= Handlers ================= */

// POST /admin/groups
func (ctrl *GroupController) CreateGroup(c *fiber.Ctx) error {
	clientID, err := helper.GetClientIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.GroupName = strings.TrimSpace(req.GroupName)
	// force the tenant from the token, never from the client
	req.GroupClientID = &clientID

	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	m := req.ToModel(clientID)
	if err := ctrl.DB.Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create group")
	}
	return helper.JsonCreated(c, "Group created", dto.NewGroupResponse(m))
}

// GET /admin/groups
func (ctrl *GroupController) ListGroups(c *fiber.Ctx) error {
	clientID, err := helper.GetClientIDFromToken(c)
	if err != nil {
		return err
	}
	p := helper.ParseFiber(c, "created_at", "asc", helper.AdminOpts)

	tx := ctrl.DB.Model(&model.GroupModel{}).
		Where("group_client_id = ? AND group_deleted_at IS NULL", clientID)

	if s := strings.TrimSpace(c.Query("search")); s != "" {
		tx = tx.Where("group_name ILIKE ?", "%"+s+"%")
	}

	var total int64
	if err := tx.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count groups")
	}

	var rows []model.GroupModel
	if err := tx.
		Order("group_created_at ASC").
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch groups")
	}

	items := make([]*dto.GroupResponse, 0, len(rows))
	for i := range rows {
		items = append(items, dto.NewGroupResponse(&rows[i]))
	}
	return helper.JsonList(c, "ok", items, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// PATCH /admin/groups/:id
func (ctrl *GroupController) UpdateGroup(c *fiber.Ctx) error {
	clientID, err := helper.GetClientIDFromToken(c)
	if err != nil {
		return err
	}
	groupID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid ID")
	}

	var req dto.UpdateGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var existing model.GroupModel
	if err := ctrl.DB.First(&existing, "group_id = ? AND group_deleted_at IS NULL", groupID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Group not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch group")
	}
	if existing.GroupClientID != clientID {
		return fiber.NewError(fiber.StatusForbidden, "Cannot modify another client's group")
	}

	req.ApplyToModel(&existing)
	if err := ctrl.DB.Model(&model.GroupModel{}).
		Where("group_id = ?", existing.GroupID).
		Updates(&existing).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update group")
	}
	return helper.JsonUpdated(c, "Group updated", dto.NewGroupResponse(&existing))
}

// DELETE /admin/groups/:id (soft delete)
func (ctrl *GroupController) SoftDeleteGroup(c *fiber.Ctx) error {
	clientID, err := helper.GetClientIDFromToken(c)
	if err != nil {
		return err
	}
	groupID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid ID")
	}

	now := time.Now()
	res := ctrl.DB.Model(&model.GroupModel{}).
		Where("group_id = ? AND group_client_id = ? AND group_deleted_at IS NULL", groupID, clientID).
		Updates(map[string]any{
			"group_deleted_at": now,
			"group_updated_at": now,
		})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete group")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Group not found")
	}
	return helper.JsonDeleted(c, "Group deleted", fiber.Map{"group_id": groupID})
}
