package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"apexdrive_backend/internals/features/clients/users/dto"
	"apexdrive_backend/internals/features/clients/users/model"
	"apexdrive_backend/internals/features/clients/users/service"
	helper "apexdrive_backend/internals/helpers"
)

/* ================= Controller & Constructor ================= */

type InvitationController struct {
	DB *gorm.DB
}

func NewInvitationController(db *gorm.DB) *InvitationController {
	return &InvitationController{DB: db}
}

/* ================= Handlers ================= */

// POST /admin/invitations
func (ctrl *InvitationController) CreateInvitation(c *fiber.Ctx) error {
	clientID, err := helper.GetClientIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateInvitationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	// one live invitation per email per client
	var cnt int64
	if err := ctrl.DB.Model(&model.InvitationModel{}).
		Where("invitation_client_id = ? AND lower(invitation_email) = ? AND invitation_status = 'pending'", clientID, req.Email).
		Count(&cnt).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to check invitations")
	}
	if cnt > 0 {
		return fiber.NewError(fiber.StatusConflict, "A pending invitation already exists for this email")
	}

	raw, hash, err := service.NewInvitationToken()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to generate token")
	}

	m := &model.InvitationModel{
		InvitationClientID:  clientID,
		InvitationEmail:     req.Email,
		InvitationRole:      req.Role,
		InvitationTokenHash: hash,
		InvitationExpiresAt: time.Now().Add(service.InvitationTTL),
		InvitationStatus:    "pending",
	}
	if err := ctrl.DB.Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create invitation")
	}
	return helper.JsonCreated(c, "Invitation created", dto.NewInvitationResponse(m, raw))
}

// GET /admin/invitations
func (ctrl *InvitationController) ListInvitations(c *fiber.Ctx) error {
	clientID, err := helper.GetClientIDFromToken(c)
	if err != nil {
		return err
	}
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	tx := ctrl.DB.Model(&model.InvitationModel{}).
		Where("invitation_client_id = ?", clientID)
	if st := strings.TrimSpace(c.Query("status")); st != "" {
		tx = tx.Where("invitation_status = ?", st)
	}

	var total int64
	if err := tx.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count invitations")
	}

	var rows []model.InvitationModel
	if err := tx.
		Order("invitation_created_at DESC").
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch invitations")
	}

	items := make([]*dto.InvitationResponse, 0, len(rows))
	for i := range rows {
		items = append(items, dto.NewInvitationResponse(&rows[i], ""))
	}
	return helper.JsonList(c, "ok", items, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// POST /admin/invitations/:id/resend — regenerate token, extend expiry.
func (ctrl *InvitationController) ResendInvitation(c *fiber.Ctx) error {
	clientID, err := helper.GetClientIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid ID")
	}

	var m model.InvitationModel
	if err := ctrl.DB.First(&m, "invitation_id = ? AND invitation_client_id = ?", id, clientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Invitation not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch invitation")
	}
	if m.InvitationStatus != "pending" {
		return fiber.NewError(fiber.StatusConflict, "Only pending invitations can be resent")
	}

	raw, hash, err := service.NewInvitationToken()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to generate token")
	}
	now := time.Now()
	m.InvitationTokenHash = hash
	m.InvitationExpiresAt = now.Add(service.InvitationTTL)
	m.InvitationUpdatedAt = &now

	if err := ctrl.DB.Model(&model.InvitationModel{}).
		Where("invitation_id = ?", m.InvitationID).
		Updates(map[string]any{
			"invitation_token_hash": m.InvitationTokenHash,
			"invitation_expires_at": m.InvitationExpiresAt,
			"invitation_updated_at": now,
		}).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to resend invitation")
	}
	return helper.JsonUpdated(c, "Invitation resent", dto.NewInvitationResponse(&m, raw))
}

// DELETE /admin/invitations/:id — revoke is a hard delete.
func (ctrl *InvitationController) RevokeInvitation(c *fiber.Ctx) error {
	clientID, err := helper.GetClientIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid ID")
	}

	res := ctrl.DB.Delete(&model.InvitationModel{}, "invitation_id = ? AND invitation_client_id = ?", id, clientID)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to revoke invitation")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Invitation not found")
	}
	return helper.JsonDeleted(c, "Invitation revoked", fiber.Map{"invitation_id": id})
}
