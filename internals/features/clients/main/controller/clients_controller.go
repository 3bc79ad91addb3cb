package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"apexdrive_backend/internals/features/clients/main/dto"
	"apexdrive_backend/internals/features/clients/main/model"
	helper "apexdrive_backend/internals/helpers"
)

/* ================= Controller & Constructor ================= */

type ClientController struct {
	DB *gorm.DB
}

func NewClientController(db *gorm.DB) *ClientController {
	return &ClientController{DB: db}
}

// single validator instance for this package
var validate = validator.New()

/* ================= Handlers ================= */

// POST /admin/clients
func (ctrl *ClientController) CreateClient(c *fiber.Ctx) error {
	var req dto.CreateClientRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.ClientName = strings.TrimSpace(req.ClientName)

	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	m := req.ToModel()

	// reject duplicate names among live clients
	var cnt int64
	if err := ctrl.DB.Model(&model.ClientModel{}).
		Where("lower(client_name) = lower(?) AND client_deleted_at IS NULL", m.ClientName).
		Count(&cnt).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if cnt > 0 {
		return fiber.NewError(fiber.StatusConflict, "A client with this name already exists")
	}

	if err := ctrl.DB.Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create client")
	}
	return helper.JsonCreated(c, "Client created", dto.NewClientResponse(m))
}

// GET /admin/clients/:id
func (ctrl *ClientController) GetClientByID(c *fiber.Ctx) error {
	clientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid ID")
	}

	var m model.ClientModel
	if err := ctrl.DB.First(&m, "client_id = ? AND client_deleted_at IS NULL", clientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Client not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch client")
	}
	return helper.JsonOK(c, "ok", dto.NewClientResponse(&m))
}

// GET /admin/clients
func (ctrl *ClientController) ListClients(c *fiber.Ctx) error {
	var q dto.ListClientQuery
	if err := c.QueryParser(&q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid query")
	}
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	tx := ctrl.DB.Model(&model.ClientModel{}).
		Where("client_deleted_at IS NULL")

	if q.Status != nil && strings.TrimSpace(*q.Status) != "" {
		tx = tx.Where("client_status = ?", strings.TrimSpace(*q.Status))
	}
	if q.Search != nil && strings.TrimSpace(*q.Search) != "" {
		tx = tx.Where("client_name ILIKE ?", "%"+strings.TrimSpace(*q.Search)+"%")
	}

	var total int64
	if err := tx.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count clients")
	}

	order, err := p.SafeOrderClause(map[string]string{
		"name":       "client_name",
		"status":     "client_status",
		"created_at": "client_created_at",
	}, "created_at")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid sort")
	}

	var rows []model.ClientModel
	if err := tx.
		Order(strings.TrimPrefix(order, "ORDER BY ")).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch clients")
	}

	items := make([]*dto.ClientResponse, 0, len(rows))
	for i := range rows {
		items = append(items, dto.NewClientResponse(&rows[i]))
	}
	return helper.JsonList(c, "ok", items, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// PATCH /admin/clients/:id
func (ctrl *ClientController) UpdateClient(c *fiber.Ctx) error {
	clientID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid ID")
	}

	var req dto.UpdateClientRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	tx := ctrl.DB.Begin()
	if tx.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, tx.Error.Error())
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	var existing model.ClientModel
	if err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&existing, "client_id = ? AND client_deleted_at IS NULL", clientID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Client not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch client")
	}

	req.ApplyToModel(&existing)

	if err := tx.Model(&model.ClientModel{}).
		Where("client_id = ?", existing.ClientID).
		Updates(&existing).Error; err != nil {
		tx.Rollback()
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update client")
	}
	if err := tx.Commit().Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Client updated", dto.NewClientResponse(&existing))
}

// DELETE /admin/clients/:id (soft delete)
func (ctrl *ClientController) SoftDeleteClient(c *fiber.Ctx) error {
	clientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid ID")
	}

	now := time.Now()
	res := ctrl.DB.Model(&model.ClientModel{}).
		Where("client_id = ? AND client_deleted_at IS NULL", clientID).
		Updates(map[string]any{
			"client_deleted_at": now,
			"client_status":     "inactive",
			"client_updated_at": now,
		})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete client")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Client not found")
	}
	return helper.JsonDeleted(c, "Client deleted", fiber.Map{"client_id": clientID})
}
