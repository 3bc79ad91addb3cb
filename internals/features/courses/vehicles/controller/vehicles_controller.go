package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"apexdrive_backend/internals/features/courses/vehicles/dto"
	"apexdrive_backend/internals/features/courses/vehicles/model"
	helper "apexdrive_backend/internals/helpers"
)

/* ================= Controller & Constructor ================= */

type VehicleController struct {
	DB *gorm.DB
}

func NewVehicleController(db *gorm.DB) *VehicleController {
	return &VehicleController{DB: db}
}

var validate = validator.New()

/* ================= Catalog Handlers ================= */

// GET /admin/vehicles?search= — feeds the wizard's search-and-select box.
func (ctrl *VehicleController) ListVehicles(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.VehicleModel{})

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(vehicle_make) LIKE ? OR LOWER(vehicle_model) LIKE ?", pattern, pattern)
	}

	p := helper.ParseFiber(c, "make", "asc", helper.DefaultOpts)
	orderClause, _ := p.SafeOrderClause(map[string]string{
		"make":       "vehicle_make",
		"year":       "vehicle_year",
		"lat_acc":    "vehicle_lat_acc",
		"created_at": "vehicle_created_at",
	}, "make")
	orderExpr := strings.TrimPrefix(orderClause, "ORDER BY ")

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count vehicles")
	}

	var rows []model.VehicleModel
	if err := q.Order(orderExpr).Limit(p.Limit()).Offset(p.Offset()).Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch vehicles")
	}

	resp := make([]dto.VehicleResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, dto.NewVehicleResponse(&rows[i]))
	}
	return helper.JsonList(c, "ok", resp, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// GET /admin/vehicles/:id
func (ctrl *VehicleController) GetVehicle(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid vehicle ID")
	}
	var row model.VehicleModel
	if err := ctrl.DB.First(&row, "vehicle_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Vehicle not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch vehicle")
	}
	return helper.JsonOK(c, "ok", dto.NewVehicleResponse(&row))
}

// POST /admin/vehicles
func (ctrl *VehicleController) CreateVehicle(c *fiber.Ctx) error {
	var req dto.CreateVehicleRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	row := req.ToModel()
	if err := ctrl.DB.Create(row).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create vehicle")
	}
	return helper.JsonCreated(c, "Vehicle created", dto.NewVehicleResponse(row))
}

// PUT /admin/vehicles/:id
func (ctrl *VehicleController) UpdateVehicle(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid vehicle ID")
	}

	var req dto.UpdateVehicleRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var row model.VehicleModel
	if err := ctrl.DB.First(&row, "vehicle_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Vehicle not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch vehicle")
	}

	req.ApplyToModel(&row)
	if err := ctrl.DB.Save(&row).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update vehicle")
	}
	return helper.JsonUpdated(c, "Vehicle updated", dto.NewVehicleResponse(&row))
}

// DELETE /admin/vehicles/:id — catalog rows are hard-deleted; course_vehicles
// keep their own copy of the fields, so history survives.
func (ctrl *VehicleController) DeleteVehicle(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid vehicle ID")
	}
	res := ctrl.DB.Delete(&model.VehicleModel{}, "vehicle_id = ?", id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete vehicle")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Vehicle not found")
	}
	return helper.JsonDeleted(c, "Vehicle deleted", fiber.Map{"vehicle_id": id})
}
