package controller

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	instancesModel "apexdrive_backend/internals/features/courses/instances/model"
	"apexdrive_backend/internals/features/courses/vehicles/dto"
	"apexdrive_backend/internals/features/courses/vehicles/model"
	"apexdrive_backend/internals/features/courses/vehicles/service"
	helper "apexdrive_backend/internals/helpers"
)

/* ================= Controller & Constructor ================= */

type CourseVehicleController struct {
	DB *gorm.DB
}

func NewCourseVehicleController(db *gorm.DB) *CourseVehicleController {
	return &CourseVehicleController{DB: db}
}

func (ctrl *CourseVehicleController) assertCourse(courseID uuid.UUID) error {
	var course instancesModel.CourseInstanceModel
	if err := ctrl.DB.First(&course, "course_id = ? AND course_deleted_at IS NULL", courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Course not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch course")
	}
	return nil
}

/* ================= Handlers ================= */

// GET /admin/courses/:courseId/vehicles
func (ctrl *CourseVehicleController) ListCourseVehicles(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid course ID")
	}
	if err := ctrl.assertCourse(courseID); err != nil {
		return err
	}

	var rows []model.CourseVehicleModel
	if err := ctrl.DB.
		Where("course_vehicle_course_id = ?", courseID).
		Order("course_vehicle_car_number ASC").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch course vehicles")
	}
	return helper.JsonOK(c, "ok", dto.NewCourseVehicleResponses(rows))
}

// PUT /admin/courses/:courseId/vehicles — replace-save, same pattern as seat
// allocations: delete-all plus re-insert in one transaction. Catalog-sourced
// entries go through the sensitive-field lock first.
func (ctrl *CourseVehicleController) SaveCourseVehicles(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid course ID")
	}
	if err := ctrl.assertCourse(courseID); err != nil {
		return err
	}

	var req dto.SaveCourseVehiclesRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if fieldErrs := ctrl.checkVehicles(c, req.Vehicles); len(fieldErrs) > 0 {
		return helper.JsonValidationError(c, fieldErrs)
	}

	rows := make([]model.CourseVehicleModel, 0, len(req.Vehicles))
	for _, v := range req.Vehicles {
		rows = append(rows, model.CourseVehicleModel{
			CourseVehicleCourseID:  courseID,
			CourseVehicleSourceID:  v.SourceID,
			CourseVehicleCarNumber: v.CarNumber,
			CourseVehicleMake:      v.Make,
			CourseVehicleModel:     v.Model,
			CourseVehicleYear:      v.Year,
			CourseVehicleLatAcc:    v.LatAcc,
		})
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

	if err := tx.Delete(&model.CourseVehicleModel{}, "course_vehicle_course_id = ?", courseID).Error; err != nil {
		tx.Rollback()
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to clear course vehicles")
	}
	if len(rows) > 0 {
		if err := tx.Create(&rows).Error; err != nil {
			tx.Rollback()
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to save course vehicles")
		}
	}
	if err := tx.Commit().Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "Course vehicles saved", dto.NewCourseVehicleResponses(rows))
}

// checkVehicles validates car numbering and enforces the field lock: unless
// the caller may edit sensitive fields, a catalog-sourced entry must carry
// the catalog's year and latAcc unchanged.
func (ctrl *CourseVehicleController) checkVehicles(c *fiber.Ctx, entries []dto.CourseVehicleRequest) map[string][]string {
	fieldErrs := map[string][]string{}

	seen := map[int]bool{}
	for _, v := range entries {
		if seen[v.CarNumber] {
			fieldErrs["car_number"] = append(fieldErrs["car_number"],
				fmt.Sprintf("car number %d is used more than once", v.CarNumber))
		}
		seen[v.CarNumber] = true
	}

	sourceIDs := make([]uuid.UUID, 0)
	for _, v := range entries {
		if v.SourceID != nil {
			sourceIDs = append(sourceIDs, *v.SourceID)
		}
	}
	if len(sourceIDs) == 0 {
		return fieldErrs
	}

	var catalog []model.VehicleModel
	if err := ctrl.DB.Where("vehicle_id IN ?", sourceIDs).Find(&catalog).Error; err != nil {
		fieldErrs["source_id"] = append(fieldErrs["source_id"], "failed to verify catalog vehicles")
		return fieldErrs
	}
	byID := map[uuid.UUID]*model.VehicleModel{}
	for i := range catalog {
		byID[catalog[i].VehicleID] = &catalog[i]
	}

	canEdit := service.CanEditSensitiveField(helper.GetRoleFromToken(c), false)

	for _, v := range entries {
		if v.SourceID == nil {
			continue
		}
		src, ok := byID[*v.SourceID]
		if !ok {
			fieldErrs["source_id"] = append(fieldErrs["source_id"],
				fmt.Sprintf("vehicle %s not found in catalog", v.SourceID))
			continue
		}
		if canEdit {
			continue
		}
		if v.Year != nil && (src.VehicleYear == nil || *v.Year != *src.VehicleYear) {
			fieldErrs["year"] = append(fieldErrs["year"],
				fmt.Sprintf("car %d: year is locked for catalog vehicles", v.CarNumber))
		}
		if v.LatAcc != src.VehicleLatAcc {
			fieldErrs["lat_acc"] = append(fieldErrs["lat_acc"],
				fmt.Sprintf("car %d: lateral acceleration is locked for catalog vehicles", v.CarNumber))
		}
	}
	return fieldErrs
}
