package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"apexdrive_backend/internals/features/courses/allocations/dto"
	"apexdrive_backend/internals/features/courses/allocations/model"
	"apexdrive_backend/internals/features/courses/allocations/service"
	instancesModel "apexdrive_backend/internals/features/courses/instances/model"
	instancesService "apexdrive_backend/internals/features/courses/instances/service"
	helper "apexdrive_backend/internals/helpers"
)

/* ================= Controller & Constructor ================= */

type CourseAllocationController struct {
	DB *gorm.DB
}

func NewCourseAllocationController(db *gorm.DB) *CourseAllocationController {
	return &CourseAllocationController{DB: db}
}

var validate = validator.New()

// courseCapacity loads a course instance plus its program and derives the
// seat capacity.
func (ctrl *CourseAllocationController) courseCapacity(courseID uuid.UUID) (*instancesModel.CourseInstanceModel, int, error) {
	var course instancesModel.CourseInstanceModel
	if err := ctrl.DB.First(&course, "course_id = ? AND course_deleted_at IS NULL", courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, fiber.NewError(fiber.StatusNotFound, "Course not found")
		}
		return nil, 0, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch course")
	}
	var program instancesModel.ProgramModel
	if err := ctrl.DB.First(&program, "program_id = ?", course.CourseProgramID).Error; err != nil {
		return nil, 0, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch program")
	}
	return &course, instancesService.Capacity(&course, &program), nil
}

/* ================= Handlers ================= */

// GET /admin/courses/:courseId/allocations
func (ctrl *CourseAllocationController) ListAllocations(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid course ID")
	}
	_, capacity, err := ctrl.courseCapacity(courseID)
	if err != nil {
		return err
	}

	var rows []model.CourseAllocationModel
	if err := ctrl.DB.
		Where("allocation_course_id = ?", courseID).
		Order("allocation_created_at ASC").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch allocations")
	}
	return helper.JsonOK(c, "ok", dto.NewAllocationListResponse(courseID, capacity, rows))
}

// PUT /admin/courses/:courseId/allocations — replace-save of the full set.
// Delete-all plus re-insert runs inside one transaction so concurrent
// editors cannot leave the course half-written.
func (ctrl *CourseAllocationController) SaveAllocations(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid course ID")
	}

	var req dto.SaveAllocationsRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	_, capacity, err := ctrl.courseCapacity(courseID)
	if err != nil {
		return err
	}

	// replay the list through the editor so capacity and merge rules hold
	set := service.NewAllocationSet(capacity, nil)
	for _, e := range req.Entries() {
		if addErr := set.Add(e.ClientID, e.Seats); addErr != nil {
			return helper.JsonValidationError(c, map[string][]string{
				"seats": {addErr.Error()},
			})
		}
	}

	entries := set.Entries()

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

	if err := tx.Delete(&model.CourseAllocationModel{}, "allocation_course_id = ?", courseID).Error; err != nil {
		tx.Rollback()
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to clear allocations")
	}
	rows := make([]model.CourseAllocationModel, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, model.CourseAllocationModel{
			AllocationCourseID: courseID,
			AllocationClientID: e.ClientID,
			AllocationSeats:    e.Seats,
		})
	}
	if len(rows) > 0 {
		if err := tx.Create(&rows).Error; err != nil {
			tx.Rollback()
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to save allocations")
		}
	}
	if err := tx.Commit().Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "Allocations saved", dto.NewAllocationListResponse(courseID, capacity, rows))
}
