package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"apexdrive_backend/internals/features/courses/instances/dto"
	"apexdrive_backend/internals/features/courses/instances/model"
	"apexdrive_backend/internals/features/courses/instances/service"
	helper "apexdrive_backend/internals/helpers"
)

/* ================= Controller & Constructor ================= */

type CourseInstanceController struct {
	DB *gorm.DB
}

func NewCourseInstanceController(db *gorm.DB) *CourseInstanceController {
	return &CourseInstanceController{DB: db}
}

var validate = validator.New()

func (ctrl *CourseInstanceController) loadProgram(programID uuid.UUID) (*model.ProgramModel, error) {
	var p model.ProgramModel
	if err := ctrl.DB.First(&p, "program_id = ?", programID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Program not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch program")
	}
	return &p, nil
}

/* ================= Handlers ================= */

// POST /admin/courses
func (ctrl *CourseInstanceController) CreateCourseInstance(c *fiber.Ctx) error {
	var req dto.CreateCourseInstanceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if req.CourseEndDate.Before(req.CourseStartDate) {
		return fiber.NewError(fiber.StatusBadRequest, "End date must not be before start date")
	}
	// a private course needs a host client
	if req.CourseOpenEnrollment != nil && !*req.CourseOpenEnrollment && req.CourseHostClientID == nil {
		return fiber.NewError(fiber.StatusBadRequest, "A private course requires a host client")
	}

	program, err := ctrl.loadProgram(req.CourseProgramID)
	if err != nil {
		return err
	}

	m := req.ToModel()
	if err := ctrl.DB.Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create course")
	}
	return helper.JsonCreated(c, "Course created", dto.NewCourseInstanceResponse(m, service.Capacity(m, program)))
}

// GET /admin/courses
func (ctrl *CourseInstanceController) ListCourseInstances(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "start_date", "desc", helper.AdminOpts)

	tx := ctrl.DB.Model(&model.CourseInstanceModel{}).
		Where("course_deleted_at IS NULL")

	if open := strings.TrimSpace(c.Query("open_enrollment")); open != "" {
		tx = tx.Where("course_open_enrollment = ?", strings.EqualFold(open, "true"))
	}
	if hostID := strings.TrimSpace(c.Query("host_client_id")); hostID != "" {
		id, perr := uuid.Parse(hostID)
		if perr != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid host_client_id")
		}
		tx = tx.Where("course_host_client_id = ?", id)
	}

	var total int64
	if err := tx.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count courses")
	}

	var rows []model.CourseInstanceModel
	if err := tx.
		Order("course_start_date DESC").
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch courses")
	}

	// batch-load programs for capacity derivation
	programIDs := make([]uuid.UUID, 0, len(rows))
	for i := range rows {
		programIDs = append(programIDs, rows[i].CourseProgramID)
	}
	programs := map[uuid.UUID]*model.ProgramModel{}
	if len(programIDs) > 0 {
		var ps []model.ProgramModel
		if err := ctrl.DB.Where("program_id IN ?", programIDs).Find(&ps).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch programs")
		}
		for i := range ps {
			programs[ps[i].ProgramID] = &ps[i]
		}
	}

	items := make([]*dto.CourseInstanceResponse, 0, len(rows))
	for i := range rows {
		items = append(items, dto.NewCourseInstanceResponse(&rows[i], service.Capacity(&rows[i], programs[rows[i].CourseProgramID])))
	}
	return helper.JsonList(c, "ok", items, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// GET /admin/courses/:id
func (ctrl *CourseInstanceController) GetCourseInstanceByID(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid ID")
	}

	var m model.CourseInstanceModel
	if err := ctrl.DB.First(&m, "course_id = ? AND course_deleted_at IS NULL", courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Course not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch course")
	}
	program, err := ctrl.loadProgram(m.CourseProgramID)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "ok", dto.NewCourseInstanceResponse(&m, service.Capacity(&m, program)))
}

// PATCH /admin/courses/:id
func (ctrl *CourseInstanceController) UpdateCourseInstance(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid ID")
	}

	var req dto.UpdateCourseInstanceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var existing model.CourseInstanceModel
	if err := ctrl.DB.First(&existing, "course_id = ? AND course_deleted_at IS NULL", courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Course not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch course")
	}

	req.ApplyToModel(&existing)
	if existing.CourseEndDate.Before(existing.CourseStartDate) {
		return fiber.NewError(fiber.StatusBadRequest, "End date must not be before start date")
	}
	if !existing.CourseOpenEnrollment && existing.CourseHostClientID == nil {
		return fiber.NewError(fiber.StatusBadRequest, "A private course requires a host client")
	}

	if err := ctrl.DB.Model(&model.CourseInstanceModel{}).
		Where("course_id = ?", existing.CourseID).
		Updates(&existing).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update course")
	}
	program, err := ctrl.loadProgram(existing.CourseProgramID)
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "Course updated", dto.NewCourseInstanceResponse(&existing, service.Capacity(&existing, program)))
}

// DELETE /admin/courses/:id (soft delete)
func (ctrl *CourseInstanceController) SoftDeleteCourseInstance(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid ID")
	}

	now := time.Now()
	res := ctrl.DB.Model(&model.CourseInstanceModel{}).
		Where("course_id = ? AND course_deleted_at IS NULL", courseID).
		Updates(map[string]any{
			"course_deleted_at": now,
			"course_updated_at": now,
		})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete course")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Course not found")
	}
	return helper.JsonDeleted(c, "Course deleted", fiber.Map{"course_id": courseID})
}

// GET /admin/programs
func (ctrl *CourseInstanceController) ListPrograms(c *fiber.Ctx) error {
	var rows []model.ProgramModel
	if err := ctrl.DB.Order("program_name ASC").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch programs")
	}
	return helper.JsonOK(c, "ok", rows)
}

// GET /admin/venues
func (ctrl *CourseInstanceController) ListVenues(c *fiber.Ctx) error {
	var rows []model.VenueModel
	if err := ctrl.DB.Order("venue_name ASC").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch venues")
	}
	return helper.JsonOK(c, "ok", rows)
}
