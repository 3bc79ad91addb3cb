package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"apexdrive_backend/internals/features/students/main/dto"
	"apexdrive_backend/internals/features/students/main/model"
	helper "apexdrive_backend/internals/helpers"
)

/* ================= Controller & Constructor ================= */

type StudentController struct {
	DB *gorm.DB
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

var validate = validator.New()

// ownTeam verifies a team belongs to the caller's client (via its group).
func (ctrl *StudentController) ownTeam(clientID, teamID uuid.UUID) error {
	var cnt int64
	if err := ctrl.DB.Table("teams AS t").
		Joins("JOIN groups AS g ON g.group_id = t.team_group_id").
		Where("t.team_id = ? AND g.group_client_id = ? AND g.group_deleted_at IS NULL", teamID, clientID).
		Count(&cnt).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to verify team")
	}
	if cnt == 0 {
		return fiber.NewError(fiber.StatusForbidden, "Team does not belong to this client")
	}
	return nil
}

/* ================= Handlers ================= */

// POST /admin/students
func (ctrl *StudentController) CreateStudent(c *fiber.Ctx) error {
	clientID, err := helper.GetClientIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.StudentEmail = strings.ToLower(strings.TrimSpace(req.StudentEmail))
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if err := ctrl.ownTeam(clientID, req.StudentTeamID); err != nil {
		return err
	}

	// one student record per email
	var cnt int64
	if err := ctrl.DB.Model(&model.StudentModel{}).
		Where("lower(student_email) = ?", req.StudentEmail).
		Count(&cnt).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to check email")
	}
	if cnt > 0 {
		return fiber.NewError(fiber.StatusConflict, "A student with this email already exists")
	}

	m := req.ToModel()
	if err := ctrl.DB.Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create student")
	}
	return helper.JsonCreated(c, "Student created", dto.NewStudentResponse(m))
}

// GET /admin/students — students of the caller's client.
func (ctrl *StudentController) ListStudents(c *fiber.Ctx) error {
	clientID, err := helper.GetClientIDFromToken(c)
	if err != nil {
		return err
	}
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	tx := ctrl.DB.Table("students AS s").
		Joins("JOIN teams AS t ON t.team_id = s.student_team_id").
		Joins("JOIN groups AS g ON g.group_id = t.team_group_id").
		Where("g.group_client_id = ?", clientID)

	if s := strings.TrimSpace(c.Query("search")); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		tx = tx.Where(
			"(lower(s.student_email) LIKE ? OR lower(s.student_first_name) LIKE ? OR lower(s.student_last_name) LIKE ?)",
			like, like, like,
		)
	}
	if st := strings.TrimSpace(c.Query("status")); st != "" {
		tx = tx.Where("s.student_status = ?", st)
	}
	if teamID := strings.TrimSpace(c.Query("team_id")); teamID != "" {
		id, perr := uuid.Parse(teamID)
		if perr != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid team_id")
		}
		tx = tx.Where("s.student_team_id = ?", id)
	}

	var total int64
	if err := tx.Session(&gorm.Session{}).Distinct("s.student_id").Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count students")
	}

	var rows []model.StudentModel
	if err := tx.
		Select("s.*").
		Order("s.student_last_name ASC, s.student_first_name ASC").
		Limit(p.Limit()).
		Offset(p.Offset()).
		Scan(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch students")
	}

	items := make([]*dto.StudentResponse, 0, len(rows))
	for i := range rows {
		items = append(items, dto.NewStudentResponse(&rows[i]))
	}
	return helper.JsonList(c, "ok", items, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// GET /admin/students/:id
func (ctrl *StudentController) GetStudentByID(c *fiber.Ctx) error {
	clientID, err := helper.GetClientIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid ID")
	}

	var m model.StudentModel
	if err := ctrl.DB.First(&m, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch student")
	}
	if err := ctrl.ownTeam(clientID, m.StudentTeamID); err != nil {
		return err
	}
	return helper.JsonOK(c, "ok", dto.NewStudentResponse(&m))
}

// PATCH /admin/students/:id
func (ctrl *StudentController) UpdateStudent(c *fiber.Ctx) error {
	clientID, err := helper.GetClientIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid ID")
	}

	var req dto.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var existing model.StudentModel
	if err := ctrl.DB.First(&existing, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch student")
	}
	if err := ctrl.ownTeam(clientID, existing.StudentTeamID); err != nil {
		return err
	}
	if req.StudentTeamID != nil {
		if err := ctrl.ownTeam(clientID, *req.StudentTeamID); err != nil {
			return err
		}
	}

	req.ApplyToModel(&existing)
	if err := ctrl.DB.Model(&model.StudentModel{}).
		Where("student_id = ?", existing.StudentID).
		Updates(&existing).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update student")
	}
	return helper.JsonUpdated(c, "Student updated", dto.NewStudentResponse(&existing))
}

// PATCH /admin/students/:id/deactivate — students are never hard-deleted.
func (ctrl *StudentController) DeactivateStudent(c *fiber.Ctx) error {
	clientID, err := helper.GetClientIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid ID")
	}

	var existing model.StudentModel
	if err := ctrl.DB.First(&existing, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch student")
	}
	if err := ctrl.ownTeam(clientID, existing.StudentTeamID); err != nil {
		return err
	}

	now := time.Now()
	if err := ctrl.DB.Model(&model.StudentModel{}).
		Where("student_id = ?", id).
		Updates(map[string]any{
			"student_status":     "inactive",
			"student_updated_at": now,
		}).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to deactivate student")
	}
	return helper.JsonUpdated(c, "Student deactivated", fiber.Map{"student_id": id})
}
