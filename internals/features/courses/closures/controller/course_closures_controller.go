package controller

import (
	"errors"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	clientsModel "apexdrive_backend/internals/features/clients/main/model"
	attendeesService "apexdrive_backend/internals/features/courses/attendees/service"
	"apexdrive_backend/internals/features/courses/closures/dto"
	"apexdrive_backend/internals/features/courses/closures/model"
	"apexdrive_backend/internals/features/courses/closures/service"
	instancesModel "apexdrive_backend/internals/features/courses/instances/model"
	vehiclesModel "apexdrive_backend/internals/features/courses/vehicles/model"
	vehiclesService "apexdrive_backend/internals/features/courses/vehicles/service"
	helper "apexdrive_backend/internals/helpers"
	ossHelper "apexdrive_backend/internals/helpers/oss"
)

/* ================= Controller & Constructor ================= */

type CourseClosureController struct {
	DB *gorm.DB
}

func NewCourseClosureController(db *gorm.DB) *CourseClosureController {
	return &CourseClosureController{DB: db}
}

var validate = validator.New()

func (ctrl *CourseClosureController) loadCourse(courseID uuid.UUID) (*instancesModel.CourseInstanceModel, error) {
	var course instancesModel.CourseInstanceModel
	if err := ctrl.DB.First(&course, "course_id = ? AND course_deleted_at IS NULL", courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Course not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch course")
	}
	return &course, nil
}

func (ctrl *CourseClosureController) findClosure(courseID uuid.UUID) (*model.CourseClosureModel, error) {
	var row model.CourseClosureModel
	err := ctrl.DB.First(&row, "closure_course_id = ?", courseID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch closure")
	}
	return &row, nil
}

/* ================= Handlers ================= */

// GET /admin/courses/:courseId/closure — wizard entry point. An existing
// closure row puts the wizard straight into completed.
func (ctrl *CourseClosureController) GetClosure(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid course ID")
	}
	if _, err := ctrl.loadCourse(courseID); err != nil {
		return err
	}

	row, err := ctrl.findClosure(courseID)
	if err != nil {
		return err
	}
	if row == nil {
		return helper.JsonOK(c, "ok", dto.ClosureStateResponse{Step: service.StepBasic})
	}

	var doc service.Document
	if err := sonic.Unmarshal(row.ClosureData, &doc); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Stored closure data is unreadable")
	}
	return helper.JsonOK(c, "ok", dto.ClosureStateResponse{
		Step:    service.StepCompleted,
		Closure: dto.NewClosureResponse(row, doc),
	})
}

// POST /admin/courses/:courseId/closure/file — one ZIP per closure, stored
// in the bucket, public URL returned for the submit payload.
func (ctrl *CourseClosureController) UploadClosureFile(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid course ID")
	}
	if _, err := ctrl.loadCourse(courseID); err != nil {
		return err
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ZIP file is required")
	}
	if err := ossHelper.ValidateZipUpload(fh.Filename, fh.Size); err != nil {
		return helper.JsonValidationError(c, map[string][]string{"file": {err.Error()}})
	}

	url, err := ossHelper.UploadZip(fmt.Sprintf("closures/%s", courseID), fh)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to upload file")
	}
	return helper.JsonCreated(c, "File uploaded", dto.UploadFileResponse{FileURL: url})
}

// POST /admin/courses/:courseId/closure — final submission. The payload is
// replayed through the wizard so the same step gates apply server-side, then
// the closure row and the course's vehicle list are written in one
// transaction.
func (ctrl *CourseClosureController) SubmitClosure(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid course ID")
	}
	course, err := ctrl.loadCourse(courseID)
	if err != nil {
		return err
	}

	var req dto.SubmitClosureRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	existing, err := ctrl.findClosure(courseID)
	if err != nil {
		return err
	}
	if req.IsEditing && existing == nil {
		return fiber.NewError(fiber.StatusConflict, "No closure exists to edit")
	}

	w := service.NewWizard()
	w.IsEditing = req.IsEditing
	w.Apply(service.Patch{
		Units:   &req.Units,
		Country: &req.Country,
		Notes:   req.Notes,
		FileURL: req.FileURL,
	})
	if err := w.Next(); err != nil {
		return helper.JsonValidationError(c, map[string][]string{"units": {err.Error()}})
	}
	vehicles := req.DocumentVehicles()
	w.Apply(service.Patch{Vehicles: &vehicles})
	if err := w.Next(); err != nil {
		return helper.JsonValidationError(c, map[string][]string{"vehicles": {err.Error()}})
	}
	w.Apply(service.Patch{Layout: &req.CourseLayout, Extras: &req.AdditionalExercises})
	if err := w.Next(); err != nil {
		return helper.JsonValidationError(c, map[string][]string{"exercises": {err.Error()}})
	}
	if err := w.Submit(); err != nil {
		return helper.JsonValidationError(c, map[string][]string{"file": {err.Error()}})
	}

	courseVehicles, err := ctrl.buildCourseVehicles(c, course, &req, w)
	if err != nil {
		return err
	}
	if err := ctrl.fillCourseInfo(course, &w.Doc); err != nil {
		return err
	}
	students, err := ctrl.enrolledStudents(courseID)
	if err != nil {
		return err
	}
	w.Doc.Students = students

	raw, err := sonic.Marshal(w.Doc)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to encode closure data")
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

	var row *model.CourseClosureModel
	if existing != nil {
		now := time.Now()
		existing.ClosureUnits = req.Units
		existing.ClosureCountry = req.Country
		if w.FileURL != nil {
			existing.ClosureFileURL = w.FileURL
		}
		existing.ClosureData = raw
		existing.ClosureClosedBy = userID
		existing.ClosureUpdatedAt = &now
		if err := tx.Save(existing).Error; err != nil {
			tx.Rollback()
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update closure")
		}
		row = existing
	} else {
		row = &model.CourseClosureModel{
			ClosureCourseID: courseID,
			ClosureUnits:    req.Units,
			ClosureCountry:  req.Country,
			ClosureFileURL:  w.FileURL,
			ClosureData:     raw,
			ClosureStatus:   "draft",
			ClosureClosedBy: userID,
		}
		if err := tx.Create(row).Error; err != nil {
			tx.Rollback()
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to create closure")
		}
	}

	if err := tx.Delete(&vehiclesModel.CourseVehicleModel{}, "course_vehicle_course_id = ?", courseID).Error; err != nil {
		tx.Rollback()
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to clear course vehicles")
	}
	if len(courseVehicles) > 0 {
		if err := tx.Create(&courseVehicles).Error; err != nil {
			tx.Rollback()
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to save course vehicles")
		}
	}
	if err := tx.Commit().Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	resp := dto.ClosureStateResponse{
		Step:    service.StepCompleted,
		Closure: dto.NewClosureResponse(row, w.Doc),
	}
	if req.IsEditing {
		return helper.JsonUpdated(c, "Closure updated", resp)
	}
	return helper.JsonCreated(c, "Closure submitted", resp)
}

// GET /admin/courses/:courseId/closure/download — the stored document,
// verbatim, as a JSON attachment.
func (ctrl *CourseClosureController) DownloadClosure(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid course ID")
	}
	row, err := ctrl.findClosure(courseID)
	if err != nil {
		return err
	}
	if row == nil {
		return fiber.NewError(fiber.StatusNotFound, "Closure not found")
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", fmt.Sprintf("closure-%s.json", courseID)))
	return c.Send(row.ClosureData)
}

/* ================= Internals ================= */

// buildCourseVehicles converts the submitted list into course_vehicle rows.
// Catalog-sourced entries have year and latAcc forced back to the catalog
// values when the caller may not edit sensitive fields; the document copy in
// the wizard is corrected to match.
func (ctrl *CourseClosureController) buildCourseVehicles(c *fiber.Ctx, course *instancesModel.CourseInstanceModel, req *dto.SubmitClosureRequest, w *service.Wizard) ([]vehiclesModel.CourseVehicleModel, error) {
	sourceIDs := make([]uuid.UUID, 0)
	for _, v := range req.Vehicles {
		if v.SourceID != nil {
			sourceIDs = append(sourceIDs, *v.SourceID)
		}
	}
	catalog := map[uuid.UUID]*vehiclesModel.VehicleModel{}
	if len(sourceIDs) > 0 {
		var list []vehiclesModel.VehicleModel
		if err := ctrl.DB.Where("vehicle_id IN ?", sourceIDs).Find(&list).Error; err != nil {
			return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to verify catalog vehicles")
		}
		for i := range list {
			catalog[list[i].VehicleID] = &list[i]
		}
	}

	canEdit := vehiclesService.CanEditSensitiveField(helper.GetRoleFromToken(c), false)

	rows := make([]vehiclesModel.CourseVehicleModel, 0, len(req.Vehicles))
	for i, v := range req.Vehicles {
		year := v.Year
		latAcc := v.LatAcc
		if v.SourceID != nil && !canEdit {
			src, ok := catalog[*v.SourceID]
			if !ok {
				return nil, fiber.NewError(fiber.StatusUnprocessableEntity,
					fmt.Sprintf("vehicle %s not found in catalog", v.SourceID))
			}
			year = src.VehicleYear
			latAcc = src.VehicleLatAcc
			if i < len(w.Doc.Vehicles) {
				w.Doc.Vehicles[i].Year = year
				w.Doc.Vehicles[i].LatAcc = latAcc
			}
		}
		carNumber := v.Car
		if i < len(w.Doc.Vehicles) {
			// the wizard renumbered on apply
			carNumber = w.Doc.Vehicles[i].Car
		}
		rows = append(rows, vehiclesModel.CourseVehicleModel{
			CourseVehicleCourseID:  course.CourseID,
			CourseVehicleSourceID:  v.SourceID,
			CourseVehicleCarNumber: carNumber,
			CourseVehicleMake:      v.Make,
			CourseVehicleModel:     v.Model,
			CourseVehicleYear:      year,
			CourseVehicleLatAcc:    latAcc,
		})
	}
	return rows, nil
}

// fillCourseInfo completes the document's course_info from the course row:
// program name, start date, and the host client's name for private courses.
func (ctrl *CourseClosureController) fillCourseInfo(course *instancesModel.CourseInstanceModel, doc *service.Document) error {
	var program instancesModel.ProgramModel
	if err := ctrl.DB.First(&program, "program_id = ?", course.CourseProgramID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch program")
	}
	doc.CourseInfo.Program = program.ProgramName
	doc.CourseInfo.Date = course.CourseStartDate.Format("2006-01-02")

	if course.CourseHostClientID != nil {
		var client clientsModel.ClientModel
		if err := ctrl.DB.First(&client, "client_id = ?", *course.CourseHostClientID).Error; err == nil {
			doc.CourseInfo.Client = client.ClientName
		}
	}
	return nil
}

// enrolledStudents lists the course's pending attendees for the document.
func (ctrl *CourseClosureController) enrolledStudents(courseID uuid.UUID) ([]service.Student, error) {
	type row struct {
		StudentID        uuid.UUID
		StudentFirstName string
		StudentLastName  string
	}
	var rows []row
	if err := ctrl.DB.Table("session_attendees AS a").
		Joins("JOIN students AS s ON s.student_id = a.attendee_student_id").
		Where("a.attendee_course_id = ? AND a.attendee_status = ?", courseID, attendeesService.AttendeePending).
		Select("s.student_id, s.student_first_name, s.student_last_name").
		Order("s.student_last_name ASC, s.student_first_name ASC").
		Scan(&rows).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch enrolled students")
	}

	out := make([]service.Student, 0, len(rows))
	for _, r := range rows {
		out = append(out, service.Student{
			ID:   r.StudentID,
			Name: r.StudentFirstName + " " + r.StudentLastName,
		})
	}
	return out, nil
}
