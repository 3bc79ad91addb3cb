package controller

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	clientsModel "apexdrive_backend/internals/features/clients/main/model"
	clientsService "apexdrive_backend/internals/features/clients/main/service"
	allocModel "apexdrive_backend/internals/features/courses/allocations/model"
	"apexdrive_backend/internals/features/courses/attendees/dto"
	"apexdrive_backend/internals/features/courses/attendees/model"
	"apexdrive_backend/internals/features/courses/attendees/service"
	instancesModel "apexdrive_backend/internals/features/courses/instances/model"
	studentModel "apexdrive_backend/internals/features/students/main/model"
	helper "apexdrive_backend/internals/helpers"
)

/* ================= Controller & Constructor ================= */

type SessionAttendeeController struct {
	DB *gorm.DB
}

func NewSessionAttendeeController(db *gorm.DB) *SessionAttendeeController {
	return &SessionAttendeeController{DB: db}
}

var validate = validator.New()

/* ================= Lookups ================= */

func (ctrl *SessionAttendeeController) loadCourse(courseID uuid.UUID) (*instancesModel.CourseInstanceModel, error) {
	var course instancesModel.CourseInstanceModel
	if err := ctrl.DB.First(&course, "course_id = ? AND course_deleted_at IS NULL", courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Course not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch course")
	}
	return &course, nil
}

// studentClientID walks student -> team -> group to the owning client.
func (ctrl *SessionAttendeeController) studentClientID(student *studentModel.StudentModel) (uuid.UUID, error) {
	var team clientsModel.TeamModel
	if err := ctrl.DB.First(&team, "team_id = ?", student.StudentTeamID).Error; err != nil {
		return uuid.Nil, fmt.Errorf("student's team not found")
	}
	var group clientsModel.GroupModel
	if err := ctrl.DB.First(&group, "group_id = ?", team.TeamGroupID).Error; err != nil {
		return uuid.Nil, fmt.Errorf("student's group not found")
	}
	return group.GroupClientID, nil
}

// allocatedSeats is the client's seat budget on the course: the private seat
// count when the course is privately hosted by that client, otherwise the sum
// of its allocation rows.
func (ctrl *SessionAttendeeController) allocatedSeats(course *instancesModel.CourseInstanceModel, clientID uuid.UUID) (int, error) {
	if !course.CourseOpenEnrollment {
		if course.CourseHostClientID == nil || *course.CourseHostClientID != clientID {
			return 0, nil
		}
		if course.CoursePrivateSeats != nil {
			return *course.CoursePrivateSeats, nil
		}
		return 0, nil
	}
	var total int64
	err := ctrl.DB.Model(&allocModel.CourseAllocationModel{}).
		Where("allocation_course_id = ? AND allocation_client_id = ?", course.CourseID, clientID).
		Select("COALESCE(SUM(allocation_seats), 0)").
		Scan(&total).Error
	return int(total), err
}

// enrolledCount counts the client's pending attendees on the course.
func (ctrl *SessionAttendeeController) enrolledCount(courseID, clientID uuid.UUID) (int, error) {
	var count int64
	err := ctrl.DB.Model(&model.SessionAttendeeModel{}).
		Joins("JOIN students ON students.student_id = session_attendees.attendee_student_id").
		Joins("JOIN teams ON teams.team_id = students.student_team_id").
		Joins("JOIN groups ON groups.group_id = teams.team_group_id").
		Where("session_attendees.attendee_course_id = ? AND session_attendees.attendee_status = ? AND groups.group_client_id = ?",
			courseID, service.AttendeePending, clientID).
		Count(&count).Error
	return int(count), err
}

// enrollStudent applies the seat gate, then inserts a pending row or
// reactivates the student's cancelled one. Shared by the single-enroll
// endpoint and the CSV import loop.
func (ctrl *SessionAttendeeController) enrollStudent(course *instancesModel.CourseInstanceModel, student *studentModel.StudentModel) (*model.SessionAttendeeModel, error) {
	clientID, err := ctrl.studentClientID(student)
	if err != nil {
		return nil, err
	}

	var existing model.SessionAttendeeModel
	found := true
	if err := ctrl.DB.First(&existing,
		"attendee_course_id = ? AND attendee_student_id = ?", course.CourseID, student.StudentID,
	).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to fetch enrollment")
		}
		found = false
	}
	if found && existing.AttendeeStatus == service.AttendeePending {
		return nil, fmt.Errorf("student is already enrolled")
	}

	seats, err := ctrl.allocatedSeats(course, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch allocation")
	}
	enrolled, err := ctrl.enrolledCount(course.CourseID, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to count enrollments")
	}
	if err := service.CheckSeat(enrolled, seats); err != nil {
		return nil, err
	}

	if found {
		// cancelled row comes back to life instead of duplicating
		existing.AttendeeStatus = service.AttendeePending
		if err := ctrl.DB.Model(&existing).
			Update("attendee_status", service.AttendeePending).Error; err != nil {
			return nil, fmt.Errorf("failed to re-enroll student")
		}
		return &existing, nil
	}

	row := model.SessionAttendeeModel{
		AttendeeCourseID:  course.CourseID,
		AttendeeStudentID: student.StudentID,
		AttendeeStatus:    service.AttendeePending,
	}
	if err := ctrl.DB.Create(&row).Error; err != nil {
		return nil, fmt.Errorf("failed to enroll student")
	}
	return &row, nil
}

/* ================= Handlers ================= */

// GET /admin/courses/:courseId/attendees
func (ctrl *SessionAttendeeController) ListAttendees(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid course ID")
	}
	if _, err := ctrl.loadCourse(courseID); err != nil {
		return err
	}

	var rows []model.SessionAttendeeModel
	q := ctrl.DB.Where("attendee_course_id = ?", courseID)
	if status := c.Query("status"); status != "" {
		q = q.Where("attendee_status = ?", status)
	}
	if err := q.Order("attendee_created_at ASC").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch attendees")
	}

	studentIDs := make([]uuid.UUID, 0, len(rows))
	for _, r := range rows {
		studentIDs = append(studentIDs, r.AttendeeStudentID)
	}
	students := map[uuid.UUID]*studentModel.StudentModel{}
	if len(studentIDs) > 0 {
		var list []studentModel.StudentModel
		if err := ctrl.DB.Where("student_id IN ?", studentIDs).Find(&list).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch students")
		}
		for i := range list {
			students[list[i].StudentID] = &list[i]
		}
	}

	resp := make([]dto.AttendeeResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, dto.NewAttendeeResponse(&rows[i], students[rows[i].AttendeeStudentID]))
	}
	return helper.JsonOK(c, "ok", resp)
}

// GET /admin/courses/:courseId/roster — candidate students for enrollment.
// Open courses draw from every client; private courses only from teams under
// the host client's default group.
func (ctrl *SessionAttendeeController) ListRoster(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid course ID")
	}
	course, err := ctrl.loadCourse(courseID)
	if err != nil {
		return err
	}

	q := ctrl.DB.Model(&studentModel.StudentModel{}).
		Where("student_status = ?", "active")

	if !course.CourseOpenEnrollment {
		if course.CourseHostClientID == nil {
			return fiber.NewError(fiber.StatusConflict, "Private course has no host client")
		}
		groupID, err := clientsService.DefaultGroupID(ctrl.DB, *course.CourseHostClientID)
		if err != nil {
			if errors.Is(err, clientsService.ErrNoGroups) {
				return helper.JsonOK(c, "ok", []dto.RosterStudentResponse{})
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to resolve host group")
		}
		q = q.Joins("JOIN teams ON teams.team_id = students.student_team_id").
			Where("teams.team_group_id = ?", groupID)
	}

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		q = q.Where(
			"LOWER(student_first_name) LIKE ? OR LOWER(student_last_name) LIKE ? OR LOWER(student_email) LIKE ?",
			pattern, pattern, pattern,
		)
	}

	var students []studentModel.StudentModel
	if err := q.Order("student_last_name ASC, student_first_name ASC").Find(&students).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch roster")
	}

	resp := make([]dto.RosterStudentResponse, 0, len(students))
	for i := range students {
		resp = append(resp, dto.NewRosterStudentResponse(&students[i]))
	}
	return helper.JsonOK(c, "ok", resp)
}

// POST /admin/courses/:courseId/attendees
func (ctrl *SessionAttendeeController) Enroll(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid course ID")
	}
	course, err := ctrl.loadCourse(courseID)
	if err != nil {
		return err
	}

	var req dto.EnrollRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var student studentModel.StudentModel
	if err := ctrl.DB.First(&student, "student_id = ?", req.StudentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch student")
	}

	row, err := ctrl.enrollStudent(course, &student)
	if err != nil {
		return helper.JsonValidationError(c, map[string][]string{
			"student_id": {err.Error()},
		})
	}
	return helper.JsonCreated(c, "Student enrolled", dto.NewAttendeeResponse(row, &student))
}

// DELETE /admin/courses/:courseId/attendees/:studentId — a status flip, not a
// row delete.
func (ctrl *SessionAttendeeController) Unenroll(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid course ID")
	}
	studentID, err := uuid.Parse(c.Params("studentId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid student ID")
	}

	var row model.SessionAttendeeModel
	if err := ctrl.DB.First(&row,
		"attendee_course_id = ? AND attendee_student_id = ?", courseID, studentID,
	).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Student is not enrolled in this course")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch enrollment")
	}
	if row.AttendeeStatus == service.AttendeeCancelled {
		return fiber.NewError(fiber.StatusConflict, "Enrollment is already cancelled")
	}

	if err := ctrl.DB.Model(&row).Update("attendee_status", service.AttendeeCancelled).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to cancel enrollment")
	}
	row.AttendeeStatus = service.AttendeeCancelled
	return helper.JsonDeleted(c, "Enrollment cancelled", dto.NewAttendeeResponse(&row, nil))
}

// POST /admin/courses/:courseId/attendees/import — CSV bulk enrollment.
// Rows fail individually; successful rows are never rolled back.
func (ctrl *SessionAttendeeController) ImportCSV(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid course ID")
	}
	course, err := ctrl.loadCourse(courseID)
	if err != nil {
		return err
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "CSV file is required")
	}
	f, err := fh.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Failed to open uploaded file")
	}
	defer f.Close()

	parsed, err := service.ParseStudentCSV(f)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	teamID, err := ctrl.importTeamID(c, course)
	if err != nil {
		return err
	}

	report := dto.ImportReportResponse{Errors: parsed.Errors}
	for _, row := range parsed.Rows {
		student, err := ctrl.lookupOrCreateStudent(row, teamID)
		if err != nil {
			report.Errors = append(report.Errors, service.RowError{Line: row.Line, Message: err.Error()})
			continue
		}
		if _, err := ctrl.enrollStudent(course, student); err != nil {
			report.Errors = append(report.Errors, service.RowError{Line: row.Line, Message: err.Error()})
			continue
		}
		report.Succeeded++
	}
	report.Failed = len(report.Errors)

	return helper.JsonOK(c, fmt.Sprintf("Import finished: %d enrolled, %d failed", report.Succeeded, report.Failed), report)
}

// importTeamID resolves the home team for students created during import: an
// explicit team_id form field wins, else a private course falls back to the
// oldest team under the host client's default group.
func (ctrl *SessionAttendeeController) importTeamID(c *fiber.Ctx, course *instancesModel.CourseInstanceModel) (uuid.UUID, error) {
	if raw := c.FormValue("team_id"); raw != "" {
		teamID, err := uuid.Parse(raw)
		if err != nil {
			return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid team ID")
		}
		var team clientsModel.TeamModel
		if err := ctrl.DB.First(&team, "team_id = ?", teamID).Error; err != nil {
			return uuid.Nil, fiber.NewError(fiber.StatusNotFound, "Team not found")
		}
		return teamID, nil
	}

	if course.CourseOpenEnrollment || course.CourseHostClientID == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "team_id is required for open-enrollment courses")
	}
	groupID, err := clientsService.DefaultGroupID(ctrl.DB, *course.CourseHostClientID)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusConflict, "Host client has no default group")
	}
	var team clientsModel.TeamModel
	if err := ctrl.DB.
		Where("team_group_id = ?", groupID).
		Order("team_created_at ASC").
		First(&team).Error; err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusConflict, "Host client's default group has no teams")
	}
	return team.TeamID, nil
}

func (ctrl *SessionAttendeeController) lookupOrCreateStudent(row service.ImportRow, teamID uuid.UUID) (*studentModel.StudentModel, error) {
	var student studentModel.StudentModel
	err := ctrl.DB.First(&student, "LOWER(student_email) = ?", row.Email).Error
	if err == nil {
		return &student, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up student")
	}

	student = studentModel.StudentModel{
		StudentTeamID:    teamID,
		StudentFirstName: row.FirstName,
		StudentLastName:  row.LastName,
		StudentEmail:     row.Email,
		StudentStatus:    "active",
	}
	if row.Phone != "" {
		student.StudentPhone = &row.Phone
	}
	if row.EmployeeNumber != "" {
		student.StudentEmployeeNumber = &row.EmployeeNumber
	}
	if err := ctrl.DB.Create(&student).Error; err != nil {
		return nil, fmt.Errorf("failed to create student")
	}
	return &student, nil
}
