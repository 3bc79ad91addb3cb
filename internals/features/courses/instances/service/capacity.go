// service/capacity.go
package service

import (
	"apexdrive_backend/internals/features/courses/instances/model"
)

// Capacity derives the seat capacity of a course instance: the private
// seat count when the course is privately hosted, otherwise the program's
// max_students.
func Capacity(course *model.CourseInstanceModel, program *model.ProgramModel) int {
	if course != nil && !course.CourseOpenEnrollment &&
		course.CourseHostClientID != nil && course.CoursePrivateSeats != nil {
		return *course.CoursePrivateSeats
	}
	if program == nil {
		return 0
	}
	return program.ProgramMaxStudents
}
