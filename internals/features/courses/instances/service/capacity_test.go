package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"apexdrive_backend/internals/features/courses/instances/model"
)

func TestCapacity_OpenEnrollmentUsesProgramCap(t *testing.T) {
	program := &model.ProgramModel{ProgramMaxStudents: 20}
	course := &model.CourseInstanceModel{CourseOpenEnrollment: true}
	assert.Equal(t, 20, Capacity(course, program))
}

func TestCapacity_PrivateCourseUsesPrivateSeats(t *testing.T) {
	host := uuid.New()
	seats := 12
	program := &model.ProgramModel{ProgramMaxStudents: 20}
	course := &model.CourseInstanceModel{
		CourseOpenEnrollment: false,
		CourseHostClientID:   &host,
		CoursePrivateSeats:   &seats,
	}
	assert.Equal(t, 12, Capacity(course, program))
}

func TestCapacity_PrivateWithoutSeatsFallsBackToProgram(t *testing.T) {
	host := uuid.New()
	program := &model.ProgramModel{ProgramMaxStudents: 16}
	course := &model.CourseInstanceModel{
		CourseOpenEnrollment: false,
		CourseHostClientID:   &host,
	}
	assert.Equal(t, 16, Capacity(course, program))
}

func TestCapacity_NilProgram(t *testing.T) {
	assert.Equal(t, 0, Capacity(&model.CourseInstanceModel{CourseOpenEnrollment: true}, nil))
}
