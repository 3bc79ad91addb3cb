// dto/teams_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"apexdrive_backend/internals/features/clients/main/model"
)

/* ========== REQUEST DTOs ========== */

type CreateTeamRequest struct {
	TeamGroupID uuid.UUID `json:"team_group_id" form:"team_group_id" validate:"required"`
	TeamName    string    `json:"team_name" form:"team_name" validate:"required,min=2,max=120"`
}

type UpdateTeamRequest struct {
	TeamName *string `json:"team_name" form:"team_name" validate:"omitempty,min=2,max=120"`
}

/* ========== RESPONSE DTO ========== */

type TeamResponse struct {
	TeamID      uuid.UUID `json:"team_id"`
	TeamGroupID uuid.UUID `json:"team_group_id"`
	TeamName    string    `json:"team_name"`

	TeamCreatedAt time.Time  `json:"team_created_at"`
	TeamUpdatedAt *time.Time `json:"team_updated_at,omitempty"`
}

/* ========== MODEL <-> DTO ========== */

func NewTeamResponse(m *model.TeamModel) *TeamResponse {
	if m == nil {
		return nil
	}
	return &TeamResponse{
		TeamID:        m.TeamID,
		TeamGroupID:   m.TeamGroupID,
		TeamName:      m.TeamName,
		TeamCreatedAt: m.TeamCreatedAt,
		TeamUpdatedAt: m.TeamUpdatedAt,
	}
}

func (r *CreateTeamRequest) ToModel() *model.TeamModel {
	return &model.TeamModel{
		TeamGroupID: r.TeamGroupID,
		TeamName:    r.TeamName,
	}
}

func (r *UpdateTeamRequest) ApplyToModel(m *model.TeamModel) {
	if r.TeamName != nil {
		m.TeamName = *r.TeamName
	}
	now := time.Now()
	m.TeamUpdatedAt = &now
}
