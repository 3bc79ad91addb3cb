// dto/groups_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"apexdrive_backend/internals/features/clients/main/model"
)

/* ========== REQUEST DTOs ========== */

type CreateGroupRequest struct {
	GroupClientID    *uuid.UUID `json:"group_client_id" form:"group_client_id"`
	GroupName        string     `json:"group_name" form:"group_name" validate:"required,min=2,max=120"`
	GroupDescription *string    `json:"group_description" form:"group_description"`
	GroupIsDefault   *bool      `json:"group_is_default" form:"group_is_default"`
}

type UpdateGroupRequest struct {
	GroupName        *string `json:"group_name" form:"group_name" validate:"omitempty,min=2,max=120"`
	GroupDescription *string `json:"group_description" form:"group_description"`
	GroupIsDefault   *bool   `json:"group_is_default" form:"group_is_default"`
}

/* ========== RESPONSE DTO ========== */

type GroupResponse struct {
	GroupID          uuid.UUID `json:"group_id"`
	GroupClientID    uuid.UUID `json:"group_client_id"`
	GroupName        string    `json:"group_name"`
	GroupDescription *string   `json:"group_description,omitempty"`
	GroupIsDefault   bool      `json:"group_is_default"`

	GroupCreatedAt time.Time  `json:"group_created_at"`
	GroupUpdatedAt *time.Time `json:"group_updated_at,omitempty"`
}

/* ========== MODEL <-> DTO ========== */

func NewGroupResponse(m *model.GroupModel) *GroupResponse {
	if m == nil {
		return nil
	}
	return &GroupResponse{
		GroupID:          m.GroupID,
		GroupClientID:    m.GroupClientID,
		GroupName:        m.GroupName,
		GroupDescription: m.GroupDescription,
		GroupIsDefault:   m.GroupIsDefault,
		GroupCreatedAt:   m.GroupCreatedAt,
		GroupUpdatedAt:   m.GroupUpdatedAt,
	}
}

func (r *CreateGroupRequest) ToModel(clientID uuid.UUID) *model.GroupModel {
	m := &model.GroupModel{
		GroupClientID:    clientID,
		GroupName:        r.GroupName,
		GroupDescription: r.GroupDescription,
	}
	if r.GroupIsDefault != nil {
		m.GroupIsDefault = *r.GroupIsDefault
	}
	return m
}

func (r *UpdateGroupRequest) ApplyToModel(m *model.GroupModel) {
	if r.GroupName != nil {
		m.GroupName = *r.GroupName
	}
	if r.GroupDescription != nil {
		m.GroupDescription = r.GroupDescription
	}
	if r.GroupIsDefault != nil {
		m.GroupIsDefault = *r.GroupIsDefault
	}
	now := time.Now()
	m.GroupUpdatedAt = &now
}
