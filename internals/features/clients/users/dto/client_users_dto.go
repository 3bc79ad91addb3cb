// dto/client_users_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"apexdrive_backend/internals/features/clients/users/model"
)

/* ========== REQUEST DTOs ========== */

// AddClientUserRequest: attach an existing account (looked up by email)
// to the caller's client with a role and optional group/team assignment.
type AddClientUserRequest struct {
	Email   string      `json:"email" form:"email" validate:"required,email"`
	Role    string      `json:"role" form:"role" validate:"required,oneof=client_admin manager supervisor"`
	GroupID *uuid.UUID  `json:"group_id" form:"group_id"`
	TeamIDs []uuid.UUID `json:"team_ids" form:"team_ids"`
}

// UpdateClientUserRequest: profile fields, role, status, and the full
// group/team multi-select. Group and team lists replace the stored sets.
type UpdateClientUserRequest struct {
	FirstName *string `json:"first_name" form:"first_name" validate:"omitempty,min=1,max=80"`
	LastName  *string `json:"last_name" form:"last_name" validate:"omitempty,min=1,max=80"`
	Phone     *string `json:"phone" form:"phone" validate:"omitempty,max=40"`
	Role      *string `json:"role" form:"role" validate:"omitempty,oneof=client_admin manager supervisor"`
	Status    *string `json:"status" form:"status" validate:"omitempty,oneof=active pending invited inactive suspended"`

	GroupIDs *[]uuid.UUID `json:"group_ids" form:"group_ids"`
	TeamIDs  *[]uuid.UUID `json:"team_ids" form:"team_ids"`
}

/* ========== RESPONSE DTO ========== */

type ClientUserResponse struct {
	ClientUserID       uuid.UUID `json:"client_user_id"`
	ClientUserClientID uuid.UUID `json:"client_user_client_id"`
	ClientUserUserID   uuid.UUID `json:"client_user_user_id"`

	ClientUserEmail     string  `json:"client_user_email"`
	ClientUserFirstName string  `json:"client_user_first_name"`
	ClientUserLastName  string  `json:"client_user_last_name"`
	ClientUserPhone     *string `json:"client_user_phone,omitempty"`
	ClientUserRole      string  `json:"client_user_role"`
	ClientUserStatus    string  `json:"client_user_status"`

	GroupIDs []uuid.UUID `json:"group_ids"`
	TeamIDs  []uuid.UUID `json:"team_ids"`

	ClientUserCreatedAt time.Time  `json:"client_user_created_at"`
	ClientUserUpdatedAt *time.Time `json:"client_user_updated_at,omitempty"`
}

func NewClientUserResponse(m *model.ClientUserModel, groupIDs, teamIDs []uuid.UUID) *ClientUserResponse {
	if m == nil {
		return nil
	}
	if groupIDs == nil {
		groupIDs = []uuid.UUID{}
	}
	if teamIDs == nil {
		teamIDs = []uuid.UUID{}
	}
	return &ClientUserResponse{
		ClientUserID:        m.ClientUserID,
		ClientUserClientID:  m.ClientUserClientID,
		ClientUserUserID:    m.ClientUserUserID,
		ClientUserEmail:     m.ClientUserEmail,
		ClientUserFirstName: m.ClientUserFirstName,
		ClientUserLastName:  m.ClientUserLastName,
		ClientUserPhone:     m.ClientUserPhone,
		ClientUserRole:      m.ClientUserRole,
		ClientUserStatus:    m.ClientUserStatus,
		GroupIDs:            groupIDs,
		TeamIDs:             teamIDs,
		ClientUserCreatedAt: m.ClientUserCreatedAt,
		ClientUserUpdatedAt: m.ClientUserUpdatedAt,
	}
}

func (r *UpdateClientUserRequest) ApplyToModel(m *model.ClientUserModel) {
	if r.FirstName != nil {
		m.ClientUserFirstName = *r.FirstName
	}
	if r.LastName != nil {
		m.ClientUserLastName = *r.LastName
	}
	if r.Phone != nil {
		m.ClientUserPhone = r.Phone
	}
	if r.Role != nil {
		m.ClientUserRole = *r.Role
	}
	if r.Status != nil {
		m.ClientUserStatus = *r.Status
	}
	now := time.Now()
	m.ClientUserUpdatedAt = &now
}
