// dto/invitations_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"apexdrive_backend/internals/features/clients/users/model"
)

/* ========== REQUEST DTOs ========== */

type CreateInvitationRequest struct {
	Email string `json:"email" form:"email" validate:"required,email"`
	Role  string `json:"role" form:"role" validate:"required,oneof=client_admin manager supervisor"`
}

/* ========== RESPONSE DTOs ========== */

type InvitationResponse struct {
	InvitationID        uuid.UUID  `json:"invitation_id"`
	InvitationClientID  uuid.UUID  `json:"invitation_client_id"`
	InvitationEmail     string     `json:"invitation_email"`
	InvitationRole      string     `json:"invitation_role"`
	InvitationStatus    string     `json:"invitation_status"`
	InvitationExpiresAt time.Time  `json:"invitation_expires_at"`
	InvitationCreatedAt time.Time  `json:"invitation_created_at"`
	InvitationUpdatedAt *time.Time `json:"invitation_updated_at,omitempty"`

	// RawToken is only populated on create/resend responses.
	RawToken string `json:"raw_token,omitempty"`
}

func NewInvitationResponse(m *model.InvitationModel, rawToken string) *InvitationResponse {
	if m == nil {
		return nil
	}
	return &InvitationResponse{
		InvitationID:        m.InvitationID,
		InvitationClientID:  m.InvitationClientID,
		InvitationEmail:     m.InvitationEmail,
		InvitationRole:      m.InvitationRole,
		InvitationStatus:    m.InvitationStatus,
		InvitationExpiresAt: m.InvitationExpiresAt,
		InvitationCreatedAt: m.InvitationCreatedAt,
		InvitationUpdatedAt: m.InvitationUpdatedAt,
		RawToken:            rawToken,
	}
}
