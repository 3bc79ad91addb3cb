// model/invitations_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// InvitationModel represents the `invitations` table. The raw token is
// only ever returned once, at (re)generation; the row stores a hash.
type InvitationModel struct {
	InvitationID       uuid.UUID `json:"invitation_id" gorm:"column:invitation_id;type:uuid;default:gen_random_uuid();primaryKey"`
	InvitationClientID uuid.UUID `json:"invitation_client_id" gorm:"column:invitation_client_id;type:uuid;not null"`

	InvitationEmail     string    `json:"invitation_email" gorm:"column:invitation_email;type:varchar(160);not null"`
	InvitationRole      string    `json:"invitation_role" gorm:"column:invitation_role;type:varchar(20);not null"`
	InvitationTokenHash string    `json:"-" gorm:"column:invitation_token_hash;type:text;not null"`
	InvitationExpiresAt time.Time `json:"invitation_expires_at" gorm:"column:invitation_expires_at;not null"`
	InvitationStatus    string    `json:"invitation_status" gorm:"column:invitation_status;type:varchar(20);not null;default:'pending'"`

	InvitationCreatedAt time.Time  `json:"invitation_created_at" gorm:"column:invitation_created_at;not null;autoCreateTime"`
	InvitationUpdatedAt *time.Time `json:"invitation_updated_at,omitempty" gorm:"column:invitation_updated_at"`
}

func (InvitationModel) TableName() string {
	return "invitations"
}
