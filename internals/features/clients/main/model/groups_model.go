// model/groups_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// GroupModel represents the `groups` table. One group per client is
// conventionally flagged default; the flag is advisory, not enforced.
type GroupModel struct {
	GroupID          uuid.UUID `json:"group_id" gorm:"column:group_id;type:uuid;default:gen_random_uuid();primaryKey"`
	GroupClientID    uuid.UUID `json:"group_client_id" gorm:"column:group_client_id;type:uuid;not null"` // FK -> clients(client_id)
	GroupName        string    `json:"group_name" gorm:"column:group_name;type:varchar(120);not null"`
	GroupDescription *string   `json:"group_description,omitempty" gorm:"column:group_description;type:text"`
	GroupIsDefault   bool      `json:"group_is_default" gorm:"column:group_is_default;not null;default:false"`

	GroupCreatedAt time.Time  `json:"group_created_at" gorm:"column:group_created_at;not null;autoCreateTime"`
	GroupUpdatedAt *time.Time `json:"group_updated_at,omitempty" gorm:"column:group_updated_at"`
	GroupDeletedAt *time.Time `json:"group_deleted_at,omitempty" gorm:"column:group_deleted_at"`
}

func (GroupModel) TableName() string {
	return "groups"
}
