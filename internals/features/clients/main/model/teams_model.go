// model/teams_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// TeamModel represents the `teams` table. Teams are the one entity the
// console hard-deletes.
type TeamModel struct {
	TeamID      uuid.UUID `json:"team_id" gorm:"column:team_id;type:uuid;default:gen_random_uuid();primaryKey"`
	TeamGroupID uuid.UUID `json:"team_group_id" gorm:"column:team_group_id;type:uuid;not null"` // FK -> groups(group_id)
	TeamName    string    `json:"team_name" gorm:"column:team_name;type:varchar(120);not null"`

	TeamCreatedAt time.Time  `json:"team_created_at" gorm:"column:team_created_at;not null;autoCreateTime"`
	TeamUpdatedAt *time.Time `json:"team_updated_at,omitempty" gorm:"column:team_updated_at"`
}

func (TeamModel) TableName() string {
	return "teams"
}
