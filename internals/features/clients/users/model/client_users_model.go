// model/client_users_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// ClientUserModel represents the `client_users` table: an account's
// membership in a client with one role and a status.
type ClientUserModel struct {
	ClientUserID       uuid.UUID `json:"client_user_id" gorm:"column:client_user_id;type:uuid;default:gen_random_uuid();primaryKey"`
	ClientUserClientID uuid.UUID `json:"client_user_client_id" gorm:"column:client_user_client_id;type:uuid;not null"` // FK -> clients(client_id)
	ClientUserUserID   uuid.UUID `json:"client_user_user_id" gorm:"column:client_user_user_id;type:uuid;not null"`     // FK -> accounts(account_id)

	ClientUserEmail     string  `json:"client_user_email" gorm:"column:client_user_email;type:varchar(160);not null"`
	ClientUserFirstName string  `json:"client_user_first_name" gorm:"column:client_user_first_name;type:varchar(80);not null"`
	ClientUserLastName  string  `json:"client_user_last_name" gorm:"column:client_user_last_name;type:varchar(80);not null"`
	ClientUserPhone     *string `json:"client_user_phone,omitempty" gorm:"column:client_user_phone;type:varchar(40)"`

	ClientUserRole   string `json:"client_user_role" gorm:"column:client_user_role;type:varchar(20);not null"`
	ClientUserStatus string `json:"client_user_status" gorm:"column:client_user_status;type:varchar(20);not null;default:'pending'"`

	ClientUserCreatedAt time.Time  `json:"client_user_created_at" gorm:"column:client_user_created_at;not null;autoCreateTime"`
	ClientUserUpdatedAt *time.Time `json:"client_user_updated_at,omitempty" gorm:"column:client_user_updated_at"`
}

func (ClientUserModel) TableName() string {
	return "client_users"
}

// UserGroupModel is the `user_groups` join table: group memberships held
// by a client user, independent of role.
type UserGroupModel struct {
	UserGroupID           uuid.UUID `json:"user_group_id" gorm:"column:user_group_id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserGroupClientUserID uuid.UUID `json:"user_group_client_user_id" gorm:"column:user_group_client_user_id;type:uuid;not null"`
	UserGroupGroupID      uuid.UUID `json:"user_group_group_id" gorm:"column:user_group_group_id;type:uuid;not null"`

	UserGroupCreatedAt time.Time `json:"user_group_created_at" gorm:"column:user_group_created_at;not null;autoCreateTime"`
}

func (UserGroupModel) TableName() string {
	return "user_groups"
}

// UserTeamModel is the `user_teams` join table.
type UserTeamModel struct {
	UserTeamID           uuid.UUID `json:"user_team_id" gorm:"column:user_team_id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserTeamClientUserID uuid.UUID `json:"user_team_client_user_id" gorm:"column:user_team_client_user_id;type:uuid;not null"`
	UserTeamTeamID       uuid.UUID `json:"user_team_team_id" gorm:"column:user_team_team_id;type:uuid;not null"`

	UserTeamCreatedAt time.Time `json:"user_team_created_at" gorm:"column:user_team_created_at;not null;autoCreateTime"`
}

func (UserTeamModel) TableName() string {
	return "user_teams"
}
