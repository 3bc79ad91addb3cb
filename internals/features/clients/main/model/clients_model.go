// model/clients_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// ClientModel represents the `clients` table: one customer organization.
type ClientModel struct {
	ClientID     uuid.UUID  `json:"client_id" gorm:"column:client_id;type:uuid;default:gen_random_uuid();primaryKey"`
	ClientName   string     `json:"client_name" gorm:"column:client_name;type:varchar(120);not null"`
	ClientStatus string     `json:"client_status" gorm:"column:client_status;type:varchar(20);not null;default:'active'"`

	ClientCreatedAt time.Time  `json:"client_created_at" gorm:"column:client_created_at;not null;autoCreateTime"`
	ClientUpdatedAt *time.Time `json:"client_updated_at,omitempty" gorm:"column:client_updated_at"`
	ClientDeletedAt *time.Time `json:"client_deleted_at,omitempty" gorm:"column:client_deleted_at"`
}

func (ClientModel) TableName() string {
	return "clients"
}
