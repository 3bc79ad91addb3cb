// model/accounts_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountModel is a read-only view of the `accounts` table owned by the
// identity service. The console only looks accounts up by email when
// adding a user to a client.
type AccountModel struct {
	AccountID    uuid.UUID `json:"account_id" gorm:"column:account_id;type:uuid;primaryKey"`
	AccountEmail string    `json:"account_email" gorm:"column:account_email;type:varchar(160);not null;unique"`
	AccountName  string    `json:"account_name" gorm:"column:account_name;type:varchar(160);not null"`

	AccountCreatedAt time.Time `json:"account_created_at" gorm:"column:account_created_at;not null"`
}

func (AccountModel) TableName() string {
	return "accounts"
}
