// service/default_group.go
package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"apexdrive_backend/internals/features/clients/main/model"
)

var ErrNoGroups = errors.New("client has no groups")

// PickDefault selects the client's conventional default group: the first
// default-flagged group, else the oldest. The exactly-one-default rule is
// advisory, so ties resolve deterministically by creation time.
func PickDefault(groups []model.GroupModel) (*model.GroupModel, error) {
	if len(groups) == 0 {
		return nil, ErrNoGroups
	}
	var oldest *model.GroupModel
	for i := range groups {
		g := &groups[i]
		if g.GroupDeletedAt != nil {
			continue
		}
		if g.GroupIsDefault {
			return g, nil
		}
		if oldest == nil || g.GroupCreatedAt.Before(oldest.GroupCreatedAt) {
			oldest = g
		}
	}
	if oldest == nil {
		return nil, ErrNoGroups
	}
	return oldest, nil
}

// DefaultGroupID loads the client's groups and applies PickDefault.
func DefaultGroupID(db *gorm.DB, clientID uuid.UUID) (uuid.UUID, error) {
	var groups []model.GroupModel
	if err := db.
		Where("group_client_id = ? AND group_deleted_at IS NULL", clientID).
		Order("group_created_at ASC").
		Find(&groups).Error; err != nil {
		return uuid.Nil, err
	}
	g, err := PickDefault(groups)
	if err != nil {
		return uuid.Nil, err
	}
	return g.GroupID, nil
}
