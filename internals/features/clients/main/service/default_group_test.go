package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"apexdrive_backend/internals/features/clients/main/model"
)

func group(name string, isDefault bool, createdAt time.Time) model.GroupModel {
	return model.GroupModel{
		GroupID:        uuid.New(),
		GroupClientID:  uuid.New(),
		GroupName:      name,
		GroupIsDefault: isDefault,
		GroupCreatedAt: createdAt,
	}
}

func TestPickDefault_PrefersFlaggedGroup(t *testing.T) {
	now := time.Now()
	groups := []model.GroupModel{
		group("Operations", false, now.Add(-2*time.Hour)),
		group("Default", true, now),
	}
	g, err := PickDefault(groups)
	require.NoError(t, err)
	assert.Equal(t, "Default", g.GroupName)
}

func TestPickDefault_FallsBackToOldest(t *testing.T) {
	now := time.Now()
	groups := []model.GroupModel{
		group("Newer", false, now),
		group("Oldest", false, now.Add(-3*time.Hour)),
		group("Middle", false, now.Add(-1*time.Hour)),
	}
	g, err := PickDefault(groups)
	require.NoError(t, err)
	assert.Equal(t, "Oldest", g.GroupName)
}

func TestPickDefault_SkipsDeletedGroups(t *testing.T) {
	now := time.Now()
	deleted := group("Gone", true, now.Add(-4*time.Hour))
	deleted.GroupDeletedAt = &now
	groups := []model.GroupModel{
		deleted,
		group("Alive", false, now),
	}
	g, err := PickDefault(groups)
	require.NoError(t, err)
	assert.Equal(t, "Alive", g.GroupName)
}

func TestPickDefault_NoGroups(t *testing.T) {
	_, err := PickDefault(nil)
	assert.ErrorIs(t, err, ErrNoGroups)
}
