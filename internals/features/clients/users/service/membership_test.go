package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestFilterTeamSelection_DropsTeamsOfRemovedGroup(t *testing.T) {
	groupA := uuid.New()
	groupB := uuid.New()
	teamA1 := uuid.New()
	teamA2 := uuid.New()
	teamB1 := uuid.New()
	teamGroup := map[uuid.UUID]uuid.UUID{
		teamA1: groupA,
		teamA2: groupA,
		teamB1: groupB,
	}

	// group A removed from the selection: both of its teams must go too
	got := FilterTeamSelection(
		[]uuid.UUID{groupB},
		[]uuid.UUID{teamA1, teamB1, teamA2},
		teamGroup,
	)
	assert.Equal(t, []uuid.UUID{teamB1}, got)
}

func TestFilterTeamSelection_KeepsAllWhenGroupsPresent(t *testing.T) {
	groupA := uuid.New()
	teamA1 := uuid.New()
	teamA2 := uuid.New()
	teamGroup := map[uuid.UUID]uuid.UUID{teamA1: groupA, teamA2: groupA}

	got := FilterTeamSelection([]uuid.UUID{groupA}, []uuid.UUID{teamA1, teamA2}, teamGroup)
	assert.Equal(t, []uuid.UUID{teamA1, teamA2}, got)
}

func TestFilterTeamSelection_DropsUnknownTeams(t *testing.T) {
	groupA := uuid.New()
	got := FilterTeamSelection([]uuid.UUID{groupA}, []uuid.UUID{uuid.New()}, map[uuid.UUID]uuid.UUID{})
	assert.Empty(t, got)
}

func TestDedupe_KeepsFirstOccurrenceOrder(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	got := Dedupe([]uuid.UUID{a, b, a, b, a})
	assert.Equal(t, []uuid.UUID{a, b}, got)
}
