// service/membership.go
package service

import (
	"github.com/google/uuid"
)

// FilterTeamSelection drops every selected team whose parent group is no
// longer in the selected group set. The console cascades this in the edit
// dialog; the server re-applies it so a stale client cannot persist a team
// membership without its group.
func FilterTeamSelection(selectedGroups, selectedTeams []uuid.UUID, teamGroup map[uuid.UUID]uuid.UUID) []uuid.UUID {
	groupSet := make(map[uuid.UUID]struct{}, len(selectedGroups))
	for _, g := range selectedGroups {
		groupSet[g] = struct{}{}
	}

	out := make([]uuid.UUID, 0, len(selectedTeams))
	for _, t := range selectedTeams {
		g, known := teamGroup[t]
		if !known {
			continue // unknown team id, never persist
		}
		if _, ok := groupSet[g]; ok {
			out = append(out, t)
		}
	}
	return out
}

// Dedupe removes repeated ids while keeping the first occurrence order.
func Dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
