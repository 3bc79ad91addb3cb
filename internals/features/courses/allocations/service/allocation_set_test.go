package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocationSet_AddWithinCapacity(t *testing.T) {
	s := NewAllocationSet(20, nil)
	clientA := uuid.New()
	clientB := uuid.New()

	require.NoError(t, s.Add(clientA, 12))
	require.NoError(t, s.Add(clientB, 5))
	assert.Equal(t, 17, s.Total())
	assert.Equal(t, 3, s.Remaining())
}

func TestAllocationSet_AddRejectedOverCapacity(t *testing.T) {
	s := NewAllocationSet(20, nil)
	clientA := uuid.New()
	clientB := uuid.New()
	clientC := uuid.New()
	require.NoError(t, s.Add(clientA, 12))
	require.NoError(t, s.Add(clientB, 5))

	err := s.Add(clientC, 5)
	require.Error(t, err)
	var capErr *CapacityError
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, 3, capErr.Remaining)
	assert.Contains(t, err.Error(), "3 seats remaining")

	// the set is untouched by a rejected add
	assert.Equal(t, 17, s.Total())
	assert.Len(t, s.Entries(), 2)
}

func TestAllocationSet_AddMergesSameClient(t *testing.T) {
	s := NewAllocationSet(20, nil)
	clientA := uuid.New()
	require.NoError(t, s.Add(clientA, 5))
	require.NoError(t, s.Add(clientA, 3))

	entries := s.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, 8, entries[0].Seats)
}

func TestAllocationSet_MergeStillBoundedByCapacity(t *testing.T) {
	s := NewAllocationSet(10, nil)
	clientA := uuid.New()
	require.NoError(t, s.Add(clientA, 8))
	err := s.Add(clientA, 3)
	require.Error(t, err)
	assert.Equal(t, 8, s.Total())
}

func TestAllocationSet_RemoveRecomputesRemaining(t *testing.T) {
	s := NewAllocationSet(20, nil)
	clientA := uuid.New()
	clientB := uuid.New()
	require.NoError(t, s.Add(clientA, 12))
	require.NoError(t, s.Add(clientB, 5))

	s.Remove(clientA)
	assert.Equal(t, 5, s.Total())
	assert.Equal(t, 15, s.Remaining())

	// freed seats are usable again
	require.NoError(t, s.Add(uuid.New(), 15))
}

func TestAllocationSet_RemoveAbsentClientIsNoop(t *testing.T) {
	s := NewAllocationSet(20, []Entry{{ClientID: uuid.New(), Seats: 4}})
	s.Remove(uuid.New())
	assert.Equal(t, 4, s.Total())
}

func TestNewAllocationSet_MergesAndSkipsEmptyEntries(t *testing.T) {
	clientA := uuid.New()
	s := NewAllocationSet(20, []Entry{
		{ClientID: clientA, Seats: 3},
		{ClientID: clientA, Seats: 2},
		{ClientID: uuid.New(), Seats: 0},
	})
	entries := s.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, 5, entries[0].Seats)
}

func TestAllocationSet_SingleSeatRemainingMessage(t *testing.T) {
	s := NewAllocationSet(5, nil)
	require.NoError(t, s.Add(uuid.New(), 4))
	err := s.Add(uuid.New(), 2)
	require.Error(t, err)
	assert.Equal(t, "only 1 seat remaining", err.Error())
}
