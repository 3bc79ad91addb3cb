package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckSeat_AllowsWhileSeatsRemain(t *testing.T) {
	assert.NoError(t, CheckSeat(0, 5))
	assert.NoError(t, CheckSeat(4, 5))
}

func TestCheckSeat_RejectsAtLimit(t *testing.T) {
	err := CheckSeat(5, 5)
	require.Error(t, err)
	var limitErr *SeatLimitError
	require.ErrorAs(t, err, &limitErr)
	assert.Equal(t, 5, limitErr.SeatsAllocated)
}

func TestCheckSeat_RejectsWithoutAllocation(t *testing.T) {
	err := CheckSeat(0, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no seats allocated")
}

func TestSeatLimitError_SingularMessage(t *testing.T) {
	err := CheckSeat(1, 1)
	require.Error(t, err)
	assert.Equal(t, "the client's 1 allocated seat is already taken", err.Error())
}
