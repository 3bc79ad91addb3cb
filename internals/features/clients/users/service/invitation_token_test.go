package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInvitationToken_RoundTrip(t *testing.T) {
	raw, hash, err := NewInvitationToken()
	require.NoError(t, err)
	assert.Len(t, raw, 64) // 32 bytes hex-encoded
	assert.NotEqual(t, raw, hash)

	assert.True(t, VerifyInvitationToken(hash, raw))
	assert.False(t, VerifyInvitationToken(hash, raw+"x"))
	assert.False(t, VerifyInvitationToken(hash, ""))
}

func TestNewInvitationToken_UniquePerCall(t *testing.T) {
	raw1, hash1, err := NewInvitationToken()
	require.NoError(t, err)
	raw2, hash2, err := NewInvitationToken()
	require.NoError(t, err)

	assert.NotEqual(t, raw1, raw2)
	assert.NotEqual(t, hash1, hash2)
	// a regenerated token invalidates the old raw value
	assert.False(t, VerifyInvitationToken(hash2, raw1))
}
