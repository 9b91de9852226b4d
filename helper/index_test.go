package helper

import (
	"fsdine_restaurant/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("expo-secret")
	require.NoError(t, err)

	assert.True(t, CheckPasswordHash("expo-secret", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestAccessTokenRoundTrip(t *testing.T) {
	claim := model.TokenClaim{AdminId: 7, Email: "expo@fsdine.test", Role: "expo"}

	token, expiresAt, err := GenerateAccessToken(claim, "secret", time.Hour)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	parsed, err := ParseToken(token, "secret")
	require.NoError(t, err)
	got, err := ClaimFromToken(parsed)
	require.NoError(t, err)
	assert.Equal(t, claim, got)

	_, err = ParseToken(token, "other-secret")
	assert.Error(t, err)
}

func TestExpiredAccessToken(t *testing.T) {
	token, _, err := GenerateAccessToken(model.TokenClaim{AdminId: 1}, "secret", -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(token, "secret")
	assert.Error(t, err)
}
