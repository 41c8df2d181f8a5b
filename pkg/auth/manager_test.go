package auth

import (
	"testing"
	"time"

	"github.com/arco-app/backend/internal/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() config.JWTConfig {
	return config.JWTConfig{
		AccessTokenTTL:  time.Minute,
		RefreshTokenTTL: 240 * time.Hour,
		SigningKey:      "signing-key",
	}
}

func TestNewManagerValidation(t *testing.T) {
	_, err := NewManager(config.JWTConfig{})
	assert.Error(t, err)

	cfg := testConfig()
	cfg.SigningKey = ""
	_, err = NewManager(cfg)
	assert.Error(t, err)
}

func TestJWTRoundTrip(t *testing.T) {
	m, err := NewManager(testConfig())
	require.NoError(t, err)

	token, ttl, err := m.NewJWT(42)
	require.NoError(t, err)
	assert.Equal(t, time.Minute, ttl)

	userID, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestParseRejectsForeignToken(t *testing.T) {
	m, err := NewManager(testConfig())
	require.NoError(t, err)

	other := testConfig()
	other.SigningKey = "another-key"
	m2, err := NewManager(other)
	require.NoError(t, err)

	token, _, err := m2.NewJWT(42)
	require.NoError(t, err)

	_, err = m.Parse(token)
	assert.Error(t, err)
}

func TestNewRefreshToken(t *testing.T) {
	m, err := NewManager(testConfig())
	require.NoError(t, err)

	token, ttl, err := m.NewRefreshToken()
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, token)
	assert.Equal(t, 240*time.Hour, ttl)
}
