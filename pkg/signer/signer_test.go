package signer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret = "test-secret-key"
	testSalt   = "email-confirm"
	maxAge     = 24 * time.Hour
)

func TestSignVerifyRoundTrip(t *testing.T) {
	s := New(testSecret)

	for _, email := range []string{"a@x.com", "first.last+tag@example.org", ""} {
		token := s.Sign(email, testSalt)

		got, err := s.Verify(token, testSalt, maxAge)
		require.NoError(t, err)
		assert.Equal(t, email, got)
	}
}

func TestVerifyWrongSalt(t *testing.T) {
	s := New(testSecret)

	token := s.Sign("a@x.com", "email-confirm")

	_, err := s.Verify(token, "password-reset", maxAge)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyWrongSecret(t *testing.T) {
	token := New("one secret").Sign("a@x.com", testSalt)

	_, err := New("another secret").Verify(token, testSalt, maxAge)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyTampered(t *testing.T) {
	s := New(testSecret)

	token := s.Sign("a@x.com", testSalt)

	for _, bad := range []string{
		"",
		"garbage",
		"a.b.c",
		token[:len(token)-2],
		"x" + token,
		token + ".extra",
	} {
		_, err := s.Verify(bad, testSalt, maxAge)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", bad)
	}
}

func TestVerifyExpiry(t *testing.T) {
	signedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	s := New(testSecret)
	s.now = func() time.Time { return signedAt }
	token := s.Sign("a@x.com", testSalt)

	// Valid at exactly maxAge.
	s.now = func() time.Time { return signedAt.Add(maxAge) }
	got, err := s.Verify(token, testSalt, maxAge)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", got)

	// Expired one second past maxAge.
	s.now = func() time.Time { return signedAt.Add(maxAge + time.Second) }
	_, err = s.Verify(token, testSalt, maxAge)
	assert.ErrorIs(t, err, ErrExpiredToken)
}
