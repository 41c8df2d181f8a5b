// Package signer implements signed, time-limited opaque tokens. A token
// binds an arbitrary value (here: an email address) and a purpose salt
// under a secret key; expiry is enforced at verification time, nothing is
// stored server-side.
package signer

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("expired token")
)

type Signer struct {
	secret []byte

	// now is a test seam for the timestamp clock.
	now func() time.Time
}

func New(secret string) *Signer {
	return &Signer{
		secret: []byte(secret),
		now:    time.Now,
	}
}

var encoding = base64.RawURLEncoding

// Sign produces a token of the form value.timestamp.signature, each part
// base64url encoded, signed with a key derived from the secret and salt.
// Tokens signed with one salt never verify under another.
func (s *Signer) Sign(value, salt string) string {
	payload := encoding.EncodeToString([]byte(value)) +
		"." + encoding.EncodeToString([]byte(strconv.FormatInt(s.now().Unix(), 10)))

	return payload + "." + encoding.EncodeToString(s.mac(salt, payload))
}

// Verify checks the token signature and age and returns the signed value.
// A token is accepted up to and including maxAge; older tokens fail with
// ErrExpiredToken. Any structural or signature problem fails with
// ErrInvalidToken.
func (s *Signer) Verify(token, salt string, maxAge time.Duration) (string, error) {
	lastDot := strings.LastIndex(token, ".")
	if lastDot < 0 {
		return "", ErrInvalidToken
	}
	payload, sig := token[:lastDot], token[lastDot+1:]

	got, err := encoding.DecodeString(sig)
	if err != nil {
		return "", ErrInvalidToken
	}
	if !hmac.Equal(got, s.mac(salt, payload)) {
		return "", ErrInvalidToken
	}

	parts := strings.Split(payload, ".")
	if len(parts) != 2 {
		return "", ErrInvalidToken
	}

	rawValue, err := encoding.DecodeString(parts[0])
	if err != nil {
		return "", ErrInvalidToken
	}
	rawTS, err := encoding.DecodeString(parts[1])
	if err != nil {
		return "", ErrInvalidToken
	}
	ts, err := strconv.ParseInt(string(rawTS), 10, 64)
	if err != nil {
		return "", ErrInvalidToken
	}

	if s.now().Sub(time.Unix(ts, 0)) > maxAge {
		return "", ErrExpiredToken
	}

	return string(rawValue), nil
}

// mac derives a per-salt key from the secret and signs the payload,
// so distinct purposes get distinct signature domains.
func (s *Signer) mac(salt, payload string) []byte {
	kdf := hmac.New(sha256.New, s.secret)
	kdf.Write([]byte(salt))
	key := kdf.Sum(nil)

	m := hmac.New(sha256.New, key)
	m.Write([]byte(payload))
	return m.Sum(nil)
}
