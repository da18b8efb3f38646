package jwtx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewHS256_EmptySecret(t *testing.T) {
	_, err := NewHS256(nil)
	require.ErrorIs(t, err, ErrEmptySecret)

	_, err = NewHS256([]byte{})
	require.ErrorIs(t, err, ErrEmptySecret)
}

func TestHS256_SignAndVerify(t *testing.T) {
	hs, err := NewHS256([]byte("test-secret"))
	require.NoError(t, err)
	require.Equal(t, "HS256", hs.Alg())

	now := time.Now()
	claims := NewAccessClaims("alice", "finance-test", 30*time.Minute, now)

	token, err := hs.Sign(claims)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := hs.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "alice", parsed.Subject)
	require.Equal(t, "finance-test", parsed.Issuer)
	require.NotEmpty(t, parsed.ID, "jti should be set")
}

func TestHS256_Verify_WrongSecret(t *testing.T) {
	signer, err := NewHS256([]byte("secret-a"))
	require.NoError(t, err)

	verifier, err := NewHS256([]byte("secret-b"))
	require.NoError(t, err)

	token, err := signer.Sign(NewAccessClaims("alice", "finance-test", time.Minute, time.Now()))
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, ErrInvalidSig)
}

func TestHS256_Verify_Malformed(t *testing.T) {
	hs, err := NewHS256([]byte("test-secret"))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"empty token", ""},
		{"garbage", "not-a-jwt"},
		{"two segments", "aaaa.bbbb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := hs.Verify(tt.token)
			require.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestHS256_Verify_ExpiredStillParses(t *testing.T) {
	// Verify deliberately skips time-based claims; expiry is the caller's
	// decision via ValidateExpiryAt.
	hs, err := NewHS256([]byte("test-secret"))
	require.NoError(t, err)

	issued := time.Now().Add(-2 * time.Hour)
	token, err := hs.Sign(NewAccessClaims("alice", "finance-test", time.Minute, issued))
	require.NoError(t, err)

	claims, err := hs.Verify(token)
	require.NoError(t, err)
	require.ErrorIs(t, claims.ValidateExpiryAt(time.Now()), ErrExpired)
}

func TestClaims_ValidateExpiryAt(t *testing.T) {
	t0 := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	ttl := 30 * time.Minute
	claims := NewAccessClaims("alice", "finance-test", ttl, t0)

	tests := []struct {
		name string
		at   time.Time
		want error
	}{
		{"at issuance", t0, nil},
		{"mid window", t0.Add(ttl / 2), nil},
		{"one second before expiry", t0.Add(ttl - time.Second), nil},
		{"exactly at expiry", t0.Add(ttl), ErrExpired},
		{"after expiry", t0.Add(ttl + time.Second), ErrExpired},
		{"before issuance", t0.Add(-time.Second), ErrNotYetValid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := claims.ValidateExpiryAt(tt.at)
			if tt.want == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tt.want)
			}
		})
	}
}

func TestClaims_ValidateIssuer(t *testing.T) {
	claims := NewAccessClaims("alice", "finance-test", time.Minute, time.Now())

	require.NoError(t, claims.ValidateIssuer("finance-test"))
	require.NoError(t, claims.ValidateIssuer(""), "empty expectation enforces nothing")
	require.ErrorIs(t, claims.ValidateIssuer("someone-else"), ErrIssuer)
}

func TestClaims_ValidateSubject(t *testing.T) {
	withSubject := NewAccessClaims("alice", "finance-test", time.Minute, time.Now())
	require.NoError(t, withSubject.ValidateSubject())

	empty := NewAccessClaims("", "finance-test", time.Minute, time.Now())
	require.ErrorIs(t, empty.ValidateSubject(), ErrMissingSubject)
}
