package jwtx

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// Signer is our interface for anything that can sign access-token claims.
type Signer interface {
	Alg() string
	Sign(Claims) (string, error)
}

// Verifier validates a JWT and gives you back the claims if it's legit.
// Expiry is NOT checked here; callers validate it against their own clock
// via Claims.ValidateExpiryAt so the rejection reason stays distinguishable.
type Verifier interface {
	Verify(token string) (Claims, error)
}

var (
	ErrEmptySecret = errors.New("jwtx: empty signing secret")

	ErrMalformed      = errors.New("jwtx: malformed token")
	ErrInvalidSig     = errors.New("jwtx: invalid signature")
	ErrIssuer         = errors.New("jwtx: issuer mismatch")
	ErrExpired        = errors.New("jwtx: token expired")
	ErrNotYetValid    = errors.New("jwtx: token not yet valid")
	ErrMissingSubject = errors.New("jwtx: missing subject claim")
)

// HS256 signs and verifies JWTs using a single shared HMAC-SHA256 secret.
// The secret is loaded once at startup and never rotated during a process
// lifetime.
type HS256 struct {
	secret []byte
}

// NewHS256 wraps the process-wide signing secret. An empty secret is a
// construction error so the absence is caught at startup, not per request.
func NewHS256(secret []byte) (*HS256, error) {
	if len(secret) == 0 {
		return nil, ErrEmptySecret
	}
	k := make([]byte, len(secret))
	copy(k, secret)
	return &HS256{secret: k}, nil
}

func (h *HS256) Alg() string { return jwt.SigningMethodHS256.Alg() }

// Sign produces a compact serialized JWT for the given claims.
func (h *HS256) Sign(c Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return token.SignedString(h.secret)
}

// Verify checks structure and signature and returns the parsed claims.
// Time-based claims are deliberately not validated here.
func (h *HS256) Verify(tokenStr string) (Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)

	token, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		return h.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return Claims{}, ErrInvalidSig
		default:
			return Claims{}, ErrMalformed
		}
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Claims{}, ErrMalformed
	}

	return *claims, nil
}
