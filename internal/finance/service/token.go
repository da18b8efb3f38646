package service

import (
	"time"

	"github.com/Leonelvm1/FinanceApp/internal/finance/domain"
	"github.com/Leonelvm1/FinanceApp/pkg/jwtx"
)

// TokenService issues and validates the time-bounded identity tokens that
// gate every protected operation. The signing secret is fixed for the
// process lifetime; tokens carry only the subject, never permissions, so
// authorization is always re-derived from stored state.
type TokenService struct {
	Signer   jwtx.Signer
	Verifier jwtx.Verifier
	Issuer   string
	TTL      time.Duration
}

// Issue signs a claim set {sub: handle, exp: now + TTL} and returns the
// serialized bearer token.
func (s *TokenService) Issue(handle string, now time.Time) (domain.AccessToken, error) {
	claims := jwtx.NewAccessClaims(handle, s.Issuer, s.TTL, now)

	token, err := s.Signer.Sign(claims)
	if err != nil {
		return domain.AccessToken{}, err
	}

	return domain.AccessToken{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: s.TTL,
	}, nil
}

// Validate verifies signature and structure, then checks expiry against
// the supplied instant and requires a subject claim. The distinct jwtx
// rejection reasons (malformed, bad signature, expired, missing subject)
// surface unchanged for logging and tests; callers collapse them all into
// a single unauthenticated outcome externally.
func (s *TokenService) Validate(token string, now time.Time) (string, error) {
	claims, err := s.Verifier.Verify(token)
	if err != nil {
		return "", err
	}

	if err := claims.ValidateIssuer(s.Issuer); err != nil {
		return "", err
	}
	if err := claims.ValidateExpiryAt(now); err != nil {
		return "", err
	}
	if err := claims.ValidateSubject(); err != nil {
		return "", err
	}

	return claims.Subject, nil
}
