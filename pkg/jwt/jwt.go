package jwt

import (
	"fmt"

	jwtlib "github.com/golang-jwt/jwt/v5"

	"monitor-srv/pkg/scope"
)

// Verify implements scope.Manager. The signature, expiry, issuer, and
// audience all have to check out before the claims become a payload.
func (m *managerImpl) Verify(token string) (scope.Payload, error) {
	parsed, err := jwtlib.ParseWithClaims(token, &Claims{}, func(t *jwtlib.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwtlib.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secretKey, nil
	})
	if err != nil {
		return scope.Payload{}, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return scope.Payload{}, fmt.Errorf("invalid token")
	}

	if m.issuer != "" && claims.Issuer != m.issuer {
		return scope.Payload{}, fmt.Errorf("unexpected issuer %q", claims.Issuer)
	}
	if len(m.audience) > 0 && !audienceMatch(claims.Audience, m.audience) {
		return scope.Payload{}, fmt.Errorf("audience mismatch")
	}

	return scope.Payload{
		UserID:   claims.Subject,
		Subject:  claims.Subject,
		Username: claims.Email,
		Email:    claims.Email,
		Role:     claims.Role,
		Groups:   claims.Groups,
	}, nil
}

func audienceMatch(got jwtlib.ClaimStrings, want []string) bool {
	for _, w := range want {
		for _, g := range got {
			if g == w {
				return true
			}
		}
	}
	return false
}
