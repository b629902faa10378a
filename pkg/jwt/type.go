package jwt

import (
	jwtlib "github.com/golang-jwt/jwt/v5"
)

// Config holds token verification settings. Issuer and Audience are enforced
// when set.
type Config struct {
	SecretKey string
	Issuer    string
	Audience  []string
}

type managerImpl struct {
	secretKey []byte
	issuer    string
	audience  []string
}

// Claims is the claim set the auth service puts in its tokens.
type Claims struct {
	Email  string   `json:"email"`
	Role   string   `json:"role"`
	Groups []string `json:"groups,omitempty"`
	jwtlib.RegisteredClaims
}
