package storage

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Expired reports whether token is a JWT whose exp claim has passed. The
// signature is not verified — the client does not hold the signing secret;
// the backend remains the authority and will reject a forged token anyway.
// Tokens that do not parse as JWTs, or carry no exp claim, are treated as
// unexpired and left for the backend to judge.
func Expired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}
