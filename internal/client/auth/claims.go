package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Expiry decodes the exp claim of a JWT without verifying its signature.
// It is display-only (the CLI status line); request flow never inspects
// token claims, expiry is discovered via 401s.
func Expiry(token string) (time.Time, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, err
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, jwt.ErrTokenRequiredClaimMissing
	}
	return exp.Time, nil
}
