package handlers

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// InviteTTL is how long a household invitation stays valid
const InviteTTL = 7 * 24 * time.Hour

// InviteClaims are the claims of a household invitation token. The subject
// is the invited user.
type InviteClaims struct {
	HouseholdID string `json:"householdId"`
	jwt.RegisteredClaims
}

// SignInvite signs an invitation for userID to join householdID
func SignInvite(secret []byte, householdID, userID string, now time.Time) (string, error) {
	claims := InviteClaims{
		HouseholdID: householdID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(InviteTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// ParseInvite validates an invitation token and returns its claims
func ParseInvite(secret []byte, token string) (*InviteClaims, error) {
	claims := &InviteClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}
	return claims, nil
}
