package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const ServiceTokenTTL = 5 * time.Minute

type Claims struct {
	jwt.RegisteredClaims
	Scope string `json:"scope"`
}

// GenerateServiceToken signs a short-lived HS256 token the reassignment API
// accepts from this service.
func GenerateServiceToken(subject, secret string, now time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.UTC().Add(ServiceTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now.UTC()),
		},
		Scope: "reassignments:write",
	})

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}
