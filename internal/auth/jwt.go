package auth

import (
	"time"

	"inkwell/internal/apperr"

	"github.com/golang-jwt/jwt/v5"
)

// Claims binds a user id to the standard registered claims.
type Claims struct {
	jwt.RegisteredClaims
	UserID uint `json:"user_id"`
}

// GenerateToken signs an HS256 token for userID, valid for ttl.
func GenerateToken(userID uint, secret []byte, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
		UserID: userID,
	})

	return token.SignedString(secret)
}

// UserIDFromToken verifies signature and expiry and returns the embedded
// user id. Any failure maps to apperr.ErrUnauthenticated.
func UserIDFromToken(tokenString string, secret []byte) (uint, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return 0, apperr.ErrUnauthenticated
	}

	if !token.Valid || claims.UserID == 0 {
		return 0, apperr.ErrUnauthenticated
	}

	return claims.UserID, nil
}
