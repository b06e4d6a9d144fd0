package auth

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour
)

func signToken(userID, role, secret string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// generateTokenPair issues a short-lived access token and a rotating refresh
// token, each signed with its own secret.
func generateTokenPair(userID, role string) (accessToken, refreshToken string, err error) {
	accessToken, err = signToken(userID, role, os.Getenv("JWT_ACCESS_SECRET"), accessTokenTTL)
	if err != nil {
		return "", "", err
	}
	refreshToken, err = signToken(userID, role, os.Getenv("JWT_REFRESH_SECRET"), refreshTokenTTL)
	if err != nil {
		return "", "", err
	}
	return accessToken, refreshToken, nil
}
