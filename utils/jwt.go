package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"

	"github.com/asimmohammad/corptravel/config"
)

func secretKey() []byte {
	secret := config.AppConfig.JWTSecret
	if secret == "" {
		secret = "corptravel-dev"
	}
	return []byte(secret)
}

// GenerateToken creates a signed JWT with the traveler's email as subject and
// the resolved role as a claim. The token expires after the given duration.
func GenerateToken(email, role string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":  email,
		"role": role,
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// ValidateToken parses and validates a token string and returns the token if valid.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
}

// IdentityFromToken extracts the subject email and role claim from a valid token.
func IdentityFromToken(tokenString string) (email, role string, err error) {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return "", "", err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", "", errors.New("invalid token")
	}
	email, ok = claims["sub"].(string)
	if !ok || email == "" {
		return "", "", errors.New("token does not contain a valid 'sub' claim")
	}
	role, _ = claims["role"].(string)
	return email, role, nil
}
