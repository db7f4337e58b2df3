package authUtils

import (
	"errors"
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"

	"civicpulse/models"
)

var ErrInvalidToken = errors.New("invalid authorization token")

// GenerateToken signs an HS256 token carrying the account's id, name and portal role
func GenerateToken(account models.Account, secret string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("JWT_SECRET environment variable is not set")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": account.ID,
		"name":    account.Name,
		"email":   account.Email,
		"role":    string(account.Role),
		"iat":     account.CreatedAt.Unix(),
		"exp":     time.Now().Add(ttl).Unix(),
	})

	return token.SignedString([]byte(secret))
}

// ParseToken verifies tokenString and rebuilds the account it was issued for
func ParseToken(tokenString, secret string) (models.Account, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return models.Account{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return models.Account{}, ErrInvalidToken
	}
	userID, _ := claims["user_id"].(string)
	roleStr, _ := claims["role"].(string)
	role, ok := models.ParseRole(roleStr)
	if userID == "" || !ok {
		return models.Account{}, fmt.Errorf("%w: missing user_id or role claim", ErrInvalidToken)
	}

	account := models.Account{ID: userID, Role: role}
	account.Name, _ = claims["name"].(string)
	account.Email, _ = claims["email"].(string)
	if iat, ok := claims["iat"].(float64); ok {
		account.CreatedAt = time.Unix(int64(iat), 0).UTC()
	}
	return account, nil
}
