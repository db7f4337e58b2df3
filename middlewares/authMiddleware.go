package middlewares

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"

	"civicpulse/models"
	authUtils "civicpulse/utils"
)

const (
	// AuthCookie carries the token for browser clients.
	AuthCookie = "auth_token"

	accountKey = "account"
)

// AuthMiddleware accepts a Bearer token or the auth_token cookie and stores the
// caller's account, user_id and role in the context.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		if authHeader := c.Request.Header.Get("Authorization"); authHeader != "" {
			// Extracting token from "Bearer <token>" format
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		} else if cookie, err := c.Cookie(AuthCookie); err == nil {
			tokenString = cookie
		}
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "No authorization token provided"})
			c.Abort()
			return
		}

		if jwtSecret == "" {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "JWT secret not configured"})
			c.Abort()
			return
		}

		account, err := authUtils.ParseToken(tokenString, jwtSecret)
		if err != nil {
			slog.Debug("token validation failed", "error", err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization token"})
			c.Abort()
			return
		}

		c.Set(accountKey, account)
		c.Set("user_id", account.ID)
		c.Set("role", account.Role)
		c.Next()
	}
}

// CurrentAccount returns the account AuthMiddleware stored.
func CurrentAccount(c *gin.Context) (models.Account, bool) {
	v, ok := c.Get(accountKey)
	if !ok {
		return models.Account{}, false
	}
	account, ok := v.(models.Account)
	return account, ok
}

// RequireRole lets only the listed portal roles through.
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		account, ok := CurrentAccount(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
			c.Abort()
			return
		}
		if !slices.Contains(roles, account.Role) {
			c.JSON(http.StatusForbidden, gin.H{"error": "This action is not available to the " + string(account.Role) + " portal"})
			c.Abort()
			return
		}
		c.Next()
	}
}
