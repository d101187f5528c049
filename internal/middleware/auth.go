package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"skill-match-api/internal/domain"
	"skill-match-api/internal/response"
)

const (
	ctxUserIDKey = "user_id"
	ctxRoleKey   = "user_role"
)

// RequireAuth validates the bearer token from the Authorization header and
// places the caller's id and role in the request context. Every mutating
// route runs behind it; reads stay public.
func RequireAuth(secret string) gin.HandlerFunc {
	key := []byte(secret)
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.SendError(c, http.StatusUnauthorized, "missing authorization header")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			response.SendError(c, http.StatusUnauthorized, "invalid authorization header format")
			return
		}

		userID, role, err := parseToken(parts[1], key)
		if err != nil {
			response.SendError(c, http.StatusUnauthorized, "invalid token")
			return
		}

		c.Set(ctxUserIDKey, userID)
		c.Set(ctxRoleKey, role)
		c.Next()
	}
}

func parseToken(tokenString string, key []byte) (uuid.UUID, domain.Role, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return key, nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, "", jwt.ErrTokenInvalidClaims
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, "", jwt.ErrTokenInvalidClaims
	}

	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, "", jwt.ErrTokenInvalidClaims
	}

	role, _ := claims["role"].(string)
	return userID, domain.Role(role), nil
}

// GetUserID returns the authenticated user's id from the gin context
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

// GetUserRole returns the authenticated user's role from the gin context
func GetUserRole(c *gin.Context) domain.Role {
	v, exists := c.Get(ctxRoleKey)
	if !exists {
		return ""
	}
	role, _ := v.(domain.Role)
	return role
}
