package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"bank-docs-api/internal/domain/user"
	"bank-docs-api/internal/infrastructure/jwt"
	"bank-docs-api/internal/interface/api/rest/dto"
)

const (
	CtxUserRole = "userRole"
	CtxUserID   = "userID"
)

func AuthMiddleware(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				dto.Err("missing Authorization header"),
			)
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenStr == authHeader {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				dto.Err("invalid token format"),
			)
			return
		}

		claims, err := jwtService.ValidateToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				dto.Err("invalid token"),
			)
			return
		}

		id, err := strconv.ParseInt(claims.UserID, 10, 64)
		role, ok := user.ParseRole(claims.Role)
		if err != nil || id <= 0 || !ok {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				dto.Err("invalid token claims"),
			)
			return
		}

		c.Set(CtxUserID, user.ID(id))
		c.Set(CtxUserRole, role)

		c.Next()
	}
}

// ActorID reads the authenticated user id set by AuthMiddleware.
func ActorID(c *gin.Context) (user.ID, bool) {
	v, exists := c.Get(CtxUserID)
	if !exists {
		return 0, false
	}
	id, ok := v.(user.ID)

	return id, ok
}

// ActorRole reads the authenticated role set by AuthMiddleware.
func ActorRole(c *gin.Context) (user.Role, bool) {
	v, exists := c.Get(CtxUserRole)
	if !exists {
		return "", false
	}
	role, ok := v.(user.Role)

	return role, ok
}
