package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"rental-chat-service/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	ContextUserID = "user_id"
	ContextEmail  = "email"
)

type AuthMiddleware struct {
	jwtSecret string
}

func NewAuthMiddleware(jwtSecret string) *AuthMiddleware {
	return &AuthMiddleware{
		jwtSecret: jwtSecret,
	}
}

// RequireAuth validates the bearer token and stores user_id in the context.
// Browsers cannot set headers on a websocket handshake, so ?token= is accepted too.
func (am *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			abortUnauthorized(c, "authorization header is required", "")
			return
		}

		userID, email, err := am.parse(tokenString)
		if err != nil {
			slog.Debug("Rejected token", "path", c.Request.URL.Path, "error", err)
			abortUnauthorized(c, "invalid token", err.Error())
			return
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextEmail, email)
		c.Next()
	}
}

func (am *AuthMiddleware) parse(tokenString string) (string, string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(am.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		if err == nil {
			err = errors.New("token is not valid")
		}
		return "", "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", errors.New("unable to parse token claims")
	}

	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return "", "", errors.New("user_id claim must be a non-empty string")
	}
	email, _ := claims["email"].(string)
	return userID, email, nil
}

func bearerToken(c *gin.Context) string {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	}
	return c.Query("token")
}

func abortUnauthorized(c *gin.Context, message, details string) {
	c.Set("error", message)
	c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
		Code:    http.StatusUnauthorized,
		Message: message,
		Details: details,
	})
}

// UserID returns the authenticated user set by RequireAuth.
func UserID(c *gin.Context) string {
	return c.GetString(ContextUserID)
}
