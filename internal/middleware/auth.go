package middleware

import (
	"errors"
	"log"
	"net/http"

	"inkwell/internal/apperr"
	"inkwell/internal/auth"
	"inkwell/internal/repository"

	"github.com/gin-gonic/gin"
)

const CheckUserKey = "user"
const UserIDKey = "user_id"

// TokenCookie is the cookie carrying the signed credential.
const TokenCookie = "token"

// AuthRequired validates the token cookie and attaches the acting identity
// to the context. Missing, malformed, expired or badly signed tokens all
// short-circuit with 401 before any content operation runs.
func AuthRequired(secret []byte, users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(TokenCookie)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "User not authenticated",
			})
			return
		}

		userID, err := auth.UserIDFromToken(token, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Invalid token",
			})
			return
		}

		// The id must still resolve to a live account. A store failure is
		// not an authentication failure and must not read as one.
		user, err := users.FindByID(c.Request.Context(), userID)
		if err != nil {
			if !errors.Is(err, apperr.ErrNotFound) {
				log.Printf("auth middleware: load user %d: %v", userID, err)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"success": false,
					"message": "Something went wrong",
				})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "User not authenticated",
			})
			return
		}

		c.Set(UserIDKey, userID)
		c.Set(CheckUserKey, user)
		c.Next()
	}
}

// ActingUserID returns the authenticated user id set by AuthRequired.
func ActingUserID(c *gin.Context) uint {
	return c.MustGet(UserIDKey).(uint)
}
