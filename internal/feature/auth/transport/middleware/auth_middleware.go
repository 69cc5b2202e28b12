// Package middleware provides the request authorization gate for protected routes.
package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"todo_backend/internal/api"
	"todo_backend/internal/feature/auth/domain"
	"todo_backend/internal/feature/auth/domain/entity"
	"todo_backend/internal/platform/token"
)

// ContextUserKey is the gin context key the resolved user is stored under.
const ContextUserKey = "currentUser"

// cookieName is the session cookie the token travels in.
const cookieName = "token"

// TokenParser verifies a session token and returns its claims.
// Implemented by platform/token.Codec.
type TokenParser interface {
	Parse(tokenStr string) (*token.Claims, error)
}

// UserResolver resolves a token subject to a user record.
// Defined here by the consumer; implemented by the auth repository.
type UserResolver interface {
	FindByID(ctx context.Context, id string) (*entity.User, error)
}

// RequireAuth returns a Gin middleware that admits only authenticated requests.
// The token is read from the session cookie, falling back to the
// Authorization header. On success the resolved user is attached to the
// request context; on any failure the request is rejected with a single
// generic message, and the actual reason is logged server-side only.
func RequireAuth(tokens TokenParser, users UserResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Extract the token (cookie first, Bearer header as fallback)
		tokenStr, err := c.Cookie(cookieName)
		if err != nil || tokenStr == "" {
			if auth := c.GetHeader("Authorization"); strings.HasPrefix(auth, "Bearer ") {
				tokenStr = strings.TrimPrefix(auth, "Bearer ")
			}
		}
		if tokenStr == "" {
			reject(c, "missing token")
			return
		}

		// 2. Verify signature and expiry before trusting the payload
		claims, err := tokens.Parse(tokenStr)
		if err != nil {
			reject(c, err.Error())
			return
		}

		// 3. Resolve the subject; the user may have been deleted after issuance.
		// A directory failure is an internal error, not an authentication one.
		user, err := users.FindByID(c.Request.Context(), claims.Subject)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				reject(c, "subject not resolvable")
				return
			}
			internalError(c, err)
			return
		}

		// 4. Attach the identity for downstream handlers
		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// reject aborts the request with a generic 401.
// reason is for the server log only and never reaches the client.
func reject(c *gin.Context, reason string) {
	slog.Warn("request rejected", "reason", reason, "path", c.Request.URL.Path, "remote_addr", c.ClientIP())
	c.AbortWithStatusJSON(http.StatusUnauthorized, api.GenericResponse{
		Status:  api.StatusFail,
		Message: "not authenticated",
	})
}

// internalError aborts the request with a generic 500 when the user
// directory cannot be consulted. The cause stays in the server log.
func internalError(c *gin.Context, err error) {
	slog.Error("user lookup failed", "error", err, "path", c.Request.URL.Path, "remote_addr", c.ClientIP())
	c.AbortWithStatusJSON(http.StatusInternalServerError, api.GenericResponse{
		Status:  api.StatusError,
		Message: "something went wrong",
	})
}

// UserFromContext returns the user attached by RequireAuth.
func UserFromContext(c *gin.Context) (*entity.User, bool) {
	v, ok := c.Get(ContextUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*entity.User)
	return user, ok
}
