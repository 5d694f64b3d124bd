package middleware

import (
	"net/http"
	"strings"

	"edusync_gateway/internal/model"
	"edusync_gateway/internal/service"
	"edusync_gateway/internal/util"
	"edusync_gateway/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const sessionContextKey = "session"

// SessionMiddleware resolves the bearer session id into the stored session
// and rejects requests whose backing token has expired. Expired sessions
// are discarded so the next request fails fast at the lookup.
func SessionMiddleware(store service.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			util.Unauthorized(c)
			c.Abort()
			return
		}
		sessionID := strings.TrimPrefix(header, "Bearer ")

		sess, err := store.Get(c.Request.Context(), sessionID)
		if err != nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := util.DecodeToken(sess.Token)
		if err != nil || claims.Expired() {
			if clearErr := store.Clear(c.Request.Context(), sessionID); clearErr != nil {
				logger.Log.Warn("failed to discard expired session",
					zap.String("sessionId", sessionID),
					zap.Error(clearErr))
			}
			util.Error(c, http.StatusUnauthorized, "Session expired, please log in again")
			c.Abort()
			return
		}

		c.Set(sessionContextKey, sess)
		c.Next()
	}
}

// RoleMiddleware allows only the listed roles past.
func RoleMiddleware(roles ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := GetSession(c)
		if sess == nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}
		for _, role := range roles {
			if sess.Role == role {
				c.Next()
				return
			}
		}
		util.Forbidden(c, "insufficient role")
		c.Abort()
	}
}

// GetSession returns the session set by SessionMiddleware, or nil on
// unauthenticated routes.
func GetSession(c *gin.Context) *model.Session {
	v, ok := c.Get(sessionContextKey)
	if !ok {
		return nil
	}
	sess, ok := v.(*model.Session)
	if !ok {
		return nil
	}
	return sess
}
