package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/qbodev/qbo_concepts_app/internal/apperrors"
	portsrepo "github.com/qbodev/qbo_concepts_app/internal/core/ports/repositories"
	"github.com/qbodev/qbo_concepts_app/internal/utils"
)

// SessionCookieName is the cookie carrying the signed session id issued by
// the OAuth callback.
const SessionCookieName = "qbo_session"

const noRealmMessage = "No realm ID.  QBO calls only work if the accounting scope was passed!"

// SessionAuth validates the session cookie, checks the session exists and
// is bound to a realm, and places the session id into the request context.
// The concept handlers never see a request without a usable session.
func SessionAuth(sessionSecret string, sessions portsrepo.SessionRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		cookie, err := c.Cookie(SessionCookieName)
		if err != nil {
			logger.Warn("Session cookie missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"response": noRealmMessage})
			return
		}

		sessionID, err := utils.ParseSessionJWT(cookie, sessionSecret)
		if err != nil {
			logger.Warn("Invalid session cookie", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"response": noRealmMessage})
			return
		}

		session, err := sessions.FindSessionByID(c.Request.Context(), sessionID)
		if err != nil {
			if !errors.Is(err, apperrors.ErrNotFound) {
				logger.Error("Failed to load session", slog.String("error", err.Error()))
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"response": noRealmMessage})
			return
		}
		if session.Credentials.RealmID == "" {
			logger.Warn("Session has no realm id", slog.String("session_id", sessionID))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"response": noRealmMessage})
			return
		}

		ctx := context.WithValue(c.Request.Context(), sessionCtxKey, sessionID)
		enriched := logger.With(slog.String("session_id", sessionID), slog.String("realm_id", session.Credentials.RealmID))
		ctx = context.WithValue(ctx, loggerCtxKey, enriched)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
