package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/qbodev/qbo_concepts_app/internal/core/domain"
	portsrepo "github.com/qbodev/qbo_concepts_app/internal/core/ports/repositories"
	portssvc "github.com/qbodev/qbo_concepts_app/internal/core/ports/services"
	"github.com/qbodev/qbo_concepts_app/internal/middleware"
	"github.com/qbodev/qbo_concepts_app/internal/utils"
	"github.com/qbodev/qbo_concepts_app/pkg/config"
)

// stateCookieName holds the OAuth state between the redirect and the
// callback.
const stateCookieName = "qbo_oauth_state"

// connectHandler implements the OAuth2 authorization-code redirect pair.
type connectHandler struct {
	cfg         *config.Config
	oauthConfig *oauth2.Config
	sessions    portsrepo.SessionRepository
	clock       portssvc.Clock
}

func newConnectHandler(cfg *config.Config, oauthConfig *oauth2.Config, sessions portsrepo.SessionRepository, clock portssvc.Clock) *connectHandler {
	return &connectHandler{cfg: cfg, oauthConfig: oauthConfig, sessions: sessions, clock: clock}
}

// connect godoc
// @Summary Start the QuickBooks OAuth flow
// @Description Redirects the browser to Intuit's authorization endpoint with the accounting scope.
// @Tags oauth
// @Success 307
// @Router /connect [get]
func (h *connectHandler) connect(c *gin.Context) {
	state := utils.RandomAlphanumeric(32)
	c.SetCookie(stateCookieName, state, 600, "/", "", h.cfg.IsProduction, true)
	c.Redirect(http.StatusTemporaryRedirect, h.oauthConfig.AuthCodeURL(state))
}

// callback godoc
// @Summary OAuth callback
// @Description Exchanges the authorization code for a token pair, creates a session bound to the granted realm, and sets the session cookie.
// @Tags oauth
// @Produce json
// @Param code query string true "Authorization code"
// @Param realmId query string false "Company (realm) id; present when the accounting scope was granted"
// @Param state query string true "Opaque state from /connect"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string "State mismatch or missing code"
// @Failure 502 {object} map[string]string "Code exchange failed"
// @Router /callback [get]
func (h *connectHandler) callback(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	expectedState, err := c.Cookie(stateCookieName)
	if err != nil || expectedState == "" || c.Query("state") != expectedState {
		logger.Warn("OAuth state mismatch on callback")
		c.JSON(http.StatusBadRequest, gin.H{"response": "State mismatch, restart the flow from /connect"})
		return
	}
	c.SetCookie(stateCookieName, "", -1, "/", "", h.cfg.IsProduction, true)

	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"response": "Missing authorization code"})
		return
	}

	token, err := h.oauthConfig.Exchange(ctx, code)
	if err != nil {
		logger.Error("Failed to exchange authorization code", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, gin.H{"response": "Failed to exchange authorization code"})
		return
	}

	// realmId is only present when the accounting scope was granted; the
	// session is still created so the middleware can explain what's
	// missing.
	realmID := c.Query("realmId")
	now := h.clock.Now()
	session := domain.Session{
		SessionID: uuid.NewString(),
		Credentials: domain.Credentials{
			RealmID:      realmID,
			AccessToken:  token.AccessToken,
			RefreshToken: token.RefreshToken,
		},
		CreatedAt: now,
	}
	if err := h.sessions.SaveSession(ctx, session); err != nil {
		logger.Error("Failed to persist session", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"response": "Failed"})
		return
	}

	cookie, err := utils.GenerateSessionJWT(session.SessionID, h.cfg.SessionSecret, h.cfg.SessionExpiry, h.cfg.SessionIssuer)
	if err != nil {
		logger.Error("Failed to sign session cookie", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"response": "Failed"})
		return
	}
	c.SetCookie(middleware.SessionCookieName, cookie, int(h.cfg.SessionExpiry.Seconds()), "/", "", h.cfg.IsProduction, true)

	logger.Info("Company connected", slog.String("session_id", session.SessionID), slog.String("realm_id", realmID))
	c.JSON(http.StatusOK, gin.H{"response": "Connected. Call the /api/v1/concepts endpoints."})
}

// registerConnectRoutes registers the public OAuth redirect pair.
func registerConnectRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer, oauthConfig *oauth2.Config) {
	h := newConnectHandler(cfg, oauthConfig, services.Sessions, portssvc.SystemClock{})
	r.GET("/connect", h.connect)
	r.GET("/callback", h.callback)
}
