package qbo

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/oauth2"

	portssvc "github.com/qbodev/qbo_concepts_app/internal/core/ports/services"
)

// ScopeAccounting is the OAuth scope that unlocks the accounting API.
// Without it every company call fails, hence the realm-id guard upstream.
const ScopeAccounting = "com.intuit.quickbooks.accounting"

// NewOAuthConfig builds the oauth2 config for Intuit's authorization
// server. Endpoints are injected so the tests (and any future environment
// split) can point elsewhere.
func NewOAuthConfig(clientID, clientSecret, redirectURL, authURL, tokenURL string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURL,
		Scopes:       []string{ScopeAccounting},
		Endpoint: oauth2.Endpoint{
			AuthURL:  authURL,
			TokenURL: tokenURL,
		},
	}
}

// TokenRefresher exchanges refresh tokens against Intuit's token
// endpoint. Intuit rotates the refresh token on every grant, so callers
// must store both returned tokens.
type TokenRefresher struct {
	config *oauth2.Config
}

var _ portssvc.TokenRefresher = (*TokenRefresher)(nil)

// NewTokenRefresher creates a refresher bound to the given OAuth config.
func NewTokenRefresher(config *oauth2.Config) *TokenRefresher {
	return &TokenRefresher{config: config}
}

func (r *TokenRefresher) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	// An already expired token forces TokenSource to run the refresh
	// grant instead of handing the stale pair back.
	stale := &oauth2.Token{
		RefreshToken: refreshToken,
		Expiry:       time.Now().Add(-time.Minute),
	}
	token, err := r.config.TokenSource(ctx, stale).Token()
	if err != nil {
		return "", "", fmt.Errorf("refresh grant: %w", err)
	}

	newRefreshToken := token.RefreshToken
	if newRefreshToken == "" {
		newRefreshToken = refreshToken
	}
	return token.AccessToken, newRefreshToken, nil
}
