package domain

import "time"

// Credentials is an OAuth2 token pair scoped to one QBO company (realm).
// The pair is replaced wholesale when the refresh grant runs.
type Credentials struct {
	RealmID      string `json:"realmID"`
	AccessToken  string `json:"-"`
	RefreshToken string `json:"-"`
}

// Session ties a browser session to its credentials. Sessions are created
// by the OAuth callback and mutated only by the token-refresh step.
type Session struct {
	SessionID   string      `json:"sessionID"`
	Credentials Credentials `json:"credentials"`
	CreatedAt   time.Time   `json:"createdAt"`
	RefreshedAt time.Time   `json:"refreshedAt"`
}
