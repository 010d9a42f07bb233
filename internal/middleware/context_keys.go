package middleware

import "context"

// contextKey is a private key type so context values can't collide with
// other packages.
type contextKey string

const (
	loggerCtxKey  = contextKey("logger")
	sessionCtxKey = contextKey("sessionID")
)

// GetSessionIDFromCtx retrieves the authenticated session id placed in the
// request context by SessionAuth. It returns the id and whether it was
// found.
func GetSessionIDFromCtx(ctx context.Context) (string, bool) {
	v := ctx.Value(sessionCtxKey)
	if v == nil {
		return "", false
	}
	sessionID, ok := v.(string)
	return sessionID, ok
}
