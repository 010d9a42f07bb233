package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrTokenExpired indicates the remote service rejected the access token
// (HTTP 401). The caller gets exactly one refresh-and-retry.
var ErrTokenExpired = errors.New("access token expired or invalid")

// ErrTokenRefresh indicates the refresh grant itself failed; there is no
// further automatic recovery.
var ErrTokenRefresh = errors.New("token refresh failed")

// ErrNoRealm indicates the session carries no company (realm) id, so no
// accounting call can be made.
var ErrNoRealm = errors.New("no realm id in session")

// FaultDetail is one field-level error from a QBO fault response.
type FaultDetail struct {
	Code    string `json:"code"`
	Message string `json:"Message"`
	Detail  string `json:"Detail"`
	Element string `json:"element"`
}

// FaultError carries the list of field-level errors the remote service
// returned when it rejected a document. It matches ErrValidation via
// errors.Is so handlers can treat all rejection shapes uniformly.
type FaultError struct {
	Type   string
	Errors []FaultDetail
}

func (e *FaultError) Error() string {
	if len(e.Errors) == 0 {
		return fmt.Sprintf("remote fault (%s)", e.Type)
	}
	msgs := make([]string, len(e.Errors))
	for i, d := range e.Errors {
		msgs[i] = d.Message
		if d.Detail != "" {
			msgs[i] += ": " + d.Detail
		}
	}
	return fmt.Sprintf("remote fault (%s): %s", e.Type, strings.Join(msgs, "; "))
}

func (e *FaultError) Is(target error) bool {
	return target == ErrValidation
}
