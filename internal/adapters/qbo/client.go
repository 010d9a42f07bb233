package qbo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/qbodev/qbo_concepts_app/internal/apperrors"
	"github.com/qbodev/qbo_concepts_app/internal/core/domain"
	portssvc "github.com/qbodev/qbo_concepts_app/internal/core/ports/services"
)

// Factory builds per-call QBO v3 API clients bound to one session's
// credentials. The vendor's Java SDK holds the minor version in global
// config; here it is carried per client instead.
type Factory struct {
	apiHost      string
	minorVersion string
	httpClient   *http.Client
}

var _ portssvc.DataServiceFactory = (*Factory)(nil)

// NewFactory creates a client factory for the given API host (e.g. the
// sandbox host) and default minor version. A nil httpClient gets a
// sensible default timeout.
func NewFactory(apiHost, minorVersion string, httpClient *http.Client) *Factory {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Factory{
		apiHost:      strings.TrimRight(apiHost, "/"),
		minorVersion: minorVersion,
		httpClient:   httpClient,
	}
}

func (f *Factory) DataService(creds domain.Credentials) portssvc.DataService {
	return f.DataServiceWithMinorVersion(creds, f.minorVersion)
}

func (f *Factory) DataServiceWithMinorVersion(creds domain.Credentials, minorVersion string) portssvc.DataService {
	return &client{
		baseURL:      fmt.Sprintf("%s/v3/company/%s", f.apiHost, creds.RealmID),
		accessToken:  creds.AccessToken,
		minorVersion: minorVersion,
		httpClient:   f.httpClient,
	}
}

func (f *Factory) ReportService(creds domain.Credentials) portssvc.ReportService {
	return &reportClient{
		baseURL:      fmt.Sprintf("%s/v3/company/%s", f.apiHost, creds.RealmID),
		accessToken:  creds.AccessToken,
		minorVersion: f.minorVersion,
		httpClient:   f.httpClient,
	}
}

// client implements the DataService port over the QBO v3 REST API.
type client struct {
	baseURL      string
	accessToken  string
	minorVersion string
	httpClient   *http.Client
}

var _ portssvc.DataService = (*client)(nil)

// Query runs a query statement. QBO nests the matches under
// QueryResponse keyed by entity type; an absent key means no matches,
// which is not an error.
func (c *client) Query(ctx context.Context, entityType string, query string, out any) error {
	params := url.Values{"query": {query}}
	body, err := c.do(ctx, http.MethodGet, "/query", params, nil)
	if err != nil {
		return err
	}

	var envelope struct {
		QueryResponse map[string]json.RawMessage `json:"QueryResponse"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("decoding query response: %w", err)
	}
	raw, ok := envelope.QueryResponse[entityType]
	if !ok {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decoding %s query matches: %w", entityType, err)
	}
	return nil
}

func (c *client) Create(ctx context.Context, entity domain.Entity, out any) error {
	body, err := c.do(ctx, http.MethodPost, entityPath(entity), nil, entity)
	if err != nil {
		return err
	}
	return decodeEntityEnvelope(body, entity.EntityType(), out)
}

// Update performs a full ("sparse=false") update of a persisted entity.
func (c *client) Update(ctx context.Context, entity domain.Entity, out any) error {
	params := url.Values{"operation": {"update"}}
	body, err := c.do(ctx, http.MethodPost, entityPath(entity), params, entity)
	if err != nil {
		return err
	}
	return decodeEntityEnvelope(body, entity.EntityType(), out)
}

func (c *client) FindByID(ctx context.Context, entity domain.Entity, out any) error {
	if entity.EntityID() == "" {
		return fmt.Errorf("cannot read %s without an id", entity.EntityType())
	}
	body, err := c.do(ctx, http.MethodGet, entityPath(entity)+"/"+entity.EntityID(), nil, nil)
	if err != nil {
		return err
	}
	return decodeEntityEnvelope(body, entity.EntityType(), out)
}

func (c *client) SendEmail(ctx context.Context, entity domain.Entity, address string) error {
	if entity.EntityID() == "" {
		return fmt.Errorf("cannot send %s without an id", entity.EntityType())
	}
	params := url.Values{"sendTo": {address}}
	_, err := c.do(ctx, http.MethodPost, entityPath(entity)+"/"+entity.EntityID()+"/send", params, nil)
	return err
}

// entityPath maps an entity to its REST resource segment; QBO uses the
// lowercased entity name.
func entityPath(entity domain.Entity) string {
	return "/" + strings.ToLower(entity.EntityType())
}

// decodeEntityEnvelope unwraps the single-entity response shape, which
// keys the payload by entity name: {"Account": {...}, "time": "..."}.
func decodeEntityEnvelope(body []byte, entityType string, out any) error {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("decoding %s response: %w", entityType, err)
	}
	raw, ok := envelope[entityType]
	if !ok {
		return fmt.Errorf("response carries no %s payload", entityType)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decoding %s payload: %w", entityType, err)
	}
	return nil
}

func (c *client) do(ctx context.Context, method, path string, params url.Values, payload any) ([]byte, error) {
	return doRequest(ctx, c.httpClient, c.accessToken, c.minorVersion, method, c.baseURL+path, params, payload)
}

func doRequest(ctx context.Context, httpClient *http.Client, accessToken, minorVersion, method, rawURL string, params url.Values, payload any) ([]byte, error) {
	if params == nil {
		params = url.Values{}
	}
	if minorVersion != "" {
		params.Set("minorversion", minorVersion)
	}

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encoding request payload: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL+"?"+params.Encode(), body)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling %s %s: %w", method, rawURL, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return respBody, nil
	}
	return nil, statusError(resp.StatusCode, respBody)
}

// statusError maps a non-2xx response to the error taxonomy. 401 drives
// the refresh-and-retry protocol; fault payloads keep their field-level
// details.
func statusError(statusCode int, body []byte) error {
	switch statusCode {
	case http.StatusUnauthorized:
		return apperrors.ErrTokenExpired
	case http.StatusNotFound:
		return apperrors.ErrNotFound
	}

	var envelope struct {
		Fault struct {
			Type  string `json:"type"`
			Error []struct {
				Code    string `json:"code"`
				Message string `json:"Message"`
				Detail  string `json:"Detail"`
				Element string `json:"element"`
			} `json:"Error"`
		} `json:"Fault"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && (envelope.Fault.Type != "" || len(envelope.Fault.Error) > 0) {
		fault := &apperrors.FaultError{Type: envelope.Fault.Type}
		for _, e := range envelope.Fault.Error {
			fault.Errors = append(fault.Errors, apperrors.FaultDetail{
				Code:    e.Code,
				Message: e.Message,
				Detail:  e.Detail,
				Element: e.Element,
			})
		}
		return fault
	}
	return fmt.Errorf("remote service returned status %d", statusCode)
}
