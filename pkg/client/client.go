// Package client is the programmatic core consumed by the CLI: a
// credential store with a file-persisted session, a dispatch path that
// normalizes provider replies, and a session guard that invalidates the
// store when the service rejects the bearer token.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"textgate/pkg/provider"
)

// UsageRecord is one row of the usage ledger as read from the service.
type UsageRecord struct {
	APIName    string    `json:"api_name"`
	UsageCount int64     `json:"usage_count"`
	LastUsed   time.Time `json:"last_used"`
}

// Profile is the account view served by the profile endpoint.
type Profile struct {
	Username             string `json:"username"`
	Email                string `json:"email"`
	APICalls             int64  `json:"api_calls"`
	HasHuggingFaceAPIKey bool   `json:"has_huggingface_api_key"`
	HasGoogleNLPAPIKey   bool   `json:"has_google_nlp_api_key"`
	HasOpenAIAPIKey      bool   `json:"has_openai_api_key"`
}

// Keys carries provider API keys for a profile update. Empty fields
// leave the stored credential unchanged.
type Keys struct {
	HuggingFaceAPIKey string `json:"huggingface_api_key,omitempty"`
	GoogleNLPAPIKey   string `json:"google_nlp_api_key,omitempty"`
	OpenAIAPIKey      string `json:"openai_api_key,omitempty"`
}

// Client drives the service API on behalf of one user.
type Client struct {
	transport Transport
	store     *CredentialStore
	guard     *SessionGuard
}

// New creates a Client. onSessionExpired may be nil; when set it fires
// once whenever the service rejects the current session.
func New(transport Transport, store *CredentialStore, onSessionExpired func()) *Client {
	return &Client{
		transport: transport,
		store:     store,
		guard:     NewSessionGuard(store, onSessionExpired),
	}
}

// Store exposes the credential store, mainly for callers that need
// IsAuthenticated or Username for display.
func (c *Client) Store() *CredentialStore {
	return c.store
}

type sessionWire struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// Login authenticates and stores the returned session.
func (c *Client) Login(ctx context.Context, username, password string) error {
	return c.openSession(ctx, "/api/login", map[string]string{
		"username": username,
		"password": password,
	})
}

// Register creates an account and stores the returned session.
func (c *Client) Register(ctx context.Context, username, email, password string) error {
	return c.openSession(ctx, "/api/register", map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	})
}

func (c *Client) openSession(ctx context.Context, path string, body map[string]string) error {
	resp, err := c.transport.Post(ctx, path, body, nil)
	if err != nil {
		return err
	}
	if resp.Status < 200 || resp.Status > 299 {
		return fmt.Errorf("%s", serverMessage(resp.Status, resp.Body))
	}

	var session sessionWire
	if err := json.Unmarshal(resp.Body, &session); err != nil {
		return fmt.Errorf("decoding session: %w", err)
	}
	if session.Token == "" {
		return fmt.Errorf("server returned no session token")
	}
	return c.store.SetSession(session.Username, session.Token)
}

// Logout revokes the server-side session and clears the local one. The
// local session is cleared even when the server call fails.
func (c *Client) Logout(ctx context.Context) error {
	if !c.store.IsAuthenticated() {
		return nil
	}
	resp, err := c.transport.Post(ctx, "/api/logout", nil, c.bearer())
	if clearErr := c.store.ClearSession(); clearErr != nil {
		return clearErr
	}
	if err != nil {
		return err
	}
	if resp.Status == http.StatusUnauthorized {
		return nil
	}
	if resp.Status < 200 || resp.Status > 299 {
		return fmt.Errorf("%s", serverMessage(resp.Status, resp.Body))
	}
	return nil
}

// Submit sends text to the named provider and returns the normalized
// result. Single attempt; retries are the caller's policy.
func (c *Client) Submit(ctx context.Context, id provider.ID, text string) (*provider.Result, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrInvalidInput
	}
	if !c.store.IsAuthenticated() {
		return nil, ErrNotAuthenticated
	}
	if !provider.Valid(id) {
		return nil, fmt.Errorf("%w: %q", provider.ErrUnknownProvider, id)
	}

	resp, err := c.transport.Post(ctx, "/api/process", map[string]string{
		"api":  string(id),
		"text": text,
	}, c.bearer())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProviderCall, err)
	}
	if resp.Status == http.StatusUnauthorized {
		c.guard.OnUnauthorized()
		return nil, ErrSessionExpired
	}
	if resp.Status < 200 || resp.Status > 299 {
		return nil, fmt.Errorf("%w: %s", ErrProviderCall, serverMessage(resp.Status, resp.Body))
	}

	var result provider.Result
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, err
	}
	if result.API != id {
		return nil, fmt.Errorf("%w: result tagged %q for a %q request", provider.ErrMalformedResponse, result.API, id)
	}
	return &result, nil
}

// Usage reads the usage ledger. Row order is the server's, stable
// across repeated calls absent new activity.
func (c *Client) Usage(ctx context.Context) ([]UsageRecord, error) {
	var records []UsageRecord
	if err := c.getJSON(ctx, "/api/usage", &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Profile reads the account profile.
func (c *Client) Profile(ctx context.Context) (*Profile, error) {
	var profile Profile
	if err := c.getJSON(ctx, "/api/profile", &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateKeys stores new provider API keys. Empty fields are left as is.
func (c *Client) UpdateKeys(ctx context.Context, keys Keys) error {
	if !c.store.IsAuthenticated() {
		return ErrNotAuthenticated
	}
	resp, err := c.transport.Put(ctx, "/api/update_profile", keys, c.bearer())
	if err != nil {
		return err
	}
	if resp.Status == http.StatusUnauthorized {
		c.guard.OnUnauthorized()
		return ErrSessionExpired
	}
	if resp.Status < 200 || resp.Status > 299 {
		return fmt.Errorf("%s", serverMessage(resp.Status, resp.Body))
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	if !c.store.IsAuthenticated() {
		return ErrNotAuthenticated
	}
	resp, err := c.transport.Get(ctx, path, c.bearer())
	if err != nil {
		return err
	}
	if resp.Status == http.StatusUnauthorized {
		c.guard.OnUnauthorized()
		return ErrSessionExpired
	}
	if resp.Status < 200 || resp.Status > 299 {
		return fmt.Errorf("%s", serverMessage(resp.Status, resp.Body))
	}
	return json.Unmarshal(resp.Body, out)
}

func (c *Client) bearer() map[string]string {
	return map[string]string{"Authorization": "Bearer " + c.store.Token()}
}
