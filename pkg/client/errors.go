package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Error definitions for the client core. Malformed provider payloads are
// reported with provider.ErrMalformedResponse from the registry.
var (
	ErrInvalidInput     = errors.New("text must not be empty")
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrSessionExpired   = errors.New("session expired")
	ErrProviderCall     = errors.New("provider call failed")
)

// serverMessage extracts the {"error": ...} body of a failed call,
// falling back to the raw body when it does not decode.
func serverMessage(status int, body []byte) string {
	var wire struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &wire); err == nil && wire.Error != "" {
		return wire.Error
	}
	if msg := strings.TrimSpace(string(body)); msg != "" {
		return msg
	}
	return fmt.Sprintf("status %d", status)
}
