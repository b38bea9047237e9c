package anvil

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoAPIKey is returned by NewClient when the credentials are empty.
	ErrNoAPIKey = errors.New("api key is required")

	// ErrUnavailable marks transport-level failures: the service could not
	// be reached or did not answer in time.
	ErrUnavailable = errors.New("service unavailable")

	// ErrUnauthorized marks authentication failures (HTTP 401/403).
	ErrUnauthorized = errors.New("unauthorized")

	// ErrValidation marks requests the remote service rejected: schema
	// violations, unknown references, business-rule failures.
	ErrValidation = errors.New("rejected by service")
)

// GraphQLError is one entry of the "errors" array in a GraphQL response.
type GraphQLError struct {
	Message string   `json:"message"`
	Path    []string `json:"path,omitempty"`
	Fields  []struct {
		Message string `json:"message"`
		Path    string `json:"path"`
	} `json:"fields,omitempty"`
}

// APIError is a failure reported by the remote service, carrying the HTTP
// status and the remote error detail. It unwraps to ErrUnauthorized or
// ErrValidation so callers can match broad categories with errors.Is.
type APIError struct {
	// Op names the attempted operation, e.g. "createEtchPacket".
	Op string

	// StatusCode is the HTTP status of the response (200 for GraphQL
	// responses that carried an errors array).
	StatusCode int

	// Message is the raw remote detail when the body was not a GraphQL
	// errors array.
	Message string

	// Errors holds parsed GraphQL errors, when present.
	Errors []GraphQLError
}

func (e *APIError) Error() string {
	detail := e.Message
	if len(e.Errors) > 0 {
		msgs := make([]string, 0, len(e.Errors))
		for _, ge := range e.Errors {
			msgs = append(msgs, ge.Message)
		}
		detail = strings.Join(msgs, "; ")
	}
	return fmt.Sprintf("%s: status %d: %s", e.Op, e.StatusCode, detail)
}

func (e *APIError) Unwrap() error {
	switch {
	case e.StatusCode == 401 || e.StatusCode == 403:
		return ErrUnauthorized
	case e.StatusCode == 429 || e.StatusCode >= 500:
		return ErrUnavailable
	default:
		return ErrValidation
	}
}
