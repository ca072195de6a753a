package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// TransportError wraps a connection-level failure: the request never
// produced a response from the backend service.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ServiceError is a non-success response from the backend service,
// carrying the server-provided message when one was present in the body.
type ServiceError struct {
	StatusCode int
	Message    string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("service error %d: %s", e.StatusCode, e.Message)
}

// newServiceError builds a ServiceError from a non-2xx response,
// extracting a {"message": ...} body when the service sent one.
func newServiceError(resp *http.Response) *ServiceError {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))

	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return &ServiceError{StatusCode: resp.StatusCode, Message: payload.Message}
	}

	msg := strings.TrimSpace(string(body))
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}
	return &ServiceError{StatusCode: resp.StatusCode, Message: msg}
}

// UserMessage extracts the message to surface to the user: the service's
// own message when present, otherwise the error text itself.
func UserMessage(err error) string {
	var se *ServiceError
	if errors.As(err, &se) && se.Message != "" {
		return se.Message
	}
	return err.Error()
}
