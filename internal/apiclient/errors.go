package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// APIError is a non-2xx answer from the backend.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Details    string
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	if e.Details != "" && e.Details != e.Message {
		return fmt.Sprintf("HTTP %d: %s (%s)", e.StatusCode, msg, e.Details)
	}
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, msg)
}

// IsNotFound reports whether err is a 404 from the backend.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// errorEnvelope matches {"error":{"code","message","details"}}; detail covers
// plain {"detail": "..."} bodies.
type errorEnvelope struct {
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details string `json:"details"`
	} `json:"error"`
	Detail string `json:"detail"`
}

func decodeAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status}
	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err == nil {
		switch {
		case env.Error != nil:
			apiErr.Code = env.Error.Code
			apiErr.Message = env.Error.Message
			apiErr.Details = env.Error.Details
			return apiErr
		case env.Detail != "":
			apiErr.Message = env.Detail
			return apiErr
		}
	}
	apiErr.Message = strings.TrimSpace(string(body))
	return apiErr
}
