package outbound

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
)

// UnknownErrorMessage is reported when an error body does not carry a nested error.message.
const UnknownErrorMessage = "Unknown error"

// RemoteAPIError is returned when the remote responded with a status >= 400
// or with a body that could not be decoded.
type RemoteAPIError struct {
	StatusCode int
	Message    string
}

func (e *RemoteAPIError) Error() string {
	return fmt.Sprintf("remote API error (status %d): %s", e.StatusCode, e.Message)
}

// TransportError is returned when the request never produced a response:
// timeouts, DNS failures, refused or reset connections.
type TransportError struct {
	Cause error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request failed: %v", e.Cause)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

// Timeout reports whether the failure was the per-call timeout or a context deadline.
func (e *TransportError) Timeout() bool {
	if errors.Is(e.Cause, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(e.Cause, &netErr) && netErr.Timeout()
}

// ExtractErrorMessage returns error.message from an error-shaped JSON body.
// Any other shape (top-level message, string error, non-JSON) yields UnknownErrorMessage.
func ExtractErrorMessage(body []byte) string {
	var envelope struct {
		Error json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Error) == 0 {
		return UnknownErrorMessage
	}

	var nested struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(envelope.Error, &nested); err != nil || nested.Message == "" {
		return UnknownErrorMessage
	}
	return nested.Message
}
