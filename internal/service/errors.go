package service

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrMissingSignature = errors.New("signature header is required")
	ErrInvalidSignature = errors.New("invalid signature")
	ErrMissingAppSecret = errors.New("app secret is not configured")
)

// StructureError reports a field the extractor expected but did not find.
// It means the payload validator and the extractor disagree on shape.
type StructureError struct {
	Field string
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("webhook event is missing %s", e.Field)
}

type DispatchErrorKind string

const (
	DispatchTimeout          DispatchErrorKind = "timeout"
	DispatchConnectionFailed DispatchErrorKind = "connection_failed"
	DispatchRemoteError      DispatchErrorKind = "remote_error"
	DispatchTransportFailure DispatchErrorKind = "transport_failure"
)

// DispatchError classifies a failed outbound send.
type DispatchError struct {
	Kind       DispatchErrorKind
	StatusCode int
	Body       string
	Err        error
}

func (e *DispatchError) Error() string {
	switch e.Kind {
	case DispatchRemoteError:
		return fmt.Sprintf("whatsapp api returned status %d: %s", e.StatusCode, e.Body)
	default:
		if e.Err != nil {
			return fmt.Sprintf("whatsapp send %s: %v", e.Kind, e.Err)
		}
		return fmt.Sprintf("whatsapp send %s", e.Kind)
	}
}

func (e *DispatchError) Unwrap() error {
	return e.Err
}

// HTTPStatus maps the failure to the status returned to the webhook caller.
func (e *DispatchError) HTTPStatus() int {
	if e.Kind == DispatchTimeout {
		return http.StatusRequestTimeout
	}
	return http.StatusInternalServerError
}

// Message is the client facing description of the failure.
func (e *DispatchError) Message() string {
	switch e.Kind {
	case DispatchTimeout:
		return "Request timed out"
	case DispatchConnectionFailed:
		return "Connection error"
	case DispatchRemoteError:
		return "HTTP error from WhatsApp API"
	default:
		return "Failed to send message"
	}
}
