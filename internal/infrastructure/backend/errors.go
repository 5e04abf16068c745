package backend

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a failed backend call.
type Kind string

const (
	// KindNoResponse means the backend could not be reached.
	KindNoResponse Kind = "no_response"
	// KindResponse is any non-2xx answer other than 404.
	KindResponse Kind = "error_response"
	KindNotFound Kind = "not_found"
)

const (
	defaultResponseDetail   = "request failed"
	defaultNoResponseDetail = "could not connect to the server"
)

type Error struct {
	Kind      Kind
	Operation string
	Status    int
	Detail    string
	Err       error
}

func (e *Error) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("backend %s: %s (status %d)", e.Operation, e.Detail, e.Status)
	}
	return fmt.Sprintf("backend %s: %s", e.Operation, e.Detail)
}

func (e *Error) Unwrap() error { return e.Err }

// IsNotFound reports whether err is a backend 404.
func IsNotFound(err error) bool {
	var be *Error
	return errors.As(err, &be) && be.Kind == KindNotFound
}

// AsError extracts a *Error from err.
func AsError(err error) (*Error, bool) {
	var be *Error
	if errors.As(err, &be) {
		return be, true
	}
	return nil, false
}

// responseDetail reads the "detail" member of an error body. FastAPI sends
// either a string or a list of validation problems with a "msg" each.
func responseDetail(body []byte) string {
	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || len(payload.Detail) == 0 {
		return defaultResponseDetail
	}

	var s string
	if err := json.Unmarshal(payload.Detail, &s); err == nil {
		if s = strings.TrimSpace(s); s != "" {
			return s
		}
		return defaultResponseDetail
	}

	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(payload.Detail, &items); err == nil {
		msgs := make([]string, 0, len(items))
		for _, it := range items {
			if it.Msg != "" {
				msgs = append(msgs, it.Msg)
			}
		}
		if len(msgs) > 0 {
			return strings.Join(msgs, "; ")
		}
	}
	return defaultResponseDetail
}
