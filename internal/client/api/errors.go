package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an API failure for callers that branch on the class of
// error rather than the raw HTTP status.
type Kind int

const (
	KindUnknown Kind = iota
	// KindBadRequest covers 400-class validation failures; Fields may
	// carry per-field detail.
	KindBadRequest
	// KindUnauthorized means credentials are missing, invalid, or expired
	// and a retry will not help.
	KindUnauthorized
	// KindNotFound covers 404s for well-known endpoints.
	KindNotFound
	// KindConflict covers 409s (e.g. duplicate order submission).
	KindConflict
	// KindServer covers 5xx responses.
	KindServer
	// KindNetwork means no response was received at all.
	KindNetwork
	// KindDecode means the payload was not the JSON we expected.
	KindDecode
)

func (k Kind) String() string {
	switch k {
	case KindBadRequest:
		return "bad request"
	case KindUnauthorized:
		return "unauthorized"
	case KindNotFound:
		return "not found"
	case KindConflict:
		return "conflict"
	case KindServer:
		return "server error"
	case KindNetwork:
		return "network error"
	case KindDecode:
		return "unexpected response"
	default:
		return "unknown error"
	}
}

// Error is the single failure shape returned by every API method. Match it
// with errors.As, or use IsKind for a quick class check.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Fields  map[string][]string
	err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.err)
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error { return e.err }

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == kind
}

func kindForStatus(status int) Kind {
	switch {
	case status == http.StatusUnauthorized:
		return KindUnauthorized
	case status == http.StatusConflict:
		return KindConflict
	case status == http.StatusNotFound:
		return KindNotFound
	case status >= 400 && status < 500:
		return KindBadRequest
	case status >= 500:
		return KindServer
	default:
		return KindUnknown
	}
}

// errorBody is the union of failure shapes the backend produces:
// {"detail": "..."} from the auth views, {"message": "..."} from the order
// views, and {"errors": {field: [msgs]}} from the register serializer.
type errorBody struct {
	Detail  string              `json:"detail"`
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
	Error   string              `json:"error"`
}

func errorFromResponse(status int, body []byte) *Error {
	apiErr := &Error{Kind: kindForStatus(status), Status: status}

	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil {
		switch {
		case eb.Detail != "":
			apiErr.Message = eb.Detail
		case eb.Message != "":
			apiErr.Message = eb.Message
		case eb.Error != "":
			apiErr.Message = eb.Error
		}
		apiErr.Fields = eb.Errors
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(status)
	}
	return apiErr
}

func networkError(err error) *Error {
	return &Error{Kind: KindNetwork, Message: "no response from server", err: err}
}

func decodeError(err error) *Error {
	return &Error{Kind: KindDecode, Message: "malformed response payload", err: err}
}
