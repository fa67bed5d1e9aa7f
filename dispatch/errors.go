package dispatch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
)

// Kind classifies an API error by status code
type Kind int

const (
	// KindGeneric covers every non-2xx status without a dedicated kind
	KindGeneric Kind = iota
	KindBadRequest
	KindUnauthorized
	KindRequestFailed
	KindNotFound
	KindMethodNotAllowed
	KindConflict
	KindDelegateRequired
	KindRateLimit
	KindServer
)

// String returns the error kind name
func (k Kind) String() string {
	switch k {
	case KindBadRequest:
		return "BadRequestError"
	case KindUnauthorized:
		return "UnauthorizedError"
	case KindRequestFailed:
		return "RequestFailedError"
	case KindNotFound:
		return "NotFoundError"
	case KindMethodNotAllowed:
		return "MethodNotAllowedError"
	case KindConflict:
		return "ConflictError"
	case KindDelegateRequired:
		return "DelegateRequiredError"
	case KindRateLimit:
		return "RateLimitError"
	case KindServer:
		return "ServerError"
	default:
		return "GenericApiError"
	}
}

// Sentinels matched by APIError.Is
var (
	// ErrAPI matches every APIError
	ErrAPI              = errors.New("disgo API error")
	ErrBadRequest       = errors.New("bad request")
	ErrUnauthorized     = errors.New("unauthorized: no valid API key provided")
	ErrRequestFailed    = errors.New("parameters were valid but the request failed")
	ErrNotFound         = errors.New("resource not found")
	ErrMethodNotAllowed = errors.New("method not allowed")
	ErrConflict         = errors.New("request conflicts with another request")
	ErrDelegateRequired = errors.New("node is not a delegate")
	ErrRateLimited      = errors.New("too many requests")
	ErrServer           = errors.New("server error")
)

// statusKinds is the only place a status code is mapped to a Kind.
// 404 and 405 share a description in the upstream docs but stay distinct here.
var statusKinds = map[int]Kind{
	http.StatusBadRequest:          KindBadRequest,
	http.StatusUnauthorized:        KindUnauthorized,
	http.StatusPaymentRequired:     KindRequestFailed,
	http.StatusNotFound:            KindNotFound,
	http.StatusMethodNotAllowed:    KindMethodNotAllowed,
	http.StatusConflict:            KindConflict,
	http.StatusTeapot:              KindDelegateRequired,
	http.StatusTooManyRequests:     KindRateLimit,
	http.StatusInternalServerError: KindServer,
	http.StatusBadGateway:          KindServer,
	http.StatusServiceUnavailable:  KindServer,
	http.StatusGatewayTimeout:      KindServer,
}

var kindSentinels = map[Kind]error{
	KindBadRequest:       ErrBadRequest,
	KindUnauthorized:     ErrUnauthorized,
	KindRequestFailed:    ErrRequestFailed,
	KindNotFound:         ErrNotFound,
	KindMethodNotAllowed: ErrMethodNotAllowed,
	KindConflict:         ErrConflict,
	KindDelegateRequired: ErrDelegateRequired,
	KindRateLimit:        ErrRateLimited,
	KindServer:           ErrServer,
}

// KindForStatus returns the Kind of a non-2xx status code
func KindForStatus(code int) Kind {
	if k, ok := statusKinds[code]; ok {
		return k
	}
	return KindGeneric
}

// IsSuccess reports whether code is in [200,299]
func IsSuccess(code int) bool {
	return code >= 200 && code <= 299
}

// ErrorBody holds the string fields of a JSON error document. Keys with any
// other type are left out here and remain in APIError.Fields.
type ErrorBody struct {
	Message             string `json:"message,omitempty"`
	Error               string `json:"error,omitempty"`
	Status              string `json:"status,omitempty"`
	HumanReadableStatus string `json:"humanReadableStatus,omitempty"`
}

func decodeErrorBody(fields map[string]any) *ErrorBody {
	str := func(key string) string {
		s, _ := fields[key].(string)
		return s
	}
	decoded := ErrorBody{
		Message:             str("message"),
		Error:               str("error"),
		Status:              str("status"),
		HumanReadableStatus: str("humanReadableStatus"),
	}
	if decoded == (ErrorBody{}) {
		return nil
	}
	return &decoded
}

// APIError represents a non-2xx response from the Disgo API
type APIError struct {
	Kind       Kind
	StatusCode int
	// Status is the reason phrase, e.g. "Too Many Requests"
	Status  string
	Message string
	// Body is the raw response body
	Body string
	// Fields is the body decoded as a JSON object, nil otherwise
	Fields map[string]any
	// Decoded is nil when the body has none of the known string fields
	Decoded *ErrorBody
}

func newAPIError(code int, status string, body []byte) *APIError {
	e := &APIError{
		Kind:       KindForStatus(code),
		StatusCode: code,
		Status:     reasonPhrase(code, status),
		Body:       string(body),
	}

	var fields map[string]any
	if err := json.Unmarshal(body, &fields); err == nil && len(fields) > 0 {
		e.Fields = fields
		e.Decoded = decodeErrorBody(fields)
	}

	switch {
	case e.Decoded != nil && e.Decoded.Message != "":
		e.Message = e.Decoded.Message
	case e.Decoded != nil && e.Decoded.Error != "":
		e.Message = e.Decoded.Error
	case e.Decoded != nil && e.Decoded.HumanReadableStatus != "":
		e.Message = e.Decoded.HumanReadableStatus
	case e.Decoded != nil && e.Decoded.Status != "":
		e.Message = e.Decoded.Status
	case e.Status != "":
		e.Message = e.Status
	default:
		e.Message = "unexpected status"
	}

	return e
}

// reasonPhrase strips the code from an http.Response Status ("429 Too Many Requests").
func reasonPhrase(code int, status string) string {
	phrase := strings.TrimSpace(strings.TrimPrefix(status, strconv.Itoa(code)))
	if phrase == "" {
		phrase = http.StatusText(code)
	}
	return phrase
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("disgo API error: %s: status %d: %s", e.Kind, e.StatusCode, e.Message)
}

// Is matches ErrAPI and the sentinel of the error's Kind
func (e *APIError) Is(target error) bool {
	if target == ErrAPI {
		return true
	}
	sentinel, ok := kindSentinels[e.Kind]
	return ok && sentinel == target
}

// IsNotFound checks if the error indicates a not found response
func (e *APIError) IsNotFound() bool {
	return e.Kind == KindNotFound
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *APIError) IsUnauthorized() bool {
	return e.Kind == KindUnauthorized
}

// IsRateLimited checks if the node throttled the request
func (e *APIError) IsRateLimited() bool {
	return e.Kind == KindRateLimit
}

// ValidationError reports invalid arguments detected before any network call.
type ValidationError struct {
	Field  string
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validation failed: %s", e.Reason)
	}
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NetworkError reports a transport failure after all attempts were used.
type NetworkError struct {
	Method   string
	URL      string
	Attempts int
	Err      error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s %s: network error after %d attempt(s): %v", e.Method, e.URL, e.Attempts, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// Timeout reports whether the last attempt timed out
func (e *NetworkError) Timeout() bool {
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(e.Err, &ne) && ne.Timeout()
}

// ResponseParsingError reports a 2xx response whose body could not be decoded.
type ResponseParsingError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *ResponseParsingError) Error() string {
	return fmt.Sprintf("failed to parse response (status %d): %v", e.StatusCode, e.Err)
}

func (e *ResponseParsingError) Unwrap() error {
	return e.Err
}
