package core

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	goerrors "github.com/goliatone/go-errors"
)

const (
	ErrorAuthFailed       = "WEKEZA_AUTH_FAILED"
	ErrorAPI              = "WEKEZA_API_ERROR"
	ErrorNetwork          = "WEKEZA_NETWORK_ERROR"
	ErrorRequest          = "WEKEZA_REQUEST_ERROR"
	ErrorSignatureInvalid = "WEKEZA_SIGNATURE_INVALID"
	ErrorPayloadInvalid   = "WEKEZA_PAYLOAD_INVALID"
)

// UnknownErrorMessage is reported when an error response carries no usable text.
const UnknownErrorMessage = "Unknown error"

type ErrorKind string

const (
	KindUnknown      ErrorKind = ""
	KindAuth         ErrorKind = "auth"
	KindAPI          ErrorKind = "api"
	KindNetwork      ErrorKind = "network"
	KindRequest      ErrorKind = "request"
	KindVerification ErrorKind = "verification"
	KindPayload      ErrorKind = "payload"
)

func NewAuthError(message string, source error, metadata map[string]any) *goerrors.Error {
	return newSDKError(message, goerrors.CategoryAuth, http.StatusUnauthorized, ErrorAuthFailed, source, metadata)
}

// NewAPIError reports a response received with a non-success status. The
// message is the server provided text, kept verbatim.
func NewAPIError(status int, message string, metadata map[string]any) *goerrors.Error {
	if strings.TrimSpace(message) == "" {
		message = UnknownErrorMessage
	}
	fields := cloneFields(metadata)
	fields["status"] = status
	return newSDKError(message, goerrors.HTTPStatusToCategory(status), status, ErrorAPI, nil, fields)
}

// NewNetworkError reports a request that produced no response.
func NewNetworkError(message string, source error, metadata map[string]any) *goerrors.Error {
	return newSDKError(message, goerrors.CategoryExternal, http.StatusBadGateway, ErrorNetwork, source, metadata)
}

// NewRequestError reports a failure to build or send a request.
func NewRequestError(message string, source error, metadata map[string]any) *goerrors.Error {
	return newSDKError(message, goerrors.CategoryInternal, http.StatusInternalServerError, ErrorRequest, source, metadata)
}

// NewValidationError is a RequestError raised before any network activity.
func NewValidationError(message string, fields ...goerrors.FieldError) *goerrors.Error {
	return goerrors.NewValidation(message, fields...).
		WithCode(http.StatusBadRequest).
		WithTextCode(ErrorRequest)
}

func NewVerificationError(message string) *goerrors.Error {
	return newSDKError(message, goerrors.CategoryAuth, http.StatusUnauthorized, ErrorSignatureInvalid, nil, nil)
}

func NewPayloadError(message string, source error) *goerrors.Error {
	return newSDKError(message, goerrors.CategoryBadInput, http.StatusBadRequest, ErrorPayloadInvalid, source, nil)
}

func newSDKError(
	message string,
	category goerrors.Category,
	code int,
	textCode string,
	source error,
	metadata map[string]any,
) *goerrors.Error {
	err := goerrors.New(message, category).
		WithCode(code).
		WithTextCode(textCode)
	err.Source = source
	if len(metadata) > 0 {
		err.WithMetadata(metadata)
	}
	return err
}

// KindOf classifies err by the outermost SDK error envelope it carries.
func KindOf(err error) ErrorKind {
	var richErr *goerrors.Error
	if err == nil || !goerrors.As(err, &richErr) {
		return KindUnknown
	}
	switch richErr.TextCode {
	case ErrorAuthFailed:
		return KindAuth
	case ErrorAPI:
		return KindAPI
	case ErrorNetwork:
		return KindNetwork
	case ErrorRequest:
		return KindRequest
	case ErrorSignatureInvalid:
		return KindVerification
	case ErrorPayloadInvalid:
		return KindPayload
	default:
		return KindUnknown
	}
}

func IsAuthError(err error) bool         { return KindOf(err) == KindAuth }
func IsAPIError(err error) bool          { return KindOf(err) == KindAPI }
func IsNetworkError(err error) bool      { return KindOf(err) == KindNetwork }
func IsRequestError(err error) bool      { return KindOf(err) == KindRequest }
func IsVerificationError(err error) bool { return KindOf(err) == KindVerification }
func IsPayloadError(err error) bool      { return KindOf(err) == KindPayload }

// APIStatus returns the HTTP status carried by an APIError.
func APIStatus(err error) (int, bool) {
	var richErr *goerrors.Error
	if !IsAPIError(err) || !goerrors.As(err, &richErr) {
		return 0, false
	}
	return richErr.Code, true
}

// APIMessage returns the server message carried by an APIError.
func APIMessage(err error) (string, bool) {
	var richErr *goerrors.Error
	if !IsAPIError(err) || !goerrors.As(err, &richErr) {
		return "", false
	}
	return richErr.Message, true
}

// EnsureRequestError keeps SDK errors as they are and wraps anything else as
// a RequestError.
func EnsureRequestError(err error, message string, metadata map[string]any) error {
	if err == nil {
		return nil
	}
	if KindOf(err) != KindUnknown {
		return err
	}
	return NewRequestError(message, err, metadata)
}

// Describe renders err as a single human readable line.
func Describe(err error) string {
	if err == nil {
		return ""
	}
	var richErr *goerrors.Error
	if !goerrors.As(err, &richErr) {
		return err.Error()
	}
	detail := richErr.Message
	if richErr.Source != nil {
		detail = richErr.Source.Error()
	}
	switch KindOf(err) {
	case KindAPI:
		return fmt.Sprintf("API Error (%d): %s", richErr.Code, richErr.Message)
	case KindNetwork:
		return "Network error: " + detail
	case KindRequest:
		if len(richErr.ValidationErrors) > 0 {
			return fmt.Sprintf("Request error: %s: %s", richErr.Message, richErr.ValidationErrors.Error())
		}
		return "Request error: " + detail
	case KindAuth:
		if richErr.Source != nil {
			return "Authentication failed: " + Describe(richErr.Source)
		}
		return "Authentication failed: " + richErr.Message
	case KindVerification:
		return "Invalid signature: " + richErr.Message
	case KindPayload:
		return "Invalid payload: " + detail
	default:
		return err.Error()
	}
}

// ExtractErrorMessage picks the most useful text from an error response body:
// the JSON "message" field, then the JSON "error" field, then the raw body.
func ExtractErrorMessage(body []byte) string {
	var envelope map[string]any
	if err := json.Unmarshal(body, &envelope); err == nil {
		for _, key := range []string{"message", "error"} {
			if value, ok := envelope[key].(string); ok && strings.TrimSpace(value) != "" {
				return value
			}
		}
	}
	if text := strings.TrimSpace(string(body)); text != "" {
		return text
	}
	return UnknownErrorMessage
}
