package core

import (
	stderrors "errors"
	"net/http"
	"strings"
	"testing"

	goerrors "github.com/goliatone/go-errors"
)

func TestNewAPIError_CarriesStatusAndMessage(t *testing.T) {
	err := NewAPIError(http.StatusUnprocessableEntity, "Invalid currency", map[string]any{"path": "/payments"})

	if !IsAPIError(err) {
		t.Fatalf("expected api error kind, got %q", KindOf(err))
	}
	status, ok := APIStatus(err)
	if !ok || status != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422, got %d (%v)", status, ok)
	}
	message, ok := APIMessage(err)
	if !ok || message != "Invalid currency" {
		t.Fatalf("expected verbatim message, got %q", message)
	}
	if err.Category != goerrors.CategoryBadInput {
		t.Fatalf("expected bad_input category for 422, got %q", err.Category)
	}
	if err.Metadata["status"] != http.StatusUnprocessableEntity {
		t.Fatalf("expected status metadata, got %#v", err.Metadata)
	}
	if got := Describe(err); got != "API Error (422): Invalid currency" {
		t.Fatalf("unexpected description %q", got)
	}
}

func TestNewAPIError_EmptyMessageFallsBack(t *testing.T) {
	err := NewAPIError(http.StatusBadGateway, "  ", nil)
	if err.Message != UnknownErrorMessage {
		t.Fatalf("expected unknown error message, got %q", err.Message)
	}
	if err.Category != goerrors.CategoryInternal {
		t.Fatalf("expected internal category for 5xx, got %q", err.Category)
	}
}

func TestKindOf_ClassifiesEveryKind(t *testing.T) {
	cause := stderrors.New("dial tcp: connection refused")
	cases := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{name: "auth", err: NewAuthError("token request failed", cause, nil), want: KindAuth},
		{name: "api", err: NewAPIError(404, "Not found", nil), want: KindAPI},
		{name: "network", err: NewNetworkError("no response", cause, nil), want: KindNetwork},
		{name: "request", err: NewRequestError("encode body", cause, nil), want: KindRequest},
		{name: "validation", err: NewValidationError("invalid payment"), want: KindRequest},
		{name: "verification", err: NewVerificationError("signature mismatch"), want: KindVerification},
		{name: "payload", err: NewPayloadError("missing type", nil), want: KindPayload},
		{name: "plain", err: cause, want: KindUnknown},
		{name: "nil", err: nil, want: KindUnknown},
	}
	for _, tc := range cases {
		if got := KindOf(tc.err); got != tc.want {
			t.Fatalf("%s: expected kind %q, got %q", tc.name, tc.want, got)
		}
	}
}

func TestSDKErrors_KeepCauseReachable(t *testing.T) {
	cause := stderrors.New("connection reset")
	err := NewNetworkError("transport: execute http request", cause, nil)
	if !stderrors.Is(err, cause) {
		t.Fatalf("expected cause to be reachable through errors.Is")
	}
	if got := Describe(err); got != "Network error: connection reset" {
		t.Fatalf("unexpected description %q", got)
	}
}

func TestEnsureRequestError_PassesSDKErrorsThrough(t *testing.T) {
	network := NewNetworkError("no response", nil, nil)
	if got := EnsureRequestError(network, "wrapped", nil); got != network {
		t.Fatalf("expected network error to pass through unchanged")
	}
	wrapped := EnsureRequestError(stderrors.New("json: unsupported value"), "encode body", nil)
	if !IsRequestError(wrapped) {
		t.Fatalf("expected request error, got %v", wrapped)
	}
	if !strings.HasPrefix(Describe(wrapped), "Request error: ") {
		t.Fatalf("unexpected description %q", Describe(wrapped))
	}
	if EnsureRequestError(nil, "noop", nil) != nil {
		t.Fatalf("expected nil for nil input")
	}
}

func TestNewValidationError_ListsFields(t *testing.T) {
	err := NewValidationError("invalid payment request",
		goerrors.FieldError{Field: "amount", Message: "must be greater than zero"},
	)
	if err.Category != goerrors.CategoryValidation {
		t.Fatalf("expected validation category, got %q", err.Category)
	}
	if err.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 code, got %d", err.Code)
	}
	if !strings.Contains(Describe(err), "amount") {
		t.Fatalf("expected field name in description, got %q", Describe(err))
	}
}

func TestExtractErrorMessage(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{name: "message field", body: `{"message":"Invalid currency","error":"validation"}`, want: "Invalid currency"},
		{name: "error field", body: `{"error":"invalid_client"}`, want: "invalid_client"},
		{name: "empty message falls to error", body: `{"message":"","error":"Not found"}`, want: "Not found"},
		{name: "non string message", body: `{"message":{"code":1}}`, want: `{"message":{"code":1}}`},
		{name: "raw text", body: "Bad Gateway", want: "Bad Gateway"},
		{name: "empty", body: "  ", want: UnknownErrorMessage},
	}
	for _, tc := range cases {
		if got := ExtractErrorMessage([]byte(tc.body)); got != tc.want {
			t.Fatalf("%s: expected %q, got %q", tc.name, tc.want, got)
		}
	}
}
