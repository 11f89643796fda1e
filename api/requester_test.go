package api

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/goliatone/go-wekeza/core"
	"github.com/goliatone/go-wekeza/transport"
	"github.com/stretchr/testify/require"
)

func TestRequester_ExtractsMessageFromErrorBody(t *testing.T) {
	server := newAPIServer(t, respondJSON(http.StatusUnprocessableEntity, `{"message":"Invalid currency"}`))

	_, err := newTestRequester(server, &stubTokens{token: "at_1"}).Do(context.Background(), Call{Method: http.MethodPost, Path: "/payments"})
	require.True(t, core.IsAPIError(err), "expected api error, got %v", err)
	status, ok := core.APIStatus(err)
	require.True(t, ok)
	require.Equal(t, http.StatusUnprocessableEntity, status)
	message, _ := core.APIMessage(err)
	require.Equal(t, "Invalid currency", message)
}

func TestRequester_FallsBackToRawBodyText(t *testing.T) {
	body := `{"errors":[{"msg":"Amount must be greater than 0","param":"amount"}]}`
	server := newAPIServer(t, respondJSON(http.StatusBadRequest, body))

	_, err := newTestRequester(server, &stubTokens{token: "at_1"}).Do(context.Background(), Call{Path: "/payments"})
	message, ok := core.APIMessage(err)
	require.True(t, ok)
	require.Equal(t, body, message)

	plain := newAPIServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	_, err = newTestRequester(plain, &stubTokens{token: "at_1"}).Do(context.Background(), Call{Path: "/accounts"})
	message, ok = core.APIMessage(err)
	require.True(t, ok)
	require.Equal(t, core.UnknownErrorMessage, message)
}

func TestRequester_UnauthorizedClearsTokens(t *testing.T) {
	server := newAPIServer(t, respondJSON(http.StatusUnauthorized, `{"error":"Invalid or expired token"}`))
	tokens := &stubTokens{token: "stale"}

	_, err := newTestRequester(server, tokens).Do(context.Background(), Call{Path: "/accounts"})
	require.True(t, core.IsAPIError(err))
	require.Equal(t, 1, tokens.cleared)
	require.Equal(t, 1, server.count(), "a 401 must not be retried")
}

func TestRequester_NoResponseIsNetworkError(t *testing.T) {
	server := newAPIServer(t, respondJSON(http.StatusOK, `{}`))
	requester := newTestRequester(server, &stubTokens{token: "at_1"})
	server.Close()

	_, err := requester.Do(context.Background(), Call{Path: "/accounts"})
	require.True(t, core.IsNetworkError(err), "expected network error, got %v", err)
}

func TestRequester_AuthErrorPassesThrough(t *testing.T) {
	server := newAPIServer(t, respondJSON(http.StatusOK, `{}`))
	authErr := core.NewAuthError("auth: failed to obtain access token", errors.New("boom"), nil)

	_, err := newTestRequester(server, &stubTokens{err: authErr}).Do(context.Background(), Call{Path: "/accounts"})
	require.True(t, core.IsAuthError(err))
	require.Zero(t, server.count())
}

func TestRequester_UnencodableBodyIsRequestError(t *testing.T) {
	server := newAPIServer(t, respondJSON(http.StatusOK, `{}`))
	tokens := &stubTokens{token: "at_1"}

	_, err := newTestRequester(server, tokens).Do(context.Background(), Call{Method: http.MethodPost, Path: "/payments", Body: map[string]any{"bad": make(chan int)}})
	require.True(t, core.IsRequestError(err))
	require.Zero(t, tokens.calls)
}

func TestRequester_UndecodableSuccessBodyIsRequestError(t *testing.T) {
	server := newAPIServer(t, respondJSON(http.StatusOK, `not json`))
	var out Account

	err := newTestRequester(server, &stubTokens{token: "at_1"}).DoInto(context.Background(), Call{Path: "/accounts/acc_1"}, &out)
	require.True(t, core.IsRequestError(err))
}

func TestRequester_UnconfiguredIsRequestError(t *testing.T) {
	_, err := NewRequester("https://api.example.com", nil, transport.NewRESTAdapter(nil), nil).Do(context.Background(), Call{Path: "/accounts"})
	require.True(t, core.IsRequestError(err))
}

type failingTransport struct {
	err   error
	calls int
}

func (f *failingTransport) Do(context.Context, core.TransportRequest) (core.TransportResponse, error) {
	f.calls++
	return core.TransportResponse{}, f.err
}

func TestRequester_PlainTransportFailureIsNetworkError(t *testing.T) {
	cause := errors.New("dial tcp 127.0.0.1:443: connect: connection refused")
	failing := &failingTransport{err: cause}

	_, err := NewRequester("https://api.example.com", &stubTokens{token: "at_1"}, failing, nil).Do(context.Background(), Call{Path: "/accounts"})
	require.Error(t, err)
	require.True(t, core.IsNetworkError(err), "expected network error, got %v", err)
	require.False(t, core.IsRequestError(err))
	require.ErrorIs(t, err, cause)
	require.Equal(t, 1, failing.calls)
}

func TestRequester_TransportSDKErrorKeepsItsKind(t *testing.T) {
	failing := &failingTransport{err: core.NewRequestError("transport: build request", nil, nil)}

	_, err := NewRequester("https://api.example.com", &stubTokens{token: "at_1"}, failing, nil).Do(context.Background(), Call{Path: "/accounts"})
	require.True(t, core.IsRequestError(err), "expected request error, got %v", err)
}
