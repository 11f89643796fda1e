package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/goliatone/go-wekeza/core"
)

// Call describes one resource request relative to the API base URL.
type Call struct {
	Method  string
	Path    string
	Query   map[string]string
	Body    any
	Headers map[string]string
}

// Requester sends authenticated JSON calls and normalizes their failures into
// APIError, NetworkError, and RequestError. It performs exactly one transport
// call per request.
type Requester struct {
	baseURL   string
	tokens    core.TokenSource
	transport core.Transport
	logger    core.Logger
}

func NewRequester(baseURL string, tokens core.TokenSource, transport core.Transport, logger core.Logger) *Requester {
	return &Requester{
		baseURL:   strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		tokens:    tokens,
		transport: transport,
		logger:    core.ResolveLogger("wekeza.api", nil, logger),
	}
}

// Do executes call and returns the raw success body.
func (r *Requester) Do(ctx context.Context, call Call) (json.RawMessage, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if r == nil || r.tokens == nil || r.transport == nil {
		return nil, core.NewRequestError("api: requester is not configured", nil, nil)
	}
	method := strings.ToUpper(strings.TrimSpace(call.Method))
	if method == "" {
		method = http.MethodGet
	}
	fields := map[string]any{"method": method, "path": call.Path}

	var body []byte
	if call.Body != nil {
		encoded, err := json.Marshal(call.Body)
		if err != nil {
			return nil, core.NewRequestError("api: encode request body", err, fields)
		}
		body = encoded
	}

	token, err := r.tokens.AccessToken(ctx)
	if err != nil {
		return nil, core.EnsureRequestError(err, "api: resolve access token", fields)
	}

	headers := map[string]string{
		"Authorization": "Bearer " + token,
		"Content-Type":  "application/json",
	}
	for key, value := range call.Headers {
		headers[key] = value
	}

	res, err := r.transport.Do(ctx, core.TransportRequest{
		Method:  method,
		URL:     r.baseURL + call.Path,
		Headers: headers,
		Query:   compactQuery(call.Query),
		Body:    body,
	})
	if err != nil {
		// A transport that fails without an SDK error produced no response.
		if core.KindOf(err) == core.KindUnknown {
			err = core.NewNetworkError("api: send request", err, fields)
		}
		core.LogError(ctx, r.logger, "api request failed", withError(fields, err))
		return nil, err
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		if res.StatusCode == http.StatusUnauthorized {
			r.tokens.ClearTokens()
		}
		apiErr := core.NewAPIError(res.StatusCode, core.ExtractErrorMessage(res.Body), fields)
		core.LogError(ctx, r.logger, "api request rejected", withError(fields, apiErr))
		return nil, apiErr
	}
	return json.RawMessage(res.Body), nil
}

// DoInto executes call and decodes the success body into out.
func (r *Requester) DoInto(ctx context.Context, call Call, out any) error {
	raw, err := r.Do(ctx, call)
	if err != nil {
		return err
	}
	if out == nil || len(strings.TrimSpace(string(raw))) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return core.NewRequestError("api: decode response body", err, map[string]any{
			"method": call.Method,
			"path":   call.Path,
		})
	}
	return nil
}

func compactQuery(query map[string]string) map[string]string {
	if len(query) == 0 {
		return nil
	}
	out := make(map[string]string, len(query))
	for key, value := range query {
		if strings.TrimSpace(value) == "" {
			continue
		}
		out[key] = value
	}
	return out
}

func withError(fields map[string]any, err error) map[string]any {
	out := make(map[string]any, len(fields)+2)
	for key, value := range fields {
		out[key] = value
	}
	out["error"] = core.Describe(err)
	if status, ok := core.APIStatus(err); ok {
		out["status"] = status
	}
	return out
}
