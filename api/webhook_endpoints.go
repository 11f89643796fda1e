package api

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-wekeza/core"
)

const webhooksPath = "/webhooks"

type WebhookEndpointRequest struct {
	URL    string   `json:"url"`
	Events []string `json:"events"`
	// Secret is generated by the server when empty.
	Secret string `json:"secret,omitempty"`
}

func (r WebhookEndpointRequest) Validate() error {
	var fields []goerrors.FieldError
	parsed, err := url.Parse(strings.TrimSpace(r.URL))
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		fields = append(fields, goerrors.FieldError{Field: "url", Message: "must be an absolute url"})
	}
	if len(r.Events) == 0 {
		fields = append(fields, goerrors.FieldError{Field: "events", Message: "at least one event is required"})
	}
	if len(fields) > 0 {
		return core.NewValidationError("api: invalid webhook endpoint", fields...)
	}
	return nil
}

// WebhookEndpoints manages server side webhook subscriptions.
type WebhookEndpoints struct {
	requester *Requester
}

func NewWebhookEndpoints(requester *Requester) *WebhookEndpoints {
	return &WebhookEndpoints{requester: requester}
}

func (w *WebhookEndpoints) Register(ctx context.Context, req WebhookEndpointRequest) (WebhookEndpoint, error) {
	if err := req.Validate(); err != nil {
		return WebhookEndpoint{}, err
	}
	req.URL = strings.TrimSpace(req.URL)
	var out WebhookEndpoint
	err := w.requester.DoInto(ctx, Call{
		Method: http.MethodPost,
		Path:   webhooksPath,
		Body:   req,
	}, &out)
	return out, err
}

func (w *WebhookEndpoints) List(ctx context.Context) (WebhookEndpointList, error) {
	var out WebhookEndpointList
	err := w.requester.DoInto(ctx, Call{
		Method: http.MethodGet,
		Path:   webhooksPath,
	}, &out)
	return out, err
}
