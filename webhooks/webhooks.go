package webhooks

import (
	"context"
	"strings"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-wekeza/core"
)

// Webhooks bundles signature verification with event dispatch for one secret.
type Webhooks struct {
	verifier        *SignatureVerifier
	dispatcher      *Dispatcher
	signatureHeader string
	logger          core.Logger
}

type Option func(*Webhooks)

func WithLogger(logger core.Logger) Option {
	return func(w *Webhooks) {
		if logger != nil {
			w.logger = logger
		}
	}
}

func WithSignatureHeader(header string) Option {
	return func(w *Webhooks) {
		if header = strings.TrimSpace(header); header != "" {
			w.signatureHeader = header
		}
	}
}

func New(secret string, opts ...Option) (*Webhooks, error) {
	if secret == "" {
		return nil, core.NewValidationError("webhooks: secret is required",
			goerrors.FieldError{Field: "webhook_secret", Message: "required"},
		)
	}
	w := &Webhooks{
		verifier:        NewSignatureVerifier(secret),
		signatureHeader: core.DefaultSignatureHeader,
		logger:          core.ResolveLogger("wekeza.webhooks", nil, nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(w)
		}
	}
	w.dispatcher = NewDispatcher(w.logger)
	return w, nil
}

func (w *Webhooks) SignatureHeader() string {
	return w.signatureHeader
}

func (w *Webhooks) Verify(payload []byte, signature string) bool {
	return w.verifier.Verify(payload, signature)
}

func (w *Webhooks) Sign(payload []byte) string {
	return w.verifier.Sign(payload)
}

// ParseEvent verifies the signature, then decodes and normalizes the payload.
func (w *Webhooks) ParseEvent(payload []byte, signature string) (Event, error) {
	if !w.verifier.Verify(payload, signature) {
		return Event{}, core.NewVerificationError("Invalid webhook signature")
	}
	return DecodeEvent(payload)
}

func (w *Webhooks) Dispatch(ctx context.Context, event Event, handlers HandlerTable) (DispatchResult, error) {
	return w.dispatcher.Dispatch(ctx, event, handlers)
}

// Handle runs ParseEvent followed by Dispatch.
func (w *Webhooks) Handle(ctx context.Context, payload []byte, signature string, handlers HandlerTable) (DispatchResult, error) {
	event, err := w.ParseEvent(payload, signature)
	if err != nil {
		core.LogWarn(ctx, w.logger, "webhook delivery rejected", map[string]any{
			"error": core.Describe(err),
		})
		return DispatchResult{}, err
	}
	return w.Dispatch(ctx, event, handlers)
}
