package api

import (
	"context"
	"net/http"
	"strings"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-wekeza/core"
)

const paymentsPath = "/payments"

type Payments struct {
	requester *Requester
	intents   IntentStore
	newKey    func() (string, error)
	logger    core.Logger
}

type PaymentsOption func(*Payments)

// WithIntentStore makes InitiatePayment reuse one key per payment intent.
// Calls without WithIntentID still get a fresh key.
func WithIntentStore(store IntentStore) PaymentsOption {
	return func(p *Payments) {
		p.intents = store
	}
}

func WithKeyGenerator(generate func() (string, error)) PaymentsOption {
	return func(p *Payments) {
		if generate != nil {
			p.newKey = generate
		}
	}
}

func WithPaymentsLogger(logger core.Logger) PaymentsOption {
	return func(p *Payments) {
		if logger != nil {
			p.logger = logger
		}
	}
}

func NewPayments(requester *Requester, opts ...PaymentsOption) *Payments {
	p := &Payments{
		requester: requester,
		newKey:    GenerateIdempotencyKey,
		logger:    core.ResolveLogger("wekeza.payments", nil, nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	return p
}

type initiateOptions struct {
	idempotencyKey string
	intentID       string
}

type InitiateOption func(*initiateOptions)

// WithIdempotencyKey sends key instead of a generated one.
func WithIdempotencyKey(key string) InitiateOption {
	return func(o *initiateOptions) {
		o.idempotencyKey = strings.TrimSpace(key)
	}
}

// WithIntentID names the logical payment for key reuse. Only calls carrying
// an intent id consult the IntentStore; the request Reference is never used
// as one, since unrelated payments may share a reference.
func WithIntentID(intentID string) InitiateOption {
	return func(o *initiateOptions) {
		o.intentID = strings.TrimSpace(intentID)
	}
}

// InitiatePayment submits a payment with exactly one Idempotency-Key header.
// The request is validated before any token or network work.
func (p *Payments) InitiatePayment(ctx context.Context, req PaymentRequest, opts ...InitiateOption) (Payment, error) {
	if err := req.Validate(); err != nil {
		return Payment{}, err
	}
	var options initiateOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&options)
		}
	}
	req = req.Normalized()

	key, intentID, err := p.resolveKey(ctx, options)
	if err != nil {
		return Payment{}, err
	}
	core.LogDebug(ctx, p.logger, "initiating payment", map[string]any{
		"idempotency_key": key,
		"account_id":      req.SourceAccountID,
	})

	var out Payment
	err = p.requester.DoInto(ctx, Call{
		Method:  http.MethodPost,
		Path:    paymentsPath,
		Body:    req,
		Headers: map[string]string{IdempotencyHeader: key},
	}, &out)
	if err != nil {
		return out, err
	}
	p.recordPayment(ctx, intentID, out.ID)
	return out, nil
}

// resolveKey returns the key to send and, when the key came from the intent
// store, the intent it is bound to.
func (p *Payments) resolveKey(ctx context.Context, options initiateOptions) (string, string, error) {
	if options.idempotencyKey != "" {
		return options.idempotencyKey, "", nil
	}
	intentID := options.intentID
	if p.intents != nil && intentID != "" {
		key, err := p.intents.KeyFor(ctx, intentID, p.newKey)
		if err != nil {
			return "", "", core.EnsureRequestError(err, "api: resolve payment intent key", map[string]any{
				"intent_id": intentID,
			})
		}
		return key, intentID, nil
	}
	key, err := p.newKey()
	return key, "", err
}

func (p *Payments) recordPayment(ctx context.Context, intentID string, paymentID string) {
	recorder, ok := p.intents.(IntentRecorder)
	if !ok || intentID == "" || strings.TrimSpace(paymentID) == "" {
		return
	}
	if err := recorder.RecordPayment(ctx, intentID, paymentID); err != nil {
		core.LogWarn(ctx, p.logger, "payment intent record failed", map[string]any{
			"intent_id":  intentID,
			"payment_id": paymentID,
			"error":      err.Error(),
		})
	}
}

func (p *Payments) GetPayment(ctx context.Context, paymentID string) (Payment, error) {
	id, err := requireID("payment_id", paymentID)
	if err != nil {
		return Payment{}, err
	}
	var out Payment
	err = p.requester.DoInto(ctx, Call{
		Method: http.MethodGet,
		Path:   resourcePath(paymentsPath, id),
	}, &out)
	return out, err
}

func (p *Payments) GetPaymentStatus(ctx context.Context, paymentID string) (PaymentStatus, error) {
	id, err := requireID("payment_id", paymentID)
	if err != nil {
		return PaymentStatus{}, err
	}
	var out PaymentStatus
	err = p.requester.DoInto(ctx, Call{
		Method: http.MethodGet,
		Path:   resourcePath(paymentsPath, id, "status"),
	}, &out)
	return out, err
}

func (p *Payments) ListPayments(ctx context.Context, params PaymentListParams) (PaymentList, error) {
	var out PaymentList
	err := p.requester.DoInto(ctx, Call{
		Method: http.MethodGet,
		Path:   paymentsPath,
		Query:  params.query(),
	}, &out)
	return out, err
}

func (p *Payments) CancelPayment(ctx context.Context, paymentID string, reason string) (Payment, error) {
	id, err := requireID("payment_id", paymentID)
	if err != nil {
		return Payment{}, err
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return Payment{}, core.NewValidationError("api: cancellation reason is required",
			goerrors.FieldError{Field: "reason", Message: "required"},
		)
	}
	var out Payment
	err = p.requester.DoInto(ctx, Call{
		Method: http.MethodPost,
		Path:   resourcePath(paymentsPath, id, "cancel"),
		Body:   map[string]string{"reason": reason},
	}, &out)
	return out, err
}

func (p *Payments) MpesaSTKPush(ctx context.Context, req MpesaSTKPushRequest) (MpesaSTKPushResponse, error) {
	if err := req.Validate(); err != nil {
		return MpesaSTKPushResponse{}, err
	}
	var out MpesaSTKPushResponse
	err := p.requester.DoInto(ctx, Call{
		Method: http.MethodPost,
		Path:   paymentsPath + "/mpesa/stk-push",
		Body:   req,
	}, &out)
	return out, err
}
