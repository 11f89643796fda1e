package command

import (
	"strings"

	"github.com/goliatone/go-wekeza/api"
)

const (
	TypeInitiatePayment         = "wekeza.command.payment.initiate"
	TypeCancelPayment           = "wekeza.command.payment.cancel"
	TypeMpesaSTKPush            = "wekeza.command.payment.mpesa_stk_push"
	TypeRegisterWebhookEndpoint = "wekeza.command.webhook_endpoint.register"
)

type InitiatePaymentMessage struct {
	Request api.PaymentRequest
	// IdempotencyKey overrides key resolution when set.
	IdempotencyKey string
	// IntentID groups retries of one logical payment under a single key.
	IntentID string
}

func (InitiatePaymentMessage) Type() string { return TypeInitiatePayment }

func (m InitiatePaymentMessage) Validate() error {
	return m.Request.Validate()
}

func (m InitiatePaymentMessage) options() []api.InitiateOption {
	var opts []api.InitiateOption
	if key := strings.TrimSpace(m.IdempotencyKey); key != "" {
		opts = append(opts, api.WithIdempotencyKey(key))
	}
	if intentID := strings.TrimSpace(m.IntentID); intentID != "" {
		opts = append(opts, api.WithIntentID(intentID))
	}
	return opts
}

type CancelPaymentMessage struct {
	PaymentID string
	Reason    string
}

func (CancelPaymentMessage) Type() string { return TypeCancelPayment }

func (m CancelPaymentMessage) Validate() error {
	if strings.TrimSpace(m.PaymentID) == "" {
		return commandValidationError("payment_id", "required")
	}
	if strings.TrimSpace(m.Reason) == "" {
		return commandValidationError("reason", "required")
	}
	return nil
}

type MpesaSTKPushMessage struct {
	Request api.MpesaSTKPushRequest
}

func (MpesaSTKPushMessage) Type() string { return TypeMpesaSTKPush }

func (m MpesaSTKPushMessage) Validate() error {
	return m.Request.Validate()
}

type RegisterWebhookEndpointMessage struct {
	Request api.WebhookEndpointRequest
}

func (RegisterWebhookEndpointMessage) Type() string { return TypeRegisterWebhookEndpoint }

func (m RegisterWebhookEndpointMessage) Validate() error {
	return m.Request.Validate()
}
