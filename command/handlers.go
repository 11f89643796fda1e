package command

import (
	"context"

	gocmd "github.com/goliatone/go-command"
	"github.com/goliatone/go-wekeza/api"
)

type PaymentService interface {
	InitiatePayment(ctx context.Context, req api.PaymentRequest, opts ...api.InitiateOption) (api.Payment, error)
	CancelPayment(ctx context.Context, paymentID string, reason string) (api.Payment, error)
	MpesaSTKPush(ctx context.Context, req api.MpesaSTKPushRequest) (api.MpesaSTKPushResponse, error)
}

type WebhookEndpointService interface {
	Register(ctx context.Context, req api.WebhookEndpointRequest) (api.WebhookEndpoint, error)
}

type InitiatePaymentCommand struct {
	service PaymentService
}

func NewInitiatePaymentCommand(service PaymentService) *InitiatePaymentCommand {
	return &InitiatePaymentCommand{service: service}
}

// Execute submits the payment and stores the api.Payment in the context
// result collector, when one is present.
func (c *InitiatePaymentCommand) Execute(ctx context.Context, msg InitiatePaymentMessage) error {
	if c == nil || c.service == nil {
		return commandDependencyError("command: payment service is required")
	}
	out, err := c.service.InitiatePayment(ctx, msg.Request, msg.options()...)
	if err != nil {
		return err
	}
	storeResult(ctx, out)
	return nil
}

type CancelPaymentCommand struct {
	service PaymentService
}

func NewCancelPaymentCommand(service PaymentService) *CancelPaymentCommand {
	return &CancelPaymentCommand{service: service}
}

func (c *CancelPaymentCommand) Execute(ctx context.Context, msg CancelPaymentMessage) error {
	if c == nil || c.service == nil {
		return commandDependencyError("command: payment service is required")
	}
	out, err := c.service.CancelPayment(ctx, msg.PaymentID, msg.Reason)
	if err != nil {
		return err
	}
	storeResult(ctx, out)
	return nil
}

type MpesaSTKPushCommand struct {
	service PaymentService
}

func NewMpesaSTKPushCommand(service PaymentService) *MpesaSTKPushCommand {
	return &MpesaSTKPushCommand{service: service}
}

func (c *MpesaSTKPushCommand) Execute(ctx context.Context, msg MpesaSTKPushMessage) error {
	if c == nil || c.service == nil {
		return commandDependencyError("command: payment service is required")
	}
	out, err := c.service.MpesaSTKPush(ctx, msg.Request)
	if err != nil {
		return err
	}
	storeResult(ctx, out)
	return nil
}

type RegisterWebhookEndpointCommand struct {
	service WebhookEndpointService
}

func NewRegisterWebhookEndpointCommand(service WebhookEndpointService) *RegisterWebhookEndpointCommand {
	return &RegisterWebhookEndpointCommand{service: service}
}

func (c *RegisterWebhookEndpointCommand) Execute(ctx context.Context, msg RegisterWebhookEndpointMessage) error {
	if c == nil || c.service == nil {
		return commandDependencyError("command: webhook endpoint service is required")
	}
	out, err := c.service.Register(ctx, msg.Request)
	if err != nil {
		return err
	}
	storeResult(ctx, out)
	return nil
}

func storeResult[T any](ctx context.Context, value T) {
	collector := gocmd.ResultFromContext[T](ctx)
	if collector == nil {
		return
	}
	collector.Store(value)
}
