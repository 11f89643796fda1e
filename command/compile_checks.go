package command

import (
	gocmd "github.com/goliatone/go-command"
	"github.com/goliatone/go-wekeza/api"
)

var (
	_ gocmd.Commander[InitiatePaymentMessage]         = (*InitiatePaymentCommand)(nil)
	_ gocmd.Commander[CancelPaymentMessage]           = (*CancelPaymentCommand)(nil)
	_ gocmd.Commander[MpesaSTKPushMessage]            = (*MpesaSTKPushCommand)(nil)
	_ gocmd.Commander[RegisterWebhookEndpointMessage] = (*RegisterWebhookEndpointCommand)(nil)

	_ PaymentService         = (*api.Payments)(nil)
	_ WebhookEndpointService = (*api.WebhookEndpoints)(nil)
)
