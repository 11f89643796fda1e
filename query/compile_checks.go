package query

import (
	gocmd "github.com/goliatone/go-command"
	"github.com/goliatone/go-wekeza/api"
)

var (
	_ gocmd.Querier[ListAccountsMessage, api.AccountList]                 = (*ListAccountsQuery)(nil)
	_ gocmd.Querier[GetAccountMessage, api.Account]                       = (*GetAccountQuery)(nil)
	_ gocmd.Querier[GetBalanceMessage, api.Balance]                       = (*GetBalanceQuery)(nil)
	_ gocmd.Querier[GetTransactionsMessage, api.TransactionList]          = (*GetTransactionsQuery)(nil)
	_ gocmd.Querier[GetPaymentMessage, api.Payment]                       = (*GetPaymentQuery)(nil)
	_ gocmd.Querier[GetPaymentStatusMessage, api.PaymentStatus]           = (*GetPaymentStatusQuery)(nil)
	_ gocmd.Querier[ListPaymentsMessage, api.PaymentList]                 = (*ListPaymentsQuery)(nil)
	_ gocmd.Querier[ListWebhookEndpointsMessage, api.WebhookEndpointList] = (*ListWebhookEndpointsQuery)(nil)

	_ AccountReader         = (*api.Accounts)(nil)
	_ PaymentReader         = (*api.Payments)(nil)
	_ WebhookEndpointReader = (*api.WebhookEndpoints)(nil)
)
