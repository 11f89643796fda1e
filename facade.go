package wekeza

import (
	"fmt"

	wekezacommand "github.com/goliatone/go-wekeza/command"
	wekezaquery "github.com/goliatone/go-wekeza/query"
)

type Commands struct {
	InitiatePayment         *wekezacommand.InitiatePaymentCommand
	CancelPayment           *wekezacommand.CancelPaymentCommand
	MpesaSTKPush            *wekezacommand.MpesaSTKPushCommand
	RegisterWebhookEndpoint *wekezacommand.RegisterWebhookEndpointCommand
}

type Queries struct {
	ListAccounts         *wekezaquery.ListAccountsQuery
	GetAccount           *wekezaquery.GetAccountQuery
	GetBalance           *wekezaquery.GetBalanceQuery
	GetTransactions      *wekezaquery.GetTransactionsQuery
	GetPayment           *wekezaquery.GetPaymentQuery
	GetPaymentStatus     *wekezaquery.GetPaymentStatusQuery
	ListPayments         *wekezaquery.ListPaymentsQuery
	ListWebhookEndpoints *wekezaquery.ListWebhookEndpointsQuery
}

// Facade exposes the client resources as go-command commands and queries.
type Facade struct {
	client   *Client
	commands Commands
	queries  Queries
}

func NewFacade(client *Client) (*Facade, error) {
	if client == nil {
		return nil, fmt.Errorf("wekeza: client is required")
	}
	if client.Accounts == nil || client.Payments == nil || client.WebhookEndpoints == nil {
		return nil, fmt.Errorf("wekeza: client resources are not configured")
	}

	facade := &Facade{client: client}
	facade.commands = Commands{
		InitiatePayment:         wekezacommand.NewInitiatePaymentCommand(client.Payments),
		CancelPayment:           wekezacommand.NewCancelPaymentCommand(client.Payments),
		MpesaSTKPush:            wekezacommand.NewMpesaSTKPushCommand(client.Payments),
		RegisterWebhookEndpoint: wekezacommand.NewRegisterWebhookEndpointCommand(client.WebhookEndpoints),
	}
	facade.queries = Queries{
		ListAccounts:         wekezaquery.NewListAccountsQuery(client.Accounts),
		GetAccount:           wekezaquery.NewGetAccountQuery(client.Accounts),
		GetBalance:           wekezaquery.NewGetBalanceQuery(client.Accounts),
		GetTransactions:      wekezaquery.NewGetTransactionsQuery(client.Accounts),
		GetPayment:           wekezaquery.NewGetPaymentQuery(client.Payments),
		GetPaymentStatus:     wekezaquery.NewGetPaymentStatusQuery(client.Payments),
		ListPayments:         wekezaquery.NewListPaymentsQuery(client.Payments),
		ListWebhookEndpoints: wekezaquery.NewListWebhookEndpointsQuery(client.WebhookEndpoints),
	}
	return facade, nil
}

func (f *Facade) Commands() Commands {
	if f == nil {
		return Commands{}
	}
	return f.commands
}

func (f *Facade) Queries() Queries {
	if f == nil {
		return Queries{}
	}
	return f.queries
}

func (f *Facade) Client() *Client {
	if f == nil {
		return nil
	}
	return f.client
}
