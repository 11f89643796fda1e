package query

import (
	"context"

	"github.com/goliatone/go-wekeza/api"
)

type AccountReader interface {
	ListAccounts(ctx context.Context, params api.ListAccountsParams) (api.AccountList, error)
	GetAccount(ctx context.Context, accountID string) (api.Account, error)
	GetBalance(ctx context.Context, accountID string) (api.Balance, error)
	GetTransactions(ctx context.Context, accountID string, params api.TransactionParams) (api.TransactionList, error)
}

type PaymentReader interface {
	GetPayment(ctx context.Context, paymentID string) (api.Payment, error)
	GetPaymentStatus(ctx context.Context, paymentID string) (api.PaymentStatus, error)
	ListPayments(ctx context.Context, params api.PaymentListParams) (api.PaymentList, error)
}

type WebhookEndpointReader interface {
	List(ctx context.Context) (api.WebhookEndpointList, error)
}

type ListAccountsQuery struct {
	reader AccountReader
}

func NewListAccountsQuery(reader AccountReader) *ListAccountsQuery {
	return &ListAccountsQuery{reader: reader}
}

func (q *ListAccountsQuery) Query(ctx context.Context, msg ListAccountsMessage) (api.AccountList, error) {
	if q == nil || q.reader == nil {
		return api.AccountList{}, queryDependencyError("query: account reader is required")
	}
	return q.reader.ListAccounts(ctx, msg.Params)
}

type GetAccountQuery struct {
	reader AccountReader
}

func NewGetAccountQuery(reader AccountReader) *GetAccountQuery {
	return &GetAccountQuery{reader: reader}
}

func (q *GetAccountQuery) Query(ctx context.Context, msg GetAccountMessage) (api.Account, error) {
	if q == nil || q.reader == nil {
		return api.Account{}, queryDependencyError("query: account reader is required")
	}
	return q.reader.GetAccount(ctx, msg.AccountID)
}

type GetBalanceQuery struct {
	reader AccountReader
}

func NewGetBalanceQuery(reader AccountReader) *GetBalanceQuery {
	return &GetBalanceQuery{reader: reader}
}

func (q *GetBalanceQuery) Query(ctx context.Context, msg GetBalanceMessage) (api.Balance, error) {
	if q == nil || q.reader == nil {
		return api.Balance{}, queryDependencyError("query: account reader is required")
	}
	return q.reader.GetBalance(ctx, msg.AccountID)
}

type GetTransactionsQuery struct {
	reader AccountReader
}

func NewGetTransactionsQuery(reader AccountReader) *GetTransactionsQuery {
	return &GetTransactionsQuery{reader: reader}
}

func (q *GetTransactionsQuery) Query(ctx context.Context, msg GetTransactionsMessage) (api.TransactionList, error) {
	if q == nil || q.reader == nil {
		return api.TransactionList{}, queryDependencyError("query: account reader is required")
	}
	return q.reader.GetTransactions(ctx, msg.AccountID, msg.Params)
}

type GetPaymentQuery struct {
	reader PaymentReader
}

func NewGetPaymentQuery(reader PaymentReader) *GetPaymentQuery {
	return &GetPaymentQuery{reader: reader}
}

func (q *GetPaymentQuery) Query(ctx context.Context, msg GetPaymentMessage) (api.Payment, error) {
	if q == nil || q.reader == nil {
		return api.Payment{}, queryDependencyError("query: payment reader is required")
	}
	return q.reader.GetPayment(ctx, msg.PaymentID)
}

type GetPaymentStatusQuery struct {
	reader PaymentReader
}

func NewGetPaymentStatusQuery(reader PaymentReader) *GetPaymentStatusQuery {
	return &GetPaymentStatusQuery{reader: reader}
}

func (q *GetPaymentStatusQuery) Query(ctx context.Context, msg GetPaymentStatusMessage) (api.PaymentStatus, error) {
	if q == nil || q.reader == nil {
		return api.PaymentStatus{}, queryDependencyError("query: payment reader is required")
	}
	return q.reader.GetPaymentStatus(ctx, msg.PaymentID)
}

type ListPaymentsQuery struct {
	reader PaymentReader
}

func NewListPaymentsQuery(reader PaymentReader) *ListPaymentsQuery {
	return &ListPaymentsQuery{reader: reader}
}

func (q *ListPaymentsQuery) Query(ctx context.Context, msg ListPaymentsMessage) (api.PaymentList, error) {
	if q == nil || q.reader == nil {
		return api.PaymentList{}, queryDependencyError("query: payment reader is required")
	}
	return q.reader.ListPayments(ctx, msg.Params)
}

type ListWebhookEndpointsQuery struct {
	reader WebhookEndpointReader
}

func NewListWebhookEndpointsQuery(reader WebhookEndpointReader) *ListWebhookEndpointsQuery {
	return &ListWebhookEndpointsQuery{reader: reader}
}

func (q *ListWebhookEndpointsQuery) Query(ctx context.Context, _ ListWebhookEndpointsMessage) (api.WebhookEndpointList, error) {
	if q == nil || q.reader == nil {
		return api.WebhookEndpointList{}, queryDependencyError("query: webhook endpoint reader is required")
	}
	return q.reader.List(ctx)
}
