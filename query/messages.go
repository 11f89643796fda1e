package query

import (
	"strings"

	"github.com/goliatone/go-wekeza/api"
)

const (
	TypeListAccounts         = "wekeza.query.account.list"
	TypeGetAccount           = "wekeza.query.account.get"
	TypeGetBalance           = "wekeza.query.account.balance"
	TypeGetTransactions      = "wekeza.query.account.transactions"
	TypeGetPayment           = "wekeza.query.payment.get"
	TypeGetPaymentStatus     = "wekeza.query.payment.status"
	TypeListPayments         = "wekeza.query.payment.list"
	TypeListWebhookEndpoints = "wekeza.query.webhook_endpoint.list"
)

type ListAccountsMessage struct {
	Params api.ListAccountsParams
}

func (ListAccountsMessage) Type() string { return TypeListAccounts }

func (m ListAccountsMessage) Validate() error {
	if m.Params.Limit < 0 {
		return queryValidationError("limit", "must not be negative")
	}
	if m.Params.Offset < 0 {
		return queryValidationError("offset", "must not be negative")
	}
	return nil
}

type GetAccountMessage struct {
	AccountID string
}

func (GetAccountMessage) Type() string { return TypeGetAccount }

func (m GetAccountMessage) Validate() error {
	return requireAccountID(m.AccountID)
}

type GetBalanceMessage struct {
	AccountID string
}

func (GetBalanceMessage) Type() string { return TypeGetBalance }

func (m GetBalanceMessage) Validate() error {
	return requireAccountID(m.AccountID)
}

type GetTransactionsMessage struct {
	AccountID string
	Params    api.TransactionParams
}

func (GetTransactionsMessage) Type() string { return TypeGetTransactions }

func (m GetTransactionsMessage) Validate() error {
	if err := requireAccountID(m.AccountID); err != nil {
		return err
	}
	if !m.Params.FromDate.IsZero() && !m.Params.ToDate.IsZero() && m.Params.ToDate.Before(m.Params.FromDate) {
		return queryValidationError("to_date", "must not be before from_date")
	}
	return nil
}

type GetPaymentMessage struct {
	PaymentID string
}

func (GetPaymentMessage) Type() string { return TypeGetPayment }

func (m GetPaymentMessage) Validate() error {
	return requirePaymentID(m.PaymentID)
}

type GetPaymentStatusMessage struct {
	PaymentID string
}

func (GetPaymentStatusMessage) Type() string { return TypeGetPaymentStatus }

func (m GetPaymentStatusMessage) Validate() error {
	return requirePaymentID(m.PaymentID)
}

type ListPaymentsMessage struct {
	Params api.PaymentListParams
}

func (ListPaymentsMessage) Type() string { return TypeListPayments }

func (m ListPaymentsMessage) Validate() error {
	if m.Params.Page < 0 {
		return queryValidationError("page", "must not be negative")
	}
	if m.Params.Limit < 0 {
		return queryValidationError("limit", "must not be negative")
	}
	return nil
}

type ListWebhookEndpointsMessage struct{}

func (ListWebhookEndpointsMessage) Type() string { return TypeListWebhookEndpoints }

func (ListWebhookEndpointsMessage) Validate() error { return nil }

func requireAccountID(id string) error {
	if strings.TrimSpace(id) == "" {
		return queryValidationError("account_id", "required")
	}
	return nil
}

func requirePaymentID(id string) error {
	if strings.TrimSpace(id) == "" {
		return queryValidationError("payment_id", "required")
	}
	return nil
}
