package webhooks

import "github.com/shopspring/decimal"

type TransactionEventData struct {
	ID             string          `json:"id"`
	AccountID      string          `json:"accountId,omitempty"`
	TransactionRef string          `json:"transactionRef,omitempty"`
	Type           string          `json:"type,omitempty"`
	Amount         decimal.Decimal `json:"amount"`
	Currency       string          `json:"currency"`
	Description    string          `json:"description,omitempty"`
}

type PaymentEventData struct {
	ID            string          `json:"id"`
	PaymentRef    string          `json:"paymentRef,omitempty"`
	Status        string          `json:"status"`
	Amount        decimal.Decimal `json:"amount,omitempty"`
	Currency      string          `json:"currency,omitempty"`
	FailureReason string          `json:"failureReason,omitempty"`
}

type BalanceLowEventData struct {
	AccountID      string          `json:"accountId"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
	Currency       string          `json:"currency,omitempty"`
	Threshold      decimal.Decimal `json:"threshold,omitempty"`
}
