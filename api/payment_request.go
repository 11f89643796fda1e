package api

import (
	"encoding/json"
	"strings"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-wekeza/core"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is applied when a payment request leaves Currency empty.
const DefaultCurrency = "KES"

type PaymentRequest struct {
	SourceAccountID          string
	DestinationAccountNumber string
	Amount                   decimal.Decimal
	Currency                 string
	Reference                string
	Description              string
}

type paymentRequestWire struct {
	SourceAccountID          string      `json:"sourceAccountId"`
	DestinationAccountNumber string      `json:"destinationAccountNumber"`
	Amount                   json.Number `json:"amount"`
	Currency                 string      `json:"currency"`
	Reference                string      `json:"reference,omitempty"`
	Description              string      `json:"description,omitempty"`
}

// Normalized trims fields, upper-cases the currency and applies DefaultCurrency.
func (r PaymentRequest) Normalized() PaymentRequest {
	r.SourceAccountID = strings.TrimSpace(r.SourceAccountID)
	r.DestinationAccountNumber = strings.TrimSpace(r.DestinationAccountNumber)
	r.Currency = strings.ToUpper(strings.TrimSpace(r.Currency))
	if r.Currency == "" {
		r.Currency = DefaultCurrency
	}
	r.Reference = strings.TrimSpace(r.Reference)
	r.Description = strings.TrimSpace(r.Description)
	return r
}

func (r PaymentRequest) Validate() error {
	r = r.Normalized()
	var fields []goerrors.FieldError
	if r.SourceAccountID == "" {
		fields = append(fields, goerrors.FieldError{Field: "sourceAccountId", Message: "Source account ID is required"})
	}
	if r.DestinationAccountNumber == "" {
		fields = append(fields, goerrors.FieldError{Field: "destinationAccountNumber", Message: "Destination account number is required"})
	}
	if !r.Amount.IsPositive() {
		fields = append(fields, goerrors.FieldError{Field: "amount", Message: "Amount must be greater than 0"})
	}
	if !isCurrencyCode(r.Currency) {
		fields = append(fields, goerrors.FieldError{Field: "currency", Message: "Currency must be 3 characters"})
	}
	if len(fields) > 0 {
		return core.NewValidationError("api: invalid payment request", fields...)
	}
	return nil
}

func (r PaymentRequest) MarshalJSON() ([]byte, error) {
	r = r.Normalized()
	return json.Marshal(paymentRequestWire{
		SourceAccountID:          r.SourceAccountID,
		DestinationAccountNumber: r.DestinationAccountNumber,
		Amount:                   json.Number(r.Amount.String()),
		Currency:                 r.Currency,
		Reference:                r.Reference,
		Description:              r.Description,
	})
}

type MpesaSTKPushRequest struct {
	PhoneNumber      string
	Amount           decimal.Decimal
	AccountReference string
	TransactionDesc  string
	// SourceAccountID optionally names the account credited by the push.
	SourceAccountID string
}

type mpesaSTKPushWire struct {
	PhoneNumber      string      `json:"phoneNumber"`
	Amount           json.Number `json:"amount"`
	AccountReference string      `json:"accountReference,omitempty"`
	TransactionDesc  string      `json:"transactionDesc,omitempty"`
	SourceAccountID  string      `json:"sourceAccountId,omitempty"`
}

func (r MpesaSTKPushRequest) Validate() error {
	var fields []goerrors.FieldError
	if strings.TrimSpace(r.PhoneNumber) == "" {
		fields = append(fields, goerrors.FieldError{Field: "phoneNumber", Message: "Phone number is required"})
	}
	if !r.Amount.IsPositive() {
		fields = append(fields, goerrors.FieldError{Field: "amount", Message: "Amount must be greater than 0"})
	}
	if len(fields) > 0 {
		return core.NewValidationError("api: invalid mpesa stk push request", fields...)
	}
	return nil
}

func (r MpesaSTKPushRequest) MarshalJSON() ([]byte, error) {
	return json.Marshal(mpesaSTKPushWire{
		PhoneNumber:      strings.TrimSpace(r.PhoneNumber),
		Amount:           json.Number(r.Amount.String()),
		AccountReference: strings.TrimSpace(r.AccountReference),
		TransactionDesc:  strings.TrimSpace(r.TransactionDesc),
		SourceAccountID:  strings.TrimSpace(r.SourceAccountID),
	})
}

func isCurrencyCode(value string) bool {
	if len(value) != 3 {
		return false
	}
	for _, r := range value {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
