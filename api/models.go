package api

import (
	"time"

	"github.com/shopspring/decimal"
)

type Customer struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

type Account struct {
	ID               string          `json:"id"`
	AccountNumber    string          `json:"accountNumber"`
	AccountType      string          `json:"accountType"`
	Currency         string          `json:"currency"`
	Balance          decimal.Decimal `json:"balance"`
	AvailableBalance decimal.Decimal `json:"availableBalance"`
	Status           string          `json:"status"`
	Customer         *Customer       `json:"customer,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

type Pagination struct {
	Limit      int `json:"limit"`
	Offset     int `json:"offset"`
	Page       int `json:"page,omitempty"`
	Total      int `json:"total,omitempty"`
	TotalPages int `json:"totalPages,omitempty"`
}

type AccountList struct {
	Data       []Account  `json:"data"`
	Pagination Pagination `json:"pagination"`
}

type Balance struct {
	Balance   decimal.Decimal `json:"balance"`
	Available decimal.Decimal `json:"available"`
	Currency  string          `json:"currency"`
}

type Transaction struct {
	ID              string          `json:"id"`
	TransactionRef  string          `json:"transactionRef"`
	Type            string          `json:"type"`
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency"`
	BalanceAfter    decimal.Decimal `json:"balanceAfter"`
	Description     string          `json:"description"`
	Status          string          `json:"status"`
	TransactionDate time.Time       `json:"transactionDate"`
	CreatedAt       time.Time       `json:"createdAt"`
}

type TransactionList struct {
	Data       []Transaction `json:"data"`
	Pagination *Pagination   `json:"pagination,omitempty"`
}

type Payment struct {
	ID                       string          `json:"id"`
	PaymentRef               string          `json:"paymentRef"`
	SourceAccountID          string          `json:"sourceAccountId"`
	DestinationAccountNumber string          `json:"destinationAccountNumber"`
	Amount                   decimal.Decimal `json:"amount"`
	Currency                 string          `json:"currency"`
	Reference                string          `json:"reference"`
	Description              string          `json:"description"`
	Status                   string          `json:"status"`
	RiskScore                *float64        `json:"riskScore,omitempty"`
	FailureReason            string          `json:"failureReason,omitempty"`
	CompletedAt              *time.Time      `json:"completedAt,omitempty"`
	CreatedAt                time.Time       `json:"createdAt"`
}

type PaymentStatus struct {
	ID          string     `json:"id"`
	PaymentRef  string     `json:"paymentRef"`
	Status      string     `json:"status"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

type PaymentList struct {
	Data       []Payment   `json:"data"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

type MpesaSTKPushResponse struct {
	ID                  string `json:"id"`
	Status              string `json:"status"`
	MerchantRequestID   string `json:"merchantRequestId,omitempty"`
	CheckoutRequestID   string `json:"checkoutRequestId,omitempty"`
	ResponseDescription string `json:"responseDescription,omitempty"`
	CustomerMessage     string `json:"customerMessage,omitempty"`
}

type WebhookEndpoint struct {
	ID       string   `json:"id"`
	URL      string   `json:"url"`
	Events   []string `json:"events"`
	Secret   string   `json:"secret,omitempty"`
	IsActive bool     `json:"isActive"`
}

type WebhookEndpointList struct {
	Data []WebhookEndpoint `json:"data"`
}
