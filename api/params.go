package api

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-wekeza/core"
)

type ListAccountsParams struct {
	Limit      int
	Offset     int
	CustomerID string
}

func (p ListAccountsParams) query() map[string]string {
	return map[string]string{
		"limit":      formatPositive(p.Limit),
		"offset":     formatPositive(p.Offset),
		"customerId": strings.TrimSpace(p.CustomerID),
	}
}

type TransactionParams struct {
	FromDate time.Time
	ToDate   time.Time
	Type     string
	Limit    int
}

func (p TransactionParams) query() map[string]string {
	return map[string]string{
		"fromDate": formatTime(p.FromDate),
		"toDate":   formatTime(p.ToDate),
		"type":     strings.TrimSpace(p.Type),
		"limit":    formatPositive(p.Limit),
	}
}

type PaymentListParams struct {
	SourceAccountID string
	Status          string
	FromDate        time.Time
	ToDate          time.Time
	Page            int
	Limit           int
}

func (p PaymentListParams) query() map[string]string {
	return map[string]string{
		"sourceAccountId": strings.TrimSpace(p.SourceAccountID),
		"status":          strings.TrimSpace(p.Status),
		"fromDate":        formatTime(p.FromDate),
		"toDate":          formatTime(p.ToDate),
		"page":            formatPositive(p.Page),
		"limit":           formatPositive(p.Limit),
	}
}

func formatPositive(value int) string {
	if value <= 0 {
		return ""
	}
	return strconv.Itoa(value)
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}
	return value.UTC().Format(time.RFC3339)
}

// resourcePath joins escaped path segments under a collection root.
func resourcePath(root string, segments ...string) string {
	var b strings.Builder
	b.WriteString(root)
	for _, segment := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(segment))
	}
	return b.String()
}

func requireID(field string, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", core.NewValidationError("api: "+field+" is required",
			goerrors.FieldError{Field: field, Message: "required"},
		)
	}
	return value, nil
}
