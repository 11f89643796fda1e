package core

import (
	"context"
	"time"

	glog "github.com/goliatone/go-logger/glog"
)

type TransportRequest struct {
	Method  string
	URL     string
	Headers map[string]string
	Query   map[string]string
	Body    []byte
	// Timeout bounds this single request when positive.
	Timeout time.Duration
}

type TransportResponse struct {
	StatusCode int
	Headers    map[string]string
	Body       []byte
	Metadata   map[string]any
}

// Transport executes a single HTTP exchange. Implementations must return a
// NetworkError when no response was received and must not retry.
type Transport interface {
	Do(ctx context.Context, req TransportRequest) (TransportResponse, error)
}

// TokenSource supplies bearer tokens for resource calls.
type TokenSource interface {
	AccessToken(ctx context.Context) (string, error)
	ClearTokens()
}

// Clock returns the current time.
type Clock func() time.Time

type Logger = glog.Logger

type LoggerProvider = glog.LoggerProvider

type FieldsLogger = glog.FieldsLogger
