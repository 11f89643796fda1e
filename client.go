package wekeza

import (
	"context"

	"github.com/goliatone/go-wekeza/api"
	"github.com/goliatone/go-wekeza/auth"
	"github.com/goliatone/go-wekeza/core"
	"github.com/goliatone/go-wekeza/transport"
	"github.com/goliatone/go-wekeza/webhooks"
)

type Config = core.Config

func DefaultConfig() Config {
	return core.DefaultConfig()
}

// Client is the composition root. Every resource shares one token cache and
// one transport.
type Client struct {
	Auth             *auth.TokenCache
	Accounts         *api.Accounts
	Payments         *api.Payments
	WebhookEndpoints *api.WebhookEndpoints
	// Webhooks is nil unless a webhook secret is configured.
	Webhooks *webhooks.Webhooks

	config    Config
	transport core.Transport
	logger    core.Logger
}

// New builds a client from cfg. Empty fields fall back to the sandbox
// defaults; client id and secret are required.
func New(cfg Config, opts ...Option) (*Client, error) {
	builder := newClientBuilder(opts)
	return builder.build(context.Background(), cfg)
}

// FromEnv builds a client from WEKEZA_* environment variables, reading a
// .env file first when one exists. Options still apply on top.
func FromEnv(ctx context.Context, opts ...Option) (*Client, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	builder := newClientBuilder(opts)
	if builder.configProvider == nil {
		builder.configProvider = core.NewCfgxConfigProvider(core.NewEnvConfigLoader(builder.envFiles...))
	}
	return builder.build(ctx, Config{})
}

func newClientBuilder(opts []Option) *clientBuilder {
	builder := &clientBuilder{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(builder)
	}
	return builder
}

func (b *clientBuilder) build(ctx context.Context, runtime Config) (*Client, error) {
	if b.configProvider == nil {
		b.configProvider = core.NewCfgxConfigProvider(nil)
	}
	if b.optionsResolver == nil {
		b.optionsResolver = core.GoOptionsResolver{}
	}

	defaults := core.DefaultConfig()
	loaded, err := b.configProvider.Load(ctx, defaults)
	if err != nil {
		return nil, core.EnsureRequestError(err, "wekeza: load config", nil)
	}
	cfg, err := b.optionsResolver.Resolve(defaults, loaded, runtime)
	if err != nil {
		return nil, core.EnsureRequestError(err, "wekeza: invalid config", nil)
	}

	logger := core.ResolveLogger("wekeza", b.loggerProvider, b.logger)
	named := func(name string) core.Logger {
		if b.loggerProvider != nil {
			return core.ResolveLogger(name, b.loggerProvider, logger)
		}
		return logger
	}

	tr := b.transport
	if tr == nil {
		tr = transport.NewRESTAdapter(b.httpClient)
	}

	tokens := auth.NewTokenCache(auth.TokenCacheConfig{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		OAuthURL:     cfg.OAuthURL,
		Scopes:       cfg.Scopes,
		Now:          b.clock,
	}, tr, auth.WithLogger(named("wekeza.auth")))

	requester := api.NewRequester(cfg.BaseURL, tokens, tr, named("wekeza.api"))
	paymentOpts := []api.PaymentsOption{api.WithPaymentsLogger(named("wekeza.payments"))}
	if b.intentStore != nil {
		paymentOpts = append(paymentOpts, api.WithIntentStore(b.intentStore))
	}

	client := &Client{
		Auth:             tokens,
		Accounts:         api.NewAccounts(requester),
		Payments:         api.NewPayments(requester, paymentOpts...),
		WebhookEndpoints: api.NewWebhookEndpoints(requester),
		config:           cfg,
		transport:        tr,
		logger:           logger,
	}

	if cfg.HasWebhookSecret() {
		hooks, err := webhooks.New(cfg.WebhookSecret,
			webhooks.WithSignatureHeader(cfg.SignatureHeader),
			webhooks.WithLogger(named("wekeza.webhooks")),
		)
		if err != nil {
			return nil, err
		}
		client.Webhooks = hooks
	}

	core.LogDebug(ctx, logger, "wekeza client ready", map[string]any{
		"base_url":       cfg.BaseURL,
		"webhooks":       client.Webhooks != nil,
		"intent_storage": b.intentStore != nil,
	})
	return client, nil
}

// Config returns the resolved configuration.
func (c *Client) Config() Config {
	if c == nil {
		return Config{}
	}
	return c.config
}

// WebhookHandler returns an http.Handler that verifies and dispatches
// deliveries, or nil when webhooks are not configured.
func (c *Client) WebhookHandler(handlers webhooks.HandlerTable) *webhooks.HTTPHandler {
	if c == nil || c.Webhooks == nil {
		return nil
	}
	return webhooks.NewHTTPHandler(c.Webhooks, handlers)
}
