package wekeza

import (
	"github.com/goliatone/go-wekeza/api"
	"github.com/goliatone/go-wekeza/core"
	"github.com/goliatone/go-wekeza/transport"
)

type Option func(*clientBuilder)

type clientBuilder struct {
	transport       core.Transport
	httpClient      transport.HTTPDoer
	logger          core.Logger
	loggerProvider  core.LoggerProvider
	intentStore     api.IntentStore
	clock           core.Clock
	configProvider  core.ConfigProvider
	optionsResolver core.OptionsResolver
	envFiles        []string
}

// WithTransport replaces the REST adapter for every outbound call.
func WithTransport(t core.Transport) Option {
	return func(b *clientBuilder) {
		b.transport = t
	}
}

// WithHTTPClient keeps the REST adapter but sends through client.
func WithHTTPClient(client transport.HTTPDoer) Option {
	return func(b *clientBuilder) {
		b.httpClient = client
	}
}

func WithLogger(logger core.Logger) Option {
	return func(b *clientBuilder) {
		b.logger = logger
	}
}

func WithLoggerProvider(provider core.LoggerProvider) Option {
	return func(b *clientBuilder) {
		b.loggerProvider = provider
	}
}

// WithIntentStore makes payments reuse one idempotency key per intent named
// with api.WithIntentID.
func WithIntentStore(store api.IntentStore) Option {
	return func(b *clientBuilder) {
		b.intentStore = store
	}
}

func WithClock(clock core.Clock) Option {
	return func(b *clientBuilder) {
		b.clock = clock
	}
}

func WithConfigProvider(provider core.ConfigProvider) Option {
	return func(b *clientBuilder) {
		b.configProvider = provider
	}
}

func WithOptionsResolver(resolver core.OptionsResolver) Option {
	return func(b *clientBuilder) {
		b.optionsResolver = resolver
	}
}

// WithEnvFiles sets the dotenv files FromEnv reads. Defaults to ".env".
func WithEnvFiles(files ...string) Option {
	return func(b *clientBuilder) {
		b.envFiles = append([]string(nil), files...)
	}
}
