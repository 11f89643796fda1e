package core

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	DefaultBaseURL         = "https://sandbox.wekeza.com/api/v1"
	DefaultOAuthURL        = "https://sandbox.wekeza.com/oauth"
	DefaultScopes          = "accounts.read transactions.read payments.write"
	DefaultSignatureHeader = "X-Wekeza-Signature"
	EventTypeHeader        = "X-Wekeza-Event"
)

type Config struct {
	ClientID        string `koanf:"client_id" mapstructure:"client_id"`
	ClientSecret    string `koanf:"client_secret" mapstructure:"client_secret"`
	BaseURL         string `koanf:"base_url" mapstructure:"base_url"`
	OAuthURL        string `koanf:"oauth_url" mapstructure:"oauth_url"`
	WebhookSecret   string `koanf:"webhook_secret" mapstructure:"webhook_secret"`
	Scopes          string `koanf:"scopes" mapstructure:"scopes"`
	SignatureHeader string `koanf:"signature_header" mapstructure:"signature_header"`
}

func DefaultConfig() Config {
	return Config{
		BaseURL:         DefaultBaseURL,
		OAuthURL:        DefaultOAuthURL,
		Scopes:          DefaultScopes,
		SignatureHeader: DefaultSignatureHeader,
	}
}

// WithDefaults fills empty optional fields. Credentials are never defaulted.
func (c Config) WithDefaults() Config {
	defaults := DefaultConfig()
	if strings.TrimSpace(c.BaseURL) == "" {
		c.BaseURL = defaults.BaseURL
	}
	if strings.TrimSpace(c.OAuthURL) == "" {
		c.OAuthURL = defaults.OAuthURL
	}
	if strings.TrimSpace(c.Scopes) == "" {
		c.Scopes = defaults.Scopes
	}
	if strings.TrimSpace(c.SignatureHeader) == "" {
		c.SignatureHeader = defaults.SignatureHeader
	}
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	c.OAuthURL = strings.TrimRight(strings.TrimSpace(c.OAuthURL), "/")
	return c
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.ClientID) == "" {
		return fmt.Errorf("core: client_id is required")
	}
	if strings.TrimSpace(c.ClientSecret) == "" {
		return fmt.Errorf("core: client_secret is required")
	}
	if err := validateAbsoluteURL("base_url", c.BaseURL); err != nil {
		return err
	}
	if err := validateAbsoluteURL("oauth_url", c.OAuthURL); err != nil {
		return err
	}
	return nil
}

// HasWebhookSecret reports whether inbound webhook verification can be built.
func (c Config) HasWebhookSecret() bool {
	return c.WebhookSecret != ""
}

func validateAbsoluteURL(field string, raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fmt.Errorf("core: %s is required", field)
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("core: %s is invalid: %w", field, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("core: %s must be an absolute url", field)
	}
	return nil
}
