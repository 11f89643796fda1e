package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/goliatone/go-wekeza/core"
)

// RefreshMargin is how long before expiry a cached token stops being served.
const RefreshMargin = 60 * time.Second

const (
	GrantClientCredentials = "client_credentials"
	GrantRefreshToken      = "refresh_token"

	defaultTokenTTL = time.Hour
	tokenPath       = "/token"
)

type TokenCacheConfig struct {
	ClientID     string
	ClientSecret string
	OAuthURL     string
	// Scopes is the space separated scope list sent with the client
	// credentials grant.
	Scopes string
	Now    func() time.Time
}

type TokenCacheOption func(*TokenCache)

func WithLogger(logger core.Logger) TokenCacheOption {
	return func(c *TokenCache) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// TokenCache owns the OAuth token state for one set of client credentials.
//
// The mutex only guards the state fields; it is released during token
// requests, so callers racing on an expired token may each fetch one and the
// last response wins.
type TokenCache struct {
	config    TokenCacheConfig
	transport core.Transport
	logger    core.Logger

	mu           sync.Mutex
	accessToken  string
	refreshToken string
	expiresAt    time.Time
}

type tokenResponse struct {
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
	ExpiresIn    json.Number `json:"expires_in"`
	TokenType    string      `json:"token_type"`
	Scope        string      `json:"scope"`
}

func NewTokenCache(cfg TokenCacheConfig, transport core.Transport, opts ...TokenCacheOption) *TokenCache {
	scopes := strings.TrimSpace(cfg.Scopes)
	if scopes == "" {
		scopes = core.DefaultScopes
	}
	now := cfg.Now
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	cache := &TokenCache{
		config: TokenCacheConfig{
			ClientID:     strings.TrimSpace(cfg.ClientID),
			ClientSecret: strings.TrimSpace(cfg.ClientSecret),
			OAuthURL:     strings.TrimRight(strings.TrimSpace(cfg.OAuthURL), "/"),
			Scopes:       scopes,
			Now:          now,
		},
		transport: transport,
		logger:    core.ResolveLogger("wekeza.auth", nil, nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(cache)
		}
	}
	return cache
}

// AccessToken returns a bearer token, reusing the cached one while it has
// more than RefreshMargin left, then trying the refresh token, then a fresh
// client credentials grant.
func (c *TokenCache) AccessToken(ctx context.Context) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	c.mu.Lock()
	if c.accessToken != "" && c.expiresAt.After(c.config.Now().Add(RefreshMargin)) {
		token := c.accessToken
		c.mu.Unlock()
		return token, nil
	}
	refreshToken := c.refreshToken
	c.mu.Unlock()

	if refreshToken != "" {
		res, err := c.requestToken(ctx, url.Values{
			"grant_type":    {GrantRefreshToken},
			"refresh_token": {refreshToken},
			"client_id":     {c.config.ClientID},
			"client_secret": {c.config.ClientSecret},
		})
		if err == nil {
			c.store(res, GrantRefreshToken)
			core.LogDebug(ctx, c.logger, "access token refreshed", map[string]any{
				"grant_type": GrantRefreshToken,
			})
			return res.AccessToken, nil
		}
		core.LogWarn(ctx, c.logger, "token refresh failed, requesting new client credentials token", map[string]any{
			"grant_type": GrantRefreshToken,
			"error":      core.Describe(err),
		})
	}

	res, err := c.requestToken(ctx, url.Values{
		"grant_type":    {GrantClientCredentials},
		"client_id":     {c.config.ClientID},
		"client_secret": {c.config.ClientSecret},
		"scope":         {c.config.Scopes},
	})
	if err != nil {
		fields := map[string]any{"grant_type": GrantClientCredentials}
		if status, ok := core.APIStatus(err); ok {
			fields["status"] = status
		}
		logFields := map[string]any{"error": core.Describe(err)}
		for key, value := range fields {
			logFields[key] = value
		}
		core.LogError(ctx, c.logger, "access token request failed", logFields)
		return "", core.NewAuthError("auth: failed to obtain access token", err, fields)
	}
	c.store(res, GrantClientCredentials)
	core.LogDebug(ctx, c.logger, "access token issued", map[string]any{
		"grant_type": GrantClientCredentials,
	})
	return res.AccessToken, nil
}

// ClearTokens drops all cached token state so the next AccessToken call
// authenticates from scratch.
func (c *TokenCache) ClearTokens() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.accessToken = ""
	c.refreshToken = ""
	c.expiresAt = time.Time{}
}

func (c *TokenCache) store(res tokenResponse, grant string) {
	ttl := defaultTokenTTL
	if seconds, err := res.ExpiresIn.Float64(); err == nil && res.ExpiresIn != "" {
		ttl = time.Duration(seconds * float64(time.Second))
	}
	if ttl < 0 {
		ttl = 0
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.accessToken = res.AccessToken
	c.expiresAt = c.config.Now().Add(ttl)
	switch {
	case grant == GrantClientCredentials:
		c.refreshToken = res.RefreshToken
	case res.RefreshToken != "":
		c.refreshToken = res.RefreshToken
	}
}

func (c *TokenCache) requestToken(ctx context.Context, form url.Values) (tokenResponse, error) {
	if c.transport == nil {
		return tokenResponse{}, core.NewRequestError("auth: token cache requires a transport", nil, nil)
	}
	res, err := c.transport.Do(ctx, core.TransportRequest{
		Method: http.MethodPost,
		URL:    c.config.OAuthURL + tokenPath,
		Headers: map[string]string{
			"Content-Type": "application/x-www-form-urlencoded",
		},
		Body: []byte(form.Encode()),
	})
	if err != nil {
		return tokenResponse{}, core.EnsureRequestError(err, "auth: token request failed", nil)
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return tokenResponse{}, core.NewAPIError(res.StatusCode, core.ExtractErrorMessage(res.Body), map[string]any{
			"path": tokenPath,
		})
	}

	var decoded tokenResponse
	if err := json.Unmarshal(res.Body, &decoded); err != nil {
		return tokenResponse{}, core.NewRequestError("auth: decode token response", err, nil)
	}
	if strings.TrimSpace(decoded.AccessToken) == "" {
		return tokenResponse{}, core.NewRequestError("auth: token response missing access_token", nil, nil)
	}
	return decoded, nil
}
