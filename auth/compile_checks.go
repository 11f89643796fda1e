package auth

import "github.com/goliatone/go-wekeza/core"

var _ core.TokenSource = (*TokenCache)(nil)
