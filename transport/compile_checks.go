package transport

import "github.com/goliatone/go-wekeza/core"

var _ core.Transport = (*RESTAdapter)(nil)
