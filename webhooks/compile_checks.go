package webhooks

import "net/http"

var (
	_ Handler      = HandlerFunc(nil)
	_ http.Handler = (*HTTPHandler)(nil)
)
