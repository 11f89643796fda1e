package webhooks

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-wekeza/core"
)

const defaultMaxBodyBytes int64 = 1 << 20 // 1 MiB

// HTTPHandler receives webhook deliveries over HTTP. It answers 200 with
// {"received":true} once the event is handled and 400 with {"error":...}
// for any verification, payload, or handler failure.
type HTTPHandler struct {
	Webhooks     *Webhooks
	Handlers     HandlerTable
	MaxBodyBytes int64
}

func NewHTTPHandler(webhooks *Webhooks, handlers HandlerTable) *HTTPHandler {
	return &HTTPHandler{
		Webhooks:     webhooks,
		Handlers:     handlers,
		MaxBodyBytes: defaultMaxBodyBytes,
	}
}

func (h *HTTPHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeJSON(w, http.StatusMethodNotAllowed, map[string]any{"error": "method not allowed"})
		return
	}
	if h == nil || h.Webhooks == nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "webhooks are not configured"})
		return
	}

	limit := h.MaxBodyBytes
	if limit <= 0 {
		limit = defaultMaxBodyBytes
	}
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, limit))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeJSON(w, http.StatusRequestEntityTooLarge, map[string]any{"error": "payload too large"})
			return
		}
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "unable to read request body"})
		return
	}

	ctx := r.Context()
	signature := strings.TrimSpace(r.Header.Get(h.Webhooks.SignatureHeader()))
	if eventHeader := strings.TrimSpace(r.Header.Get(core.EventTypeHeader)); eventHeader != "" {
		core.LogDebug(ctx, h.Webhooks.logger, "webhook delivery received", map[string]any{
			"event_type": eventHeader,
		})
	}

	if _, err := h.Webhooks.Handle(ctx, body, signature, h.Handlers); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": errorMessage(err)})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"received": true})
}

func errorMessage(err error) string {
	var richErr *goerrors.Error
	if goerrors.As(err, &richErr) && richErr.Message != "" {
		return richErr.Message
	}
	return err.Error()
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
