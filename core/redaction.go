package core

import "strings"

// RedactedValue replaces secrets in logged fields.
const RedactedValue = "[REDACTED]"

// secretKeyFragments mark a field as secret when they appear anywhere in its
// lowercased name. Phone numbers count: payment requests carry them.
var secretKeyFragments = []string{
	"apikey",
	"api_key",
	"authorization",
	"credential",
	"password",
	"phone",
	"secret",
	"signature",
	"token",
}

// traceKeys match a fragment but identify a call rather than authorize it.
var traceKeys = map[string]struct{}{
	"account_id":       {},
	"event_type":       {},
	"grant_type":       {},
	"idempotency_key":  {},
	"intent_id":        {},
	"payment_id":       {},
	"request_id":       {},
	"signature_header": {},
}

// RedactFields copies fields for logging, masking every secret value at any
// depth. The result is never nil.
func RedactFields(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for key, value := range fields {
		if isSecretKey(key) {
			out[key] = RedactedValue
			continue
		}
		out[key] = redactValue(value)
	}
	return out
}

func redactValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		return RedactFields(v)
	case map[string]string:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[key] = item
		}
		return RedactFields(out)
	case map[string][]string:
		out := make(map[string]any, len(v))
		for key, items := range v {
			out[key] = items
		}
		return RedactFields(out)
	case []map[string]any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = RedactFields(item)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = redactValue(item)
		}
		return out
	}
	return value
}

func isSecretKey(key string) bool {
	key = strings.ToLower(strings.TrimSpace(key))
	if key == "" {
		return false
	}
	if _, ok := traceKeys[key]; ok {
		return false
	}
	for _, fragment := range secretKeyFragments {
		if strings.Contains(key, fragment) {
			return true
		}
	}
	return false
}
