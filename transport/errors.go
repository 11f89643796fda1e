package transport

import "github.com/goliatone/go-wekeza/core"

func networkError(message string, source error, metadata map[string]any) error {
	return core.NewNetworkError(message, source, withAdapter(metadata))
}

func requestError(message string, source error, metadata map[string]any) error {
	return core.NewRequestError(message, source, withAdapter(metadata))
}

func withAdapter(metadata map[string]any) map[string]any {
	out := make(map[string]any, len(metadata)+1)
	for key, value := range metadata {
		out[key] = value
	}
	out["adapter"] = "rest"
	return out
}
