package core

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	EnvClientID        = "WEKEZA_CLIENT_ID"
	EnvClientSecret    = "WEKEZA_CLIENT_SECRET"
	EnvBaseURL         = "WEKEZA_BASE_URL"
	EnvOAuthURL        = "WEKEZA_OAUTH_URL"
	EnvWebhookSecret   = "WEKEZA_WEBHOOK_SECRET"
	EnvScopes          = "WEKEZA_SCOPES"
	EnvSignatureHeader = "WEKEZA_SIGNATURE_HEADER"

	// EnvWebhookSecretLegacy is the unprefixed name used by existing
	// webhook receivers.
	EnvWebhookSecretLegacy = "WEBHOOK_SECRET"
)

var envKeys = []struct {
	key   string
	names []string
}{
	{key: "client_id", names: []string{EnvClientID}},
	{key: "client_secret", names: []string{EnvClientSecret}},
	{key: "base_url", names: []string{EnvBaseURL}},
	{key: "oauth_url", names: []string{EnvOAuthURL}},
	{key: "webhook_secret", names: []string{EnvWebhookSecret, EnvWebhookSecretLegacy}},
	{key: "scopes", names: []string{EnvScopes}},
	{key: "signature_header", names: []string{EnvSignatureHeader}},
}

// EnvConfigLoader reads WEKEZA_* variables from the process environment,
// backed by values from dotenv files. Process variables win over file values.
type EnvConfigLoader struct {
	// Files are dotenv files to read; missing files are skipped.
	Files  []string
	Lookup func(name string) (string, bool)
}

func NewEnvConfigLoader(files ...string) *EnvConfigLoader {
	if len(files) == 0 {
		files = []string{".env"}
	}
	return &EnvConfigLoader{Files: files, Lookup: os.LookupEnv}
}

func (l *EnvConfigLoader) LoadRaw(ctx context.Context) (map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	fileValues, err := l.readFiles()
	if err != nil {
		return nil, err
	}
	lookup := os.LookupEnv
	if l != nil && l.Lookup != nil {
		lookup = l.Lookup
	}

	raw := map[string]any{}
	for _, entry := range envKeys {
		for _, name := range entry.names {
			if value, ok := lookup(name); ok && strings.TrimSpace(value) != "" {
				raw[entry.key] = strings.TrimSpace(value)
				break
			}
			if value, ok := fileValues[name]; ok && strings.TrimSpace(value) != "" {
				raw[entry.key] = strings.TrimSpace(value)
				break
			}
		}
	}
	return raw, nil
}

func (l *EnvConfigLoader) readFiles() (map[string]string, error) {
	values := map[string]string{}
	if l == nil {
		return values, nil
	}
	for _, file := range l.Files {
		file = strings.TrimSpace(file)
		if file == "" {
			continue
		}
		if _, err := os.Stat(file); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		read, err := godotenv.Read(file)
		if err != nil {
			return nil, NewRequestError("core: read dotenv file", err, map[string]any{"file": file})
		}
		for key, value := range read {
			if _, exists := values[key]; !exists {
				values[key] = value
			}
		}
	}
	return values, nil
}
