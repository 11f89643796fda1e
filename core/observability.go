package core

import (
	"context"
	"sort"
	"strings"

	glog "github.com/goliatone/go-logger/glog"
)

// ResolveLogger picks a named logger from provider, falling back to logger,
// and never returns nil.
func ResolveLogger(name string, provider LoggerProvider, logger Logger) Logger {
	_, resolved := glog.Resolve(name, provider, logger)
	return glog.Ensure(resolved)
}

func LogDebug(ctx context.Context, logger Logger, message string, fields map[string]any) {
	LogWithLevel(ctx, logger, "debug", message, fields)
}

func LogInfo(ctx context.Context, logger Logger, message string, fields map[string]any) {
	LogWithLevel(ctx, logger, "info", message, fields)
}

func LogWarn(ctx context.Context, logger Logger, message string, fields map[string]any) {
	LogWithLevel(ctx, logger, "warn", message, fields)
}

func LogError(ctx context.Context, logger Logger, message string, fields map[string]any) {
	LogWithLevel(ctx, logger, "error", message, fields)
}

// LogWithLevel writes a redacted structured record. Loggers implementing
// FieldsLogger receive the fields attached; others get flattened key/value args.
func LogWithLevel(ctx context.Context, logger Logger, level string, message string, fields map[string]any) {
	if logger == nil {
		return
	}
	if ctx != nil {
		logger = logger.WithContext(ctx)
	}
	redacted := RedactFields(fields)
	var args []any
	if fieldsLogger, ok := logger.(FieldsLogger); ok {
		logger = fieldsLogger.WithFields(redacted)
	} else {
		args = flattenFields(redacted)
	}
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		logger.Trace(message, args...)
	case "debug":
		logger.Debug(message, args...)
	case "warn":
		logger.Warn(message, args...)
	case "error":
		logger.Error(message, args...)
	default:
		logger.Info(message, args...)
	}
}

func cloneFields(fields map[string]any) map[string]any {
	if len(fields) == 0 {
		return map[string]any{}
	}
	copied := make(map[string]any, len(fields))
	for key, value := range fields {
		copied[key] = value
	}
	return copied
}

func flattenFields(fields map[string]any) []any {
	if len(fields) == 0 {
		return nil
	}
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	args := make([]any, 0, len(keys)*2)
	for _, key := range keys {
		args = append(args, key, fields[key])
	}
	return args
}
