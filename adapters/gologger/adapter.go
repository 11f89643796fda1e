package gologger

import (
	"context"
	"log/slog"
	"os"
	"sort"
	"strings"

	glog "github.com/goliatone/go-logger/glog"
)

// LevelTrace sits below slog.LevelDebug.
const LevelTrace = slog.Level(-8)

// Resolve uses deterministic precedence provider > logger > nop.
func Resolve(name string, provider glog.LoggerProvider, logger glog.Logger) (glog.LoggerProvider, glog.Logger) {
	return glog.Resolve(name, provider, logger)
}

// SlogLogger adapts a *slog.Logger to the glog contracts used by the client.
type SlogLogger struct {
	logger *slog.Logger
	ctx    context.Context
}

var (
	_ glog.Logger         = (*SlogLogger)(nil)
	_ glog.FieldsLogger   = (*SlogLogger)(nil)
	_ glog.LoggerProvider = (*SlogProvider)(nil)
)

func NewSlogLogger(logger *slog.Logger) *SlogLogger {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogLogger{logger: logger, ctx: context.Background()}
}

func (l *SlogLogger) Trace(msg string, args ...any) { l.log(LevelTrace, msg, args) }
func (l *SlogLogger) Debug(msg string, args ...any) { l.log(slog.LevelDebug, msg, args) }
func (l *SlogLogger) Info(msg string, args ...any)  { l.log(slog.LevelInfo, msg, args) }
func (l *SlogLogger) Warn(msg string, args ...any)  { l.log(slog.LevelWarn, msg, args) }
func (l *SlogLogger) Error(msg string, args ...any) { l.log(slog.LevelError, msg, args) }

// Fatal logs at error level and exits the process.
func (l *SlogLogger) Fatal(msg string, args ...any) {
	l.log(slog.LevelError, msg, args)
	os.Exit(1)
}

func (l *SlogLogger) WithContext(ctx context.Context) glog.Logger {
	if ctx == nil {
		return l
	}
	return &SlogLogger{logger: l.logger, ctx: ctx}
}

// WithFields attaches fields in key order so records render stably.
func (l *SlogLogger) WithFields(fields map[string]any) glog.Logger {
	if len(fields) == 0 {
		return l
	}
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	args := make([]any, 0, len(keys))
	for _, key := range keys {
		args = append(args, slog.Any(key, fields[key]))
	}
	return &SlogLogger{logger: l.logger.With(args...), ctx: l.ctx}
}

func (l *SlogLogger) log(level slog.Level, msg string, args []any) {
	ctx := l.ctx
	if ctx == nil {
		ctx = context.Background()
	}
	l.logger.Log(ctx, level, msg, args...)
}

// SlogProvider hands out loggers tagged with a "logger" attribute.
type SlogProvider struct {
	base *slog.Logger
}

func NewSlogProvider(base *slog.Logger) *SlogProvider {
	if base == nil {
		base = slog.Default()
	}
	return &SlogProvider{base: base}
}

func (p *SlogProvider) GetLogger(name string) glog.Logger {
	logger := p.base
	if name = strings.TrimSpace(name); name != "" {
		logger = logger.With(slog.String("logger", name))
	}
	return NewSlogLogger(logger)
}

// ParseLevel maps a level name to a slog level; unknown names fall back to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return LevelTrace
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
