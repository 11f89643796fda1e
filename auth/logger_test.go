package auth

import (
	"context"
	"sync"

	"github.com/goliatone/go-wekeza/core"
)

type capturedLog struct {
	level  string
	msg    string
	fields map[string]any
}

type captureLogger struct {
	mu      *sync.Mutex
	records *[]capturedLog
	fields  map[string]any
}

func newCaptureLogger() *captureLogger {
	records := []capturedLog{}
	return &captureLogger{mu: &sync.Mutex{}, records: &records, fields: map[string]any{}}
}

func (l *captureLogger) WithFields(fields map[string]any) core.Logger {
	merged := map[string]any{}
	for key, value := range l.fields {
		merged[key] = value
	}
	for key, value := range fields {
		merged[key] = value
	}
	return &captureLogger{mu: l.mu, records: l.records, fields: merged}
}

func (l *captureLogger) Trace(msg string, args ...any) { l.record("trace", msg) }
func (l *captureLogger) Debug(msg string, args ...any) { l.record("debug", msg) }
func (l *captureLogger) Info(msg string, args ...any)  { l.record("info", msg) }
func (l *captureLogger) Warn(msg string, args ...any)  { l.record("warn", msg) }
func (l *captureLogger) Error(msg string, args ...any) { l.record("error", msg) }
func (l *captureLogger) Fatal(msg string, args ...any) { l.record("fatal", msg) }

func (l *captureLogger) WithContext(context.Context) core.Logger { return l }

func (l *captureLogger) record(level string, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	*l.records = append(*l.records, capturedLog{level: level, msg: msg, fields: l.fields})
}

func (l *captureLogger) snapshot() []capturedLog {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]capturedLog, len(*l.records))
	copy(out, *l.records)
	return out
}

func (l *captureLogger) has(level string, msg string) bool {
	for _, record := range l.snapshot() {
		if record.level == level && record.msg == msg {
			return true
		}
	}
	return false
}
