package logging

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func fieldMap(fields []zap.Field) map[string]zap.Field {
	out := make(map[string]zap.Field, len(fields))
	for _, f := range fields {
		out[f.Key] = f
	}
	return out
}

func TestTraceIDFromContext(t *testing.T) {
	if got := TraceIDFromContext(context.Background()); got != "" {
		t.Fatalf("expected empty trace ID, got %q", got)
	}
	ctx := contextWithTraceID(context.Background(), "trace-abc")
	if got := TraceIDFromContext(ctx); got != "trace-abc" {
		t.Fatalf("expected trace-abc, got %q", got)
	}
}

func TestLogErrorAppendsErrorField(t *testing.T) {
	core, recorded := observer.New(zapcore.ErrorLevel)
	ctx := contextWithLogger(context.Background(), zap.New(core))

	LogError(ctx, "failed", errors.New("boom"), zap.String("foo", "bar"))

	entries := recorded.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	entry := entries[0]
	if entry.Message != "failed" {
		t.Fatalf("unexpected log message: %s", entry.Message)
	}
	if entry.Level != zapcore.ErrorLevel {
		t.Fatalf("unexpected log level: %s", entry.Level)
	}

	fields := fieldMap(entry.Context)
	if f, ok := fields["foo"]; !ok || f.String != "bar" {
		t.Fatalf("expected foo field, got %+v", fields)
	}
	if f, ok := fields["error"]; !ok || f.Type != zapcore.ErrorType {
		t.Fatalf("expected error field, got %+v", fields)
	}
}

func TestLogErrorNilError(t *testing.T) {
	core, recorded := observer.New(zapcore.ErrorLevel)
	ctx := contextWithLogger(context.Background(), zap.New(core))

	LogError(ctx, "no error", nil, zap.String("key", "value"))

	entries := recorded.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	if _, ok := fieldMap(entries[0].Context)["error"]; ok {
		t.Fatal("did not expect error field when err is nil")
	}
}

func TestLogInfoAndWarnWriteEntries(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)
	ctx := contextWithLogger(context.Background(), zap.New(core))

	LogInfo(ctx, "info message", zap.String("foo", "bar"))
	LogWarn(ctx, "warn message")

	entries := recorded.All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 log entries, got %d", len(entries))
	}
	if entries[0].Level != zapcore.InfoLevel || entries[0].Message != "info message" {
		t.Fatalf("unexpected info entry: %+v", entries[0])
	}
	if len(entries[0].Context) != 1 || entries[0].Context[0].String != "bar" {
		t.Fatalf("unexpected context fields: %+v", entries[0].Context)
	}
	if entries[1].Level != zapcore.WarnLevel || entries[1].Message != "warn message" {
		t.Fatalf("unexpected warn entry: %+v", entries[1])
	}
}

func TestLogFatalAppendsErrorField(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)
	logger := zap.New(core, zap.WithFatalHook(zapcore.WriteThenPanic))
	ctx := contextWithLogger(context.Background(), logger)

	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic triggered by fatal hook")
		}

		entries := recorded.All()
		if len(entries) != 1 {
			t.Fatalf("expected 1 log entry, got %d", len(entries))
		}
		if entries[0].Level != zapcore.FatalLevel {
			t.Fatalf("unexpected log level: %s", entries[0].Level)
		}
		if f, ok := fieldMap(entries[0].Context)["error"]; !ok || f.Type != zapcore.ErrorType {
			t.Fatalf("expected error field, got %+v", entries[0].Context)
		}
	}()

	LogFatal(ctx, "listen failed", errors.New("address already in use"))
}

func TestWithFieldsDerivesLogger(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)
	ctx := contextWithLogger(context.Background(), zap.New(core))

	ctx = WithFields(ctx, zap.String("session", "abc"))
	LogInfo(ctx, "tagged")

	entries := recorded.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	if f, ok := fieldMap(entries[0].Context)["session"]; !ok || f.String != "abc" {
		t.Fatalf("expected session field, got %+v", entries[0].Context)
	}
}

func TestContextWithTraceIDEmpty(t *testing.T) {
	original := context.Background()
	if ctx := contextWithTraceID(original, ""); ctx != original {
		t.Fatal("expected same context for empty trace ID")
	}
}

func TestNilContextHandling(t *testing.T) {
	var nilCtx context.Context //nolint:revive // testing nil context handling

	if LoggerFromContext(nilCtx) == nil {
		t.Fatal("expected non-nil logger for nil context")
	}
	if got := TraceIDFromContext(nilCtx); got != "" {
		t.Fatalf("expected empty trace ID for nil context, got %q", got)
	}
	if ctx := contextWithTraceID(nilCtx, "trace-123"); TraceIDFromContext(ctx) != "trace-123" {
		t.Fatal("expected trace ID on context derived from nil")
	}

	core, recorded := observer.New(zapcore.InfoLevel)
	ctx := contextWithLogger(nilCtx, zap.New(core))
	LoggerFromContext(ctx).Info("test")
	if len(recorded.All()) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(recorded.All()))
	}
}

func TestLoggerFromContextNilLoggerInContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), ctxLoggerKey{}, (*zap.Logger)(nil))
	if LoggerFromContext(ctx) == nil {
		t.Fatal("expected non-nil logger when context has nil logger")
	}
}

func TestWithLoggerOverridesGlobal(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)
	ctx := WithLogger(context.Background(), zap.New(core))

	LogInfo(ctx, "Backend is running on port 5000")

	if entries := recorded.All(); len(entries) != 1 || entries[0].Message != "Backend is running on port 5000" {
		t.Fatalf("expected entry on injected logger, got %+v", entries)
	}
}
